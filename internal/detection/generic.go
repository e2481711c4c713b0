package detection

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/RacerBG/loot/internal/gameid"
	"github.com/RacerBG/loot/internal/registry"
	"github.com/RacerBG/loot/internal/settings"
	"github.com/RacerBG/loot/pkg/fileutil"
)

// GameInstall records one detected install. It is an immutable fact about
// the filesystem at detection time.
type GameInstall struct {
	// GameID is the concrete game found at InstallPath, forks resolved.
	GameID gameid.GameID

	// Source is the storefront the install was bought from.
	Source InstallSource

	// InstallPath is the install directory.
	InstallPath string

	// LocalPath is the game's local app data directory, if known. Only
	// populated when detection starts from configured settings, which carry
	// the path; discovery cannot know it.
	LocalPath string
}

// DetectGameID resolves a game family to the concrete game installed at the
// given path. Families with a known total-conversion fork are disambiguated
// by the fork's bespoke launcher executable; all other families map to
// themselves.
//
// The path must already have been validated as an install of the family:
// this function only decides which member of the family it is. Repeated
// calls on an unchanged directory return the same ID.
func DetectGameID(t gameid.GameType, installPath string) gameid.GameID {
	switch t {
	case gameid.TypeTES3:
		return gameid.TES3
	case gameid.TypeTES4:
		if fileutil.Exists(filepath.Join(installPath, "NehrimLauncher.exe")) {
			return gameid.Nehrim
		}
		return gameid.TES4
	case gameid.TypeTES5:
		if fileutil.Exists(filepath.Join(installPath, "Enderal Launcher.exe")) {
			return gameid.Enderal
		}
		return gameid.TES5
	case gameid.TypeTES5SE:
		if fileutil.Exists(filepath.Join(installPath, "Enderal Launcher.exe")) {
			return gameid.EnderalSE
		}
		return gameid.TES5SE
	case gameid.TypeTES5VR:
		return gameid.TES5VR
	case gameid.TypeFO3:
		return gameid.FO3
	case gameid.TypeFONV:
		return gameid.FONV
	case gameid.TypeFO4:
		return gameid.FO4
	case gameid.TypeFO4VR:
		return gameid.FO4VR
	default:
		panic("unrecognised game type: " + string(t))
	}
}

// Finder discovers game installs through sibling-directory and registry
// lookups. Safe to call concurrently for different games: it holds no
// mutable state.
type Finder struct {
	registry  registry.Reader
	validator PathValidator
	logger    *slog.Logger

	// siblingDir is the directory checked by sibling discovery. Defaults to
	// the parent of the running executable.
	siblingDir string
}

// NewFinder creates a Finder using the default filesystem path validator.
func NewFinder(reg registry.Reader, logger *slog.Logger) *Finder {
	return NewFinderWithValidator(reg, FSValidator{}, logger)
}

// NewFinderWithValidator creates a Finder with a custom path validator.
func NewFinderWithValidator(reg registry.Reader, validator PathValidator, logger *slog.Logger) *Finder {
	return &Finder{
		registry:   reg,
		validator:  validator,
		logger:     logger,
		siblingDir: siblingDir(),
	}
}

// siblingDir returns the directory one level above the running executable,
// falling back to the parent of the working directory.
func siblingDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ".."
	}
	return filepath.Dir(filepath.Dir(exe))
}

// FindGameInstalls returns the installs of the given game that can be
// discovered without configuration: a sibling-directory candidate and a
// registry-derived candidate. Both strategies run; a user may legitimately
// have two distinct installs, so 0, 1 or 2 entries come back, sibling first.
func (f *Finder) FindGameInstalls(id gameid.GameID) []GameInstall {
	var installs []GameInstall

	if install, ok := f.findSiblingGameInstall(id); ok {
		installs = append(installs, install)
	}

	if install, ok := f.findGameInstallInRegistry(id); ok {
		installs = append(installs, install)
	}

	return installs
}

// findSiblingGameInstall checks whether the directory one level above the
// running program is a valid install of the game. A sibling install can have
// come from any storefront, so all four channels are checked.
func (f *Finder) findSiblingGameInstall(id gameid.GameID) (GameInstall, bool) {
	path := f.siblingDir

	if !f.validator.IsValidGamePath(id.Type(), id.MasterFilename(), path) {
		return GameInstall{}, false
	}

	f.logger.Debug("found sibling game install", "game", id, "path", path)

	return GameInstall{
		GameID:      id,
		Source:      ClassifySource(id, path),
		InstallPath: path,
	}, true
}

// findGameInstallInRegistry looks up the game's generic registry value and
// validates the path it points at. The generic registry keys are not written
// by the Epic or Microsoft installers, so anything other than Steam and GOG
// is classified as unknown.
func (f *Finder) findGameInstallInRegistry(id gameid.GameID) (GameInstall, bool) {
	path, ok := readPathFromRegistry(f.registry, registryValue(id), f.logger)
	if !ok {
		return GameInstall{}, false
	}

	if !f.validator.IsValidGamePath(id.Type(), id.MasterFilename(), path) {
		return GameInstall{}, false
	}

	f.logger.Debug("found game install through registry", "game", id, "path", path)

	source := SourceUnknown
	if isSteamInstall(id, path) {
		source = SourceSteam
	} else if isGogInstall(id, path) {
		source = SourceGOG
	}

	return GameInstall{
		GameID:      id,
		Source:      source,
		InstallPath: path,
	}, true
}

// DetectGameInstall checks whether the given settings resolve to an
// installed game, and detects its concrete ID and install source. The
// configured path is user-supplied and already known-good once validated,
// so all four storefront channels are checked.
func (f *Finder) DetectGameInstall(game *settings.Game) (GameInstall, bool) {
	if !f.validator.IsValidGamePath(game.Type(), game.Master(), game.GamePath()) {
		return GameInstall{}, false
	}

	installPath := game.GamePath()
	id := DetectGameID(game.Type(), installPath)

	return GameInstall{
		GameID:      id,
		Source:      ClassifySource(id, installPath),
		InstallPath: installPath,
		LocalPath:   game.GameLocalPath(),
	}, true
}
