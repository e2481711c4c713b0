// Package settings holds per-game configuration: which game family a
// configured entry is, where it is installed, and where its local app data
// lives. Settings are read by install detection and owned by the user, not
// by detection, which never mutates them.
package settings

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/RacerBG/loot/internal/gameid"
	"github.com/RacerBG/loot/pkg/fileutil"
)

// Game is the configuration for one game entry. Fields are fixed at
// construction except the paths, which the user may point at a specific
// install.
type Game struct {
	gameType      gameid.GameType
	name          string
	master        string
	gamePath      string
	gameLocalPath string
}

// NewGame creates settings for the given game with its default display name
// and master plugin, and no configured paths.
func NewGame(id gameid.GameID) *Game {
	return &Game{
		gameType: id.Type(),
		name:     id.Name(),
		master:   id.MasterFilename(),
	}
}

// Type returns the configured game family.
func (g *Game) Type() gameid.GameType { return g.gameType }

// Name returns the configured display name.
func (g *Game) Name() string { return g.name }

// Master returns the configured master plugin filename.
func (g *Game) Master() string { return g.master }

// GamePath returns the configured install path, or "" if not configured.
func (g *Game) GamePath() string { return g.gamePath }

// GameLocalPath returns the configured local app data path, or "" if not
// configured.
func (g *Game) GameLocalPath() string { return g.gameLocalPath }

// SetGamePath sets the install path.
func (g *Game) SetGamePath(path string) { g.gamePath = path }

// SetGameLocalPath sets the local app data path.
func (g *Game) SetGameLocalPath(path string) { g.gameLocalPath = path }

// DefaultLocalPath returns the game's conventional local app data directory,
// or "" for games that keep all state in the install directory.
func DefaultLocalPath(id gameid.GameID) string {
	folder := id.LocalFolderName()
	if folder == "" {
		return ""
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, folder)
	}

	return filepath.Join(xdg.DataHome, folder)
}

// File is the on-disk settings document. One entry per configured game.
type File struct {
	Games []GameConfig `toml:"games"`
}

// GameConfig is the serialized form of one game entry.
type GameConfig struct {
	Type      string `toml:"type"`
	Name      string `toml:"name"`
	Master    string `toml:"master"`
	Path      string `toml:"path,omitempty"`
	LocalPath string `toml:"local_path,omitempty"`
}

// Load reads a settings file. A missing file is not an error and yields an
// empty File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, errors.Wrap(err, "reading settings file")
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing settings file")
	}

	return &f, nil
}

// Save writes the settings file atomically.
func Save(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}

	return fileutil.AtomicWriteTOML(path, f)
}

// Game converts a serialized entry into usable settings.
// Returns an error if the entry names an unknown game family.
func (c GameConfig) Game() (*Game, error) {
	t, err := parseGameType(c.Type)
	if err != nil {
		return nil, err
	}

	g := &Game{
		gameType:      t,
		name:          c.Name,
		master:        c.Master,
		gamePath:      c.Path,
		gameLocalPath: c.LocalPath,
	}

	return g, nil
}

// Config converts settings back to their serialized form.
func (g *Game) Config() GameConfig {
	return GameConfig{
		Type:      string(g.gameType),
		Name:      g.name,
		Master:    g.master,
		Path:      g.gamePath,
		LocalPath: g.gameLocalPath,
	}
}

func parseGameType(s string) (gameid.GameType, error) {
	for _, id := range gameid.GameIDs() {
		if t := id.Type(); string(t) == s {
			return t, nil
		}
	}
	return "", errors.Newf("unknown game type %q", s)
}
