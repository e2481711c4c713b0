package detection

import (
	"path/filepath"

	"github.com/RacerBG/loot/internal/gameid"
	"github.com/RacerBG/loot/pkg/fileutil"
)

// InstallSource identifies the storefront an install was bought from.
type InstallSource string

const (
	// SourceSteam indicates a Steam install.
	SourceSteam InstallSource = "steam"

	// SourceGOG indicates a GOG install.
	SourceGOG InstallSource = "gog"

	// SourceEpic indicates an Epic Games Store install.
	SourceEpic InstallSource = "epic"

	// SourceMicrosoft indicates a Microsoft Store install.
	SourceMicrosoft InstallSource = "microsoft"

	// SourceUnknown indicates no storefront marker was found. This is a
	// valid terminal classification (e.g. a manual or disc install), not a
	// detection failure.
	SourceUnknown InstallSource = "unknown"
)

// ClassifySource classifies the storefront of a known-good install path by
// checking each storefront's filesystem markers.
//
// The evaluation order is fixed: Steam, then GOG, then Epic, then Microsoft,
// first positive match wins. Steam and GOG markers are the most specific and
// rarely coexist with other markers, so checking them first avoids
// misclassification when an install was later patched by another
// distributor's installer.
func ClassifySource(id gameid.GameID, installPath string) InstallSource {
	if isSteamInstall(id, installPath) {
		return SourceSteam
	}

	if isGogInstall(id, installPath) {
		return SourceGOG
	}

	if isEpicInstall(installPath) {
		return SourceEpic
	}

	if isMicrosoftInstall(installPath) {
		return SourceMicrosoft
	}

	return SourceUnknown
}

// isSteamInstall checks for the game's Steam marker. The marker varies by
// game because Valve's install scripts have changed over the years.
func isSteamInstall(id gameid.GameID, installPath string) bool {
	switch id {
	case gameid.TES3:
		return fileutil.Exists(filepath.Join(installPath, "steam_autocloud.vdf"))
	case gameid.Nehrim:
		return fileutil.Exists(filepath.Join(installPath, "steam_api.dll"))
	case gameid.TES5, gameid.TES5VR, gameid.FO4VR:
		// Only released on Steam.
		return true
	case gameid.TES4, gameid.TES5SE, gameid.Enderal, gameid.EnderalSE,
		gameid.FO3, gameid.FONV, gameid.FO4:
		// Most games have an installscript.vdf file in their Steam install.
		return fileutil.Exists(filepath.Join(installPath, "installscript.vdf"))
	default:
		panic("unrecognised game ID: " + string(id))
	}
}

// isGogInstall checks for any of the goggame-<id>.ico files that GOG Galaxy
// writes into an install directory. One game can have several GOG product
// IDs (e.g. standard and GOTY editions), so all are checked.
func isGogInstall(id gameid.GameID, installPath string) bool {
	for _, gogID := range gogGameIDs(id) {
		iconPath := filepath.Join(installPath, "goggame-"+gogID+".ico")

		if fileutil.Exists(iconPath) {
			return true
		}
	}

	return false
}

// isEpicInstall checks for the .egstore manifest directory the Epic Games
// Store launcher creates. Not game-specific.
func isEpicInstall(installPath string) bool {
	return fileutil.Exists(filepath.Join(installPath, ".egstore"))
}

// isMicrosoftInstall checks for the packaged-app manifest the Microsoft
// Store deploys alongside a game. Not game-specific.
func isMicrosoftInstall(installPath string) bool {
	return fileutil.Exists(filepath.Join(installPath, "appxmanifest.xml"))
}
