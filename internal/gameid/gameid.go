// Package gameid defines the closed set of supported games and the engine
// families they belong to.
//
// Both enumerations are fixed at compile time. Every table in this package is
// total over its enumeration: hitting a default case means a new game was
// added without updating the table, which is a defect, so the tables panic
// rather than return a fallback.
package gameid

import "github.com/cockroachdb/errors"

// GameID identifies a specific supported game or total-conversion fork.
type GameID string

const (
	TES3      GameID = "tes3"
	TES4      GameID = "tes4"
	Nehrim    GameID = "nehrim"
	TES5      GameID = "tes5"
	Enderal   GameID = "enderal"
	TES5SE    GameID = "tes5se"
	EnderalSE GameID = "enderalse"
	TES5VR    GameID = "tes5vr"
	FO3       GameID = "fo3"
	FONV      GameID = "fonv"
	FO4       GameID = "fo4"
	FO4VR     GameID = "fo4vr"
)

// GameType identifies the engine family a game belongs to. A base game and
// its total-conversion forks share a GameType and so share plugin format,
// path validation rules and registry layout.
type GameType string

const (
	TypeTES3   GameType = "tes3"
	TypeTES4   GameType = "tes4"
	TypeTES5   GameType = "tes5"
	TypeTES5SE GameType = "tes5se"
	TypeTES5VR GameType = "tes5vr"
	TypeFO3    GameType = "fo3"
	TypeFONV   GameType = "fonv"
	TypeFO4    GameType = "fo4"
	TypeFO4VR  GameType = "fo4vr"
)

// ErrUnknownGameID indicates a string does not name a supported game.
var ErrUnknownGameID = errors.New("unknown game ID")

// gameIDs lists all supported games in a fixed, deterministic order.
var gameIDs = []GameID{
	TES3, TES4, Nehrim,
	TES5, Enderal, TES5SE, EnderalSE, TES5VR,
	FO3, FONV, FO4, FO4VR,
}

// GameIDs returns all supported game IDs in deterministic order.
func GameIDs() []GameID {
	ids := make([]GameID, len(gameIDs))
	copy(ids, gameIDs)
	return ids
}

// ParseGameID converts a string to a GameID.
// Returns ErrUnknownGameID if the string does not name a supported game.
func ParseGameID(s string) (GameID, error) {
	for _, id := range gameIDs {
		if string(id) == s {
			return id, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownGameID, "%q", s)
}

// Type returns the engine family the game belongs to.
func (id GameID) Type() GameType {
	switch id {
	case TES3:
		return TypeTES3
	case TES4, Nehrim:
		return TypeTES4
	case TES5, Enderal:
		return TypeTES5
	case TES5SE, EnderalSE:
		return TypeTES5SE
	case TES5VR:
		return TypeTES5VR
	case FO3:
		return TypeFO3
	case FONV:
		return TypeFONV
	case FO4:
		return TypeFO4
	case FO4VR:
		return TypeFO4VR
	default:
		panic("unrecognised game ID: " + string(id))
	}
}

// Name returns the game's display name.
func (id GameID) Name() string {
	switch id {
	case TES3:
		return "TES III: Morrowind"
	case TES4:
		return "TES IV: Oblivion"
	case Nehrim:
		return "Nehrim - At Fate's Edge"
	case TES5:
		return "TES V: Skyrim"
	case Enderal:
		return "Enderal: Forgotten Stories"
	case TES5SE:
		return "TES V: Skyrim Special Edition"
	case EnderalSE:
		return "Enderal: Forgotten Stories (Special Edition)"
	case TES5VR:
		return "TES V: Skyrim VR"
	case FO3:
		return "Fallout 3"
	case FONV:
		return "Fallout: New Vegas"
	case FO4:
		return "Fallout 4"
	case FO4VR:
		return "Fallout 4 VR"
	default:
		panic("unrecognised game ID: " + string(id))
	}
}

// MasterFilename returns the name of the game's main master plugin, used to
// recognise a directory as an install of the game.
func (id GameID) MasterFilename() string {
	switch id {
	case TES3:
		return "Morrowind.esm"
	case TES4:
		return "Oblivion.esm"
	case Nehrim:
		return "Nehrim.esm"
	case TES5, Enderal, TES5SE, EnderalSE, TES5VR:
		return "Skyrim.esm"
	case FO3:
		return "Fallout3.esm"
	case FONV:
		return "FalloutNV.esm"
	case FO4, FO4VR:
		return "Fallout4.esm"
	default:
		panic("unrecognised game ID: " + string(id))
	}
}

// PluginsFolderName returns the name of the directory under the install path
// that holds the game's plugins.
func (t GameType) PluginsFolderName() string {
	switch t {
	case TypeTES3:
		return "Data Files"
	case TypeTES4, TypeTES5, TypeTES5SE, TypeTES5VR, TypeFO3, TypeFONV, TypeFO4, TypeFO4VR:
		return "Data"
	default:
		panic("unrecognised game type: " + string(t))
	}
}

// LocalFolderName returns the name of the game's folder under the user's
// local application data directory. Morrowind keeps all its state in the
// install directory and has no local folder, so TES3 returns "".
func (id GameID) LocalFolderName() string {
	switch id {
	case TES3:
		return ""
	case TES4, Nehrim:
		return "Oblivion"
	case TES5:
		return "Skyrim"
	case Enderal:
		return "enderal"
	case TES5SE:
		return "Skyrim Special Edition"
	case EnderalSE:
		return "Enderal Special Edition"
	case TES5VR:
		return "Skyrim VR"
	case FO3:
		return "Fallout3"
	case FONV:
		return "FalloutNV"
	case FO4:
		return "Fallout4"
	case FO4VR:
		return "Fallout4VR"
	default:
		panic("unrecognised game ID: " + string(id))
	}
}
