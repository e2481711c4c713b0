package detection

import (
	"path/filepath"

	"github.com/RacerBG/loot/internal/gameid"
	"github.com/RacerBG/loot/pkg/fileutil"
)

// PathValidator decides whether a directory is plausibly an install of a
// given game family. Injectable so tests and embedding applications can
// substitute their own rules.
type PathValidator interface {
	// IsValidGamePath returns true if installPath looks like an install of
	// the given game family with the given master plugin.
	IsValidGamePath(t gameid.GameType, masterFile string, installPath string) bool
}

// FSValidator is the default PathValidator. A directory is a valid install
// if the master plugin exists inside the family's plugins folder.
type FSValidator struct{}

// IsValidGamePath implements PathValidator.
func (FSValidator) IsValidGamePath(t gameid.GameType, masterFile string, installPath string) bool {
	if installPath == "" || masterFile == "" {
		return false
	}

	return fileutil.FileExists(filepath.Join(installPath, t.PluginsFolderName(), masterFile))
}
