package detection

import (
	"testing"

	"github.com/RacerBG/loot/internal/gameid"
)

func TestFSValidator(t *testing.T) {
	v := FSValidator{}

	t.Run("valid install", func(t *testing.T) {
		dir := newGameDir(t, gameid.TES5SE)

		if !v.IsValidGamePath(gameid.TypeTES5SE, "Skyrim.esm", dir) {
			t.Error("IsValidGamePath() = false, want true")
		}
	})

	t.Run("morrowind uses Data Files", func(t *testing.T) {
		dir := newGameDir(t, gameid.TES3)

		if !v.IsValidGamePath(gameid.TypeTES3, "Morrowind.esm", dir) {
			t.Error("IsValidGamePath() = false, want true")
		}
	})

	t.Run("missing master", func(t *testing.T) {
		if v.IsValidGamePath(gameid.TypeFO4, "Fallout4.esm", t.TempDir()) {
			t.Error("IsValidGamePath() = true, want false for empty dir")
		}
	})

	t.Run("empty inputs", func(t *testing.T) {
		if v.IsValidGamePath(gameid.TypeFO4, "Fallout4.esm", "") {
			t.Error("IsValidGamePath() = true, want false for empty path")
		}
		if v.IsValidGamePath(gameid.TypeFO4, "", t.TempDir()) {
			t.Error("IsValidGamePath() = true, want false for empty master")
		}
	})
}
