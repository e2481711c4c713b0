package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RacerBG/loot/internal/gameid"
)

func TestNewGame(t *testing.T) {
	g := NewGame(gameid.TES5SE)

	if got := g.Type(); got != gameid.TypeTES5SE {
		t.Errorf("Type() = %q, want %q", got, gameid.TypeTES5SE)
	}
	if got := g.Name(); got != "TES V: Skyrim Special Edition" {
		t.Errorf("Name() = %q, want %q", got, "TES V: Skyrim Special Edition")
	}
	if got := g.Master(); got != "Skyrim.esm" {
		t.Errorf("Master() = %q, want %q", got, "Skyrim.esm")
	}
	if got := g.GamePath(); got != "" {
		t.Errorf("GamePath() = %q, want empty", got)
	}
	if got := g.GameLocalPath(); got != "" {
		t.Errorf("GameLocalPath() = %q, want empty", got)
	}
}

func TestGame_SetPaths(t *testing.T) {
	g := NewGame(gameid.FO4)
	g.SetGamePath("/games/fallout4")
	g.SetGameLocalPath("/local/Fallout4")

	if got := g.GamePath(); got != "/games/fallout4" {
		t.Errorf("GamePath() = %q, want %q", got, "/games/fallout4")
	}
	if got := g.GameLocalPath(); got != "/local/Fallout4" {
		t.Errorf("GameLocalPath() = %q, want %q", got, "/local/Fallout4")
	}
}

func TestDefaultLocalPath(t *testing.T) {
	local := filepath.Join(t.TempDir(), "AppData", "Local")
	t.Setenv("LOCALAPPDATA", local)

	got := DefaultLocalPath(gameid.TES5SE)
	want := filepath.Join(local, "Skyrim Special Edition")
	if got != want {
		t.Errorf("DefaultLocalPath(TES5SE) = %q, want %q", got, want)
	}
}

func TestDefaultLocalPath_NoLocalFolder(t *testing.T) {
	// Morrowind keeps all state in the install directory.
	if got := DefaultLocalPath(gameid.TES3); got != "" {
		t.Errorf("DefaultLocalPath(TES3) = %q, want empty", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Games) != 0 {
		t.Errorf("Load() of missing file returned %d games, want 0", len(f.Games))
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loot", "settings.toml")

	g := NewGame(gameid.TES4)
	g.SetGamePath("/games/oblivion")

	saved := &File{Games: []GameConfig{g.Config(), NewGame(gameid.TES3).Config()}}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(loaded.Games) != 2 {
		t.Fatalf("Load() returned %d games, want 2", len(loaded.Games))
	}

	first, err := loaded.Games[0].Game()
	if err != nil {
		t.Fatalf("Game() error = %v", err)
	}
	if got := first.Type(); got != gameid.TypeTES4 {
		t.Errorf("Type() = %q, want %q", got, gameid.TypeTES4)
	}
	if got := first.GamePath(); got != "/games/oblivion" {
		t.Errorf("GamePath() = %q, want %q", got, "/games/oblivion")
	}
	if got := loaded.Games[1].Type; got != string(gameid.TypeTES3) {
		t.Errorf("Games[1].Type = %q, want %q", got, gameid.TypeTES3)
	}
}

func TestGameConfig_UnknownType(t *testing.T) {
	c := GameConfig{Type: "daggerfall", Name: "Daggerfall", Master: "DAGGER.ESM"}
	if _, err := c.Game(); err == nil {
		t.Error("Game() with unknown type should fail")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("games = [ not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed file should fail")
	}
}
