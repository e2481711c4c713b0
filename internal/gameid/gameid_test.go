package gameid

import (
	"errors"
	"testing"
)

func TestParseGameID(t *testing.T) {
	for _, id := range GameIDs() {
		t.Run(string(id), func(t *testing.T) {
			got, err := ParseGameID(string(id))
			if err != nil {
				t.Fatalf("ParseGameID(%q) error: %v", id, err)
			}
			if got != id {
				t.Errorf("ParseGameID(%q) = %q, want %q", id, got, id)
			}
		})
	}
}

func TestParseGameID_Unknown(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown game", input: "daggerfall"},
		{name: "empty string", input: ""},
		{name: "case sensitive", input: "TES5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameID(tt.input)
			if !errors.Is(err, ErrUnknownGameID) {
				t.Errorf("ParseGameID(%q) error = %v, want ErrUnknownGameID", tt.input, err)
			}
		})
	}
}

func TestGameID_Type(t *testing.T) {
	tests := []struct {
		id   GameID
		want GameType
	}{
		{TES3, TypeTES3},
		{TES4, TypeTES4},
		{Nehrim, TypeTES4},
		{TES5, TypeTES5},
		{Enderal, TypeTES5},
		{TES5SE, TypeTES5SE},
		{EnderalSE, TypeTES5SE},
		{TES5VR, TypeTES5VR},
		{FO3, TypeFO3},
		{FONV, TypeFONV},
		{FO4, TypeFO4},
		{FO4VR, TypeFO4VR},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := tt.id.Type(); got != tt.want {
				t.Errorf("Type() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGameID_MasterFilename(t *testing.T) {
	tests := []struct {
		id   GameID
		want string
	}{
		{TES3, "Morrowind.esm"},
		{TES4, "Oblivion.esm"},
		{Nehrim, "Nehrim.esm"},
		{TES5, "Skyrim.esm"},
		{Enderal, "Skyrim.esm"},
		{TES5SE, "Skyrim.esm"},
		{EnderalSE, "Skyrim.esm"},
		{TES5VR, "Skyrim.esm"},
		{FO3, "Fallout3.esm"},
		{FONV, "FalloutNV.esm"},
		{FO4, "Fallout4.esm"},
		{FO4VR, "Fallout4.esm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := tt.id.MasterFilename(); got != tt.want {
				t.Errorf("MasterFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGameType_PluginsFolderName(t *testing.T) {
	if got := TypeTES3.PluginsFolderName(); got != "Data Files" {
		t.Errorf("TES3 PluginsFolderName() = %q, want \"Data Files\"", got)
	}

	for _, typ := range []GameType{TypeTES4, TypeTES5, TypeTES5SE, TypeTES5VR, TypeFO3, TypeFONV, TypeFO4, TypeFO4VR} {
		if got := typ.PluginsFolderName(); got != "Data" {
			t.Errorf("%s PluginsFolderName() = %q, want \"Data\"", typ, got)
		}
	}
}

// Every table must be total over the enumeration: a new game added without
// updating a table should be caught here, not at runtime in production.
func TestTablesAreTotal(t *testing.T) {
	for _, id := range GameIDs() {
		t.Run(string(id), func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("table lookup panicked: %v", r)
				}
			}()

			_ = id.Type()
			_ = id.Name()
			_ = id.MasterFilename()
			_ = id.LocalFolderName()
			_ = id.Type().PluginsFolderName()
		})
	}
}

func TestGameID_LocalFolderName(t *testing.T) {
	if got := TES3.LocalFolderName(); got != "" {
		t.Errorf("TES3 LocalFolderName() = %q, want \"\" (Morrowind has no local folder)", got)
	}

	if got := Nehrim.LocalFolderName(); got != "Oblivion" {
		t.Errorf("Nehrim LocalFolderName() = %q, want \"Oblivion\"", got)
	}

	for _, id := range GameIDs() {
		if id == TES3 {
			continue
		}
		if id.LocalFolderName() == "" {
			t.Errorf("%s LocalFolderName() is empty, only TES3 should be", id)
		}
	}
}
