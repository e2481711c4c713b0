package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	// Reset viper state
	viper.Reset()

	Init()

	// Check defaults are set
	if viper.GetInt("version") != 1 {
		t.Errorf("expected version default 1, got %d", viper.GetInt("version"))
	}

	games := viper.GetStringSlice("default_games")
	if len(games) == 0 {
		t.Error("expected default_games to have values")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()

	// Run from an empty dir to avoid loading a stray config from the cwd
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})

	Init()

	// Load with no config file should not error
	cfg, err := Load("")
	if err != nil {
		t.Errorf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Error("expected config to be returned")
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	// Create temp config file
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("default_games:\n  - tes5se\n  - fo4\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.DefaultGames) != 2 {
		t.Errorf("expected 2 games, got %d", len(cfg.DefaultGames))
	}
}

func TestLoad_GameOverrides(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("games:\n  tes5se:\n    path: /games/skyrim-se\n    local_path: /saves/skyrim-se\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	override, ok := cfg.Games["tes5se"]
	if !ok {
		t.Fatal("expected tes5se override to be present")
	}
	if override.Path != "/games/skyrim-se" {
		t.Errorf("Path = %q, want /games/skyrim-se", override.Path)
	}
	if override.LocalPath != "/saves/skyrim-se" {
		t.Errorf("LocalPath = %q, want /saves/skyrim-se", override.LocalPath)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	viper.Reset()
	Init()

	// Load with non-existent config file should error
	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "valid config",
			cfg:  Default(),
		},
		{
			name:    "version too low",
			cfg:     &Config{Version: 0},
			wantErr: ErrVersionTooLow,
		},
		{
			name: "invalid default game",
			cfg: &Config{
				Version:      1,
				DefaultGames: []string{"skyrim2077"},
			},
			wantErr: ErrInvalidGame,
		},
		{
			name: "invalid game override key",
			cfg: &Config{
				Version: 1,
				Games:   map[string]GameOverride{"skyrim2077": {}},
			},
			wantErr: ErrInvalidGame,
		},
		{
			name: "malformed override path",
			cfg: &Config{
				Version: 1,
				Games:   map[string]GameOverride{"tes5se": {Path: "."}},
			},
			wantErr: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)

			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}

			found := false
			for _, err := range errs {
				if errors.Is(err, tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() = %v, want an error matching %v", errs, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	errs := Validate(nil)
	if len(errs) != 1 {
		t.Fatalf("Validate(nil) = %v, want exactly one error", errs)
	}
}
