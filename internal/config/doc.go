// Package config provides configuration management for the loot CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from per-game settings, which are managed by the
// settings package.
//
// # Configuration File
//
// The default configuration file location is ~/.config/loot/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	default_games:
//	  - tes5se
//	  - fo4
//	games:
//	  tes5se:
//	    path: /games/skyrim-se       # configured install path
//	    local_path: /saves/skyrim-se # configured local app data path
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Passing a non-empty path to [Load] reads that specific file; an empty
// path searches the default locations and falls back to defaults when no
// file exists.
//
// # Validation
//
// [Validate] returns all problems found rather than stopping at the first:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// # Default Values
//
// The [Default] function returns a configuration with sensible defaults:
//
//	cfg := config.Default()
//	// cfg.Version = 1
//	// cfg.DefaultGames = all supported games
package config
