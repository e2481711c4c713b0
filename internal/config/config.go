// Package config provides configuration management for loot using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/RacerBG/loot/internal/gameid"
)

// AppName is the application name used for config file naming.
const AppName = "loot"

// Config represents the top-level configuration structure.
type Config struct {
	Version      int                     `mapstructure:"version" yaml:"version"`
	DefaultGames []string                `mapstructure:"default_games" yaml:"default_games"`
	Games        map[string]GameOverride `mapstructure:"games" yaml:"games"`
}

// GameOverride contains configured paths for a specific game.
type GameOverride struct {
	Path      string `mapstructure:"path" yaml:"path"`
	LocalPath string `mapstructure:"local_path" yaml:"local_path"`
}

// defaultGameNames returns all supported game IDs as strings, for the
// default_games default.
func defaultGameNames() []string {
	ids := gameid.GameIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("LOOT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_games", defaultGameNames())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:      1,
		DefaultGames: defaultGameNames(),
	}
}
