package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/RacerBG/loot/internal/gameid"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidGame indicates an unrecognized game ID.
	ErrInvalidGame = errors.New("invalid game")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	// Validate game IDs
	for _, game := range cfg.DefaultGames {
		if _, err := gameid.ParseGameID(game); err != nil {
			errs = append(errs, &GameError{
				Game: game,
				Err:  ErrInvalidGame,
			})
		}
	}

	// Validate per-game overrides
	for game, override := range cfg.Games {
		if _, err := gameid.ParseGameID(game); err != nil {
			errs = append(errs, &GameError{
				Game: game,
				Err:  ErrInvalidGame,
			})
		}

		if override.Path != "" {
			if err := validatePath(override.Path); err != nil {
				errs = append(errs, &PathError{
					Field: game + ".path",
					Path:  override.Path,
					Err:   err,
				})
			}
		}

		if override.LocalPath != "" {
			if err := validatePath(override.LocalPath); err != nil {
				errs = append(errs, &PathError{
					Field: game + ".local_path",
					Path:  override.LocalPath,
					Err:   err,
				})
			}
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// GameError represents an error for a specific game entry.
type GameError struct {
	Game string
	Err  error
}

func (e *GameError) Error() string {
	return e.Err.Error() + ": " + e.Game
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
