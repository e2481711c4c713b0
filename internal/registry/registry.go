// Package registry defines the boundary to the Windows registry.
//
// The rest of the library only ever reads string values through the Reader
// interface, so non-Windows builds and tests can substitute their own
// implementations.
package registry

import "github.com/cockroachdb/errors"

// ErrValueNotFound indicates the requested key or value does not exist.
// Callers treat this as a normal no-result, not a failure.
var ErrValueNotFound = errors.New("registry value not found")

// Value locates a single registry value: a root key name, a subkey path
// below it, and the name of the value within that subkey. Pure data.
type Value struct {
	Root   string
	Subkey string
	Name   string
}

// Reader reads string values from the registry. Implementations must be
// safe for concurrent use. There are no write operations.
type Reader interface {
	// ReadString returns the string data of the given value.
	// Returns ErrValueNotFound if the key or value does not exist.
	ReadString(value Value) (string, error)
}
