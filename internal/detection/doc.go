// Package detection locates installed games and classifies the storefront
// each install was bought from.
//
// Detection is read-only: it inspects directory contents and reads registry
// values through an injected registry.Reader, and never mutates anything.
// Results are point-in-time facts about the filesystem; they are not cached
// or persisted.
package detection
