// Package loadorder projects plugin load orders through caller-supplied
// mapping functions.
//
// Mapping happens in two phases. The indexing phase walks the load order
// sequentially and assigns each active plugin its position within its weight
// class's activation sequence; this has a data dependency on iteration order
// and cannot be parallelised. The transform phase applies the mapper to each
// indexed entry concurrently, because mappers are sometimes slow.
//
// Callers that source plugin handles from shared state must hold their own
// lock while the indexing phase runs. The transform phase only touches the
// already-copied entries, so the lock can be released before mapping.
package loadorder

import (
	"log/slog"
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
)

// Plugin is the subset of plugin metadata mapping needs. Implementations
// come from the enclosing application's plugin loader.
type Plugin interface {
	// Name returns the plugin's filename.
	Name() string

	// IsLightPlugin returns true for light-weight plugins, which have their
	// own active-slot numbering independent of normal-weight plugins.
	IsLightPlugin() bool
}

// State is the mapper's read-only view of the enclosing game state.
type State interface {
	// Plugin returns the loaded plugin with the given name, or nil if the
	// plugin is not currently loaded.
	Plugin(name string) Plugin

	// IsPluginActive returns true if the named plugin is active.
	IsPluginActive(name string) bool
}

// Entry pairs a plugin with its activation data for one mapping call.
type Entry struct {
	// Plugin is the resolved plugin handle.
	Plugin Plugin

	// ActiveIndex is the plugin's position within its weight class's
	// activation sequence, or nil when the plugin is inactive.
	ActiveIndex *int

	// Active reports whether the plugin is active.
	Active bool
}

// Index walks the load order once, in order, and derives each plugin's
// activation entry. Names that do not resolve to a loaded plugin are skipped
// silently (they are listed but not loaded), so the result may be shorter
// than the load order. Light-weight and normal-weight active counters are
// independent, start at 0, and increment only for active plugins.
func Index(state State, loadOrder []string) []Entry {
	entries := make([]Entry, 0, len(loadOrder))

	activeLightCount := 0
	activeNormalCount := 0

	for _, name := range loadOrder {
		plugin := state.Plugin(name)
		if plugin == nil {
			continue
		}

		isLight := plugin.IsLightPlugin()
		isActive := state.IsPluginActive(name)

		var activeIndex *int
		if isActive {
			index := activeNormalCount
			if isLight {
				index = activeLightCount
			}
			activeIndex = &index
		}

		entries = append(entries, Entry{
			Plugin:      plugin,
			ActiveIndex: activeIndex,
			Active:      isActive,
		})

		if isActive {
			if isLight {
				activeLightCount++
			} else {
				activeNormalCount++
			}
		}
	}

	return entries
}

// Map applies mapper to each entry concurrently and returns the results in
// entry order.
//
// Every entry is mapped even if another entry's mapper fails: the failure is
// captured per item rather than short-circuiting, so one bad plugin cannot
// stop or corrupt its siblings. If any mapper invocation failed, Map returns
// a single error carrying the first failure in entry order (not completion
// order), and no partial results.
func Map[T any](logger *slog.Logger, entries []Entry, mapper func(Entry) (T, error)) ([]T, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	type outcome struct {
		value T
		err   error
	}

	// Each worker writes only to its own entries' slots, so no lock is
	// needed around the output.
	outcomes := make([]outcome, len(entries))

	workers := runtime.GOMAXPROCS(0)
	if len(entries) < workers {
		workers = len(entries)
	}

	work := make(chan int, len(entries))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				value, err := applyMapper(mapper, entries[i])
				if err != nil {
					logger.Error("failed to map load order entry",
						"plugin", entries[i].Plugin.Name(),
						"error", err)
				}
				outcomes[i] = outcome{value: value, err: err}
			}
		}()
	}

	for i := range entries {
		work <- i
	}
	close(work)

	wg.Wait()

	results := make([]T, 0, len(outcomes))
	for i, out := range outcomes {
		if out.err != nil {
			return nil, errors.Wrapf(out.err, "mapping plugin %q", entries[i].Plugin.Name())
		}
		results = append(results, out.value)
	}

	return results, nil
}

// applyMapper invokes the mapper for one entry, converting a panic into an
// error so one bad invocation cannot take down the sibling workers.
func applyMapper[T any](mapper func(Entry) (T, error), entry Entry) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("mapper panicked: %v", r)
		}
	}()

	return mapper(entry)
}

// MapLoadOrder indexes the load order and maps every resolved entry.
// An empty load order yields an empty result without invoking the mapper.
func MapLoadOrder[T any](logger *slog.Logger, state State, loadOrder []string, mapper func(Entry) (T, error)) ([]T, error) {
	return Map(logger, Index(state, loadOrder), mapper)
}
