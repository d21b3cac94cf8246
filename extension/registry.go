// registry.go implements the extension registration system.
//
// Separated from extension.go to isolate the global registry state.
// Extensions self-register during init(), before main() runs, giving the
// root command and the bridge server the same fixed set of handlers to
// route to. Registration order is preserved so command ordering is
// deterministic across runs.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // preserve registration order
)

// Register adds an extension to the registry. Called from init() functions.
//
// Duplicate names panic rather than returning an error: registration happens
// at init time, so a duplicate is a programmer mistake, not a runtime
// condition. This follows the database/sql.Register convention.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}
