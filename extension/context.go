// context.go defines the Context interface for extension access to sweep
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// The command handlers are constructed with explicit dependencies and
// registered with the call-routing registry at initialisation; there is no
// hidden shared state for them to reach into.
//
// Design: Context uses an interface to enable testing with fake
// implementations. Extensions receive Context during Init(), not at
// construction, to support the two-phase initialisation pattern where
// extensions register before the filesystem and config are wired up.

package extension

import (
	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/fsops"
)

// Context provides extensions controlled access to sweep internals.
// Extensions receive this during initialisation to access shared resources.
type Context interface {
	// FS returns the filesystem the extension's operations act on.
	FS() fsops.FS

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	fsys fsops.FS
	cfg  *config.Config
}

// NewContext creates a new extension context.
func NewContext(fsys fsops.FS, cfg *config.Config) Context {
	return &extContext{
		fsys: fsys,
		cfg:  cfg,
	}
}

// FS returns the filesystem operations act on.
func (c *extContext) FS() fsops.FS {
	return c.fsys
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
