/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern lets extensions declare
// commands before their dependencies exist. The filesystem and config are
// created once and shared across all extensions via the Context - explicit
// dependency injection rather than hidden globals.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/fsops"
)

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and injects shared dependencies into extensions.
//
// Why sync.Once: The context must be identical across all extensions, and
// initialisation must happen exactly once per process even if multiple
// commands somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(fsops.NewOS(), cfg)

		// Inject the shared context into all Initializable extensions.
		// Extensions receive their filesystem rather than reaching for the
		// os package themselves, which is what makes command tests able to
		// substitute a fake.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}
