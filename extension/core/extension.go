// Package core provides the core extension for sweep.
// It registers commands: config, serve, guide, version.
package core

import (
	"github.com/jpl-au/sweep/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental sweep commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// BridgeTools returns nil - core commands have no bridge tool equivalents.
// Bridge tools are provided by the fs extension.
func (e *Extension) BridgeTools() []extension.BridgeTool {
	return nil
}
