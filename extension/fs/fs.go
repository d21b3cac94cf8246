// Package fs provides the filesystem extension for sweep's core operations.
// Registers commands: rm, du, ls.
//
// These commands mirror Unix filesystem utilities to provide familiar
// semantics. Each command file is separated to isolate its specific flag
// handling and output formatting logic. The same operations are exposed to
// the desktop front end as bridge tools (see bridge.go).

package fs

import (
	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/fsops"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the filesystem extension.
type Extension struct {
	fsys fsops.FS
	cfg  *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "fs" - this extension handles the core filesystem operations.
func (e *Extension) Name() string { return "fs" }

// Init connects to the shared filesystem and configuration.
func (e *Extension) Init(ctx extension.Context) error {
	e.fsys = ctx.FS()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns Unix-like filesystem commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newRmCmd(),
		e.newDuCmd(),
		e.newLsCmd(),
	}
}
