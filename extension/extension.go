// Package extension provides the plugin architecture for sweep. Extensions
// encapsulate related functionality (CLI commands, bridge tools) and register
// at init time, enabling modular feature development without touching core
// code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for sweep extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// BridgeTools returns tools to register with the bridge server.
	BridgeTools() []BridgeTool
}

// Initializable extensions receive shared resources before their commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}
