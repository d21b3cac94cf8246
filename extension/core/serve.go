// serve.go implements the "sweep serve" command that hosts the front-end
// bridge.
//
// Separated from extension.go because serve has unique lifecycle
// requirements. Unlike other commands that run and exit, serve blocks
// indefinitely handling bridge requests over stdio for as long as the
// desktop application is running.

package core

import (
	"github.com/jpl-au/sweep/internal/bridge"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the bridge server",
		Long: `Start the bridge server over stdio.

The desktop front end spawns this process and invokes filesystem tools
(remove_dir_all, dir_usage, list_dir) through it. stdout carries the
protocol; diagnostics go to stderr.`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return bridge.Serve()
}
