/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Filesystem maintenance back end for desktop front ends",
	Long: `A filesystem maintenance back end. Deletes directory trees, reports disk
usage, and lists directories - as CLI commands for direct use, or as bridge
tools served over stdio for a desktop front end ("sweep serve").`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, and executes the command.
// Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger unless disabled (warn if it fails, but continue)
	if cfg, err := config.Load(); err != nil || cfg.LogEnabled() {
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
		}
		if wd, err := os.Getwd(); err == nil {
			log.SetOrigin(wd)
		}
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
