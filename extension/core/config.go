// config.go implements the "sweep config" command for configuration
// management.
//
// Separated from extension.go to isolate config-specific logic. Config is a
// single global file; there is no per-project scope because the back end
// runs on behalf of one desktop user.

package core

import (
	"fmt"

	"github.com/jpl-au/sweep/cmd"
	"github.com/jpl-au/sweep/internal/config"
	"github.com/jpl-au/sweep/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  sweep config                      # show config
  sweep config confirm.delete       # show confirm.delete value
  sweep config confirm.delete false # set confirm.delete

Configuration lives in ~/.sweep/config.yaml.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
}

func runConfig(c *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		// Show all values
		for k, v := range cfg.All() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, v)
		}
		log.Event("core:config", "list").Write(nil)

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		// Set value
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "set").Detail("key", args[0]).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		fmt.Fprintf(cmd.Out(), "%s = %s\n", args[0], args[1])
	}
	return nil
}
