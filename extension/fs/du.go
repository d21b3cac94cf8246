// du.go implements the "sweep du" command for disk usage reporting.
//
// Separated from fs.go to isolate the scan flag handling. The front end
// calls the equivalent bridge tool before offering a delete, so the user
// sees what a removal would reclaim.

package fs

import (
	"fmt"
	"io"

	"github.com/jpl-au/sweep/cmd"
	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/du"
	"github.com/jpl-au/sweep/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newDuCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "du <path>",
		Short: "Report disk usage of a directory tree",
		Long: `Walk a directory tree and report its total size, entry counts, and the
largest immediate children with their recursive sizes.

Unreadable entries below the root are skipped; the reported figure is a
lower bound for partially unreadable trees.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runDu,
	}
	c.Flags().Int(extension.FlagTop, 0, "Number of largest children to report")
	return c
}

func (e *Extension) runDu(c *cobra.Command, args []string) error {
	ctx := c.Context()
	path := args[0]
	top, _ := c.Flags().GetInt(extension.FlagTop)

	if top < 0 {
		return cmd.PrintJSONError(fmt.Errorf("top must be >= 0, got %d", top))
	}
	if top == 0 {
		top = e.cfg.ScanTop()
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	l := log.Event("fs:du", "scan").Path(path).Detail("top", top)

	result, err := du.Run(ctx, w, e.fsys, path, du.Options{Top: top})
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("du %q: %w", path, err))
	}

	l.Bytes(result.TotalBytes).Entries(len(result.Largest)).Write(nil)
	return cmd.PrintJSON(result)
}
