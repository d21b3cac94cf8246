// ls.go implements the "sweep ls" command for directory listing.

package fs

import (
	"fmt"
	"io"

	"github.com/jpl-au/sweep/cmd"
	"github.com/jpl-au/sweep/extension"
	"github.com/jpl-au/sweep/internal/log"
	"github.com/jpl-au/sweep/internal/ls"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls <path>",
		Short: "List the entries of a directory",
		Long:  `List the immediate entries of a directory, directories first.`,
		Args:  cobra.ExactArgs(1),
		RunE:  e.runLs,
	}
	c.Flags().BoolP(extension.FlagDirsOnly, "d", false, "List only subdirectories")
	return c
}

func (e *Extension) runLs(c *cobra.Command, args []string) error {
	ctx := c.Context()
	path := args[0]
	dirsOnly, _ := c.Flags().GetBool(extension.FlagDirsOnly)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	l := log.Event("fs:ls", "list").Path(path)

	result, err := ls.Run(ctx, w, e.fsys, path, ls.Options{DirsOnly: dirsOnly})
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("ls %q: %w", path, err))
	}

	l.Entries(len(result.Entries)).Write(nil)
	return cmd.PrintJSON(result)
}
