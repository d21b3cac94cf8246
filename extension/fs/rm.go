// rm.go implements the "sweep rm" command for recursive deletion.
//
// Separated from fs.go to isolate the confirmation prompt handling.
//
// Design: Rm is a hard delete - there is no trash, no undo, and no backup.
// The interactive prompt is the only guard, and it exists purely at the CLI
// surface: the underlying operation passes the path through unchecked, and
// the bridge tool never prompts (the front end owns its own confirmation
// flow).

package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/sweep/cmd"
	"github.com/jpl-au/sweep/internal/log"
	"github.com/jpl-au/sweep/internal/remove"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a directory tree",
		Long: `Delete a directory and everything it contains.

The deletion is irreversible and not atomic: a failure partway through may
leave part of the tree removed. Use --force to skip the confirmation prompt.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runRm,
	}
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	ctx := c.Context()
	path := args[0]

	if e.cfg.ConfirmDelete() && !cmd.Force() {
		ok, err := confirm(path)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("rm %q: %w", path, err))
		}
		if !ok {
			fmt.Fprintln(cmd.Out(), "Aborted")
			return nil
		}
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	l := log.Event("fs:rm", "delete").Path(path)

	result, err := remove.Run(ctx, w, e.fsys, path)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("rm %q: %w", path, err))
	}

	l.Write(nil)
	return cmd.PrintJSON(result)
}

// confirm asks on the terminal before an irreversible delete. Non-interactive
// invocations (pipes, scripts) skip the prompt; --force exists for explicit
// opt-out either way.
func confirm(path string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}

	fmt.Fprintf(os.Stderr, "Remove %s and all its contents? [y/N] ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
