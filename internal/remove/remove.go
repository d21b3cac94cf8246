// Package remove implements recursive directory removal, the operation the
// desktop front end invokes as remove_dir_all.
//
// The operation is a deliberate pass-through to the host filesystem's
// recursive-delete primitive: no path validation, no confirmation, no retry,
// and no attempt at atomicity. A failure partway through may leave partial
// deletion; that matches the contract the front end was built against.
package remove

import (
	"context"
	"fmt"
	"io"

	"github.com/jpl-au/sweep/internal/fsops"
)

// Result contains the outcome of a removal.
type Result struct {
	Path string `json:"path"`
}

// Run deletes path and everything beneath it.
//
// os.RemoveAll reports success for paths that do not exist, but the front
// end's contract requires a "does not exist" failure (deleting twice must
// fail the second time). Lstat first preserves that contract. The check and
// the delete are not atomic; a concurrent caller may still win the race,
// surfacing as whatever error the filesystem produces.
func Run(ctx context.Context, w io.Writer, fsys fsops.FS, path string) (Result, error) {
	result := Result{Path: path}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if _, err := fsys.Lstat(path); err != nil {
		return result, fsops.Classify(err)
	}

	if err := fsys.RemoveAll(path); err != nil {
		return result, fsops.Classify(err)
	}

	fmt.Fprintf(w, "Removed %s\n", path)
	return result, nil
}
