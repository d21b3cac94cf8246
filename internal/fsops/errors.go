// errors.go defines the structured error taxonomy for filesystem operations.
//
// Separated to centralise error definitions. The bridge serialises every
// failure to a message string for the front end, but internally each failure
// carries a kind sentinel so callers can branch with errors.Is rather than
// re-parsing message text.

package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrNotFound indicates the target path does not exist.
	ErrNotFound = errors.New("does not exist")
	// ErrPermission indicates the caller lacks permission for the target.
	ErrPermission = errors.New("permission denied")
	// ErrNotDirectory indicates a path component is not a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// Classify wraps err with the matching kind sentinel, preserving the
// original OS error text for the boundary. Errors that match no known kind
// are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", ErrPermission, err)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %v", ErrNotDirectory, err)
	default:
		return err
	}
}
