// Package fsops abstracts the filesystem operations sweep performs.
//
// Commands receive an FS instead of calling the os package directly so that
// tests can prove exactly what would be deleted without touching the real
// filesystem. The OS implementation is a direct pass-through: sweep does not
// reimplement recursive deletion, it delegates to os.RemoveAll and inherits
// that primitive's semantics for symlinks, open handles, and permissions.
package fsops

import "os"

// FS provides the filesystem operations used by sweep commands.
type FS interface {
	// Lstat returns information about the entry at path without following
	// symlinks. Used to preserve remove_dir_all's not-found contract, since
	// os.RemoveAll reports success for missing paths.
	Lstat(path string) (os.FileInfo, error)

	// ReadDir lists the immediate entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// RemoveAll deletes path and everything it contains.
	RemoveAll(path string) error
}

type osFS struct{}

// NewOS returns an FS backed by real os package calls.
func NewOS() FS {
	return osFS{}
}

func (osFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

func (osFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (osFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
