// fake.go implements an in-memory FS for tests.
//
// Records delete calls without performing actual deletions, proving what a
// command would remove. Grounded on the same contract as the OS
// implementation: Lstat on a missing path returns a *PathError wrapping
// fs.ErrNotExist.

package fsops

import (
	"io/fs"
	"os"
	"sort"
	"time"
)

// Fake implements FS for testing. Paths maps a path to whether it is a
// directory. RemoveAll records calls and deletes matching entries unless
// RemoveErr is set.
type Fake struct {
	Paths     map[string]bool
	Removed   []string
	LstatErr  error
	RemoveErr error
}

// NewFake creates a Fake containing the given directory paths.
func NewFake(dirs ...string) *Fake {
	f := &Fake{Paths: make(map[string]bool)}
	for _, d := range dirs {
		f.Paths[d] = true
	}
	return f
}

func (f *Fake) Lstat(path string) (os.FileInfo, error) {
	if f.LstatErr != nil {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: f.LstatErr}
	}
	isDir, ok := f.Paths[path]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return fakeInfo{name: path, dir: isDir}, nil
}

func (f *Fake) ReadDir(path string) ([]os.DirEntry, error) {
	if _, ok := f.Paths[path]; !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	var entries []os.DirEntry
	for p, isDir := range f.Paths {
		if p != path && len(p) > len(path) && p[:len(path)] == path {
			entries = append(entries, fs.FileInfoToDirEntry(fakeInfo{name: p, dir: isDir}))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (f *Fake) RemoveAll(path string) error {
	f.Removed = append(f.Removed, path)
	if f.RemoveErr != nil {
		return &fs.PathError{Op: "removeall", Path: path, Err: f.RemoveErr}
	}
	for p := range f.Paths {
		if p == path || (len(p) > len(path) && p[:len(path)] == path) {
			delete(f.Paths, p)
		}
	}
	return nil
}

type fakeInfo struct {
	name string
	dir  bool
}

func (i fakeInfo) Name() string { return i.name }
func (i fakeInfo) Size() int64  { return 0 }
func (i fakeInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }
