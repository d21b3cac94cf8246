// Package ls lists the immediate entries of a directory.
//
// The front end uses this to let the user browse into a tree before deciding
// what to delete. Only one level is listed per call; recursion is the
// caller's concern (and du's, for sizes).
package ls

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/sweep/internal/fsops"
)

// Options configures a list operation.
type Options struct {
	DirsOnly bool // List only subdirectories
}

// Entry is a single directory entry.
type Entry struct {
	Name    string    `json:"name"`
	Dir     bool      `json:"dir"`
	Bytes   int64     `json:"bytes"`
	ModTime time.Time `json:"mod_time"`
}

// Result contains the outcome of a list operation.
type Result struct {
	Path    string  `json:"path"`
	Entries []Entry `json:"entries"`
}

// Run lists the immediate entries of path, directories first.
func Run(ctx context.Context, w io.Writer, fsys fsops.FS, path string, opts Options) (Result, error) {
	result := Result{Path: path}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return result, fsops.Classify(err)
	}

	for _, e := range entries {
		if opts.DirsOnly && !e.IsDir() {
			continue
		}
		entry := Entry{Name: e.Name(), Dir: e.IsDir()}
		// Info failure means the entry vanished mid-listing; report the name anyway
		if info, err := e.Info(); err == nil {
			entry.Bytes = info.Size()
			entry.ModTime = info.ModTime()
		}
		result.Entries = append(result.Entries, entry)
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		a, b := result.Entries[i], result.Entries[j]
		if a.Dir != b.Dir {
			return a.Dir
		}
		return a.Name < b.Name
	})

	for _, e := range result.Entries {
		if e.Dir {
			fmt.Fprintf(w, "%s/\n", e.Name)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", e.Name, humanize.IBytes(uint64(e.Bytes)))
		}
	}

	return result, nil
}
