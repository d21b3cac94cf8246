// Package du computes disk usage for a directory tree.
//
// The front end calls this before offering a delete, so the user can see
// what a removal would reclaim. Unreadable entries below the root are
// skipped rather than failing the whole scan - a partially unreadable tree
// still produces a useful (lower-bound) figure.
package du

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jpl-au/sweep/internal/fsops"
)

// DefaultTop is the number of largest children reported when not configured.
const DefaultTop = 10

// Options configures a usage scan.
type Options struct {
	Top int // Number of largest immediate children to report. 0 means DefaultTop.
}

// Child is an immediate child of the scanned root with its recursive size.
type Child struct {
	Name  string `json:"name"`
	Bytes int64  `json:"bytes"`
	Dir   bool   `json:"dir"`
}

// Result contains the outcome of a usage scan.
type Result struct {
	Path       string  `json:"path"`
	TotalBytes int64   `json:"total_bytes"`
	FileCount  int64   `json:"file_count"`
	DirCount   int64   `json:"dir_count"`
	Largest    []Child `json:"largest,omitempty"`
}

// Run scans path and reports its total size, counts, and largest children.
func Run(ctx context.Context, w io.Writer, fsys fsops.FS, path string, opts Options) (Result, error) {
	result := Result{Path: path}

	info, err := fsys.Lstat(path)
	if err != nil {
		return result, fsops.Classify(err)
	}

	if !info.IsDir() {
		result.TotalBytes = info.Size()
		result.FileCount = 1
		fmt.Fprintf(w, "%s\t%s\n", humanize.IBytes(uint64(result.TotalBytes)), path)
		return result, nil
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return result, fsops.Classify(err)
	}

	top := opts.Top
	if top == 0 {
		top = DefaultTop
	}

	children := make([]Child, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		child := Child{Name: e.Name(), Dir: e.IsDir()}
		bytes, files, dirs := scanTree(ctx, filepath.Join(path, e.Name()))
		child.Bytes = bytes

		result.TotalBytes += bytes
		result.FileCount += files
		result.DirCount += dirs
		if e.IsDir() {
			result.DirCount++
		}
		children = append(children, child)
	}

	// Largest first; ties break on name for deterministic output
	sort.Slice(children, func(i, j int) bool {
		if children[i].Bytes != children[j].Bytes {
			return children[i].Bytes > children[j].Bytes
		}
		return children[i].Name < children[j].Name
	})
	if len(children) > top {
		children = children[:top]
	}
	result.Largest = children

	for _, c := range children {
		fmt.Fprintf(w, "%s\t%s\n", humanize.IBytes(uint64(c.Bytes)), c.Name)
	}
	fmt.Fprintf(w, "%s\ttotal (%d files, %d dirs)\n",
		humanize.IBytes(uint64(result.TotalBytes)), result.FileCount, result.DirCount)

	return result, nil
}

// scanTree walks root and returns its recursive byte size and entry counts.
// Errors below the root are skipped; the scan is best-effort.
func scanTree(ctx context.Context, root string) (bytes, files, dirs int64) {
	_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != root {
				dirs++
			}
			return nil
		}
		files++
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				bytes += info.Size()
			}
		}
		return nil
	})
	return bytes, files, dirs
}
