// Package log provides centralised audit logging for sweep operations.
// Logs are stored in ~/.sweep/log/sweep-log.db and track every CLI command
// and bridge tool invocation, which matters for a tool whose whole job is
// irreversible deletion.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("fs:rm", "delete").
//		Path(p).
//		Write(err)
//
//	log.Event("bridge:dir_usage", "scan").
//		Path(p).
//		Bytes(result.TotalBytes).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "bridge:{tool}" for bridge tools. Examples: "fs:rm",
// "bridge:remove_dir_all".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "fs:rm", "bridge:remove_dir_all"
	Action string // verb: delete, scan, list, etc.
	Path   string // input: target path as supplied by the caller

	// Output fields - populated after operation succeeds
	Bytes   int64 // bytes removed or scanned
	Entries int   // entries listed or children scanned

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "fs:rm", "core:config")
//   - Bridge tools: "bridge:{tool}" (e.g., "bridge:remove_dir_all")
//
// The action describes what operation was performed:
//   - "delete", "scan", "list", "get", "set", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the filesystem path this operation targets, exactly as the
// caller supplied it (no normalisation - the log records what was asked).
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Bytes sets the byte count produced by the operation (output).
func (b *Builder) Bytes(n int64) *Builder {
	b.entry.Bytes = n
	return b
}

// Entries sets the number of entries the operation touched (output).
func (b *Builder) Entries(n int) *Builder {
	b.entry.Entries = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// This is the standard way to complete a log entry after an operation.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetOrigin sets the origin identifier for subsequent log entries.
// The dir should be the working directory the command runs from.
func SetOrigin(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.origin = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
