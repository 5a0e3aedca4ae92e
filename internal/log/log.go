// Package log provides audit logging for worthit. Every parse, explain,
// batch and ROI request from the CLI, MCP server or HTTP API is recorded in
// ~/.worthit/log/worthit-log.db so past answers can be reviewed with
// "worthit history".
//
// # Fluent API
//
//	log.Event("phrase:parse", "parse").
//		Input(phrase).
//		Unit(unit.String()).
//		Result(value).
//		Write(err)
//
//	log.Event("phrase:batch", "batch").
//		Detail("phrases", len(lines)).
//		Detail("failed", failed).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands, "mcp:{tool}" for MCP tools and "http:{route}" for the HTTP API.
package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// ErrNotOpen is returned by queries made before Open.
var ErrNotOpen = errors.New("audit log is not open")

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	ID      int64          `json:"id,omitempty"`
	Run     string         `json:"run"`              // ULID shared by every entry of one process
	Source  string         `json:"source"`           // e.g. "phrase:parse", "mcp:worthit_roi"
	Action  string         `json:"action"`           // parse, explain, batch, assess, config
	Input   string         `json:"input,omitempty"`  // phrase as given
	Unit    string         `json:"unit,omitempty"`   // output unit of Result
	Result  *float64       `json:"result,omitempty"` // nil when nothing was produced
	Start   time.Time      `json:"start"`
	End     time.Time      `json:"end"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g. "phrase:parse", "assess:roi")
//   - MCP tools: "mcp:{tool}" (e.g. "mcp:worthit_parse")
//   - HTTP API: "http:{route}" (e.g. "http:parse")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now(),
		},
	}
}

// Input sets the phrase the operation was asked about.
func (b *Builder) Input(s string) *Builder {
	b.entry.Input = s
	return b
}

// Unit sets the unit the result is expressed in.
func (b *Builder) Unit(u string) *Builder {
	b.entry.Unit = u
	return b
}

// Result sets the numeric outcome. Leave unset when there is none.
func (b *Builder) Result(v float64) *Builder {
	b.entry.Result = &v
	return b
}

// Detail adds a key-value pair to the entry's detail map. Use for data that
// doesn't fit the standard fields: counts, recommendations, config keys.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
//
//	v, ok := duration.Parse(phrase, cfg)
//	l := log.Event("phrase:parse", "parse").Input(phrase)
//	if !ok {
//		l.Write(validate.ErrUnparsable)
//		return ...
//	}
//	l.Result(v).Write(nil)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may ignore them (best-effort logging).
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

	global = &Logger{db: db, run: ulid.Make().String()}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// dir is normally the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// RunID returns the ULID tagging this process's entries, or "" when closed.
func RunID() string {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return ""
	}
	return global.run
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

// Recent returns up to limit entries, newest first.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, ErrNotOpen
	}
	return l.recent(limit)
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
