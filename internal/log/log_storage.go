// log_storage.go holds the SQLite persistence behind the fluent API in
// log.go. The project column is a short hash of the working directory so
// entries can be grouped per project without storing paths.
//
// Write errors are reported on stderr and otherwise ignored: a parse must
// succeed even if it cannot be recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	run     string
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (run, start, end, project, source, action, input, unit,
		                 result, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.run, e.Start.UnixMilli(), e.End.UnixMilli(), l.project, e.Source, e.Action,
		nilIfEmpty(e.Input), nilIfEmpty(e.Unit), e.Result,
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "worthit: audit log write failed: %v\n", err)
	}
}

func (l *Logger) recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.Query(`
		SELECT id, run, start, end, source, action, input, unit, result, success, error, detail
		FROM log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                           Entry
			start, end                  int64
			input, unit, errMsg, detail sql.NullString
			result                      sql.NullFloat64
			success                     int
		)
		if err := rows.Scan(&e.ID, &e.Run, &start, &end, &e.Source, &e.Action,
			&input, &unit, &result, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("reading audit log: %w", err)
		}
		e.Start = time.UnixMilli(start)
		e.End = time.UnixMilli(end)
		e.Input = input.String
		e.Unit = unit.String
		if result.Valid {
			v := result.Float64
			e.Result = &v
		}
		e.Success = success == 1
		e.Error = errMsg.String
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Containers without a home directory still get a log.
		return filepath.Join(".worthit", "log", "worthit-log.db")
	}
	return filepath.Join(home, ".worthit", "log", "worthit-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a 16 hex char project identifier from a directory path.
func hash(s string) string {
	h, err := blake2b.New(8, nil)
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run      TEXT NOT NULL,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			project  TEXT NOT NULL,
			source   TEXT NOT NULL,
			action   TEXT NOT NULL,
			input    TEXT,
			unit     TEXT,
			result   REAL,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_run ON log(run);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
	`)
	return err
}

// nilIfEmpty stores empty strings as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
