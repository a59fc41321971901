// Package journal persists failure reports to SQLite so the diagnostic
// survives the panic that follows it. The journal is written on the
// failure path only; a passing check never touches it.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/randalmurphal/bassert/pkg/bassert/report"
)

// ErrClosed is returned by operations on a closed journal.
var ErrClosed = errors.New("journal is closed")

// Journal records failure reports to SQLite.
// It is suitable for single-process production use.
type Journal struct {
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

// Entry is one recorded failure as read back from the journal.
type Entry struct {
	ID         string
	RecordedAt time.Time
	Kind       string
	Expr       string
	Message    string
	Rendered   string
}

// Open creates or opens a failure journal.
// The path should be a file path (e.g., "./failures.db") or ":memory:" for testing.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode so a crashing process loses at most the last write
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS failures (
			id TEXT PRIMARY KEY,
			recorded_at TEXT NOT NULL,
			kind TEXT NOT NULL,
			expr TEXT NOT NULL,
			message TEXT NOT NULL,
			rendered TEXT NOT NULL,
			stack BLOB
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_failures_recorded_at
		ON failures(recorded_at)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record inserts one failure report.
func (j *Journal) Record(rep *report.Report) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return ErrClosed
	}

	_, err := j.db.Exec(`
		INSERT INTO failures (id, recorded_at, kind, expr, message, rendered, stack)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rep.ID,
		rep.Time.UTC().Format(time.RFC3339Nano),
		rep.Kind.String(),
		rep.Expr,
		rep.Message,
		rep.Render(),
		rep.Stack,
	)
	if err != nil {
		return fmt.Errorf("record failure: %w", err)
	}
	return nil
}

// Recent returns the most recent n failures, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil, ErrClosed
	}

	rows, err := j.db.Query(`
		SELECT id, recorded_at, kind, expr, message, rendered
		FROM failures
		ORDER BY recorded_at DESC, id
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var recordedAt string
		if err := rows.Scan(&e.ID, &recordedAt, &e.Kind, &e.Expr, &e.Message, &e.Rendered); err != nil {
			return nil, fmt.Errorf("scan failure row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			e.RecordedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failure rows: %w", err)
	}
	return entries, nil
}

// Close closes the journal. Further operations return ErrClosed.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true
	return j.db.Close()
}
