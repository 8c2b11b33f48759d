// Package storage keeps a SQLite journal of recognized voice commands.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/voicerun/internal/voice"
)

// Journal manages the SQLite database connection.
type Journal struct {
	db *sql.DB
}

// Entry is one recognized command.
type Entry struct {
	ID         int64
	RunID      string
	Language   string
	Transcript string // Partial hypothesis that triggered the command
	Command    string
	CreatedAt  time.Time
}

// RunSummary aggregates the entries of one play session.
type RunSummary struct {
	RunID    string
	Commands int
	First    time.Time
	Last     time.Time
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Journal, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema if it doesn't exist.
// created_at holds Unix milliseconds.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recognitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT '',
			transcript TEXT NOT NULL,
			command TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_recognitions_run_id ON recognitions(run_id);
		CREATE INDEX IF NOT EXISTS idx_recognitions_created ON recognitions(created_at DESC);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores one entry and returns its ID. A zero CreatedAt means now.
func (j *Journal) Record(e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	result, err := j.db.Exec(
		`INSERT INTO recognitions (run_id, language, transcript, command, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.RunID, e.Language, e.Transcript, e.Command, e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent returns the newest entries first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	return j.query(
		`SELECT id, run_id, language, transcript, command, created_at
		 FROM recognitions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// ByRun returns every entry of one run in the order it was recorded.
func (j *Journal) ByRun(runID string) ([]Entry, error) {
	return j.query(
		`SELECT id, run_id, language, transcript, command, created_at
		 FROM recognitions
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
}

func (j *Journal) query(q string, args ...any) ([]Entry, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Language, &e.Transcript, &e.Command, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CommandCounts returns how often each command was recognized.
func (j *Journal) CommandCounts() (map[string]int, error) {
	rows, err := j.db.Query(`SELECT command, COUNT(*) FROM recognitions GROUP BY command`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count commands: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cmd string
		var n int
		if err := rows.Scan(&cmd, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan counts row: %w", err)
		}
		counts[cmd] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// Runs summarizes the most recent runs, newest first.
func (j *Journal) Runs(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := j.db.Query(
		`SELECT run_id, COUNT(*), MIN(created_at), MAX(created_at)
		 FROM recognitions
		 GROUP BY run_id
		 ORDER BY MAX(created_at) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var first, last int64
		if err := rows.Scan(&r.RunID, &r.Commands, &first, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run row: %w", err)
		}
		r.First = time.UnixMilli(first)
		r.Last = time.UnixMilli(last)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Prune deletes everything but the newest keep entries and returns how many
// rows were removed.
func (j *Journal) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := j.db.Exec(
		`DELETE FROM recognitions WHERE id NOT IN (
			SELECT id FROM recognitions ORDER BY created_at DESC, id DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune journal: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned rows: %w", err)
	}
	return n, nil
}

// Recorder returns a voice.Recorder that files events under runID.
// This adapter lets the bridge journal commands without a storage dependency.
func (j *Journal) Recorder(runID, language string) voice.Recorder {
	return runRecorder{journal: j, runID: runID, language: language}
}

type runRecorder struct {
	journal  *Journal
	runID    string
	language string
}

func (r runRecorder) Record(ev voice.Event) error {
	_, err := r.journal.Record(Entry{
		RunID:      r.runID,
		Language:   r.language,
		Transcript: ev.Partial,
		Command:    ev.Command.String(),
		CreatedAt:  ev.At,
	})
	return err
}
