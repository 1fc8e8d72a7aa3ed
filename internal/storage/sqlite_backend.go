package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JamesPrial/todo/internal/task"

	_ "modernc.org/sqlite" // register sqlite driver
)

// schemaDDL defines the database schema for the SQLite backend.
//
// position records the list order; the store's ordering rules depend on it,
// so rows are always read back ORDER BY position.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS tasks (
    position INTEGER NOT NULL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    due_date TEXT NOT NULL DEFAULT '',
    priority INTEGER NOT NULL CHECK (priority >= 0),
    auto_delete INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteBackend implements Backend using a SQLite database file.
type SQLiteBackend struct {
	// DBPath is the absolute path to the SQLite database file.
	DBPath string
}

// NewSQLiteBackend creates a new SQLiteBackend and initializes the database schema.
//
// Parent directories are created if they don't exist.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	backend := &SQLiteBackend{
		DBPath: dbPath,
	}

	if err := backend.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return backend, nil
}

// connect opens a new database connection in WAL mode.
func (b *SQLiteBackend) connect() (*sql.DB, error) {
	dir := filepath.Dir(b.DBPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create database directory: %w", ErrIO, err)
	}

	db, err := sql.Open("sqlite", b.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrIO, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to set WAL mode: %w", ErrIO, err)
	}

	return db, nil
}

func (b *SQLiteBackend) ensureSchema() error {
	db, err := b.connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("%w: failed to execute schema DDL: %w", ErrIO, err)
	}

	return nil
}

// Load returns all tasks ordered by position.
func (b *SQLiteBackend) Load() ([]task.Task, error) {
	db, err := b.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(`
		SELECT name, description, due_date, priority, auto_delete
		FROM tasks
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query tasks: %w", ErrIO, err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]task.Task, 0)
	for rows.Next() {
		var t task.Task
		var priority int64
		if err := rows.Scan(&t.Name, &t.Description, &t.DueDate, &priority, &t.AutoDelete); err != nil {
			return nil, fmt.Errorf("%w: failed to scan task: %w", ErrIO, err)
		}
		if priority < 0 || priority > int64(^uint32(0)) {
			return nil, fmt.Errorf("%w: task %q has out of range priority %d", task.ErrMalformedRecord, t.Name, priority)
		}
		t.Priority = uint32(priority)
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating rows: %w", ErrIO, err)
	}

	return result, nil
}

// Save replaces every stored task inside a single transaction.
func (b *SQLiteBackend) Save(tasks []task.Task) error {
	db, err := b.connect()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrIO, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("%w: failed to clear tasks: %w", ErrIO, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks (position, name, description, due_date, priority, auto_delete)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %w", ErrIO, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range tasks {
		if _, err := stmt.Exec(i, t.Name, t.Description, t.DueDate, int64(t.Priority), t.AutoDelete); err != nil {
			return fmt.Errorf("%w: failed to insert task %q: %w", ErrIO, t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit tasks: %w", ErrIO, err)
	}

	return nil
}
