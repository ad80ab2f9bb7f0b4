// Package database persists completed workout sessions and user
// settings in a local sqlite database.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	// The TUI is the only writer; a single connection sidesteps
	// SQLITE_BUSY on concurrent statement execution.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			date DATETIME NOT NULL,
			duration_seconds INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS exercise_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			FOREIGN KEY(session_id) REFERENCES sessions(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS set_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			exercise_log_id INTEGER NOT NULL,
			set_number INTEGER NOT NULL,
			reps INTEGER,
			weight_resistance TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			FOREIGN KEY(exercise_log_id) REFERENCES exercise_logs(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating table: %q: %w", query, err)
		}
	}
	return nil
}

// migrate applies additive schema changes for databases created by
// earlier versions. Failures are expected when the column already
// exists.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE set_logs ADD COLUMN notes TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE sessions ADD COLUMN duration_seconds INTEGER DEFAULT 0")
}
