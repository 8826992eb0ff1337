// Package database persists preferences and finished workouts in SQLite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultQueryTimeout = 5 * time.Second

// Database wraps the SQLite handle.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, wrapErr(EntityDatabase, "open", "", err)
	}
	// Single writer; keeps the file lock uncontended.
	conn.SetMaxOpenConns(1)
	d := &Database{DB: conn, dbFile: path}
	if err := d.DB.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, wrapErr(EntityDatabase, "ping", "", err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the database file location.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS workouts (
			id TEXT PRIMARY KEY,
			strategy TEXT NOT NULL,
			max_grade TEXT NOT NULL,
			work_seconds INTEGER NOT NULL,
			rest_seconds INTEGER NOT NULL,
			started_at DATETIME,
			completed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS workout_rounds (
			workout_id TEXT NOT NULL,
			round_id INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			seconds_saved INTEGER,
			PRIMARY KEY (workout_id, round_id),
			FOREIGN KEY(workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS workout_problems (
			workout_id TEXT NOT NULL,
			round_id INTEGER NOT NULL,
			problem_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			grade TEXT NOT NULL,
			flashed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (workout_id, round_id, problem_id),
			FOREIGN KEY(workout_id) REFERENCES workouts(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_completed_at ON workouts(completed_at);`,
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, query := range queries {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return wrapErr(EntityDatabase, "migrate", "", fmt.Errorf("%w: %s", err, query))
			}
		}
		return nil
	})
}

// WithTx runs fn in a transaction, rolling back if it returns an error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	return fn(ctx)
}

func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
