package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// SQLiteDialect implements Dialect for SQLite via modernc.org/sqlite.
type SQLiteDialect struct{}

var dollarParam = regexp.MustCompile(`\$(\d+)`)

func (d *SQLiteDialect) Name() string       { return "sqlite" }
func (d *SQLiteDialect) DriverName() string { return "sqlite" }

func (d *SQLiteDialect) Rebind(query string) string {
	return dollarParam.ReplaceAllString(query, "?$1")
}

// Configure pins SQLite to a single writer with WAL for concurrent reads.
func (d *SQLiteDialect) Configure(ctx context.Context, db *sql.DB, _ int) error {
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	return nil
}

// LockRows is empty: the single connection already serializes writers.
func (d *SQLiteDialect) LockRows() string { return "" }

func (d *SQLiteDialect) TablesSQL() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS access_keys (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    "key"      TEXT NOT NULL UNIQUE,
    created_at TEXT DEFAULT (datetime('now'))
)`,
		`CREATE TABLE IF NOT EXISTS new_tab_links (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    label      TEXT NOT NULL,
    link       TEXT NOT NULL,
    icon       TEXT NOT NULL DEFAULT '',
    category   TEXT NOT NULL DEFAULT '',
    "order"    INTEGER NOT NULL DEFAULT 0,
    created_at TEXT DEFAULT (datetime('now'))
)`,
		`CREATE INDEX IF NOT EXISTS idx_new_tab_links_order ON new_tab_links ("order")`,
	}
}

func (d *SQLiteDialect) MapError(err error) error {
	if err == nil {
		return nil
	}
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "constraint failed: UNIQUE") {
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}
	return err
}
