package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresDialect implements Dialect for PostgreSQL via pgx/stdlib.
type PostgresDialect struct{}

func (d *PostgresDialect) Name() string       { return "postgres" }
func (d *PostgresDialect) DriverName() string { return "pgx" }

func (d *PostgresDialect) Rebind(query string) string { return query }

func (d *PostgresDialect) Configure(_ context.Context, db *sql.DB, poolSize int) error {
	if poolSize > 0 {
		db.SetMaxOpenConns(poolSize)
	}
	return nil
}

func (d *PostgresDialect) LockRows() string { return " FOR UPDATE" }

func (d *PostgresDialect) TablesSQL() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS access_keys (
    id         BIGSERIAL PRIMARY KEY,
    "key"      TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ DEFAULT NOW()
)`,
		`CREATE TABLE IF NOT EXISTS new_tab_links (
    id         BIGSERIAL PRIMARY KEY,
    label      TEXT NOT NULL,
    link       TEXT NOT NULL,
    icon       TEXT NOT NULL DEFAULT '',
    category   TEXT NOT NULL DEFAULT '',
    "order"    INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ DEFAULT NOW()
)`,
		`CREATE INDEX IF NOT EXISTS idx_new_tab_links_order ON new_tab_links ("order")`,
	}
}

func (d *PostgresDialect) MapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}
	// Wrapped errors from pgx/stdlib may only carry the message.
	errStr := err.Error()
	if strings.Contains(errStr, "23505") || strings.Contains(errStr, "duplicate key") {
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}
	return err
}
