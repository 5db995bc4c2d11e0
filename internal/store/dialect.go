package store

import (
	"context"
	"database/sql"
)

// Dialect abstracts database-specific SQL and connection behavior.
type Dialect interface {
	// Name returns "postgres" or "sqlite".
	Name() string

	// DriverName returns the database/sql driver name ("pgx" or "sqlite").
	DriverName() string

	// Rebind rewrites $N placeholders into the dialect's form.
	Rebind(query string) string

	// Configure applies per-connection settings after the handle is opened.
	Configure(ctx context.Context, db *sql.DB, poolSize int) error

	// LockRows returns the clause appended to a SELECT that is followed by
	// writes in the same transaction, or empty string if not applicable.
	LockRows() string

	// TablesSQL returns the DDL statements for the application tables.
	TablesSQL() []string

	// MapError inspects a driver error and returns a well-known sentinel error if applicable.
	MapError(err error) error
}

// NewDialect creates a Dialect for the given driver name ("postgres" or "sqlite").
func NewDialect(driver string) Dialect {
	switch driver {
	case "sqlite":
		return &SQLiteDialect{}
	default:
		return &PostgresDialect{}
	}
}
