package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the SQL-backed stores.
// *sql.DB satisfies it in production; integration tests pass a *sql.Tx
// so every test rolls back its own rows.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
