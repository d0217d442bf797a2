package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql operations the reading store needs.
// Both *sql.DB and *sql.Tx satisfy it, so the same store can run over a
// plain connection or inside a caller-managed transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
