package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle the postgres stores run queries on.
// Both *sql.DB and *sql.Tx satisfy it, which is what lets board creation
// write the board and its owner membership atomically through WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
