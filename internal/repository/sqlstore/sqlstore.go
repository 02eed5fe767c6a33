// Package sqlstore implements the repository interfaces with database/sql.
// Queries stick to the SQL subset shared by PostgreSQL and SQLite so one
// implementation serves both drivers.
package sqlstore

import (
	"context"
	"database/sql"

	"tutorapi/internal/repository"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction carried by ctx, or db when there is none.
func conn(ctx context.Context, db *sql.DB) dbtx {
	if tx, ok := repository.TxFromContext(ctx); ok {
		return tx
	}
	return db
}

type scanner interface {
	Scan(dest ...any) error
}
