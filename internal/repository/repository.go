package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (sqlstore serves both PostgreSQL and SQLite).

import (
	"context"
	"database/sql"
)

// TxFn is a function that runs within a transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs a group of repository calls atomically.
// Repositories called with the ctx passed to fn join the transaction.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}

type txKey struct{}

// WithTx returns a context carrying tx.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction stored by WithTx, if any.
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}
