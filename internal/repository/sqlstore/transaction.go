package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"tutorapi/internal/repository"
)

// TransactionManager implements repository.TransactionManager on a *sql.DB.
type TransactionManager struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewTransactionManager creates a new transaction manager.
func NewTransactionManager(db *sql.DB, logger *slog.Logger) *TransactionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionManager{db: db, logger: logger}
}

var _ repository.TransactionManager = (*TransactionManager)(nil)

// ExecTx executes fn within a transaction. Nested calls join the outer transaction.
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repository.TxFn) error {
	if _, ok := repository.TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Safe even after a successful commit.
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			tm.logger.Error("rollback failed", "error", err)
		}
	}()

	if err := fn(repository.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
