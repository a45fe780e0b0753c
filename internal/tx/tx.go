// Package tx provides an explicit unit-of-work boundary over sqlx.
// Repositories pick the active transaction up from the context through
// FromContext, so a service can group several repository calls into one commit.
package tx

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/parts-store/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// Manager opens transactions on a database handle.
type Manager struct {
	db *sqlx.DB
}

// NewManager creates a Manager for db.
func NewManager(db *sqlx.DB) *Manager {
	return &Manager{db: db}
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when fn returns an error or panics. If ctx
// already carries a transaction, fn joins it and the outer call decides.
func (m *Manager) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if FromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
