package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// TXManager runs a function inside one database transaction. Database calls
// made with the context passed to the function hit that transaction.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

// TXBeginner is the slice of the pgx pool the manager needs, shared by
// pgxpool.Pool and pgxmock.
type TXBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Manager struct {
	pool TXBeginner
}

func NewTXManager(pool TXBeginner) *Manager {
	return &Manager{pool: pool}
}

func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested Begin joins the open transaction.
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("transaction rollback failed", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}
	return nil
}
