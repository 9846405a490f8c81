package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

// Ensure TxRunner implements the orders transaction port.
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. Order
// mutations and their history appends go through here so a failure rolls
// both back and concurrent writers are serialized by the database.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner from the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repos bound to the tx, and
// commits or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	historyRepo repository.HistoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	lineRepo := NewOrderLineRepository(tx)
	historyRepo := NewOrderHistoryRepository(tx)

	if err := fn(orderRepo, lineRepo, historyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
