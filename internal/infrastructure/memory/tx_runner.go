package memory

import (
	"context"
	"sync"

	"github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner serializes callbacks with a mutex. There is no rollback; the
// map stores are only used in tests where a failed callback ends the test.
type TxRunner struct {
	mu      sync.Mutex
	orders  repository.OrderRepository
	lines   repository.OrderLineRepository
	history repository.HistoryRepository
}

// NewTxRunner builds the runner over the given stores.
func NewTxRunner(
	orders repository.OrderRepository,
	lines repository.OrderLineRepository,
	history repository.HistoryRepository,
) *TxRunner {
	return &TxRunner{orders: orders, lines: lines, history: history}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	historyRepo repository.HistoryRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.orders, r.lines, r.history)
}
