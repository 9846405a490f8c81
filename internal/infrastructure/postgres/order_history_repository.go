package postgres

import (
	"context"
	"fmt"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

var _ repository.HistoryRepository = (*OrderHistoryRepo)(nil)

// OrderHistoryRepo implements HistoryRepository over an append-only table.
// Each append is a single INSERT, so concurrent mutations on the same order
// never overwrite each other's entries; the BIGSERIAL key fixes the order.
type OrderHistoryRepo struct {
	q Querier
}

// NewOrderHistoryRepository builds the adapter. Pass a pool or tx (Querier).
func NewOrderHistoryRepository(q Querier) *OrderHistoryRepo {
	return &OrderHistoryRepo{q: q}
}

// Append records one history entry for the order.
func (r *OrderHistoryRepo) Append(orderID, message string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO order_history (order_id, message) VALUES ($1, $2)`, orderID, message)
	if err != nil {
		return fmt.Errorf("append order history: %w", err)
	}
	return nil
}

// ListByOrder returns entries in append order; unknown orders yield an
// empty slice.
func (r *OrderHistoryRepo) ListByOrder(orderID string) ([]*entity.HistoryEntry, error) {
	query := `
		SELECT seq, order_id, message, created_at
		FROM order_history WHERE order_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order history: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoryEntry
	for rows.Next() {
		var e entity.HistoryEntry
		if err := rows.Scan(&e.Seq, &e.OrderID, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
