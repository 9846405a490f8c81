package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

var _ repository.OrderLineRepository = (*OrderLineRepo)(nil)

// OrderLineRepo implements OrderLineRepository (usable with pool or tx).
type OrderLineRepo struct {
	q Querier
}

// NewOrderLineRepository builds the adapter. Pass a pool or tx (Querier).
func NewOrderLineRepository(q Querier) *OrderLineRepo {
	return &OrderLineRepo{q: q}
}

// Create persists a new line.
func (r *OrderLineRepo) Create(line *entity.OrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_lines (id, order_id, part_id, description, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, nullIfEmpty(line.PartID), line.Description,
		line.Quantity, line.Price, line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// GetByIDAndOrder fetches a line scoped by both line and order id; a line
// under a different order is not found.
func (r *OrderLineRepo) GetByIDAndOrder(lineID, orderID string) (*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, COALESCE(part_id, ''), description, quantity, price, created_at, updated_at
		FROM order_lines WHERE id = $1 AND order_id = $2`
	var l entity.OrderLine
	err := r.q.QueryRow(context.Background(), query, lineID, orderID).Scan(
		&l.ID, &l.OrderID, &l.PartID, &l.Description, &l.Quantity, &l.Price, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order line: %w", err)
	}
	return &l, nil
}

// ListByOrder returns all lines of an order in insertion order.
func (r *OrderLineRepo) ListByOrder(orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, COALESCE(part_id, ''), description, quantity, price, created_at, updated_at
		FROM order_lines WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.PartID, &l.Description, &l.Quantity, &l.Price, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update replaces a line's mutable fields.
func (r *OrderLineRepo) Update(line *entity.OrderLine) error {
	query := `
		UPDATE order_lines
		SET part_id = $3, description = $4, quantity = $5, price = $6, updated_at = $7
		WHERE id = $1 AND order_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, nullIfEmpty(line.PartID), line.Description,
		line.Quantity, line.Price, line.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order line: %w", err)
	}
	return nil
}

// Delete removes a line scoped by both ids.
func (r *OrderLineRepo) Delete(lineID, orderID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM order_lines WHERE id = $1 AND order_id = $2`, lineID, orderID)
	if err != nil {
		return fmt.Errorf("delete order line: %w", err)
	}
	return nil
}
