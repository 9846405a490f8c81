package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository (usable with pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the adapter. Pass a pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderWithCustomerColumns = `
	o.id, o.repair_order_number, o.customer_id, o.status, COALESCE(o.tax_state, ''),
	o.discount, o.paid, o.created_at, o.updated_at,
	c.id, c.name, c.email, c.phone, c.address, c.notes, c.created_at, c.updated_at`

// Create persists a new order.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, repair_order_number, customer_id, status, tax_state, discount, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.RepairOrderNumber, order.CustomerID, order.Status,
		nullIfEmpty(order.TaxState), order.Discount, order.Paid,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID fetches an order with its customer attached.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT ` + orderWithCustomerColumns + `
		FROM orders o JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	order, err := scanOrderWithCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// List returns orders with their customers, newest first.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderWithCustomerColumns + `
		FROM orders o JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`
	return r.queryOrders(query, limit, offset)
}

// SearchByNumber matches repair order numbers containing the substring
// (case-sensitive LIKE).
func (r *OrderRepo) SearchByNumber(numberSubstring string) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderWithCustomerColumns + `
		FROM orders o JOIN customers c ON c.id = o.customer_id
		WHERE o.repair_order_number LIKE '%' || $1 || '%'
		ORDER BY o.created_at DESC`
	return r.queryOrders(query, numberSubstring)
}

// ListByDateRange returns orders created within [start, end] inclusive. An
// inverted range simply matches nothing.
func (r *OrderRepo) ListByDateRange(start, end time.Time) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderWithCustomerColumns + `
		FROM orders o JOIN customers c ON c.id = o.customer_id
		WHERE o.created_at BETWEEN $1 AND $2
		ORDER BY o.created_at`
	return r.queryOrders(query, start, end)
}

func (r *OrderRepo) queryOrders(sql string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrderWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

func scanOrderWithCustomer(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var c entity.Customer
	err := row.Scan(
		&o.ID, &o.RepairOrderNumber, &o.CustomerID, &o.Status, &o.TaxState,
		&o.Discount, &o.Paid, &o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Customer = &c
	return &o, nil
}

// Update replaces an order's mutable fields.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET repair_order_number = $2, customer_id = $3, status = $4,
		    tax_state = $5, discount = $6, paid = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.RepairOrderNumber, order.CustomerID, order.Status,
		nullIfEmpty(order.TaxState), order.Discount, order.Paid, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete removes an order; lines and history cascade at the schema level.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
