package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implements PartRepository (usable with pool or tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository builds the adapter. Pass a pool or tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persists a new part.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Price, part.Stock, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID fetches a part by ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM parts WHERE id = $1`
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// List returns parts with pagination.
func (r *PartRepo) List(limit, offset int) ([]*entity.Part, error) {
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM parts ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryParts(query, limit, offset)
}

// SearchByName returns parts whose name contains the substring.
func (r *PartRepo) SearchByName(query string, limit, offset int) ([]*entity.Part, error) {
	sql := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM parts WHERE name LIKE '%' || $1 || '%' ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryParts(sql, query, limit, offset)
}

func (r *PartRepo) queryParts(sql string, args ...any) ([]*entity.Part, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update replaces a part's mutable fields.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, price = $3, stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Price, part.Stock, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// Delete removes a part by ID. order_lines.part_id carries ON DELETE SET
// NULL, so lines keep their snapshot and only lose the reference.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}
