package repository

import (
	"time"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// OrderRepository is the persistence port for the Order aggregate root.
// List/Search/ListByDateRange attach the referenced Customer to each order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	// SearchByNumber matches repair order numbers containing the substring
	// (case-sensitive).
	SearchByNumber(numberSubstring string) ([]*entity.Order, error)
	// ListByDateRange returns orders created within [start, end] inclusive.
	// An inverted range yields an empty result, not an error.
	ListByDateRange(start, end time.Time) ([]*entity.Order, error)
	Update(order *entity.Order) error
	// Delete removes the order; its lines and history go with it.
	Delete(id string) error
}
