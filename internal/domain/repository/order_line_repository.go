package repository

import "github.com/rvaldez/repairshop-pro/internal/domain/entity"

// OrderLineRepository is the persistence port for order lines. Lookups are
// scoped by both line id and order id: a line is never reachable through a
// different order.
type OrderLineRepository interface {
	Create(line *entity.OrderLine) error
	GetByIDAndOrder(lineID, orderID string) (*entity.OrderLine, error)
	ListByOrder(orderID string) ([]*entity.OrderLine, error)
	Update(line *entity.OrderLine) error
	Delete(lineID, orderID string) error
}
