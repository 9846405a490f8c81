package repository

import "github.com/rvaldez/repairshop-pro/internal/domain/entity"

// HistoryRepository is the persistence port for the append-only order
// history. Append must be a single atomic write so concurrent mutations on
// one order never lose entries.
type HistoryRepository interface {
	Append(orderID, message string) error
	// ListByOrder returns entries in append order. Unknown orders yield an
	// empty slice, never an error.
	ListByOrder(orderID string) ([]*entity.HistoryEntry, error)
}
