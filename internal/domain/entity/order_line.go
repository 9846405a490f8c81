package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is a charge/work item owned by exactly one Order. PartID is an
// optional reference into the part catalog; it is cleared when the part is
// deleted.
type OrderLine struct {
	ID          string
	OrderID     string
	PartID      string // empty when no catalog part is referenced
	Description string
	Quantity    int
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
