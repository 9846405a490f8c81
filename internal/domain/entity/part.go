package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a catalog inventory item. Stock is a plain count: it is never
// decremented when an order line references the part.
type Part struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
