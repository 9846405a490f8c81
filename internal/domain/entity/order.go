package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workflow statuses for an Order (closed set).
const (
	StatusDefault    = "DEFAULT"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// ValidStatus reports whether s is one of the workflow statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDefault, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is a repair order: references one customer, owns its lines and an
// append-only history. Status and TaxState are deliberately separate fields
// (workflow state vs. tax jurisdiction).
type Order struct {
	ID                string
	RepairOrderNumber string
	CustomerID        string
	Status            string
	TaxState          string // two-letter US state code, may be empty
	Discount          decimal.Decimal
	Paid              bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Customer is attached by list/detail queries; nil otherwise.
	Customer *Customer
	// Lines are attached by detail queries; nil otherwise.
	Lines []*OrderLine
}
