// Package orders implements the repair-order aggregate use cases: order
// CRUD, line management, the totals engine endpoint, the append-only
// history and the printable order sheet.
package orders

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

// TxRunner executes a callback with order, line and history repositories
// bound to one transaction. Every order mutation and its history append go
// through Run so both commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error) error
}

// SheetData is everything the printable order sheet needs, already
// resolved: the order, its customer, its lines with part names attached and
// the computed totals.
type SheetData struct {
	Order    *entity.Order
	Customer *entity.Customer
	Lines    []SheetLine
	SubTotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	ShopName string
}

// SheetLine is one line on the sheet; PartName is empty when the line does
// not reference a catalog part.
type SheetLine struct {
	Description string
	PartName    string
	Quantity    int
	Price       decimal.Decimal
	Amount      decimal.Decimal
}

// SheetGenerator renders the order sheet document.
type SheetGenerator interface {
	Generate(data SheetData) ([]byte, error)
}
