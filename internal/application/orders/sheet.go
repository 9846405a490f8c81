package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rvaldez/repairshop-pro/internal/domain/billing"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

// SheetUseCase assembles the printable order sheet: resolves the order,
// customer, lines and part names, computes totals and hands everything to
// the renderer.
type SheetUseCase struct {
	orders    repository.OrderRepository
	lines     repository.OrderLineRepository
	parts     repository.PartRepository
	generator SheetGenerator
	shopName  string
}

// NewSheetUseCase builds the sheet use case.
func NewSheetUseCase(
	orders repository.OrderRepository,
	lines repository.OrderLineRepository,
	parts repository.PartRepository,
	generator SheetGenerator,
	shopName string,
) *SheetUseCase {
	return &SheetUseCase{
		orders:    orders,
		lines:     lines,
		parts:     parts,
		generator: generator,
		shopName:  shopName,
	}
}

// Generate renders the order sheet PDF and returns the document bytes plus
// a download filename. Returns (nil, "", nil) when the order is unknown.
func (uc *SheetUseCase) Generate(orderID string) ([]byte, string, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", nil
	}
	lines, err := uc.lines.ListByOrder(orderID)
	if err != nil {
		return nil, "", err
	}

	sheetLines := make([]SheetLine, 0, len(lines))
	for _, line := range lines {
		sl := SheetLine{
			Description: line.Description,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Amount:      line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		}
		if line.PartID != "" {
			part, err := uc.parts.GetByID(line.PartID)
			if err != nil {
				return nil, "", err
			}
			if part != nil {
				sl.PartName = part.Name
			}
		}
		sheetLines = append(sheetLines, sl)
	}

	totals := billing.Compute(lines, order.Discount, order.TaxState)
	data := SheetData{
		Order:    order,
		Customer: order.Customer,
		Lines:    sheetLines,
		SubTotal: totals.SubTotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		ShopName: uc.shopName,
	}

	doc, err := uc.generator.Generate(data)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s.pdf", order.RepairOrderNumber)
	return doc, filename, nil
}
