// Package billing holds the pure order-totals domain service: no side
// effects, no persistence. Totals are computed from the order's current
// lines, its discount and the tax jurisdiction lookup.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// Totals is the result of a totals computation.
// SubTotal = Σ(quantity × price) − discount. The discount is applied before
// tax and is not clamped: a large discount drives SubTotal (and Total)
// negative.
type Totals struct {
	SubTotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Tax rates per jurisdiction. Any code not in the table resolves to
// defaultTaxRate.
var (
	defaultTaxRate = decimal.RequireFromString("0.06")

	taxRates = map[string]decimal.Decimal{
		"CA": decimal.RequireFromString("0.075"),
		"NY": decimal.RequireFromString("0.085"),
		"TX": decimal.RequireFromString("0.0625"),
	}
)

// TaxRateFor returns the tax rate for a two-letter jurisdiction code.
// The lookup is case-insensitive; unknown or empty codes get the default.
func TaxRateFor(taxState string) decimal.Decimal {
	if rate, ok := taxRates[strings.ToUpper(taxState)]; ok {
		return rate
	}
	return defaultTaxRate
}

// Compute derives subtotal, tax and total from an order's lines, discount
// and tax jurisdiction.
func Compute(lines []*entity.OrderLine, discount decimal.Decimal, taxState string) Totals {
	subTotal := decimal.Zero
	for _, line := range lines {
		subTotal = subTotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subTotal = subTotal.Sub(discount)

	tax := subTotal.Mul(TaxRateFor(taxState))
	return Totals{
		SubTotal: subTotal,
		Tax:      tax,
		Total:    subTotal.Add(tax),
	}
}
