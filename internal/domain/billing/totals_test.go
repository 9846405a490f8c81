package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvaldez/repairshop-pro/internal/domain/billing"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

func line(qty int, price string) *entity.OrderLine {
	return &entity.OrderLine{
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
}

func TestTaxRateFor_KnownStates(t *testing.T) {
	assert.True(t, billing.TaxRateFor("CA").Equal(decimal.RequireFromString("0.075")))
	assert.True(t, billing.TaxRateFor("NY").Equal(decimal.RequireFromString("0.085")))
	assert.True(t, billing.TaxRateFor("TX").Equal(decimal.RequireFromString("0.0625")))
}

func TestTaxRateFor_CaseInsensitive(t *testing.T) {
	assert.True(t, billing.TaxRateFor("ca").Equal(billing.TaxRateFor("CA")))
	assert.True(t, billing.TaxRateFor("Ny").Equal(billing.TaxRateFor("NY")))
}

func TestTaxRateFor_UnknownGetsDefault(t *testing.T) {
	def := decimal.RequireFromString("0.06")
	assert.True(t, billing.TaxRateFor("ZZ").Equal(def))
	assert.True(t, billing.TaxRateFor("").Equal(def))
}

// Two lines (2×10, 1×5), no discount, CA: 25 / 1.875 / 26.875.
func TestCompute_CaliforniaOrder(t *testing.T) {
	lines := []*entity.OrderLine{line(2, "10"), line(1, "5")}
	totals := billing.Compute(lines, decimal.Zero, "CA")

	require.True(t, totals.SubTotal.Equal(decimal.RequireFromString("25")), "subtotal: %s", totals.SubTotal)
	require.True(t, totals.Tax.Equal(decimal.RequireFromString("1.875")), "tax: %s", totals.Tax)
	require.True(t, totals.Total.Equal(decimal.RequireFromString("26.875")), "total: %s", totals.Total)
}

func TestCompute_DiscountAppliedBeforeTax(t *testing.T) {
	lines := []*entity.OrderLine{line(1, "100")}
	totals := billing.Compute(lines, decimal.RequireFromString("20"), "NY")

	// (100 - 20) * 0.085 = 6.8
	assert.True(t, totals.SubTotal.Equal(decimal.RequireFromString("80")))
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("6.8")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("86.8")))
}

// A discount larger than the line sum is not clamped.
func TestCompute_OverDiscountGoesNegative(t *testing.T) {
	lines := []*entity.OrderLine{line(1, "10")}
	totals := billing.Compute(lines, decimal.RequireFromString("50"), "")

	assert.True(t, totals.SubTotal.IsNegative())
	assert.True(t, totals.Tax.IsNegative())
	assert.True(t, totals.Total.IsNegative())
	assert.True(t, totals.SubTotal.Equal(decimal.RequireFromString("-40")))
}

func TestCompute_NoLines(t *testing.T) {
	totals := billing.Compute(nil, decimal.Zero, "TX")
	assert.True(t, totals.SubTotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestCompute_QuantityMultiplies(t *testing.T) {
	lines := []*entity.OrderLine{line(3, "19.99")}
	totals := billing.Compute(lines, decimal.Zero, "ZZ")
	assert.True(t, totals.SubTotal.Equal(decimal.RequireFromString("59.97")))
}
