package orders_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/application/orders"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/infrastructure/memory"
)

type fixture struct {
	uc        *orders.UseCase
	customers *memory.CustomerRepo
	history   *memory.HistoryRepo
	customer  *entity.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	customers := memory.NewCustomerRepository()
	parts := memory.NewPartRepository()
	lines := memory.NewOrderLineRepository(parts)
	history := memory.NewHistoryRepository()
	ordersRepo := memory.NewOrderRepository(customers, lines, history)
	tx := memory.NewTxRunner(ordersRepo, lines, history)

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      "Dana Smith",
		Email:     "dana@example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, customers.Create(customer))

	return &fixture{
		uc:        orders.NewUseCase(tx, ordersRepo, lines, history, customers),
		customers: customers,
		history:   history,
		customer:  customer,
	}
}

func (f *fixture) createOrder(t *testing.T, number string) *dto.OrderResponse {
	t.Helper()
	order, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		RepairOrderNumber: number,
		CustomerID:        f.customer.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	return order
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreate_DefaultsAndFirstHistoryEntry(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t, "")

	assert.Equal(t, entity.StatusDefault, order.Status)
	assert.True(t, strings.HasPrefix(order.RepairOrderNumber, "RO-"),
		"generated number should start with RO-, got %s", order.RepairOrderNumber)
	assert.False(t, order.Paid)
	require.NotNil(t, order.Customer)
	assert.Equal(t, f.customer.ID, order.Customer.ID)

	messages, err := f.uc.GetHistory(order.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, strings.HasPrefix(messages[0], "Order created at "), messages[0])
}

func TestCreate_UnknownCustomerRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_InvalidStatusRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		Status:     "SHIPPED",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_TaxStateNormalizedToUpper(t *testing.T) {
	f := newFixture(t)
	order, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		TaxState:   "ca",
	})
	require.NoError(t, err)
	assert.Equal(t, "CA", order.TaxState)
}

func TestCreate_DuplicateNumberRejected(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t, "RO-777")
	_, err := f.uc.Create(context.Background(), dto.CreateOrderRequest{
		RepairOrderNumber: "RO-777",
		CustomerID:        f.customer.ID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Every mutation must leave exactly one history entry, in order.
func TestHistory_GrowsWithEachMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.createOrder(t, "RO-1")

	line, err := f.uc.AddLine(ctx, order.ID, dto.AddOrderLineRequest{Description: "Brake pads"})
	require.NoError(t, err)
	require.NotNil(t, line)

	_, err = f.uc.UpdateLine(ctx, order.ID, line.ID, dto.UpdateOrderLineRequest{Quantity: intPtr(2)})
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, order.ID, dto.UpdateOrderRequest{Status: strPtr(entity.StatusInProgress)})
	require.NoError(t, err)

	_, err = f.uc.MarkPaid(ctx, order.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteLine(ctx, order.ID, line.ID))

	messages, err := f.uc.GetHistory(order.ID)
	require.NoError(t, err)
	require.Len(t, messages, 6)
	assert.True(t, strings.HasPrefix(messages[0], "Order created at "))
	assert.True(t, strings.HasPrefix(messages[1], "Line added at "))
	assert.True(t, strings.HasPrefix(messages[2], fmt.Sprintf("Line %s updated at ", line.ID)))
	assert.True(t, strings.HasPrefix(messages[3], "Order updated at "))
	assert.True(t, strings.HasPrefix(messages[4], "Order marked as paid at "))
	assert.True(t, strings.HasPrefix(messages[5], fmt.Sprintf("Line %s deleted at ", line.ID)))
}

func TestGetHistory_UnknownOrderIsEmpty(t *testing.T) {
	f := newFixture(t)
	messages, err := f.uc.GetHistory(uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMarkPaid_RepeatKeepsFlagAndAppends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.createOrder(t, "RO-2")

	first, err := f.uc.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, first.Paid)

	second, err := f.uc.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, second.Paid)

	messages, err := f.uc.GetHistory(order.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 3) // created + two payments
}

func TestMarkPaid_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	order, err := f.uc.MarkPaid(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, order)
}

// Line lookups are scoped by order id; the wrong order is a miss even when
// the line exists.
func TestLines_ScopedByOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	orderA := f.createOrder(t, "RO-A")
	orderB := f.createOrder(t, "RO-B")

	line, err := f.uc.AddLine(ctx, orderA.ID, dto.AddOrderLineRequest{Description: "Oil change"})
	require.NoError(t, err)

	got, err := f.uc.UpdateLine(ctx, orderB.ID, line.ID, dto.UpdateOrderLineRequest{Quantity: intPtr(5)})
	require.NoError(t, err)
	assert.Nil(t, got, "line must not be reachable through another order")

	err = f.uc.DeleteLine(ctx, orderB.ID, line.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Still intact under its own order.
	detail, err := f.uc.GetByID(orderA.ID)
	require.NoError(t, err)
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, 1, detail.Lines[0].Quantity)
}

func TestAddLine_DescriptionRequired(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t, "RO-3")
	_, err := f.uc.AddLine(context.Background(), order.ID, dto.AddOrderLineRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddLine_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	line, err := f.uc.AddLine(context.Background(), uuid.New().String(), dto.AddOrderLineRequest{Description: "x"})
	require.NoError(t, err)
	assert.Nil(t, line)
}

func TestSearch_SubstringMatch(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t, "RO-100")
	f.createOrder(t, "RO-1999")
	f.createOrder(t, "RO-200")

	results, err := f.uc.Search("RO-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	numbers := []string{results[0].RepairOrderNumber, results[1].RepairOrderNumber}
	assert.ElementsMatch(t, []string{"RO-100", "RO-1999"}, numbers)
}

func TestListByDateRange_InvertedRangeIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.createOrder(t, "RO-4")

	now := time.Now()
	results, err := f.uc.ListByDateRange(now.Add(time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListByDateRange_InclusiveBounds(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t, "RO-5")

	results, err := f.uc.ListByDateRange(time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, order.ID, results[0].ID)
}

func TestTotals_UsesCurrentLinesAndTaxState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order, err := f.uc.Create(ctx, dto.CreateOrderRequest{
		CustomerID: f.customer.ID,
		TaxState:   "CA",
	})
	require.NoError(t, err)

	price10 := decimal.RequireFromString("10")
	price5 := decimal.RequireFromString("5")
	_, err = f.uc.AddLine(ctx, order.ID, dto.AddOrderLineRequest{Description: "Pads", Quantity: intPtr(2), Price: &price10})
	require.NoError(t, err)
	_, err = f.uc.AddLine(ctx, order.ID, dto.AddOrderLineRequest{Description: "Labor", Quantity: intPtr(1), Price: &price5})
	require.NoError(t, err)

	totals, err := f.uc.Totals(order.ID)
	require.NoError(t, err)
	require.NotNil(t, totals)
	assert.True(t, totals.SubTotal.Equal(decimal.RequireFromString("25")), "subtotal: %s", totals.SubTotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("1.875")), "tax: %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("26.875")), "total: %s", totals.Total)
}

func TestTotals_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	totals, err := f.uc.Totals(uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, totals)
}

func TestDelete_RemovesLinesAndHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.createOrder(t, "RO-6")
	_, err := f.uc.AddLine(ctx, order.ID, dto.AddOrderLineRequest{Description: "Filter"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(order.ID))

	got, err := f.uc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	messages, err := f.uc.GetHistory(order.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestDelete_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.uc.Delete(uuid.New().String()), domain.ErrNotFound)
}

// A customer with open orders cannot be removed; once the order is gone the
// delete succeeds.
func TestCustomerDelete_RestrictedWhileReferenced(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t, "RO-7")

	assert.ErrorIs(t, f.customers.Delete(f.customer.ID), domain.ErrInUse)

	require.NoError(t, f.uc.Delete(order.ID))
	assert.NoError(t, f.customers.Delete(f.customer.ID))
}

func TestUpdate_PartialFieldsAndValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	order := f.createOrder(t, "RO-8")

	discount := decimal.RequireFromString("5")
	updated, err := f.uc.Update(ctx, order.ID, dto.UpdateOrderRequest{
		Status:   strPtr(entity.StatusCompleted),
		TaxState: strPtr("tx"),
		Discount: &discount,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusCompleted, updated.Status)
	assert.Equal(t, "TX", updated.TaxState)
	assert.True(t, updated.Discount.Equal(discount))
	assert.Equal(t, "RO-8", updated.RepairOrderNumber, "untouched fields keep their value")

	_, err = f.uc.Update(ctx, order.ID, dto.UpdateOrderRequest{Status: strPtr("BOGUS")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Update(ctx, order.ID, dto.UpdateOrderRequest{TaxState: strPtr("CAL")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_UnknownCustomerRejected(t *testing.T) {
	f := newFixture(t)
	order := f.createOrder(t, "RO-9")
	_, err := f.uc.Update(context.Background(), order.ID, dto.UpdateOrderRequest{
		CustomerID: strPtr(uuid.New().String()),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
