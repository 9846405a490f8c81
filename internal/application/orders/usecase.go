package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/billing"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

// Timestamp layout used in history messages.
const historyTimeLayout = "2006-01-02 15:04:05"

// UseCase drives the repair-order aggregate. Reads go straight to the
// repositories; every mutation runs inside the TxRunner together with its
// history append.
type UseCase struct {
	tx        TxRunner
	orders    repository.OrderRepository
	lines     repository.OrderLineRepository
	history   repository.HistoryRepository
	customers repository.CustomerRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	tx TxRunner,
	orders repository.OrderRepository,
	lines repository.OrderLineRepository,
	history repository.HistoryRepository,
	customers repository.CustomerRepository,
) *UseCase {
	return &UseCase{
		tx:        tx,
		orders:    orders,
		lines:     lines,
		history:   history,
		customers: customers,
	}
}

func historyMessage(action string) string {
	return fmt.Sprintf("%s at %s", action, time.Now().Format(historyTimeLayout))
}

// normalizeTaxState validates the two-letter jurisdiction code and folds it
// to upper case. Empty stays empty.
func normalizeTaxState(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if len(s) != 2 {
		return "", domain.ErrInvalidInput
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", domain.ErrInvalidInput
		}
	}
	return strings.ToUpper(s), nil
}

// Create opens a repair order and writes its first history entry. The
// repair order number is generated when empty; the customer must exist.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = entity.StatusDefault
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	taxState, err := normalizeTaxState(in.TaxState)
	if err != nil {
		return nil, err
	}

	number := in.RepairOrderNumber
	if number == "" {
		number = fmt.Sprintf("RO-%d", time.Now().UnixMilli())
	}

	now := time.Now()
	order := &entity.Order{
		ID:                uuid.New().String(),
		RepairOrderNumber: number,
		CustomerID:        in.CustomerID,
		Status:            status,
		TaxState:          taxState,
		Paid:              false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return historyRepo.Append(order.ID, historyMessage("Order created"))
	})
	if err != nil {
		return nil, err
	}

	order.Customer = customer
	return toOrderResponse(order, true), nil
}

// GetByID returns the order with its customer and lines; nil when unknown.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	lines, err := uc.lines.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return toOrderResponse(order, true), nil
}

// List returns orders with their customers attached.
func (uc *UseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{
		Items: toOrderResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search returns orders whose repair order number contains the substring.
func (uc *UseCase) Search(numberSubstring string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.SearchByNumber(numberSubstring)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByDateRange returns orders created within [start, end] inclusive.
func (uc *UseCase) ListByDateRange(start, end time.Time) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update applies a partial update and appends a history entry; nil when the
// order does not exist.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID != nil {
		customer, err := uc.customers.GetByID(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	var taxState string
	if in.TaxState != nil {
		normalized, err := normalizeTaxState(*in.TaxState)
		if err != nil {
			return nil, err
		}
		taxState = normalized
	}

	var updated *entity.Order
	err := uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		order, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if in.RepairOrderNumber != nil {
			if *in.RepairOrderNumber == "" {
				return domain.ErrInvalidInput
			}
			order.RepairOrderNumber = *in.RepairOrderNumber
		}
		if in.CustomerID != nil {
			order.CustomerID = *in.CustomerID
		}
		if in.Status != nil {
			order.Status = *in.Status
		}
		if in.TaxState != nil {
			order.TaxState = taxState
		}
		if in.Discount != nil {
			order.Discount = *in.Discount
		}
		if in.Paid != nil {
			order.Paid = *in.Paid
		}
		order.UpdatedAt = time.Now()
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if err := historyRepo.Append(order.ID, historyMessage("Order updated")); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toOrderResponse(updated, false), nil
}

// MarkPaid flags the order as paid and records it in the history. Paying an
// already-paid order appends another entry; the flag stays true.
func (uc *UseCase) MarkPaid(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var updated *entity.Order
	err := uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		order, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		order.Paid = true
		order.UpdatedAt = time.Now()
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if err := historyRepo.Append(order.ID, historyMessage("Order marked as paid")); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toOrderResponse(updated, false), nil
}

// Delete removes the order with its lines and history. Returns
// domain.ErrNotFound when unknown.
func (uc *UseCase) Delete(id string) error {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orders.Delete(id)
}

// GetHistory returns the order's history messages in append order. An
// unknown order yields an empty list.
func (uc *UseCase) GetHistory(orderID string) ([]string, error) {
	entries, err := uc.history.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	messages := make([]string, 0, len(entries))
	for _, e := range entries {
		messages = append(messages, e.Message)
	}
	return messages, nil
}

// Totals computes subtotal, tax and total for the order from its current
// lines; nil when the order does not exist.
func (uc *UseCase) Totals(id string) (*dto.OrderTotalsResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	lines, err := uc.lines.ListByOrder(id)
	if err != nil {
		return nil, err
	}
	totals := billing.Compute(lines, order.Discount, order.TaxState)
	return &dto.OrderTotalsResponse{
		SubTotal: totals.SubTotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}, nil
}

func toOrderResponse(o *entity.Order, withLines bool) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:                o.ID,
		RepairOrderNumber: o.RepairOrderNumber,
		CustomerID:        o.CustomerID,
		Status:            o.Status,
		TaxState:          o.TaxState,
		Discount:          o.Discount,
		Paid:              o.Paid,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.Customer != nil {
		resp.Customer = &dto.CustomerResponse{
			ID:        o.Customer.ID,
			Name:      o.Customer.Name,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
			Address:   o.Customer.Address,
			Notes:     o.Customer.Notes,
			CreatedAt: o.Customer.CreatedAt,
			UpdatedAt: o.Customer.UpdatedAt,
		}
	}
	if withLines {
		resp.Lines = make([]dto.OrderLineResponse, 0, len(o.Lines))
		for _, line := range o.Lines {
			resp.Lines = append(resp.Lines, *toLineResponse(line))
		}
	}
	return resp
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, false))
	}
	return items
}

func toLineResponse(l *entity.OrderLine) *dto.OrderLineResponse {
	if l == nil {
		return nil
	}
	return &dto.OrderLineResponse{
		ID:          l.ID,
		OrderID:     l.OrderID,
		PartID:      l.PartID,
		Description: l.Description,
		Quantity:    l.Quantity,
		Price:       l.Price,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
