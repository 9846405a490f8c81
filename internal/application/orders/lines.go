package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

// AddLine appends a line to the order and records it in the history; nil
// when the order does not exist. Quantity defaults to 1, price to 0.
func (uc *UseCase) AddLine(ctx context.Context, orderID string, in dto.AddOrderLineRequest) (*dto.OrderLineResponse, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	}

	now := time.Now()
	line := &entity.OrderLine{
		ID:          uuid.New().String(),
		OrderID:     orderID,
		PartID:      in.PartID,
		Description: in.Description,
		Quantity:    quantity,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.tx.Run(ctx, func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if err := lineRepo.Create(line); err != nil {
			return err
		}
		return historyRepo.Append(orderID, historyMessage("Line added"))
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toLineResponse(line), nil
}

// UpdateLine applies a partial update to a line scoped by order and line
// id, and records it in the history; nil when the pair does not resolve.
func (uc *UseCase) UpdateLine(ctx context.Context, orderID, lineID string, in dto.UpdateOrderLineRequest) (*dto.OrderLineResponse, error) {
	if in.Description != nil && *in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.OrderLine
	err := uc.tx.Run(ctx, func(
		_ repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		line, err := lineRepo.GetByIDAndOrder(lineID, orderID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}
		if in.Description != nil {
			line.Description = *in.Description
		}
		if in.PartID != nil {
			line.PartID = *in.PartID
		}
		if in.Quantity != nil {
			line.Quantity = *in.Quantity
		}
		if in.Price != nil {
			line.Price = *in.Price
		}
		line.UpdatedAt = time.Now()
		if err := lineRepo.Update(line); err != nil {
			return err
		}
		if err := historyRepo.Append(orderID, historyMessage(fmt.Sprintf("Line %s updated", lineID))); err != nil {
			return err
		}
		updated = line
		return nil
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return toLineResponse(updated), nil
}

// DeleteLine removes a line scoped by order and line id and records it in
// the history. Returns domain.ErrNotFound when the pair does not resolve.
func (uc *UseCase) DeleteLine(ctx context.Context, orderID, lineID string) error {
	return uc.tx.Run(ctx, func(
		_ repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		historyRepo repository.HistoryRepository,
	) error {
		line, err := lineRepo.GetByIDAndOrder(lineID, orderID)
		if err != nil {
			return err
		}
		if line == nil {
			return domain.ErrNotFound
		}
		if err := lineRepo.Delete(lineID, orderID); err != nil {
			return err
		}
		return historyRepo.Append(orderID, historyMessage(fmt.Sprintf("Line %s deleted", lineID)))
	})
}
