package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest input to open a repair order. RepairOrderNumber is
// auto-generated when empty; Status defaults to DEFAULT.
type CreateOrderRequest struct {
	RepairOrderNumber string `json:"repair_order_number"`
	CustomerID        string `json:"customer_id" validate:"required,uuid"`
	Status            string `json:"status" validate:"omitempty,oneof=DEFAULT IN_PROGRESS COMPLETED CANCELLED"`
	TaxState          string `json:"tax_state" validate:"omitempty,len=2"`
}

// UpdateOrderRequest input to partially update an order.
type UpdateOrderRequest struct {
	RepairOrderNumber *string          `json:"repair_order_number"`
	CustomerID        *string          `json:"customer_id" validate:"omitempty,uuid"`
	Status            *string          `json:"status" validate:"omitempty,oneof=DEFAULT IN_PROGRESS COMPLETED CANCELLED"`
	TaxState          *string          `json:"tax_state" validate:"omitempty,len=2"`
	Discount          *decimal.Decimal `json:"discount"`
	Paid              *bool            `json:"paid"`
}

// OrderResponse order output. Customer is attached on every read; Lines
// only on the detail endpoint.
type OrderResponse struct {
	ID                string              `json:"id"`
	RepairOrderNumber string              `json:"repair_order_number"`
	CustomerID        string              `json:"customer_id"`
	Status            string              `json:"status"`
	TaxState          string              `json:"tax_state,omitempty"`
	Discount          decimal.Decimal     `json:"discount"`
	Paid              bool                `json:"paid"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Customer          *CustomerResponse   `json:"customer,omitempty"`
	Lines             []OrderLineResponse `json:"lines,omitempty"`
}

// OrderListResponse paginated order list.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AddOrderLineRequest input to add a line to an order. Quantity defaults to
// 1 and price to 0 when omitted.
type AddOrderLineRequest struct {
	Description string           `json:"description" validate:"required,min=1"`
	PartID      string           `json:"part_id" validate:"omitempty,uuid"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
}

// UpdateOrderLineRequest input to partially update a line.
type UpdateOrderLineRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1"`
	PartID      *string          `json:"part_id" validate:"omitempty,uuid"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
}

// OrderLineResponse order line output.
type OrderLineResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	PartID      string          `json:"part_id,omitempty"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderTotalsResponse result of the totals engine for one order.
type OrderTotalsResponse struct {
	SubTotal decimal.Decimal `json:"subTotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
