package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest input to create a catalog part. Price and stock default
// to zero when omitted.
type CreatePartRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// UpdatePartRequest input to partially update a part.
type UpdatePartRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price *decimal.Decimal `json:"price"`
	Stock *int             `json:"stock"`
}

// PartResponse part output.
type PartResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PartListResponse paginated part list.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
