package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rvaldez/repairshop-pro/internal/application/dto"
	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
	"github.com/rvaldez/repairshop-pro/internal/domain/repository"
)

// PartUseCase CRUD use cases for the part catalog. Stock is a plain count;
// order lines never reserve or decrement it.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase builds the use case.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create creates a new part. Price and stock default to zero.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	part := &entity.Part{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID fetches a part; nil when not found.
func (uc *PartUseCase) GetByID(id string) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return toPartResponse(part), nil
}

// List returns parts, optionally filtered by a name substring (autocomplete).
func (uc *PartUseCase) List(query string, limit, offset int) (*dto.PartListResponse, error) {
	var (
		list []*entity.Part
		err  error
	)
	if query != "" {
		list, err = uc.repo.SearchByName(query, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update applies a partial update; nil when the part does not exist.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		part.Name = *in.Name
	}
	if in.Price != nil {
		part.Price = *in.Price
	}
	if in.Stock != nil {
		part.Stock = *in.Stock
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete removes a part. Returns domain.ErrNotFound when unknown.
func (uc *PartUseCase) Delete(id string) error {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
