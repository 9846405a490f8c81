package repository

import "github.com/rvaldez/repairshop-pro/internal/domain/entity"

// PartRepository is the persistence port for Part.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	List(limit, offset int) ([]*entity.Part, error)
	// SearchByName returns parts whose name contains the substring
	// (autocomplete support).
	SearchByName(query string, limit, offset int) ([]*entity.Part, error)
	Update(part *entity.Part) error
	// Delete removes a part; order lines referencing it keep their
	// description/price snapshot and lose the part reference.
	Delete(id string) error
}
