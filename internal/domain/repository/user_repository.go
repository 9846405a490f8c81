package repository

import "github.com/rvaldez/repairshop-pro/internal/domain/entity"

// UserRepository is the persistence port for staff accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
