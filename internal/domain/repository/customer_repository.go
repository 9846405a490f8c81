package repository

import "github.com/rvaldez/repairshop-pro/internal/domain/entity"

// CustomerRepository is the persistence port for Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// Delete removes a customer. Returns domain.ErrInUse when orders still
	// reference it.
	Delete(id string) error
}
