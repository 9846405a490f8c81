// Package memory provides map-backed repository implementations used by the
// use case tests. They honor the same contracts as the postgres package:
// nil on missing rows, sentinel domain errors on constraint violations.
package memory

import (
	"sort"
	"sync"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// CustomerRepo map-backed customer store.
type CustomerRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Customer

	// inUse reports whether any order references the customer; wired by the
	// order repo so Delete can enforce the restrict rule.
	inUse func(customerID string) bool
}

// NewCustomerRepository builds an empty store.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{items: make(map[string]*entity.Customer)}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *customer
	r.items[c.ID] = &c
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		copied := *c
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *customer
	r.items[c.ID] = &c
	return nil
}

func (r *CustomerRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	if r.inUse != nil && r.inUse(id) {
		return domain.ErrInUse
	}
	delete(r.items, id)
	return nil
}

func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
