package memory

import (
	"sort"
	"sync"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// UserRepo map-backed user store with a unique username constraint.
type UserRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.User
}

// NewUserRepository builds an empty store.
func NewUserRepository() *UserRepo {
	return &UserRepo{items: make(map[string]*entity.User)}
}

func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	u := *user
	r.items[u.ID] = &u
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		copied := *u
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	return paginate(all, limit, offset), nil
}

func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, u := range r.items {
		if u.Username == user.Username && u.ID != user.ID {
			return domain.ErrDuplicate
		}
	}
	u := *user
	r.items[u.ID] = &u
	return nil
}

func (r *UserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
