package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// PartRepo map-backed part store.
type PartRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Part

	// onDelete clears part references on order lines, mirroring the
	// set-null rule; wired by the line repo.
	onDelete func(partID string)
}

// NewPartRepository builds an empty store.
func NewPartRepository() *PartRepo {
	return &PartRepo{items: make(map[string]*entity.Part)}
}

func (r *PartRepo) Create(part *entity.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *part
	r.items[p.ID] = &p
	return nil
}

func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *PartRepo) List(limit, offset int) ([]*entity.Part, error) {
	return r.list("", limit, offset)
}

func (r *PartRepo) SearchByName(query string, limit, offset int) ([]*entity.Part, error) {
	return r.list(query, limit, offset)
}

func (r *PartRepo) list(query string, limit, offset int) ([]*entity.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.Part, 0, len(r.items))
	for _, p := range r.items {
		if query != "" && !strings.Contains(p.Name, query) {
			continue
		}
		copied := *p
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}

func (r *PartRepo) Update(part *entity.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[part.ID]; !ok {
		return domain.ErrNotFound
	}
	p := *part
	r.items[p.ID] = &p
	return nil
}

func (r *PartRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	if r.onDelete != nil {
		r.onDelete(id)
	}
	return nil
}
