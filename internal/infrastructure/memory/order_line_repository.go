package memory

import (
	"sort"
	"sync"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// OrderLineRepo map-backed order line store.
type OrderLineRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.OrderLine
}

// NewOrderLineRepository builds an empty store. When parts is non-nil,
// deleting a part clears the reference on its lines.
func NewOrderLineRepository(parts *PartRepo) *OrderLineRepo {
	r := &OrderLineRepo{items: make(map[string]*entity.OrderLine)}
	if parts != nil {
		parts.onDelete = func(partID string) {
			r.mu.Lock()
			defer r.mu.Unlock()
			for _, l := range r.items {
				if l.PartID == partID {
					l.PartID = ""
				}
			}
		}
	}
	return r
}

func (r *OrderLineRepo) Create(line *entity.OrderLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := *line
	r.items[l.ID] = &l
	return nil
}

func (r *OrderLineRepo) GetByIDAndOrder(lineID, orderID string) (*entity.OrderLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.items[lineID]
	if !ok || l.OrderID != orderID {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (r *OrderLineRepo) ListByOrder(orderID string) ([]*entity.OrderLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*entity.OrderLine, 0)
	for _, l := range r.items {
		if l.OrderID != orderID {
			continue
		}
		copied := *l
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

func (r *OrderLineRepo) Update(line *entity.OrderLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[line.ID]
	if !ok || current.OrderID != line.OrderID {
		return domain.ErrNotFound
	}
	l := *line
	r.items[l.ID] = &l
	return nil
}

func (r *OrderLineRepo) Delete(lineID, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.items[lineID]
	if !ok || l.OrderID != orderID {
		return domain.ErrNotFound
	}
	delete(r.items, lineID)
	return nil
}

func (r *OrderLineRepo) deleteByOrder(orderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.items {
		if l.OrderID == orderID {
			delete(r.items, id)
		}
	}
}
