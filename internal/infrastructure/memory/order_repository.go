package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rvaldez/repairshop-pro/internal/domain"
	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// OrderRepo map-backed order store. Reads attach the customer from the
// linked customer repo, matching the join the postgres repo performs.
type OrderRepo struct {
	mu        sync.RWMutex
	items     map[string]*entity.Order
	customers *CustomerRepo
	lines     *OrderLineRepo
	history   *HistoryRepo
	numbers   map[string]string // repair order number -> order id
}

// NewOrderRepository builds an empty store wired to its sibling repos so
// the cascade and restrict rules hold.
func NewOrderRepository(customers *CustomerRepo, lines *OrderLineRepo, history *HistoryRepo) *OrderRepo {
	r := &OrderRepo{
		items:     make(map[string]*entity.Order),
		customers: customers,
		lines:     lines,
		history:   history,
		numbers:   make(map[string]string),
	}
	if customers != nil {
		customers.inUse = func(customerID string) bool {
			r.mu.RLock()
			defer r.mu.RUnlock()
			for _, o := range r.items {
				if o.CustomerID == customerID {
					return true
				}
			}
			return false
		}
	}
	return r
}

func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.numbers[order.RepairOrderNumber]; ok && existing != order.ID {
		return domain.ErrDuplicate
	}
	o := *order
	o.Customer = nil
	o.Lines = nil
	r.items[o.ID] = &o
	r.numbers[o.RepairOrderNumber] = o.ID
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	o, ok := r.items[id]
	if !ok {
		r.mu.RUnlock()
		return nil, nil
	}
	copied := *o
	r.mu.RUnlock()
	r.attachCustomer(&copied)
	return &copied, nil
}

func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	return r.filter(func(*entity.Order) bool { return true }, limit, offset)
}

func (r *OrderRepo) SearchByNumber(numberSubstring string) ([]*entity.Order, error) {
	return r.filter(func(o *entity.Order) bool {
		return strings.Contains(o.RepairOrderNumber, numberSubstring)
	}, 0, 0)
}

func (r *OrderRepo) ListByDateRange(start, end time.Time) ([]*entity.Order, error) {
	return r.filter(func(o *entity.Order) bool {
		return !o.CreatedAt.Before(start) && !o.CreatedAt.After(end)
	}, 0, 0)
}

func (r *OrderRepo) filter(keep func(*entity.Order) bool, limit, offset int) ([]*entity.Order, error) {
	r.mu.RLock()
	all := make([]*entity.Order, 0, len(r.items))
	for _, o := range r.items {
		if !keep(o) {
			continue
		}
		copied := *o
		all = append(all, &copied)
	}
	r.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	all = paginate(all, limit, offset)
	for _, o := range all {
		r.attachCustomer(o)
	}
	return all, nil
}

func (r *OrderRepo) attachCustomer(o *entity.Order) {
	if r.customers == nil {
		return
	}
	customer, _ := r.customers.GetByID(o.CustomerID)
	o.Customer = customer
}

func (r *OrderRepo) Update(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[order.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if existing, ok := r.numbers[order.RepairOrderNumber]; ok && existing != order.ID {
		return domain.ErrDuplicate
	}
	delete(r.numbers, current.RepairOrderNumber)
	o := *order
	o.Customer = nil
	o.Lines = nil
	r.items[o.ID] = &o
	r.numbers[o.RepairOrderNumber] = o.ID
	return nil
}

func (r *OrderRepo) Delete(id string) error {
	r.mu.Lock()
	o, ok := r.items[id]
	if !ok {
		r.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(r.numbers, o.RepairOrderNumber)
	delete(r.items, id)
	r.mu.Unlock()
	if r.lines != nil {
		r.lines.deleteByOrder(id)
	}
	if r.history != nil {
		r.history.deleteByOrder(id)
	}
	return nil
}
