package memory

import (
	"sync"
	"time"

	"github.com/rvaldez/repairshop-pro/internal/domain/entity"
)

// HistoryRepo map-backed append-only history store. Seq mirrors the
// database-assigned sequence: one counter across all orders.
type HistoryRepo struct {
	mu      sync.Mutex
	nextSeq int64
	items   map[string][]*entity.HistoryEntry
}

// NewHistoryRepository builds an empty store.
func NewHistoryRepository() *HistoryRepo {
	return &HistoryRepo{nextSeq: 1, items: make(map[string][]*entity.HistoryEntry)}
}

func (r *HistoryRepo) Append(orderID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := &entity.HistoryEntry{
		Seq:       r.nextSeq,
		OrderID:   orderID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	r.nextSeq++
	r.items[orderID] = append(r.items[orderID], entry)
	return nil
}

func (r *HistoryRepo) ListByOrder(orderID string) ([]*entity.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.items[orderID]
	out := make([]*entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *HistoryRepo) deleteByOrder(orderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, orderID)
}
