package entity

import "time"

// HistoryEntry is one append-only record of an order mutation. Seq is a
// database-assigned strictly increasing key; entries are never updated,
// reordered or pruned.
type HistoryEntry struct {
	Seq       int64
	OrderID   string
	Message   string
	CreatedAt time.Time
}
