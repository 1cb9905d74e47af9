package ledger

import (
	"sync"

	"github.com/google/uuid"
)

// ProjectOrder holds the supplier display order of a project.
// InMemory is what the session shows; Persisted is the last order the store
// accepted. They diverge when a persist fails and are never reconciled.
type ProjectOrder struct {
	InMemory  []string
	Persisted []string
}

// OrderBook keeps one ProjectOrder per project
type OrderBook struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*ProjectOrder
}

// NewOrderBook creates an empty order book
func NewOrderBook() *OrderBook {
	return &OrderBook{orders: make(map[uuid.UUID]*ProjectOrder)}
}

// Get returns a copy of the project's order
func (b *OrderBook) Get(projectID uuid.UUID) ProjectOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.orders[projectID]
	if !ok {
		return ProjectOrder{}
	}
	return ProjectOrder{
		InMemory:  append([]string(nil), o.InMemory...),
		Persisted: append([]string(nil), o.Persisted...),
	}
}

// SetInMemory replaces the session order
func (b *OrderBook) SetInMemory(projectID uuid.UUID, ids []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry(projectID).InMemory = append([]string(nil), ids...)
}

// MarkPersisted records ids as the stored order
func (b *OrderBook) MarkPersisted(projectID uuid.UUID, ids []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entry(projectID).Persisted = append([]string(nil), ids...)
}

// Remove drops a supplier from both orders of a project
func (b *OrderBook) Remove(projectID uuid.UUID, supplierID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[projectID]
	if !ok {
		return
	}
	o.InMemory = without(o.InMemory, supplierID)
	o.Persisted = without(o.Persisted, supplierID)
}

func (b *OrderBook) entry(projectID uuid.UUID) *ProjectOrder {
	o, ok := b.orders[projectID]
	if !ok {
		o = &ProjectOrder{}
		b.orders[projectID] = o
	}
	return o
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
