package wishlist

import (
	"sync"

	"github.com/rohitguptaaa/AmazeMart/internal/catalog"
)

// Repository owns every session's wishlist. Entries are unique per product
// ID; insertion order is kept for display.
type Repository interface {
	Items(sessionID string) []catalog.Product
	Contains(sessionID, productID string) bool
	Add(sessionID string, p catalog.Product)
	Remove(sessionID, productID string)
}

type memoryRepository struct {
	mu    sync.RWMutex
	lists map[string][]catalog.Product
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		lists: make(map[string][]catalog.Product),
	}
}

func (r *memoryRepository) Items(sessionID string) []catalog.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.lists[sessionID]
	out := make([]catalog.Product, len(items))
	copy(out, items)
	return out
}

func (r *memoryRepository) Contains(sessionID, productID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.lists[sessionID] {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Add is idempotent: the existence check lives here, not at call sites, so
// the uniqueness invariant cannot be bypassed.
func (r *memoryRepository) Add(sessionID string, p catalog.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.lists[sessionID] {
		if existing.ID == p.ID {
			return
		}
	}
	r.lists[sessionID] = append(r.lists[sessionID], p)
}

func (r *memoryRepository) Remove(sessionID, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.lists[sessionID]
	for i, p := range items {
		if p.ID == productID {
			r.lists[sessionID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}
