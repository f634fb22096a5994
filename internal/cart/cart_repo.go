package cart

import (
	"sync"

	"github.com/rohitguptaaa/AmazeMart/internal/catalog"
)

// Line is one distinct product's presence in a cart. Quantity is always >= 1;
// a quantity that would drop below 1 removes the line instead.
type Line struct {
	Product catalog.Product
	Qty     int
}

// Repository owns every session's cart state. Each mutation is a single
// indivisible transition under the lock, so callers never observe a partial
// update.
type Repository interface {
	Lines(sessionID string) []Line
	DrawerOpen(sessionID string) bool
	AddLine(sessionID string, p catalog.Product)
	SetQty(sessionID, productID string, qty int)
	RemoveLine(sessionID, productID string)
	Clear(sessionID string)
	SetDrawer(sessionID string, open bool)
}

type cartState struct {
	lines      []Line
	drawerOpen bool
}

type memoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*cartState
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		carts: make(map[string]*cartState),
	}
}

func (r *memoryRepository) state(sessionID string) *cartState {
	st, ok := r.carts[sessionID]
	if !ok {
		st = &cartState{}
		r.carts[sessionID] = st
	}
	return st
}

// Lines returns a snapshot in insertion order.
func (r *memoryRepository) Lines(sessionID string) []Line {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.carts[sessionID]
	if !ok {
		return []Line{}
	}
	out := make([]Line, len(st.lines))
	copy(out, st.lines)
	return out
}

func (r *memoryRepository) DrawerOpen(sessionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.carts[sessionID]
	return ok && st.drawerOpen
}

// AddLine increments an existing line's quantity, or appends a new line with
// quantity 1. There is never more than one line per product ID.
func (r *memoryRepository) AddLine(sessionID string, p catalog.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.state(sessionID)
	for i := range st.lines {
		if st.lines[i].Product.ID == p.ID {
			st.lines[i].Qty++
			return
		}
	}
	st.lines = append(st.lines, Line{Product: p, Qty: 1})
}

// SetQty sets a line's quantity to an absolute value. A value below 1 removes
// the line; an absent product ID is a no-op.
func (r *memoryRepository) SetQty(sessionID, productID string, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.carts[sessionID]
	if !ok {
		return
	}
	for i := range st.lines {
		if st.lines[i].Product.ID != productID {
			continue
		}
		if qty < 1 {
			st.lines = append(st.lines[:i], st.lines[i+1:]...)
		} else {
			st.lines[i].Qty = qty
		}
		return
	}
}

func (r *memoryRepository) RemoveLine(sessionID, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.carts[sessionID]
	if !ok {
		return
	}
	for i := range st.lines {
		if st.lines[i].Product.ID == productID {
			st.lines = append(st.lines[:i], st.lines[i+1:]...)
			return
		}
	}
}

func (r *memoryRepository) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.carts[sessionID]; ok {
		st.lines = nil
	}
}

func (r *memoryRepository) SetDrawer(sessionID string, open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.state(sessionID).drawerOpen = open
}
