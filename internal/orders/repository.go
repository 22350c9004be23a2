package orders

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chainboard/chainboard/internal/shared"
)

// Repository holds the in-memory order collection. The display key orderId is
// unique; the schema declared that in the source without checking it, so the
// check lives here now.
type Repository struct {
	mu        sync.RWMutex
	byID      map[int]*Order
	byOrderID map[string]int
	nextID    int
}

// NewRepository constructs an empty order store.
func NewRepository() *Repository {
	return &Repository{
		byID:      make(map[int]*Order),
		byOrderID: make(map[string]int),
		nextID:    1,
	}
}

// Create assigns the next id and inserts the record. A duplicate orderId is
// rejected with shared.ErrConflict.
func (r *Repository) Create(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byOrderID[o.OrderID]; taken {
		return Order{}, fmt.Errorf("orderId %q: %w", o.OrderID, shared.ErrConflict)
	}
	o.ID = r.nextID
	r.nextID++
	r.byID[o.ID] = &o
	r.byOrderID[o.OrderID] = o.ID
	return o, nil
}

// Get returns the order with the given id.
func (r *Repository) Get(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byID[id]
	if !ok {
		return Order{}, shared.ErrNotFound
	}
	return *o, nil
}

// List returns all orders sorted by id.
func (r *Repository) List() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListBySupplier filters all orders by supplier id. SupplierID is a soft
// reference, so an unknown supplier simply yields an empty slice.
func (r *Repository) ListBySupplier(supplierID int) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range r.byID {
		if o.SupplierID == supplierID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the partial payload onto the stored record. Changing
// orderId to a taken key is rejected with shared.ErrConflict.
func (r *Repository) Update(id int, req UpdateOrderRequest) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return Order{}, shared.ErrNotFound
	}
	if req.OrderID != nil && *req.OrderID != o.OrderID {
		if _, taken := r.byOrderID[*req.OrderID]; taken {
			return Order{}, fmt.Errorf("orderId %q: %w", *req.OrderID, shared.ErrConflict)
		}
		delete(r.byOrderID, o.OrderID)
		r.byOrderID[*req.OrderID] = id
		o.OrderID = *req.OrderID
	}
	if req.SupplierID != nil {
		o.SupplierID = *req.SupplierID
	}
	if req.Date != nil {
		o.Date = *req.Date
	}
	if req.Time != nil {
		o.Time = *req.Time
	}
	if req.Status != nil {
		o.Status = Status(*req.Status)
	}
	if req.Amount != nil {
		o.Amount = *req.Amount
	}
	if req.Products != nil {
		o.Products = *req.Products
	}
	return *o, nil
}

// Delete removes the record and reports whether it existed.
func (r *Repository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byOrderID, o.OrderID)
	delete(r.byID, id)
	return true
}
