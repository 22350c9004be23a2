package inventory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chainboard/chainboard/internal/shared"
)

// Repository holds the in-memory inventory collection with a unique SKU index.
type Repository struct {
	mu     sync.RWMutex
	byID   map[int]*Item
	bySKU  map[string]int
	nextID int
}

// NewRepository constructs an empty inventory store.
func NewRepository() *Repository {
	return &Repository{
		byID:   make(map[int]*Item),
		bySKU:  make(map[string]int),
		nextID: 1,
	}
}

// Create assigns the next id and inserts the record. A duplicate SKU is
// rejected with shared.ErrConflict.
func (r *Repository) Create(item Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.bySKU[item.SKU]; taken {
		return Item{}, fmt.Errorf("sku %q: %w", item.SKU, shared.ErrConflict)
	}
	item.ID = r.nextID
	r.nextID++
	r.byID[item.ID] = &item
	r.bySKU[item.SKU] = item.ID
	return item, nil
}

// Get returns the item with the given id.
func (r *Repository) Get(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.byID[id]
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	return *item, nil
}

// GetBySKU returns the item with the given SKU, exact match.
func (r *Repository) GetBySKU(sku string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySKU[sku]
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	return *r.byID[id], nil
}

// List returns all items sorted by id.
func (r *Repository) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the partial payload onto the stored record. Changing
// the SKU to a taken key is rejected with shared.ErrConflict.
func (r *Repository) Update(id int, req UpdateItemRequest) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.byID[id]
	if !ok {
		return Item{}, shared.ErrNotFound
	}
	if req.SKU != nil && *req.SKU != item.SKU {
		if _, taken := r.bySKU[*req.SKU]; taken {
			return Item{}, fmt.Errorf("sku %q: %w", *req.SKU, shared.ErrConflict)
		}
		delete(r.bySKU, item.SKU)
		r.bySKU[*req.SKU] = id
		item.SKU = *req.SKU
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = Category(*req.Category)
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.Status != nil {
		item.Status = Status(*req.Status)
	}
	if req.LastUpdated != nil {
		item.LastUpdated = *req.LastUpdated
	}
	return *item, nil
}

// Delete removes the record and reports whether it existed.
func (r *Repository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.bySKU, item.SKU)
	delete(r.byID, id)
	return true
}
