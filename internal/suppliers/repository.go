package suppliers

import (
	"sort"
	"sync"

	"github.com/chainboard/chainboard/internal/shared"
)

// Repository holds the in-memory supplier collection. Integer ids come from a
// pure counter and are never reused within the process lifetime.
type Repository struct {
	mu     sync.RWMutex
	byID   map[int]*Supplier
	nextID int
}

// NewRepository constructs an empty supplier store.
func NewRepository() *Repository {
	return &Repository{byID: make(map[int]*Supplier), nextID: 1}
}

// Create assigns the next id and inserts the record.
func (r *Repository) Create(s Supplier) Supplier {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	r.byID[s.ID] = &s
	return s
}

// Get returns the supplier with the given id.
func (r *Repository) Get(id int) (Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Supplier{}, shared.ErrNotFound
	}
	return *s, nil
}

// List returns all suppliers sorted by id.
func (r *Repository) List() []Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update shallow-merges the partial payload onto the stored record: only
// fields present in the request overwrite.
func (r *Repository) Update(id int, req UpdateSupplierRequest) (Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return Supplier{}, shared.ErrNotFound
	}
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.Status != nil {
		s.Status = Status(*req.Status)
	}
	if req.Location != nil {
		s.Location = *req.Location
	}
	if req.ContactName != nil {
		s.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		s.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		s.ContactPhone = *req.ContactPhone
	}
	if req.OrdersThisMonth != nil {
		s.OrdersThisMonth = *req.OrdersThisMonth
	}
	if req.OnTimeDelivery != nil {
		s.OnTimeDelivery = *req.OnTimeDelivery
	}
	if req.TotalSpend != nil {
		s.TotalSpend = *req.TotalSpend
	}
	if req.ProductCategories != nil {
		s.ProductCategories = *req.ProductCategories
	}
	if req.LogoInitials != nil {
		s.LogoInitials = *req.LogoInitials
	}
	if req.LogoColor != nil {
		s.LogoColor = *req.LogoColor
	}
	return *s, nil
}

// Delete removes the record and reports whether it existed.
func (r *Repository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	return true
}
