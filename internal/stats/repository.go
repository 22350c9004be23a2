package stats

import (
	"sync"

	"github.com/chainboard/chainboard/internal/shared"
)

// Repository holds the statistics singleton. There is no create or delete
// after initialization; Get before Init reports not found.
type Repository struct {
	mu    sync.RWMutex
	stats *Statistics
}

// NewRepository constructs an uninitialized statistics store.
func NewRepository() *Repository {
	return &Repository{}
}

// Init seeds the singleton record with id 1.
func (r *Repository) Init(s Statistics) Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = 1
	r.stats = &s
	return s
}

// Get returns the singleton record.
func (r *Repository) Get() (Statistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stats == nil {
		return Statistics{}, shared.ErrNotFound
	}
	return *r.stats, nil
}

// Update shallow-merges the partial payload onto the singleton record.
func (r *Repository) Update(req UpdateStatisticsRequest) (Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stats == nil {
		return Statistics{}, shared.ErrNotFound
	}
	if req.TotalOrders != nil {
		r.stats.TotalOrders = *req.TotalOrders
	}
	if req.InventoryValue != nil {
		r.stats.InventoryValue = *req.InventoryValue
	}
	if req.ActiveSuppliers != nil {
		r.stats.ActiveSuppliers = *req.ActiveSuppliers
	}
	if req.OnTimeDelivery != nil {
		r.stats.OnTimeDelivery = *req.OnTimeDelivery
	}
	return *r.stats, nil
}
