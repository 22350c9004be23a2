package users

import (
	"fmt"
	"sync"

	"github.com/chainboard/chainboard/internal/shared"
)

// Repository holds the in-memory user collection with a unique username index.
type Repository struct {
	mu         sync.RWMutex
	byID       map[int]*User
	byUsername map[string]int
	nextID     int
}

// NewRepository constructs an empty user store.
func NewRepository() *Repository {
	return &Repository{
		byID:       make(map[int]*User),
		byUsername: make(map[string]int),
		nextID:     1,
	}
}

// Create assigns the next id and inserts the record. A duplicate username is
// rejected with shared.ErrConflict.
func (r *Repository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byUsername[u.Username]; taken {
		return User{}, fmt.Errorf("username %q: %w", u.Username, shared.ErrConflict)
	}
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = &u
	r.byUsername[u.Username] = u.ID
	return u, nil
}

// Get returns the user with the given id.
func (r *Repository) Get(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return *u, nil
}

// GetByUsername returns the user with the given username.
func (r *Repository) GetByUsername(username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[username]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return *r.byID[id], nil
}
