package shared

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a unique key is already taken.
	ErrConflict = errors.New("already exists")
)
