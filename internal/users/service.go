package users

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/chainboard/chainboard/internal/shared"
)

// Service creates accounts and checks credentials. Passwords are hashed with
// bcrypt before they reach the store; the source kept them in plain text.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create hashes the password and stores the account.
func (s *Service) Create(ctx context.Context, username, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(User{Username: username, Password: string(hash)})
}

// Authenticate verifies the credentials and returns the account. An unknown
// username and a wrong password fail identically.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.repo.GetByUsername(username)
	if err != nil {
		return User{}, shared.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id int) (User, error) {
	return s.repo.Get(id)
}
