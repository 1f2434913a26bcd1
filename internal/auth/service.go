package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulsefeed/pulsefeed/internal/shared"
	"github.com/pulsefeed/pulsefeed/internal/users"
)

const bcryptCost = 10

// Service wraps registration and authentication business rules.
type Service struct {
	repo   users.RepositoryPort
	tokens *TokenService
}

// NewService constructs a new Service.
func NewService(repo users.RepositoryPort, tokens *TokenService) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a new user account with a hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string, preferences []string) (*users.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, shared.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, name, email, string(hash), preferences)
}

// Authenticate validates email/password credentials. The failure is the same
// for an unknown email and a wrong password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID, user.Email)
}
