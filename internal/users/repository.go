package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	Create(ctx context.Context, name, email, passwordHash string, preferences []string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdatePreferences(ctx context.Context, id string, preferences []string) (*User, error)
}

// MemoryRepository keeps user records in process memory. Reads and writes
// may arrive from concurrent requests, so the collection is guarded by a
// single RWMutex.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

// Create stores a new user, rejecting duplicate emails.
func (r *MemoryRepository) Create(ctx context.Context, name, email, passwordHash string, preferences []string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, shared.ErrDuplicateUser
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Preferences:  append([]string{}, preferences...),
		CreatedAt:    time.Now().UTC(),
	}
	r.byID[user.ID] = user
	r.byEmail[email] = user.ID

	out := user.clone()
	return &out, nil
}

// FindByEmail fetches a user by email.
func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	user := r.byID[id].clone()
	return &user, nil
}

// FindByID fetches a user by identity.
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	out := user.clone()
	return &out, nil
}

// UpdatePreferences overwrites the full preference list for a user.
func (r *MemoryRepository) UpdatePreferences(ctx context.Context, id string, preferences []string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	user.Preferences = append([]string{}, preferences...)
	r.byID[id] = user

	out := user.clone()
	return &out, nil
}

var _ RepositoryPort = (*MemoryRepository)(nil)
