package user

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pattarap/shop-api/internal/apperror"
)

// Repository is the storage contract for users. FindByID and FindByEmail
// report absence with a nil user, not an error.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, input CreateUserInput) (User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]User, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
// Users are kept in insertion order; List returns them newest first.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{users: make([]User, 0, len(seed))}
	r.users = append(r.users, seed...)
	return r
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, input CreateUserInput) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == input.Email {
			return User{}, apperror.ErrDuplicateEntry
		}
	}

	now := time.Now().UTC()
	u := User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: input.Password,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		u := r.users[i]
		if input.Email != nil {
			u.Email = *input.Email
		}
		if input.Username != nil {
			u.Username = *input.Username
		}
		if input.Password != nil {
			u.PasswordHash = *input.Password
		}
		u.UpdatedAt = time.Now().UTC()
		r.users[i] = u
		return u, nil
	}

	return User{}, fmt.Errorf("db error: no user row for id %s", id)
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return apperror.ErrNotFound
}

func (r *InMemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, r.users[i])
	}
	return out, nil
}
