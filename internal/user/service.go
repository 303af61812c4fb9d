package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pattarap/shop-api/internal/apperror"
)

// Service implements the user use cases: validate input, then delegate to
// the repository. It holds no per-request state.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateUserInput) (User, error) {
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return User{}, apperror.Validation("Email, username and password are required")
	}

	// Best-effort duplicate check. Two concurrent creates can both pass it;
	// the unique constraint on users.email is the authoritative guard.
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return User{}, err
	}
	if existing != nil {
		return User{}, apperror.Validation("User with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	input.Password = string(hashed)

	return s.repo.Create(ctx, input)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if u == nil {
		return User{}, apperror.ErrNotFound
	}
	return *u, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (User, error) {
	if input.Email != nil && *input.Email == "" {
		return User{}, apperror.Validation("Email cannot be empty")
	}
	if input.Username != nil && *input.Username == "" {
		return User{}, apperror.Validation("Username cannot be empty")
	}
	if input.Password != nil && *input.Password == "" {
		return User{}, apperror.Validation("Password cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if existing == nil {
		return User{}, apperror.ErrNotFound
	}

	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, fmt.Errorf("hash password: %w", err)
		}
		hashedStr := string(hashed)
		input.Password = &hashedStr
	}

	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
