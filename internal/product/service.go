package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/pattarap/shop-api/internal/apperror"
)

// Service implements the product use cases: validate input, then delegate to
// the repository. It holds no per-request state.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, input CreateProductInput) (Product, error) {
	if input.Name == "" {
		return Product{}, apperror.Validation("Product name is required")
	}
	if input.Price.IsNegative() {
		return Product{}, apperror.Validation("Price cannot be negative")
	}
	if input.Stock < 0 {
		return Product{}, apperror.Validation("Stock cannot be negative")
	}

	return s.repo.Create(ctx, input)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if p == nil {
		return Product{}, apperror.ErrNotFound
	}
	return *p, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (Product, error) {
	if input.Name != nil && *input.Name == "" {
		return Product{}, apperror.Validation("Name cannot be empty")
	}
	if input.Description != nil && *input.Description == "" {
		return Product{}, apperror.Validation("Description cannot be empty")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return Product{}, apperror.Validation("Price cannot be negative")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return Product{}, apperror.Validation("Stock cannot be negative")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if existing == nil {
		return Product{}, apperror.ErrNotFound
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

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}
