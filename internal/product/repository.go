package product

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pattarap/shop-api/internal/apperror"
)

// Repository is the storage contract for products. FindByID reports absence
// with a nil product, not an error.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, input CreateProductInput) (Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Product, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
// Products are kept in insertion order; List returns them newest first.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{products: make([]Product, 0, len(seed))}
	r.products = append(r.products, seed...)
	return r
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, input CreateProductInput) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		p := r.products[i]
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		if input.Stock != nil {
			p.Stock = *input.Stock
		}
		p.UpdatedAt = time.Now().UTC()
		r.products[i] = p
		return p, nil
	}

	return Product{}, fmt.Errorf("db error: no product row for id %s", id)
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return apperror.ErrNotFound
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, r.products[i])
	}
	return out, nil
}
