package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prices serialize as JSON numbers (9.99, not "9.99").
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Product maps to the `products` table. Price is an exact decimal so
// monetary values never pick up binary floating-point rounding.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateProductInput carries the input for creating a product.
type CreateProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// UpdateProductInput carries a partial update. Nil fields keep their stored
// value.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

// Response is the wire shape of a product.
type Response struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListResponse wraps a list of products together with its cardinality.
type ListResponse struct {
	Products []Response `json:"products"`
	Total    int        `json:"total"`
}

func ToResponse(p Product) Response {
	return Response{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToListResponse(products []Product) ListResponse {
	out := make([]Response, 0, len(products))
	for _, p := range products {
		out = append(out, ToResponse(p))
	}
	return ListResponse{Products: out, Total: len(out)}
}
