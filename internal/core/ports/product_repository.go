package ports

import (
	"context"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

// UpdateProductInput is the explicit allow-list of updatable product fields.
// Nil pointers mean "leave unchanged". The product code is the immutable
// natural key and is deliberately absent.
type UpdateProductInput struct {
	Name      *string
	Price     *float64
	Brand     *string
	Color     *string
	Quantity  *int
	Condition *string
	Weight    *float64
	Notes     *string
}

// ProductRepository defines persistence operations for stock records.
type ProductRepository interface {
	// Create persists a new product. A duplicate code yields
	// domain.ErrDuplicateProduct.
	Create(ctx context.Context, p *domain.Product) error
	// FindByCode returns domain.ErrProductNotFound when no product matches.
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
	// Update applies the allow-listed fields to the product with the given
	// code. domain.ErrProductNotFound when nothing matched.
	Update(ctx context.Context, code string, input UpdateProductInput) error
	// Delete removes the product with the given code.
	// domain.ErrProductNotFound when nothing matched.
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) ([]*domain.Product, error)
}
