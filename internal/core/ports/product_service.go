package ports

import (
	"context"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

// CreateProductInput carries all data needed to register a stock record.
type CreateProductInput struct {
	Name      string
	Price     float64
	Brand     string
	Color     string
	Code      string
	Quantity  int
	Condition string
	Weight    float64
	Notes     string
}

// ProductService defines use-case operations for the inventory.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, code string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, code string, input UpdateProductInput) error
	DeleteProduct(ctx context.Context, code string) error
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
