package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/saintreact/inventory-api/internal/api/metrics"
	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

// ProductCache abstracts the read-through cache in front of the product store.
// Implementations must treat their own failures as misses.
type ProductCache interface {
	Get(ctx context.Context, code string) (*domain.Product, bool)
	Set(ctx context.Context, p *domain.Product)
	Invalidate(ctx context.Context, code string)
}

// ProductService implements the inventory use-cases over the repository with a
// cache-aside read path.
type ProductService struct {
	repo  ports.ProductRepository
	cache ProductCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:      input.Name,
		Price:     input.Price,
		Brand:     input.Brand,
		Color:     input.Color,
		Code:      input.Code,
		Quantity:  input.Quantity,
		Condition: input.Condition,
		Weight:    input.Weight,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicateProduct) {
			return nil, err
		}
		s.log.Error().Err(err).Str("code", input.Code).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("code", product.Code).Msg("product created")
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, code string) (*domain.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, code); ok {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return p, nil
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	}

	product, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, product)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, code string, input ports.UpdateProductInput) error {
	if err := s.repo.Update(ctx, code, input); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, code)
	}
	s.log.Info().Str("code", code).Msg("product updated")
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, code)
	}
	s.log.Info().Str("code", code).Msg("product deleted")
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}
