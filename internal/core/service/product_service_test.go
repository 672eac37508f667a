package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

type stubProductRepo struct {
	products  map[string]*domain.Product
	findCalls int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if _, exists := r.products[p.Code]; exists {
		return domain.ErrDuplicateProduct
	}
	clone := *p
	r.products[p.Code] = &clone
	return nil
}

func (r *stubProductRepo) FindByCode(_ context.Context, code string) (*domain.Product, error) {
	r.findCalls++
	p, ok := r.products[code]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, code string, input ports.UpdateProductInput) error {
	p, ok := r.products[code]
	if !ok {
		return domain.ErrProductNotFound
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Quantity != nil {
		p.Quantity = *input.Quantity
	}
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, code string) error {
	if _, ok := r.products[code]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, code)
	return nil
}

func (r *stubProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubCache struct {
	entries       map[string]*domain.Product
	invalidations []string
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.Product)}
}

func (c *stubCache) Get(_ context.Context, code string) (*domain.Product, bool) {
	p, ok := c.entries[code]
	return p, ok
}

func (c *stubCache) Set(_ context.Context, p *domain.Product) {
	c.entries[p.Code] = p
}

func (c *stubCache) Invalidate(_ context.Context, code string) {
	c.invalidations = append(c.invalidations, code)
	delete(c.entries, code)
}

func newTestProductService(repo ports.ProductRepository, cache ProductCache) *ProductService {
	return NewProductService(repo, cache, zerolog.Nop())
}

func sampleInput() ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:     "Tênis",
		Price:    199.90,
		Brand:    "Acme",
		Code:     "TN-001",
		Quantity: 5,
	}
}

func TestProductService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo, newStubCache())

	p, err := svc.CreateProduct(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if p.Code != "TN-001" || p.Name != "Tênis" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestProductService_Create_Duplicate(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo, newStubCache())

	if _, err := svc.CreateProduct(context.Background(), sampleInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), sampleInput()); !errors.Is(err, domain.ErrDuplicateProduct) {
		t.Fatalf("expected ErrDuplicateProduct, got %v", err)
	}
}

func TestProductService_Get_CacheMissThenHit(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubCache()
	svc := newTestProductService(repo, cache)

	if _, err := svc.CreateProduct(context.Background(), sampleInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Miss: falls through to the store and populates the cache.
	if _, err := svc.GetProduct(context.Background(), "TN-001"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected one store lookup, got %d", repo.findCalls)
	}

	// Hit: served from the cache, store untouched.
	if _, err := svc.GetProduct(context.Background(), "TN-001"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected cached read, store was hit %d times", repo.findCalls)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), newStubCache())

	if _, err := svc.GetProduct(context.Background(), "NOPE"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Update_InvalidatesCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubCache()
	svc := newTestProductService(repo, cache)

	if _, err := svc.CreateProduct(context.Background(), sampleInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.GetProduct(context.Background(), "TN-001"); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	newPrice := 149.90
	if err := svc.UpdateProduct(context.Background(), "TN-001", ports.UpdateProductInput{Price: &newPrice}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(cache.invalidations) != 1 || cache.invalidations[0] != "TN-001" {
		t.Fatalf("expected cache invalidation for TN-001, got %v", cache.invalidations)
	}

	p, err := svc.GetProduct(context.Background(), "TN-001")
	if err != nil {
		t.Fatalf("get after update failed: %v", err)
	}
	if p.Price != 149.90 {
		t.Fatalf("expected updated price, got %v", p.Price)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := newTestProductService(newStubProductRepo(), newStubCache())

	name := "x"
	err := svc.UpdateProduct(context.Background(), "NOPE", ports.UpdateProductInput{Name: &name})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_InvalidatesCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubCache()
	svc := newTestProductService(repo, cache)

	if _, err := svc.CreateProduct(context.Background(), sampleInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), "TN-001"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(cache.invalidations) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.invalidations)
	}
	if err := svc.DeleteProduct(context.Background(), "TN-001"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_List(t *testing.T) {
	repo := newStubProductRepo()
	svc := newTestProductService(repo, newStubCache())

	if _, err := svc.CreateProduct(context.Background(), sampleInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	in := sampleInput()
	in.Code = "TN-002"
	if _, err := svc.CreateProduct(context.Background(), in); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}
