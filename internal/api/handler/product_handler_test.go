package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saintreact/inventory-api/internal/api/handler"
	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	getFn    func(ctx context.Context, code string) (*domain.Product, error)
	updateFn func(ctx context.Context, code string, input ports.UpdateProductInput) error
	deleteFn func(ctx context.Context, code string) error
	listFn   func(ctx context.Context) ([]*domain.Product, error)
}

func (s *stubProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) GetProduct(ctx context.Context, code string) (*domain.Product, error) {
	return s.getFn(ctx, code)
}

func (s *stubProductService) UpdateProduct(ctx context.Context, code string, input ports.UpdateProductInput) error {
	return s.updateFn(ctx, code, input)
}

func (s *stubProductService) DeleteProduct(ctx context.Context, code string) error {
	return s.deleteFn(ctx, code)
}

func (s *stubProductService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func sampleProduct() *domain.Product {
	return &domain.Product{
		Name:     "Tênis",
		Price:    199.90,
		Brand:    "Acme",
		Code:     "TN-001",
		Quantity: 5,
	}
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			if input.Name != "Tênis" || input.Code != "TN-001" || input.Price != 199.90 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleProduct(), nil
		},
	}
	h := handler.NewProductHandler(stub)

	body := `{"produto":"Tênis","preco":199.90,"marca":"Acme","codigo":"TN-001","quantidade":5}`
	rec := doJSON(e, h.Create, http.MethodPost, "/estoque/cadastrar", body, echo.MIMEApplicationJSON)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["mensagem"] == "" {
		t.Fatalf("expected mensagem, got %v", resp)
	}
}

func TestProductHandler_Create_MissingCode(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewProductHandler(stub)

	body := `{"produto":"Tênis","preco":199.90}`
	rec := doJSON(e, h.Create, http.MethodPost, "/estoque/cadastrar", body, echo.MIMEApplicationJSON)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Duplicate(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			return nil, domain.ErrDuplicateProduct
		},
	}
	h := handler.NewProductHandler(stub)

	body := `{"produto":"Tênis","preco":199.90,"codigo":"TN-001"}`
	rec := doJSON(e, h.Create, http.MethodPost, "/estoque/cadastrar", body, echo.MIMEApplicationJSON)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestProductHandler_Get(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		getFn: func(ctx context.Context, code string) (*domain.Product, error) {
			if code != "TN-001" {
				t.Fatalf("unexpected code: %s", code)
			}
			return sampleProduct(), nil
		},
	}
	h := handler.NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/estoque/produto/TN-001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("TN-001")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["produto"]["codigo"] != "TN-001" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		getFn: func(ctx context.Context, code string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := handler.NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/estoque/produto/NOPE", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("NOPE")

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// Update must forward only the fields present in the request body.
func TestProductHandler_Update_AllowList(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, code string, input ports.UpdateProductInput) error {
			if code != "TN-001" {
				t.Fatalf("unexpected code: %s", code)
			}
			if input.Price == nil || *input.Price != 149.90 {
				t.Fatalf("expected price update, got %+v", input)
			}
			if input.Name != nil || input.Brand != nil || input.Quantity != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return nil
		},
	}
	h := handler.NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/estoque/editar/TN-001", strings.NewReader(`{"preco":149.90}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("TN-001")

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, code string, input ports.UpdateProductInput) error {
			return domain.ErrProductNotFound
		},
	}
	h := handler.NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/estoque/editar/NOPE", strings.NewReader(`{"preco":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("NOPE")

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, code string) error {
			if code != "TN-001" {
				t.Fatalf("unexpected code: %s", code)
			}
			return nil
		},
	}
	h := handler.NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/estoque/deletar/TN-001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("codigo")
	c.SetParamValues("TN-001")

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context) ([]*domain.Product, error) {
			other := sampleProduct()
			other.Code = "TN-002"
			return []*domain.Product{sampleProduct(), other}, nil
		},
	}
	h := handler.NewProductHandler(stub)

	rec := doJSON(e, h.List, http.MethodGet, "/estoque/listar", "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp))
	}
}
