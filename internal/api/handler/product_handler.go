package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saintreact/inventory-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for inventory operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /estoque/cadastrar.
//
// @Summary      Register a product
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /estoque/cadastrar [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.CreateProduct(c.Request().Context(), toCreateProductInput(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productMessageResponse{Message: "Produto cadastrado com sucesso!"})
}

// Get handles GET /estoque/produto/:codigo.
//
// @Summary      Get a product by code
// @Tags         estoque
// @Produce      json
// @Param        codigo  path      string  true  "Product code"
// @Success      200     {object}  getProductResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /estoque/produto/{codigo} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("codigo"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getProductResponse{Product: toProductResponse(product)})
}

// List handles GET /estoque/listar.
//
// @Summary      List all products
// @Tags         estoque
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      500  {object}  errorResponse
// @Router       /estoque/listar [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductListResponse(products))
}

// Update handles PUT /estoque/editar/:codigo. Only allow-listed fields are
// applied; the code itself never changes.
//
// @Summary      Update a product
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        codigo  path      string                true  "Product code"
// @Param        body    body      updateProductRequest  true  "Fields to update"
// @Success      200     {object}  productMessageResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /estoque/editar/{codigo} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateProduct(c.Request().Context(), c.Param("codigo"), toUpdateProductInput(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{Message: "Produto atualizado com sucesso!"})
}

// Delete handles DELETE /estoque/deletar/:codigo.
//
// @Summary      Delete a product
// @Tags         estoque
// @Produce      json
// @Param        codigo  path      string  true  "Product code"
// @Success      200     {object}  productMessageResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /estoque/deletar/{codigo} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("codigo")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productMessageResponse{Message: "Produto deletado com sucesso!"})
}
