package handler

import (
	"github.com/saintreact/inventory-api/internal/core/domain"
	"github.com/saintreact/inventory-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProductInput(req createProductRequest) ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:      req.Name,
		Price:     req.Price,
		Brand:     req.Brand,
		Color:     req.Color,
		Code:      req.Code,
		Quantity:  req.Quantity,
		Condition: req.Condition,
		Weight:    req.Weight,
		Notes:     req.Notes,
	}
}

func toUpdateProductInput(req updateProductRequest) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:      req.Name,
		Price:     req.Price,
		Brand:     req.Brand,
		Color:     req.Color,
		Quantity:  req.Quantity,
		Condition: req.Condition,
		Weight:    req.Weight,
		Notes:     req.Notes,
	}
}

// --- Domain → HTTP response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		Name:      p.Name,
		Price:     p.Price,
		Brand:     p.Brand,
		Color:     p.Color,
		Code:      p.Code,
		Quantity:  p.Quantity,
		Condition: p.Condition,
		Weight:    p.Weight,
		Notes:     p.Notes,
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
