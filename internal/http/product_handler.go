package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
)

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(ctx context.Context, request gen.ListProductsRequestObject) (gen.ListProductsResponseObject, error) {
	products, err := h.productSvc.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product service list products: %w", err)
	}

	items := make([]gen.ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return gen.ListProducts200JSONResponse(items), nil
}

func (h *productHandler) GetProduct(ctx context.Context, request gen.GetProductRequestObject) (gen.GetProductResponseObject, error) {
	product, err := h.productSvc.GetProduct(ctx, request.Id)
	if err != nil {
		return nil, fmt.Errorf("product service get product: %w", err)
	}

	return gen.GetProduct200JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) CreateProduct(ctx context.Context, request gen.CreateProductRequestObject) (gen.CreateProductResponseObject, error) {
	params := service.CreateProductParams{
		ID:          request.Body.Id,
		ExtID:       request.Body.ExtId,
		Name:        request.Body.Name,
		Description: request.Body.Description,
	}
	product, err := h.productSvc.CreateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("product service create product: %w", err)
	}

	return gen.CreateProduct201JSONResponse(toProductResponse(product)), nil
}

// UpdateProduct replaces every mutable field. An id in the body is ignored; the path id wins.
func (h *productHandler) UpdateProduct(ctx context.Context, request gen.UpdateProductRequestObject) (gen.UpdateProductResponseObject, error) {
	params := service.UpdateProductParams{
		ExtID:       request.Body.ExtId,
		Name:        request.Body.Name,
		Description: request.Body.Description,
	}
	product, err := h.productSvc.UpdateProduct(ctx, request.Id, params)
	if err != nil {
		return nil, fmt.Errorf("product service update product: %w", err)
	}

	return gen.UpdateProduct200JSONResponse(toProductResponse(product)), nil
}

func (h *productHandler) DeleteProduct(ctx context.Context, request gen.DeleteProductRequestObject) (gen.DeleteProductResponseObject, error) {
	if err := h.productSvc.DeleteProduct(ctx, request.Id); err != nil {
		return nil, fmt.Errorf("product service delete product: %w", err)
	}

	return gen.DeleteProduct204Response{}, nil
}

func toProductResponse(product model.Product) gen.ProductResponse {
	return gen.ProductResponse{
		Id:          product.ID,
		ExtId:       product.ExtID,
		Name:        product.Name,
		Description: product.Description,
	}
}
