package service

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type CreateProductParams struct {
	// ID is rejected when set; ids are assigned by the database.
	ID          *int64  `json:"id"`
	ExtID       string  `json:"extId" validate:"required,notblank"`
	Name        string  `json:"name" validate:"required,notblank"`
	Description *string `json:"description"`
}

type UpdateProductParams struct {
	ExtID       string  `json:"extId" validate:"required,notblank"`
	Name        string  `json:"name" validate:"required,notblank"`
	Description *string `json:"description"`
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	productRepo repository.ProductRepository
	validator   validator.Validator
}

func NewProductService(
	productRepo repository.ProductRepository,
	validator validator.Validator,
) ProductService {
	return &productService{
		productRepo: productRepo,
		validator:   validator,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository find all: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product repository find by id: %w", err)
	}
	if product == nil {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	return *product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if params.ID != nil {
		return model.Product{}, apperr.ProductIDNotAllowedErr
	}

	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, fmt.Errorf("validate params: %w", err)
	}

	var product model.Product
	if err := s.productRepo.WithTx(ctx, func(repo repository.ProductRepository) error {
		var err error
		product, err = repo.Save(ctx, model.Product{
			ExtID:       params.ExtID,
			Name:        params.Name,
			Description: params.Description,
		})
		if err != nil {
			return fmt.Errorf("product repository save: %w", err)
		}
		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("with tx: %w", err)
	}

	return product, nil
}

// UpdateProduct overwrites every mutable field of the product in one statement.
// The returned product is built from id and params, which is exactly what was stored.
func (s *productService) UpdateProduct(ctx context.Context, id int64, params UpdateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, fmt.Errorf("validate params: %w", err)
	}

	if err := s.productRepo.WithTx(ctx, func(repo repository.ProductRepository) error {
		rows, err := repo.UpdateFieldsByID(ctx, id, repository.ProductFields{
			ExtID:       params.ExtID,
			Name:        params.Name,
			Description: params.Description,
		})
		if err != nil {
			return fmt.Errorf("product repository update fields by id: %w", err)
		}
		if rows == 0 {
			return apperr.ProductNotFoundErr
		}
		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("with tx: %w", err)
	}

	return model.Product{
		ID:          id,
		ExtID:       params.ExtID,
		Name:        params.Name,
		Description: params.Description,
	}, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.WithTx(ctx, func(repo repository.ProductRepository) error {
		rows, err := repo.DeleteByID(ctx, id)
		if err != nil {
			return fmt.Errorf("product repository delete by id: %w", err)
		}
		if rows == 0 {
			return apperr.ProductNotFoundErr
		}
		return nil
	}); err != nil {
		return fmt.Errorf("with tx: %w", err)
	}

	return nil
}
