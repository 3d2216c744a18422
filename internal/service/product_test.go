package service_test

import (
	"context"
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/repository"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/pkg/ptr"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) WithTx(_ context.Context, fn func(repository.ProductRepository) error) error {
	return fn(m)
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) UpdateFieldsByID(ctx context.Context, id int64, fields repository.ProductFields) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func newService(t *testing.T) (service.ProductService, *mockProductRepository) {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	repo := &mockProductRepository{}
	t.Cleanup(func() { repo.AssertExpectations(t) })

	return service.NewProductService(repo, v), repo
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	var fieldErrs govalidator.ValidationErrors
	require.True(t, errors.As(err, &fieldErrs), "expected validation errors, got %v", err)

	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, fe.Field())
	}
	return names
}

func TestProductService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return repository products", func(t *testing.T) {
		svc, repo := newService(t)
		products := []model.Product{{ID: 1, ExtID: "e1", Name: "n1"}, {ID: 2, ExtID: "e2", Name: "n2"}}
		repo.On("FindAll", ctx).Return(products, nil).Once()

		got, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, products, got)
	})

	t.Run("Should wrap repository error", func(t *testing.T) {
		svc, repo := newService(t)
		errDB := errors.New("connection refused")
		repo.On("FindAll", ctx).Return(nil, errDB).Once()

		_, err := svc.ListProducts(ctx)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return product", func(t *testing.T) {
		svc, repo := newService(t)
		product := &model.Product{ID: 3, ExtID: "e", Name: "n"}
		repo.On("FindByID", ctx, int64(3)).Return(product, nil).Once()

		got, err := svc.GetProduct(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, *product, got)
	})

	t.Run("Should return not found for absent product", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("FindByID", ctx, int64(3)).Return(nil, nil).Once()

		_, err := svc.GetProduct(ctx, 3)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should save product without id", func(t *testing.T) {
		svc, repo := newService(t)
		toSave := model.Product{ExtID: "ext", Name: "Chair", Description: ptr.New("oak")}
		saved := toSave
		saved.ID = 10
		repo.On("Save", ctx, toSave).Return(saved, nil).Once()

		got, err := svc.CreateProduct(ctx, service.CreateProductParams{
			ExtID:       "ext",
			Name:        "Chair",
			Description: ptr.New("oak"),
		})
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("Should reject client supplied id regardless of other fields", func(t *testing.T) {
		for _, params := range []service.CreateProductParams{
			{ID: ptr.New(int64(1)), ExtID: "ext", Name: "Chair"},
			{ID: ptr.New(int64(1))},
		} {
			svc, _ := newService(t)

			_, err := svc.CreateProduct(ctx, params)
			assert.ErrorIs(t, err, apperr.ProductIDNotAllowedErr)
		}
	})

	t.Run("Should reject empty required fields before touching repository", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{ExtID: "", Name: " "})
		assert.ElementsMatch(t, []string{"extId", "name"}, fieldNames(t, err))
	})

	t.Run("Should propagate repository error", func(t *testing.T) {
		svc, repo := newService(t)
		errDB := errors.New("disk full")
		repo.On("Save", ctx, mock.Anything).Return(model.Product{}, errDB).Once()

		_, err := svc.CreateProduct(ctx, service.CreateProductParams{ExtID: "e", Name: "n"})
		assert.ErrorIs(t, err, errDB)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return updated product", func(t *testing.T) {
		svc, repo := newService(t)
		fields := repository.ProductFields{ExtID: "e2", Name: "n2", Description: ptr.New("d2")}
		repo.On("UpdateFieldsByID", ctx, int64(5), fields).Return(int64(1), nil).Once()

		got, err := svc.UpdateProduct(ctx, 5, service.UpdateProductParams{
			ExtID:       "e2",
			Name:        "n2",
			Description: ptr.New("d2"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.Product{ID: 5, ExtID: "e2", Name: "n2", Description: ptr.New("d2")}, got)
	})

	t.Run("Should return not found when no row was updated", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("UpdateFieldsByID", ctx, int64(5), mock.Anything).Return(int64(0), nil).Once()

		_, err := svc.UpdateProduct(ctx, 5, service.UpdateProductParams{ExtID: "e", Name: "n"})
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should reject empty name before touching repository", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.UpdateProduct(ctx, 5, service.UpdateProductParams{ExtID: "e", Name: ""})
		assert.Equal(t, []string{"name"}, fieldNames(t, err))
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete existing product", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("DeleteByID", ctx, int64(9)).Return(int64(1), nil).Once()

		assert.NoError(t, svc.DeleteProduct(ctx, 9))
	})

	t.Run("Should return not found for absent product", func(t *testing.T) {
		svc, repo := newService(t)
		repo.On("DeleteByID", ctx, int64(9)).Return(int64(0), nil).Once()

		assert.ErrorIs(t, svc.DeleteProduct(ctx, 9), apperr.ProductNotFoundErr)
	})
}
