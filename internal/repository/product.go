package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db/sqlc"
)

// ProductFields are the mutable columns of a product. They are always written together.
type ProductFields struct {
	ExtID       string
	Name        string
	Description *string
}

type ProductRepository interface {
	// WithTx runs fn with a repository bound to a single transaction.
	WithTx(ctx context.Context, fn func(ProductRepository) error) error
	FindAll(ctx context.Context) ([]model.Product, error)
	// FindByID returns nil without error when no product has the given id.
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// Save inserts product when its ID is zero and overwrites the row with that ID otherwise.
	Save(ctx context.Context, product model.Product) (model.Product, error)
	// DeleteByID returns the number of deleted rows.
	DeleteByID(ctx context.Context, id int64) (int64, error)
	// UpdateFieldsByID overwrites all mutable fields in a single statement and
	// returns the number of updated rows.
	UpdateFieldsByID(ctx context.Context, id int64, fields ProductFields) (int64, error)
}

var _ ProductRepository = (*productRepository)(nil)

type productRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewProductRepository(db db.DB, queries sqlc.Queries) ProductRepository {
	return &productRepository{
		db:      db,
		queries: queries,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r productRepository) WithTx(ctx context.Context, fn func(ProductRepository) error) error {
	return r.db.WithTx(ctx, func(db db.DB) error {
		return fn(r.WithDB(db))
	})
}

func (r productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products, err := r.queries.ProductListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}

	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProducts = append(modelProducts, sqlcProductToModelProduct(product))
	}

	return modelProducts, nil
}

func (r productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := r.queries.ProductGetByID(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	modelProduct := sqlcProductToModelProduct(product)
	return &modelProduct, nil
}

func (r productRepository) Save(ctx context.Context, product model.Product) (model.Product, error) {
	if product.ID == 0 {
		created, err := r.queries.ProductCreate(ctx, r.db, sqlc.ProductCreateParams{
			ExtID:       product.ExtID,
			Name:        product.Name,
			Description: product.Description,
		})
		if err != nil {
			return model.Product{}, fmt.Errorf("create product: %w", err)
		}
		return sqlcProductToModelProduct(created), nil
	}

	// An explicit id bypasses the identity sequence, so it is moved past the
	// highest id before later inserts draw from it.
	var saved sqlc.Product
	if err := r.db.WithTx(ctx, func(tx db.DB) error {
		var err error
		saved, err = r.queries.ProductUpsert(ctx, tx, sqlc.ProductUpsertParams{
			ID:          product.ID,
			ExtID:       product.ExtID,
			Name:        product.Name,
			Description: product.Description,
		})
		if err != nil {
			return fmt.Errorf("upsert product: %w", err)
		}

		if err := r.queries.ProductSyncIDSequence(ctx, tx); err != nil {
			return fmt.Errorf("sync id sequence: %w", err)
		}
		return nil
	}); err != nil {
		return model.Product{}, err
	}

	return sqlcProductToModelProduct(saved), nil
}

func (r productRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	rows, err := r.queries.ProductDelete(ctx, r.db, id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}

	return rows, nil
}

func (r productRepository) UpdateFieldsByID(ctx context.Context, id int64, fields ProductFields) (int64, error) {
	rows, err := r.queries.ProductUpdateFields(ctx, r.db, sqlc.ProductUpdateFieldsParams{
		ID:          id,
		ExtID:       fields.ExtID,
		Name:        fields.Name,
		Description: fields.Description,
	})
	if err != nil {
		return 0, fmt.Errorf("update product fields: %w", err)
	}

	return rows, nil
}

func sqlcProductToModelProduct(product sqlc.Product) model.Product {
	return model.Product{
		ID:          product.ID,
		ExtID:       product.ExtID,
		Name:        product.Name,
		Description: product.Description,
	}
}
