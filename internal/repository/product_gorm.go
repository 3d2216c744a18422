package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/sqlite"
)

var _ ProductRepository = (*gormProductRepository)(nil)

type gormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository returns a ProductRepository backed by gorm.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r gormProductRepository) WithTx(ctx context.Context, fn func(ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormProductRepository{db: tx})
	})
}

func (r gormProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []sqlite.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}

	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProducts = append(modelProducts, gormProductToModelProduct(product))
	}

	return modelProducts, nil
}

func (r gormProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product sqlite.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	modelProduct := gormProductToModelProduct(product)
	return &modelProduct, nil
}

func (r gormProductRepository) Save(ctx context.Context, product model.Product) (model.Product, error) {
	record := sqlite.Product{
		ID:          product.ID,
		ExtID:       product.ExtID,
		Name:        product.Name,
		Description: product.Description,
	}

	tx := r.db.WithContext(ctx)
	if record.ID != 0 {
		tx = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"ext_id", "name", "description"}),
		})
	}

	if err := tx.Create(&record).Error; err != nil {
		return model.Product{}, fmt.Errorf("save product: %w", err)
	}

	return gormProductToModelProduct(record), nil
}

func (r gormProductRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&sqlite.Product{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete product: %w", res.Error)
	}

	return res.RowsAffected, nil
}

func (r gormProductRepository) UpdateFieldsByID(ctx context.Context, id int64, fields ProductFields) (int64, error) {
	// A map keeps nil descriptions in the SET clause; struct updates skip zero values.
	res := r.db.WithContext(ctx).
		Model(&sqlite.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ext_id":      fields.ExtID,
			"name":        fields.Name,
			"description": fields.Description,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("update product fields: %w", res.Error)
	}

	return res.RowsAffected, nil
}

func gormProductToModelProduct(product sqlite.Product) model.Product {
	return model.Product{
		ID:          product.ID,
		ExtID:       product.ExtID,
		Name:        product.Name,
		Description: product.Description,
	}
}
