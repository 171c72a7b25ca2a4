package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
)

type ProductFilter struct {
	Featured   bool
	CategoryID *uuid.UUID
	ActiveOnly bool
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Variations").Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Preload("Variations")

	if filter.Featured {
		q = q.Where("featured = ?", true)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ActiveOnly {
		q = q.Where("status = ?", models.ProductStatusActive)
	}

	var items []models.Product
	if err := q.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) AddVariation(ctx context.Context, variation *models.ProductVariation) error {
	return r.DB.WithContext(ctx).Create(variation).Error
}

type LowStockVariation struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	VariationID uuid.UUID `json:"variation_id"`
	SKU         string    `json:"sku"`
	Stock       int       `json:"stock"`
}

func (r *GormRepo) LowStockVariations(ctx context.Context, threshold int) ([]LowStockVariation, error) {
	var out []LowStockVariation
	err := r.DB.WithContext(ctx).Model(&models.ProductVariation{}).
		Select("product_variations.product_id, products.name AS product_name, product_variations.id AS variation_id, product_variations.sku, product_variations.stock").
		Joins("JOIN products ON products.id = product_variations.product_id").
		Where("product_variations.stock <= ?", threshold).
		Scan(&out).Error
	return out, err
}
