package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
)

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Create(category).Error
}

func (r *GormRepo) SaveCategory(ctx context.Context, category *models.Category) error {
	return r.DB.WithContext(ctx).Save(category).Error
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
