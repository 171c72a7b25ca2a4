package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
)

func (r *GormRepo) GetActiveCouponByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.DB.WithContext(ctx).Where("code = ? AND is_active = ?", code, true).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormRepo) GetCoupon(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *GormRepo) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var items []models.Coupon
	if err := r.DB.WithContext(ctx).Order("code ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	return r.DB.WithContext(ctx).Create(coupon).Error
}

func (r *GormRepo) SaveCoupon(ctx context.Context, coupon *models.Coupon) error {
	return r.DB.WithContext(ctx).Save(coupon).Error
}

func (r *GormRepo) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Coupon{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
