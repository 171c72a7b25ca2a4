package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
)

type CouponService struct {
	Repo *repo.GormRepo
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate resolves a coupon code for use in an order. An empty code is
// a valid no-discount outcome. Never mutates the coupon; the usage
// increment happens only when the order commits.
func (s *CouponService) Validate(ctx context.Context, code string) (*models.Coupon, error) {
	code = NormalizeCouponCode(code)
	if code == "" {
		return nil, nil
	}

	coupon, err := s.Repo.GetActiveCouponByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCouponNotFound, code)
	}
	if err != nil {
		return nil, err
	}

	if !coupon.ExpiresAt.IsZero() && time.Now().After(coupon.ExpiresAt) {
		return nil, fmt.Errorf("%w: %s", ErrCouponExpired, code)
	}
	if coupon.Used >= coupon.MaxUses {
		return nil, fmt.Errorf("%w: %s", ErrCouponExhausted, code)
	}

	return coupon, nil
}

func (s *CouponService) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	return s.Repo.ListCoupons(ctx)
}

func (s *CouponService) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	coupon.Code = NormalizeCouponCode(coupon.Code)
	if coupon.Code == "" {
		return fmt.Errorf("%w: code required", ErrValidation)
	}
	if coupon.Type != models.CouponTypePercentage && coupon.Type != models.CouponTypeAmount {
		return fmt.Errorf("%w: unknown coupon type %q", ErrValidation, coupon.Type)
	}
	if coupon.Value <= 0 {
		return fmt.Errorf("%w: value must be > 0", ErrValidation)
	}
	if coupon.MaxUses <= 0 {
		return fmt.Errorf("%w: max uses must be > 0", ErrValidation)
	}

	coupon.ID = uuid.New()
	coupon.Used = 0
	return s.Repo.CreateCoupon(ctx, coupon)
}

func (s *CouponService) PatchCoupon(ctx context.Context, id uuid.UUID, apply func(*models.Coupon) error) (*models.Coupon, error) {
	coupon, err := s.Repo.GetCoupon(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: coupon %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if err := apply(coupon); err != nil {
		return nil, err
	}
	coupon.Code = NormalizeCouponCode(coupon.Code)

	if err := s.Repo.SaveCoupon(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteCoupon(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: coupon %s", ErrNotFound, id)
	}
	return err
}
