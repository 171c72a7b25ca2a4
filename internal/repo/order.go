package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
)

// CommitOrder applies every stock decrement, the coupon usage increment
// and the order insert in a single transaction. Each decrement is a
// conditional update guarded by the current stock, so a concurrent
// placement that would oversell makes RowsAffected come back zero and
// the whole transaction rolls back. Nothing is applied partially.
func (r *GormRepo) CommitOrder(ctx context.Context, order *models.Order, reservations []Reservation, couponID *uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, res := range reservations {
			upd := tx.Model(&models.ProductVariation{}).
				Where("id = ? AND stock >= ?", res.VariationID, res.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", res.Quantity))
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				return fmt.Errorf("%w: sku %s", ErrInsufficientStock, res.SKU)
			}

			movement := models.StockMovement{
				ID:          uuid.New(),
				ProductID:   res.ProductID,
				VariationID: res.VariationID,
				Quantity:    res.Quantity,
				Type:        models.StockMovementOut,
				Reason:      "order " + order.ID.String(),
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}

		if couponID != nil {
			upd := tx.Model(&models.Coupon{}).
				Where("id = ? AND used < max_uses", *couponID).
				UpdateColumn("used", gorm.Expr("used + 1"))
			if upd.Error != nil {
				return upd.Error
			}
			if upd.RowsAffected == 0 {
				return ErrCouponExhausted
			}
		}

		return tx.Create(order).Error
	})
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListClientOrders(ctx context.Context, clientID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	q := r.DB.WithContext(ctx).Preload("Items").Where("client_id = ?", clientID)
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

type SalesSummary struct {
	TotalSales     float64 `json:"total_sales"`
	TotalOrders    int64   `json:"total_orders"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

func (r *GormRepo) SalesSummary(ctx context.Context) (*SalesSummary, error) {
	var s SalesSummary

	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCanceled).
		Select("COALESCE(SUM(total), 0)").Scan(&s.TotalSales).Error; err != nil {
		return nil, err
	}

	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&s.TotalOrders).Error; err != nil {
		return nil, err
	}

	paid := []string{models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusDelivered}
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("status IN ?", paid).
		Select("COALESCE(SUM(total), 0)").Scan(&s.MonthlyRevenue).Error; err != nil {
		return nil, err
	}

	return &s, nil
}
