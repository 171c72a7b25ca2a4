package service

import (
	"math"

	"github.com/pulsewear/storefront/internal/models"
)

type PricedItem struct {
	UnitPrice float64
	Quantity  int
}

// ComputeTotal sums line totals and applies the coupon discount.
// Percentage coupons take value% off the subtotal, amount coupons a
// flat value. The result never goes below zero.
func ComputeTotal(items []PricedItem, coupon *models.Coupon) float64 {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}

	if coupon == nil {
		return subtotal
	}

	discount := coupon.Value
	if coupon.Type == models.CouponTypePercentage {
		discount = subtotal * coupon.Value / 100
	}

	return math.Max(subtotal-discount, 0)
}
