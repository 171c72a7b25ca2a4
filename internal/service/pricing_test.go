package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pulsewear/storefront/internal/models"
)

func TestComputeTotal(t *testing.T) {
	t.Parallel()

	percentage := &models.Coupon{Type: models.CouponTypePercentage, Value: 10}
	amount := &models.Coupon{Type: models.CouponTypeAmount, Value: 100}

	tests := []struct {
		name   string
		items  []PricedItem
		coupon *models.Coupon
		want   float64
	}{
		{
			name:  "no coupon",
			items: []PricedItem{{UnitPrice: 50, Quantity: 2}, {UnitPrice: 25, Quantity: 4}},
			want:  200,
		},
		{
			name:   "percentage coupon",
			items:  []PricedItem{{UnitPrice: 100, Quantity: 2}},
			coupon: percentage,
			want:   180,
		},
		{
			name:   "amount coupon floors at zero",
			items:  []PricedItem{{UnitPrice: 50, Quantity: 1}},
			coupon: amount,
			want:   0,
		},
		{
			name:   "amount coupon partial",
			items:  []PricedItem{{UnitPrice: 150, Quantity: 1}},
			coupon: amount,
			want:   50,
		},
		{
			name: "empty items",
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeTotal(tt.items, tt.coupon)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeTotal_Deterministic(t *testing.T) {
	t.Parallel()

	items := []PricedItem{{UnitPrice: 80, Quantity: 2}}
	coupon := &models.Coupon{Type: models.CouponTypePercentage, Value: 10}

	first := ComputeTotal(items, coupon)
	second := ComputeTotal(items, coupon)
	assert.Equal(t, first, second)
	assert.InDelta(t, 144.0, first, 1e-9)
}
