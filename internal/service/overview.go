package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pulsewear/storefront/internal/cache"
	"github.com/pulsewear/storefront/internal/logging"
	"github.com/pulsewear/storefront/internal/repo"
)

const (
	lowStockThreshold = 3
	overviewCacheTTL  = 30 * time.Second
)

type OverviewService struct {
	Repo  *repo.GormRepo
	Cache cache.Cache
}

type Overview struct {
	TotalSales       float64                  `json:"total_sales"`
	TotalOrders      int64                    `json:"total_orders"`
	MonthlyRevenue   float64                  `json:"monthly_revenue"`
	LowStockProducts []repo.LowStockVariation `json:"low_stock_products"`
}

func (s *OverviewService) Summary(ctx context.Context) (*Overview, error) {
	key := s.Cache.GenerateKey("overview", "summary")
	if raw, err := s.Cache.Get(ctx, key); err == nil && raw != "" {
		var cached Overview
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return &cached, nil
		}
	}

	sales, err := s.Repo.SalesSummary(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.Repo.LowStockVariations(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		TotalSales:       sales.TotalSales,
		TotalOrders:      sales.TotalOrders,
		MonthlyRevenue:   sales.MonthlyRevenue,
		LowStockProducts: lowStock,
	}

	if data, err := json.Marshal(overview); err == nil {
		if err := s.Cache.Set(ctx, key, data, overviewCacheTTL); err != nil {
			logging.FromContext(ctx).Warn("overview cache set failed", "error", err)
		}
	}

	return overview, nil
}
