package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariation{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.StockMovement{},
	), "failed to migrate tables")

	return &repo.GormRepo{DB: db}
}

type fixture struct {
	Repo      *repo.GormRepo
	Client    models.User
	Address   models.Address
	Product   models.Product
	Variation models.ProductVariation
	Coupon    models.Coupon
}

// newFixture seeds the end-to-end scenario: client with one address,
// active product at price 100 / sale price 80, variation with stock 5,
// percentage coupon SAVE10 worth 10%.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	r := newTestRepo(t)

	client := models.User{
		ID:           uuid.New(),
		Name:         "Cliente Demo",
		Email:        "cliente@loja.com",
		PasswordHash: "x",
		Role:         models.RoleClient,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, r.DB.Create(&client).Error)

	address := models.Address{
		ID:      uuid.New(),
		UserID:  client.ID,
		Label:   "Casa",
		Street:  "Rua das Flores, 123",
		City:    "Sao Paulo",
		State:   "SP",
		ZipCode: "01000-000",
		Country: "Brasil",
	}
	require.NoError(t, r.DB.Create(&address).Error)

	salePrice := 80.0
	product := models.Product{
		ID:        uuid.New(),
		Name:      "Jaqueta Aurora",
		Price:     100,
		SalePrice: &salePrice,
		Status:    models.ProductStatusActive,
	}
	require.NoError(t, r.DB.Create(&product).Error)

	variation := models.ProductVariation{
		ID:        uuid.New(),
		ProductID: product.ID,
		Size:      "M",
		SKU:       "AURORA-M",
		Stock:     5,
	}
	require.NoError(t, r.DB.Create(&variation).Error)

	coupon := models.Coupon{
		ID:        uuid.New(),
		Code:      "SAVE10",
		Type:      models.CouponTypePercentage,
		Value:     10,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		IsActive:  true,
		MaxUses:   100,
		Used:      0,
	}
	require.NoError(t, r.DB.Create(&coupon).Error)

	return &fixture{
		Repo:      r,
		Client:    client,
		Address:   address,
		Product:   product,
		Variation: variation,
		Coupon:    coupon,
	}
}

func newOrderService(r *repo.GormRepo) *OrderService {
	return &OrderService{
		Repo:    r,
		Catalog: &CatalogService{Repo: r},
		Coupons: &CouponService{Repo: r},
	}
}
