package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
	"github.com/pulsewear/storefront/internal/service"
	"github.com/pulsewear/storefront/internal/transport"
)

type orderTestEnv struct {
	Handler   *OrderHTTP
	Repo      *repo.GormRepo
	Client    models.User
	Address   models.Address
	Product   models.Product
	Variation models.ProductVariation
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Address{}, &models.Product{}, &models.ProductVariation{},
		&models.Coupon{}, &models.Order{}, &models.OrderItem{}, &models.StockMovement{},
	))

	r := &repo.GormRepo{DB: db}

	client := models.User{ID: uuid.New(), Name: "Cliente Demo", Email: "c@loja.com", PasswordHash: "x", Role: models.RoleClient, Status: models.UserStatusActive}
	require.NoError(t, db.Create(&client).Error)

	address := models.Address{ID: uuid.New(), UserID: client.ID, Street: "Rua A, 1", City: "Sao Paulo"}
	require.NoError(t, db.Create(&address).Error)

	product := models.Product{ID: uuid.New(), Name: "Jaqueta Aurora", Price: 100, Status: models.ProductStatusActive}
	require.NoError(t, db.Create(&product).Error)

	variation := models.ProductVariation{ID: uuid.New(), ProductID: product.ID, SKU: "AURORA-M", Stock: 2}
	require.NoError(t, db.Create(&variation).Error)

	svc := &service.OrderService{
		Repo:    r,
		Catalog: &service.CatalogService{Repo: r},
		Coupons: &service.CouponService{Repo: r},
	}

	return &orderTestEnv{
		Handler:   &OrderHTTP{Svc: svc},
		Repo:      r,
		Client:    client,
		Address:   address,
		Product:   product,
		Variation: variation,
	}
}

func (env *orderTestEnv) doCreateOrder(t *testing.T, body transport.CreateOrderRequest, callerID uuid.UUID, role string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(bodyBytes))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", callerID.String())
	c.Set("role", role)

	return rec, env.Handler.CreateOrder(c)
}

func orderBody(env *orderTestEnv, quantity int) transport.CreateOrderRequest {
	return transport.CreateOrderRequest{
		ClientID: env.Client.ID,
		Items: []transport.CreateOrderItem{
			{ProductID: env.Product.ID, VariationID: env.Variation.ID, Quantity: quantity},
		},
		ShippingAddressID: env.Address.ID,
		PaymentMethod:     models.PaymentMethodCard,
	}
}

func TestOrderHTTP_CreateOrder_Created(t *testing.T) {
	env := newOrderTestEnv(t)

	rec, err := env.doCreateOrder(t, orderBody(env, 2), env.Client.ID, models.RoleClient)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, models.OrderStatusAwaitingPayment, created.Status)
	require.InDelta(t, 200.0, created.Total, 1e-9)

	var v models.ProductVariation
	require.NoError(t, env.Repo.DB.First(&v, "id = ?", env.Variation.ID).Error)
	require.Equal(t, 0, v.Stock)
}

func TestOrderHTTP_CreateOrder_InsufficientStockConflict(t *testing.T) {
	env := newOrderTestEnv(t)

	_, err := env.doCreateOrder(t, orderBody(env, 5), env.Client.ID, models.RoleClient)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusConflict, he.Code)

	var v models.ProductVariation
	require.NoError(t, env.Repo.DB.First(&v, "id = ?", env.Variation.ID).Error)
	require.Equal(t, 2, v.Stock, "rejected order must not touch stock")
}

func TestOrderHTTP_CreateOrder_ForbiddenForOtherClient(t *testing.T) {
	env := newOrderTestEnv(t)

	_, err := env.doCreateOrder(t, orderBody(env, 1), uuid.New(), models.RoleClient)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestOrderHTTP_CreateOrder_UnknownCouponBadRequest(t *testing.T) {
	env := newOrderTestEnv(t)

	body := orderBody(env, 1)
	body.CouponCode = "NOPE"

	_, err := env.doCreateOrder(t, body, env.Client.ID, models.RoleClient)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestOrderHTTP_UpdateStatus(t *testing.T) {
	env := newOrderTestEnv(t)

	rec, err := env.doCreateOrder(t, orderBody(env, 1), env.Client.ID, models.RoleClient)
	require.NoError(t, err)
	var created models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	e := echo.New()
	payload, _ := json.Marshal(transport.UpdateOrderStatusRequest{Status: models.OrderStatusPaid})
	req := httptest.NewRequest(http.MethodPatch, "/orders/"+created.ID.String()+"/status", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec2 := httptest.NewRecorder()
	c := e.NewContext(req, rec2)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	require.NoError(t, env.Handler.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec2.Code)

	var updated models.Order
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &updated))
	require.Equal(t, models.OrderStatusPaid, updated.Status)
}
