package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/pulsewear/storefront/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	ProductHandler  *ProductHTTP
	CategoryHandler *CategoryHTTP
	CouponHandler   *CouponHTTP
	OrderHandler    *OrderHTTP
	CustomerHandler *CustomerHTTP
	OverviewHandler *OverviewHTTP
	SearchHandler   *SearchHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := authmw.NewSimpleAuth(d.JWTSecret)

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/me", d.AuthHandler.Me, mw.RequireAuth)
	auth.POST("/addresses", d.AuthHandler.AddAddress, mw.RequireAuth)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.SearchHandler.SearchProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, mw.RequireAdmin)
	products.PUT("/:id", d.ProductHandler.PatchProduct, mw.RequireAdmin)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, mw.RequireAdmin)
	products.POST("/:id/variations", d.ProductHandler.AddVariation, mw.RequireAdmin)

	categories := e.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.POST("", d.CategoryHandler.CreateCategory, mw.RequireAdmin)
	categories.PUT("/:id", d.CategoryHandler.UpdateCategory, mw.RequireAdmin)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory, mw.RequireAdmin)

	coupons := e.Group("/coupons", mw.RequireAdmin)
	coupons.GET("", d.CouponHandler.GetCoupons)
	coupons.POST("", d.CouponHandler.CreateCoupon)
	coupons.PUT("/:id", d.CouponHandler.UpdateCoupon)
	coupons.DELETE("/:id", d.CouponHandler.DeleteCoupon)

	orders := e.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders, mw.RequireAdmin)
	orders.GET("/client/:clientId", d.OrderHandler.GetClientOrders, mw.RequireAuth)
	orders.POST("", d.OrderHandler.CreateOrder, mw.RequireAuth)
	orders.PATCH("/:id/status", d.OrderHandler.UpdateStatus, mw.RequireAdmin)

	customers := e.Group("/customers", mw.RequireAdmin)
	customers.GET("", d.CustomerHandler.GetCustomers)
	customers.POST("/:id/block", d.CustomerHandler.BlockCustomer)
	customers.POST("/:id/unblock", d.CustomerHandler.UnblockCustomer)

	e.GET("/overview", d.OverviewHandler.GetOverview, mw.RequireAdmin)
}
