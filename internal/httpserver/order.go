package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/logging"
	"github.com/pulsewear/storefront/internal/service"
	"github.com/pulsewear/storefront/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	caller, err := identityFrom(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, caller, req)
	if err != nil {
		he := httpError(err)
		l.Warn("create_order_error", "status", he.Code, "error", err)
		return he
	}

	l.Info("create_order_success", "order_id", order.ID, "total", order.Total)
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetClientOrders(c echo.Context) error {
	ctx := c.Request().Context()

	caller, err := identityFrom(c)
	if err != nil {
		return err
	}

	clientID, err := parseID(c, "clientId")
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListClientOrders(ctx, caller, clientID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		he := httpError(err)
		l.Warn("update_status_error", "status", he.Code, "error", err)
		return he
	}

	l.Info("update_status_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}
