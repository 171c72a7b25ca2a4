package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/service"
)

type CustomerHTTP struct {
	Svc *service.CustomerService
}

func (h *CustomerHTTP) GetCustomers(c echo.Context) error {
	customers, err := h.Svc.ListClients(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHTTP) BlockCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Block(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "customer blocked"})
}

func (h *CustomerHTTP) UnblockCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Unblock(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "customer unblocked"})
}
