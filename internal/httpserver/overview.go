package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/service"
)

type OverviewHTTP struct {
	Svc *service.OverviewService
}

func (h *OverviewHTTP) GetOverview(c echo.Context) error {
	overview, err := h.Svc.Summary(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, overview)
}
