package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/service"
)

// httpError maps the service error taxonomy onto HTTP status codes.
// Anything unrecognized is a 500 with no internal detail leaked.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrProductUnavailable),
		errors.Is(err, service.ErrVariationInvalid),
		errors.Is(err, service.ErrCouponNotFound),
		errors.Is(err, service.ErrCouponExpired),
		errors.Is(err, service.ErrCouponExhausted):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func identityFrom(c echo.Context) (service.Identity, error) {
	s, ok := c.Get("user_id").(string)
	if !ok || s == "" {
		return service.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return service.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	role, _ := c.Get("role").(string)
	return service.Identity{ID: id, Role: role}, nil
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
