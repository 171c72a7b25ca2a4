package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/service"
	"github.com/pulsewear/storefront/internal/transport"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) GetCategories(c echo.Context) error {
	categories, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	category, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
