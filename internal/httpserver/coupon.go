package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/service"
	"github.com/pulsewear/storefront/internal/transport"
)

type CouponHTTP struct {
	Svc *service.CouponService
}

func (h *CouponHTTP) GetCoupons(c echo.Context) error {
	coupons, err := h.Svc.ListCoupons(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, coupons)
}

func (h *CouponHTTP) CreateCoupon(c echo.Context) error {
	var req transport.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	coupon := &models.Coupon{
		Code:      req.Code,
		Type:      req.Type,
		Value:     req.Value,
		ExpiresAt: req.ExpiresAt,
		IsActive:  true,
		MaxUses:   req.MaxUses,
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := h.Svc.CreateCoupon(c.Request().Context(), coupon); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHTTP) UpdateCoupon(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.PatchCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	coupon, err := h.Svc.PatchCoupon(c.Request().Context(), id, func(cp *models.Coupon) error {
		if req.Code != nil {
			cp.Code = *req.Code
		}
		if req.Type != nil {
			cp.Type = *req.Type
		}
		if req.Value != nil {
			cp.Value = *req.Value
		}
		if req.ExpiresAt != nil {
			cp.ExpiresAt = *req.ExpiresAt
		}
		if req.IsActive != nil {
			cp.IsActive = *req.IsActive
		}
		if req.MaxUses != nil {
			cp.MaxUses = *req.MaxUses
		}
		return nil
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, coupon)
}

func (h *CouponHTTP) DeleteCoupon(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteCoupon(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
