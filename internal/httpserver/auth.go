package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/logging"
	"github.com/pulsewear/storefront/internal/service"
	"github.com/pulsewear/storefront/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func accessCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(15 * time.Minute),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		he := httpError(err)
		l.Warn("register_error", "status", he.Code, "error", err)
		return he
	}

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, user, err := h.Svc.Login(ctx, req)
	if err != nil {
		he := httpError(err)
		l.Warn("login_error", "status", he.Code, "error", err)
		return he
	}

	c.SetCookie(accessCookie(token))

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	caller, err := identityFrom(c)
	if err != nil {
		return err
	}

	user, err := h.Svc.Profile(ctx, caller.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()

	caller, err := identityFrom(c)
	if err != nil {
		return err
	}

	var req transport.AddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	addr, err := h.Svc.AddAddress(ctx, caller.ID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, addr)
}
