package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pulsewear/storefront/internal/tokens"
)

type SimpleAuth struct {
	JWTSecret []byte
}

func NewSimpleAuth(secret []byte) *SimpleAuth {
	return &SimpleAuth{JWTSecret: secret}
}

func tokenFromRequest(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if ck, err := c.Cookie("accessToken"); err == nil {
		return ck.Value
	}
	return ""
}

func (m *SimpleAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := tokenFromRequest(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set("user_id", claims.Subject)
		c.Set("role", claims.Role)

		return next(c)
	}
}

func (m *SimpleAuth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireAuth(func(c echo.Context) error {
		if role, _ := c.Get("role").(string); role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		return next(c)
	})
}
