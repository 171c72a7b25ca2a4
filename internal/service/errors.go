package service

import (
	"errors"

	"github.com/pulsewear/storefront/internal/repo"
)

// Error taxonomy for the order placement pipeline. Handlers map these
// with errors.Is; wrapped details name the offending entity.
var (
	ErrValidation         = errors.New("validation")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrVariationInvalid   = errors.New("variation invalid")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponExpired      = errors.New("coupon expired")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNotFound           = errors.New("not found")

	// Raised inside the commit transaction.
	ErrInsufficientStock = repo.ErrInsufficientStock
	ErrCouponExhausted   = repo.ErrCouponExhausted
)
