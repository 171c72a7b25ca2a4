package transport

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type AddressRequest struct {
	Label   string `json:"label"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type CreateOrderItem struct {
	ProductID   uuid.UUID `json:"productId"`
	VariationID uuid.UUID `json:"variationId"`
	Quantity    int       `json:"quantity"`
}

type CreateOrderRequest struct {
	ClientID          uuid.UUID         `json:"clientId"`
	Items             []CreateOrderItem `json:"items"`
	ShippingAddressID uuid.UUID         `json:"shippingAddressId"`
	PaymentMethod     string            `json:"paymentMethod"`
	CouponCode        string            `json:"couponCode,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateVariationRequest struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

type CreateProductRequest struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Price       float64                  `json:"price"`
	SalePrice   *float64                 `json:"salePrice"`
	CategoryID  uuid.UUID                `json:"categoryId"`
	Brand       string                   `json:"brand"`
	Collection  string                   `json:"collection"`
	Status      string                   `json:"status"`
	Featured    bool                     `json:"featured"`
	Variations  []CreateVariationRequest `json:"variations"`
}

type PatchProductRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price"`
	SalePrice   *float64   `json:"salePrice"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	Brand       *string    `json:"brand"`
	Collection  *string    `json:"collection"`
	Status      *string    `json:"status"`
	Featured    *bool      `json:"featured"`
}

type CategoryRequest struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
}

type CreateCouponRequest struct {
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsActive  *bool     `json:"isActive"`
	MaxUses   int       `json:"maxUses"`
}

type PatchCouponRequest struct {
	Code      *string    `json:"code"`
	Type      *string    `json:"type"`
	Value     *float64   `json:"value"`
	ExpiresAt *time.Time `json:"expiresAt"`
	IsActive  *bool      `json:"isActive"`
	MaxUses   *int       `json:"maxUses"`
}
