package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"

	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"       json:"id"`
	Name         string    `gorm:"not null"                   json:"name"`
	Email        string    `gorm:"unique;not null"            json:"email"`
	PasswordHash string    `gorm:"not null"                   json:"-"`
	Role         string    `gorm:"not null;default:client"    json:"role"`
	Status       string    `gorm:"not null;default:active"    json:"status"`
	Addresses    []Address `gorm:"foreignKey:UserID"          json:"addresses"`
	CreatedAt    time.Time `json:"created_at"`
}

type Address struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"   json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Label   string    `json:"label"`
	Street  string    `gorm:"not null"               json:"street"`
	City    string    `gorm:"not null"               json:"city"`
	State   string    `json:"state"`
	ZipCode string    `json:"zip_code"`
	Country string    `json:"country"`
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"    json:"id"`
	Name      string    `gorm:"not null"                json:"name"`
	Slug      string    `gorm:"unique;not null"         json:"slug"`
	Status    string    `gorm:"not null;default:active" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"     json:"id"`
	Name        string             `gorm:"not null"                 json:"name"`
	Description string             `json:"description"`
	Price       float64            `gorm:"not null"                 json:"price"`
	SalePrice   *float64           `json:"sale_price,omitempty"`
	CategoryID  uuid.UUID          `gorm:"type:uuid;index"          json:"category_id"`
	Brand       string             `json:"brand"`
	Collection  string             `json:"collection"`
	Status      string             `gorm:"not null;default:active"  json:"status"`
	Featured    bool               `gorm:"default:false"            json:"featured"`
	Variations  []ProductVariation `gorm:"foreignKey:ProductID"     json:"variations"`
	CreatedAt   time.Time          `json:"created_at"`
}

// UnitPrice is the sellable price: the sale price when set, the base
// price otherwise.
func (p *Product) UnitPrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

type ProductVariation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"      json:"product_id"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	SKU       string    `gorm:"column:sku;uniqueIndex;not null" json:"sku"`
	Stock     int       `gorm:"not null;check:stock >= 0"     json:"stock"`
}

const (
	CouponTypePercentage = "percentage"
	CouponTypeAmount     = "amount"
)

type Coupon struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"    json:"id"`
	Code      string    `gorm:"unique;not null"         json:"code"`
	Type      string    `gorm:"not null"                json:"type"`
	Value     float64   `gorm:"not null"                json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  bool      `gorm:"default:true"            json:"is_active"`
	MaxUses   int       `gorm:"not null"                json:"max_uses"`
	Used      int       `gorm:"not null;default:0"      json:"used"`
}

const (
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaid            = "paid"
	OrderStatusShipped         = "shipped"
	OrderStatusDelivered       = "delivered"
	OrderStatusCanceled        = "canceled"
)

const (
	PaymentMethodCard   = "card"
	PaymentMethodPix    = "pix"
	PaymentMethodBoleto = "boleto"
)

// ShippingAddress is a by-value copy of the client's address at
// placement time. Later address-book edits never touch placed orders.
type ShippingAddress struct {
	Label   string `json:"label"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"     json:"id"`
	ClientID        uuid.UUID       `gorm:"type:uuid;index;not null" json:"client_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"       json:"items"`
	Total           float64         `gorm:"not null"                 json:"total"`
	Status          string          `gorm:"not null"                 json:"status"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string          `gorm:"not null"                 json:"payment_method"`
	CouponCode      *string         `json:"coupon_code,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem snapshots the unit price and SKU as charged, decoupled from
// the live catalog row.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"  json:"order_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"        json:"product_id"`
	VariationID uuid.UUID `gorm:"type:uuid;not null"        json:"variation_id"`
	SKU         string    `gorm:"column:sku;not null"       json:"sku"`
	Quantity    int       `gorm:"check:quantity > 0"        json:"quantity"`
	UnitPrice   float64   `gorm:"not null"                  json:"unit_price"`
	LineTotal   float64   `gorm:"not null"                  json:"line_total"`
}

const (
	StockMovementIn  = "in"
	StockMovementOut = "out"
)

type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"     json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	VariationID uuid.UUID `gorm:"type:uuid;index;not null" json:"variation_id"`
	Quantity    int       `gorm:"not null"                 json:"quantity"`
	Type        string    `gorm:"not null"                 json:"type"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}
