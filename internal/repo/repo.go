package repo

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conflicts detected inside the order commit transaction. The service
// layer surfaces these as part of its error taxonomy.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCouponExhausted   = errors.New("coupon exhausted")
)

type GormRepo struct {
	DB *gorm.DB
}

// Reservation is one line of an order commit: which variation to
// decrement and by how much. SKU rides along for error messages.
type Reservation struct {
	ProductID   uuid.UUID
	VariationID uuid.UUID
	SKU         string
	Quantity    int
}
