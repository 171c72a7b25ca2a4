package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/events"
	"github.com/pulsewear/storefront/internal/logging"
	"github.com/pulsewear/storefront/internal/models"
	"github.com/pulsewear/storefront/internal/repo"
	"github.com/pulsewear/storefront/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Catalog  *CatalogService
	Coupons  *CouponService
	Producer *events.Producer
}

func validPaymentMethod(m string) bool {
	switch m {
	case models.PaymentMethodCard, models.PaymentMethodPix, models.PaymentMethodBoleto:
		return true
	}
	return false
}

// PlaceOrder runs the placement pipeline: validate the request, resolve
// client, address, coupon and every item, then commit stock decrements,
// coupon usage and the order row in one transaction. Any failure before
// the commit leaves stock and coupon counters untouched.
func (s *OrderService) PlaceOrder(ctx context.Context, caller Identity, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}
	for i := range req.Items {
		if req.Items[i].ProductID == uuid.Nil || req.Items[i].VariationID == uuid.Nil {
			return nil, fmt.Errorf("%w: product and variation ids required", ErrValidation)
		}
		if req.Items[i].Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
	}

	if !caller.IsAdmin() && caller.ID != req.ClientID {
		return nil, fmt.Errorf("%w: cannot order for another client", ErrForbidden)
	}

	client, err := s.Repo.GetClient(ctx, req.ClientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, req.ClientID)
	}
	if err != nil {
		return nil, err
	}

	address, err := s.Repo.GetAddress(ctx, client.ID, req.ShippingAddressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, req.ShippingAddressID)
	}
	if err != nil {
		return nil, err
	}

	coupon, err := s.Coupons.Validate(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New()
	items := make([]models.OrderItem, 0, len(req.Items))
	reservations := make([]repo.Reservation, 0, len(req.Items))
	priced := make([]PricedItem, 0, len(req.Items))

	for _, reqItem := range req.Items {
		resolved, err := s.Catalog.Resolve(ctx, reqItem.ProductID, reqItem.VariationID)
		if err != nil {
			return nil, err
		}
		if resolved.Stock < reqItem.Quantity {
			return nil, fmt.Errorf("%w: sku %s", ErrInsufficientStock, resolved.SKU)
		}

		items = append(items, models.OrderItem{
			OrderID:     orderID,
			ProductID:   resolved.ProductID,
			VariationID: resolved.VariationID,
			SKU:         resolved.SKU,
			Quantity:    reqItem.Quantity,
			UnitPrice:   resolved.UnitPrice,
			LineTotal:   resolved.UnitPrice * float64(reqItem.Quantity),
		})
		reservations = append(reservations, repo.Reservation{
			ProductID:   resolved.ProductID,
			VariationID: resolved.VariationID,
			SKU:         resolved.SKU,
			Quantity:    reqItem.Quantity,
		})
		priced = append(priced, PricedItem{UnitPrice: resolved.UnitPrice, Quantity: reqItem.Quantity})
	}

	total := ComputeTotal(priced, coupon)

	now := time.Now().UTC()
	order := &models.Order{
		ID:       orderID,
		ClientID: client.ID,
		Items:    items,
		Total:    total,
		Status:   models.OrderStatusAwaitingPayment,
		ShippingAddress: models.ShippingAddress{
			Label:   address.Label,
			Street:  address.Street,
			City:    address.City,
			State:   address.State,
			ZipCode: address.ZipCode,
			Country: address.Country,
		},
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var couponID *uuid.UUID
	if coupon != nil {
		order.CouponCode = &coupon.Code
		couponID = &coupon.ID
	}

	if err := s.Repo.CommitOrder(ctx, order, reservations, couponID); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":     "order_created",
		"orderID":  order.ID.String(),
		"clientID": order.ClientID.String(),
		"total":    order.Total,
	})

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}

func (s *OrderService) ListClientOrders(ctx context.Context, caller Identity, clientID uuid.UUID) ([]models.Order, error) {
	if !caller.IsAdmin() && caller.ID != clientID {
		return nil, fmt.Errorf("%w: cannot read another client's orders", ErrForbidden)
	}
	return s.Repo.ListClientOrders(ctx, clientID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*models.Order, error) {
	if !ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}

	if !CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrConflict, order.Status, status)
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicOrderEvents, fmt.Sprint(event["orderID"]), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
