package service

import "github.com/pulsewear/storefront/internal/models"

// statusTransitions constrains the fulfillment lifecycle: orders move
// forward only, and cancellation is possible until shipment.
var statusTransitions = map[string][]string{
	models.OrderStatusAwaitingPayment: {models.OrderStatusPaid, models.OrderStatusCanceled},
	models.OrderStatusPaid:            {models.OrderStatusShipped, models.OrderStatusCanceled},
	models.OrderStatusShipped:         {models.OrderStatusDelivered},
	models.OrderStatusDelivered:       {},
	models.OrderStatusCanceled:        {},
}

func ValidOrderStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
