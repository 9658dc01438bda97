package domain

import "fmt"

type OrderStatus string

const (
	StatusNotProcessed  OrderStatus = "not_processed"
	StatusPaymentReview OrderStatus = "payment_review"
	StatusShipping      OrderStatus = "shipping"
	StatusPickup        OrderStatus = "pickup"
	StatusDelivered     OrderStatus = "delivered"
	StatusCancelled     OrderStatus = "cancelled"
)

// allowedTransitions is the fulfillment state graph. The key is the current
// status, the value the set of statuses an admin may move the order to.
// Delivered and cancelled are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusNotProcessed:  {StatusDelivered, StatusCancelled, StatusShipping, StatusPickup},
	StatusPaymentReview: {StatusNotProcessed, StatusShipping, StatusPickup, StatusCancelled},
	StatusShipping:      {StatusDelivered, StatusPickup, StatusCancelled},
	StatusPickup:        {StatusDelivered, StatusShipping, StatusCancelled},
	StatusDelivered:     {},
	StatusCancelled:     {},
}

// IsValid checks if the order status is a known fulfillment status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusNotProcessed, StatusPaymentReview, StatusShipping,
		StatusPickup, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(allowedTransitions[s]) == 0
}

// Editable reports whether the order's items may still be changed. Items are
// frozen as soon as the order leaves not_processed.
func (s OrderStatus) Editable() bool {
	return s == StatusNotProcessed
}

// AllowedNextStatuses returns the statuses an order may move to from current.
// The result is a copy; terminal statuses yield an empty slice. It feeds both
// the selection control and submission validation.
func AllowedNextStatuses(current OrderStatus) []OrderStatus {
	next := allowedTransitions[current]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition checks if moving from current to next is allowed.
func CanTransition(current, next OrderStatus) bool {
	for _, s := range allowedTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns a ValidationError if the transition is not allowed.
func ValidateTransition(current, next OrderStatus) error {
	if !CanTransition(current, next) {
		return &ValidationError{
			Message: fmt.Sprintf("No se permite cambiar el estado de %s a %s", current, next),
		}
	}
	return nil
}

// InvoiceRequired reports whether a status carries courier invoice data.
// Orders handed to a courier (shipping) or held for pickup need an invoice
// number and an invoice image.
func InvoiceRequired(s OrderStatus) bool {
	return s == StatusPickup || s == StatusShipping
}
