package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []OrderStatus{
	StatusNotProcessed, StatusPaymentReview, StatusShipping,
	StatusPickup, StatusDelivered, StatusCancelled,
}

func TestAllowedNextStatuses(t *testing.T) {
	tests := []struct {
		current  OrderStatus
		expected []OrderStatus
	}{
		{StatusNotProcessed, []OrderStatus{StatusDelivered, StatusCancelled, StatusShipping, StatusPickup}},
		{StatusPaymentReview, []OrderStatus{StatusNotProcessed, StatusShipping, StatusPickup, StatusCancelled}},
		{StatusShipping, []OrderStatus{StatusDelivered, StatusPickup, StatusCancelled}},
		{StatusPickup, []OrderStatus{StatusDelivered, StatusShipping, StatusCancelled}},
		{StatusDelivered, []OrderStatus{}},
		{StatusCancelled, []OrderStatus{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			assert.Equal(t, tt.expected, AllowedNextStatuses(tt.current))
		})
	}
}

func TestAllowedNextStatuses_NeverContainsSelf(t *testing.T) {
	for _, current := range allStatuses {
		for _, next := range AllowedNextStatuses(current) {
			assert.NotEqual(t, current, next, "status %s offers itself as a destination", current)
		}
	}
}

func TestAllowedNextStatuses_NonTerminalHaveDestinations(t *testing.T) {
	for _, current := range []OrderStatus{StatusNotProcessed, StatusPaymentReview, StatusShipping, StatusPickup} {
		assert.NotEmpty(t, AllowedNextStatuses(current))
		assert.False(t, current.IsTerminal())
	}
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestCanTransition_MatchesAllowedSet(t *testing.T) {
	for _, current := range allStatuses {
		allowed := map[OrderStatus]bool{}
		for _, next := range AllowedNextStatuses(current) {
			allowed[next] = true
		}
		for _, next := range allStatuses {
			assert.Equal(t, allowed[next], CanTransition(current, next),
				"%s -> %s", current, next)
		}
	}
}

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, ValidateTransition(StatusNotProcessed, StatusShipping))

	err := ValidateTransition(StatusDelivered, StatusShipping)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "delivered")
	assert.Contains(t, vErr.Message, "shipping")
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, CanTransition(OrderStatus("returned"), StatusDelivered))
	assert.False(t, OrderStatus("returned").IsValid())
	assert.False(t, OrderStatus("returned").IsTerminal())
}

func TestInvoiceRequired(t *testing.T) {
	for _, s := range allStatuses {
		expected := s == StatusPickup || s == StatusShipping
		assert.Equal(t, expected, InvoiceRequired(s), "status %s", s)
	}
}

func TestEditable(t *testing.T) {
	for _, s := range allStatuses {
		assert.Equal(t, s == StatusNotProcessed, s.Editable(), "status %s", s)
	}
}
