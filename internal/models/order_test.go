package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from OrderStatus
		to   OrderStatus
		ok   bool
	}{
		{OrderPreparing, OrderReady, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderPreparing, OrderCompleted, false},
		{OrderPreparing, OrderPreparing, false},
		{OrderReady, OrderCompleted, true},
		{OrderReady, OrderCancelled, true},
		{OrderReady, OrderPreparing, false},
		{OrderCompleted, OrderPreparing, false},
		{OrderCompleted, OrderReady, false},
		{OrderCompleted, OrderCancelled, false},
		{OrderCancelled, OrderPreparing, false},
		{OrderCancelled, OrderReady, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.ok {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderPreparing.Terminal() || OrderReady.Terminal() {
		t.Errorf("active statuses must not be terminal")
	}
	if !OrderCompleted.Terminal() || !OrderCancelled.Terminal() {
		t.Errorf("Completed and Cancelled must be terminal")
	}
}

func TestStatusValidity(t *testing.T) {
	for _, s := range []OrderStatus{OrderPreparing, OrderReady, OrderCompleted, OrderCancelled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("Shipped").Valid() {
		t.Errorf("unknown order status accepted")
	}
	if !PaymentPending.Valid() || !PaymentPaid.Valid() {
		t.Errorf("payment statuses should be valid")
	}
	if PaymentStatus("Refunded").Valid() {
		t.Errorf("unknown payment status accepted")
	}
}
