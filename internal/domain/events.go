package domain

import "time"

// StatusChangedEvent is published after a status update succeeds.
type StatusChangedEvent struct {
	OrderID       uint64      `json:"orderId"`
	From          OrderStatus `json:"from"`
	To            OrderStatus `json:"to"`
	InvoiceNumber string      `json:"invoiceNumber,omitempty"`
	ChangedAt     time.Time   `json:"changedAt"`
}

// ItemsReconciledEvent is published after an item reconciliation batch fully applies.
type ItemsReconciledEvent struct {
	OrderID      uint64    `json:"orderId"`
	Removed      int       `json:"removed"`
	Edited       int       `json:"edited"`
	ReconciledAt time.Time `json:"reconciledAt"`
}
