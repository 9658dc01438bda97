package domain

import (
	"net/url"
	"strings"
)

// MinInvoiceNumberLength is the shortest invoice number the invoice service accepts.
const MinInvoiceNumberLength = 3

// InvoiceDetails is the invoice data an admin supplies alongside a status
// change into an invoice-gated status.
type InvoiceDetails struct {
	Number   string `json:"invoice_number"`
	ImageURL string `json:"invoice_image"`
}

// Validate checks the fields locally: number length and URL well-formedness.
// Whether the URL actually serves a loadable image is probed separately,
// best effort, and never blocks the transition.
func (d *InvoiceDetails) Validate() error {
	if d == nil || len(strings.TrimSpace(d.Number)) < MinInvoiceNumberLength {
		return &ValidationError{Message: "El número de factura debe tener al menos 3 caracteres"}
	}
	u, err := url.Parse(strings.TrimSpace(d.ImageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{Message: "La imagen de la factura debe ser una URL válida"}
	}
	return nil
}

// InvoiceRecord is what gets persisted against the invoice service once the
// status update has succeeded.
type InvoiceRecord struct {
	OrderID  uint64 `json:"order_id"`
	Number   string `json:"invoice_number"`
	ImageURL string `json:"invoice_image"`
}

// Invoice is the record as confirmed by the invoice service.
type Invoice struct {
	ID       uint64 `json:"id"`
	OrderID  uint64 `json:"order_id"`
	Number   string `json:"invoice_number"`
	ImageURL string `json:"invoice_image"`
}
