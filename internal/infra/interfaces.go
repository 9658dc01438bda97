package infra

import (
	"context"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/reconcile"
)

// OrderClientInterface is the order-service collaborator. Client-side
// validation is advisory UX only; the backend re-validates every mutation.
type OrderClientInterface interface {
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, next domain.OrderStatus, invoice *domain.InvoiceDetails) (*domain.Order, error)
	MutateItem(ctx context.Context, orderID uint64, op reconcile.Op) error
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

// InvoiceClientInterface is the invoice-service collaborator.
type InvoiceClientInterface interface {
	CreateInvoice(ctx context.Context, record domain.InvoiceRecord) (*domain.Invoice, error)
}

// ImageProberInterface answers, best effort, whether a URL serves an image.
type ImageProberInterface interface {
	LooksLikeImage(ctx context.Context, rawURL string) bool
}

var _ OrderClientInterface = (*OrderClient)(nil)
var _ InvoiceClientInterface = (*InvoiceClient)(nil)
var _ ImageProberInterface = (*ImageProber)(nil)
