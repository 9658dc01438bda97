package mocks

import (
	"context"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/infra"
	"backoffice-service/internal/infra/rabbitmq"
	"backoffice-service/internal/reconcile"
	"backoffice-service/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderClient) UpdateOrderStatus(ctx context.Context, orderID uint64, next domain.OrderStatus, invoice *domain.InvoiceDetails) (*domain.Order, error) {
	args := m.Called(ctx, orderID, next, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderClient) MutateItem(ctx context.Context, orderID uint64, op reconcile.Op) error {
	args := m.Called(ctx, orderID, op)
	return args.Error(0)
}

func (m *MockOrderClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockInvoiceClient struct {
	mock.Mock
}

func (m *MockInvoiceClient) CreateInvoice(ctx context.Context, record domain.InvoiceRecord) (*domain.Invoice, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

type MockImageProber struct {
	mock.Mock
}

func (m *MockImageProber) LooksLikeImage(ctx context.Context, rawURL string) bool {
	args := m.Called(ctx, rawURL)
	return args.Bool(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) Save(rate *domain.ExchangeRate) error {
	args := m.Called(rate)
	return args.Error(0)
}

func (m *MockRateRepository) Latest() (*domain.ExchangeRate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ infra.OrderClientInterface = (*MockOrderClient)(nil)
var _ infra.InvoiceClientInterface = (*MockInvoiceClient)(nil)
var _ infra.ImageProberInterface = (*MockImageProber)(nil)
var _ rabbitmq.PublisherInterface = (*MockPublisher)(nil)
var _ repository.RateRepository = (*MockRateRepository)(nil)
