package services

import (
	"context"
	"testing"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_SearchProducts(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		setupMocks    func(*mocks.MockOrderClient)
		expectedError string
		expectedLen   int
	}{
		{
			name:  "returns matches",
			query: "zapato",
			setupMocks: func(mockOrders *mocks.MockOrderClient) {
				mockOrders.On("SearchProducts", mock.Anything, "zapato").Return([]domain.Product{
					CreateMockProduct(1, "Zapato deportivo", 45, 12),
					CreateMockProduct(2, "Zapato casual", 38, 4),
				}, nil)
			},
			expectedLen: 2,
		},
		{
			name:  "trims surrounding whitespace",
			query: "  bolso  ",
			setupMocks: func(mockOrders *mocks.MockOrderClient) {
				mockOrders.On("SearchProducts", mock.Anything, "bolso").Return([]domain.Product{
					CreateMockProduct(3, "Bolso de cuero", 60, 2),
				}, nil)
			},
			expectedLen: 1,
		},
		{
			name:          "rejects short query",
			query:         "za",
			expectedError: MsgQueryTooShort,
		},
		{
			name:          "rejects whitespace-only query",
			query:         "        ",
			expectedError: MsgQueryTooShort,
		},
		{
			name:  "surfaces backend failure",
			query: "cartera",
			setupMocks: func(mockOrders *mocks.MockOrderClient) {
				mockOrders.On("SearchProducts", mock.Anything, "cartera").
					Return(nil, domain.NewRemoteError("", nil))
			},
			expectedError: domain.GenericRemoteMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrders := new(mocks.MockOrderClient)
			if tt.setupMocks != nil {
				tt.setupMocks(mockOrders)
			}

			service := NewCatalogService(mockOrders)

			products, err := service.SearchProducts(context.Background(), tt.query)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, products)
			} else {
				assert.NoError(t, err)
				assert.Len(t, products, tt.expectedLen)
			}
			mockOrders.AssertExpectations(t)
		})
	}
}
