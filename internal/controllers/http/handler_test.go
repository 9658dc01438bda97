package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/mocks"
	"backoffice-service/internal/reconcile"
	"backoffice-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(mockOrders *mocks.MockOrderClient) *gin.Engine {
	gin.SetMode(gin.TestMode)

	publisher := new(mocks.MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	editor := services.NewOrderEditor(mockOrders, publisher)
	status := services.NewStatusService(mockOrders, new(mocks.MockInvoiceClient), nil, publisher)
	catalog := services.NewCatalogService(mockOrders)
	rates := services.NewRateService(new(mocks.MockRateRepository))

	r := gin.New()
	NewHandler(editor, status, catalog, rates).RegisterRoutes(r)
	return r
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_GetOrder_InvalidID(t *testing.T) {
	r := setupRouter(new(mocks.MockOrderClient))

	w := performJSON(r, http.MethodGet, "/orders/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	mockOrders := new(mocks.MockOrderClient)
	mockOrders.On("GetOrder", mock.Anything, uint64(5)).Return(nil, nil)
	r := setupRouter(mockOrders)

	w := performJSON(r, http.MethodGet, "/orders/5", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SaveOrderItems_NotEditable(t *testing.T) {
	mockOrders := new(mocks.MockOrderClient)
	order := &domain.Order{ID: 5, Status: domain.StatusDelivered,
		Items: []domain.OrderItem{{ID: 1, Quantity: 1}}}
	mockOrders.On("GetOrder", mock.Anything, uint64(5)).Return(order, nil)
	r := setupRouter(mockOrders)

	w := performJSON(r, http.MethodPut, "/orders/5/items", SaveItemsRequest{
		Items: []ItemEdit{{ItemID: 1, Quantity: 2}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgNotEditable)
	mockOrders.AssertNotCalled(t, "MutateItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_SaveOrderItems_PartialFailureIsConflict(t *testing.T) {
	mockOrders := new(mocks.MockOrderClient)
	order := &domain.Order{ID: 5, Status: domain.StatusNotProcessed, Items: []domain.OrderItem{
		{ID: 1, Quantity: 2},
		{ID: 2, Quantity: 3},
	}}
	removeOp := reconcile.Op{Action: reconcile.ActionRemove, ItemID: 2}
	editOp := reconcile.Op{Action: reconcile.ActionEdit, ItemID: 1, Quantity: 6}

	mockOrders.On("GetOrder", mock.Anything, uint64(5)).Return(order, nil)
	mockOrders.On("MutateItem", mock.Anything, uint64(5), removeOp).Return(nil)
	mockOrders.On("MutateItem", mock.Anything, uint64(5), editOp).Return(domain.NewRemoteError("", nil))
	r := setupRouter(mockOrders)

	w := performJSON(r, http.MethodPut, "/orders/5/items", SaveItemsRequest{
		Items: []ItemEdit{{ItemID: 1, Quantity: 6}},
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["applied"])
}

func TestHandler_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	mockOrders := new(mocks.MockOrderClient)
	order := &domain.Order{ID: 5, Status: domain.StatusDelivered}
	mockOrders.On("GetOrder", mock.Anything, uint64(5)).Return(order, nil)
	r := setupRouter(mockOrders)

	w := performJSON(r, http.MethodPatch, "/orders/5/status", UpdateStatusRequest{Status: "shipping"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOrders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_UpdateOrderStatus_RemoteFailureIsBadGateway(t *testing.T) {
	mockOrders := new(mocks.MockOrderClient)
	order := &domain.Order{ID: 5, Status: domain.StatusNotProcessed}
	mockOrders.On("GetOrder", mock.Anything, uint64(5)).Return(order, nil)
	mockOrders.On("UpdateOrderStatus", mock.Anything, uint64(5), domain.StatusCancelled, (*domain.InvoiceDetails)(nil)).
		Return(nil, domain.NewRemoteError("", nil))
	r := setupRouter(mockOrders)

	w := performJSON(r, http.MethodPatch, "/orders/5/status", UpdateStatusRequest{Status: "cancelled"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_SearchProducts_ShortQuery(t *testing.T) {
	r := setupRouter(new(mocks.MockOrderClient))

	w := performJSON(r, http.MethodGet, "/products/search?q=za", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "3 caracteres")
}
