package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/reconcile"
)

// OrderClient talks to the order-service REST API. The API key is handed in
// at construction and sent on every request; nothing is read ambiently.
type OrderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOrderClient(baseURL, apiKey string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type updateStatusRequest struct {
	Status        domain.OrderStatus `json:"status"`
	InvoiceNumber string             `json:"invoice_number,omitempty"`
	InvoiceImage  string             `json:"invoice_image,omitempty"`
}

// GetOrder fetches the canonical order, items and totals included. A 404
// yields (nil, nil).
func (c *OrderClient) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/orders/%d", c.baseURL, orderID), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteFailure(resp)
	}

	var o domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	return &o, nil
}

// UpdateOrderStatus applies a status change. Invoice fields travel in the
// same request when the destination status requires them; the backend
// re-validates the transition server-side.
func (c *OrderClient) UpdateOrderStatus(ctx context.Context, orderID uint64, next domain.OrderStatus, invoice *domain.InvoiceDetails) (*domain.Order, error) {
	body := updateStatusRequest{Status: next}
	if invoice != nil {
		body.InvoiceNumber = invoice.Number
		body.InvoiceImage = invoice.ImageURL
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/orders/%d/status", c.baseURL, orderID), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteFailure(resp)
	}

	var o domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	return &o, nil
}

// MutateItem issues a single add/edit/remove against the order's item list.
func (c *OrderClient) MutateItem(ctx context.Context, orderID uint64, op reconcile.Op) error {
	payload, err := json.Marshal(op)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/orders/%d/items", c.baseURL, orderID), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.NewRemoteError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return remoteFailure(resp)
	}
	return nil
}

// SearchProducts queries the catalog behind the order service.
func (c *OrderClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/products?search=%s", c.baseURL, url.QueryEscape(query)), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, remoteFailure(resp)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	return products, nil
}

func (c *OrderClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}

// remoteFailure turns a non-2xx response into a RemoteError, keeping the
// backend's message when it sent one.
func remoteFailure(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	return domain.NewRemoteError(message,
		fmt.Errorf("backend returned status %d", resp.StatusCode))
}
