package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"backoffice-service/internal/domain"
)

// InvoiceClient talks to the invoice-service REST API.
type InvoiceClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewInvoiceClient(baseURL, apiKey string, timeout time.Duration) *InvoiceClient {
	return &InvoiceClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateInvoice records the courier invoice for an order. It is only called
// after the status update into pickup/shipping already succeeded.
func (c *InvoiceClient) CreateInvoice(ctx context.Context, record domain.InvoiceRecord) (*domain.Invoice, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/invoices", c.baseURL), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, remoteFailure(resp)
	}

	var inv domain.Invoice
	if err := json.NewDecoder(resp.Body).Decode(&inv); err != nil {
		return nil, domain.NewRemoteError("", err)
	}
	return &inv, nil
}
