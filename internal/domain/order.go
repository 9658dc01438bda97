package domain

// MaxItemQuantity is the upper bound for a single order line. The backend
// enforces the same limit; the client rejects violations before any call.
const MaxItemQuantity = 36

// Order is the canonical order as fetched from the order service. All
// monetary fields are computed server-side; the client only displays them.
type Order struct {
	ID           uint64      `json:"id"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Shipping     float64     `json:"shipping"`
	Tax          float64     `json:"tax"`
	Total        float64     `json:"total"`
	TotalBs      float64     `json:"total_bs"`
	ExchangeRate float64     `json:"exchange_rate"`
}

// OrderItem is one line in an order. Price and TotalPrice come from the
// backend and are read-only display data.
type OrderItem struct {
	ID         uint64  `json:"id"`
	ProductID  uint64  `json:"product_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"total_price"`
}

// PreviewTotal is a local price*quantity estimate for UI feedback while an
// edit is unsaved. The authoritative total always comes from the backend.
func (i OrderItem) PreviewTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Product is a catalog entry owned by the product service.
type Product struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}
