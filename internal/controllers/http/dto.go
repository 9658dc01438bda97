package http

// UpdateStatusRequest carries a status change. The invoice fields are only
// meaningful when the destination status is pickup or shipping.
type UpdateStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceImage  string `json:"invoice_image"`
}

// SaveItemsRequest is the admin's full working copy at save time. Only ids
// and quantities matter for the diff.
type SaveItemsRequest struct {
	Items []ItemEdit `json:"items" binding:"required,min=1,dive"`
}

type ItemEdit struct {
	ItemID   uint64 `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=36"`
}

type AddItemRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
}

type SetRateRequest struct {
	Rate float64 `json:"rate" binding:"required,gt=0"`
}
