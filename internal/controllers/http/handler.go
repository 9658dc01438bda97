package http

import (
	"errors"
	"net/http"
	"strconv"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/reconcile"
	"backoffice-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	editor  *services.OrderEditor
	status  *services.StatusService
	catalog *services.CatalogService
	rates   *services.RateService
}

func NewHandler(editor *services.OrderEditor, status *services.StatusService, catalog *services.CatalogService, rates *services.RateService) *Handler {
	return &Handler{editor: editor, status: status, catalog: catalog, rates: rates}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	r.PUT("/orders/:id/items", h.SaveOrderItems)
	r.POST("/orders/:id/items", h.AddOrderItem)
	r.GET("/products/search", h.SearchProducts)
	r.GET("/exchange-rate", h.GetExchangeRate)
	r.PUT("/exchange-rate", h.SetExchangeRate)
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.editor.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var invoice *domain.InvoiceDetails
	if req.InvoiceNumber != "" || req.InvoiceImage != "" {
		invoice = &domain.InvoiceDetails{Number: req.InvoiceNumber, ImageURL: req.InvoiceImage}
	}

	order, err := h.status.ChangeStatus(c.Request.Context(), orderID, domain.OrderStatus(req.Status), invoice)
	if err != nil {
		// The status did change when only the invoice failed; hand the order
		// back along with the error so the UI can show both.
		if errors.Is(err, services.ErrInvoiceNotRecorded) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "order": order})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) SaveOrderItems(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req SaveItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	working := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		working = append(working, domain.OrderItem{ID: it.ItemID, Quantity: it.Quantity})
	}

	order, err := h.editor.SaveItems(c.Request.Context(), orderID, working)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) AddOrderItem(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.editor.AddItem(c.Request.Context(), orderID, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.catalog.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetExchangeRate(c *gin.Context) {
	rate, err := h.rates.LatestRate(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrRateNotSet) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *Handler) SetExchangeRate(c *gin.Context) {
	var req SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := h.rates.SetRate(c.Request.Context(), req.Rate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func orderIDParam(c *gin.Context) (uint64, bool) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return orderID, true
}

// respondError maps the error taxonomy onto status codes: local validation is
// a 400, a partial batch a 409 (the caller must re-fetch), backend failures a
// 502.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	var pErr *reconcile.PartialBatchError
	var rErr *domain.RemoteError

	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &pErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   pErr.Error(),
			"applied": len(pErr.Applied),
			"failed":  pErr.Failed,
		})
	case errors.As(err, &rErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": rErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
