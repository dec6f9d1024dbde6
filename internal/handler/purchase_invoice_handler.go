package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
	"github.com/ridwanfathin/invoice-register-service/internal/model"
	"github.com/ridwanfathin/invoice-register-service/internal/service"
)

// PurchaseInvoiceHandler handles HTTP requests for the purchase register
type PurchaseInvoiceHandler struct {
	service service.PurchaseInvoiceService
	metrics *metrics.Metrics
}

// NewPurchaseInvoiceHandler creates a new purchase invoice handler.
// m may be nil.
func NewPurchaseInvoiceHandler(svc service.PurchaseInvoiceService, m *metrics.Metrics) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{
		service: svc,
		metrics: m,
	}
}

// RegisterRoutes registers the purchase register routes
func (h *PurchaseInvoiceHandler) RegisterRoutes(router gin.IRouter) {
	purchase := router.Group("/invoice/purchase")
	{
		purchase.GET("", h.ListInvoices)
		purchase.GET("/:id", h.GetInvoice)
		purchase.PATCH("/:id", h.UpdateInvoice)
		purchase.DELETE("/:id", h.DeleteInvoice)
	}
}

// ListInvoices handles the GET /invoice/purchase endpoint
// @Summary List purchase invoices
// @Description Get purchase invoices, newest first, narrowed by the optional filters
// @Tags purchase
// @Produce json
// @Param source query string false "Source channel"
// @Param status query string false "Invoice status"
// @Param startDate query string false "Earliest invoice date (YYYY-MM-DD, inclusive)"
// @Param endDate query string false "Latest invoice date (YYYY-MM-DD, inclusive)"
// @Param vendor query string false "Supplier name contains (case-insensitive)"
// @Success 200 {object} model.InvoiceListResponse[domain.PurchaseInvoice]
// @Failure 500 {object} model.ErrorResponse "Failed to fetch invoices, or internal server error"
// @Router /invoice/purchase [get]
func (h *PurchaseInvoiceHandler) ListInvoices(c *gin.Context) {
	query, err := parseQuery(c)
	if err != nil {
		respondException(c, h.metrics, PurchaseInvoices, "parse_query", err)
		return
	}

	invoices, err := h.service.ListInvoices(c.Request.Context(), ExtractPurchaseFilter(query))
	respondList(c, h.metrics, PurchaseInvoices, invoices, err)
}

// GetInvoice handles the GET /invoice/purchase/:id endpoint
// @Summary Get a purchase invoice
// @Description Get a purchase invoice with its validation remarks
// @Tags purchase
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.InvoiceDetailResponse[domain.PurchaseInvoice]
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Failed to fetch invoice, or internal server error"
// @Router /invoice/purchase/{id} [get]
func (h *PurchaseInvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondException(c, h.metrics, PurchaseInvoices, "get_path_param", err)
		return
	}

	invoice, remarks, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, h.metrics, PurchaseInvoices, PurchaseInvoices.FetchPrefix, err)
		return
	}
	if invoice == nil {
		respondNotFound(c, ErrInvoiceNotFound)
		return
	}

	respondOK(c, model.InvoiceDetailResponse[domain.PurchaseInvoice]{
		Success: true,
		Invoice: invoice,
		Remarks: remarks,
	})
}

// UpdateInvoice handles the PATCH /invoice/purchase/:id endpoint
// @Summary Update a purchase invoice
// @Description Apply a partial update; the body maps column names to new values
// @Tags purchase
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param updates body map[string]interface{} true "Columns to update"
// @Success 200 {object} model.InvoiceUpdateResponse[domain.PurchaseInvoice]
// @Failure 500 {object} model.ErrorResponse "Failed to update invoice, or internal server error"
// @Router /invoice/purchase/{id} [patch]
func (h *PurchaseInvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondException(c, h.metrics, PurchaseInvoices, "get_path_param", err)
		return
	}

	updates, err := bindUpdates(c)
	if err != nil {
		respondException(c, h.metrics, PurchaseInvoices, "bind_updates", err)
		return
	}

	invoice, err := h.service.UpdateInvoice(c.Request.Context(), id, updates)
	if err != nil {
		respondWithError(c, h.metrics, PurchaseInvoices, PurchaseInvoices.UpdatePrefix, err)
		return
	}

	respondOK(c, model.InvoiceUpdateResponse[domain.PurchaseInvoice]{
		Success: true,
		Invoice: invoice,
	})
}

// DeleteInvoice handles the DELETE /invoice/purchase/:id endpoint
// @Summary Delete a purchase invoice
// @Description Delete a purchase invoice together with its remarks
// @Tags purchase
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.DeleteResponse
// @Failure 500 {object} model.ErrorResponse "Failed to delete invoice, or internal server error"
// @Router /invoice/purchase/{id} [delete]
func (h *PurchaseInvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondException(c, h.metrics, PurchaseInvoices, "get_path_param", err)
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondWithError(c, h.metrics, PurchaseInvoices, PurchaseInvoices.DeletePrefix, err)
		return
	}

	respondOK(c, model.DeleteResponse{
		Success: true,
		Message: MsgInvoiceDeleted,
	})
}
