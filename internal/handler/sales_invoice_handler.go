package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
	"github.com/ridwanfathin/invoice-register-service/internal/model"
	"github.com/ridwanfathin/invoice-register-service/internal/service"
)

// SalesInvoiceHandler handles HTTP requests for the sales register
type SalesInvoiceHandler struct {
	service service.SalesInvoiceService
	metrics *metrics.Metrics
}

// NewSalesInvoiceHandler creates a new sales invoice handler
func NewSalesInvoiceHandler(svc service.SalesInvoiceService, m *metrics.Metrics) *SalesInvoiceHandler {
	return &SalesInvoiceHandler{
		service: svc,
		metrics: m,
	}
}

// RegisterRoutes registers the sales register routes
func (h *SalesInvoiceHandler) RegisterRoutes(router gin.IRouter) {
	sales := router.Group("/invoice/sales")
	{
		sales.GET("", h.ListInvoices)
		sales.GET("/:id", h.GetInvoice)
		sales.PATCH("/:id", h.UpdateInvoice)
		sales.DELETE("/:id", h.DeleteInvoice)
	}
}

// ListInvoices handles the GET /invoice/sales endpoint
// @Summary List sales invoices
// @Description Get every sales invoice ordered by invoice date, latest first
// @Tags sales
// @Produce json
// @Success 200 {object} model.InvoiceListResponse[domain.SalesInvoice]
// @Failure 500 {object} model.ErrorResponse "Failed to fetch sales invoices, or internal server error"
// @Router /invoice/sales [get]
func (h *SalesInvoiceHandler) ListInvoices(c *gin.Context) {
	// The sales list takes no filters, but a malformed query string is still rejected.
	if _, err := parseQuery(c); err != nil {
		respondException(c, h.metrics, SalesInvoices, "parse_query", err)
		return
	}

	invoices, err := h.service.ListInvoices(c.Request.Context())
	respondList(c, h.metrics, SalesInvoices, invoices, err)
}

// GetInvoice handles the GET /invoice/sales/:id endpoint
// @Summary Get a sales invoice
// @Tags sales
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.InvoiceDetailResponse[domain.SalesInvoice]
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Failed to fetch invoice, or internal server error"
// @Router /invoice/sales/{id} [get]
func (h *SalesInvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondException(c, h.metrics, SalesInvoices, "get_path_param", err)
		return
	}

	invoice, remarks, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, h.metrics, SalesInvoices, SalesInvoices.FetchPrefix, err)
		return
	}
	if invoice == nil {
		respondNotFound(c, ErrInvoiceNotFound)
		return
	}

	respondOK(c, model.InvoiceDetailResponse[domain.SalesInvoice]{
		Success: true,
		Invoice: invoice,
		Remarks: remarks,
	})
}

// UpdateInvoice handles the PATCH /invoice/sales/:id endpoint
// @Summary Update a sales invoice
// @Description Apply a partial update. total_invoice_value is computed and ignored if sent.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param updates body map[string]interface{} true "Columns to update"
// @Success 200 {object} model.InvoiceUpdateResponse[domain.SalesInvoice]
// @Failure 500 {object} model.ErrorResponse "Failed to update invoice, or internal server error"
// @Router /invoice/sales/{id} [patch]
func (h *SalesInvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondException(c, h.metrics, SalesInvoices, "get_path_param", err)
		return
	}

	updates, err := bindUpdates(c)
	if err != nil {
		respondException(c, h.metrics, SalesInvoices, "bind_updates", err)
		return
	}

	invoice, err := h.service.UpdateInvoice(c.Request.Context(), id, updates)
	if err != nil {
		respondWithError(c, h.metrics, SalesInvoices, SalesInvoices.UpdatePrefix, err)
		return
	}

	respondOK(c, model.InvoiceUpdateResponse[domain.SalesInvoice]{
		Success: true,
		Invoice: invoice,
	})
}

// DeleteInvoice handles the DELETE /invoice/sales/:id endpoint
// @Summary Delete a sales invoice
// @Tags sales
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.DeleteResponse
// @Failure 500 {object} model.ErrorResponse "Failed to delete invoice, or internal server error"
// @Router /invoice/sales/{id} [delete]
func (h *SalesInvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := getPathParam(c, "id")
	if err != nil {
		respondException(c, h.metrics, SalesInvoices, "get_path_param", err)
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondWithError(c, h.metrics, SalesInvoices, SalesInvoices.DeletePrefix, err)
		return
	}

	respondOK(c, model.DeleteResponse{
		Success: true,
		Message: MsgInvoiceDeleted,
	})
}
