package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-register-service/internal/apperror"
	"github.com/ridwanfathin/invoice-register-service/internal/logger"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
	"github.com/ridwanfathin/invoice-register-service/internal/model"
)

// Common response messages
const (
	ErrInternalServer  = "Internal server error"
	ErrInvoiceNotFound = "Invoice not found"
	MsgInvoiceDeleted  = "Invoice deleted successfully"
)

// Resource describes an invoice collection served over HTTP and the error
// prefixes its endpoints report domain failures with.
type Resource struct {
	// Name labels logs and metrics
	Name string

	ListPrefix   string
	FetchPrefix  string
	UpdatePrefix string
	DeletePrefix string
}

var (
	PurchaseInvoices = Resource{
		Name:         "purchase_invoices",
		ListPrefix:   "Failed to fetch invoices",
		FetchPrefix:  "Failed to fetch invoice",
		UpdatePrefix: "Failed to update invoice",
		DeletePrefix: "Failed to delete invoice",
	}

	SalesInvoices = Resource{
		Name:         "sales_invoices",
		ListPrefix:   "Failed to fetch sales invoices",
		FetchPrefix:  "Failed to fetch invoice",
		UpdatePrefix: "Failed to update invoice",
		DeletePrefix: "Failed to delete invoice",
	}
)

const unknownErrorMessage = "unknown error"

// NormalizeList maps the outcome of a list lookup to a status code and body.
// A nil error yields the success envelope; anything else is NormalizeError.
func NormalizeList[T any](invoices []T, err error, prefix string) (int, any) {
	if err != nil {
		return NormalizeError(err, prefix)
	}
	return http.StatusOK, model.NewInvoiceListResponse(invoices)
}

// NormalizeError maps a failed outcome to a status code and body. Exceptional
// errors get the generic message with details; every other error is a domain
// error reported as "<prefix>: <message>".
func NormalizeError(err error, prefix string) (int, model.ErrorResponse) {
	msg := apperror.Message(err)

	if apperror.IsExceptional(err) {
		if msg == "" {
			msg = unknownErrorMessage
		}
		return http.StatusInternalServerError, model.ErrorResponse{
			Error:   ErrInternalServer,
			Details: msg,
		}
	}

	return http.StatusInternalServerError, model.ErrorResponse{
		Error: withPrefix(prefix, msg),
	}
}

// withPrefix returns "<prefix>: <msg>" with prefix occurring exactly once
func withPrefix(prefix, msg string) string {
	if prefix == "" {
		return msg
	}
	for strings.Contains(msg, prefix) {
		msg = strings.ReplaceAll(msg, prefix, "")
	}
	msg = strings.TrimLeft(msg, ": ")
	if msg == "" {
		msg = unknownErrorMessage
	}
	return prefix + ": " + msg
}

// logError logs a failed request at a level matching the error kind
func logError(c *gin.Context, event string, err error, fields map[string]interface{}) {
	kv := make([]any, 0, 2*len(fields)+6)
	kv = append(kv,
		"event", event,
		"error", err.Error(),
		"kind", apperror.KindOf(err).String(),
	)
	for k, v := range fields {
		kv = append(kv, k, v)
	}

	ctx := c.Request.Context()
	if apperror.IsExceptional(err) {
		logger.Error(ctx, "request failed", kv...)
		return
	}
	logger.Warn(ctx, "request failed", kv...)
}

// respondWithError logs err, counts it and sends the normalized error envelope
func respondWithError(c *gin.Context, m *metrics.Metrics, resource Resource, prefix string, err error) {
	logError(c, resource.Name, err, map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
	m.ObserveErrorResponse(resource.Name, apperror.KindOf(err).String())

	status, body := NormalizeError(err, prefix)
	c.JSON(status, body)
}

// respondList sends the normalized outcome of a list lookup
func respondList[T any](c *gin.Context, m *metrics.Metrics, resource Resource, invoices []T, err error) {
	if err != nil {
		respondWithError(c, m, resource, resource.ListPrefix, err)
		return
	}
	status, body := NormalizeList(invoices, nil, resource.ListPrefix)
	c.JSON(status, body)
}

// respondException sends the exceptional error envelope for a failure raised
// in the handler itself
func respondException(c *gin.Context, m *metrics.Metrics, resource Resource, op string, err error) {
	respondWithError(c, m, resource, "", apperror.NewExceptional(op, err))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, model.ErrorResponse{Error: message})
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
