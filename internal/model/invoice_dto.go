package model

import (
	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// InvoiceListResponse is the envelope returned by the invoice list endpoints.
// Invoices is never nil and Count always equals len(Invoices).
type InvoiceListResponse[T any] struct {
	Success  bool `json:"success"`
	Invoices []T  `json:"invoices"`
	Count    int  `json:"count"`
}

// NewInvoiceListResponse builds a success envelope for invoices
func NewInvoiceListResponse[T any](invoices []T) InvoiceListResponse[T] {
	if invoices == nil {
		invoices = []T{}
	}
	return InvoiceListResponse[T]{
		Success:  true,
		Invoices: invoices,
		Count:    len(invoices),
	}
}

// InvoiceDetailResponse is returned when a single invoice is fetched by ID
type InvoiceDetailResponse[T any] struct {
	Success bool            `json:"success"`
	Invoice *T              `json:"invoice"`
	Remarks []domain.Remark `json:"remarks"`
}

// InvoiceUpdateResponse is returned after a partial update
type InvoiceUpdateResponse[T any] struct {
	Success bool `json:"success"`
	Invoice *T   `json:"invoice"`
}

// DeleteResponse is returned after an invoice was deleted
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
// Details is only set for unexpected failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
