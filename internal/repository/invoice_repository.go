package repository

import (
	"context"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// PurchaseInvoiceRepository defines the data access operations for the purchase register
type PurchaseInvoiceRepository interface {
	// ListPurchaseInvoices returns the invoices matching filter, newest first.
	// A nil filter field matches every invoice.
	ListPurchaseInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PurchaseInvoice, error)

	// GetPurchaseInvoiceByID returns the invoice with the given ID, or nil if there is none
	GetPurchaseInvoiceByID(ctx context.Context, id string) (*domain.PurchaseInvoice, error)

	// ListPurchaseRemarks returns the remarks recorded against a purchase invoice
	ListPurchaseRemarks(ctx context.Context, purchaseID string) ([]domain.Remark, error)

	// UpdatePurchaseInvoice applies a partial update and returns the updated invoice
	UpdatePurchaseInvoice(ctx context.Context, id string, updates map[string]any) (*domain.PurchaseInvoice, error)

	// DeletePurchaseInvoice deletes an invoice together with its remarks
	DeletePurchaseInvoice(ctx context.Context, id string) error
}

// SalesInvoiceRepository defines the data access operations for the sales register
type SalesInvoiceRepository interface {
	// ListSalesInvoices returns every sales invoice ordered by invoice date, newest first
	ListSalesInvoices(ctx context.Context) ([]domain.SalesInvoice, error)

	// GetSalesInvoiceByID returns the invoice with the given ID, or nil if there is none
	GetSalesInvoiceByID(ctx context.Context, id string) (*domain.SalesInvoice, error)

	// ListSalesRemarks returns the remarks recorded against a sales invoice
	ListSalesRemarks(ctx context.Context, salesID string) ([]domain.Remark, error)

	// UpdateSalesInvoice applies a partial update and returns the updated invoice
	UpdateSalesInvoice(ctx context.Context, id string, updates map[string]any) (*domain.SalesInvoice, error)

	// DeleteSalesInvoice deletes a sales invoice
	DeleteSalesInvoice(ctx context.Context, id string) error
}
