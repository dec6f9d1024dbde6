package service

import (
	"context"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
	"github.com/ridwanfathin/invoice-register-service/internal/repository"
)

// generatedSalesColumns are computed by the store and silently dropped from updates
var generatedSalesColumns = []string{"total_invoice_value"}

// SalesInvoiceService defines the business operations on the sales register
type SalesInvoiceService interface {
	ListInvoices(ctx context.Context) ([]domain.SalesInvoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.SalesInvoice, []domain.Remark, error)
	UpdateInvoice(ctx context.Context, id string, updates map[string]any) (*domain.SalesInvoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// SalesInvoiceServiceImpl implements the SalesInvoiceService interface
type SalesInvoiceServiceImpl struct {
	repository repository.SalesInvoiceRepository
}

// NewSalesInvoiceService creates a new SalesInvoiceService
func NewSalesInvoiceService(repo repository.SalesInvoiceRepository) SalesInvoiceService {
	return &SalesInvoiceServiceImpl{repository: repo}
}

// ListInvoices returns the whole sales register
func (s *SalesInvoiceServiceImpl) ListInvoices(ctx context.Context) (invoices []domain.SalesInvoice, err error) {
	defer recoverRepositoryPanic(ctx, "list_sales_invoices", &err)

	invoices, err = s.repository.ListSalesInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice retrieves a sales invoice together with its remarks
func (s *SalesInvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice *domain.SalesInvoice, remarks []domain.Remark, err error) {
	defer recoverRepositoryPanic(ctx, "get_sales_invoice", &err)

	invoice, err = s.repository.GetSalesInvoiceByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, nil
	}

	remarks = remarksOrEmpty(ctx, id, func() ([]domain.Remark, error) {
		return s.repository.ListSalesRemarks(ctx, id)
	})
	return invoice, remarks, nil
}

// UpdateInvoice applies a partial column update. Generated columns are
// removed first; the caller's map is left untouched.
func (s *SalesInvoiceServiceImpl) UpdateInvoice(ctx context.Context, id string, updates map[string]any) (invoice *domain.SalesInvoice, err error) {
	defer recoverRepositoryPanic(ctx, "update_sales_invoice", &err)

	clean := make(map[string]any, len(updates))
	for col, val := range updates {
		clean[col] = val
	}
	for _, col := range generatedSalesColumns {
		delete(clean, col)
	}

	return s.repository.UpdateSalesInvoice(ctx, id, clean)
}

// DeleteInvoice deletes a sales invoice
func (s *SalesInvoiceServiceImpl) DeleteInvoice(ctx context.Context, id string) (err error) {
	defer recoverRepositoryPanic(ctx, "delete_sales_invoice", &err)

	return s.repository.DeleteSalesInvoice(ctx, id)
}
