package service

import (
	"context"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
	"github.com/ridwanfathin/invoice-register-service/internal/repository"
)

// PurchaseInvoiceService defines the business operations on the purchase register
type PurchaseInvoiceService interface {
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PurchaseInvoice, error)
	// GetInvoice returns a nil invoice without error when the ID is unknown
	GetInvoice(ctx context.Context, id string) (*domain.PurchaseInvoice, []domain.Remark, error)
	UpdateInvoice(ctx context.Context, id string, updates map[string]any) (*domain.PurchaseInvoice, error)
	DeleteInvoice(ctx context.Context, id string) error
}

// PurchaseInvoiceServiceImpl implements the PurchaseInvoiceService interface
type PurchaseInvoiceServiceImpl struct {
	repository repository.PurchaseInvoiceRepository
}

// NewPurchaseInvoiceService creates a new PurchaseInvoiceService
func NewPurchaseInvoiceService(repo repository.PurchaseInvoiceRepository) PurchaseInvoiceService {
	return &PurchaseInvoiceServiceImpl{repository: repo}
}

// ListInvoices performs exactly one repository lookup for filter
func (s *PurchaseInvoiceServiceImpl) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) (invoices []domain.PurchaseInvoice, err error) {
	defer recoverRepositoryPanic(ctx, "list_purchase_invoices", &err)

	invoices, err = s.repository.ListPurchaseInvoices(ctx, filter)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice retrieves a purchase invoice together with its remarks
func (s *PurchaseInvoiceServiceImpl) GetInvoice(ctx context.Context, id string) (invoice *domain.PurchaseInvoice, remarks []domain.Remark, err error) {
	defer recoverRepositoryPanic(ctx, "get_purchase_invoice", &err)

	invoice, err = s.repository.GetPurchaseInvoiceByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, nil
	}

	remarks = remarksOrEmpty(ctx, id, func() ([]domain.Remark, error) {
		return s.repository.ListPurchaseRemarks(ctx, id)
	})
	return invoice, remarks, nil
}

// UpdateInvoice applies a partial column update
func (s *PurchaseInvoiceServiceImpl) UpdateInvoice(ctx context.Context, id string, updates map[string]any) (invoice *domain.PurchaseInvoice, err error) {
	defer recoverRepositoryPanic(ctx, "update_purchase_invoice", &err)

	return s.repository.UpdatePurchaseInvoice(ctx, id, updates)
}

// DeleteInvoice deletes a purchase invoice and its remarks
func (s *PurchaseInvoiceServiceImpl) DeleteInvoice(ctx context.Context, id string) (err error) {
	defer recoverRepositoryPanic(ctx, "delete_purchase_invoice", &err)

	return s.repository.DeletePurchaseInvoice(ctx, id)
}
