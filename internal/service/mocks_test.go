package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// MockPurchaseRepository is a mock implementation of repository.PurchaseInvoiceRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) ListPurchaseInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, filter)
	invoices, _ := args.Get(0).([]domain.PurchaseInvoice)
	return invoices, args.Error(1)
}

func (m *MockPurchaseRepository) GetPurchaseInvoiceByID(ctx context.Context, id string) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, id)
	invoice, _ := args.Get(0).(*domain.PurchaseInvoice)
	return invoice, args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchaseRemarks(ctx context.Context, purchaseID string) ([]domain.Remark, error) {
	args := m.Called(ctx, purchaseID)
	remarks, _ := args.Get(0).([]domain.Remark)
	return remarks, args.Error(1)
}

func (m *MockPurchaseRepository) UpdatePurchaseInvoice(ctx context.Context, id string, updates map[string]any) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, id, updates)
	invoice, _ := args.Get(0).(*domain.PurchaseInvoice)
	return invoice, args.Error(1)
}

func (m *MockPurchaseRepository) DeletePurchaseInvoice(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSalesRepository is a mock implementation of repository.SalesInvoiceRepository
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) ListSalesInvoices(ctx context.Context) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx)
	invoices, _ := args.Get(0).([]domain.SalesInvoice)
	return invoices, args.Error(1)
}

func (m *MockSalesRepository) GetSalesInvoiceByID(ctx context.Context, id string) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, id)
	invoice, _ := args.Get(0).(*domain.SalesInvoice)
	return invoice, args.Error(1)
}

func (m *MockSalesRepository) ListSalesRemarks(ctx context.Context, salesID string) ([]domain.Remark, error) {
	args := m.Called(ctx, salesID)
	remarks, _ := args.Get(0).([]domain.Remark)
	return remarks, args.Error(1)
}

func (m *MockSalesRepository) UpdateSalesInvoice(ctx context.Context, id string, updates map[string]any) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, id, updates)
	invoice, _ := args.Get(0).(*domain.SalesInvoice)
	return invoice, args.Error(1)
}

func (m *MockSalesRepository) DeleteSalesInvoice(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
