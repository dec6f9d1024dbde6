package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// MockPurchaseService is a mock implementation of service.PurchaseInvoiceService
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, filter)
	invoices, _ := args.Get(0).([]domain.PurchaseInvoice)
	return invoices, args.Error(1)
}

func (m *MockPurchaseService) GetInvoice(ctx context.Context, id string) (*domain.PurchaseInvoice, []domain.Remark, error) {
	args := m.Called(ctx, id)
	invoice, _ := args.Get(0).(*domain.PurchaseInvoice)
	remarks, _ := args.Get(1).([]domain.Remark)
	return invoice, remarks, args.Error(2)
}

func (m *MockPurchaseService) UpdateInvoice(ctx context.Context, id string, updates map[string]any) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, id, updates)
	invoice, _ := args.Get(0).(*domain.PurchaseInvoice)
	return invoice, args.Error(1)
}

func (m *MockPurchaseService) DeleteInvoice(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSalesService is a mock implementation of service.SalesInvoiceService
type MockSalesService struct {
	mock.Mock
}

func (m *MockSalesService) ListInvoices(ctx context.Context) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx)
	invoices, _ := args.Get(0).([]domain.SalesInvoice)
	return invoices, args.Error(1)
}

func (m *MockSalesService) GetInvoice(ctx context.Context, id string) (*domain.SalesInvoice, []domain.Remark, error) {
	args := m.Called(ctx, id)
	invoice, _ := args.Get(0).(*domain.SalesInvoice)
	remarks, _ := args.Get(1).([]domain.Remark)
	return invoice, remarks, args.Error(2)
}

func (m *MockSalesService) UpdateInvoice(ctx context.Context, id string, updates map[string]any) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, id, updates)
	invoice, _ := args.Get(0).(*domain.SalesInvoice)
	return invoice, args.Error(1)
}

func (m *MockSalesService) DeleteInvoice(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
