package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ridwanfathin/invoice-register-service/internal/apperror"
	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// MemoryInvoiceRepository keeps both invoice registers in memory.
// It implements PurchaseInvoiceRepository and SalesInvoiceRepository and is
// used for local development and tests.
type MemoryInvoiceRepository struct {
	mutex           sync.RWMutex
	purchases       map[string]domain.PurchaseInvoice
	sales           map[string]domain.SalesInvoice
	purchaseRemarks map[string][]domain.Remark
	salesRemarks    map[string][]domain.Remark
	now             func() time.Time
}

// NewMemoryInvoiceRepository creates an empty in-memory invoice store
func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		purchases:       make(map[string]domain.PurchaseInvoice),
		sales:           make(map[string]domain.SalesInvoice),
		purchaseRemarks: make(map[string][]domain.Remark),
		salesRemarks:    make(map[string][]domain.Remark),
		now:             time.Now,
	}
}

func checkContext(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return apperror.NewDomain(op, ctx.Err())
	default:
		return nil
	}
}

// AddPurchaseInvoice stores a purchase invoice, assigning an ID and timestamps when unset
func (r *MemoryInvoiceRepository) AddPurchaseInvoice(invoice domain.PurchaseInvoice) domain.PurchaseInvoice {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = r.now()
	}
	if invoice.UpdatedAt.IsZero() {
		invoice.UpdatedAt = invoice.CreatedAt
	}

	r.purchases[invoice.ID] = invoice
	return invoice
}

// AddSalesInvoice stores a sales invoice, assigning an ID and timestamps when unset
func (r *MemoryInvoiceRepository) AddSalesInvoice(invoice domain.SalesInvoice) domain.SalesInvoice {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = r.now()
	}
	if invoice.UpdatedAt.IsZero() {
		invoice.UpdatedAt = invoice.CreatedAt
	}

	r.sales[invoice.ID] = invoice
	return invoice
}

// AddPurchaseRemark records a remark against a purchase invoice
func (r *MemoryInvoiceRepository) AddPurchaseRemark(purchaseID string, remark domain.Remark) domain.Remark {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	remark = r.prepareRemark(purchaseID, remark)
	r.purchaseRemarks[purchaseID] = append(r.purchaseRemarks[purchaseID], remark)
	return remark
}

// AddSalesRemark records a remark against a sales invoice
func (r *MemoryInvoiceRepository) AddSalesRemark(salesID string, remark domain.Remark) domain.Remark {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	remark = r.prepareRemark(salesID, remark)
	r.salesRemarks[salesID] = append(r.salesRemarks[salesID], remark)
	return remark
}

func (r *MemoryInvoiceRepository) prepareRemark(invoiceID string, remark domain.Remark) domain.Remark {
	if remark.ID == "" {
		remark.ID = uuid.NewString()
	}
	if remark.CreatedAt.IsZero() {
		remark.CreatedAt = r.now()
	}
	if remark.Status == "" {
		remark.Status = "open"
	}
	remark.InvoiceID = invoiceID
	return remark
}

// ListPurchaseInvoices returns the purchase invoices matching filter, newest first
func (r *MemoryInvoiceRepository) ListPurchaseInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PurchaseInvoice, error) {
	const op = "list_purchase_invoices"
	if err := checkContext(ctx, op); err != nil {
		return nil, err
	}

	match, err := purchaseMatcher(filter)
	if err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	invoices := make([]domain.PurchaseInvoice, 0, len(r.purchases))
	for _, invoice := range r.purchases {
		if match(invoice) {
			invoices = append(invoices, invoice)
		}
	}

	sort.Slice(invoices, func(i, j int) bool {
		if !invoices[i].CreatedAt.Equal(invoices[j].CreatedAt) {
			return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
		}
		return invoices[i].ID < invoices[j].ID
	})

	return invoices, nil
}

// purchaseMatcher compiles filter into a predicate. Malformed dates are
// rejected the way PostgreSQL rejects them when comparing against a DATE column.
func purchaseMatcher(filter domain.InvoiceFilter) (func(domain.PurchaseInvoice) bool, error) {
	var start, end *domain.DateOnly
	if filter.StartDate != nil {
		d, err := domain.NewDateOnly(*filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid input syntax for type date: %q", *filter.StartDate)
		}
		start = &d
	}
	if filter.EndDate != nil {
		d, err := domain.NewDateOnly(*filter.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid input syntax for type date: %q", *filter.EndDate)
		}
		end = &d
	}

	var vendor string
	if filter.Vendor != nil {
		vendor = strings.ToLower(*filter.Vendor)
	}

	return func(inv domain.PurchaseInvoice) bool {
		if filter.Source != nil && inv.Source != *filter.Source {
			return false
		}
		if filter.Status != nil && (inv.InvoiceStatus == nil || *inv.InvoiceStatus != *filter.Status) {
			return false
		}
		if start != nil && (inv.InvoiceDate == nil || inv.InvoiceDate.Before(start.Time)) {
			return false
		}
		if end != nil && (inv.InvoiceDate == nil || inv.InvoiceDate.After(end.Time)) {
			return false
		}
		if filter.Vendor != nil && (inv.SupplierName == nil || !strings.Contains(strings.ToLower(*inv.SupplierName), vendor)) {
			return false
		}
		return true
	}, nil
}

// GetPurchaseInvoiceByID returns the purchase invoice with the given ID, or nil
func (r *MemoryInvoiceRepository) GetPurchaseInvoiceByID(ctx context.Context, id string) (*domain.PurchaseInvoice, error) {
	if err := checkContext(ctx, "get_purchase_invoice"); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	invoice, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	return &invoice, nil
}

// ListPurchaseRemarks returns the remarks of a purchase invoice, newest first
func (r *MemoryInvoiceRepository) ListPurchaseRemarks(ctx context.Context, purchaseID string) ([]domain.Remark, error) {
	if err := checkContext(ctx, "list_purchase_remarks"); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return sortedRemarks(r.purchaseRemarks[purchaseID]), nil
}

// UpdatePurchaseInvoice applies a partial update keyed by column name
func (r *MemoryInvoiceRepository) UpdatePurchaseInvoice(ctx context.Context, id string, updates map[string]any) (*domain.PurchaseInvoice, error) {
	const op = "update_purchase_invoice"
	if err := checkContext(ctx, op); err != nil {
		return nil, err
	}
	if err := purchaseRegister.validateUpdates(updates); err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, ok := r.purchases[id]
	if !ok {
		return nil, apperror.NewDomain(op, fmt.Errorf("purchase invoice not found: %s", id))
	}

	var updated domain.PurchaseInvoice
	if err := mergeColumns(current, updates, &updated); err != nil {
		return nil, apperror.NewDomain(op, err)
	}
	updated.UpdatedAt = r.now()

	r.purchases[id] = updated
	return &updated, nil
}

// DeletePurchaseInvoice removes a purchase invoice and its remarks.
// Deleting an unknown ID is not an error.
func (r *MemoryInvoiceRepository) DeletePurchaseInvoice(ctx context.Context, id string) error {
	if err := checkContext(ctx, "delete_purchase_invoice"); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.purchaseRemarks, id)
	delete(r.purchases, id)
	return nil
}

// ListSalesInvoices returns every sales invoice, latest invoice date first
func (r *MemoryInvoiceRepository) ListSalesInvoices(ctx context.Context) ([]domain.SalesInvoice, error) {
	if err := checkContext(ctx, "list_sales_invoices"); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	invoices := make([]domain.SalesInvoice, 0, len(r.sales))
	for _, invoice := range r.sales {
		invoices = append(invoices, invoice)
	}

	sort.Slice(invoices, func(i, j int) bool {
		if !invoices[i].InvoiceDate.Equal(invoices[j].InvoiceDate.Time) {
			return invoices[i].InvoiceDate.After(invoices[j].InvoiceDate.Time)
		}
		return invoices[i].ID < invoices[j].ID
	})

	return invoices, nil
}

// GetSalesInvoiceByID returns the sales invoice with the given ID, or nil
func (r *MemoryInvoiceRepository) GetSalesInvoiceByID(ctx context.Context, id string) (*domain.SalesInvoice, error) {
	if err := checkContext(ctx, "get_sales_invoice"); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	invoice, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	return &invoice, nil
}

// ListSalesRemarks returns the remarks of a sales invoice, newest first
func (r *MemoryInvoiceRepository) ListSalesRemarks(ctx context.Context, salesID string) ([]domain.Remark, error) {
	if err := checkContext(ctx, "list_sales_remarks"); err != nil {
		return nil, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return sortedRemarks(r.salesRemarks[salesID]), nil
}

// UpdateSalesInvoice applies a partial update keyed by column name
func (r *MemoryInvoiceRepository) UpdateSalesInvoice(ctx context.Context, id string, updates map[string]any) (*domain.SalesInvoice, error) {
	const op = "update_sales_invoice"
	if err := checkContext(ctx, op); err != nil {
		return nil, err
	}
	if err := salesRegister.validateUpdates(updates); err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	current, ok := r.sales[id]
	if !ok {
		return nil, apperror.NewDomain(op, fmt.Errorf("sales invoice not found: %s", id))
	}

	var updated domain.SalesInvoice
	if err := mergeColumns(current, updates, &updated); err != nil {
		return nil, apperror.NewDomain(op, err)
	}
	updated.UpdatedAt = r.now()

	r.sales[id] = updated
	return &updated, nil
}

// DeleteSalesInvoice removes a sales invoice and its remarks
func (r *MemoryInvoiceRepository) DeleteSalesInvoice(ctx context.Context, id string) error {
	if err := checkContext(ctx, "delete_sales_invoice"); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.salesRemarks, id)
	delete(r.sales, id)
	return nil
}

func sortedRemarks(remarks []domain.Remark) []domain.Remark {
	out := make([]domain.Remark, len(remarks))
	copy(out, remarks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// mergeColumns overlays updates onto current and decodes the result into dst.
// Column names double as JSON field names on the domain types.
func mergeColumns(current any, updates map[string]any, dst any) error {
	raw, err := json.Marshal(current)
	if err != nil {
		return err
	}

	row := make(map[string]any)
	if err := json.Unmarshal(raw, &row); err != nil {
		return err
	}
	for col, val := range updates {
		row[col] = val
	}

	raw, err = json.Marshal(row)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid column value: %w", err)
	}
	return nil
}
