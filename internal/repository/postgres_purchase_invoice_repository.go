package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/ridwanfathin/invoice-register-service/internal/apperror"
	"github.com/ridwanfathin/invoice-register-service/internal/database"
	"github.com/ridwanfathin/invoice-register-service/internal/domain"
	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
)

// PostgresPurchaseInvoiceRepository implements PurchaseInvoiceRepository using PostgreSQL
type PostgresPurchaseInvoiceRepository struct {
	db           *database.PostgresDB
	queryTimeout time.Duration
	metrics      *metrics.Metrics
}

// NewPostgresPurchaseInvoiceRepository creates a new PostgreSQL purchase register repository.
// Every statement runs under queryTimeout when it is positive.
func NewPostgresPurchaseInvoiceRepository(db *database.PostgresDB, queryTimeout time.Duration, m *metrics.Metrics) *PostgresPurchaseInvoiceRepository {
	return &PostgresPurchaseInvoiceRepository{
		db:           db,
		queryTimeout: queryTimeout,
		metrics:      m,
	}
}

func (r *PostgresPurchaseInvoiceRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// ListPurchaseInvoices retrieves purchase invoices matching filter, newest first
func (r *PostgresPurchaseInvoiceRepository) ListPurchaseInvoices(ctx context.Context, filter domain.InvoiceFilter) (invoices []domain.PurchaseInvoice, err error) {
	const op = "list_purchase_invoices"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	sql, args, err := applyPurchaseFilter(purchaseRegister.selectInvoices(), filter).ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build query: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	invoices = []domain.PurchaseInvoice{}
	if err = pgxscan.Select(ctx, r.db.GetPool(), &invoices, sql, args...); err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	return invoices, nil
}

// GetPurchaseInvoiceByID retrieves a purchase invoice by its ID
func (r *PostgresPurchaseInvoiceRepository) GetPurchaseInvoiceByID(ctx context.Context, id string) (_ *domain.PurchaseInvoice, err error) {
	const op = "get_purchase_invoice"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	sql, args, err := purchaseRegister.selectByID(id).ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build query: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var invoice domain.PurchaseInvoice
	if err = pgxscan.Get(ctx, r.db.GetPool(), &invoice, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, apperror.NewDomain(op, err)
	}

	return &invoice, nil
}

// ListPurchaseRemarks retrieves the remarks of a purchase invoice, newest first
func (r *PostgresPurchaseInvoiceRepository) ListPurchaseRemarks(ctx context.Context, purchaseID string) (remarks []domain.Remark, err error) {
	const op = "list_purchase_remarks"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	sql, args, err := purchaseRegister.selectRemarks(purchaseID).ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build query: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	remarks = []domain.Remark{}
	if err = pgxscan.Select(ctx, r.db.GetPool(), &remarks, sql, args...); err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	return remarks, nil
}

// UpdatePurchaseInvoice applies a partial update to a purchase invoice
func (r *PostgresPurchaseInvoiceRepository) UpdatePurchaseInvoice(ctx context.Context, id string, updates map[string]any) (_ *domain.PurchaseInvoice, err error) {
	const op = "update_purchase_invoice"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	q, err := purchaseRegister.updateInvoice(id, updates)
	if err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build update: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var invoice domain.PurchaseInvoice
	if err = pgxscan.Get(ctx, r.db.GetPool(), &invoice, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewDomain(op, fmt.Errorf("purchase invoice not found: %s", id))
		}
		return nil, apperror.NewDomain(op, err)
	}

	return &invoice, nil
}

// DeletePurchaseInvoice deletes a purchase invoice and its remarks in one transaction
func (r *PostgresPurchaseInvoiceRepository) DeletePurchaseInvoice(ctx context.Context, id string) (err error) {
	const op = "delete_purchase_invoice"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	remarksSQL, remarksArgs, err := purchaseRegister.deleteRemarks(id).ToSql()
	if err != nil {
		return apperror.NewDomain(op, fmt.Errorf("build delete: %w", err))
	}

	invoiceSQL, invoiceArgs, err := purchaseRegister.deleteInvoice(id).ToSql()
	if err != nil {
		return apperror.NewDomain(op, fmt.Errorf("build delete: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err = r.db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, remarksSQL, remarksArgs...); err != nil {
			return fmt.Errorf("failed to delete purchase remarks: %w", err)
		}
		if _, err := tx.Exec(ctx, invoiceSQL, invoiceArgs...); err != nil {
			return fmt.Errorf("failed to delete purchase invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return apperror.NewDomain(op, err)
	}

	return nil
}
