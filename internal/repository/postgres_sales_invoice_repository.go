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

// PostgresSalesInvoiceRepository implements SalesInvoiceRepository using PostgreSQL
type PostgresSalesInvoiceRepository struct {
	db           *database.PostgresDB
	queryTimeout time.Duration
	metrics      *metrics.Metrics
}

// NewPostgresSalesInvoiceRepository creates a new PostgreSQL sales register repository
func NewPostgresSalesInvoiceRepository(db *database.PostgresDB, queryTimeout time.Duration, m *metrics.Metrics) *PostgresSalesInvoiceRepository {
	return &PostgresSalesInvoiceRepository{
		db:           db,
		queryTimeout: queryTimeout,
		metrics:      m,
	}
}

func (r *PostgresSalesInvoiceRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// ListSalesInvoices retrieves every sales invoice ordered by invoice date, latest first
func (r *PostgresSalesInvoiceRepository) ListSalesInvoices(ctx context.Context) (invoices []domain.SalesInvoice, err error) {
	const op = "list_sales_invoices"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	sql, args, err := salesRegister.selectInvoices().ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build query: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	invoices = []domain.SalesInvoice{}
	if err = pgxscan.Select(ctx, r.db.GetPool(), &invoices, sql, args...); err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	return invoices, nil
}

// GetSalesInvoiceByID retrieves a sales invoice by its ID.
// A missing invoice yields (nil, nil).
func (r *PostgresSalesInvoiceRepository) GetSalesInvoiceByID(ctx context.Context, id string) (_ *domain.SalesInvoice, err error) {
	const op = "get_sales_invoice"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	sql, args, err := salesRegister.selectByID(id).ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build query: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var invoice domain.SalesInvoice
	if err = pgxscan.Get(ctx, r.db.GetPool(), &invoice, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, apperror.NewDomain(op, err)
	}

	return &invoice, nil
}

func (r *PostgresSalesInvoiceRepository) ListSalesRemarks(ctx context.Context, salesID string) (remarks []domain.Remark, err error) {
	const op = "list_sales_remarks"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	sql, args, err := salesRegister.selectRemarks(salesID).ToSql()
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

// UpdateSalesInvoice applies a partial update to a sales invoice.
// total_invoice_value is computed by the database and cannot be set.
func (r *PostgresSalesInvoiceRepository) UpdateSalesInvoice(ctx context.Context, id string, updates map[string]any) (_ *domain.SalesInvoice, err error) {
	const op = "update_sales_invoice"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	q, err := salesRegister.updateInvoice(id, updates)
	if err != nil {
		return nil, apperror.NewDomain(op, err)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewDomain(op, fmt.Errorf("build update: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var invoice domain.SalesInvoice
	if err = pgxscan.Get(ctx, r.db.GetPool(), &invoice, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewDomain(op, fmt.Errorf("sales invoice not found: %s", id))
		}
		return nil, apperror.NewDomain(op, err)
	}

	return &invoice, nil
}

// DeleteSalesInvoice deletes a sales invoice and its remarks
func (r *PostgresSalesInvoiceRepository) DeleteSalesInvoice(ctx context.Context, id string) (err error) {
	const op = "delete_sales_invoice"
	defer func(started time.Time) { r.metrics.ObserveRepositoryCall(op, started, err) }(time.Now())

	remarksSQL, remarksArgs, err := salesRegister.deleteRemarks(id).ToSql()
	if err != nil {
		return apperror.NewDomain(op, fmt.Errorf("build delete: %w", err))
	}

	invoiceSQL, invoiceArgs, err := salesRegister.deleteInvoice(id).ToSql()
	if err != nil {
		return apperror.NewDomain(op, fmt.Errorf("build delete: %w", err))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err = r.db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, remarksSQL, remarksArgs...); err != nil {
			return fmt.Errorf("failed to delete sales remarks: %w", err)
		}
		if _, err := tx.Exec(ctx, invoiceSQL, invoiceArgs...); err != nil {
			return fmt.Errorf("failed to delete sales invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return apperror.NewDomain(op, err)
	}

	return nil
}
