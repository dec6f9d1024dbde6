package repository

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// invoiceTable describes how an invoice register is laid out in PostgreSQL
type invoiceTable struct {
	name    string
	columns []string
	orderBy []string

	// readOnly columns are rejected by partial updates
	readOnly map[string]bool

	remarksTable      string
	remarksForeignKey string
}

var purchaseRegister = invoiceTable{
	name:    "purchase_register",
	columns: dbColumns(domain.PurchaseInvoice{}),
	orderBy: []string{"created_at DESC", "id"},
	readOnly: map[string]bool{
		"id":         true,
		"created_at": true,
		"updated_at": true,
	},
	remarksTable:      "purchase_remarks",
	remarksForeignKey: "purchase_id",
}

var salesRegister = invoiceTable{
	name:    "sales_register",
	columns: dbColumns(domain.SalesInvoice{}),
	orderBy: []string{"invoice_date DESC", "id"},
	readOnly: map[string]bool{
		"id":                  true,
		"created_at":          true,
		"updated_at":          true,
		"total_invoice_value": true,
	},
	remarksTable:      "sales_remarks",
	remarksForeignKey: "sales_id",
}

// psql returns a squirrel builder with PostgreSQL placeholder format
func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// dbColumns extracts column names from the "db" tags of a struct value
func dbColumns(v any) []string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	cols := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

// likeEscaper escapes LIKE wildcards so user input matches literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching values that contain s
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// selectInvoices builds the ordered SELECT for a register
func (t invoiceTable) selectInvoices() squirrel.SelectBuilder {
	return psql().
		Select(t.columns...).
		From(t.name).
		OrderBy(t.orderBy...)
}

// selectByID builds the SELECT for a single invoice
func (t invoiceTable) selectByID(id string) squirrel.SelectBuilder {
	return psql().
		Select(t.columns...).
		From(t.name).
		Where(squirrel.Eq{"id": id}).
		Limit(1)
}

// selectRemarks builds the SELECT for the remarks of one invoice. The foreign
// key column is aliased to invoice_id so both registers scan into domain.Remark.
func (t invoiceTable) selectRemarks(invoiceID string) squirrel.SelectBuilder {
	remarkCols := dbColumns(domain.Remark{})
	cols := make([]string, len(remarkCols))
	for i, col := range remarkCols {
		if col == "invoice_id" {
			cols[i] = t.remarksForeignKey + " AS invoice_id"
			continue
		}
		cols[i] = col
	}

	return psql().
		Select(cols...).
		From(t.remarksTable).
		Where(squirrel.Eq{t.remarksForeignKey: invoiceID}).
		OrderBy("created_at DESC", "id")
}

// validateUpdates rejects columns that are unknown or read-only
func (t invoiceTable) validateUpdates(updates map[string]any) error {
	known := make(map[string]bool, len(t.columns))
	for _, col := range t.columns {
		known[col] = true
	}

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !known[key] {
			return fmt.Errorf("column %q does not exist on %s", key, t.name)
		}
		if t.readOnly[key] {
			return fmt.Errorf("column %q of %s cannot be updated", key, t.name)
		}
	}
	return nil
}

// updateInvoice builds a partial UPDATE returning the updated row.
// updated_at is always refreshed.
func (t invoiceTable) updateInvoice(id string, updates map[string]any) (squirrel.UpdateBuilder, error) {
	if err := t.validateUpdates(updates); err != nil {
		return squirrel.UpdateBuilder{}, err
	}

	q := psql().Update(t.name)
	if len(updates) > 0 {
		q = q.SetMap(updates)
	}

	return q.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(t.columns, ", ")), nil
}

// deleteInvoice builds the DELETE for one invoice
func (t invoiceTable) deleteInvoice(id string) squirrel.DeleteBuilder {
	return psql().Delete(t.name).Where(squirrel.Eq{"id": id})
}

// deleteRemarks builds the DELETE for the remarks of one invoice
func (t invoiceTable) deleteRemarks(invoiceID string) squirrel.DeleteBuilder {
	return psql().Delete(t.remarksTable).Where(squirrel.Eq{t.remarksForeignKey: invoiceID})
}

// applyPurchaseFilter narrows a purchase register SELECT by the present filter fields
func applyPurchaseFilter(q squirrel.SelectBuilder, filter domain.InvoiceFilter) squirrel.SelectBuilder {
	if filter.Source != nil {
		q = q.Where(squirrel.Eq{"source": *filter.Source})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"invoice_status": *filter.Status})
	}
	if filter.StartDate != nil {
		q = q.Where(squirrel.GtOrEq{"invoice_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		q = q.Where(squirrel.LtOrEq{"invoice_date": *filter.EndDate})
	}
	if filter.Vendor != nil {
		q = q.Where(squirrel.ILike{"supplier_name": containsPattern(*filter.Vendor)})
	}
	return q
}
