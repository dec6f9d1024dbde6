package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestApplyPurchaseFilter(t *testing.T) {
	cols := strings.Join(purchaseRegister.columns, ", ")
	base := "SELECT " + cols + " FROM purchase_register"
	order := " ORDER BY created_at DESC, id"

	tests := []struct {
		name     string
		filter   domain.InvoiceFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "Empty",
			filter:   domain.InvoiceFilter{},
			wantSQL:  base + order,
			wantArgs: nil,
		},
		{
			name:     "Source",
			filter:   domain.InvoiceFilter{Source: strPtr("email")},
			wantSQL:  base + " WHERE source = $1" + order,
			wantArgs: []any{"email"},
		},
		{
			name:     "DateRange",
			filter:   domain.InvoiceFilter{StartDate: strPtr("2024-01-01"), EndDate: strPtr("2024-01-31")},
			wantSQL:  base + " WHERE invoice_date >= $1 AND invoice_date <= $2" + order,
			wantArgs: []any{"2024-01-01", "2024-01-31"},
		},
		{
			name:     "VendorEscapesWildcards",
			filter:   domain.InvoiceFilter{Vendor: strPtr("50%_off")},
			wantSQL:  base + " WHERE supplier_name ILIKE $1" + order,
			wantArgs: []any{`%50\%\_off%`},
		},
		{
			name: "AllFields",
			filter: domain.InvoiceFilter{
				Source:    strPtr("upload"),
				Status:    strPtr("pending"),
				StartDate: strPtr("2024-01-01"),
				EndDate:   strPtr("2024-12-31"),
				Vendor:    strPtr("acme"),
			},
			wantSQL: base +
				" WHERE source = $1 AND invoice_status = $2 AND invoice_date >= $3" +
				" AND invoice_date <= $4 AND supplier_name ILIKE $5" + order,
			wantArgs: []any{"upload", "pending", "2024-01-01", "2024-12-31", "%acme%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := applyPurchaseFilter(purchaseRegister.selectInvoices(), tt.filter).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSalesSelectOrdersByInvoiceDate(t *testing.T) {
	sql, args, err := salesRegister.selectInvoices().ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "SELECT id, seller_gstin, "))
	assert.True(t, strings.HasSuffix(sql, " FROM sales_register ORDER BY invoice_date DESC, id"))
	assert.Empty(t, args)
}

func TestSelectByID(t *testing.T) {
	sql, args, err := purchaseRegister.selectByID("inv-1").ToSql()
	require.NoError(t, err)

	want := "SELECT " + strings.Join(purchaseRegister.columns, ", ") + " FROM purchase_register WHERE id = $1 LIMIT 1"
	assert.Equal(t, want, sql)
	assert.Equal(t, []any{"inv-1"}, args)
}

func TestSelectRemarksAliasesForeignKey(t *testing.T) {
	sql, args, err := salesRegister.selectRemarks("inv-9").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "sales_id AS invoice_id")
	assert.Contains(t, sql, "FROM sales_remarks WHERE sales_id = $1 ORDER BY created_at DESC, id")
	assert.Equal(t, []any{"inv-9"}, args)
}

func TestUpdateInvoice(t *testing.T) {
	t.Run("SetsColumnsInOrder", func(t *testing.T) {
		q, err := purchaseRegister.updateInvoice("inv-1", map[string]any{
			"supplier_name":  "Acme",
			"invoice_status": "approved",
		})
		require.NoError(t, err)

		sql, args, err := q.ToSql()
		require.NoError(t, err)

		want := "UPDATE purchase_register SET invoice_status = $1, supplier_name = $2, updated_at = now() WHERE id = $3 RETURNING " +
			strings.Join(purchaseRegister.columns, ", ")
		assert.Equal(t, want, sql)
		assert.Equal(t, []any{"approved", "Acme", "inv-1"}, args)
	})

	t.Run("EmptyUpdateTouchesTimestamp", func(t *testing.T) {
		q, err := salesRegister.updateInvoice("inv-2", nil)
		require.NoError(t, err)

		sql, args, err := q.ToSql()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(sql, "UPDATE sales_register SET updated_at = now() WHERE id = $1 RETURNING "))
		assert.Equal(t, []any{"inv-2"}, args)
	})

	t.Run("RejectsUnknownColumn", func(t *testing.T) {
		_, err := purchaseRegister.updateInvoice("inv-1", map[string]any{"nope": 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `column "nope" does not exist on purchase_register`)
	})

	t.Run("RejectsGeneratedColumn", func(t *testing.T) {
		_, err := salesRegister.updateInvoice("inv-1", map[string]any{"total_invoice_value": 10})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be updated")
	})
}

func TestDeleteStatements(t *testing.T) {
	sql, args, err := purchaseRegister.deleteRemarks("inv-1").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM purchase_remarks WHERE purchase_id = $1", sql)
	assert.Equal(t, []any{"inv-1"}, args)

	sql, args, err = purchaseRegister.deleteInvoice("inv-1").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM purchase_register WHERE id = $1", sql)
	assert.Equal(t, []any{"inv-1"}, args)
}
