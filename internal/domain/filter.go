package domain

// InvoiceFilter holds optional constraints for an invoice lookup.
// A nil field imposes no constraint; a non-nil field is never empty.
type InvoiceFilter struct {
	Source    *string // equals source
	Status    *string // equals invoice_status
	StartDate *string // invoice_date >= StartDate (YYYY-MM-DD, inclusive)
	EndDate   *string // invoice_date <= EndDate (YYYY-MM-DD, inclusive)
	Vendor    *string // supplier_name contains Vendor, case-insensitive
}

// IsEmpty reports whether the filter matches every invoice
func (f InvoiceFilter) IsEmpty() bool {
	return f.Source == nil && f.Status == nil && f.StartDate == nil && f.EndDate == nil && f.Vendor == nil
}

// OptionalString returns nil for an empty string and a pointer to s otherwise
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
