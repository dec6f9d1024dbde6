package handler

import (
	"net/url"

	"github.com/ridwanfathin/invoice-register-service/internal/domain"
)

// Query parameters recognized by the purchase register list
const (
	QuerySource    = "source"
	QueryStatus    = "status"
	QueryStartDate = "startDate"
	QueryEndDate   = "endDate"
	QueryVendor    = "vendor"
)

// ExtractPurchaseFilter builds the purchase register filter from query
// parameters. Missing and empty values leave the field unset; everything else
// is passed through verbatim.
func ExtractPurchaseFilter(query url.Values) domain.InvoiceFilter {
	return domain.InvoiceFilter{
		Source:    domain.OptionalString(query.Get(QuerySource)),
		Status:    domain.OptionalString(query.Get(QueryStatus)),
		StartDate: domain.OptionalString(query.Get(QueryStartDate)),
		EndDate:   domain.OptionalString(query.Get(QueryEndDate)),
		Vendor:    domain.OptionalString(query.Get(QueryVendor)),
	}
}
