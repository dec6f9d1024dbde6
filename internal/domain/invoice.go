package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO-8601 calendar date layout used for invoice dates
const DateLayout = "2006-01-02"

// DateOnly is a calendar date that travels as "YYYY-MM-DD" in JSON and as a
// DATE column in the database
type DateOnly struct {
	time.Time
}

// NewDateOnly parses an ISO-8601 date
func NewDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{Time: t}, nil
}

// MustDateOnly parses an ISO-8601 date and panics on error. Use only for constants.
func MustDateOnly(s string) DateOnly {
	d, err := NewDateOnly(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date formatted as YYYY-MM-DD
func (d DateOnly) String() string {
	return d.Time.Format(DateLayout)
}

// UnmarshalJSON implements custom unmarshaling for date-only strings
func (d *DateOnly) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements custom marshaling for date-only strings
func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(DateLayout))
}

// Scan implements sql.Scanner
func (d *DateOnly) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v
	case string:
		t, err := time.Parse(DateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
	case []byte:
		t, err := time.Parse(DateLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = t
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", src)
	}
	return nil
}

// Value implements driver.Valuer
func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(DateLayout), nil
}

// PurchaseInvoice is a row of the purchase register
type PurchaseInvoice struct {
	ID                     string              `json:"id" db:"id"`
	Source                 string              `json:"source" db:"source"`
	SupplierName           *string             `json:"supplier_name" db:"supplier_name"`
	SupplierGSTIN          *string             `json:"supplier_gstin" db:"supplier_gstin"`
	SupplierStateCode      *string             `json:"supplier_state_code" db:"supplier_state_code"`
	InvoiceNumber          *string             `json:"invoice_number" db:"invoice_number"`
	InvoiceDate            *DateOnly           `json:"invoice_date" db:"invoice_date"`
	InvoiceType            *string             `json:"invoice_type" db:"invoice_type"`
	BuyerGSTIN             *string             `json:"buyer_gstin" db:"buyer_gstin"`
	PlaceOfSupplyStateCode *string             `json:"place_of_supply_state_code" db:"place_of_supply_state_code"`
	TaxableValue           decimal.NullDecimal `json:"taxable_value" db:"taxable_value"`
	CGSTAmount             decimal.NullDecimal `json:"cgst_amount" db:"cgst_amount"`
	SGSTAmount             decimal.NullDecimal `json:"sgst_amount" db:"sgst_amount"`
	IGSTAmount             decimal.NullDecimal `json:"igst_amount" db:"igst_amount"`
	CessAmount             decimal.NullDecimal `json:"cess_amount" db:"cess_amount"`
	TotalInvoiceValue      decimal.NullDecimal `json:"total_invoice_value" db:"total_invoice_value"`
	HSNOrSACCode           *string             `json:"hsn_or_sac_code" db:"hsn_or_sac_code"`
	Description            *string             `json:"description_of_goods_services" db:"description_of_goods_services"`
	Quantity               decimal.NullDecimal `json:"quantity" db:"quantity"`
	UnitOfMeasure          *string             `json:"unit_of_measure" db:"unit_of_measure"`
	RatePerUnit            decimal.NullDecimal `json:"rate_per_unit" db:"rate_per_unit"`
	IsReverseCharge        *bool               `json:"is_reverse_charge" db:"is_reverse_charge"`
	IsITCEligible          *bool               `json:"is_itc_eligible" db:"is_itc_eligible"`
	InvoiceBucketURL       *string             `json:"invoice_bucket_url" db:"invoice_bucket_url"`
	OCRConfidenceScore     *float64            `json:"ocr_confidence_score" db:"ocr_confidence_score"`
	InvoiceStatus          *string             `json:"invoice_status" db:"invoice_status"`
	CreatedAt              time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at" db:"updated_at"`
}

// SalesInvoice is a row of the sales register
type SalesInvoice struct {
	ID                     string              `json:"id" db:"id"`
	SellerGSTIN            string              `json:"seller_gstin" db:"seller_gstin"`
	SellerStateCode        string              `json:"seller_state_code" db:"seller_state_code"`
	CustomerName           *string             `json:"customer_name" db:"customer_name"`
	CustomerGSTIN          *string             `json:"customer_gstin" db:"customer_gstin"`
	CustomerStateCode      *string             `json:"customer_state_code" db:"customer_state_code"`
	InvoiceNumber          string              `json:"invoice_number" db:"invoice_number"`
	InvoiceDate            DateOnly            `json:"invoice_date" db:"invoice_date"`
	InvoiceType            string              `json:"invoice_type" db:"invoice_type"`
	SupplyType             string              `json:"supply_type" db:"supply_type"`
	PlaceOfSupplyStateCode string              `json:"place_of_supply_state_code" db:"place_of_supply_state_code"`
	HSNOrSAC               *string             `json:"hsn_or_sac" db:"hsn_or_sac"`
	Description            *string             `json:"description" db:"description"`
	Quantity               decimal.NullDecimal `json:"quantity" db:"quantity"`
	Unit                   *string             `json:"unit" db:"unit"`
	Rate                   decimal.NullDecimal `json:"rate" db:"rate"`
	TaxableValue           decimal.Decimal     `json:"taxable_value" db:"taxable_value"`
	CGST                   decimal.NullDecimal `json:"cgst" db:"cgst"`
	SGST                   decimal.NullDecimal `json:"sgst" db:"sgst"`
	IGST                   decimal.NullDecimal `json:"igst" db:"igst"`
	Cess                   decimal.NullDecimal `json:"cess" db:"cess"`
	TCS                    decimal.NullDecimal `json:"tcs" db:"tcs"`
	TotalInvoiceValue      decimal.NullDecimal `json:"total_invoice_value" db:"total_invoice_value"` // generated column
	IsReverseCharge        *bool               `json:"is_reverse_charge" db:"is_reverse_charge"`
	IsExport               *bool               `json:"is_export" db:"is_export"`
	IsSEZ                  *bool               `json:"is_sez" db:"is_sez"`
	IsITCEligible          *bool               `json:"is_itc_eligible" db:"is_itc_eligible"`
	IRN                    *string             `json:"irn" db:"irn"`
	AckNo                  *string             `json:"ack_no" db:"ack_no"`
	AckDate                *DateOnly           `json:"ack_date" db:"ack_date"`
	EwayBillNo             *string             `json:"eway_bill_no" db:"eway_bill_no"`
	VehicleNo              *string             `json:"vehicle_no" db:"vehicle_no"`
	TransportMode          *string             `json:"transport_mode" db:"transport_mode"`
	PaymentStatus          *string             `json:"payment_status" db:"payment_status"`
	PaymentDueDate         *DateOnly           `json:"payment_due_date" db:"payment_due_date"`
	InvoiceBucketURL       string              `json:"invoice_bucket_url" db:"invoice_bucket_url"`
	OCRConfidenceScore     *float64            `json:"ocr_confidence_score" db:"ocr_confidence_score"`
	ExtractionSource       *string             `json:"extraction_source" db:"extraction_source"`
	InvoiceStatus          *string             `json:"invoice_status" db:"invoice_status"`
	CreatedAt              time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at" db:"updated_at"`
}

// Remark is a validation issue recorded against an invoice field
type Remark struct {
	ID              string    `json:"id" db:"id"`
	InvoiceID       string    `json:"invoice_id" db:"invoice_id"`
	FieldName       string    `json:"field_name" db:"field_name"`
	IssueType       string    `json:"issue_type" db:"issue_type"`
	DetectedValue   *string   `json:"detected_value" db:"detected_value"`
	ExpectedValue   *string   `json:"expected_value" db:"expected_value"`
	ConfidenceScore *float64  `json:"confidence_score" db:"confidence_score"`
	Status          string    `json:"status" db:"status"`
	Comment         *string   `json:"comment" db:"comment"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
