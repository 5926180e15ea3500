package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/constants"
)

// Vendor holds the identity of the issuing party. Every field except Name is
// optional; absence is a nil pointer, never an empty string, so "not found"
// stays distinguishable from "found but blank".
type Vendor struct {
	Name         string  `json:"name"`
	Address      *string `json:"address,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	City         *string `json:"city,omitempty"`
	Country      *string `json:"country,omitempty"`
	VATID        *string `json:"vat_id,omitempty"`       // EU USt-IdNr., e.g. DE123456789
	TaxNumber    *string `json:"tax_number,omitempty"`   // national Steuernummer
	RegisterID   *string `json:"register_id,omitempty"`  // Handelsregister, e.g. HRB 12345
	LegalForm    *string `json:"legal_form,omitempty"`   // GmbH, AG, UG, ...
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	Website      *string `json:"website,omitempty"`
}

// TaxBreakdown carries the reconciled amounts plus the special-regime flags.
// All currency values are fixed-point decimals.
type TaxBreakdown struct {
	Net       *decimal.Decimal `json:"net,omitempty"`
	VATRate   *decimal.Decimal `json:"vat_rate,omitempty"`
	VATAmount *decimal.Decimal `json:"vat_amount,omitempty"`
	Gross     *decimal.Decimal `json:"gross,omitempty"`

	SmallBusiness bool `json:"small_business"` // §19 UStG Kleinunternehmer
	IntraEU       bool `json:"intra_eu"`
	ThirdCountry  bool `json:"third_country"`
	ReverseCharge bool `json:"reverse_charge"`
}

// LineItem is one invoice position. Quantity and unit price may be unknown.
type LineItem struct {
	Position    int              `json:"position"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Total       *decimal.Decimal `json:"total,omitempty"`
}

// PaymentTerms captures due-in-days plus the dunning flag.
type PaymentTerms struct {
	DueInDays int  `json:"due_in_days"`
	Dunning   bool `json:"dunning"`
}

// BankDetails is present only when bank data was detected in the text.
type BankDetails struct {
	IBAN          string  `json:"iban"`
	BIC           *string `json:"bic,omitempty"`
	AccountHolder *string `json:"account_holder,omitempty"`
}

// Classification is the bookkeeping routing suggested for the record.
type Classification struct {
	Account       string  `json:"account"`        // ledger account
	OffsetAccount string  `json:"offset_account"` // Gegenkonto
	CostCenter    *string `json:"cost_center,omitempty"`
	SeriesCode    string  `json:"series_code"`
	BookingText   string  `json:"booking_text"`
}

// Processing is metadata about how the record was produced.
type Processing struct {
	OCRConfidence    float64                    `json:"ocr_confidence"` // 0..100
	HumanCorrected   bool                       `json:"human_corrected"`
	ValidationStatus constants.ValidationStatus `json:"validation_status"`
	ApprovalStatus   constants.ApprovalStatus   `json:"approval_status"`
}

// ComplianceRecord is the central output entity: one accounting source
// document, assembled stage by stage and validated against the GoBD rule set.
type ComplianceRecord struct {
	ID             uuid.UUID              `json:"id"`
	CompanyID      uuid.UUID              `json:"company_id"`
	DocumentNumber string                 `json:"document_number"`
	DocumentDate   time.Time              `json:"document_date"`
	ReceiptDate    time.Time              `json:"receipt_date"`
	DocumentType   constants.DocumentType `json:"document_type"`

	Vendor       Vendor         `json:"vendor"`
	Tax          TaxBreakdown   `json:"tax"`
	PaymentTerms *PaymentTerms  `json:"payment_terms,omitempty"`
	LineItems    []LineItem     `json:"line_items,omitempty"`
	CurrencyCode string         `json:"currency_code"`
	Bank         *BankDetails   `json:"bank,omitempty"`

	Classification Classification `json:"classification"`
	Processing     Processing     `json:"processing"`

	// MatchedPatternID references the vendor pattern that resolved this
	// record, when one did.
	MatchedPatternID *uuid.UUID `json:"matched_pattern_id,omitempty"`
}
