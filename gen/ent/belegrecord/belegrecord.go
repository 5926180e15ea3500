// Code generated by ent, DO NOT EDIT.

package belegrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the belegrecord type in the database.
	Label = "beleg_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldDocumentNumber holds the string denoting the document_number field in the database.
	FieldDocumentNumber = "document_number"
	// FieldDocumentDate holds the string denoting the document_date field in the database.
	FieldDocumentDate = "document_date"
	// FieldReceiptDate holds the string denoting the receipt_date field in the database.
	FieldReceiptDate = "receipt_date"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldNetAmount holds the string denoting the net_amount field in the database.
	FieldNetAmount = "net_amount"
	// FieldVatAmount holds the string denoting the vat_amount field in the database.
	FieldVatAmount = "vat_amount"
	// FieldGrossAmount holds the string denoting the gross_amount field in the database.
	FieldGrossAmount = "gross_amount"
	// FieldVatRate holds the string denoting the vat_rate field in the database.
	FieldVatRate = "vat_rate"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldAccount holds the string denoting the account field in the database.
	FieldAccount = "account"
	// FieldOffsetAccount holds the string denoting the offset_account field in the database.
	FieldOffsetAccount = "offset_account"
	// FieldCostCenter holds the string denoting the cost_center field in the database.
	FieldCostCenter = "cost_center"
	// FieldBookingText holds the string denoting the booking_text field in the database.
	FieldBookingText = "booking_text"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldApprovalStatus holds the string denoting the approval_status field in the database.
	FieldApprovalStatus = "approval_status"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldHumanCorrected holds the string denoting the human_corrected field in the database.
	FieldHumanCorrected = "human_corrected"
	// FieldMatchedPatternID holds the string denoting the matched_pattern_id field in the database.
	FieldMatchedPatternID = "matched_pattern_id"
	// FieldRecordJSON holds the string denoting the record_json field in the database.
	FieldRecordJSON = "record_json"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// Table holds the table name of the belegrecord in the database.
	Table = "beleg_records"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "beleg_records"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
)

// Columns holds all SQL columns for belegrecord fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldDocumentNumber,
	FieldDocumentDate,
	FieldReceiptDate,
	FieldDocumentType,
	FieldVendorName,
	FieldNetAmount,
	FieldVatAmount,
	FieldGrossAmount,
	FieldVatRate,
	FieldCurrencyCode,
	FieldAccount,
	FieldOffsetAccount,
	FieldCostCenter,
	FieldBookingText,
	FieldValidationStatus,
	FieldApprovalStatus,
	FieldConfidence,
	FieldHumanCorrected,
	FieldMatchedPatternID,
	FieldRecordJSON,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DocumentNumberValidator is a validator for the "document_number" field. It is called by the builders before save.
	DocumentNumberValidator func(string) error
	// DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	DocumentTypeValidator func(string) error
	// VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	VendorNameValidator func(string) error
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	ValidationStatusValidator func(string) error
	// ApprovalStatusValidator is a validator for the "approval_status" field. It is called by the builders before save.
	ApprovalStatusValidator func(string) error
	// DefaultHumanCorrected holds the default value on creation for the "human_corrected" field.
	DefaultHumanCorrected bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BelegRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByDocumentNumber orders the results by the document_number field.
func ByDocumentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentNumber, opts...).ToFunc()
}

// ByDocumentDate orders the results by the document_date field.
func ByDocumentDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentDate, opts...).ToFunc()
}

// ByReceiptDate orders the results by the receipt_date field.
func ByReceiptDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptDate, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByNetAmount orders the results by the net_amount field.
func ByNetAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetAmount, opts...).ToFunc()
}

// ByVatAmount orders the results by the vat_amount field.
func ByVatAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatAmount, opts...).ToFunc()
}

// ByGrossAmount orders the results by the gross_amount field.
func ByGrossAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossAmount, opts...).ToFunc()
}

// ByVatRate orders the results by the vat_rate field.
func ByVatRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatRate, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByAccount orders the results by the account field.
func ByAccount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccount, opts...).ToFunc()
}

// ByOffsetAccount orders the results by the offset_account field.
func ByOffsetAccount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOffsetAccount, opts...).ToFunc()
}

// ByCostCenter orders the results by the cost_center field.
func ByCostCenter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostCenter, opts...).ToFunc()
}

// ByBookingText orders the results by the booking_text field.
func ByBookingText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBookingText, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByApprovalStatus orders the results by the approval_status field.
func ByApprovalStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovalStatus, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByHumanCorrected orders the results by the human_corrected field.
func ByHumanCorrected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanCorrected, opts...).ToFunc()
}

// ByMatchedPatternID orders the results by the matched_pattern_id field.
func ByMatchedPatternID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedPatternID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
