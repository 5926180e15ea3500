// Code generated by ent, DO NOT EDIT.

package belegrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCompanyID, v))
}

// DocumentNumber applies equality check predicate on the "document_number" field. It's identical to DocumentNumberEQ.
func DocumentNumber(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldDocumentNumber, v))
}

// DocumentDate applies equality check predicate on the "document_date" field. It's identical to DocumentDateEQ.
func DocumentDate(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldDocumentDate, v))
}

// ReceiptDate applies equality check predicate on the "receipt_date" field. It's identical to ReceiptDateEQ.
func ReceiptDate(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldReceiptDate, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldDocumentType, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldVendorName, v))
}

// NetAmount applies equality check predicate on the "net_amount" field. It's identical to NetAmountEQ.
func NetAmount(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldNetAmount, v))
}

// VatAmount applies equality check predicate on the "vat_amount" field. It's identical to VatAmountEQ.
func VatAmount(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldVatAmount, v))
}

// GrossAmount applies equality check predicate on the "gross_amount" field. It's identical to GrossAmountEQ.
func GrossAmount(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldGrossAmount, v))
}

// VatRate applies equality check predicate on the "vat_rate" field. It's identical to VatRateEQ.
func VatRate(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldVatRate, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// Account applies equality check predicate on the "account" field. It's identical to AccountEQ.
func Account(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldAccount, v))
}

// OffsetAccount applies equality check predicate on the "offset_account" field. It's identical to OffsetAccountEQ.
func OffsetAccount(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldOffsetAccount, v))
}

// CostCenter applies equality check predicate on the "cost_center" field. It's identical to CostCenterEQ.
func CostCenter(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCostCenter, v))
}

// BookingText applies equality check predicate on the "booking_text" field. It's identical to BookingTextEQ.
func BookingText(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldBookingText, v))
}

// ValidationStatus applies equality check predicate on the "validation_status" field. It's identical to ValidationStatusEQ.
func ValidationStatus(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldValidationStatus, v))
}

// ApprovalStatus applies equality check predicate on the "approval_status" field. It's identical to ApprovalStatusEQ.
func ApprovalStatus(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldApprovalStatus, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldConfidence, v))
}

// HumanCorrected applies equality check predicate on the "human_corrected" field. It's identical to HumanCorrectedEQ.
func HumanCorrected(v bool) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldHumanCorrected, v))
}

// MatchedPatternID applies equality check predicate on the "matched_pattern_id" field. It's identical to MatchedPatternIDEQ.
func MatchedPatternID(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldMatchedPatternID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldCompanyID, vs...))
}

// DocumentNumberEQ applies the EQ predicate on the "document_number" field.
func DocumentNumberEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldDocumentNumber, v))
}

// DocumentNumberNEQ applies the NEQ predicate on the "document_number" field.
func DocumentNumberNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldDocumentNumber, v))
}

// DocumentNumberIn applies the In predicate on the "document_number" field.
func DocumentNumberIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldDocumentNumber, vs...))
}

// DocumentNumberNotIn applies the NotIn predicate on the "document_number" field.
func DocumentNumberNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldDocumentNumber, vs...))
}

// DocumentNumberGT applies the GT predicate on the "document_number" field.
func DocumentNumberGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldDocumentNumber, v))
}

// DocumentNumberGTE applies the GTE predicate on the "document_number" field.
func DocumentNumberGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldDocumentNumber, v))
}

// DocumentNumberLT applies the LT predicate on the "document_number" field.
func DocumentNumberLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldDocumentNumber, v))
}

// DocumentNumberLTE applies the LTE predicate on the "document_number" field.
func DocumentNumberLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldDocumentNumber, v))
}

// DocumentNumberContains applies the Contains predicate on the "document_number" field.
func DocumentNumberContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldDocumentNumber, v))
}

// DocumentNumberHasPrefix applies the HasPrefix predicate on the "document_number" field.
func DocumentNumberHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldDocumentNumber, v))
}

// DocumentNumberHasSuffix applies the HasSuffix predicate on the "document_number" field.
func DocumentNumberHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldDocumentNumber, v))
}

// DocumentNumberEqualFold applies the EqualFold predicate on the "document_number" field.
func DocumentNumberEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldDocumentNumber, v))
}

// DocumentNumberContainsFold applies the ContainsFold predicate on the "document_number" field.
func DocumentNumberContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldDocumentNumber, v))
}

// DocumentDateEQ applies the EQ predicate on the "document_date" field.
func DocumentDateEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldDocumentDate, v))
}

// DocumentDateNEQ applies the NEQ predicate on the "document_date" field.
func DocumentDateNEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldDocumentDate, v))
}

// DocumentDateIn applies the In predicate on the "document_date" field.
func DocumentDateIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldDocumentDate, vs...))
}

// DocumentDateNotIn applies the NotIn predicate on the "document_date" field.
func DocumentDateNotIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldDocumentDate, vs...))
}

// DocumentDateGT applies the GT predicate on the "document_date" field.
func DocumentDateGT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldDocumentDate, v))
}

// DocumentDateGTE applies the GTE predicate on the "document_date" field.
func DocumentDateGTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldDocumentDate, v))
}

// DocumentDateLT applies the LT predicate on the "document_date" field.
func DocumentDateLT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldDocumentDate, v))
}

// DocumentDateLTE applies the LTE predicate on the "document_date" field.
func DocumentDateLTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldDocumentDate, v))
}

// ReceiptDateEQ applies the EQ predicate on the "receipt_date" field.
func ReceiptDateEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldReceiptDate, v))
}

// ReceiptDateNEQ applies the NEQ predicate on the "receipt_date" field.
func ReceiptDateNEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldReceiptDate, v))
}

// ReceiptDateIn applies the In predicate on the "receipt_date" field.
func ReceiptDateIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldReceiptDate, vs...))
}

// ReceiptDateNotIn applies the NotIn predicate on the "receipt_date" field.
func ReceiptDateNotIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldReceiptDate, vs...))
}

// ReceiptDateGT applies the GT predicate on the "receipt_date" field.
func ReceiptDateGT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldReceiptDate, v))
}

// ReceiptDateGTE applies the GTE predicate on the "receipt_date" field.
func ReceiptDateGTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldReceiptDate, v))
}

// ReceiptDateLT applies the LT predicate on the "receipt_date" field.
func ReceiptDateLT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldReceiptDate, v))
}

// ReceiptDateLTE applies the LTE predicate on the "receipt_date" field.
func ReceiptDateLTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldReceiptDate, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldDocumentType, v))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldVendorName, v))
}

// NetAmountEQ applies the EQ predicate on the "net_amount" field.
func NetAmountEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldNetAmount, v))
}

// NetAmountNEQ applies the NEQ predicate on the "net_amount" field.
func NetAmountNEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldNetAmount, v))
}

// NetAmountIn applies the In predicate on the "net_amount" field.
func NetAmountIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldNetAmount, vs...))
}

// NetAmountNotIn applies the NotIn predicate on the "net_amount" field.
func NetAmountNotIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldNetAmount, vs...))
}

// NetAmountGT applies the GT predicate on the "net_amount" field.
func NetAmountGT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldNetAmount, v))
}

// NetAmountGTE applies the GTE predicate on the "net_amount" field.
func NetAmountGTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldNetAmount, v))
}

// NetAmountLT applies the LT predicate on the "net_amount" field.
func NetAmountLT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldNetAmount, v))
}

// NetAmountLTE applies the LTE predicate on the "net_amount" field.
func NetAmountLTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldNetAmount, v))
}

// NetAmountIsNil applies the IsNil predicate on the "net_amount" field.
func NetAmountIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldNetAmount))
}

// NetAmountNotNil applies the NotNil predicate on the "net_amount" field.
func NetAmountNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldNetAmount))
}

// VatAmountEQ applies the EQ predicate on the "vat_amount" field.
func VatAmountEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldVatAmount, v))
}

// VatAmountNEQ applies the NEQ predicate on the "vat_amount" field.
func VatAmountNEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldVatAmount, v))
}

// VatAmountIn applies the In predicate on the "vat_amount" field.
func VatAmountIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldVatAmount, vs...))
}

// VatAmountNotIn applies the NotIn predicate on the "vat_amount" field.
func VatAmountNotIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldVatAmount, vs...))
}

// VatAmountGT applies the GT predicate on the "vat_amount" field.
func VatAmountGT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldVatAmount, v))
}

// VatAmountGTE applies the GTE predicate on the "vat_amount" field.
func VatAmountGTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldVatAmount, v))
}

// VatAmountLT applies the LT predicate on the "vat_amount" field.
func VatAmountLT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldVatAmount, v))
}

// VatAmountLTE applies the LTE predicate on the "vat_amount" field.
func VatAmountLTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldVatAmount, v))
}

// VatAmountIsNil applies the IsNil predicate on the "vat_amount" field.
func VatAmountIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldVatAmount))
}

// VatAmountNotNil applies the NotNil predicate on the "vat_amount" field.
func VatAmountNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldVatAmount))
}

// GrossAmountEQ applies the EQ predicate on the "gross_amount" field.
func GrossAmountEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldGrossAmount, v))
}

// GrossAmountNEQ applies the NEQ predicate on the "gross_amount" field.
func GrossAmountNEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldGrossAmount, v))
}

// GrossAmountIn applies the In predicate on the "gross_amount" field.
func GrossAmountIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldGrossAmount, vs...))
}

// GrossAmountNotIn applies the NotIn predicate on the "gross_amount" field.
func GrossAmountNotIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldGrossAmount, vs...))
}

// GrossAmountGT applies the GT predicate on the "gross_amount" field.
func GrossAmountGT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldGrossAmount, v))
}

// GrossAmountGTE applies the GTE predicate on the "gross_amount" field.
func GrossAmountGTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldGrossAmount, v))
}

// GrossAmountLT applies the LT predicate on the "gross_amount" field.
func GrossAmountLT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldGrossAmount, v))
}

// GrossAmountLTE applies the LTE predicate on the "gross_amount" field.
func GrossAmountLTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldGrossAmount, v))
}

// GrossAmountIsNil applies the IsNil predicate on the "gross_amount" field.
func GrossAmountIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldGrossAmount))
}

// GrossAmountNotNil applies the NotNil predicate on the "gross_amount" field.
func GrossAmountNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldGrossAmount))
}

// VatRateEQ applies the EQ predicate on the "vat_rate" field.
func VatRateEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldVatRate, v))
}

// VatRateNEQ applies the NEQ predicate on the "vat_rate" field.
func VatRateNEQ(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldVatRate, v))
}

// VatRateIn applies the In predicate on the "vat_rate" field.
func VatRateIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldVatRate, vs...))
}

// VatRateNotIn applies the NotIn predicate on the "vat_rate" field.
func VatRateNotIn(vs ...float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldVatRate, vs...))
}

// VatRateGT applies the GT predicate on the "vat_rate" field.
func VatRateGT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldVatRate, v))
}

// VatRateGTE applies the GTE predicate on the "vat_rate" field.
func VatRateGTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldVatRate, v))
}

// VatRateLT applies the LT predicate on the "vat_rate" field.
func VatRateLT(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldVatRate, v))
}

// VatRateLTE applies the LTE predicate on the "vat_rate" field.
func VatRateLTE(v float64) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldVatRate, v))
}

// VatRateIsNil applies the IsNil predicate on the "vat_rate" field.
func VatRateIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldVatRate))
}

// VatRateNotNil applies the NotNil predicate on the "vat_rate" field.
func VatRateNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldVatRate))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// AccountEQ applies the EQ predicate on the "account" field.
func AccountEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldAccount, v))
}

// AccountNEQ applies the NEQ predicate on the "account" field.
func AccountNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldAccount, v))
}

// AccountIn applies the In predicate on the "account" field.
func AccountIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldAccount, vs...))
}

// AccountNotIn applies the NotIn predicate on the "account" field.
func AccountNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldAccount, vs...))
}

// AccountGT applies the GT predicate on the "account" field.
func AccountGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldAccount, v))
}

// AccountGTE applies the GTE predicate on the "account" field.
func AccountGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldAccount, v))
}

// AccountLT applies the LT predicate on the "account" field.
func AccountLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldAccount, v))
}

// AccountLTE applies the LTE predicate on the "account" field.
func AccountLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldAccount, v))
}

// AccountContains applies the Contains predicate on the "account" field.
func AccountContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldAccount, v))
}

// AccountHasPrefix applies the HasPrefix predicate on the "account" field.
func AccountHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldAccount, v))
}

// AccountHasSuffix applies the HasSuffix predicate on the "account" field.
func AccountHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldAccount, v))
}

// AccountIsNil applies the IsNil predicate on the "account" field.
func AccountIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldAccount))
}

// AccountNotNil applies the NotNil predicate on the "account" field.
func AccountNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldAccount))
}

// AccountEqualFold applies the EqualFold predicate on the "account" field.
func AccountEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldAccount, v))
}

// AccountContainsFold applies the ContainsFold predicate on the "account" field.
func AccountContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldAccount, v))
}

// OffsetAccountEQ applies the EQ predicate on the "offset_account" field.
func OffsetAccountEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldOffsetAccount, v))
}

// OffsetAccountNEQ applies the NEQ predicate on the "offset_account" field.
func OffsetAccountNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldOffsetAccount, v))
}

// OffsetAccountIn applies the In predicate on the "offset_account" field.
func OffsetAccountIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldOffsetAccount, vs...))
}

// OffsetAccountNotIn applies the NotIn predicate on the "offset_account" field.
func OffsetAccountNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldOffsetAccount, vs...))
}

// OffsetAccountGT applies the GT predicate on the "offset_account" field.
func OffsetAccountGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldOffsetAccount, v))
}

// OffsetAccountGTE applies the GTE predicate on the "offset_account" field.
func OffsetAccountGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldOffsetAccount, v))
}

// OffsetAccountLT applies the LT predicate on the "offset_account" field.
func OffsetAccountLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldOffsetAccount, v))
}

// OffsetAccountLTE applies the LTE predicate on the "offset_account" field.
func OffsetAccountLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldOffsetAccount, v))
}

// OffsetAccountContains applies the Contains predicate on the "offset_account" field.
func OffsetAccountContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldOffsetAccount, v))
}

// OffsetAccountHasPrefix applies the HasPrefix predicate on the "offset_account" field.
func OffsetAccountHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldOffsetAccount, v))
}

// OffsetAccountHasSuffix applies the HasSuffix predicate on the "offset_account" field.
func OffsetAccountHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldOffsetAccount, v))
}

// OffsetAccountIsNil applies the IsNil predicate on the "offset_account" field.
func OffsetAccountIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldOffsetAccount))
}

// OffsetAccountNotNil applies the NotNil predicate on the "offset_account" field.
func OffsetAccountNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldOffsetAccount))
}

// OffsetAccountEqualFold applies the EqualFold predicate on the "offset_account" field.
func OffsetAccountEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldOffsetAccount, v))
}

// OffsetAccountContainsFold applies the ContainsFold predicate on the "offset_account" field.
func OffsetAccountContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldOffsetAccount, v))
}

// CostCenterEQ applies the EQ predicate on the "cost_center" field.
func CostCenterEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCostCenter, v))
}

// CostCenterNEQ applies the NEQ predicate on the "cost_center" field.
func CostCenterNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldCostCenter, v))
}

// CostCenterIn applies the In predicate on the "cost_center" field.
func CostCenterIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldCostCenter, vs...))
}

// CostCenterNotIn applies the NotIn predicate on the "cost_center" field.
func CostCenterNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldCostCenter, vs...))
}

// CostCenterGT applies the GT predicate on the "cost_center" field.
func CostCenterGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldCostCenter, v))
}

// CostCenterGTE applies the GTE predicate on the "cost_center" field.
func CostCenterGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldCostCenter, v))
}

// CostCenterLT applies the LT predicate on the "cost_center" field.
func CostCenterLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldCostCenter, v))
}

// CostCenterLTE applies the LTE predicate on the "cost_center" field.
func CostCenterLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldCostCenter, v))
}

// CostCenterContains applies the Contains predicate on the "cost_center" field.
func CostCenterContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldCostCenter, v))
}

// CostCenterHasPrefix applies the HasPrefix predicate on the "cost_center" field.
func CostCenterHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldCostCenter, v))
}

// CostCenterHasSuffix applies the HasSuffix predicate on the "cost_center" field.
func CostCenterHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldCostCenter, v))
}

// CostCenterIsNil applies the IsNil predicate on the "cost_center" field.
func CostCenterIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldCostCenter))
}

// CostCenterNotNil applies the NotNil predicate on the "cost_center" field.
func CostCenterNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldCostCenter))
}

// CostCenterEqualFold applies the EqualFold predicate on the "cost_center" field.
func CostCenterEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldCostCenter, v))
}

// CostCenterContainsFold applies the ContainsFold predicate on the "cost_center" field.
func CostCenterContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldCostCenter, v))
}

// BookingTextEQ applies the EQ predicate on the "booking_text" field.
func BookingTextEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldBookingText, v))
}

// BookingTextNEQ applies the NEQ predicate on the "booking_text" field.
func BookingTextNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldBookingText, v))
}

// BookingTextIn applies the In predicate on the "booking_text" field.
func BookingTextIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldBookingText, vs...))
}

// BookingTextNotIn applies the NotIn predicate on the "booking_text" field.
func BookingTextNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldBookingText, vs...))
}

// BookingTextGT applies the GT predicate on the "booking_text" field.
func BookingTextGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldBookingText, v))
}

// BookingTextGTE applies the GTE predicate on the "booking_text" field.
func BookingTextGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldBookingText, v))
}

// BookingTextLT applies the LT predicate on the "booking_text" field.
func BookingTextLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldBookingText, v))
}

// BookingTextLTE applies the LTE predicate on the "booking_text" field.
func BookingTextLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldBookingText, v))
}

// BookingTextContains applies the Contains predicate on the "booking_text" field.
func BookingTextContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldBookingText, v))
}

// BookingTextHasPrefix applies the HasPrefix predicate on the "booking_text" field.
func BookingTextHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldBookingText, v))
}

// BookingTextHasSuffix applies the HasSuffix predicate on the "booking_text" field.
func BookingTextHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldBookingText, v))
}

// BookingTextIsNil applies the IsNil predicate on the "booking_text" field.
func BookingTextIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldBookingText))
}

// BookingTextNotNil applies the NotNil predicate on the "booking_text" field.
func BookingTextNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldBookingText))
}

// BookingTextEqualFold applies the EqualFold predicate on the "booking_text" field.
func BookingTextEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldBookingText, v))
}

// BookingTextContainsFold applies the ContainsFold predicate on the "booking_text" field.
func BookingTextContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldBookingText, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationStatusGT applies the GT predicate on the "validation_status" field.
func ValidationStatusGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldValidationStatus, v))
}

// ValidationStatusGTE applies the GTE predicate on the "validation_status" field.
func ValidationStatusGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldValidationStatus, v))
}

// ValidationStatusLT applies the LT predicate on the "validation_status" field.
func ValidationStatusLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldValidationStatus, v))
}

// ValidationStatusLTE applies the LTE predicate on the "validation_status" field.
func ValidationStatusLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldValidationStatus, v))
}

// ValidationStatusContains applies the Contains predicate on the "validation_status" field.
func ValidationStatusContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldValidationStatus, v))
}

// ValidationStatusHasPrefix applies the HasPrefix predicate on the "validation_status" field.
func ValidationStatusHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldValidationStatus, v))
}

// ValidationStatusHasSuffix applies the HasSuffix predicate on the "validation_status" field.
func ValidationStatusHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldValidationStatus, v))
}

// ValidationStatusEqualFold applies the EqualFold predicate on the "validation_status" field.
func ValidationStatusEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldValidationStatus, v))
}

// ValidationStatusContainsFold applies the ContainsFold predicate on the "validation_status" field.
func ValidationStatusContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldValidationStatus, v))
}

// ApprovalStatusEQ applies the EQ predicate on the "approval_status" field.
func ApprovalStatusEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldApprovalStatus, v))
}

// ApprovalStatusNEQ applies the NEQ predicate on the "approval_status" field.
func ApprovalStatusNEQ(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldApprovalStatus, v))
}

// ApprovalStatusIn applies the In predicate on the "approval_status" field.
func ApprovalStatusIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldApprovalStatus, vs...))
}

// ApprovalStatusNotIn applies the NotIn predicate on the "approval_status" field.
func ApprovalStatusNotIn(vs ...string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldApprovalStatus, vs...))
}

// ApprovalStatusGT applies the GT predicate on the "approval_status" field.
func ApprovalStatusGT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldApprovalStatus, v))
}

// ApprovalStatusGTE applies the GTE predicate on the "approval_status" field.
func ApprovalStatusGTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldApprovalStatus, v))
}

// ApprovalStatusLT applies the LT predicate on the "approval_status" field.
func ApprovalStatusLT(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldApprovalStatus, v))
}

// ApprovalStatusLTE applies the LTE predicate on the "approval_status" field.
func ApprovalStatusLTE(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldApprovalStatus, v))
}

// ApprovalStatusContains applies the Contains predicate on the "approval_status" field.
func ApprovalStatusContains(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContains(FieldApprovalStatus, v))
}

// ApprovalStatusHasPrefix applies the HasPrefix predicate on the "approval_status" field.
func ApprovalStatusHasPrefix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasPrefix(FieldApprovalStatus, v))
}

// ApprovalStatusHasSuffix applies the HasSuffix predicate on the "approval_status" field.
func ApprovalStatusHasSuffix(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldHasSuffix(FieldApprovalStatus, v))
}

// ApprovalStatusEqualFold applies the EqualFold predicate on the "approval_status" field.
func ApprovalStatusEqualFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEqualFold(FieldApprovalStatus, v))
}

// ApprovalStatusContainsFold applies the ContainsFold predicate on the "approval_status" field.
func ApprovalStatusContainsFold(v string) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldContainsFold(FieldApprovalStatus, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldConfidence))
}

// HumanCorrectedEQ applies the EQ predicate on the "human_corrected" field.
func HumanCorrectedEQ(v bool) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldHumanCorrected, v))
}

// HumanCorrectedNEQ applies the NEQ predicate on the "human_corrected" field.
func HumanCorrectedNEQ(v bool) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldHumanCorrected, v))
}

// MatchedPatternIDEQ applies the EQ predicate on the "matched_pattern_id" field.
func MatchedPatternIDEQ(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldMatchedPatternID, v))
}

// MatchedPatternIDNEQ applies the NEQ predicate on the "matched_pattern_id" field.
func MatchedPatternIDNEQ(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldMatchedPatternID, v))
}

// MatchedPatternIDIn applies the In predicate on the "matched_pattern_id" field.
func MatchedPatternIDIn(vs ...uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldMatchedPatternID, vs...))
}

// MatchedPatternIDNotIn applies the NotIn predicate on the "matched_pattern_id" field.
func MatchedPatternIDNotIn(vs ...uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldMatchedPatternID, vs...))
}

// MatchedPatternIDGT applies the GT predicate on the "matched_pattern_id" field.
func MatchedPatternIDGT(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldMatchedPatternID, v))
}

// MatchedPatternIDGTE applies the GTE predicate on the "matched_pattern_id" field.
func MatchedPatternIDGTE(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldMatchedPatternID, v))
}

// MatchedPatternIDLT applies the LT predicate on the "matched_pattern_id" field.
func MatchedPatternIDLT(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldMatchedPatternID, v))
}

// MatchedPatternIDLTE applies the LTE predicate on the "matched_pattern_id" field.
func MatchedPatternIDLTE(v uuid.UUID) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldMatchedPatternID, v))
}

// MatchedPatternIDIsNil applies the IsNil predicate on the "matched_pattern_id" field.
func MatchedPatternIDIsNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIsNull(FieldMatchedPatternID))
}

// MatchedPatternIDNotNil applies the NotNil predicate on the "matched_pattern_id" field.
func MatchedPatternIDNotNil() predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotNull(FieldMatchedPatternID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BelegRecord {
	return predicate.BelegRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.BelegRecord {
	return predicate.BelegRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.BelegRecord {
	return predicate.BelegRecord(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BelegRecord) predicate.BelegRecord {
	return predicate.BelegRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BelegRecord) predicate.BelegRecord {
	return predicate.BelegRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BelegRecord) predicate.BelegRecord {
	return predicate.BelegRecord(sql.NotPredicates(p))
}
