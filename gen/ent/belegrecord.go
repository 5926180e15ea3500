// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/google/uuid"
)

// BelegRecord is the model entity for the BelegRecord schema.
type BelegRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// DocumentNumber holds the value of the "document_number" field.
	DocumentNumber string `json:"document_number,omitempty"`
	// DocumentDate holds the value of the "document_date" field.
	DocumentDate time.Time `json:"document_date,omitempty"`
	// ReceiptDate holds the value of the "receipt_date" field.
	ReceiptDate time.Time `json:"receipt_date,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName string `json:"vendor_name,omitempty"`
	// NetAmount holds the value of the "net_amount" field.
	NetAmount *float64 `json:"net_amount,omitempty"`
	// VatAmount holds the value of the "vat_amount" field.
	VatAmount *float64 `json:"vat_amount,omitempty"`
	// GrossAmount holds the value of the "gross_amount" field.
	GrossAmount *float64 `json:"gross_amount,omitempty"`
	// VatRate holds the value of the "vat_rate" field.
	VatRate *float64 `json:"vat_rate,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// Account holds the value of the "account" field.
	Account *string `json:"account,omitempty"`
	// OffsetAccount holds the value of the "offset_account" field.
	OffsetAccount *string `json:"offset_account,omitempty"`
	// CostCenter holds the value of the "cost_center" field.
	CostCenter *string `json:"cost_center,omitempty"`
	// BookingText holds the value of the "booking_text" field.
	BookingText *string `json:"booking_text,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus string `json:"validation_status,omitempty"`
	// ApprovalStatus holds the value of the "approval_status" field.
	ApprovalStatus string `json:"approval_status,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// HumanCorrected holds the value of the "human_corrected" field.
	HumanCorrected bool `json:"human_corrected,omitempty"`
	// MatchedPatternID holds the value of the "matched_pattern_id" field.
	MatchedPatternID *uuid.UUID `json:"matched_pattern_id,omitempty"`
	// RecordJSON holds the value of the "record_json" field.
	RecordJSON json.RawMessage `json:"record_json,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BelegRecordQuery when eager-loading is set.
	Edges        BelegRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BelegRecordEdges holds the relations/edges for other nodes in the graph.
type BelegRecordEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BelegRecordEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BelegRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case belegrecord.FieldMatchedPatternID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case belegrecord.FieldRecordJSON:
			values[i] = new([]byte)
		case belegrecord.FieldHumanCorrected:
			values[i] = new(sql.NullBool)
		case belegrecord.FieldNetAmount, belegrecord.FieldVatAmount, belegrecord.FieldGrossAmount, belegrecord.FieldVatRate, belegrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case belegrecord.FieldDocumentNumber, belegrecord.FieldDocumentType, belegrecord.FieldVendorName, belegrecord.FieldCurrencyCode, belegrecord.FieldAccount, belegrecord.FieldOffsetAccount, belegrecord.FieldCostCenter, belegrecord.FieldBookingText, belegrecord.FieldValidationStatus, belegrecord.FieldApprovalStatus:
			values[i] = new(sql.NullString)
		case belegrecord.FieldDocumentDate, belegrecord.FieldReceiptDate, belegrecord.FieldCreatedAt, belegrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case belegrecord.FieldID, belegrecord.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BelegRecord fields.
func (_m *BelegRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case belegrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case belegrecord.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case belegrecord.FieldDocumentNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_number", values[i])
			} else if value.Valid {
				_m.DocumentNumber = value.String
			}
		case belegrecord.FieldDocumentDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field document_date", values[i])
			} else if value.Valid {
				_m.DocumentDate = value.Time
			}
		case belegrecord.FieldReceiptDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_date", values[i])
			} else if value.Valid {
				_m.ReceiptDate = value.Time
			}
		case belegrecord.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case belegrecord.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = value.String
			}
		case belegrecord.FieldNetAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field net_amount", values[i])
			} else if value.Valid {
				_m.NetAmount = new(float64)
				*_m.NetAmount = value.Float64
			}
		case belegrecord.FieldVatAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_amount", values[i])
			} else if value.Valid {
				_m.VatAmount = new(float64)
				*_m.VatAmount = value.Float64
			}
		case belegrecord.FieldGrossAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_amount", values[i])
			} else if value.Valid {
				_m.GrossAmount = new(float64)
				*_m.GrossAmount = value.Float64
			}
		case belegrecord.FieldVatRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_rate", values[i])
			} else if value.Valid {
				_m.VatRate = new(float64)
				*_m.VatRate = value.Float64
			}
		case belegrecord.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case belegrecord.FieldAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account", values[i])
			} else if value.Valid {
				_m.Account = new(string)
				*_m.Account = value.String
			}
		case belegrecord.FieldOffsetAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offset_account", values[i])
			} else if value.Valid {
				_m.OffsetAccount = new(string)
				*_m.OffsetAccount = value.String
			}
		case belegrecord.FieldCostCenter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cost_center", values[i])
			} else if value.Valid {
				_m.CostCenter = new(string)
				*_m.CostCenter = value.String
			}
		case belegrecord.FieldBookingText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booking_text", values[i])
			} else if value.Valid {
				_m.BookingText = new(string)
				*_m.BookingText = value.String
			}
		case belegrecord.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = value.String
			}
		case belegrecord.FieldApprovalStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approval_status", values[i])
			} else if value.Valid {
				_m.ApprovalStatus = value.String
			}
		case belegrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case belegrecord.FieldHumanCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field human_corrected", values[i])
			} else if value.Valid {
				_m.HumanCorrected = value.Bool
			}
		case belegrecord.FieldMatchedPatternID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field matched_pattern_id", values[i])
			} else if value.Valid {
				_m.MatchedPatternID = new(uuid.UUID)
				*_m.MatchedPatternID = *value.S.(*uuid.UUID)
			}
		case belegrecord.FieldRecordJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field record_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecordJSON); err != nil {
					return fmt.Errorf("unmarshal field record_json: %w", err)
				}
			}
		case belegrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case belegrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BelegRecord.
// This includes values selected through modifiers, order, etc.
func (_m *BelegRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the BelegRecord entity.
func (_m *BelegRecord) QueryCompany() *CompanyQuery {
	return NewBelegRecordClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this BelegRecord.
// Note that you need to call BelegRecord.Unwrap() before calling this method if this BelegRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BelegRecord) Update() *BelegRecordUpdateOne {
	return NewBelegRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BelegRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BelegRecord) Unwrap() *BelegRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BelegRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BelegRecord) String() string {
	var builder strings.Builder
	builder.WriteString("BelegRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("document_number=")
	builder.WriteString(_m.DocumentNumber)
	builder.WriteString(", ")
	builder.WriteString("document_date=")
	builder.WriteString(_m.DocumentDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("receipt_date=")
	builder.WriteString(_m.ReceiptDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("vendor_name=")
	builder.WriteString(_m.VendorName)
	builder.WriteString(", ")
	if v := _m.NetAmount; v != nil {
		builder.WriteString("net_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VatAmount; v != nil {
		builder.WriteString("vat_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.GrossAmount; v != nil {
		builder.WriteString("gross_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VatRate; v != nil {
		builder.WriteString("vat_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	if v := _m.Account; v != nil {
		builder.WriteString("account=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OffsetAccount; v != nil {
		builder.WriteString("offset_account=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CostCenter; v != nil {
		builder.WriteString("cost_center=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BookingText; v != nil {
		builder.WriteString("booking_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(_m.ValidationStatus)
	builder.WriteString(", ")
	builder.WriteString("approval_status=")
	builder.WriteString(_m.ApprovalStatus)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("human_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.HumanCorrected))
	builder.WriteString(", ")
	if v := _m.MatchedPatternID; v != nil {
		builder.WriteString("matched_pattern_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("record_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordJSON))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BelegRecords is a parsable slice of BelegRecord.
type BelegRecords []*BelegRecord
