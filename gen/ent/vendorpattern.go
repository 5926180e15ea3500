// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
	"github.com/google/uuid"
)

// VendorPattern is the model entity for the VendorPattern schema.
type VendorPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// CanonicalName holds the value of the "canonical_name" field.
	CanonicalName string `json:"canonical_name,omitempty"`
	// NameVariants holds the value of the "name_variants" field.
	NameVariants []string `json:"name_variants,omitempty"`
	// KnownTaxIdentifiers holds the value of the "known_tax_identifiers" field.
	KnownTaxIdentifiers []string `json:"known_tax_identifiers,omitempty"`
	// DefaultAccount holds the value of the "default_account" field.
	DefaultAccount *string `json:"default_account,omitempty"`
	// DefaultCostCenter holds the value of the "default_cost_center" field.
	DefaultCostCenter *string `json:"default_cost_center,omitempty"`
	// MatchCount holds the value of the "match_count" field.
	MatchCount int `json:"match_count,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// LastAmount holds the value of the "last_amount" field.
	LastAmount *float64 `json:"last_amount,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VendorPatternQuery when eager-loading is set.
	Edges        VendorPatternEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VendorPatternEdges holds the relations/edges for other nodes in the graph.
type VendorPatternEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VendorPatternEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VendorPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vendorpattern.FieldNameVariants, vendorpattern.FieldKnownTaxIdentifiers:
			values[i] = new([]byte)
		case vendorpattern.FieldConfidence, vendorpattern.FieldLastAmount:
			values[i] = new(sql.NullFloat64)
		case vendorpattern.FieldMatchCount:
			values[i] = new(sql.NullInt64)
		case vendorpattern.FieldNormalizedName, vendorpattern.FieldCanonicalName, vendorpattern.FieldDefaultAccount, vendorpattern.FieldDefaultCostCenter:
			values[i] = new(sql.NullString)
		case vendorpattern.FieldLastSeen:
			values[i] = new(sql.NullTime)
		case vendorpattern.FieldID, vendorpattern.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VendorPattern fields.
func (_m *VendorPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vendorpattern.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vendorpattern.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case vendorpattern.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case vendorpattern.FieldCanonicalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_name", values[i])
			} else if value.Valid {
				_m.CanonicalName = value.String
			}
		case vendorpattern.FieldNameVariants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field name_variants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NameVariants); err != nil {
					return fmt.Errorf("unmarshal field name_variants: %w", err)
				}
			}
		case vendorpattern.FieldKnownTaxIdentifiers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field known_tax_identifiers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KnownTaxIdentifiers); err != nil {
					return fmt.Errorf("unmarshal field known_tax_identifiers: %w", err)
				}
			}
		case vendorpattern.FieldDefaultAccount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_account", values[i])
			} else if value.Valid {
				_m.DefaultAccount = new(string)
				*_m.DefaultAccount = value.String
			}
		case vendorpattern.FieldDefaultCostCenter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field default_cost_center", values[i])
			} else if value.Valid {
				_m.DefaultCostCenter = new(string)
				*_m.DefaultCostCenter = value.String
			}
		case vendorpattern.FieldMatchCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field match_count", values[i])
			} else if value.Valid {
				_m.MatchCount = int(value.Int64)
			}
		case vendorpattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case vendorpattern.FieldLastAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field last_amount", values[i])
			} else if value.Valid {
				_m.LastAmount = new(float64)
				*_m.LastAmount = value.Float64
			}
		case vendorpattern.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VendorPattern.
// This includes values selected through modifiers, order, etc.
func (_m *VendorPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the VendorPattern entity.
func (_m *VendorPattern) QueryCompany() *CompanyQuery {
	return NewVendorPatternClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this VendorPattern.
// Note that you need to call VendorPattern.Unwrap() before calling this method if this VendorPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VendorPattern) Update() *VendorPatternUpdateOne {
	return NewVendorPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VendorPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VendorPattern) Unwrap() *VendorPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VendorPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VendorPattern) String() string {
	var builder strings.Builder
	builder.WriteString("VendorPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("canonical_name=")
	builder.WriteString(_m.CanonicalName)
	builder.WriteString(", ")
	builder.WriteString("name_variants=")
	builder.WriteString(fmt.Sprintf("%v", _m.NameVariants))
	builder.WriteString(", ")
	builder.WriteString("known_tax_identifiers=")
	builder.WriteString(fmt.Sprintf("%v", _m.KnownTaxIdentifiers))
	builder.WriteString(", ")
	if v := _m.DefaultAccount; v != nil {
		builder.WriteString("default_account=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DefaultCostCenter; v != nil {
		builder.WriteString("default_cost_center=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("match_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchCount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.LastAmount; v != nil {
		builder.WriteString("last_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VendorPatterns is a parsable slice of VendorPattern.
type VendorPatterns []*VendorPattern
