// Code generated by ent, DO NOT EDIT.

package vendorpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vendorpattern type in the database.
	Label = "vendor_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldCanonicalName holds the string denoting the canonical_name field in the database.
	FieldCanonicalName = "canonical_name"
	// FieldNameVariants holds the string denoting the name_variants field in the database.
	FieldNameVariants = "name_variants"
	// FieldKnownTaxIdentifiers holds the string denoting the known_tax_identifiers field in the database.
	FieldKnownTaxIdentifiers = "known_tax_identifiers"
	// FieldDefaultAccount holds the string denoting the default_account field in the database.
	FieldDefaultAccount = "default_account"
	// FieldDefaultCostCenter holds the string denoting the default_cost_center field in the database.
	FieldDefaultCostCenter = "default_cost_center"
	// FieldMatchCount holds the string denoting the match_count field in the database.
	FieldMatchCount = "match_count"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLastAmount holds the string denoting the last_amount field in the database.
	FieldLastAmount = "last_amount"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// Table holds the table name of the vendorpattern in the database.
	Table = "vendor_patterns"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "vendor_patterns"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
)

// Columns holds all SQL columns for vendorpattern fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldNormalizedName,
	FieldCanonicalName,
	FieldNameVariants,
	FieldKnownTaxIdentifiers,
	FieldDefaultAccount,
	FieldDefaultCostCenter,
	FieldMatchCount,
	FieldConfidence,
	FieldLastAmount,
	FieldLastSeen,
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
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	CanonicalNameValidator func(string) error
	// DefaultMatchCount holds the default value on creation for the "match_count" field.
	DefaultMatchCount int
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VendorPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByCanonicalName orders the results by the canonical_name field.
func ByCanonicalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalName, opts...).ToFunc()
}

// ByDefaultAccount orders the results by the default_account field.
func ByDefaultAccount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultAccount, opts...).ToFunc()
}

// ByDefaultCostCenter orders the results by the default_cost_center field.
func ByDefaultCostCenter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultCostCenter, opts...).ToFunc()
}

// ByMatchCount orders the results by the match_count field.
func ByMatchCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchCount, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLastAmount orders the results by the last_amount field.
func ByLastAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAmount, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
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
