// Code generated by ent, DO NOT EDIT.

package vendorpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldCompanyID, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldNormalizedName, v))
}

// CanonicalName applies equality check predicate on the "canonical_name" field. It's identical to CanonicalNameEQ.
func CanonicalName(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldCanonicalName, v))
}

// DefaultAccount applies equality check predicate on the "default_account" field. It's identical to DefaultAccountEQ.
func DefaultAccount(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldDefaultAccount, v))
}

// DefaultCostCenter applies equality check predicate on the "default_cost_center" field. It's identical to DefaultCostCenterEQ.
func DefaultCostCenter(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldDefaultCostCenter, v))
}

// MatchCount applies equality check predicate on the "match_count" field. It's identical to MatchCountEQ.
func MatchCount(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldMatchCount, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldConfidence, v))
}

// LastAmount applies equality check predicate on the "last_amount" field. It's identical to LastAmountEQ.
func LastAmount(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldLastAmount, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldLastSeen, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldCompanyID, vs...))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContainsFold(FieldNormalizedName, v))
}

// CanonicalNameEQ applies the EQ predicate on the "canonical_name" field.
func CanonicalNameEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldCanonicalName, v))
}

// CanonicalNameNEQ applies the NEQ predicate on the "canonical_name" field.
func CanonicalNameNEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldCanonicalName, v))
}

// CanonicalNameIn applies the In predicate on the "canonical_name" field.
func CanonicalNameIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldCanonicalName, vs...))
}

// CanonicalNameNotIn applies the NotIn predicate on the "canonical_name" field.
func CanonicalNameNotIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldCanonicalName, vs...))
}

// CanonicalNameGT applies the GT predicate on the "canonical_name" field.
func CanonicalNameGT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldCanonicalName, v))
}

// CanonicalNameGTE applies the GTE predicate on the "canonical_name" field.
func CanonicalNameGTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldCanonicalName, v))
}

// CanonicalNameLT applies the LT predicate on the "canonical_name" field.
func CanonicalNameLT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldCanonicalName, v))
}

// CanonicalNameLTE applies the LTE predicate on the "canonical_name" field.
func CanonicalNameLTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldCanonicalName, v))
}

// CanonicalNameContains applies the Contains predicate on the "canonical_name" field.
func CanonicalNameContains(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContains(FieldCanonicalName, v))
}

// CanonicalNameHasPrefix applies the HasPrefix predicate on the "canonical_name" field.
func CanonicalNameHasPrefix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasPrefix(FieldCanonicalName, v))
}

// CanonicalNameHasSuffix applies the HasSuffix predicate on the "canonical_name" field.
func CanonicalNameHasSuffix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasSuffix(FieldCanonicalName, v))
}

// CanonicalNameEqualFold applies the EqualFold predicate on the "canonical_name" field.
func CanonicalNameEqualFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEqualFold(FieldCanonicalName, v))
}

// CanonicalNameContainsFold applies the ContainsFold predicate on the "canonical_name" field.
func CanonicalNameContainsFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContainsFold(FieldCanonicalName, v))
}

// NameVariantsIsNil applies the IsNil predicate on the "name_variants" field.
func NameVariantsIsNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIsNull(FieldNameVariants))
}

// NameVariantsNotNil applies the NotNil predicate on the "name_variants" field.
func NameVariantsNotNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotNull(FieldNameVariants))
}

// KnownTaxIdentifiersIsNil applies the IsNil predicate on the "known_tax_identifiers" field.
func KnownTaxIdentifiersIsNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIsNull(FieldKnownTaxIdentifiers))
}

// KnownTaxIdentifiersNotNil applies the NotNil predicate on the "known_tax_identifiers" field.
func KnownTaxIdentifiersNotNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotNull(FieldKnownTaxIdentifiers))
}

// DefaultAccountEQ applies the EQ predicate on the "default_account" field.
func DefaultAccountEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldDefaultAccount, v))
}

// DefaultAccountNEQ applies the NEQ predicate on the "default_account" field.
func DefaultAccountNEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldDefaultAccount, v))
}

// DefaultAccountIn applies the In predicate on the "default_account" field.
func DefaultAccountIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldDefaultAccount, vs...))
}

// DefaultAccountNotIn applies the NotIn predicate on the "default_account" field.
func DefaultAccountNotIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldDefaultAccount, vs...))
}

// DefaultAccountGT applies the GT predicate on the "default_account" field.
func DefaultAccountGT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldDefaultAccount, v))
}

// DefaultAccountGTE applies the GTE predicate on the "default_account" field.
func DefaultAccountGTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldDefaultAccount, v))
}

// DefaultAccountLT applies the LT predicate on the "default_account" field.
func DefaultAccountLT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldDefaultAccount, v))
}

// DefaultAccountLTE applies the LTE predicate on the "default_account" field.
func DefaultAccountLTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldDefaultAccount, v))
}

// DefaultAccountContains applies the Contains predicate on the "default_account" field.
func DefaultAccountContains(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContains(FieldDefaultAccount, v))
}

// DefaultAccountHasPrefix applies the HasPrefix predicate on the "default_account" field.
func DefaultAccountHasPrefix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasPrefix(FieldDefaultAccount, v))
}

// DefaultAccountHasSuffix applies the HasSuffix predicate on the "default_account" field.
func DefaultAccountHasSuffix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasSuffix(FieldDefaultAccount, v))
}

// DefaultAccountIsNil applies the IsNil predicate on the "default_account" field.
func DefaultAccountIsNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIsNull(FieldDefaultAccount))
}

// DefaultAccountNotNil applies the NotNil predicate on the "default_account" field.
func DefaultAccountNotNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotNull(FieldDefaultAccount))
}

// DefaultAccountEqualFold applies the EqualFold predicate on the "default_account" field.
func DefaultAccountEqualFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEqualFold(FieldDefaultAccount, v))
}

// DefaultAccountContainsFold applies the ContainsFold predicate on the "default_account" field.
func DefaultAccountContainsFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContainsFold(FieldDefaultAccount, v))
}

// DefaultCostCenterEQ applies the EQ predicate on the "default_cost_center" field.
func DefaultCostCenterEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldDefaultCostCenter, v))
}

// DefaultCostCenterNEQ applies the NEQ predicate on the "default_cost_center" field.
func DefaultCostCenterNEQ(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldDefaultCostCenter, v))
}

// DefaultCostCenterIn applies the In predicate on the "default_cost_center" field.
func DefaultCostCenterIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldDefaultCostCenter, vs...))
}

// DefaultCostCenterNotIn applies the NotIn predicate on the "default_cost_center" field.
func DefaultCostCenterNotIn(vs ...string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldDefaultCostCenter, vs...))
}

// DefaultCostCenterGT applies the GT predicate on the "default_cost_center" field.
func DefaultCostCenterGT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldDefaultCostCenter, v))
}

// DefaultCostCenterGTE applies the GTE predicate on the "default_cost_center" field.
func DefaultCostCenterGTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldDefaultCostCenter, v))
}

// DefaultCostCenterLT applies the LT predicate on the "default_cost_center" field.
func DefaultCostCenterLT(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldDefaultCostCenter, v))
}

// DefaultCostCenterLTE applies the LTE predicate on the "default_cost_center" field.
func DefaultCostCenterLTE(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldDefaultCostCenter, v))
}

// DefaultCostCenterContains applies the Contains predicate on the "default_cost_center" field.
func DefaultCostCenterContains(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContains(FieldDefaultCostCenter, v))
}

// DefaultCostCenterHasPrefix applies the HasPrefix predicate on the "default_cost_center" field.
func DefaultCostCenterHasPrefix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasPrefix(FieldDefaultCostCenter, v))
}

// DefaultCostCenterHasSuffix applies the HasSuffix predicate on the "default_cost_center" field.
func DefaultCostCenterHasSuffix(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldHasSuffix(FieldDefaultCostCenter, v))
}

// DefaultCostCenterIsNil applies the IsNil predicate on the "default_cost_center" field.
func DefaultCostCenterIsNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIsNull(FieldDefaultCostCenter))
}

// DefaultCostCenterNotNil applies the NotNil predicate on the "default_cost_center" field.
func DefaultCostCenterNotNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotNull(FieldDefaultCostCenter))
}

// DefaultCostCenterEqualFold applies the EqualFold predicate on the "default_cost_center" field.
func DefaultCostCenterEqualFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEqualFold(FieldDefaultCostCenter, v))
}

// DefaultCostCenterContainsFold applies the ContainsFold predicate on the "default_cost_center" field.
func DefaultCostCenterContainsFold(v string) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldContainsFold(FieldDefaultCostCenter, v))
}

// MatchCountEQ applies the EQ predicate on the "match_count" field.
func MatchCountEQ(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldMatchCount, v))
}

// MatchCountNEQ applies the NEQ predicate on the "match_count" field.
func MatchCountNEQ(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldMatchCount, v))
}

// MatchCountIn applies the In predicate on the "match_count" field.
func MatchCountIn(vs ...int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldMatchCount, vs...))
}

// MatchCountNotIn applies the NotIn predicate on the "match_count" field.
func MatchCountNotIn(vs ...int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldMatchCount, vs...))
}

// MatchCountGT applies the GT predicate on the "match_count" field.
func MatchCountGT(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldMatchCount, v))
}

// MatchCountGTE applies the GTE predicate on the "match_count" field.
func MatchCountGTE(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldMatchCount, v))
}

// MatchCountLT applies the LT predicate on the "match_count" field.
func MatchCountLT(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldMatchCount, v))
}

// MatchCountLTE applies the LTE predicate on the "match_count" field.
func MatchCountLTE(v int) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldMatchCount, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldConfidence, v))
}

// LastAmountEQ applies the EQ predicate on the "last_amount" field.
func LastAmountEQ(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldLastAmount, v))
}

// LastAmountNEQ applies the NEQ predicate on the "last_amount" field.
func LastAmountNEQ(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldLastAmount, v))
}

// LastAmountIn applies the In predicate on the "last_amount" field.
func LastAmountIn(vs ...float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldLastAmount, vs...))
}

// LastAmountNotIn applies the NotIn predicate on the "last_amount" field.
func LastAmountNotIn(vs ...float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldLastAmount, vs...))
}

// LastAmountGT applies the GT predicate on the "last_amount" field.
func LastAmountGT(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldLastAmount, v))
}

// LastAmountGTE applies the GTE predicate on the "last_amount" field.
func LastAmountGTE(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldLastAmount, v))
}

// LastAmountLT applies the LT predicate on the "last_amount" field.
func LastAmountLT(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldLastAmount, v))
}

// LastAmountLTE applies the LTE predicate on the "last_amount" field.
func LastAmountLTE(v float64) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldLastAmount, v))
}

// LastAmountIsNil applies the IsNil predicate on the "last_amount" field.
func LastAmountIsNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIsNull(FieldLastAmount))
}

// LastAmountNotNil applies the NotNil predicate on the "last_amount" field.
func LastAmountNotNil() predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotNull(FieldLastAmount))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.VendorPattern {
	return predicate.VendorPattern(sql.FieldLTE(FieldLastSeen, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.VendorPattern {
	return predicate.VendorPattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.VendorPattern {
	return predicate.VendorPattern(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VendorPattern) predicate.VendorPattern {
	return predicate.VendorPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VendorPattern) predicate.VendorPattern {
	return predicate.VendorPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VendorPattern) predicate.VendorPattern {
	return predicate.VendorPattern(sql.NotPredicates(p))
}
