// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
	"github.com/google/uuid"
)

// VendorPatternUpdate is the builder for updating VendorPattern entities.
type VendorPatternUpdate struct {
	config
	hooks     []Hook
	mutation  *VendorPatternMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the VendorPatternUpdate builder.
func (_u *VendorPatternUpdate) Where(ps ...predicate.VendorPattern) *VendorPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *VendorPatternUpdate) SetCompanyID(v uuid.UUID) *VendorPatternUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableCompanyID(v *uuid.UUID) *VendorPatternUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *VendorPatternUpdate) SetNormalizedName(v string) *VendorPatternUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableNormalizedName(v *string) *VendorPatternUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *VendorPatternUpdate) SetCanonicalName(v string) *VendorPatternUpdate {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableCanonicalName(v *string) *VendorPatternUpdate {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetNameVariants sets the "name_variants" field.
func (_u *VendorPatternUpdate) SetNameVariants(v []string) *VendorPatternUpdate {
	_u.mutation.SetNameVariants(v)
	return _u
}

// AppendNameVariants appends value to the "name_variants" field.
func (_u *VendorPatternUpdate) AppendNameVariants(v []string) *VendorPatternUpdate {
	_u.mutation.AppendNameVariants(v)
	return _u
}

// ClearNameVariants clears the value of the "name_variants" field.
func (_u *VendorPatternUpdate) ClearNameVariants() *VendorPatternUpdate {
	_u.mutation.ClearNameVariants()
	return _u
}

// SetKnownTaxIdentifiers sets the "known_tax_identifiers" field.
func (_u *VendorPatternUpdate) SetKnownTaxIdentifiers(v []string) *VendorPatternUpdate {
	_u.mutation.SetKnownTaxIdentifiers(v)
	return _u
}

// AppendKnownTaxIdentifiers appends value to the "known_tax_identifiers" field.
func (_u *VendorPatternUpdate) AppendKnownTaxIdentifiers(v []string) *VendorPatternUpdate {
	_u.mutation.AppendKnownTaxIdentifiers(v)
	return _u
}

// ClearKnownTaxIdentifiers clears the value of the "known_tax_identifiers" field.
func (_u *VendorPatternUpdate) ClearKnownTaxIdentifiers() *VendorPatternUpdate {
	_u.mutation.ClearKnownTaxIdentifiers()
	return _u
}

// SetDefaultAccount sets the "default_account" field.
func (_u *VendorPatternUpdate) SetDefaultAccount(v string) *VendorPatternUpdate {
	_u.mutation.SetDefaultAccount(v)
	return _u
}

// SetNillableDefaultAccount sets the "default_account" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableDefaultAccount(v *string) *VendorPatternUpdate {
	if v != nil {
		_u.SetDefaultAccount(*v)
	}
	return _u
}

// ClearDefaultAccount clears the value of the "default_account" field.
func (_u *VendorPatternUpdate) ClearDefaultAccount() *VendorPatternUpdate {
	_u.mutation.ClearDefaultAccount()
	return _u
}

// SetDefaultCostCenter sets the "default_cost_center" field.
func (_u *VendorPatternUpdate) SetDefaultCostCenter(v string) *VendorPatternUpdate {
	_u.mutation.SetDefaultCostCenter(v)
	return _u
}

// SetNillableDefaultCostCenter sets the "default_cost_center" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableDefaultCostCenter(v *string) *VendorPatternUpdate {
	if v != nil {
		_u.SetDefaultCostCenter(*v)
	}
	return _u
}

// ClearDefaultCostCenter clears the value of the "default_cost_center" field.
func (_u *VendorPatternUpdate) ClearDefaultCostCenter() *VendorPatternUpdate {
	_u.mutation.ClearDefaultCostCenter()
	return _u
}

// SetMatchCount sets the "match_count" field.
func (_u *VendorPatternUpdate) SetMatchCount(v int) *VendorPatternUpdate {
	_u.mutation.ResetMatchCount()
	_u.mutation.SetMatchCount(v)
	return _u
}

// SetNillableMatchCount sets the "match_count" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableMatchCount(v *int) *VendorPatternUpdate {
	if v != nil {
		_u.SetMatchCount(*v)
	}
	return _u
}

// AddMatchCount adds value to the "match_count" field.
func (_u *VendorPatternUpdate) AddMatchCount(v int) *VendorPatternUpdate {
	_u.mutation.AddMatchCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VendorPatternUpdate) SetConfidence(v float64) *VendorPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableConfidence(v *float64) *VendorPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VendorPatternUpdate) AddConfidence(v float64) *VendorPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastAmount sets the "last_amount" field.
func (_u *VendorPatternUpdate) SetLastAmount(v float64) *VendorPatternUpdate {
	_u.mutation.ResetLastAmount()
	_u.mutation.SetLastAmount(v)
	return _u
}

// SetNillableLastAmount sets the "last_amount" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableLastAmount(v *float64) *VendorPatternUpdate {
	if v != nil {
		_u.SetLastAmount(*v)
	}
	return _u
}

// AddLastAmount adds value to the "last_amount" field.
func (_u *VendorPatternUpdate) AddLastAmount(v float64) *VendorPatternUpdate {
	_u.mutation.AddLastAmount(v)
	return _u
}

// ClearLastAmount clears the value of the "last_amount" field.
func (_u *VendorPatternUpdate) ClearLastAmount() *VendorPatternUpdate {
	_u.mutation.ClearLastAmount()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *VendorPatternUpdate) SetLastSeen(v time.Time) *VendorPatternUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *VendorPatternUpdate) SetNillableLastSeen(v *time.Time) *VendorPatternUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *VendorPatternUpdate) SetCompany(v *Company) *VendorPatternUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the VendorPatternMutation object of the builder.
func (_u *VendorPatternUpdate) Mutation() *VendorPatternMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *VendorPatternUpdate) ClearCompany() *VendorPatternUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorPatternUpdate) check() error {
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := vendorpattern.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "VendorPattern.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := vendorpattern.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "VendorPattern.canonical_name": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorPattern.company"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *VendorPatternUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *VendorPatternUpdate {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *VendorPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendorpattern.Table, vendorpattern.Columns, sqlgraph.NewFieldSpec(vendorpattern.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(vendorpattern.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(vendorpattern.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameVariants(); ok {
		_spec.SetField(vendorpattern.FieldNameVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNameVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendorpattern.FieldNameVariants, value)
		})
	}
	if _u.mutation.NameVariantsCleared() {
		_spec.ClearField(vendorpattern.FieldNameVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.KnownTaxIdentifiers(); ok {
		_spec.SetField(vendorpattern.FieldKnownTaxIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKnownTaxIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendorpattern.FieldKnownTaxIdentifiers, value)
		})
	}
	if _u.mutation.KnownTaxIdentifiersCleared() {
		_spec.ClearField(vendorpattern.FieldKnownTaxIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultAccount(); ok {
		_spec.SetField(vendorpattern.FieldDefaultAccount, field.TypeString, value)
	}
	if _u.mutation.DefaultAccountCleared() {
		_spec.ClearField(vendorpattern.FieldDefaultAccount, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCostCenter(); ok {
		_spec.SetField(vendorpattern.FieldDefaultCostCenter, field.TypeString, value)
	}
	if _u.mutation.DefaultCostCenterCleared() {
		_spec.ClearField(vendorpattern.FieldDefaultCostCenter, field.TypeString)
	}
	if value, ok := _u.mutation.MatchCount(); ok {
		_spec.SetField(vendorpattern.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchCount(); ok {
		_spec.AddField(vendorpattern.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(vendorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(vendorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAmount(); ok {
		_spec.SetField(vendorpattern.FieldLastAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastAmount(); ok {
		_spec.AddField(vendorpattern.FieldLastAmount, field.TypeFloat64, value)
	}
	if _u.mutation.LastAmountCleared() {
		_spec.ClearField(vendorpattern.FieldLastAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(vendorpattern.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorpattern.CompanyTable,
			Columns: []string{vendorpattern.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorpattern.CompanyTable,
			Columns: []string{vendorpattern.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorPatternUpdateOne is the builder for updating a single VendorPattern entity.
type VendorPatternUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *VendorPatternMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetCompanyID sets the "company_id" field.
func (_u *VendorPatternUpdateOne) SetCompanyID(v uuid.UUID) *VendorPatternUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableCompanyID(v *uuid.UUID) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *VendorPatternUpdateOne) SetNormalizedName(v string) *VendorPatternUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableNormalizedName(v *string) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetCanonicalName sets the "canonical_name" field.
func (_u *VendorPatternUpdateOne) SetCanonicalName(v string) *VendorPatternUpdateOne {
	_u.mutation.SetCanonicalName(v)
	return _u
}

// SetNillableCanonicalName sets the "canonical_name" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableCanonicalName(v *string) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetCanonicalName(*v)
	}
	return _u
}

// SetNameVariants sets the "name_variants" field.
func (_u *VendorPatternUpdateOne) SetNameVariants(v []string) *VendorPatternUpdateOne {
	_u.mutation.SetNameVariants(v)
	return _u
}

// AppendNameVariants appends value to the "name_variants" field.
func (_u *VendorPatternUpdateOne) AppendNameVariants(v []string) *VendorPatternUpdateOne {
	_u.mutation.AppendNameVariants(v)
	return _u
}

// ClearNameVariants clears the value of the "name_variants" field.
func (_u *VendorPatternUpdateOne) ClearNameVariants() *VendorPatternUpdateOne {
	_u.mutation.ClearNameVariants()
	return _u
}

// SetKnownTaxIdentifiers sets the "known_tax_identifiers" field.
func (_u *VendorPatternUpdateOne) SetKnownTaxIdentifiers(v []string) *VendorPatternUpdateOne {
	_u.mutation.SetKnownTaxIdentifiers(v)
	return _u
}

// AppendKnownTaxIdentifiers appends value to the "known_tax_identifiers" field.
func (_u *VendorPatternUpdateOne) AppendKnownTaxIdentifiers(v []string) *VendorPatternUpdateOne {
	_u.mutation.AppendKnownTaxIdentifiers(v)
	return _u
}

// ClearKnownTaxIdentifiers clears the value of the "known_tax_identifiers" field.
func (_u *VendorPatternUpdateOne) ClearKnownTaxIdentifiers() *VendorPatternUpdateOne {
	_u.mutation.ClearKnownTaxIdentifiers()
	return _u
}

// SetDefaultAccount sets the "default_account" field.
func (_u *VendorPatternUpdateOne) SetDefaultAccount(v string) *VendorPatternUpdateOne {
	_u.mutation.SetDefaultAccount(v)
	return _u
}

// SetNillableDefaultAccount sets the "default_account" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableDefaultAccount(v *string) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetDefaultAccount(*v)
	}
	return _u
}

// ClearDefaultAccount clears the value of the "default_account" field.
func (_u *VendorPatternUpdateOne) ClearDefaultAccount() *VendorPatternUpdateOne {
	_u.mutation.ClearDefaultAccount()
	return _u
}

// SetDefaultCostCenter sets the "default_cost_center" field.
func (_u *VendorPatternUpdateOne) SetDefaultCostCenter(v string) *VendorPatternUpdateOne {
	_u.mutation.SetDefaultCostCenter(v)
	return _u
}

// SetNillableDefaultCostCenter sets the "default_cost_center" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableDefaultCostCenter(v *string) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetDefaultCostCenter(*v)
	}
	return _u
}

// ClearDefaultCostCenter clears the value of the "default_cost_center" field.
func (_u *VendorPatternUpdateOne) ClearDefaultCostCenter() *VendorPatternUpdateOne {
	_u.mutation.ClearDefaultCostCenter()
	return _u
}

// SetMatchCount sets the "match_count" field.
func (_u *VendorPatternUpdateOne) SetMatchCount(v int) *VendorPatternUpdateOne {
	_u.mutation.ResetMatchCount()
	_u.mutation.SetMatchCount(v)
	return _u
}

// SetNillableMatchCount sets the "match_count" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableMatchCount(v *int) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetMatchCount(*v)
	}
	return _u
}

// AddMatchCount adds value to the "match_count" field.
func (_u *VendorPatternUpdateOne) AddMatchCount(v int) *VendorPatternUpdateOne {
	_u.mutation.AddMatchCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VendorPatternUpdateOne) SetConfidence(v float64) *VendorPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableConfidence(v *float64) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VendorPatternUpdateOne) AddConfidence(v float64) *VendorPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetLastAmount sets the "last_amount" field.
func (_u *VendorPatternUpdateOne) SetLastAmount(v float64) *VendorPatternUpdateOne {
	_u.mutation.ResetLastAmount()
	_u.mutation.SetLastAmount(v)
	return _u
}

// SetNillableLastAmount sets the "last_amount" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableLastAmount(v *float64) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetLastAmount(*v)
	}
	return _u
}

// AddLastAmount adds value to the "last_amount" field.
func (_u *VendorPatternUpdateOne) AddLastAmount(v float64) *VendorPatternUpdateOne {
	_u.mutation.AddLastAmount(v)
	return _u
}

// ClearLastAmount clears the value of the "last_amount" field.
func (_u *VendorPatternUpdateOne) ClearLastAmount() *VendorPatternUpdateOne {
	_u.mutation.ClearLastAmount()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *VendorPatternUpdateOne) SetLastSeen(v time.Time) *VendorPatternUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *VendorPatternUpdateOne) SetNillableLastSeen(v *time.Time) *VendorPatternUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *VendorPatternUpdateOne) SetCompany(v *Company) *VendorPatternUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the VendorPatternMutation object of the builder.
func (_u *VendorPatternUpdateOne) Mutation() *VendorPatternMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *VendorPatternUpdateOne) ClearCompany() *VendorPatternUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the VendorPatternUpdate builder.
func (_u *VendorPatternUpdateOne) Where(ps ...predicate.VendorPattern) *VendorPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorPatternUpdateOne) Select(field string, fields ...string) *VendorPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VendorPattern entity.
func (_u *VendorPatternUpdateOne) Save(ctx context.Context) (*VendorPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorPatternUpdateOne) SaveX(ctx context.Context) *VendorPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorPatternUpdateOne) check() error {
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := vendorpattern.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "VendorPattern.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CanonicalName(); ok {
		if err := vendorpattern.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "VendorPattern.canonical_name": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorPattern.company"`)
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (_u *VendorPatternUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *VendorPatternUpdateOne {
	_u.modifiers = append(_u.modifiers, modifiers...)
	return _u
}

func (_u *VendorPatternUpdateOne) sqlSave(ctx context.Context) (_node *VendorPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendorpattern.Table, vendorpattern.Columns, sqlgraph.NewFieldSpec(vendorpattern.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VendorPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendorpattern.FieldID)
		for _, f := range fields {
			if !vendorpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendorpattern.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(vendorpattern.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalName(); ok {
		_spec.SetField(vendorpattern.FieldCanonicalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameVariants(); ok {
		_spec.SetField(vendorpattern.FieldNameVariants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNameVariants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendorpattern.FieldNameVariants, value)
		})
	}
	if _u.mutation.NameVariantsCleared() {
		_spec.ClearField(vendorpattern.FieldNameVariants, field.TypeJSON)
	}
	if value, ok := _u.mutation.KnownTaxIdentifiers(); ok {
		_spec.SetField(vendorpattern.FieldKnownTaxIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKnownTaxIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vendorpattern.FieldKnownTaxIdentifiers, value)
		})
	}
	if _u.mutation.KnownTaxIdentifiersCleared() {
		_spec.ClearField(vendorpattern.FieldKnownTaxIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.DefaultAccount(); ok {
		_spec.SetField(vendorpattern.FieldDefaultAccount, field.TypeString, value)
	}
	if _u.mutation.DefaultAccountCleared() {
		_spec.ClearField(vendorpattern.FieldDefaultAccount, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultCostCenter(); ok {
		_spec.SetField(vendorpattern.FieldDefaultCostCenter, field.TypeString, value)
	}
	if _u.mutation.DefaultCostCenterCleared() {
		_spec.ClearField(vendorpattern.FieldDefaultCostCenter, field.TypeString)
	}
	if value, ok := _u.mutation.MatchCount(); ok {
		_spec.SetField(vendorpattern.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMatchCount(); ok {
		_spec.AddField(vendorpattern.FieldMatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(vendorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(vendorpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastAmount(); ok {
		_spec.SetField(vendorpattern.FieldLastAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastAmount(); ok {
		_spec.AddField(vendorpattern.FieldLastAmount, field.TypeFloat64, value)
	}
	if _u.mutation.LastAmountCleared() {
		_spec.ClearField(vendorpattern.FieldLastAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(vendorpattern.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorpattern.CompanyTable,
			Columns: []string{vendorpattern.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendorpattern.CompanyTable,
			Columns: []string{vendorpattern.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_spec.AddModifiers(_u.modifiers...)
	_node = &VendorPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendorpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
