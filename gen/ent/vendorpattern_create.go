// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
	"github.com/google/uuid"
)

// VendorPatternCreate is the builder for creating a VendorPattern entity.
type VendorPatternCreate struct {
	config
	mutation *VendorPatternMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *VendorPatternCreate) SetCompanyID(v uuid.UUID) *VendorPatternCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *VendorPatternCreate) SetNormalizedName(v string) *VendorPatternCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetCanonicalName sets the "canonical_name" field.
func (_c *VendorPatternCreate) SetCanonicalName(v string) *VendorPatternCreate {
	_c.mutation.SetCanonicalName(v)
	return _c
}

// SetNameVariants sets the "name_variants" field.
func (_c *VendorPatternCreate) SetNameVariants(v []string) *VendorPatternCreate {
	_c.mutation.SetNameVariants(v)
	return _c
}

// SetKnownTaxIdentifiers sets the "known_tax_identifiers" field.
func (_c *VendorPatternCreate) SetKnownTaxIdentifiers(v []string) *VendorPatternCreate {
	_c.mutation.SetKnownTaxIdentifiers(v)
	return _c
}

// SetDefaultAccount sets the "default_account" field.
func (_c *VendorPatternCreate) SetDefaultAccount(v string) *VendorPatternCreate {
	_c.mutation.SetDefaultAccount(v)
	return _c
}

// SetNillableDefaultAccount sets the "default_account" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableDefaultAccount(v *string) *VendorPatternCreate {
	if v != nil {
		_c.SetDefaultAccount(*v)
	}
	return _c
}

// SetDefaultCostCenter sets the "default_cost_center" field.
func (_c *VendorPatternCreate) SetDefaultCostCenter(v string) *VendorPatternCreate {
	_c.mutation.SetDefaultCostCenter(v)
	return _c
}

// SetNillableDefaultCostCenter sets the "default_cost_center" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableDefaultCostCenter(v *string) *VendorPatternCreate {
	if v != nil {
		_c.SetDefaultCostCenter(*v)
	}
	return _c
}

// SetMatchCount sets the "match_count" field.
func (_c *VendorPatternCreate) SetMatchCount(v int) *VendorPatternCreate {
	_c.mutation.SetMatchCount(v)
	return _c
}

// SetNillableMatchCount sets the "match_count" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableMatchCount(v *int) *VendorPatternCreate {
	if v != nil {
		_c.SetMatchCount(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VendorPatternCreate) SetConfidence(v float64) *VendorPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableConfidence(v *float64) *VendorPatternCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetLastAmount sets the "last_amount" field.
func (_c *VendorPatternCreate) SetLastAmount(v float64) *VendorPatternCreate {
	_c.mutation.SetLastAmount(v)
	return _c
}

// SetNillableLastAmount sets the "last_amount" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableLastAmount(v *float64) *VendorPatternCreate {
	if v != nil {
		_c.SetLastAmount(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *VendorPatternCreate) SetLastSeen(v time.Time) *VendorPatternCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableLastSeen(v *time.Time) *VendorPatternCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VendorPatternCreate) SetID(v uuid.UUID) *VendorPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VendorPatternCreate) SetNillableID(v *uuid.UUID) *VendorPatternCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *VendorPatternCreate) SetCompany(v *Company) *VendorPatternCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the VendorPatternMutation object of the builder.
func (_c *VendorPatternCreate) Mutation() *VendorPatternMutation {
	return _c.mutation
}

// Save creates the VendorPattern in the database.
func (_c *VendorPatternCreate) Save(ctx context.Context) (*VendorPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VendorPatternCreate) SaveX(ctx context.Context) *VendorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VendorPatternCreate) defaults() {
	if _, ok := _c.mutation.MatchCount(); !ok {
		v := vendorpattern.DefaultMatchCount
		_c.mutation.SetMatchCount(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := vendorpattern.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := vendorpattern.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vendorpattern.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VendorPatternCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "VendorPattern.company_id"`)}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "VendorPattern.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := vendorpattern.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "VendorPattern.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalName(); !ok {
		return &ValidationError{Name: "canonical_name", err: errors.New(`ent: missing required field "VendorPattern.canonical_name"`)}
	}
	if v, ok := _c.mutation.CanonicalName(); ok {
		if err := vendorpattern.CanonicalNameValidator(v); err != nil {
			return &ValidationError{Name: "canonical_name", err: fmt.Errorf(`ent: validator failed for field "VendorPattern.canonical_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatchCount(); !ok {
		return &ValidationError{Name: "match_count", err: errors.New(`ent: missing required field "VendorPattern.match_count"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "VendorPattern.confidence"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "VendorPattern.last_seen"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "VendorPattern.company"`)}
	}
	return nil
}

func (_c *VendorPatternCreate) sqlSave(ctx context.Context) (*VendorPattern, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VendorPatternCreate) createSpec() (*VendorPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &VendorPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vendorpattern.Table, sqlgraph.NewFieldSpec(vendorpattern.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(vendorpattern.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.CanonicalName(); ok {
		_spec.SetField(vendorpattern.FieldCanonicalName, field.TypeString, value)
		_node.CanonicalName = value
	}
	if value, ok := _c.mutation.NameVariants(); ok {
		_spec.SetField(vendorpattern.FieldNameVariants, field.TypeJSON, value)
		_node.NameVariants = value
	}
	if value, ok := _c.mutation.KnownTaxIdentifiers(); ok {
		_spec.SetField(vendorpattern.FieldKnownTaxIdentifiers, field.TypeJSON, value)
		_node.KnownTaxIdentifiers = value
	}
	if value, ok := _c.mutation.DefaultAccount(); ok {
		_spec.SetField(vendorpattern.FieldDefaultAccount, field.TypeString, value)
		_node.DefaultAccount = &value
	}
	if value, ok := _c.mutation.DefaultCostCenter(); ok {
		_spec.SetField(vendorpattern.FieldDefaultCostCenter, field.TypeString, value)
		_node.DefaultCostCenter = &value
	}
	if value, ok := _c.mutation.MatchCount(); ok {
		_spec.SetField(vendorpattern.FieldMatchCount, field.TypeInt, value)
		_node.MatchCount = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(vendorpattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LastAmount(); ok {
		_spec.SetField(vendorpattern.FieldLastAmount, field.TypeFloat64, value)
		_node.LastAmount = &value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(vendorpattern.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VendorPatternCreateBulk is the builder for creating many VendorPattern entities in bulk.
type VendorPatternCreateBulk struct {
	config
	err      error
	builders []*VendorPatternCreate
}

// Save creates the VendorPattern entities in the database.
func (_c *VendorPatternCreateBulk) Save(ctx context.Context) ([]*VendorPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VendorPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VendorPatternMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VendorPatternCreateBulk) SaveX(ctx context.Context) []*VendorPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
