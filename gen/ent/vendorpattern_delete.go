// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
)

// VendorPatternDelete is the builder for deleting a VendorPattern entity.
type VendorPatternDelete struct {
	config
	hooks    []Hook
	mutation *VendorPatternMutation
}

// Where appends a list predicates to the VendorPatternDelete builder.
func (_d *VendorPatternDelete) Where(ps ...predicate.VendorPattern) *VendorPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *VendorPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VendorPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *VendorPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(vendorpattern.Table, sqlgraph.NewFieldSpec(vendorpattern.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// VendorPatternDeleteOne is the builder for deleting a single VendorPattern entity.
type VendorPatternDeleteOne struct {
	_d *VendorPatternDelete
}

// Where appends a list predicates to the VendorPatternDelete builder.
func (_d *VendorPatternDeleteOne) Where(ps ...predicate.VendorPattern) *VendorPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *VendorPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{vendorpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VendorPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
