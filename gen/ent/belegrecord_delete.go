// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
)

// BelegRecordDelete is the builder for deleting a BelegRecord entity.
type BelegRecordDelete struct {
	config
	hooks    []Hook
	mutation *BelegRecordMutation
}

// Where appends a list predicates to the BelegRecordDelete builder.
func (_d *BelegRecordDelete) Where(ps ...predicate.BelegRecord) *BelegRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BelegRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BelegRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BelegRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(belegrecord.Table, sqlgraph.NewFieldSpec(belegrecord.FieldID, field.TypeUUID))
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

// BelegRecordDeleteOne is the builder for deleting a single BelegRecord entity.
type BelegRecordDeleteOne struct {
	_d *BelegRecordDelete
}

// Where appends a list predicates to the BelegRecordDelete builder.
func (_d *BelegRecordDeleteOne) Where(ps ...predicate.BelegRecord) *BelegRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BelegRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{belegrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BelegRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
