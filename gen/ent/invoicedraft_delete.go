// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orderkyat/orderkyat/gen/ent/invoicedraft"
	"github.com/orderkyat/orderkyat/gen/ent/predicate"
)

// InvoiceDraftDelete is the builder for deleting a InvoiceDraft entity.
type InvoiceDraftDelete struct {
	config
	hooks    []Hook
	mutation *InvoiceDraftMutation
}

// Where appends a list predicates to the InvoiceDraftDelete builder.
func (_d *InvoiceDraftDelete) Where(ps ...predicate.InvoiceDraft) *InvoiceDraftDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InvoiceDraftDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceDraftDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InvoiceDraftDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(invoicedraft.Table, sqlgraph.NewFieldSpec(invoicedraft.FieldID, field.TypeUUID))
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

// InvoiceDraftDeleteOne is the builder for deleting a single InvoiceDraft entity.
type InvoiceDraftDeleteOne struct {
	_d *InvoiceDraftDelete
}

// Where appends a list predicates to the InvoiceDraftDelete builder.
func (_d *InvoiceDraftDeleteOne) Where(ps ...predicate.InvoiceDraft) *InvoiceDraftDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InvoiceDraftDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{invoicedraft.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceDraftDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
