// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orderkyat/orderkyat/gen/ent/invoicesequence"
	"github.com/orderkyat/orderkyat/gen/ent/predicate"
)

// InvoiceSequenceUpdate is the builder for updating InvoiceSequence entities.
type InvoiceSequenceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceSequenceMutation
}

// Where appends a list predicates to the InvoiceSequenceUpdate builder.
func (_u *InvoiceSequenceUpdate) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCounter sets the "counter" field.
func (_u *InvoiceSequenceUpdate) SetCounter(v int) *InvoiceSequenceUpdate {
	_u.mutation.ResetCounter()
	_u.mutation.SetCounter(v)
	return _u
}

// SetNillableCounter sets the "counter" field if the given value is not nil.
func (_u *InvoiceSequenceUpdate) SetNillableCounter(v *int) *InvoiceSequenceUpdate {
	if v != nil {
		_u.SetCounter(*v)
	}
	return _u
}

// AddCounter adds value to the "counter" field.
func (_u *InvoiceSequenceUpdate) AddCounter(v int) *InvoiceSequenceUpdate {
	_u.mutation.AddCounter(v)
	return _u
}

// Mutation returns the InvoiceSequenceMutation object of the builder.
func (_u *InvoiceSequenceUpdate) Mutation() *InvoiceSequenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceSequenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceSequenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceSequenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceSequenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceSequenceUpdate) check() error {
	if v, ok := _u.mutation.Counter(); ok {
		if err := invoicesequence.CounterValidator(v); err != nil {
			return &ValidationError{Name: "counter", err: fmt.Errorf(`ent: validator failed for field "InvoiceSequence.counter": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceSequenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicesequence.Table, invoicesequence.Columns, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Counter(); ok {
		_spec.SetField(invoicesequence.FieldCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCounter(); ok {
		_spec.AddField(invoicesequence.FieldCounter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicesequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceSequenceUpdateOne is the builder for updating a single InvoiceSequence entity.
type InvoiceSequenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceSequenceMutation
}

// SetCounter sets the "counter" field.
func (_u *InvoiceSequenceUpdateOne) SetCounter(v int) *InvoiceSequenceUpdateOne {
	_u.mutation.ResetCounter()
	_u.mutation.SetCounter(v)
	return _u
}

// SetNillableCounter sets the "counter" field if the given value is not nil.
func (_u *InvoiceSequenceUpdateOne) SetNillableCounter(v *int) *InvoiceSequenceUpdateOne {
	if v != nil {
		_u.SetCounter(*v)
	}
	return _u
}

// AddCounter adds value to the "counter" field.
func (_u *InvoiceSequenceUpdateOne) AddCounter(v int) *InvoiceSequenceUpdateOne {
	_u.mutation.AddCounter(v)
	return _u
}

// Mutation returns the InvoiceSequenceMutation object of the builder.
func (_u *InvoiceSequenceUpdateOne) Mutation() *InvoiceSequenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceSequenceUpdate builder.
func (_u *InvoiceSequenceUpdateOne) Where(ps ...predicate.InvoiceSequence) *InvoiceSequenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceSequenceUpdateOne) Select(field string, fields ...string) *InvoiceSequenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceSequence entity.
func (_u *InvoiceSequenceUpdateOne) Save(ctx context.Context) (*InvoiceSequence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceSequenceUpdateOne) SaveX(ctx context.Context) *InvoiceSequence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceSequenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceSequenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceSequenceUpdateOne) check() error {
	if v, ok := _u.mutation.Counter(); ok {
		if err := invoicesequence.CounterValidator(v); err != nil {
			return &ValidationError{Name: "counter", err: fmt.Errorf(`ent: validator failed for field "InvoiceSequence.counter": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceSequenceUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceSequence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicesequence.Table, invoicesequence.Columns, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceSequence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicesequence.FieldID)
		for _, f := range fields {
			if !invoicesequence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicesequence.FieldID {
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
	if value, ok := _u.mutation.Counter(); ok {
		_spec.SetField(invoicesequence.FieldCounter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCounter(); ok {
		_spec.AddField(invoicesequence.FieldCounter, field.TypeInt, value)
	}
	_node = &InvoiceSequence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicesequence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
