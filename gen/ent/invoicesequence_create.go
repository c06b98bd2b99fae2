// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orderkyat/orderkyat/gen/ent/invoicesequence"
)

// InvoiceSequenceCreate is the builder for creating a InvoiceSequence entity.
type InvoiceSequenceCreate struct {
	config
	mutation *InvoiceSequenceMutation
	hooks    []Hook
}

// SetYear sets the "year" field.
func (_c *InvoiceSequenceCreate) SetYear(v int) *InvoiceSequenceCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetCounter sets the "counter" field.
func (_c *InvoiceSequenceCreate) SetCounter(v int) *InvoiceSequenceCreate {
	_c.mutation.SetCounter(v)
	return _c
}

// SetNillableCounter sets the "counter" field if the given value is not nil.
func (_c *InvoiceSequenceCreate) SetNillableCounter(v *int) *InvoiceSequenceCreate {
	if v != nil {
		_c.SetCounter(*v)
	}
	return _c
}

// Mutation returns the InvoiceSequenceMutation object of the builder.
func (_c *InvoiceSequenceCreate) Mutation() *InvoiceSequenceMutation {
	return _c.mutation
}

// Save creates the InvoiceSequence in the database.
func (_c *InvoiceSequenceCreate) Save(ctx context.Context) (*InvoiceSequence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceSequenceCreate) SaveX(ctx context.Context) *InvoiceSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceSequenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceSequenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceSequenceCreate) defaults() {
	if _, ok := _c.mutation.Counter(); !ok {
		v := invoicesequence.DefaultCounter
		_c.mutation.SetCounter(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceSequenceCreate) check() error {
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "InvoiceSequence.year"`)}
	}
	if _, ok := _c.mutation.Counter(); !ok {
		return &ValidationError{Name: "counter", err: errors.New(`ent: missing required field "InvoiceSequence.counter"`)}
	}
	if v, ok := _c.mutation.Counter(); ok {
		if err := invoicesequence.CounterValidator(v); err != nil {
			return &ValidationError{Name: "counter", err: fmt.Errorf(`ent: validator failed for field "InvoiceSequence.counter": %w`, err)}
		}
	}
	return nil
}

func (_c *InvoiceSequenceCreate) sqlSave(ctx context.Context) (*InvoiceSequence, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceSequenceCreate) createSpec() (*InvoiceSequence, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceSequence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoicesequence.Table, sqlgraph.NewFieldSpec(invoicesequence.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(invoicesequence.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Counter(); ok {
		_spec.SetField(invoicesequence.FieldCounter, field.TypeInt, value)
		_node.Counter = value
	}
	return _node, _spec
}

// InvoiceSequenceCreateBulk is the builder for creating many InvoiceSequence entities in bulk.
type InvoiceSequenceCreateBulk struct {
	config
	err      error
	builders []*InvoiceSequenceCreate
}

// Save creates the InvoiceSequence entities in the database.
func (_c *InvoiceSequenceCreateBulk) Save(ctx context.Context) ([]*InvoiceSequence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceSequence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceSequenceMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *InvoiceSequenceCreateBulk) SaveX(ctx context.Context) []*InvoiceSequence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceSequenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceSequenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
