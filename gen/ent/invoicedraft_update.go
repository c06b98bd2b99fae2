// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orderkyat/orderkyat/gen/ent/invoicedraft"
	"github.com/orderkyat/orderkyat/gen/ent/predicate"
)

// InvoiceDraftUpdate is the builder for updating InvoiceDraft entities.
type InvoiceDraftUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceDraftMutation
}

// Where appends a list predicates to the InvoiceDraftUpdate builder.
func (_u *InvoiceDraftUpdate) Where(ps ...predicate.InvoiceDraft) *InvoiceDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetData sets the "data" field.
func (_u *InvoiceDraftUpdate) SetData(v []byte) *InvoiceDraftUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceDraftUpdate) SetStatus(v string) *InvoiceDraftUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceDraftUpdate) SetNillableStatus(v *string) *InvoiceDraftUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceDraftUpdate) SetInvoiceNumber(v string) *InvoiceDraftUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceDraftUpdate) SetNillableInvoiceNumber(v *string) *InvoiceDraftUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceDraftUpdate) ClearInvoiceNumber() *InvoiceDraftUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceDraftUpdate) SetCreatedAt(v time.Time) *InvoiceDraftUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceDraftUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceDraftUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceDraftUpdate) SetUpdatedAt(v time.Time) *InvoiceDraftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InvoiceDraftMutation object of the builder.
func (_u *InvoiceDraftUpdate) Mutation() *InvoiceDraftMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceDraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceDraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoicedraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceDraftUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := invoicedraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvoiceDraft.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicedraft.Table, invoicedraft.Columns, sqlgraph.NewFieldSpec(invoicedraft.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(invoicedraft.FieldData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoicedraft.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoicedraft.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoicedraft.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoicedraft.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoicedraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicedraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceDraftUpdateOne is the builder for updating a single InvoiceDraft entity.
type InvoiceDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceDraftMutation
}

// SetData sets the "data" field.
func (_u *InvoiceDraftUpdateOne) SetData(v []byte) *InvoiceDraftUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceDraftUpdateOne) SetStatus(v string) *InvoiceDraftUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceDraftUpdateOne) SetNillableStatus(v *string) *InvoiceDraftUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceDraftUpdateOne) SetInvoiceNumber(v string) *InvoiceDraftUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceDraftUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceDraftUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceDraftUpdateOne) ClearInvoiceNumber() *InvoiceDraftUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceDraftUpdateOne) SetCreatedAt(v time.Time) *InvoiceDraftUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceDraftUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceDraftUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceDraftUpdateOne) SetUpdatedAt(v time.Time) *InvoiceDraftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InvoiceDraftMutation object of the builder.
func (_u *InvoiceDraftUpdateOne) Mutation() *InvoiceDraftMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceDraftUpdate builder.
func (_u *InvoiceDraftUpdateOne) Where(ps ...predicate.InvoiceDraft) *InvoiceDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceDraftUpdateOne) Select(field string, fields ...string) *InvoiceDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceDraft entity.
func (_u *InvoiceDraftUpdateOne) Save(ctx context.Context) (*InvoiceDraft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceDraftUpdateOne) SaveX(ctx context.Context) *InvoiceDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceDraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoicedraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceDraftUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := invoicedraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvoiceDraft.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceDraftUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicedraft.Table, invoicedraft.Columns, sqlgraph.NewFieldSpec(invoicedraft.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicedraft.FieldID)
		for _, f := range fields {
			if !invoicedraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicedraft.FieldID {
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
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(invoicedraft.FieldData, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoicedraft.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoicedraft.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoicedraft.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoicedraft.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoicedraft.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &InvoiceDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicedraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
