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
	"github.com/orderkyat/orderkyat/gen/ent/predicate"
	"github.com/orderkyat/orderkyat/gen/ent/storeprofile"
)

// StoreProfileUpdate is the builder for updating StoreProfile entities.
type StoreProfileUpdate struct {
	config
	hooks    []Hook
	mutation *StoreProfileMutation
}

// Where appends a list predicates to the StoreProfileUpdate builder.
func (_u *StoreProfileUpdate) Where(ps ...predicate.StoreProfile) *StoreProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StoreProfileUpdate) SetName(v string) *StoreProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StoreProfileUpdate) SetNillableName(v *string) *StoreProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *StoreProfileUpdate) SetPhone(v string) *StoreProfileUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *StoreProfileUpdate) SetNillablePhone(v *string) *StoreProfileUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *StoreProfileUpdate) SetAddress(v string) *StoreProfileUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *StoreProfileUpdate) SetNillableAddress(v *string) *StoreProfileUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StoreProfileUpdate) SetCreatedAt(v time.Time) *StoreProfileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StoreProfileUpdate) SetNillableCreatedAt(v *time.Time) *StoreProfileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoreProfileUpdate) SetUpdatedAt(v time.Time) *StoreProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StoreProfileMutation object of the builder.
func (_u *StoreProfileUpdate) Mutation() *StoreProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoreProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoreProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoreProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoreProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoreProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := storeprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StoreProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(storeprofile.Table, storeprofile.Columns, sqlgraph.NewFieldSpec(storeprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(storeprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(storeprofile.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(storeprofile.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(storeprofile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(storeprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storeprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoreProfileUpdateOne is the builder for updating a single StoreProfile entity.
type StoreProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoreProfileMutation
}

// SetName sets the "name" field.
func (_u *StoreProfileUpdateOne) SetName(v string) *StoreProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StoreProfileUpdateOne) SetNillableName(v *string) *StoreProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *StoreProfileUpdateOne) SetPhone(v string) *StoreProfileUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *StoreProfileUpdateOne) SetNillablePhone(v *string) *StoreProfileUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *StoreProfileUpdateOne) SetAddress(v string) *StoreProfileUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *StoreProfileUpdateOne) SetNillableAddress(v *string) *StoreProfileUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StoreProfileUpdateOne) SetCreatedAt(v time.Time) *StoreProfileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StoreProfileUpdateOne) SetNillableCreatedAt(v *time.Time) *StoreProfileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoreProfileUpdateOne) SetUpdatedAt(v time.Time) *StoreProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StoreProfileMutation object of the builder.
func (_u *StoreProfileUpdateOne) Mutation() *StoreProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the StoreProfileUpdate builder.
func (_u *StoreProfileUpdateOne) Where(ps ...predicate.StoreProfile) *StoreProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoreProfileUpdateOne) Select(field string, fields ...string) *StoreProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StoreProfile entity.
func (_u *StoreProfileUpdateOne) Save(ctx context.Context) (*StoreProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoreProfileUpdateOne) SaveX(ctx context.Context) *StoreProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoreProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoreProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoreProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := storeprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StoreProfileUpdateOne) sqlSave(ctx context.Context) (_node *StoreProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(storeprofile.Table, storeprofile.Columns, sqlgraph.NewFieldSpec(storeprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StoreProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, storeprofile.FieldID)
		for _, f := range fields {
			if !storeprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != storeprofile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(storeprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(storeprofile.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(storeprofile.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(storeprofile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(storeprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StoreProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{storeprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
