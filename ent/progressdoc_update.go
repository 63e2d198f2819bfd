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
	"github.com/fluentpath/fluentpath/ent/predicate"
	"github.com/fluentpath/fluentpath/ent/progressdoc"
)

// ProgressDocUpdate is the builder for updating ProgressDoc entities.
type ProgressDocUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressDocMutation
}

// Where appends a list predicates to the ProgressDocUpdate builder.
func (_u *ProgressDocUpdate) Where(ps ...predicate.ProgressDoc) *ProgressDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProgressDocUpdate) SetUserID(v string) *ProgressDocUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressDocUpdate) SetNillableUserID(v *string) *ProgressDocUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProgressDocUpdate) SetData(v map[string]interface{}) *ProgressDocUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressDocUpdate) SetUpdatedAt(v time.Time) *ProgressDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressDocMutation object of the builder.
func (_u *ProgressDocUpdate) Mutation() *ProgressDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressDocUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressdoc.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressDoc.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressdoc.Table, progressdoc.Columns, sqlgraph.NewFieldSpec(progressdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressdoc.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(progressdoc.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressDocUpdateOne is the builder for updating a single ProgressDoc entity.
type ProgressDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressDocMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProgressDocUpdateOne) SetUserID(v string) *ProgressDocUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProgressDocUpdateOne) SetNillableUserID(v *string) *ProgressDocUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProgressDocUpdateOne) SetData(v map[string]interface{}) *ProgressDocUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressDocUpdateOne) SetUpdatedAt(v time.Time) *ProgressDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressDocMutation object of the builder.
func (_u *ProgressDocUpdateOne) Mutation() *ProgressDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressDocUpdate builder.
func (_u *ProgressDocUpdateOne) Where(ps ...predicate.ProgressDoc) *ProgressDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressDocUpdateOne) Select(field string, fields ...string) *ProgressDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressDoc entity.
func (_u *ProgressDocUpdateOne) Save(ctx context.Context) (*ProgressDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressDocUpdateOne) SaveX(ctx context.Context) *ProgressDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressDocUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := progressdoc.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressDoc.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressDocUpdateOne) sqlSave(ctx context.Context) (_node *ProgressDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressdoc.Table, progressdoc.Columns, sqlgraph.NewFieldSpec(progressdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressdoc.FieldID)
		for _, f := range fields {
			if !progressdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressdoc.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(progressdoc.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(progressdoc.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
