// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// BadgeUnlockUpdate is the builder for updating BadgeUnlock entities.
type BadgeUnlockUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeUnlockMutation
}

// Where appends a list predicates to the BadgeUnlockUpdate builder.
func (_u *BadgeUnlockUpdate) Where(ps ...predicate.BadgeUnlock) *BadgeUnlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeen sets the "seen" field.
func (_u *BadgeUnlockUpdate) SetSeen(v bool) *BadgeUnlockUpdate {
	_u.mutation.SetSeen(v)
	return _u
}

// SetNillableSeen sets the "seen" field if the given value is not nil.
func (_u *BadgeUnlockUpdate) SetNillableSeen(v *bool) *BadgeUnlockUpdate {
	if v != nil {
		_u.SetSeen(*v)
	}
	return _u
}

// Mutation returns the BadgeUnlockMutation object of the builder.
func (_u *BadgeUnlockUpdate) Mutation() *BadgeUnlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeUnlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUnlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeUnlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUnlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BadgeUnlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(badgeunlock.Table, badgeunlock.Columns, sqlgraph.NewFieldSpec(badgeunlock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seen(); ok {
		_spec.SetField(badgeunlock.FieldSeen, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeunlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeUnlockUpdateOne is the builder for updating a single BadgeUnlock entity.
type BadgeUnlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeUnlockMutation
}

// SetSeen sets the "seen" field.
func (_u *BadgeUnlockUpdateOne) SetSeen(v bool) *BadgeUnlockUpdateOne {
	_u.mutation.SetSeen(v)
	return _u
}

// SetNillableSeen sets the "seen" field if the given value is not nil.
func (_u *BadgeUnlockUpdateOne) SetNillableSeen(v *bool) *BadgeUnlockUpdateOne {
	if v != nil {
		_u.SetSeen(*v)
	}
	return _u
}

// Mutation returns the BadgeUnlockMutation object of the builder.
func (_u *BadgeUnlockUpdateOne) Mutation() *BadgeUnlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeUnlockUpdate builder.
func (_u *BadgeUnlockUpdateOne) Where(ps ...predicate.BadgeUnlock) *BadgeUnlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeUnlockUpdateOne) Select(field string, fields ...string) *BadgeUnlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BadgeUnlock entity.
func (_u *BadgeUnlockUpdateOne) Save(ctx context.Context) (*BadgeUnlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeUnlockUpdateOne) SaveX(ctx context.Context) *BadgeUnlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeUnlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeUnlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BadgeUnlockUpdateOne) sqlSave(ctx context.Context) (_node *BadgeUnlock, err error) {
	_spec := sqlgraph.NewUpdateSpec(badgeunlock.Table, badgeunlock.Columns, sqlgraph.NewFieldSpec(badgeunlock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BadgeUnlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badgeunlock.FieldID)
		for _, f := range fields {
			if !badgeunlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badgeunlock.FieldID {
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
	if value, ok := _u.mutation.Seen(); ok {
		_spec.SetField(badgeunlock.FieldSeen, field.TypeBool, value)
	}
	_node = &BadgeUnlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeunlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
