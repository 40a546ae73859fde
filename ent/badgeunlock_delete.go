// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// BadgeUnlockDelete is the builder for deleting a BadgeUnlock entity.
type BadgeUnlockDelete struct {
	config
	hooks    []Hook
	mutation *BadgeUnlockMutation
}

// Where appends a list predicates to the BadgeUnlockDelete builder.
func (_d *BadgeUnlockDelete) Where(ps ...predicate.BadgeUnlock) *BadgeUnlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BadgeUnlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BadgeUnlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BadgeUnlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(badgeunlock.Table, sqlgraph.NewFieldSpec(badgeunlock.FieldID, field.TypeInt))
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

// BadgeUnlockDeleteOne is the builder for deleting a single BadgeUnlock entity.
type BadgeUnlockDeleteOne struct {
	_d *BadgeUnlockDelete
}

// Where appends a list predicates to the BadgeUnlockDelete builder.
func (_d *BadgeUnlockDeleteOne) Where(ps ...predicate.BadgeUnlock) *BadgeUnlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BadgeUnlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{badgeunlock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BadgeUnlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
