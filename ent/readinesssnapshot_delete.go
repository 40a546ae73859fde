// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/predicate"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
)

// ReadinessSnapshotDelete is the builder for deleting a ReadinessSnapshot entity.
type ReadinessSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ReadinessSnapshotMutation
}

// Where appends a list predicates to the ReadinessSnapshotDelete builder.
func (_d *ReadinessSnapshotDelete) Where(ps ...predicate.ReadinessSnapshot) *ReadinessSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReadinessSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReadinessSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReadinessSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(readinesssnapshot.Table, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
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

// ReadinessSnapshotDeleteOne is the builder for deleting a single ReadinessSnapshot entity.
type ReadinessSnapshotDeleteOne struct {
	_d *ReadinessSnapshotDelete
}

// Where appends a list predicates to the ReadinessSnapshotDelete builder.
func (_d *ReadinessSnapshotDeleteOne) Where(ps ...predicate.ReadinessSnapshot) *ReadinessSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReadinessSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{readinesssnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReadinessSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
