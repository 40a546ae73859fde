// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/predicate"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
)

// ReadinessSnapshotUpdate is the builder for updating ReadinessSnapshot entities.
type ReadinessSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ReadinessSnapshotMutation
}

// Where appends a list predicates to the ReadinessSnapshotUpdate builder.
func (_u *ReadinessSnapshotUpdate) Where(ps ...predicate.ReadinessSnapshot) *ReadinessSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *ReadinessSnapshotUpdate) SetReadinessScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableReadinessScore(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *ReadinessSnapshotUpdate) AddReadinessScore(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetPassProbability sets the "pass_probability" field.
func (_u *ReadinessSnapshotUpdate) SetPassProbability(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetPassProbability()
	_u.mutation.SetPassProbability(v)
	return _u
}

// SetNillablePassProbability sets the "pass_probability" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillablePassProbability(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetPassProbability(*v)
	}
	return _u
}

// AddPassProbability adds value to the "pass_probability" field.
func (_u *ReadinessSnapshotUpdate) AddPassProbability(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddPassProbability(v)
	return _u
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (_u *ReadinessSnapshotUpdate) SetRecentAccuracy(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetRecentAccuracy()
	_u.mutation.SetRecentAccuracy(v)
	return _u
}

// SetNillableRecentAccuracy sets the "recent_accuracy" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableRecentAccuracy(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetRecentAccuracy(*v)
	}
	return _u
}

// AddRecentAccuracy adds value to the "recent_accuracy" field.
func (_u *ReadinessSnapshotUpdate) AddRecentAccuracy(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddRecentAccuracy(v)
	return _u
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (_u *ReadinessSnapshotUpdate) SetOverallAccuracy(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetOverallAccuracy()
	_u.mutation.SetOverallAccuracy(v)
	return _u
}

// SetNillableOverallAccuracy sets the "overall_accuracy" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableOverallAccuracy(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetOverallAccuracy(*v)
	}
	return _u
}

// AddOverallAccuracy adds value to the "overall_accuracy" field.
func (_u *ReadinessSnapshotUpdate) AddOverallAccuracy(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddOverallAccuracy(v)
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *ReadinessSnapshotUpdate) SetCoverage(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetCoverage()
	_u.mutation.SetCoverage(v)
	return _u
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableCoverage(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetCoverage(*v)
	}
	return _u
}

// AddCoverage adds value to the "coverage" field.
func (_u *ReadinessSnapshotUpdate) AddCoverage(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddCoverage(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ReadinessSnapshotUpdate) SetMastery(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdate) SetNillableMastery(v *float64) *ReadinessSnapshotUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *ReadinessSnapshotUpdate) AddMastery(v float64) *ReadinessSnapshotUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// Mutation returns the ReadinessSnapshotMutation object of the builder.
func (_u *ReadinessSnapshotUpdate) Mutation() *ReadinessSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadinessSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadinessSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessSnapshotUpdate) check() error {
	if v, ok := _u.mutation.ReadinessScore(); ok {
		if err := readinesssnapshot.ReadinessScoreValidator(v); err != nil {
			return &ValidationError{Name: "readiness_score", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.readiness_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassProbability(); ok {
		if err := readinesssnapshot.PassProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "pass_probability", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.pass_probability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecentAccuracy(); ok {
		if err := readinesssnapshot.RecentAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "recent_accuracy", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.recent_accuracy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallAccuracy(); ok {
		if err := readinesssnapshot.OverallAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "overall_accuracy", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.overall_accuracy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Coverage(); ok {
		if err := readinesssnapshot.CoverageValidator(v); err != nil {
			return &ValidationError{Name: "coverage", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.coverage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := readinesssnapshot.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinesssnapshot.Table, readinesssnapshot.Columns, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PassProbability(); ok {
		_spec.SetField(readinesssnapshot.FieldPassProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassProbability(); ok {
		_spec.AddField(readinesssnapshot.FieldPassProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentAccuracy(); ok {
		_spec.SetField(readinesssnapshot.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentAccuracy(); ok {
		_spec.AddField(readinesssnapshot.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallAccuracy(); ok {
		_spec.SetField(readinesssnapshot.FieldOverallAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallAccuracy(); ok {
		_spec.AddField(readinesssnapshot.FieldOverallAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(readinesssnapshot.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverage(); ok {
		_spec.AddField(readinesssnapshot.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(readinesssnapshot.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(readinesssnapshot.FieldMastery, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinesssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadinessSnapshotUpdateOne is the builder for updating a single ReadinessSnapshot entity.
type ReadinessSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadinessSnapshotMutation
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *ReadinessSnapshotUpdateOne) SetReadinessScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableReadinessScore(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *ReadinessSnapshotUpdateOne) AddReadinessScore(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetPassProbability sets the "pass_probability" field.
func (_u *ReadinessSnapshotUpdateOne) SetPassProbability(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetPassProbability()
	_u.mutation.SetPassProbability(v)
	return _u
}

// SetNillablePassProbability sets the "pass_probability" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillablePassProbability(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetPassProbability(*v)
	}
	return _u
}

// AddPassProbability adds value to the "pass_probability" field.
func (_u *ReadinessSnapshotUpdateOne) AddPassProbability(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddPassProbability(v)
	return _u
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (_u *ReadinessSnapshotUpdateOne) SetRecentAccuracy(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetRecentAccuracy()
	_u.mutation.SetRecentAccuracy(v)
	return _u
}

// SetNillableRecentAccuracy sets the "recent_accuracy" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableRecentAccuracy(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetRecentAccuracy(*v)
	}
	return _u
}

// AddRecentAccuracy adds value to the "recent_accuracy" field.
func (_u *ReadinessSnapshotUpdateOne) AddRecentAccuracy(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddRecentAccuracy(v)
	return _u
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (_u *ReadinessSnapshotUpdateOne) SetOverallAccuracy(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetOverallAccuracy()
	_u.mutation.SetOverallAccuracy(v)
	return _u
}

// SetNillableOverallAccuracy sets the "overall_accuracy" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableOverallAccuracy(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetOverallAccuracy(*v)
	}
	return _u
}

// AddOverallAccuracy adds value to the "overall_accuracy" field.
func (_u *ReadinessSnapshotUpdateOne) AddOverallAccuracy(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddOverallAccuracy(v)
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *ReadinessSnapshotUpdateOne) SetCoverage(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetCoverage()
	_u.mutation.SetCoverage(v)
	return _u
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableCoverage(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetCoverage(*v)
	}
	return _u
}

// AddCoverage adds value to the "coverage" field.
func (_u *ReadinessSnapshotUpdateOne) AddCoverage(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddCoverage(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ReadinessSnapshotUpdateOne) SetMastery(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ReadinessSnapshotUpdateOne) SetNillableMastery(v *float64) *ReadinessSnapshotUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *ReadinessSnapshotUpdateOne) AddMastery(v float64) *ReadinessSnapshotUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// Mutation returns the ReadinessSnapshotMutation object of the builder.
func (_u *ReadinessSnapshotUpdateOne) Mutation() *ReadinessSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadinessSnapshotUpdate builder.
func (_u *ReadinessSnapshotUpdateOne) Where(ps ...predicate.ReadinessSnapshot) *ReadinessSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadinessSnapshotUpdateOne) Select(field string, fields ...string) *ReadinessSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadinessSnapshot entity.
func (_u *ReadinessSnapshotUpdateOne) Save(ctx context.Context) (*ReadinessSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdateOne) SaveX(ctx context.Context) *ReadinessSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadinessSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadinessSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReadinessSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.ReadinessScore(); ok {
		if err := readinesssnapshot.ReadinessScoreValidator(v); err != nil {
			return &ValidationError{Name: "readiness_score", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.readiness_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassProbability(); ok {
		if err := readinesssnapshot.PassProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "pass_probability", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.pass_probability": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecentAccuracy(); ok {
		if err := readinesssnapshot.RecentAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "recent_accuracy", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.recent_accuracy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallAccuracy(); ok {
		if err := readinesssnapshot.OverallAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "overall_accuracy", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.overall_accuracy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Coverage(); ok {
		if err := readinesssnapshot.CoverageValidator(v); err != nil {
			return &ValidationError{Name: "coverage", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.coverage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mastery(); ok {
		if err := readinesssnapshot.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *ReadinessSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ReadinessSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(readinesssnapshot.Table, readinesssnapshot.Columns, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadinessSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readinesssnapshot.FieldID)
		for _, f := range fields {
			if !readinesssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readinesssnapshot.FieldID {
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
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PassProbability(); ok {
		_spec.SetField(readinesssnapshot.FieldPassProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassProbability(); ok {
		_spec.AddField(readinesssnapshot.FieldPassProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentAccuracy(); ok {
		_spec.SetField(readinesssnapshot.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentAccuracy(); ok {
		_spec.AddField(readinesssnapshot.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallAccuracy(); ok {
		_spec.SetField(readinesssnapshot.FieldOverallAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallAccuracy(); ok {
		_spec.AddField(readinesssnapshot.FieldOverallAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(readinesssnapshot.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverage(); ok {
		_spec.AddField(readinesssnapshot.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(readinesssnapshot.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(readinesssnapshot.FieldMastery, field.TypeFloat64, value)
	}
	_node = &ReadinessSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readinesssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
