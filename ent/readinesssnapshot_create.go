// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
)

// ReadinessSnapshotCreate is the builder for creating a ReadinessSnapshot entity.
type ReadinessSnapshotCreate struct {
	config
	mutation *ReadinessSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ReadinessSnapshotCreate) SetUserID(v string) *ReadinessSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamType sets the "exam_type" field.
func (_c *ReadinessSnapshotCreate) SetExamType(v string) *ReadinessSnapshotCreate {
	_c.mutation.SetExamType(v)
	return _c
}

// SetSnapshotDay sets the "snapshot_day" field.
func (_c *ReadinessSnapshotCreate) SetSnapshotDay(v string) *ReadinessSnapshotCreate {
	_c.mutation.SetSnapshotDay(v)
	return _c
}

// SetReadinessScore sets the "readiness_score" field.
func (_c *ReadinessSnapshotCreate) SetReadinessScore(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetReadinessScore(v)
	return _c
}

// SetPassProbability sets the "pass_probability" field.
func (_c *ReadinessSnapshotCreate) SetPassProbability(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetPassProbability(v)
	return _c
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (_c *ReadinessSnapshotCreate) SetRecentAccuracy(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetRecentAccuracy(v)
	return _c
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (_c *ReadinessSnapshotCreate) SetOverallAccuracy(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetOverallAccuracy(v)
	return _c
}

// SetCoverage sets the "coverage" field.
func (_c *ReadinessSnapshotCreate) SetCoverage(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetCoverage(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *ReadinessSnapshotCreate) SetMastery(v float64) *ReadinessSnapshotCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// Mutation returns the ReadinessSnapshotMutation object of the builder.
func (_c *ReadinessSnapshotCreate) Mutation() *ReadinessSnapshotMutation {
	return _c.mutation
}

// Save creates the ReadinessSnapshot in the database.
func (_c *ReadinessSnapshotCreate) Save(ctx context.Context) (*ReadinessSnapshot, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadinessSnapshotCreate) SaveX(ctx context.Context) *ReadinessSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadinessSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReadinessSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := readinesssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamType(); !ok {
		return &ValidationError{Name: "exam_type", err: errors.New(`ent: missing required field "ReadinessSnapshot.exam_type"`)}
	}
	if v, ok := _c.mutation.ExamType(); ok {
		if err := readinesssnapshot.ExamTypeValidator(v); err != nil {
			return &ValidationError{Name: "exam_type", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.exam_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SnapshotDay(); !ok {
		return &ValidationError{Name: "snapshot_day", err: errors.New(`ent: missing required field "ReadinessSnapshot.snapshot_day"`)}
	}
	if v, ok := _c.mutation.SnapshotDay(); ok {
		if err := readinesssnapshot.SnapshotDayValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_day", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.snapshot_day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadinessScore(); !ok {
		return &ValidationError{Name: "readiness_score", err: errors.New(`ent: missing required field "ReadinessSnapshot.readiness_score"`)}
	}
	if v, ok := _c.mutation.ReadinessScore(); ok {
		if err := readinesssnapshot.ReadinessScoreValidator(v); err != nil {
			return &ValidationError{Name: "readiness_score", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.readiness_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassProbability(); !ok {
		return &ValidationError{Name: "pass_probability", err: errors.New(`ent: missing required field "ReadinessSnapshot.pass_probability"`)}
	}
	if v, ok := _c.mutation.PassProbability(); ok {
		if err := readinesssnapshot.PassProbabilityValidator(v); err != nil {
			return &ValidationError{Name: "pass_probability", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.pass_probability": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecentAccuracy(); !ok {
		return &ValidationError{Name: "recent_accuracy", err: errors.New(`ent: missing required field "ReadinessSnapshot.recent_accuracy"`)}
	}
	if v, ok := _c.mutation.RecentAccuracy(); ok {
		if err := readinesssnapshot.RecentAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "recent_accuracy", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.recent_accuracy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallAccuracy(); !ok {
		return &ValidationError{Name: "overall_accuracy", err: errors.New(`ent: missing required field "ReadinessSnapshot.overall_accuracy"`)}
	}
	if v, ok := _c.mutation.OverallAccuracy(); ok {
		if err := readinesssnapshot.OverallAccuracyValidator(v); err != nil {
			return &ValidationError{Name: "overall_accuracy", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.overall_accuracy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Coverage(); !ok {
		return &ValidationError{Name: "coverage", err: errors.New(`ent: missing required field "ReadinessSnapshot.coverage"`)}
	}
	if v, ok := _c.mutation.Coverage(); ok {
		if err := readinesssnapshot.CoverageValidator(v); err != nil {
			return &ValidationError{Name: "coverage", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.coverage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "ReadinessSnapshot.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := readinesssnapshot.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "ReadinessSnapshot.mastery": %w`, err)}
		}
	}
	return nil
}

func (_c *ReadinessSnapshotCreate) sqlSave(ctx context.Context) (*ReadinessSnapshot, error) {
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

func (_c *ReadinessSnapshotCreate) createSpec() (*ReadinessSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadinessSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readinesssnapshot.Table, sqlgraph.NewFieldSpec(readinesssnapshot.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(readinesssnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamType(); ok {
		_spec.SetField(readinesssnapshot.FieldExamType, field.TypeString, value)
		_node.ExamType = value
	}
	if value, ok := _c.mutation.SnapshotDay(); ok {
		_spec.SetField(readinesssnapshot.FieldSnapshotDay, field.TypeString, value)
		_node.SnapshotDay = value
	}
	if value, ok := _c.mutation.ReadinessScore(); ok {
		_spec.SetField(readinesssnapshot.FieldReadinessScore, field.TypeFloat64, value)
		_node.ReadinessScore = value
	}
	if value, ok := _c.mutation.PassProbability(); ok {
		_spec.SetField(readinesssnapshot.FieldPassProbability, field.TypeFloat64, value)
		_node.PassProbability = value
	}
	if value, ok := _c.mutation.RecentAccuracy(); ok {
		_spec.SetField(readinesssnapshot.FieldRecentAccuracy, field.TypeFloat64, value)
		_node.RecentAccuracy = value
	}
	if value, ok := _c.mutation.OverallAccuracy(); ok {
		_spec.SetField(readinesssnapshot.FieldOverallAccuracy, field.TypeFloat64, value)
		_node.OverallAccuracy = value
	}
	if value, ok := _c.mutation.Coverage(); ok {
		_spec.SetField(readinesssnapshot.FieldCoverage, field.TypeFloat64, value)
		_node.Coverage = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(readinesssnapshot.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadinessSnapshot.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadinessSnapshotUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadinessSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *ReadinessSnapshotUpsertOne {
	_c.conflict = opts
	return &ReadinessSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadinessSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadinessSnapshotCreate) OnConflictColumns(columns ...string) *ReadinessSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadinessSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// ReadinessSnapshotUpsertOne is the builder for "upsert"-ing
	//  one ReadinessSnapshot node.
	ReadinessSnapshotUpsertOne struct {
		create *ReadinessSnapshotCreate
	}

	// ReadinessSnapshotUpsert is the "OnConflict" setter.
	ReadinessSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetReadinessScore sets the "readiness_score" field.
func (u *ReadinessSnapshotUpsert) SetReadinessScore(v float64) *ReadinessSnapshotUpsert {
	u.Set(readinesssnapshot.FieldReadinessScore, v)
	return u
}

// UpdateReadinessScore sets the "readiness_score" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsert) UpdateReadinessScore() *ReadinessSnapshotUpsert {
	u.SetExcluded(readinesssnapshot.FieldReadinessScore)
	return u
}

// AddReadinessScore adds v to the "readiness_score" field.
func (u *ReadinessSnapshotUpsert) AddReadinessScore(v float64) *ReadinessSnapshotUpsert {
	u.Add(readinesssnapshot.FieldReadinessScore, v)
	return u
}

// SetPassProbability sets the "pass_probability" field.
func (u *ReadinessSnapshotUpsert) SetPassProbability(v float64) *ReadinessSnapshotUpsert {
	u.Set(readinesssnapshot.FieldPassProbability, v)
	return u
}

// UpdatePassProbability sets the "pass_probability" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsert) UpdatePassProbability() *ReadinessSnapshotUpsert {
	u.SetExcluded(readinesssnapshot.FieldPassProbability)
	return u
}

// AddPassProbability adds v to the "pass_probability" field.
func (u *ReadinessSnapshotUpsert) AddPassProbability(v float64) *ReadinessSnapshotUpsert {
	u.Add(readinesssnapshot.FieldPassProbability, v)
	return u
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (u *ReadinessSnapshotUpsert) SetRecentAccuracy(v float64) *ReadinessSnapshotUpsert {
	u.Set(readinesssnapshot.FieldRecentAccuracy, v)
	return u
}

// UpdateRecentAccuracy sets the "recent_accuracy" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsert) UpdateRecentAccuracy() *ReadinessSnapshotUpsert {
	u.SetExcluded(readinesssnapshot.FieldRecentAccuracy)
	return u
}

// AddRecentAccuracy adds v to the "recent_accuracy" field.
func (u *ReadinessSnapshotUpsert) AddRecentAccuracy(v float64) *ReadinessSnapshotUpsert {
	u.Add(readinesssnapshot.FieldRecentAccuracy, v)
	return u
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (u *ReadinessSnapshotUpsert) SetOverallAccuracy(v float64) *ReadinessSnapshotUpsert {
	u.Set(readinesssnapshot.FieldOverallAccuracy, v)
	return u
}

// UpdateOverallAccuracy sets the "overall_accuracy" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsert) UpdateOverallAccuracy() *ReadinessSnapshotUpsert {
	u.SetExcluded(readinesssnapshot.FieldOverallAccuracy)
	return u
}

// AddOverallAccuracy adds v to the "overall_accuracy" field.
func (u *ReadinessSnapshotUpsert) AddOverallAccuracy(v float64) *ReadinessSnapshotUpsert {
	u.Add(readinesssnapshot.FieldOverallAccuracy, v)
	return u
}

// SetCoverage sets the "coverage" field.
func (u *ReadinessSnapshotUpsert) SetCoverage(v float64) *ReadinessSnapshotUpsert {
	u.Set(readinesssnapshot.FieldCoverage, v)
	return u
}

// UpdateCoverage sets the "coverage" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsert) UpdateCoverage() *ReadinessSnapshotUpsert {
	u.SetExcluded(readinesssnapshot.FieldCoverage)
	return u
}

// AddCoverage adds v to the "coverage" field.
func (u *ReadinessSnapshotUpsert) AddCoverage(v float64) *ReadinessSnapshotUpsert {
	u.Add(readinesssnapshot.FieldCoverage, v)
	return u
}

// SetMastery sets the "mastery" field.
func (u *ReadinessSnapshotUpsert) SetMastery(v float64) *ReadinessSnapshotUpsert {
	u.Set(readinesssnapshot.FieldMastery, v)
	return u
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsert) UpdateMastery() *ReadinessSnapshotUpsert {
	u.SetExcluded(readinesssnapshot.FieldMastery)
	return u
}

// AddMastery adds v to the "mastery" field.
func (u *ReadinessSnapshotUpsert) AddMastery(v float64) *ReadinessSnapshotUpsert {
	u.Add(readinesssnapshot.FieldMastery, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ReadinessSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadinessSnapshotUpsertOne) UpdateNewValues() *ReadinessSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(readinesssnapshot.FieldUserID)
		}
		if _, exists := u.create.mutation.ExamType(); exists {
			s.SetIgnore(readinesssnapshot.FieldExamType)
		}
		if _, exists := u.create.mutation.SnapshotDay(); exists {
			s.SetIgnore(readinesssnapshot.FieldSnapshotDay)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadinessSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReadinessSnapshotUpsertOne) Ignore() *ReadinessSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadinessSnapshotUpsertOne) DoNothing() *ReadinessSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadinessSnapshotCreate.OnConflict
// documentation for more info.
func (u *ReadinessSnapshotUpsertOne) Update(set func(*ReadinessSnapshotUpsert)) *ReadinessSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadinessSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetReadinessScore sets the "readiness_score" field.
func (u *ReadinessSnapshotUpsertOne) SetReadinessScore(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetReadinessScore(v)
	})
}

// AddReadinessScore adds v to the "readiness_score" field.
func (u *ReadinessSnapshotUpsertOne) AddReadinessScore(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddReadinessScore(v)
	})
}

// UpdateReadinessScore sets the "readiness_score" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertOne) UpdateReadinessScore() *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateReadinessScore()
	})
}

// SetPassProbability sets the "pass_probability" field.
func (u *ReadinessSnapshotUpsertOne) SetPassProbability(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetPassProbability(v)
	})
}

// AddPassProbability adds v to the "pass_probability" field.
func (u *ReadinessSnapshotUpsertOne) AddPassProbability(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddPassProbability(v)
	})
}

// UpdatePassProbability sets the "pass_probability" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertOne) UpdatePassProbability() *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdatePassProbability()
	})
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (u *ReadinessSnapshotUpsertOne) SetRecentAccuracy(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetRecentAccuracy(v)
	})
}

// AddRecentAccuracy adds v to the "recent_accuracy" field.
func (u *ReadinessSnapshotUpsertOne) AddRecentAccuracy(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddRecentAccuracy(v)
	})
}

// UpdateRecentAccuracy sets the "recent_accuracy" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertOne) UpdateRecentAccuracy() *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateRecentAccuracy()
	})
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (u *ReadinessSnapshotUpsertOne) SetOverallAccuracy(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetOverallAccuracy(v)
	})
}

// AddOverallAccuracy adds v to the "overall_accuracy" field.
func (u *ReadinessSnapshotUpsertOne) AddOverallAccuracy(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddOverallAccuracy(v)
	})
}

// UpdateOverallAccuracy sets the "overall_accuracy" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertOne) UpdateOverallAccuracy() *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateOverallAccuracy()
	})
}

// SetCoverage sets the "coverage" field.
func (u *ReadinessSnapshotUpsertOne) SetCoverage(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetCoverage(v)
	})
}

// AddCoverage adds v to the "coverage" field.
func (u *ReadinessSnapshotUpsertOne) AddCoverage(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddCoverage(v)
	})
}

// UpdateCoverage sets the "coverage" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertOne) UpdateCoverage() *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateCoverage()
	})
}

// SetMastery sets the "mastery" field.
func (u *ReadinessSnapshotUpsertOne) SetMastery(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetMastery(v)
	})
}

// AddMastery adds v to the "mastery" field.
func (u *ReadinessSnapshotUpsertOne) AddMastery(v float64) *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertOne) UpdateMastery() *ReadinessSnapshotUpsertOne {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateMastery()
	})
}

// Exec executes the query.
func (u *ReadinessSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadinessSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadinessSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReadinessSnapshotUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReadinessSnapshotUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReadinessSnapshotCreateBulk is the builder for creating many ReadinessSnapshot entities in bulk.
type ReadinessSnapshotCreateBulk struct {
	config
	err      error
	builders []*ReadinessSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the ReadinessSnapshot entities in the database.
func (_c *ReadinessSnapshotCreateBulk) Save(ctx context.Context) ([]*ReadinessSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadinessSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadinessSnapshotMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ReadinessSnapshotCreateBulk) SaveX(ctx context.Context) []*ReadinessSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadinessSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadinessSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReadinessSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReadinessSnapshotUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReadinessSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReadinessSnapshotUpsertBulk {
	_c.conflict = opts
	return &ReadinessSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReadinessSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReadinessSnapshotCreateBulk) OnConflictColumns(columns ...string) *ReadinessSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReadinessSnapshotUpsertBulk{
		create: _c,
	}
}

// ReadinessSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of ReadinessSnapshot nodes.
type ReadinessSnapshotUpsertBulk struct {
	create *ReadinessSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReadinessSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ReadinessSnapshotUpsertBulk) UpdateNewValues() *ReadinessSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(readinesssnapshot.FieldUserID)
			}
			if _, exists := b.mutation.ExamType(); exists {
				s.SetIgnore(readinesssnapshot.FieldExamType)
			}
			if _, exists := b.mutation.SnapshotDay(); exists {
				s.SetIgnore(readinesssnapshot.FieldSnapshotDay)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReadinessSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReadinessSnapshotUpsertBulk) Ignore() *ReadinessSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReadinessSnapshotUpsertBulk) DoNothing() *ReadinessSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReadinessSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *ReadinessSnapshotUpsertBulk) Update(set func(*ReadinessSnapshotUpsert)) *ReadinessSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReadinessSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetReadinessScore sets the "readiness_score" field.
func (u *ReadinessSnapshotUpsertBulk) SetReadinessScore(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetReadinessScore(v)
	})
}

// AddReadinessScore adds v to the "readiness_score" field.
func (u *ReadinessSnapshotUpsertBulk) AddReadinessScore(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddReadinessScore(v)
	})
}

// UpdateReadinessScore sets the "readiness_score" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertBulk) UpdateReadinessScore() *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateReadinessScore()
	})
}

// SetPassProbability sets the "pass_probability" field.
func (u *ReadinessSnapshotUpsertBulk) SetPassProbability(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetPassProbability(v)
	})
}

// AddPassProbability adds v to the "pass_probability" field.
func (u *ReadinessSnapshotUpsertBulk) AddPassProbability(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddPassProbability(v)
	})
}

// UpdatePassProbability sets the "pass_probability" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertBulk) UpdatePassProbability() *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdatePassProbability()
	})
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (u *ReadinessSnapshotUpsertBulk) SetRecentAccuracy(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetRecentAccuracy(v)
	})
}

// AddRecentAccuracy adds v to the "recent_accuracy" field.
func (u *ReadinessSnapshotUpsertBulk) AddRecentAccuracy(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddRecentAccuracy(v)
	})
}

// UpdateRecentAccuracy sets the "recent_accuracy" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertBulk) UpdateRecentAccuracy() *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateRecentAccuracy()
	})
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (u *ReadinessSnapshotUpsertBulk) SetOverallAccuracy(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetOverallAccuracy(v)
	})
}

// AddOverallAccuracy adds v to the "overall_accuracy" field.
func (u *ReadinessSnapshotUpsertBulk) AddOverallAccuracy(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddOverallAccuracy(v)
	})
}

// UpdateOverallAccuracy sets the "overall_accuracy" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertBulk) UpdateOverallAccuracy() *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateOverallAccuracy()
	})
}

// SetCoverage sets the "coverage" field.
func (u *ReadinessSnapshotUpsertBulk) SetCoverage(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetCoverage(v)
	})
}

// AddCoverage adds v to the "coverage" field.
func (u *ReadinessSnapshotUpsertBulk) AddCoverage(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddCoverage(v)
	})
}

// UpdateCoverage sets the "coverage" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertBulk) UpdateCoverage() *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateCoverage()
	})
}

// SetMastery sets the "mastery" field.
func (u *ReadinessSnapshotUpsertBulk) SetMastery(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.SetMastery(v)
	})
}

// AddMastery adds v to the "mastery" field.
func (u *ReadinessSnapshotUpsertBulk) AddMastery(v float64) *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.AddMastery(v)
	})
}

// UpdateMastery sets the "mastery" field to the value that was provided on create.
func (u *ReadinessSnapshotUpsertBulk) UpdateMastery() *ReadinessSnapshotUpsertBulk {
	return u.Update(func(s *ReadinessSnapshotUpsert) {
		s.UpdateMastery()
	})
}

// Exec executes the query.
func (u *ReadinessSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReadinessSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReadinessSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReadinessSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
