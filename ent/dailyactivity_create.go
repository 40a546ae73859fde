// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/dailyactivity"
)

// DailyActivityCreate is the builder for creating a DailyActivity entity.
type DailyActivityCreate struct {
	config
	mutation *DailyActivityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DailyActivityCreate) SetUserID(v string) *DailyActivityCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetActivityDay sets the "activity_day" field.
func (_c *DailyActivityCreate) SetActivityDay(v string) *DailyActivityCreate {
	_c.mutation.SetActivityDay(v)
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *DailyActivityCreate) SetQuestionsAnswered(v int) *DailyActivityCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *DailyActivityCreate) SetNillableQuestionsAnswered(v *int) *DailyActivityCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_c *DailyActivityCreate) SetQuestionsCorrect(v int) *DailyActivityCreate {
	_c.mutation.SetQuestionsCorrect(v)
	return _c
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_c *DailyActivityCreate) SetNillableQuestionsCorrect(v *int) *DailyActivityCreate {
	if v != nil {
		_c.SetQuestionsCorrect(*v)
	}
	return _c
}

// SetExamsCompleted sets the "exams_completed" field.
func (_c *DailyActivityCreate) SetExamsCompleted(v int) *DailyActivityCreate {
	_c.mutation.SetExamsCompleted(v)
	return _c
}

// SetNillableExamsCompleted sets the "exams_completed" field if the given value is not nil.
func (_c *DailyActivityCreate) SetNillableExamsCompleted(v *int) *DailyActivityCreate {
	if v != nil {
		_c.SetExamsCompleted(*v)
	}
	return _c
}

// SetExamsPassed sets the "exams_passed" field.
func (_c *DailyActivityCreate) SetExamsPassed(v int) *DailyActivityCreate {
	_c.mutation.SetExamsPassed(v)
	return _c
}

// SetNillableExamsPassed sets the "exams_passed" field if the given value is not nil.
func (_c *DailyActivityCreate) SetNillableExamsPassed(v *int) *DailyActivityCreate {
	if v != nil {
		_c.SetExamsPassed(*v)
	}
	return _c
}

// Mutation returns the DailyActivityMutation object of the builder.
func (_c *DailyActivityCreate) Mutation() *DailyActivityMutation {
	return _c.mutation
}

// Save creates the DailyActivity in the database.
func (_c *DailyActivityCreate) Save(ctx context.Context) (*DailyActivity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyActivityCreate) SaveX(ctx context.Context) *DailyActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyActivityCreate) defaults() {
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := dailyactivity.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		v := dailyactivity.DefaultQuestionsCorrect
		_c.mutation.SetQuestionsCorrect(v)
	}
	if _, ok := _c.mutation.ExamsCompleted(); !ok {
		v := dailyactivity.DefaultExamsCompleted
		_c.mutation.SetExamsCompleted(v)
	}
	if _, ok := _c.mutation.ExamsPassed(); !ok {
		v := dailyactivity.DefaultExamsPassed
		_c.mutation.SetExamsPassed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyActivityCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DailyActivity.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := dailyactivity.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityDay(); !ok {
		return &ValidationError{Name: "activity_day", err: errors.New(`ent: missing required field "DailyActivity.activity_day"`)}
	}
	if v, ok := _c.mutation.ActivityDay(); ok {
		if err := dailyactivity.ActivityDayValidator(v); err != nil {
			return &ValidationError{Name: "activity_day", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.activity_day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "DailyActivity.questions_answered"`)}
	}
	if v, ok := _c.mutation.QuestionsAnswered(); ok {
		if err := dailyactivity.QuestionsAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "questions_answered", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.questions_answered": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsCorrect(); !ok {
		return &ValidationError{Name: "questions_correct", err: errors.New(`ent: missing required field "DailyActivity.questions_correct"`)}
	}
	if v, ok := _c.mutation.QuestionsCorrect(); ok {
		if err := dailyactivity.QuestionsCorrectValidator(v); err != nil {
			return &ValidationError{Name: "questions_correct", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.questions_correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamsCompleted(); !ok {
		return &ValidationError{Name: "exams_completed", err: errors.New(`ent: missing required field "DailyActivity.exams_completed"`)}
	}
	if v, ok := _c.mutation.ExamsCompleted(); ok {
		if err := dailyactivity.ExamsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "exams_completed", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.exams_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamsPassed(); !ok {
		return &ValidationError{Name: "exams_passed", err: errors.New(`ent: missing required field "DailyActivity.exams_passed"`)}
	}
	if v, ok := _c.mutation.ExamsPassed(); ok {
		if err := dailyactivity.ExamsPassedValidator(v); err != nil {
			return &ValidationError{Name: "exams_passed", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.exams_passed": %w`, err)}
		}
	}
	return nil
}

func (_c *DailyActivityCreate) sqlSave(ctx context.Context) (*DailyActivity, error) {
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

func (_c *DailyActivityCreate) createSpec() (*DailyActivity, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyActivity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailyactivity.Table, sqlgraph.NewFieldSpec(dailyactivity.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(dailyactivity.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ActivityDay(); ok {
		_spec.SetField(dailyactivity.FieldActivityDay, field.TypeString, value)
		_node.ActivityDay = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(dailyactivity.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.QuestionsCorrect(); ok {
		_spec.SetField(dailyactivity.FieldQuestionsCorrect, field.TypeInt, value)
		_node.QuestionsCorrect = value
	}
	if value, ok := _c.mutation.ExamsCompleted(); ok {
		_spec.SetField(dailyactivity.FieldExamsCompleted, field.TypeInt, value)
		_node.ExamsCompleted = value
	}
	if value, ok := _c.mutation.ExamsPassed(); ok {
		_spec.SetField(dailyactivity.FieldExamsPassed, field.TypeInt, value)
		_node.ExamsPassed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyActivity.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyActivityUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyActivityCreate) OnConflict(opts ...sql.ConflictOption) *DailyActivityUpsertOne {
	_c.conflict = opts
	return &DailyActivityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyActivity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyActivityCreate) OnConflictColumns(columns ...string) *DailyActivityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyActivityUpsertOne{
		create: _c,
	}
}

type (
	// DailyActivityUpsertOne is the builder for "upsert"-ing
	//  one DailyActivity node.
	DailyActivityUpsertOne struct {
		create *DailyActivityCreate
	}

	// DailyActivityUpsert is the "OnConflict" setter.
	DailyActivityUpsert struct {
		*sql.UpdateSet
	}
)

// SetQuestionsAnswered sets the "questions_answered" field.
func (u *DailyActivityUpsert) SetQuestionsAnswered(v int) *DailyActivityUpsert {
	u.Set(dailyactivity.FieldQuestionsAnswered, v)
	return u
}

// UpdateQuestionsAnswered sets the "questions_answered" field to the value that was provided on create.
func (u *DailyActivityUpsert) UpdateQuestionsAnswered() *DailyActivityUpsert {
	u.SetExcluded(dailyactivity.FieldQuestionsAnswered)
	return u
}

// AddQuestionsAnswered adds v to the "questions_answered" field.
func (u *DailyActivityUpsert) AddQuestionsAnswered(v int) *DailyActivityUpsert {
	u.Add(dailyactivity.FieldQuestionsAnswered, v)
	return u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (u *DailyActivityUpsert) SetQuestionsCorrect(v int) *DailyActivityUpsert {
	u.Set(dailyactivity.FieldQuestionsCorrect, v)
	return u
}

// UpdateQuestionsCorrect sets the "questions_correct" field to the value that was provided on create.
func (u *DailyActivityUpsert) UpdateQuestionsCorrect() *DailyActivityUpsert {
	u.SetExcluded(dailyactivity.FieldQuestionsCorrect)
	return u
}

// AddQuestionsCorrect adds v to the "questions_correct" field.
func (u *DailyActivityUpsert) AddQuestionsCorrect(v int) *DailyActivityUpsert {
	u.Add(dailyactivity.FieldQuestionsCorrect, v)
	return u
}

// SetExamsCompleted sets the "exams_completed" field.
func (u *DailyActivityUpsert) SetExamsCompleted(v int) *DailyActivityUpsert {
	u.Set(dailyactivity.FieldExamsCompleted, v)
	return u
}

// UpdateExamsCompleted sets the "exams_completed" field to the value that was provided on create.
func (u *DailyActivityUpsert) UpdateExamsCompleted() *DailyActivityUpsert {
	u.SetExcluded(dailyactivity.FieldExamsCompleted)
	return u
}

// AddExamsCompleted adds v to the "exams_completed" field.
func (u *DailyActivityUpsert) AddExamsCompleted(v int) *DailyActivityUpsert {
	u.Add(dailyactivity.FieldExamsCompleted, v)
	return u
}

// SetExamsPassed sets the "exams_passed" field.
func (u *DailyActivityUpsert) SetExamsPassed(v int) *DailyActivityUpsert {
	u.Set(dailyactivity.FieldExamsPassed, v)
	return u
}

// UpdateExamsPassed sets the "exams_passed" field to the value that was provided on create.
func (u *DailyActivityUpsert) UpdateExamsPassed() *DailyActivityUpsert {
	u.SetExcluded(dailyactivity.FieldExamsPassed)
	return u
}

// AddExamsPassed adds v to the "exams_passed" field.
func (u *DailyActivityUpsert) AddExamsPassed(v int) *DailyActivityUpsert {
	u.Add(dailyactivity.FieldExamsPassed, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DailyActivity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DailyActivityUpsertOne) UpdateNewValues() *DailyActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(dailyactivity.FieldUserID)
		}
		if _, exists := u.create.mutation.ActivityDay(); exists {
			s.SetIgnore(dailyactivity.FieldActivityDay)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyActivity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DailyActivityUpsertOne) Ignore() *DailyActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyActivityUpsertOne) DoNothing() *DailyActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyActivityCreate.OnConflict
// documentation for more info.
func (u *DailyActivityUpsertOne) Update(set func(*DailyActivityUpsert)) *DailyActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (u *DailyActivityUpsertOne) SetQuestionsAnswered(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetQuestionsAnswered(v)
	})
}

// AddQuestionsAnswered adds v to the "questions_answered" field.
func (u *DailyActivityUpsertOne) AddQuestionsAnswered(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddQuestionsAnswered(v)
	})
}

// UpdateQuestionsAnswered sets the "questions_answered" field to the value that was provided on create.
func (u *DailyActivityUpsertOne) UpdateQuestionsAnswered() *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateQuestionsAnswered()
	})
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (u *DailyActivityUpsertOne) SetQuestionsCorrect(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetQuestionsCorrect(v)
	})
}

// AddQuestionsCorrect adds v to the "questions_correct" field.
func (u *DailyActivityUpsertOne) AddQuestionsCorrect(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddQuestionsCorrect(v)
	})
}

// UpdateQuestionsCorrect sets the "questions_correct" field to the value that was provided on create.
func (u *DailyActivityUpsertOne) UpdateQuestionsCorrect() *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateQuestionsCorrect()
	})
}

// SetExamsCompleted sets the "exams_completed" field.
func (u *DailyActivityUpsertOne) SetExamsCompleted(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetExamsCompleted(v)
	})
}

// AddExamsCompleted adds v to the "exams_completed" field.
func (u *DailyActivityUpsertOne) AddExamsCompleted(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddExamsCompleted(v)
	})
}

// UpdateExamsCompleted sets the "exams_completed" field to the value that was provided on create.
func (u *DailyActivityUpsertOne) UpdateExamsCompleted() *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateExamsCompleted()
	})
}

// SetExamsPassed sets the "exams_passed" field.
func (u *DailyActivityUpsertOne) SetExamsPassed(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetExamsPassed(v)
	})
}

// AddExamsPassed adds v to the "exams_passed" field.
func (u *DailyActivityUpsertOne) AddExamsPassed(v int) *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddExamsPassed(v)
	})
}

// UpdateExamsPassed sets the "exams_passed" field to the value that was provided on create.
func (u *DailyActivityUpsertOne) UpdateExamsPassed() *DailyActivityUpsertOne {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateExamsPassed()
	})
}

// Exec executes the query.
func (u *DailyActivityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyActivityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyActivityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DailyActivityUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DailyActivityUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DailyActivityCreateBulk is the builder for creating many DailyActivity entities in bulk.
type DailyActivityCreateBulk struct {
	config
	err      error
	builders []*DailyActivityCreate
	conflict []sql.ConflictOption
}

// Save creates the DailyActivity entities in the database.
func (_c *DailyActivityCreateBulk) Save(ctx context.Context) ([]*DailyActivity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyActivity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyActivityMutation)
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
func (_c *DailyActivityCreateBulk) SaveX(ctx context.Context) []*DailyActivity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyActivity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyActivityUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyActivityCreateBulk) OnConflict(opts ...sql.ConflictOption) *DailyActivityUpsertBulk {
	_c.conflict = opts
	return &DailyActivityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyActivity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyActivityCreateBulk) OnConflictColumns(columns ...string) *DailyActivityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyActivityUpsertBulk{
		create: _c,
	}
}

// DailyActivityUpsertBulk is the builder for "upsert"-ing
// a bulk of DailyActivity nodes.
type DailyActivityUpsertBulk struct {
	create *DailyActivityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DailyActivity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DailyActivityUpsertBulk) UpdateNewValues() *DailyActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(dailyactivity.FieldUserID)
			}
			if _, exists := b.mutation.ActivityDay(); exists {
				s.SetIgnore(dailyactivity.FieldActivityDay)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyActivity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DailyActivityUpsertBulk) Ignore() *DailyActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyActivityUpsertBulk) DoNothing() *DailyActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyActivityCreateBulk.OnConflict
// documentation for more info.
func (u *DailyActivityUpsertBulk) Update(set func(*DailyActivityUpsert)) *DailyActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (u *DailyActivityUpsertBulk) SetQuestionsAnswered(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetQuestionsAnswered(v)
	})
}

// AddQuestionsAnswered adds v to the "questions_answered" field.
func (u *DailyActivityUpsertBulk) AddQuestionsAnswered(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddQuestionsAnswered(v)
	})
}

// UpdateQuestionsAnswered sets the "questions_answered" field to the value that was provided on create.
func (u *DailyActivityUpsertBulk) UpdateQuestionsAnswered() *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateQuestionsAnswered()
	})
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (u *DailyActivityUpsertBulk) SetQuestionsCorrect(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetQuestionsCorrect(v)
	})
}

// AddQuestionsCorrect adds v to the "questions_correct" field.
func (u *DailyActivityUpsertBulk) AddQuestionsCorrect(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddQuestionsCorrect(v)
	})
}

// UpdateQuestionsCorrect sets the "questions_correct" field to the value that was provided on create.
func (u *DailyActivityUpsertBulk) UpdateQuestionsCorrect() *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateQuestionsCorrect()
	})
}

// SetExamsCompleted sets the "exams_completed" field.
func (u *DailyActivityUpsertBulk) SetExamsCompleted(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetExamsCompleted(v)
	})
}

// AddExamsCompleted adds v to the "exams_completed" field.
func (u *DailyActivityUpsertBulk) AddExamsCompleted(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddExamsCompleted(v)
	})
}

// UpdateExamsCompleted sets the "exams_completed" field to the value that was provided on create.
func (u *DailyActivityUpsertBulk) UpdateExamsCompleted() *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateExamsCompleted()
	})
}

// SetExamsPassed sets the "exams_passed" field.
func (u *DailyActivityUpsertBulk) SetExamsPassed(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.SetExamsPassed(v)
	})
}

// AddExamsPassed adds v to the "exams_passed" field.
func (u *DailyActivityUpsertBulk) AddExamsPassed(v int) *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.AddExamsPassed(v)
	})
}

// UpdateExamsPassed sets the "exams_passed" field to the value that was provided on create.
func (u *DailyActivityUpsertBulk) UpdateExamsPassed() *DailyActivityUpsertBulk {
	return u.Update(func(s *DailyActivityUpsert) {
		s.UpdateExamsPassed()
	})
}

// Exec executes the query.
func (u *DailyActivityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DailyActivityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyActivityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyActivityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
