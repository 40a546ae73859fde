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
	"github.com/jmarlow/hamprep/ent/examattempt"
)

// ExamAttemptCreate is the builder for creating a ExamAttempt entity.
type ExamAttemptCreate struct {
	config
	mutation *ExamAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExamAttemptID sets the "exam_attempt_id" field.
func (_c *ExamAttemptCreate) SetExamAttemptID(v string) *ExamAttemptCreate {
	_c.mutation.SetExamAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExamAttemptCreate) SetUserID(v string) *ExamAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetExamType sets the "exam_type" field.
func (_c *ExamAttemptCreate) SetExamType(v string) *ExamAttemptCreate {
	_c.mutation.SetExamType(v)
	return _c
}

// SetRawScore sets the "raw_score" field.
func (_c *ExamAttemptCreate) SetRawScore(v int) *ExamAttemptCreate {
	_c.mutation.SetRawScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *ExamAttemptCreate) SetTotalQuestions(v int) *ExamAttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *ExamAttemptCreate) SetPercentage(v int) *ExamAttemptCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExamAttemptCreate) SetPassed(v bool) *ExamAttemptCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExamAttemptCreate) SetCreatedAt(v time.Time) *ExamAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExamAttemptCreate) SetNillableCreatedAt(v *time.Time) *ExamAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExamAttemptMutation object of the builder.
func (_c *ExamAttemptCreate) Mutation() *ExamAttemptMutation {
	return _c.mutation
}

// Save creates the ExamAttempt in the database.
func (_c *ExamAttemptCreate) Save(ctx context.Context) (*ExamAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamAttemptCreate) SaveX(ctx context.Context) *ExamAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := examattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamAttemptCreate) check() error {
	if _, ok := _c.mutation.ExamAttemptID(); !ok {
		return &ValidationError{Name: "exam_attempt_id", err: errors.New(`ent: missing required field "ExamAttempt.exam_attempt_id"`)}
	}
	if v, ok := _c.mutation.ExamAttemptID(); ok {
		if err := examattempt.ExamAttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.exam_attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExamAttempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := examattempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamType(); !ok {
		return &ValidationError{Name: "exam_type", err: errors.New(`ent: missing required field "ExamAttempt.exam_type"`)}
	}
	if v, ok := _c.mutation.ExamType(); ok {
		if err := examattempt.ExamTypeValidator(v); err != nil {
			return &ValidationError{Name: "exam_type", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.exam_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawScore(); !ok {
		return &ValidationError{Name: "raw_score", err: errors.New(`ent: missing required field "ExamAttempt.raw_score"`)}
	}
	if v, ok := _c.mutation.RawScore(); ok {
		if err := examattempt.RawScoreValidator(v); err != nil {
			return &ValidationError{Name: "raw_score", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.raw_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "ExamAttempt.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := examattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "ExamAttempt.percentage"`)}
	}
	if v, ok := _c.mutation.Percentage(); ok {
		if err := examattempt.PercentageValidator(v); err != nil {
			return &ValidationError{Name: "percentage", err: fmt.Errorf(`ent: validator failed for field "ExamAttempt.percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExamAttempt.passed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExamAttempt.created_at"`)}
	}
	return nil
}

func (_c *ExamAttemptCreate) sqlSave(ctx context.Context) (*ExamAttempt, error) {
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

func (_c *ExamAttemptCreate) createSpec() (*ExamAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examattempt.Table, sqlgraph.NewFieldSpec(examattempt.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ExamAttemptID(); ok {
		_spec.SetField(examattempt.FieldExamAttemptID, field.TypeString, value)
		_node.ExamAttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(examattempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ExamType(); ok {
		_spec.SetField(examattempt.FieldExamType, field.TypeString, value)
		_node.ExamType = value
	}
	if value, ok := _c.mutation.RawScore(); ok {
		_spec.SetField(examattempt.FieldRawScore, field.TypeInt, value)
		_node.RawScore = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(examattempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(examattempt.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(examattempt.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(examattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExamAttempt.Create().
//		SetExamAttemptID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExamAttemptUpsert) {
//			SetExamAttemptID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExamAttemptCreate) OnConflict(opts ...sql.ConflictOption) *ExamAttemptUpsertOne {
	_c.conflict = opts
	return &ExamAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExamAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExamAttemptCreate) OnConflictColumns(columns ...string) *ExamAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExamAttemptUpsertOne{
		create: _c,
	}
}

type (
	// ExamAttemptUpsertOne is the builder for "upsert"-ing
	//  one ExamAttempt node.
	ExamAttemptUpsertOne struct {
		create *ExamAttemptCreate
	}

	// ExamAttemptUpsert is the "OnConflict" setter.
	ExamAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExamAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExamAttemptUpsertOne) UpdateNewValues() *ExamAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ExamAttemptID(); exists {
			s.SetIgnore(examattempt.FieldExamAttemptID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(examattempt.FieldUserID)
		}
		if _, exists := u.create.mutation.ExamType(); exists {
			s.SetIgnore(examattempt.FieldExamType)
		}
		if _, exists := u.create.mutation.RawScore(); exists {
			s.SetIgnore(examattempt.FieldRawScore)
		}
		if _, exists := u.create.mutation.TotalQuestions(); exists {
			s.SetIgnore(examattempt.FieldTotalQuestions)
		}
		if _, exists := u.create.mutation.Percentage(); exists {
			s.SetIgnore(examattempt.FieldPercentage)
		}
		if _, exists := u.create.mutation.Passed(); exists {
			s.SetIgnore(examattempt.FieldPassed)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(examattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExamAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExamAttemptUpsertOne) Ignore() *ExamAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExamAttemptUpsertOne) DoNothing() *ExamAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExamAttemptCreate.OnConflict
// documentation for more info.
func (u *ExamAttemptUpsertOne) Update(set func(*ExamAttemptUpsert)) *ExamAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExamAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ExamAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExamAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExamAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExamAttemptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExamAttemptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExamAttemptCreateBulk is the builder for creating many ExamAttempt entities in bulk.
type ExamAttemptCreateBulk struct {
	config
	err      error
	builders []*ExamAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the ExamAttempt entities in the database.
func (_c *ExamAttemptCreateBulk) Save(ctx context.Context) ([]*ExamAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamAttemptMutation)
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
func (_c *ExamAttemptCreateBulk) SaveX(ctx context.Context) []*ExamAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExamAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExamAttemptUpsert) {
//			SetExamAttemptID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExamAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExamAttemptUpsertBulk {
	_c.conflict = opts
	return &ExamAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExamAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExamAttemptCreateBulk) OnConflictColumns(columns ...string) *ExamAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExamAttemptUpsertBulk{
		create: _c,
	}
}

// ExamAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of ExamAttempt nodes.
type ExamAttemptUpsertBulk struct {
	create *ExamAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExamAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExamAttemptUpsertBulk) UpdateNewValues() *ExamAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ExamAttemptID(); exists {
				s.SetIgnore(examattempt.FieldExamAttemptID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(examattempt.FieldUserID)
			}
			if _, exists := b.mutation.ExamType(); exists {
				s.SetIgnore(examattempt.FieldExamType)
			}
			if _, exists := b.mutation.RawScore(); exists {
				s.SetIgnore(examattempt.FieldRawScore)
			}
			if _, exists := b.mutation.TotalQuestions(); exists {
				s.SetIgnore(examattempt.FieldTotalQuestions)
			}
			if _, exists := b.mutation.Percentage(); exists {
				s.SetIgnore(examattempt.FieldPercentage)
			}
			if _, exists := b.mutation.Passed(); exists {
				s.SetIgnore(examattempt.FieldPassed)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(examattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExamAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExamAttemptUpsertBulk) Ignore() *ExamAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExamAttemptUpsertBulk) DoNothing() *ExamAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExamAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *ExamAttemptUpsertBulk) Update(set func(*ExamAttemptUpsert)) *ExamAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExamAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ExamAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExamAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExamAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExamAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
