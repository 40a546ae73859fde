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
	"github.com/jmarlow/hamprep/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptCreate) SetSequence(v int64) *AttemptCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptCreate) SetTimestamp(v time.Time) *AttemptCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTimestamp(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptCreate) SetAttemptID(v string) *AttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v string) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AttemptCreate) SetQuestionID(v string) *AttemptCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetDisplayCode sets the "display_code" field.
func (_c *AttemptCreate) SetDisplayCode(v string) *AttemptCreate {
	_c.mutation.SetDisplayCode(v)
	return _c
}

// SetSelectedIndex sets the "selected_index" field.
func (_c *AttemptCreate) SetSelectedIndex(v int) *AttemptCreate {
	_c.mutation.SetSelectedIndex(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptCreate) SetCorrect(v bool) *AttemptCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSessionKind sets the "session_kind" field.
func (_c *AttemptCreate) SetSessionKind(v string) *AttemptCreate {
	_c.mutation.SetSessionKind(v)
	return _c
}

// SetParentExamID sets the "parent_exam_id" field.
func (_c *AttemptCreate) SetParentExamID(v string) *AttemptCreate {
	_c.mutation.SetParentExamID(v)
	return _c
}

// SetNillableParentExamID sets the "parent_exam_id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableParentExamID(v *string) *AttemptCreate {
	if v != nil {
		_c.SetParentExamID(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attempt.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Attempt.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Attempt.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Attempt.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Attempt.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := attempt.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayCode(); !ok {
		return &ValidationError{Name: "display_code", err: errors.New(`ent: missing required field "Attempt.display_code"`)}
	}
	if v, ok := _c.mutation.DisplayCode(); ok {
		if err := attempt.DisplayCodeValidator(v); err != nil {
			return &ValidationError{Name: "display_code", err: fmt.Errorf(`ent: validator failed for field "Attempt.display_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedIndex(); !ok {
		return &ValidationError{Name: "selected_index", err: errors.New(`ent: missing required field "Attempt.selected_index"`)}
	}
	if v, ok := _c.mutation.SelectedIndex(); ok {
		if err := attempt.SelectedIndexValidator(v); err != nil {
			return &ValidationError{Name: "selected_index", err: fmt.Errorf(`ent: validator failed for field "Attempt.selected_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "Attempt.correct"`)}
	}
	if _, ok := _c.mutation.SessionKind(); !ok {
		return &ValidationError{Name: "session_kind", err: errors.New(`ent: missing required field "Attempt.session_kind"`)}
	}
	if v, ok := _c.mutation.SessionKind(); ok {
		if err := attempt.SessionKindValidator(v); err != nil {
			return &ValidationError{Name: "session_kind", err: fmt.Errorf(`ent: validator failed for field "Attempt.session_kind": %w`, err)}
		}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attempt.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attempt.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(attempt.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.DisplayCode(); ok {
		_spec.SetField(attempt.FieldDisplayCode, field.TypeString, value)
		_node.DisplayCode = value
	}
	if value, ok := _c.mutation.SelectedIndex(); ok {
		_spec.SetField(attempt.FieldSelectedIndex, field.TypeInt, value)
		_node.SelectedIndex = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attempt.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.SessionKind(); ok {
		_spec.SetField(attempt.FieldSessionKind, field.TypeString, value)
		_node.SessionKind = value
	}
	if value, ok := _c.mutation.ParentExamID(); ok {
		_spec.SetField(attempt.FieldParentExamID, field.TypeString, value)
		_node.ParentExamID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attempt.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptCreate) OnConflict(opts ...sql.ConflictOption) *AttemptUpsertOne {
	_c.conflict = opts
	return &AttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptCreate) OnConflictColumns(columns ...string) *AttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptUpsertOne{
		create: _c,
	}
}

type (
	// AttemptUpsertOne is the builder for "upsert"-ing
	//  one Attempt node.
	AttemptUpsertOne struct {
		create *AttemptCreate
	}

	// AttemptUpsert is the "OnConflict" setter.
	AttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Attempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptUpsertOne) UpdateNewValues() *AttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attempt.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attempt.FieldTimestamp)
		}
		if _, exists := u.create.mutation.AttemptID(); exists {
			s.SetIgnore(attempt.FieldAttemptID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(attempt.FieldUserID)
		}
		if _, exists := u.create.mutation.QuestionID(); exists {
			s.SetIgnore(attempt.FieldQuestionID)
		}
		if _, exists := u.create.mutation.DisplayCode(); exists {
			s.SetIgnore(attempt.FieldDisplayCode)
		}
		if _, exists := u.create.mutation.SelectedIndex(); exists {
			s.SetIgnore(attempt.FieldSelectedIndex)
		}
		if _, exists := u.create.mutation.Correct(); exists {
			s.SetIgnore(attempt.FieldCorrect)
		}
		if _, exists := u.create.mutation.SessionKind(); exists {
			s.SetIgnore(attempt.FieldSessionKind)
		}
		if _, exists := u.create.mutation.ParentExamID(); exists {
			s.SetIgnore(attempt.FieldParentExamID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptUpsertOne) Ignore() *AttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptUpsertOne) DoNothing() *AttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptCreate.OnConflict
// documentation for more info.
func (u *AttemptUpsertOne) Update(set func(*AttemptUpsert)) *AttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptUpsertBulk {
	_c.conflict = opts
	return &AttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptCreateBulk) OnConflictColumns(columns ...string) *AttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptUpsertBulk{
		create: _c,
	}
}

// AttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of Attempt nodes.
type AttemptUpsertBulk struct {
	create *AttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Attempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptUpsertBulk) UpdateNewValues() *AttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attempt.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attempt.FieldTimestamp)
			}
			if _, exists := b.mutation.AttemptID(); exists {
				s.SetIgnore(attempt.FieldAttemptID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(attempt.FieldUserID)
			}
			if _, exists := b.mutation.QuestionID(); exists {
				s.SetIgnore(attempt.FieldQuestionID)
			}
			if _, exists := b.mutation.DisplayCode(); exists {
				s.SetIgnore(attempt.FieldDisplayCode)
			}
			if _, exists := b.mutation.SelectedIndex(); exists {
				s.SetIgnore(attempt.FieldSelectedIndex)
			}
			if _, exists := b.mutation.Correct(); exists {
				s.SetIgnore(attempt.FieldCorrect)
			}
			if _, exists := b.mutation.SessionKind(); exists {
				s.SetIgnore(attempt.FieldSessionKind)
			}
			if _, exists := b.mutation.ParentExamID(); exists {
				s.SetIgnore(attempt.FieldParentExamID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptUpsertBulk) Ignore() *AttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptUpsertBulk) DoNothing() *AttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptUpsertBulk) Update(set func(*AttemptUpsert)) *AttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
