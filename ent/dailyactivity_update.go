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
	"github.com/jmarlow/hamprep/ent/predicate"
)

// DailyActivityUpdate is the builder for updating DailyActivity entities.
type DailyActivityUpdate struct {
	config
	hooks    []Hook
	mutation *DailyActivityMutation
}

// Where appends a list predicates to the DailyActivityUpdate builder.
func (_u *DailyActivityUpdate) Where(ps ...predicate.DailyActivity) *DailyActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *DailyActivityUpdate) SetQuestionsAnswered(v int) *DailyActivityUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *DailyActivityUpdate) SetNillableQuestionsAnswered(v *int) *DailyActivityUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *DailyActivityUpdate) AddQuestionsAnswered(v int) *DailyActivityUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *DailyActivityUpdate) SetQuestionsCorrect(v int) *DailyActivityUpdate {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *DailyActivityUpdate) SetNillableQuestionsCorrect(v *int) *DailyActivityUpdate {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *DailyActivityUpdate) AddQuestionsCorrect(v int) *DailyActivityUpdate {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetExamsCompleted sets the "exams_completed" field.
func (_u *DailyActivityUpdate) SetExamsCompleted(v int) *DailyActivityUpdate {
	_u.mutation.ResetExamsCompleted()
	_u.mutation.SetExamsCompleted(v)
	return _u
}

// SetNillableExamsCompleted sets the "exams_completed" field if the given value is not nil.
func (_u *DailyActivityUpdate) SetNillableExamsCompleted(v *int) *DailyActivityUpdate {
	if v != nil {
		_u.SetExamsCompleted(*v)
	}
	return _u
}

// AddExamsCompleted adds value to the "exams_completed" field.
func (_u *DailyActivityUpdate) AddExamsCompleted(v int) *DailyActivityUpdate {
	_u.mutation.AddExamsCompleted(v)
	return _u
}

// SetExamsPassed sets the "exams_passed" field.
func (_u *DailyActivityUpdate) SetExamsPassed(v int) *DailyActivityUpdate {
	_u.mutation.ResetExamsPassed()
	_u.mutation.SetExamsPassed(v)
	return _u
}

// SetNillableExamsPassed sets the "exams_passed" field if the given value is not nil.
func (_u *DailyActivityUpdate) SetNillableExamsPassed(v *int) *DailyActivityUpdate {
	if v != nil {
		_u.SetExamsPassed(*v)
	}
	return _u
}

// AddExamsPassed adds value to the "exams_passed" field.
func (_u *DailyActivityUpdate) AddExamsPassed(v int) *DailyActivityUpdate {
	_u.mutation.AddExamsPassed(v)
	return _u
}

// Mutation returns the DailyActivityMutation object of the builder.
func (_u *DailyActivityUpdate) Mutation() *DailyActivityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyActivityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyActivityUpdate) check() error {
	if v, ok := _u.mutation.QuestionsAnswered(); ok {
		if err := dailyactivity.QuestionsAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "questions_answered", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.questions_answered": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsCorrect(); ok {
		if err := dailyactivity.QuestionsCorrectValidator(v); err != nil {
			return &ValidationError{Name: "questions_correct", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.questions_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamsCompleted(); ok {
		if err := dailyactivity.ExamsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "exams_completed", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.exams_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamsPassed(); ok {
		if err := dailyactivity.ExamsPassedValidator(v); err != nil {
			return &ValidationError{Name: "exams_passed", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.exams_passed": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyactivity.Table, dailyactivity.Columns, sqlgraph.NewFieldSpec(dailyactivity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(dailyactivity.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(dailyactivity.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(dailyactivity.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(dailyactivity.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsCompleted(); ok {
		_spec.SetField(dailyactivity.FieldExamsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsCompleted(); ok {
		_spec.AddField(dailyactivity.FieldExamsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsPassed(); ok {
		_spec.SetField(dailyactivity.FieldExamsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsPassed(); ok {
		_spec.AddField(dailyactivity.FieldExamsPassed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyActivityUpdateOne is the builder for updating a single DailyActivity entity.
type DailyActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyActivityMutation
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *DailyActivityUpdateOne) SetQuestionsAnswered(v int) *DailyActivityUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *DailyActivityUpdateOne) SetNillableQuestionsAnswered(v *int) *DailyActivityUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *DailyActivityUpdateOne) AddQuestionsAnswered(v int) *DailyActivityUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (_u *DailyActivityUpdateOne) SetQuestionsCorrect(v int) *DailyActivityUpdateOne {
	_u.mutation.ResetQuestionsCorrect()
	_u.mutation.SetQuestionsCorrect(v)
	return _u
}

// SetNillableQuestionsCorrect sets the "questions_correct" field if the given value is not nil.
func (_u *DailyActivityUpdateOne) SetNillableQuestionsCorrect(v *int) *DailyActivityUpdateOne {
	if v != nil {
		_u.SetQuestionsCorrect(*v)
	}
	return _u
}

// AddQuestionsCorrect adds value to the "questions_correct" field.
func (_u *DailyActivityUpdateOne) AddQuestionsCorrect(v int) *DailyActivityUpdateOne {
	_u.mutation.AddQuestionsCorrect(v)
	return _u
}

// SetExamsCompleted sets the "exams_completed" field.
func (_u *DailyActivityUpdateOne) SetExamsCompleted(v int) *DailyActivityUpdateOne {
	_u.mutation.ResetExamsCompleted()
	_u.mutation.SetExamsCompleted(v)
	return _u
}

// SetNillableExamsCompleted sets the "exams_completed" field if the given value is not nil.
func (_u *DailyActivityUpdateOne) SetNillableExamsCompleted(v *int) *DailyActivityUpdateOne {
	if v != nil {
		_u.SetExamsCompleted(*v)
	}
	return _u
}

// AddExamsCompleted adds value to the "exams_completed" field.
func (_u *DailyActivityUpdateOne) AddExamsCompleted(v int) *DailyActivityUpdateOne {
	_u.mutation.AddExamsCompleted(v)
	return _u
}

// SetExamsPassed sets the "exams_passed" field.
func (_u *DailyActivityUpdateOne) SetExamsPassed(v int) *DailyActivityUpdateOne {
	_u.mutation.ResetExamsPassed()
	_u.mutation.SetExamsPassed(v)
	return _u
}

// SetNillableExamsPassed sets the "exams_passed" field if the given value is not nil.
func (_u *DailyActivityUpdateOne) SetNillableExamsPassed(v *int) *DailyActivityUpdateOne {
	if v != nil {
		_u.SetExamsPassed(*v)
	}
	return _u
}

// AddExamsPassed adds value to the "exams_passed" field.
func (_u *DailyActivityUpdateOne) AddExamsPassed(v int) *DailyActivityUpdateOne {
	_u.mutation.AddExamsPassed(v)
	return _u
}

// Mutation returns the DailyActivityMutation object of the builder.
func (_u *DailyActivityUpdateOne) Mutation() *DailyActivityMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyActivityUpdate builder.
func (_u *DailyActivityUpdateOne) Where(ps ...predicate.DailyActivity) *DailyActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyActivityUpdateOne) Select(field string, fields ...string) *DailyActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyActivity entity.
func (_u *DailyActivityUpdateOne) Save(ctx context.Context) (*DailyActivity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyActivityUpdateOne) SaveX(ctx context.Context) *DailyActivity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyActivityUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionsAnswered(); ok {
		if err := dailyactivity.QuestionsAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "questions_answered", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.questions_answered": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionsCorrect(); ok {
		if err := dailyactivity.QuestionsCorrectValidator(v); err != nil {
			return &ValidationError{Name: "questions_correct", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.questions_correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamsCompleted(); ok {
		if err := dailyactivity.ExamsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "exams_completed", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.exams_completed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamsPassed(); ok {
		if err := dailyactivity.ExamsPassedValidator(v); err != nil {
			return &ValidationError{Name: "exams_passed", err: fmt.Errorf(`ent: validator failed for field "DailyActivity.exams_passed": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyActivityUpdateOne) sqlSave(ctx context.Context) (_node *DailyActivity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyactivity.Table, dailyactivity.Columns, sqlgraph.NewFieldSpec(dailyactivity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyActivity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyactivity.FieldID)
		for _, f := range fields {
			if !dailyactivity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyactivity.FieldID {
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
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(dailyactivity.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(dailyactivity.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsCorrect(); ok {
		_spec.SetField(dailyactivity.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsCorrect(); ok {
		_spec.AddField(dailyactivity.FieldQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsCompleted(); ok {
		_spec.SetField(dailyactivity.FieldExamsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsCompleted(); ok {
		_spec.AddField(dailyactivity.FieldExamsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExamsPassed(); ok {
		_spec.SetField(dailyactivity.FieldExamsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExamsPassed(); ok {
		_spec.AddField(dailyactivity.FieldExamsPassed, field.TypeInt, value)
	}
	_node = &DailyActivity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyactivity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
