// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/attempt"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
	"github.com/jmarlow/hamprep/ent/dailyactivity"
	"github.com/jmarlow/hamprep/ent/examattempt"
	"github.com/jmarlow/hamprep/ent/predicate"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
	"github.com/jmarlow/hamprep/ent/telemetryevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttempt           = "Attempt"
	TypeBadgeUnlock       = "BadgeUnlock"
	TypeDailyActivity     = "DailyActivity"
	TypeExamAttempt       = "ExamAttempt"
	TypeReadinessSnapshot = "ReadinessSnapshot"
	TypeTelemetryEvent    = "TelemetryEvent"
)

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	attempt_id        *string
	user_id           *string
	question_id       *string
	display_code      *string
	selected_index    *int
	addselected_index *int
	correct           *bool
	session_kind      *string
	parent_exam_id    *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Attempt, error)
	predicates        []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetDisplayCode sets the "display_code" field.
func (m *AttemptMutation) SetDisplayCode(s string) {
	m.display_code = &s
}

// DisplayCode returns the value of the "display_code" field in the mutation.
func (m *AttemptMutation) DisplayCode() (r string, exists bool) {
	v := m.display_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayCode returns the old "display_code" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldDisplayCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayCode: %w", err)
	}
	return oldValue.DisplayCode, nil
}

// ResetDisplayCode resets all changes to the "display_code" field.
func (m *AttemptMutation) ResetDisplayCode() {
	m.display_code = nil
}

// SetSelectedIndex sets the "selected_index" field.
func (m *AttemptMutation) SetSelectedIndex(i int) {
	m.selected_index = &i
	m.addselected_index = nil
}

// SelectedIndex returns the value of the "selected_index" field in the mutation.
func (m *AttemptMutation) SelectedIndex() (r int, exists bool) {
	v := m.selected_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedIndex returns the old "selected_index" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSelectedIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedIndex: %w", err)
	}
	return oldValue.SelectedIndex, nil
}

// AddSelectedIndex adds i to the "selected_index" field.
func (m *AttemptMutation) AddSelectedIndex(i int) {
	if m.addselected_index != nil {
		*m.addselected_index += i
	} else {
		m.addselected_index = &i
	}
}

// AddedSelectedIndex returns the value that was added to the "selected_index" field in this mutation.
func (m *AttemptMutation) AddedSelectedIndex() (r int, exists bool) {
	v := m.addselected_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelectedIndex resets all changes to the "selected_index" field.
func (m *AttemptMutation) ResetSelectedIndex() {
	m.selected_index = nil
	m.addselected_index = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetSessionKind sets the "session_kind" field.
func (m *AttemptMutation) SetSessionKind(s string) {
	m.session_kind = &s
}

// SessionKind returns the value of the "session_kind" field in the mutation.
func (m *AttemptMutation) SessionKind() (r string, exists bool) {
	v := m.session_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKind returns the old "session_kind" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldSessionKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKind: %w", err)
	}
	return oldValue.SessionKind, nil
}

// ResetSessionKind resets all changes to the "session_kind" field.
func (m *AttemptMutation) ResetSessionKind() {
	m.session_kind = nil
}

// SetParentExamID sets the "parent_exam_id" field.
func (m *AttemptMutation) SetParentExamID(s string) {
	m.parent_exam_id = &s
}

// ParentExamID returns the value of the "parent_exam_id" field in the mutation.
func (m *AttemptMutation) ParentExamID() (r string, exists bool) {
	v := m.parent_exam_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentExamID returns the old "parent_exam_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldParentExamID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentExamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentExamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentExamID: %w", err)
	}
	return oldValue.ParentExamID, nil
}

// ClearParentExamID clears the value of the "parent_exam_id" field.
func (m *AttemptMutation) ClearParentExamID() {
	m.parent_exam_id = nil
	m.clearedFields[attempt.FieldParentExamID] = struct{}{}
}

// ParentExamIDCleared returns if the "parent_exam_id" field was cleared in this mutation.
func (m *AttemptMutation) ParentExamIDCleared() bool {
	_, ok := m.clearedFields[attempt.FieldParentExamID]
	return ok
}

// ResetParentExamID resets all changes to the "parent_exam_id" field.
func (m *AttemptMutation) ResetParentExamID() {
	m.parent_exam_id = nil
	delete(m.clearedFields, attempt.FieldParentExamID)
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, attempt.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attempt.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, attempt.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, attempt.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, attempt.FieldQuestionID)
	}
	if m.display_code != nil {
		fields = append(fields, attempt.FieldDisplayCode)
	}
	if m.selected_index != nil {
		fields = append(fields, attempt.FieldSelectedIndex)
	}
	if m.correct != nil {
		fields = append(fields, attempt.FieldCorrect)
	}
	if m.session_kind != nil {
		fields = append(fields, attempt.FieldSessionKind)
	}
	if m.parent_exam_id != nil {
		fields = append(fields, attempt.FieldParentExamID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldSequence:
		return m.Sequence()
	case attempt.FieldTimestamp:
		return m.Timestamp()
	case attempt.FieldAttemptID:
		return m.AttemptID()
	case attempt.FieldUserID:
		return m.UserID()
	case attempt.FieldQuestionID:
		return m.QuestionID()
	case attempt.FieldDisplayCode:
		return m.DisplayCode()
	case attempt.FieldSelectedIndex:
		return m.SelectedIndex()
	case attempt.FieldCorrect:
		return m.Correct()
	case attempt.FieldSessionKind:
		return m.SessionKind()
	case attempt.FieldParentExamID:
		return m.ParentExamID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldSequence:
		return m.OldSequence(ctx)
	case attempt.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attempt.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attempt.FieldUserID:
		return m.OldUserID(ctx)
	case attempt.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attempt.FieldDisplayCode:
		return m.OldDisplayCode(ctx)
	case attempt.FieldSelectedIndex:
		return m.OldSelectedIndex(ctx)
	case attempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case attempt.FieldSessionKind:
		return m.OldSessionKind(ctx)
	case attempt.FieldParentExamID:
		return m.OldParentExamID(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attempt.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attempt.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attempt.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attempt.FieldDisplayCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayCode(v)
		return nil
	case attempt.FieldSelectedIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedIndex(v)
		return nil
	case attempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attempt.FieldSessionKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKind(v)
		return nil
	case attempt.FieldParentExamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentExamID(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attempt.FieldSequence)
	}
	if m.addselected_index != nil {
		fields = append(fields, attempt.FieldSelectedIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldSequence:
		return m.AddedSequence()
	case attempt.FieldSelectedIndex:
		return m.AddedSelectedIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attempt.FieldSelectedIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectedIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldParentExamID) {
		fields = append(fields, attempt.FieldParentExamID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldParentExamID:
		m.ClearParentExamID()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldSequence:
		m.ResetSequence()
		return nil
	case attempt.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attempt.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attempt.FieldUserID:
		m.ResetUserID()
		return nil
	case attempt.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attempt.FieldDisplayCode:
		m.ResetDisplayCode()
		return nil
	case attempt.FieldSelectedIndex:
		m.ResetSelectedIndex()
		return nil
	case attempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attempt.FieldSessionKind:
		m.ResetSessionKind()
		return nil
	case attempt.FieldParentExamID:
		m.ResetParentExamID()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// BadgeUnlockMutation represents an operation that mutates the BadgeUnlock nodes in the graph.
type BadgeUnlockMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	badge_id      *string
	unlocked_at   *time.Time
	seen          *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BadgeUnlock, error)
	predicates    []predicate.BadgeUnlock
}

var _ ent.Mutation = (*BadgeUnlockMutation)(nil)

// badgeunlockOption allows management of the mutation configuration using functional options.
type badgeunlockOption func(*BadgeUnlockMutation)

// newBadgeUnlockMutation creates new mutation for the BadgeUnlock entity.
func newBadgeUnlockMutation(c config, op Op, opts ...badgeunlockOption) *BadgeUnlockMutation {
	m := &BadgeUnlockMutation{
		config:        c,
		op:            op,
		typ:           TypeBadgeUnlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeUnlockID sets the ID field of the mutation.
func withBadgeUnlockID(id int) badgeunlockOption {
	return func(m *BadgeUnlockMutation) {
		var (
			err   error
			once  sync.Once
			value *BadgeUnlock
		)
		m.oldValue = func(ctx context.Context) (*BadgeUnlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BadgeUnlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadgeUnlock sets the old BadgeUnlock of the mutation.
func withBadgeUnlock(node *BadgeUnlock) badgeunlockOption {
	return func(m *BadgeUnlockMutation) {
		m.oldValue = func(context.Context) (*BadgeUnlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeUnlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeUnlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeUnlockMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeUnlockMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BadgeUnlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BadgeUnlockMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BadgeUnlockMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BadgeUnlock entity.
// If the BadgeUnlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeUnlockMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BadgeUnlockMutation) ResetUserID() {
	m.user_id = nil
}

// SetBadgeID sets the "badge_id" field.
func (m *BadgeUnlockMutation) SetBadgeID(s string) {
	m.badge_id = &s
}

// BadgeID returns the value of the "badge_id" field in the mutation.
func (m *BadgeUnlockMutation) BadgeID() (r string, exists bool) {
	v := m.badge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeID returns the old "badge_id" field's value of the BadgeUnlock entity.
// If the BadgeUnlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeUnlockMutation) OldBadgeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeID: %w", err)
	}
	return oldValue.BadgeID, nil
}

// ResetBadgeID resets all changes to the "badge_id" field.
func (m *BadgeUnlockMutation) ResetBadgeID() {
	m.badge_id = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *BadgeUnlockMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *BadgeUnlockMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the BadgeUnlock entity.
// If the BadgeUnlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeUnlockMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *BadgeUnlockMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
}

// SetSeen sets the "seen" field.
func (m *BadgeUnlockMutation) SetSeen(b bool) {
	m.seen = &b
}

// Seen returns the value of the "seen" field in the mutation.
func (m *BadgeUnlockMutation) Seen() (r bool, exists bool) {
	v := m.seen
	if v == nil {
		return
	}
	return *v, true
}

// OldSeen returns the old "seen" field's value of the BadgeUnlock entity.
// If the BadgeUnlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeUnlockMutation) OldSeen(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeen: %w", err)
	}
	return oldValue.Seen, nil
}

// ResetSeen resets all changes to the "seen" field.
func (m *BadgeUnlockMutation) ResetSeen() {
	m.seen = nil
}

// Where appends a list predicates to the BadgeUnlockMutation builder.
func (m *BadgeUnlockMutation) Where(ps ...predicate.BadgeUnlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeUnlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeUnlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BadgeUnlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeUnlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeUnlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BadgeUnlock).
func (m *BadgeUnlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeUnlockMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, badgeunlock.FieldUserID)
	}
	if m.badge_id != nil {
		fields = append(fields, badgeunlock.FieldBadgeID)
	}
	if m.unlocked_at != nil {
		fields = append(fields, badgeunlock.FieldUnlockedAt)
	}
	if m.seen != nil {
		fields = append(fields, badgeunlock.FieldSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeUnlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badgeunlock.FieldUserID:
		return m.UserID()
	case badgeunlock.FieldBadgeID:
		return m.BadgeID()
	case badgeunlock.FieldUnlockedAt:
		return m.UnlockedAt()
	case badgeunlock.FieldSeen:
		return m.Seen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeUnlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badgeunlock.FieldUserID:
		return m.OldUserID(ctx)
	case badgeunlock.FieldBadgeID:
		return m.OldBadgeID(ctx)
	case badgeunlock.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	case badgeunlock.FieldSeen:
		return m.OldSeen(ctx)
	}
	return nil, fmt.Errorf("unknown BadgeUnlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeUnlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badgeunlock.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case badgeunlock.FieldBadgeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeID(v)
		return nil
	case badgeunlock.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	case badgeunlock.FieldSeen:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeen(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeUnlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeUnlockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeUnlockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeUnlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BadgeUnlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeUnlockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeUnlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeUnlockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BadgeUnlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeUnlockMutation) ResetField(name string) error {
	switch name {
	case badgeunlock.FieldUserID:
		m.ResetUserID()
		return nil
	case badgeunlock.FieldBadgeID:
		m.ResetBadgeID()
		return nil
	case badgeunlock.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	case badgeunlock.FieldSeen:
		m.ResetSeen()
		return nil
	}
	return fmt.Errorf("unknown BadgeUnlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeUnlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeUnlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeUnlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeUnlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeUnlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeUnlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeUnlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BadgeUnlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeUnlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BadgeUnlock edge %s", name)
}

// DailyActivityMutation represents an operation that mutates the DailyActivity nodes in the graph.
type DailyActivityMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	activity_day          *string
	questions_answered    *int
	addquestions_answered *int
	questions_correct     *int
	addquestions_correct  *int
	exams_completed       *int
	addexams_completed    *int
	exams_passed          *int
	addexams_passed       *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DailyActivity, error)
	predicates            []predicate.DailyActivity
}

var _ ent.Mutation = (*DailyActivityMutation)(nil)

// dailyactivityOption allows management of the mutation configuration using functional options.
type dailyactivityOption func(*DailyActivityMutation)

// newDailyActivityMutation creates new mutation for the DailyActivity entity.
func newDailyActivityMutation(c config, op Op, opts ...dailyactivityOption) *DailyActivityMutation {
	m := &DailyActivityMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyActivity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyActivityID sets the ID field of the mutation.
func withDailyActivityID(id int) dailyactivityOption {
	return func(m *DailyActivityMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyActivity
		)
		m.oldValue = func(ctx context.Context) (*DailyActivity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyActivity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyActivity sets the old DailyActivity of the mutation.
func withDailyActivity(node *DailyActivity) dailyactivityOption {
	return func(m *DailyActivityMutation) {
		m.oldValue = func(context.Context) (*DailyActivity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyActivityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyActivityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyActivityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyActivityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyActivity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DailyActivityMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DailyActivityMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DailyActivity entity.
// If the DailyActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyActivityMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DailyActivityMutation) ResetUserID() {
	m.user_id = nil
}

// SetActivityDay sets the "activity_day" field.
func (m *DailyActivityMutation) SetActivityDay(s string) {
	m.activity_day = &s
}

// ActivityDay returns the value of the "activity_day" field in the mutation.
func (m *DailyActivityMutation) ActivityDay() (r string, exists bool) {
	v := m.activity_day
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityDay returns the old "activity_day" field's value of the DailyActivity entity.
// If the DailyActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyActivityMutation) OldActivityDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityDay: %w", err)
	}
	return oldValue.ActivityDay, nil
}

// ResetActivityDay resets all changes to the "activity_day" field.
func (m *DailyActivityMutation) ResetActivityDay() {
	m.activity_day = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *DailyActivityMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *DailyActivityMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the DailyActivity entity.
// If the DailyActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyActivityMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *DailyActivityMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *DailyActivityMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *DailyActivityMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// SetQuestionsCorrect sets the "questions_correct" field.
func (m *DailyActivityMutation) SetQuestionsCorrect(i int) {
	m.questions_correct = &i
	m.addquestions_correct = nil
}

// QuestionsCorrect returns the value of the "questions_correct" field in the mutation.
func (m *DailyActivityMutation) QuestionsCorrect() (r int, exists bool) {
	v := m.questions_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsCorrect returns the old "questions_correct" field's value of the DailyActivity entity.
// If the DailyActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyActivityMutation) OldQuestionsCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsCorrect: %w", err)
	}
	return oldValue.QuestionsCorrect, nil
}

// AddQuestionsCorrect adds i to the "questions_correct" field.
func (m *DailyActivityMutation) AddQuestionsCorrect(i int) {
	if m.addquestions_correct != nil {
		*m.addquestions_correct += i
	} else {
		m.addquestions_correct = &i
	}
}

// AddedQuestionsCorrect returns the value that was added to the "questions_correct" field in this mutation.
func (m *DailyActivityMutation) AddedQuestionsCorrect() (r int, exists bool) {
	v := m.addquestions_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsCorrect resets all changes to the "questions_correct" field.
func (m *DailyActivityMutation) ResetQuestionsCorrect() {
	m.questions_correct = nil
	m.addquestions_correct = nil
}

// SetExamsCompleted sets the "exams_completed" field.
func (m *DailyActivityMutation) SetExamsCompleted(i int) {
	m.exams_completed = &i
	m.addexams_completed = nil
}

// ExamsCompleted returns the value of the "exams_completed" field in the mutation.
func (m *DailyActivityMutation) ExamsCompleted() (r int, exists bool) {
	v := m.exams_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldExamsCompleted returns the old "exams_completed" field's value of the DailyActivity entity.
// If the DailyActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyActivityMutation) OldExamsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamsCompleted: %w", err)
	}
	return oldValue.ExamsCompleted, nil
}

// AddExamsCompleted adds i to the "exams_completed" field.
func (m *DailyActivityMutation) AddExamsCompleted(i int) {
	if m.addexams_completed != nil {
		*m.addexams_completed += i
	} else {
		m.addexams_completed = &i
	}
}

// AddedExamsCompleted returns the value that was added to the "exams_completed" field in this mutation.
func (m *DailyActivityMutation) AddedExamsCompleted() (r int, exists bool) {
	v := m.addexams_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamsCompleted resets all changes to the "exams_completed" field.
func (m *DailyActivityMutation) ResetExamsCompleted() {
	m.exams_completed = nil
	m.addexams_completed = nil
}

// SetExamsPassed sets the "exams_passed" field.
func (m *DailyActivityMutation) SetExamsPassed(i int) {
	m.exams_passed = &i
	m.addexams_passed = nil
}

// ExamsPassed returns the value of the "exams_passed" field in the mutation.
func (m *DailyActivityMutation) ExamsPassed() (r int, exists bool) {
	v := m.exams_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldExamsPassed returns the old "exams_passed" field's value of the DailyActivity entity.
// If the DailyActivity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyActivityMutation) OldExamsPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamsPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamsPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamsPassed: %w", err)
	}
	return oldValue.ExamsPassed, nil
}

// AddExamsPassed adds i to the "exams_passed" field.
func (m *DailyActivityMutation) AddExamsPassed(i int) {
	if m.addexams_passed != nil {
		*m.addexams_passed += i
	} else {
		m.addexams_passed = &i
	}
}

// AddedExamsPassed returns the value that was added to the "exams_passed" field in this mutation.
func (m *DailyActivityMutation) AddedExamsPassed() (r int, exists bool) {
	v := m.addexams_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetExamsPassed resets all changes to the "exams_passed" field.
func (m *DailyActivityMutation) ResetExamsPassed() {
	m.exams_passed = nil
	m.addexams_passed = nil
}

// Where appends a list predicates to the DailyActivityMutation builder.
func (m *DailyActivityMutation) Where(ps ...predicate.DailyActivity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyActivityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyActivityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyActivity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyActivityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyActivityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyActivity).
func (m *DailyActivityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyActivityMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, dailyactivity.FieldUserID)
	}
	if m.activity_day != nil {
		fields = append(fields, dailyactivity.FieldActivityDay)
	}
	if m.questions_answered != nil {
		fields = append(fields, dailyactivity.FieldQuestionsAnswered)
	}
	if m.questions_correct != nil {
		fields = append(fields, dailyactivity.FieldQuestionsCorrect)
	}
	if m.exams_completed != nil {
		fields = append(fields, dailyactivity.FieldExamsCompleted)
	}
	if m.exams_passed != nil {
		fields = append(fields, dailyactivity.FieldExamsPassed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyActivityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailyactivity.FieldUserID:
		return m.UserID()
	case dailyactivity.FieldActivityDay:
		return m.ActivityDay()
	case dailyactivity.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	case dailyactivity.FieldQuestionsCorrect:
		return m.QuestionsCorrect()
	case dailyactivity.FieldExamsCompleted:
		return m.ExamsCompleted()
	case dailyactivity.FieldExamsPassed:
		return m.ExamsPassed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyActivityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailyactivity.FieldUserID:
		return m.OldUserID(ctx)
	case dailyactivity.FieldActivityDay:
		return m.OldActivityDay(ctx)
	case dailyactivity.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	case dailyactivity.FieldQuestionsCorrect:
		return m.OldQuestionsCorrect(ctx)
	case dailyactivity.FieldExamsCompleted:
		return m.OldExamsCompleted(ctx)
	case dailyactivity.FieldExamsPassed:
		return m.OldExamsPassed(ctx)
	}
	return nil, fmt.Errorf("unknown DailyActivity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyActivityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailyactivity.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case dailyactivity.FieldActivityDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityDay(v)
		return nil
	case dailyactivity.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	case dailyactivity.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsCorrect(v)
		return nil
	case dailyactivity.FieldExamsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamsCompleted(v)
		return nil
	case dailyactivity.FieldExamsPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamsPassed(v)
		return nil
	}
	return fmt.Errorf("unknown DailyActivity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyActivityMutation) AddedFields() []string {
	var fields []string
	if m.addquestions_answered != nil {
		fields = append(fields, dailyactivity.FieldQuestionsAnswered)
	}
	if m.addquestions_correct != nil {
		fields = append(fields, dailyactivity.FieldQuestionsCorrect)
	}
	if m.addexams_completed != nil {
		fields = append(fields, dailyactivity.FieldExamsCompleted)
	}
	if m.addexams_passed != nil {
		fields = append(fields, dailyactivity.FieldExamsPassed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyActivityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailyactivity.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	case dailyactivity.FieldQuestionsCorrect:
		return m.AddedQuestionsCorrect()
	case dailyactivity.FieldExamsCompleted:
		return m.AddedExamsCompleted()
	case dailyactivity.FieldExamsPassed:
		return m.AddedExamsPassed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyActivityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailyactivity.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	case dailyactivity.FieldQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsCorrect(v)
		return nil
	case dailyactivity.FieldExamsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamsCompleted(v)
		return nil
	case dailyactivity.FieldExamsPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExamsPassed(v)
		return nil
	}
	return fmt.Errorf("unknown DailyActivity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyActivityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyActivityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyActivityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyActivity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyActivityMutation) ResetField(name string) error {
	switch name {
	case dailyactivity.FieldUserID:
		m.ResetUserID()
		return nil
	case dailyactivity.FieldActivityDay:
		m.ResetActivityDay()
		return nil
	case dailyactivity.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	case dailyactivity.FieldQuestionsCorrect:
		m.ResetQuestionsCorrect()
		return nil
	case dailyactivity.FieldExamsCompleted:
		m.ResetExamsCompleted()
		return nil
	case dailyactivity.FieldExamsPassed:
		m.ResetExamsPassed()
		return nil
	}
	return fmt.Errorf("unknown DailyActivity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyActivityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyActivityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyActivityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyActivityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyActivityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyActivityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyActivityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DailyActivity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyActivityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DailyActivity edge %s", name)
}

// ExamAttemptMutation represents an operation that mutates the ExamAttempt nodes in the graph.
type ExamAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	exam_attempt_id    *string
	user_id            *string
	exam_type          *string
	raw_score          *int
	addraw_score       *int
	total_questions    *int
	addtotal_questions *int
	percentage         *int
	addpercentage      *int
	passed             *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ExamAttempt, error)
	predicates         []predicate.ExamAttempt
}

var _ ent.Mutation = (*ExamAttemptMutation)(nil)

// examattemptOption allows management of the mutation configuration using functional options.
type examattemptOption func(*ExamAttemptMutation)

// newExamAttemptMutation creates new mutation for the ExamAttempt entity.
func newExamAttemptMutation(c config, op Op, opts ...examattemptOption) *ExamAttemptMutation {
	m := &ExamAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeExamAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamAttemptID sets the ID field of the mutation.
func withExamAttemptID(id int) examattemptOption {
	return func(m *ExamAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *ExamAttempt
		)
		m.oldValue = func(ctx context.Context) (*ExamAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExamAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamAttempt sets the old ExamAttempt of the mutation.
func withExamAttempt(node *ExamAttempt) examattemptOption {
	return func(m *ExamAttemptMutation) {
		m.oldValue = func(context.Context) (*ExamAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExamAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExamAttemptID sets the "exam_attempt_id" field.
func (m *ExamAttemptMutation) SetExamAttemptID(s string) {
	m.exam_attempt_id = &s
}

// ExamAttemptID returns the value of the "exam_attempt_id" field in the mutation.
func (m *ExamAttemptMutation) ExamAttemptID() (r string, exists bool) {
	v := m.exam_attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExamAttemptID returns the old "exam_attempt_id" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldExamAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamAttemptID: %w", err)
	}
	return oldValue.ExamAttemptID, nil
}

// ResetExamAttemptID resets all changes to the "exam_attempt_id" field.
func (m *ExamAttemptMutation) ResetExamAttemptID() {
	m.exam_attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ExamAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExamAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExamAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetExamType sets the "exam_type" field.
func (m *ExamAttemptMutation) SetExamType(s string) {
	m.exam_type = &s
}

// ExamType returns the value of the "exam_type" field in the mutation.
func (m *ExamAttemptMutation) ExamType() (r string, exists bool) {
	v := m.exam_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExamType returns the old "exam_type" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldExamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamType: %w", err)
	}
	return oldValue.ExamType, nil
}

// ResetExamType resets all changes to the "exam_type" field.
func (m *ExamAttemptMutation) ResetExamType() {
	m.exam_type = nil
}

// SetRawScore sets the "raw_score" field.
func (m *ExamAttemptMutation) SetRawScore(i int) {
	m.raw_score = &i
	m.addraw_score = nil
}

// RawScore returns the value of the "raw_score" field in the mutation.
func (m *ExamAttemptMutation) RawScore() (r int, exists bool) {
	v := m.raw_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRawScore returns the old "raw_score" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldRawScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawScore: %w", err)
	}
	return oldValue.RawScore, nil
}

// AddRawScore adds i to the "raw_score" field.
func (m *ExamAttemptMutation) AddRawScore(i int) {
	if m.addraw_score != nil {
		*m.addraw_score += i
	} else {
		m.addraw_score = &i
	}
}

// AddedRawScore returns the value that was added to the "raw_score" field in this mutation.
func (m *ExamAttemptMutation) AddedRawScore() (r int, exists bool) {
	v := m.addraw_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRawScore resets all changes to the "raw_score" field.
func (m *ExamAttemptMutation) ResetRawScore() {
	m.raw_score = nil
	m.addraw_score = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *ExamAttemptMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *ExamAttemptMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *ExamAttemptMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *ExamAttemptMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *ExamAttemptMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetPercentage sets the "percentage" field.
func (m *ExamAttemptMutation) SetPercentage(i int) {
	m.percentage = &i
	m.addpercentage = nil
}

// Percentage returns the value of the "percentage" field in the mutation.
func (m *ExamAttemptMutation) Percentage() (r int, exists bool) {
	v := m.percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldPercentage returns the old "percentage" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldPercentage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPercentage: %w", err)
	}
	return oldValue.Percentage, nil
}

// AddPercentage adds i to the "percentage" field.
func (m *ExamAttemptMutation) AddPercentage(i int) {
	if m.addpercentage != nil {
		*m.addpercentage += i
	} else {
		m.addpercentage = &i
	}
}

// AddedPercentage returns the value that was added to the "percentage" field in this mutation.
func (m *ExamAttemptMutation) AddedPercentage() (r int, exists bool) {
	v := m.addpercentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetPercentage resets all changes to the "percentage" field.
func (m *ExamAttemptMutation) ResetPercentage() {
	m.percentage = nil
	m.addpercentage = nil
}

// SetPassed sets the "passed" field.
func (m *ExamAttemptMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *ExamAttemptMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *ExamAttemptMutation) ResetPassed() {
	m.passed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExamAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExamAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExamAttempt entity.
// If the ExamAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExamAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExamAttemptMutation builder.
func (m *ExamAttemptMutation) Where(ps ...predicate.ExamAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExamAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExamAttempt).
func (m *ExamAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamAttemptMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.exam_attempt_id != nil {
		fields = append(fields, examattempt.FieldExamAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, examattempt.FieldUserID)
	}
	if m.exam_type != nil {
		fields = append(fields, examattempt.FieldExamType)
	}
	if m.raw_score != nil {
		fields = append(fields, examattempt.FieldRawScore)
	}
	if m.total_questions != nil {
		fields = append(fields, examattempt.FieldTotalQuestions)
	}
	if m.percentage != nil {
		fields = append(fields, examattempt.FieldPercentage)
	}
	if m.passed != nil {
		fields = append(fields, examattempt.FieldPassed)
	}
	if m.created_at != nil {
		fields = append(fields, examattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examattempt.FieldExamAttemptID:
		return m.ExamAttemptID()
	case examattempt.FieldUserID:
		return m.UserID()
	case examattempt.FieldExamType:
		return m.ExamType()
	case examattempt.FieldRawScore:
		return m.RawScore()
	case examattempt.FieldTotalQuestions:
		return m.TotalQuestions()
	case examattempt.FieldPercentage:
		return m.Percentage()
	case examattempt.FieldPassed:
		return m.Passed()
	case examattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examattempt.FieldExamAttemptID:
		return m.OldExamAttemptID(ctx)
	case examattempt.FieldUserID:
		return m.OldUserID(ctx)
	case examattempt.FieldExamType:
		return m.OldExamType(ctx)
	case examattempt.FieldRawScore:
		return m.OldRawScore(ctx)
	case examattempt.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case examattempt.FieldPercentage:
		return m.OldPercentage(ctx)
	case examattempt.FieldPassed:
		return m.OldPassed(ctx)
	case examattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExamAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examattempt.FieldExamAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamAttemptID(v)
		return nil
	case examattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case examattempt.FieldExamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamType(v)
		return nil
	case examattempt.FieldRawScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawScore(v)
		return nil
	case examattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case examattempt.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPercentage(v)
		return nil
	case examattempt.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case examattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExamAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addraw_score != nil {
		fields = append(fields, examattempt.FieldRawScore)
	}
	if m.addtotal_questions != nil {
		fields = append(fields, examattempt.FieldTotalQuestions)
	}
	if m.addpercentage != nil {
		fields = append(fields, examattempt.FieldPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case examattempt.FieldRawScore:
		return m.AddedRawScore()
	case examattempt.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case examattempt.FieldPercentage:
		return m.AddedPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case examattempt.FieldRawScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawScore(v)
		return nil
	case examattempt.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case examattempt.FieldPercentage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown ExamAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExamAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamAttemptMutation) ResetField(name string) error {
	switch name {
	case examattempt.FieldExamAttemptID:
		m.ResetExamAttemptID()
		return nil
	case examattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case examattempt.FieldExamType:
		m.ResetExamType()
		return nil
	case examattempt.FieldRawScore:
		m.ResetRawScore()
		return nil
	case examattempt.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case examattempt.FieldPercentage:
		m.ResetPercentage()
		return nil
	case examattempt.FieldPassed:
		m.ResetPassed()
		return nil
	case examattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExamAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExamAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExamAttempt edge %s", name)
}

// ReadinessSnapshotMutation represents an operation that mutates the ReadinessSnapshot nodes in the graph.
type ReadinessSnapshotMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	user_id             *string
	exam_type           *string
	snapshot_day        *string
	readiness_score     *float64
	addreadiness_score  *float64
	pass_probability    *float64
	addpass_probability *float64
	recent_accuracy     *float64
	addrecent_accuracy  *float64
	overall_accuracy    *float64
	addoverall_accuracy *float64
	coverage            *float64
	addcoverage         *float64
	mastery             *float64
	addmastery          *float64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ReadinessSnapshot, error)
	predicates          []predicate.ReadinessSnapshot
}

var _ ent.Mutation = (*ReadinessSnapshotMutation)(nil)

// readinesssnapshotOption allows management of the mutation configuration using functional options.
type readinesssnapshotOption func(*ReadinessSnapshotMutation)

// newReadinessSnapshotMutation creates new mutation for the ReadinessSnapshot entity.
func newReadinessSnapshotMutation(c config, op Op, opts ...readinesssnapshotOption) *ReadinessSnapshotMutation {
	m := &ReadinessSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeReadinessSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReadinessSnapshotID sets the ID field of the mutation.
func withReadinessSnapshotID(id int) readinesssnapshotOption {
	return func(m *ReadinessSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ReadinessSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ReadinessSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReadinessSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReadinessSnapshot sets the old ReadinessSnapshot of the mutation.
func withReadinessSnapshot(node *ReadinessSnapshot) readinesssnapshotOption {
	return func(m *ReadinessSnapshotMutation) {
		m.oldValue = func(context.Context) (*ReadinessSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReadinessSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReadinessSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReadinessSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReadinessSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReadinessSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReadinessSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReadinessSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReadinessSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetExamType sets the "exam_type" field.
func (m *ReadinessSnapshotMutation) SetExamType(s string) {
	m.exam_type = &s
}

// ExamType returns the value of the "exam_type" field in the mutation.
func (m *ReadinessSnapshotMutation) ExamType() (r string, exists bool) {
	v := m.exam_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExamType returns the old "exam_type" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldExamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamType: %w", err)
	}
	return oldValue.ExamType, nil
}

// ResetExamType resets all changes to the "exam_type" field.
func (m *ReadinessSnapshotMutation) ResetExamType() {
	m.exam_type = nil
}

// SetSnapshotDay sets the "snapshot_day" field.
func (m *ReadinessSnapshotMutation) SetSnapshotDay(s string) {
	m.snapshot_day = &s
}

// SnapshotDay returns the value of the "snapshot_day" field in the mutation.
func (m *ReadinessSnapshotMutation) SnapshotDay() (r string, exists bool) {
	v := m.snapshot_day
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshotDay returns the old "snapshot_day" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldSnapshotDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshotDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshotDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshotDay: %w", err)
	}
	return oldValue.SnapshotDay, nil
}

// ResetSnapshotDay resets all changes to the "snapshot_day" field.
func (m *ReadinessSnapshotMutation) ResetSnapshotDay() {
	m.snapshot_day = nil
}

// SetReadinessScore sets the "readiness_score" field.
func (m *ReadinessSnapshotMutation) SetReadinessScore(f float64) {
	m.readiness_score = &f
	m.addreadiness_score = nil
}

// ReadinessScore returns the value of the "readiness_score" field in the mutation.
func (m *ReadinessSnapshotMutation) ReadinessScore() (r float64, exists bool) {
	v := m.readiness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReadinessScore returns the old "readiness_score" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldReadinessScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadinessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadinessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadinessScore: %w", err)
	}
	return oldValue.ReadinessScore, nil
}

// AddReadinessScore adds f to the "readiness_score" field.
func (m *ReadinessSnapshotMutation) AddReadinessScore(f float64) {
	if m.addreadiness_score != nil {
		*m.addreadiness_score += f
	} else {
		m.addreadiness_score = &f
	}
}

// AddedReadinessScore returns the value that was added to the "readiness_score" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedReadinessScore() (r float64, exists bool) {
	v := m.addreadiness_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReadinessScore resets all changes to the "readiness_score" field.
func (m *ReadinessSnapshotMutation) ResetReadinessScore() {
	m.readiness_score = nil
	m.addreadiness_score = nil
}

// SetPassProbability sets the "pass_probability" field.
func (m *ReadinessSnapshotMutation) SetPassProbability(f float64) {
	m.pass_probability = &f
	m.addpass_probability = nil
}

// PassProbability returns the value of the "pass_probability" field in the mutation.
func (m *ReadinessSnapshotMutation) PassProbability() (r float64, exists bool) {
	v := m.pass_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldPassProbability returns the old "pass_probability" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldPassProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassProbability: %w", err)
	}
	return oldValue.PassProbability, nil
}

// AddPassProbability adds f to the "pass_probability" field.
func (m *ReadinessSnapshotMutation) AddPassProbability(f float64) {
	if m.addpass_probability != nil {
		*m.addpass_probability += f
	} else {
		m.addpass_probability = &f
	}
}

// AddedPassProbability returns the value that was added to the "pass_probability" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedPassProbability() (r float64, exists bool) {
	v := m.addpass_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassProbability resets all changes to the "pass_probability" field.
func (m *ReadinessSnapshotMutation) ResetPassProbability() {
	m.pass_probability = nil
	m.addpass_probability = nil
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (m *ReadinessSnapshotMutation) SetRecentAccuracy(f float64) {
	m.recent_accuracy = &f
	m.addrecent_accuracy = nil
}

// RecentAccuracy returns the value of the "recent_accuracy" field in the mutation.
func (m *ReadinessSnapshotMutation) RecentAccuracy() (r float64, exists bool) {
	v := m.recent_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldRecentAccuracy returns the old "recent_accuracy" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldRecentAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecentAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecentAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecentAccuracy: %w", err)
	}
	return oldValue.RecentAccuracy, nil
}

// AddRecentAccuracy adds f to the "recent_accuracy" field.
func (m *ReadinessSnapshotMutation) AddRecentAccuracy(f float64) {
	if m.addrecent_accuracy != nil {
		*m.addrecent_accuracy += f
	} else {
		m.addrecent_accuracy = &f
	}
}

// AddedRecentAccuracy returns the value that was added to the "recent_accuracy" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedRecentAccuracy() (r float64, exists bool) {
	v := m.addrecent_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecentAccuracy resets all changes to the "recent_accuracy" field.
func (m *ReadinessSnapshotMutation) ResetRecentAccuracy() {
	m.recent_accuracy = nil
	m.addrecent_accuracy = nil
}

// SetOverallAccuracy sets the "overall_accuracy" field.
func (m *ReadinessSnapshotMutation) SetOverallAccuracy(f float64) {
	m.overall_accuracy = &f
	m.addoverall_accuracy = nil
}

// OverallAccuracy returns the value of the "overall_accuracy" field in the mutation.
func (m *ReadinessSnapshotMutation) OverallAccuracy() (r float64, exists bool) {
	v := m.overall_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallAccuracy returns the old "overall_accuracy" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldOverallAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallAccuracy: %w", err)
	}
	return oldValue.OverallAccuracy, nil
}

// AddOverallAccuracy adds f to the "overall_accuracy" field.
func (m *ReadinessSnapshotMutation) AddOverallAccuracy(f float64) {
	if m.addoverall_accuracy != nil {
		*m.addoverall_accuracy += f
	} else {
		m.addoverall_accuracy = &f
	}
}

// AddedOverallAccuracy returns the value that was added to the "overall_accuracy" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedOverallAccuracy() (r float64, exists bool) {
	v := m.addoverall_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallAccuracy resets all changes to the "overall_accuracy" field.
func (m *ReadinessSnapshotMutation) ResetOverallAccuracy() {
	m.overall_accuracy = nil
	m.addoverall_accuracy = nil
}

// SetCoverage sets the "coverage" field.
func (m *ReadinessSnapshotMutation) SetCoverage(f float64) {
	m.coverage = &f
	m.addcoverage = nil
}

// Coverage returns the value of the "coverage" field in the mutation.
func (m *ReadinessSnapshotMutation) Coverage() (r float64, exists bool) {
	v := m.coverage
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverage returns the old "coverage" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldCoverage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverage: %w", err)
	}
	return oldValue.Coverage, nil
}

// AddCoverage adds f to the "coverage" field.
func (m *ReadinessSnapshotMutation) AddCoverage(f float64) {
	if m.addcoverage != nil {
		*m.addcoverage += f
	} else {
		m.addcoverage = &f
	}
}

// AddedCoverage returns the value that was added to the "coverage" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedCoverage() (r float64, exists bool) {
	v := m.addcoverage
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoverage resets all changes to the "coverage" field.
func (m *ReadinessSnapshotMutation) ResetCoverage() {
	m.coverage = nil
	m.addcoverage = nil
}

// SetMastery sets the "mastery" field.
func (m *ReadinessSnapshotMutation) SetMastery(f float64) {
	m.mastery = &f
	m.addmastery = nil
}

// Mastery returns the value of the "mastery" field in the mutation.
func (m *ReadinessSnapshotMutation) Mastery() (r float64, exists bool) {
	v := m.mastery
	if v == nil {
		return
	}
	return *v, true
}

// OldMastery returns the old "mastery" field's value of the ReadinessSnapshot entity.
// If the ReadinessSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadinessSnapshotMutation) OldMastery(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMastery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMastery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMastery: %w", err)
	}
	return oldValue.Mastery, nil
}

// AddMastery adds f to the "mastery" field.
func (m *ReadinessSnapshotMutation) AddMastery(f float64) {
	if m.addmastery != nil {
		*m.addmastery += f
	} else {
		m.addmastery = &f
	}
}

// AddedMastery returns the value that was added to the "mastery" field in this mutation.
func (m *ReadinessSnapshotMutation) AddedMastery() (r float64, exists bool) {
	v := m.addmastery
	if v == nil {
		return
	}
	return *v, true
}

// ResetMastery resets all changes to the "mastery" field.
func (m *ReadinessSnapshotMutation) ResetMastery() {
	m.mastery = nil
	m.addmastery = nil
}

// Where appends a list predicates to the ReadinessSnapshotMutation builder.
func (m *ReadinessSnapshotMutation) Where(ps ...predicate.ReadinessSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReadinessSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReadinessSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReadinessSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReadinessSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReadinessSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReadinessSnapshot).
func (m *ReadinessSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReadinessSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, readinesssnapshot.FieldUserID)
	}
	if m.exam_type != nil {
		fields = append(fields, readinesssnapshot.FieldExamType)
	}
	if m.snapshot_day != nil {
		fields = append(fields, readinesssnapshot.FieldSnapshotDay)
	}
	if m.readiness_score != nil {
		fields = append(fields, readinesssnapshot.FieldReadinessScore)
	}
	if m.pass_probability != nil {
		fields = append(fields, readinesssnapshot.FieldPassProbability)
	}
	if m.recent_accuracy != nil {
		fields = append(fields, readinesssnapshot.FieldRecentAccuracy)
	}
	if m.overall_accuracy != nil {
		fields = append(fields, readinesssnapshot.FieldOverallAccuracy)
	}
	if m.coverage != nil {
		fields = append(fields, readinesssnapshot.FieldCoverage)
	}
	if m.mastery != nil {
		fields = append(fields, readinesssnapshot.FieldMastery)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReadinessSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case readinesssnapshot.FieldUserID:
		return m.UserID()
	case readinesssnapshot.FieldExamType:
		return m.ExamType()
	case readinesssnapshot.FieldSnapshotDay:
		return m.SnapshotDay()
	case readinesssnapshot.FieldReadinessScore:
		return m.ReadinessScore()
	case readinesssnapshot.FieldPassProbability:
		return m.PassProbability()
	case readinesssnapshot.FieldRecentAccuracy:
		return m.RecentAccuracy()
	case readinesssnapshot.FieldOverallAccuracy:
		return m.OverallAccuracy()
	case readinesssnapshot.FieldCoverage:
		return m.Coverage()
	case readinesssnapshot.FieldMastery:
		return m.Mastery()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReadinessSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case readinesssnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case readinesssnapshot.FieldExamType:
		return m.OldExamType(ctx)
	case readinesssnapshot.FieldSnapshotDay:
		return m.OldSnapshotDay(ctx)
	case readinesssnapshot.FieldReadinessScore:
		return m.OldReadinessScore(ctx)
	case readinesssnapshot.FieldPassProbability:
		return m.OldPassProbability(ctx)
	case readinesssnapshot.FieldRecentAccuracy:
		return m.OldRecentAccuracy(ctx)
	case readinesssnapshot.FieldOverallAccuracy:
		return m.OldOverallAccuracy(ctx)
	case readinesssnapshot.FieldCoverage:
		return m.OldCoverage(ctx)
	case readinesssnapshot.FieldMastery:
		return m.OldMastery(ctx)
	}
	return nil, fmt.Errorf("unknown ReadinessSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadinessSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case readinesssnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case readinesssnapshot.FieldExamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamType(v)
		return nil
	case readinesssnapshot.FieldSnapshotDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshotDay(v)
		return nil
	case readinesssnapshot.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadinessScore(v)
		return nil
	case readinesssnapshot.FieldPassProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassProbability(v)
		return nil
	case readinesssnapshot.FieldRecentAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecentAccuracy(v)
		return nil
	case readinesssnapshot.FieldOverallAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallAccuracy(v)
		return nil
	case readinesssnapshot.FieldCoverage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverage(v)
		return nil
	case readinesssnapshot.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMastery(v)
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReadinessSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addreadiness_score != nil {
		fields = append(fields, readinesssnapshot.FieldReadinessScore)
	}
	if m.addpass_probability != nil {
		fields = append(fields, readinesssnapshot.FieldPassProbability)
	}
	if m.addrecent_accuracy != nil {
		fields = append(fields, readinesssnapshot.FieldRecentAccuracy)
	}
	if m.addoverall_accuracy != nil {
		fields = append(fields, readinesssnapshot.FieldOverallAccuracy)
	}
	if m.addcoverage != nil {
		fields = append(fields, readinesssnapshot.FieldCoverage)
	}
	if m.addmastery != nil {
		fields = append(fields, readinesssnapshot.FieldMastery)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReadinessSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case readinesssnapshot.FieldReadinessScore:
		return m.AddedReadinessScore()
	case readinesssnapshot.FieldPassProbability:
		return m.AddedPassProbability()
	case readinesssnapshot.FieldRecentAccuracy:
		return m.AddedRecentAccuracy()
	case readinesssnapshot.FieldOverallAccuracy:
		return m.AddedOverallAccuracy()
	case readinesssnapshot.FieldCoverage:
		return m.AddedCoverage()
	case readinesssnapshot.FieldMastery:
		return m.AddedMastery()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadinessSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case readinesssnapshot.FieldReadinessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadinessScore(v)
		return nil
	case readinesssnapshot.FieldPassProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassProbability(v)
		return nil
	case readinesssnapshot.FieldRecentAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecentAccuracy(v)
		return nil
	case readinesssnapshot.FieldOverallAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallAccuracy(v)
		return nil
	case readinesssnapshot.FieldCoverage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoverage(v)
		return nil
	case readinesssnapshot.FieldMastery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMastery(v)
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReadinessSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReadinessSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReadinessSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReadinessSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReadinessSnapshotMutation) ResetField(name string) error {
	switch name {
	case readinesssnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case readinesssnapshot.FieldExamType:
		m.ResetExamType()
		return nil
	case readinesssnapshot.FieldSnapshotDay:
		m.ResetSnapshotDay()
		return nil
	case readinesssnapshot.FieldReadinessScore:
		m.ResetReadinessScore()
		return nil
	case readinesssnapshot.FieldPassProbability:
		m.ResetPassProbability()
		return nil
	case readinesssnapshot.FieldRecentAccuracy:
		m.ResetRecentAccuracy()
		return nil
	case readinesssnapshot.FieldOverallAccuracy:
		m.ResetOverallAccuracy()
		return nil
	case readinesssnapshot.FieldCoverage:
		m.ResetCoverage()
		return nil
	case readinesssnapshot.FieldMastery:
		m.ResetMastery()
		return nil
	}
	return fmt.Errorf("unknown ReadinessSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReadinessSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReadinessSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReadinessSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReadinessSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReadinessSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReadinessSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReadinessSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReadinessSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReadinessSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReadinessSnapshot edge %s", name)
}

// TelemetryEventMutation represents an operation that mutates the TelemetryEvent nodes in the graph.
type TelemetryEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	name          *string
	payload       *map[string]interface{}
	success       *bool
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TelemetryEvent, error)
	predicates    []predicate.TelemetryEvent
}

var _ ent.Mutation = (*TelemetryEventMutation)(nil)

// telemetryeventOption allows management of the mutation configuration using functional options.
type telemetryeventOption func(*TelemetryEventMutation)

// newTelemetryEventMutation creates new mutation for the TelemetryEvent entity.
func newTelemetryEventMutation(c config, op Op, opts ...telemetryeventOption) *TelemetryEventMutation {
	m := &TelemetryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTelemetryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTelemetryEventID sets the ID field of the mutation.
func withTelemetryEventID(id int) telemetryeventOption {
	return func(m *TelemetryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TelemetryEvent
		)
		m.oldValue = func(ctx context.Context) (*TelemetryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TelemetryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTelemetryEvent sets the old TelemetryEvent of the mutation.
func withTelemetryEvent(node *TelemetryEvent) telemetryeventOption {
	return func(m *TelemetryEventMutation) {
		m.oldValue = func(context.Context) (*TelemetryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TelemetryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TelemetryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TelemetryEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TelemetryEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TelemetryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TelemetryEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TelemetryEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TelemetryEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TelemetryEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TelemetryEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TelemetryEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TelemetryEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TelemetryEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetName sets the "name" field.
func (m *TelemetryEventMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TelemetryEventMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TelemetryEventMutation) ResetName() {
	m.name = nil
}

// SetPayload sets the "payload" field.
func (m *TelemetryEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TelemetryEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *TelemetryEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[telemetryevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *TelemetryEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *TelemetryEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, telemetryevent.FieldPayload)
}

// SetSuccess sets the "success" field.
func (m *TelemetryEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *TelemetryEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *TelemetryEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *TelemetryEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TelemetryEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TelemetryEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[telemetryevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TelemetryEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TelemetryEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, telemetryevent.FieldErrorMessage)
}

// Where appends a list predicates to the TelemetryEventMutation builder.
func (m *TelemetryEventMutation) Where(ps ...predicate.TelemetryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TelemetryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TelemetryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TelemetryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TelemetryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TelemetryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TelemetryEvent).
func (m *TelemetryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TelemetryEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, telemetryevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, telemetryevent.FieldTimestamp)
	}
	if m.name != nil {
		fields = append(fields, telemetryevent.FieldName)
	}
	if m.payload != nil {
		fields = append(fields, telemetryevent.FieldPayload)
	}
	if m.success != nil {
		fields = append(fields, telemetryevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, telemetryevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TelemetryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case telemetryevent.FieldSequence:
		return m.Sequence()
	case telemetryevent.FieldTimestamp:
		return m.Timestamp()
	case telemetryevent.FieldName:
		return m.Name()
	case telemetryevent.FieldPayload:
		return m.Payload()
	case telemetryevent.FieldSuccess:
		return m.Success()
	case telemetryevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TelemetryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case telemetryevent.FieldSequence:
		return m.OldSequence(ctx)
	case telemetryevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case telemetryevent.FieldName:
		return m.OldName(ctx)
	case telemetryevent.FieldPayload:
		return m.OldPayload(ctx)
	case telemetryevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case telemetryevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case telemetryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case telemetryevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case telemetryevent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case telemetryevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case telemetryevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case telemetryevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TelemetryEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, telemetryevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TelemetryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case telemetryevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case telemetryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TelemetryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(telemetryevent.FieldPayload) {
		fields = append(fields, telemetryevent.FieldPayload)
	}
	if m.FieldCleared(telemetryevent.FieldErrorMessage) {
		fields = append(fields, telemetryevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TelemetryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TelemetryEventMutation) ClearField(name string) error {
	switch name {
	case telemetryevent.FieldPayload:
		m.ClearPayload()
		return nil
	case telemetryevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TelemetryEventMutation) ResetField(name string) error {
	switch name {
	case telemetryevent.FieldSequence:
		m.ResetSequence()
		return nil
	case telemetryevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case telemetryevent.FieldName:
		m.ResetName()
		return nil
	case telemetryevent.FieldPayload:
		m.ResetPayload()
		return nil
	case telemetryevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case telemetryevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TelemetryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TelemetryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TelemetryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TelemetryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TelemetryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TelemetryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TelemetryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TelemetryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TelemetryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TelemetryEvent edge %s", name)
}
