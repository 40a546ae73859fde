// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldQuestionID, v))
}

// DisplayCode applies equality check predicate on the "display_code" field. It's identical to DisplayCodeEQ.
func DisplayCode(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDisplayCode, v))
}

// SelectedIndex applies equality check predicate on the "selected_index" field. It's identical to SelectedIndexEQ.
func SelectedIndex(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSelectedIndex, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrect, v))
}

// SessionKind applies equality check predicate on the "session_kind" field. It's identical to SessionKindEQ.
func SessionKind(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSessionKind, v))
}

// ParentExamID applies equality check predicate on the "parent_exam_id" field. It's identical to ParentExamIDEQ.
func ParentExamID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldParentExamID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldQuestionID, v))
}

// DisplayCodeEQ applies the EQ predicate on the "display_code" field.
func DisplayCodeEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldDisplayCode, v))
}

// DisplayCodeNEQ applies the NEQ predicate on the "display_code" field.
func DisplayCodeNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldDisplayCode, v))
}

// DisplayCodeIn applies the In predicate on the "display_code" field.
func DisplayCodeIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldDisplayCode, vs...))
}

// DisplayCodeNotIn applies the NotIn predicate on the "display_code" field.
func DisplayCodeNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldDisplayCode, vs...))
}

// DisplayCodeGT applies the GT predicate on the "display_code" field.
func DisplayCodeGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldDisplayCode, v))
}

// DisplayCodeGTE applies the GTE predicate on the "display_code" field.
func DisplayCodeGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldDisplayCode, v))
}

// DisplayCodeLT applies the LT predicate on the "display_code" field.
func DisplayCodeLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldDisplayCode, v))
}

// DisplayCodeLTE applies the LTE predicate on the "display_code" field.
func DisplayCodeLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldDisplayCode, v))
}

// DisplayCodeContains applies the Contains predicate on the "display_code" field.
func DisplayCodeContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldDisplayCode, v))
}

// DisplayCodeHasPrefix applies the HasPrefix predicate on the "display_code" field.
func DisplayCodeHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldDisplayCode, v))
}

// DisplayCodeHasSuffix applies the HasSuffix predicate on the "display_code" field.
func DisplayCodeHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldDisplayCode, v))
}

// DisplayCodeEqualFold applies the EqualFold predicate on the "display_code" field.
func DisplayCodeEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldDisplayCode, v))
}

// DisplayCodeContainsFold applies the ContainsFold predicate on the "display_code" field.
func DisplayCodeContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldDisplayCode, v))
}

// SelectedIndexEQ applies the EQ predicate on the "selected_index" field.
func SelectedIndexEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSelectedIndex, v))
}

// SelectedIndexNEQ applies the NEQ predicate on the "selected_index" field.
func SelectedIndexNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSelectedIndex, v))
}

// SelectedIndexIn applies the In predicate on the "selected_index" field.
func SelectedIndexIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSelectedIndex, vs...))
}

// SelectedIndexNotIn applies the NotIn predicate on the "selected_index" field.
func SelectedIndexNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSelectedIndex, vs...))
}

// SelectedIndexGT applies the GT predicate on the "selected_index" field.
func SelectedIndexGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSelectedIndex, v))
}

// SelectedIndexGTE applies the GTE predicate on the "selected_index" field.
func SelectedIndexGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSelectedIndex, v))
}

// SelectedIndexLT applies the LT predicate on the "selected_index" field.
func SelectedIndexLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSelectedIndex, v))
}

// SelectedIndexLTE applies the LTE predicate on the "selected_index" field.
func SelectedIndexLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSelectedIndex, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCorrect, v))
}

// SessionKindEQ applies the EQ predicate on the "session_kind" field.
func SessionKindEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSessionKind, v))
}

// SessionKindNEQ applies the NEQ predicate on the "session_kind" field.
func SessionKindNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSessionKind, v))
}

// SessionKindIn applies the In predicate on the "session_kind" field.
func SessionKindIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSessionKind, vs...))
}

// SessionKindNotIn applies the NotIn predicate on the "session_kind" field.
func SessionKindNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSessionKind, vs...))
}

// SessionKindGT applies the GT predicate on the "session_kind" field.
func SessionKindGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSessionKind, v))
}

// SessionKindGTE applies the GTE predicate on the "session_kind" field.
func SessionKindGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSessionKind, v))
}

// SessionKindLT applies the LT predicate on the "session_kind" field.
func SessionKindLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSessionKind, v))
}

// SessionKindLTE applies the LTE predicate on the "session_kind" field.
func SessionKindLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSessionKind, v))
}

// SessionKindContains applies the Contains predicate on the "session_kind" field.
func SessionKindContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldSessionKind, v))
}

// SessionKindHasPrefix applies the HasPrefix predicate on the "session_kind" field.
func SessionKindHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldSessionKind, v))
}

// SessionKindHasSuffix applies the HasSuffix predicate on the "session_kind" field.
func SessionKindHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldSessionKind, v))
}

// SessionKindEqualFold applies the EqualFold predicate on the "session_kind" field.
func SessionKindEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldSessionKind, v))
}

// SessionKindContainsFold applies the ContainsFold predicate on the "session_kind" field.
func SessionKindContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldSessionKind, v))
}

// ParentExamIDEQ applies the EQ predicate on the "parent_exam_id" field.
func ParentExamIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldParentExamID, v))
}

// ParentExamIDNEQ applies the NEQ predicate on the "parent_exam_id" field.
func ParentExamIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldParentExamID, v))
}

// ParentExamIDIn applies the In predicate on the "parent_exam_id" field.
func ParentExamIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldParentExamID, vs...))
}

// ParentExamIDNotIn applies the NotIn predicate on the "parent_exam_id" field.
func ParentExamIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldParentExamID, vs...))
}

// ParentExamIDGT applies the GT predicate on the "parent_exam_id" field.
func ParentExamIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldParentExamID, v))
}

// ParentExamIDGTE applies the GTE predicate on the "parent_exam_id" field.
func ParentExamIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldParentExamID, v))
}

// ParentExamIDLT applies the LT predicate on the "parent_exam_id" field.
func ParentExamIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldParentExamID, v))
}

// ParentExamIDLTE applies the LTE predicate on the "parent_exam_id" field.
func ParentExamIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldParentExamID, v))
}

// ParentExamIDContains applies the Contains predicate on the "parent_exam_id" field.
func ParentExamIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldParentExamID, v))
}

// ParentExamIDHasPrefix applies the HasPrefix predicate on the "parent_exam_id" field.
func ParentExamIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldParentExamID, v))
}

// ParentExamIDHasSuffix applies the HasSuffix predicate on the "parent_exam_id" field.
func ParentExamIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldParentExamID, v))
}

// ParentExamIDIsNil applies the IsNil predicate on the "parent_exam_id" field.
func ParentExamIDIsNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldIsNull(FieldParentExamID))
}

// ParentExamIDNotNil applies the NotNil predicate on the "parent_exam_id" field.
func ParentExamIDNotNil() predicate.Attempt {
	return predicate.Attempt(sql.FieldNotNull(FieldParentExamID))
}

// ParentExamIDEqualFold applies the EqualFold predicate on the "parent_exam_id" field.
func ParentExamIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldParentExamID, v))
}

// ParentExamIDContainsFold applies the ContainsFold predicate on the "parent_exam_id" field.
func ParentExamIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldParentExamID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
