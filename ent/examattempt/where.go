// Code generated by ent, DO NOT EDIT.

package examattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldID, id))
}

// ExamAttemptID applies equality check predicate on the "exam_attempt_id" field. It's identical to ExamAttemptIDEQ.
func ExamAttemptID(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldExamAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldUserID, v))
}

// ExamType applies equality check predicate on the "exam_type" field. It's identical to ExamTypeEQ.
func ExamType(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldExamType, v))
}

// RawScore applies equality check predicate on the "raw_score" field. It's identical to RawScoreEQ.
func RawScore(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldRawScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldPercentage, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldPassed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// ExamAttemptIDEQ applies the EQ predicate on the "exam_attempt_id" field.
func ExamAttemptIDEQ(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldExamAttemptID, v))
}

// ExamAttemptIDNEQ applies the NEQ predicate on the "exam_attempt_id" field.
func ExamAttemptIDNEQ(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldExamAttemptID, v))
}

// ExamAttemptIDIn applies the In predicate on the "exam_attempt_id" field.
func ExamAttemptIDIn(vs ...string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldExamAttemptID, vs...))
}

// ExamAttemptIDNotIn applies the NotIn predicate on the "exam_attempt_id" field.
func ExamAttemptIDNotIn(vs ...string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldExamAttemptID, vs...))
}

// ExamAttemptIDGT applies the GT predicate on the "exam_attempt_id" field.
func ExamAttemptIDGT(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldExamAttemptID, v))
}

// ExamAttemptIDGTE applies the GTE predicate on the "exam_attempt_id" field.
func ExamAttemptIDGTE(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldExamAttemptID, v))
}

// ExamAttemptIDLT applies the LT predicate on the "exam_attempt_id" field.
func ExamAttemptIDLT(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldExamAttemptID, v))
}

// ExamAttemptIDLTE applies the LTE predicate on the "exam_attempt_id" field.
func ExamAttemptIDLTE(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldExamAttemptID, v))
}

// ExamAttemptIDContains applies the Contains predicate on the "exam_attempt_id" field.
func ExamAttemptIDContains(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldContains(FieldExamAttemptID, v))
}

// ExamAttemptIDHasPrefix applies the HasPrefix predicate on the "exam_attempt_id" field.
func ExamAttemptIDHasPrefix(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldHasPrefix(FieldExamAttemptID, v))
}

// ExamAttemptIDHasSuffix applies the HasSuffix predicate on the "exam_attempt_id" field.
func ExamAttemptIDHasSuffix(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldHasSuffix(FieldExamAttemptID, v))
}

// ExamAttemptIDEqualFold applies the EqualFold predicate on the "exam_attempt_id" field.
func ExamAttemptIDEqualFold(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEqualFold(FieldExamAttemptID, v))
}

// ExamAttemptIDContainsFold applies the ContainsFold predicate on the "exam_attempt_id" field.
func ExamAttemptIDContainsFold(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldContainsFold(FieldExamAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// ExamTypeEQ applies the EQ predicate on the "exam_type" field.
func ExamTypeEQ(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldExamType, v))
}

// ExamTypeNEQ applies the NEQ predicate on the "exam_type" field.
func ExamTypeNEQ(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldExamType, v))
}

// ExamTypeIn applies the In predicate on the "exam_type" field.
func ExamTypeIn(vs ...string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldExamType, vs...))
}

// ExamTypeNotIn applies the NotIn predicate on the "exam_type" field.
func ExamTypeNotIn(vs ...string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldExamType, vs...))
}

// ExamTypeGT applies the GT predicate on the "exam_type" field.
func ExamTypeGT(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldExamType, v))
}

// ExamTypeGTE applies the GTE predicate on the "exam_type" field.
func ExamTypeGTE(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldExamType, v))
}

// ExamTypeLT applies the LT predicate on the "exam_type" field.
func ExamTypeLT(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldExamType, v))
}

// ExamTypeLTE applies the LTE predicate on the "exam_type" field.
func ExamTypeLTE(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldExamType, v))
}

// ExamTypeContains applies the Contains predicate on the "exam_type" field.
func ExamTypeContains(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldContains(FieldExamType, v))
}

// ExamTypeHasPrefix applies the HasPrefix predicate on the "exam_type" field.
func ExamTypeHasPrefix(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldHasPrefix(FieldExamType, v))
}

// ExamTypeHasSuffix applies the HasSuffix predicate on the "exam_type" field.
func ExamTypeHasSuffix(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldHasSuffix(FieldExamType, v))
}

// ExamTypeEqualFold applies the EqualFold predicate on the "exam_type" field.
func ExamTypeEqualFold(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEqualFold(FieldExamType, v))
}

// ExamTypeContainsFold applies the ContainsFold predicate on the "exam_type" field.
func ExamTypeContainsFold(v string) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldContainsFold(FieldExamType, v))
}

// RawScoreEQ applies the EQ predicate on the "raw_score" field.
func RawScoreEQ(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldRawScore, v))
}

// RawScoreNEQ applies the NEQ predicate on the "raw_score" field.
func RawScoreNEQ(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldRawScore, v))
}

// RawScoreIn applies the In predicate on the "raw_score" field.
func RawScoreIn(vs ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldRawScore, vs...))
}

// RawScoreNotIn applies the NotIn predicate on the "raw_score" field.
func RawScoreNotIn(vs ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldRawScore, vs...))
}

// RawScoreGT applies the GT predicate on the "raw_score" field.
func RawScoreGT(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldRawScore, v))
}

// RawScoreGTE applies the GTE predicate on the "raw_score" field.
func RawScoreGTE(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldRawScore, v))
}

// RawScoreLT applies the LT predicate on the "raw_score" field.
func RawScoreLT(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldRawScore, v))
}

// RawScoreLTE applies the LTE predicate on the "raw_score" field.
func RawScoreLTE(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldRawScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldTotalQuestions, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v int) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldPercentage, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldPassed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamAttempt) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamAttempt) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamAttempt) predicate.ExamAttempt {
	return predicate.ExamAttempt(sql.NotPredicates(p))
}
