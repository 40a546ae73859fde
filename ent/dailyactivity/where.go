// Code generated by ent, DO NOT EDIT.

package dailyactivity

import (
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldUserID, v))
}

// ActivityDay applies equality check predicate on the "activity_day" field. It's identical to ActivityDayEQ.
func ActivityDay(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldActivityDay, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsCorrect applies equality check predicate on the "questions_correct" field. It's identical to QuestionsCorrectEQ.
func QuestionsCorrect(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// ExamsCompleted applies equality check predicate on the "exams_completed" field. It's identical to ExamsCompletedEQ.
func ExamsCompleted(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldExamsCompleted, v))
}

// ExamsPassed applies equality check predicate on the "exams_passed" field. It's identical to ExamsPassedEQ.
func ExamsPassed(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldExamsPassed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldContainsFold(FieldUserID, v))
}

// ActivityDayEQ applies the EQ predicate on the "activity_day" field.
func ActivityDayEQ(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldActivityDay, v))
}

// ActivityDayNEQ applies the NEQ predicate on the "activity_day" field.
func ActivityDayNEQ(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldActivityDay, v))
}

// ActivityDayIn applies the In predicate on the "activity_day" field.
func ActivityDayIn(vs ...string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldActivityDay, vs...))
}

// ActivityDayNotIn applies the NotIn predicate on the "activity_day" field.
func ActivityDayNotIn(vs ...string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldActivityDay, vs...))
}

// ActivityDayGT applies the GT predicate on the "activity_day" field.
func ActivityDayGT(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldActivityDay, v))
}

// ActivityDayGTE applies the GTE predicate on the "activity_day" field.
func ActivityDayGTE(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldActivityDay, v))
}

// ActivityDayLT applies the LT predicate on the "activity_day" field.
func ActivityDayLT(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldActivityDay, v))
}

// ActivityDayLTE applies the LTE predicate on the "activity_day" field.
func ActivityDayLTE(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldActivityDay, v))
}

// ActivityDayContains applies the Contains predicate on the "activity_day" field.
func ActivityDayContains(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldContains(FieldActivityDay, v))
}

// ActivityDayHasPrefix applies the HasPrefix predicate on the "activity_day" field.
func ActivityDayHasPrefix(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldHasPrefix(FieldActivityDay, v))
}

// ActivityDayHasSuffix applies the HasSuffix predicate on the "activity_day" field.
func ActivityDayHasSuffix(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldHasSuffix(FieldActivityDay, v))
}

// ActivityDayEqualFold applies the EqualFold predicate on the "activity_day" field.
func ActivityDayEqualFold(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEqualFold(FieldActivityDay, v))
}

// ActivityDayContainsFold applies the ContainsFold predicate on the "activity_day" field.
func ActivityDayContainsFold(v string) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldContainsFold(FieldActivityDay, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// QuestionsCorrectEQ applies the EQ predicate on the "questions_correct" field.
func QuestionsCorrectEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectNEQ applies the NEQ predicate on the "questions_correct" field.
func QuestionsCorrectNEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectIn applies the In predicate on the "questions_correct" field.
func QuestionsCorrectIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectNotIn applies the NotIn predicate on the "questions_correct" field.
func QuestionsCorrectNotIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectGT applies the GT predicate on the "questions_correct" field.
func QuestionsCorrectGT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectGTE applies the GTE predicate on the "questions_correct" field.
func QuestionsCorrectGTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLT applies the LT predicate on the "questions_correct" field.
func QuestionsCorrectLT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLTE applies the LTE predicate on the "questions_correct" field.
func QuestionsCorrectLTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldQuestionsCorrect, v))
}

// ExamsCompletedEQ applies the EQ predicate on the "exams_completed" field.
func ExamsCompletedEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldExamsCompleted, v))
}

// ExamsCompletedNEQ applies the NEQ predicate on the "exams_completed" field.
func ExamsCompletedNEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldExamsCompleted, v))
}

// ExamsCompletedIn applies the In predicate on the "exams_completed" field.
func ExamsCompletedIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldExamsCompleted, vs...))
}

// ExamsCompletedNotIn applies the NotIn predicate on the "exams_completed" field.
func ExamsCompletedNotIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldExamsCompleted, vs...))
}

// ExamsCompletedGT applies the GT predicate on the "exams_completed" field.
func ExamsCompletedGT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldExamsCompleted, v))
}

// ExamsCompletedGTE applies the GTE predicate on the "exams_completed" field.
func ExamsCompletedGTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldExamsCompleted, v))
}

// ExamsCompletedLT applies the LT predicate on the "exams_completed" field.
func ExamsCompletedLT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldExamsCompleted, v))
}

// ExamsCompletedLTE applies the LTE predicate on the "exams_completed" field.
func ExamsCompletedLTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldExamsCompleted, v))
}

// ExamsPassedEQ applies the EQ predicate on the "exams_passed" field.
func ExamsPassedEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldEQ(FieldExamsPassed, v))
}

// ExamsPassedNEQ applies the NEQ predicate on the "exams_passed" field.
func ExamsPassedNEQ(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNEQ(FieldExamsPassed, v))
}

// ExamsPassedIn applies the In predicate on the "exams_passed" field.
func ExamsPassedIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldIn(FieldExamsPassed, vs...))
}

// ExamsPassedNotIn applies the NotIn predicate on the "exams_passed" field.
func ExamsPassedNotIn(vs ...int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldNotIn(FieldExamsPassed, vs...))
}

// ExamsPassedGT applies the GT predicate on the "exams_passed" field.
func ExamsPassedGT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGT(FieldExamsPassed, v))
}

// ExamsPassedGTE applies the GTE predicate on the "exams_passed" field.
func ExamsPassedGTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldGTE(FieldExamsPassed, v))
}

// ExamsPassedLT applies the LT predicate on the "exams_passed" field.
func ExamsPassedLT(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLT(FieldExamsPassed, v))
}

// ExamsPassedLTE applies the LTE predicate on the "exams_passed" field.
func ExamsPassedLTE(v int) predicate.DailyActivity {
	return predicate.DailyActivity(sql.FieldLTE(FieldExamsPassed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyActivity) predicate.DailyActivity {
	return predicate.DailyActivity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyActivity) predicate.DailyActivity {
	return predicate.DailyActivity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyActivity) predicate.DailyActivity {
	return predicate.DailyActivity(sql.NotPredicates(p))
}
