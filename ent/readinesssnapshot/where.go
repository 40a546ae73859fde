// Code generated by ent, DO NOT EDIT.

package readinesssnapshot

import (
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldUserID, v))
}

// ExamType applies equality check predicate on the "exam_type" field. It's identical to ExamTypeEQ.
func ExamType(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldExamType, v))
}

// SnapshotDay applies equality check predicate on the "snapshot_day" field. It's identical to SnapshotDayEQ.
func SnapshotDay(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldSnapshotDay, v))
}

// ReadinessScore applies equality check predicate on the "readiness_score" field. It's identical to ReadinessScoreEQ.
func ReadinessScore(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldReadinessScore, v))
}

// PassProbability applies equality check predicate on the "pass_probability" field. It's identical to PassProbabilityEQ.
func PassProbability(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldPassProbability, v))
}

// RecentAccuracy applies equality check predicate on the "recent_accuracy" field. It's identical to RecentAccuracyEQ.
func RecentAccuracy(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldRecentAccuracy, v))
}

// OverallAccuracy applies equality check predicate on the "overall_accuracy" field. It's identical to OverallAccuracyEQ.
func OverallAccuracy(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldOverallAccuracy, v))
}

// Coverage applies equality check predicate on the "coverage" field. It's identical to CoverageEQ.
func Coverage(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldCoverage, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldMastery, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContainsFold(FieldUserID, v))
}

// ExamTypeEQ applies the EQ predicate on the "exam_type" field.
func ExamTypeEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldExamType, v))
}

// ExamTypeNEQ applies the NEQ predicate on the "exam_type" field.
func ExamTypeNEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldExamType, v))
}

// ExamTypeIn applies the In predicate on the "exam_type" field.
func ExamTypeIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldExamType, vs...))
}

// ExamTypeNotIn applies the NotIn predicate on the "exam_type" field.
func ExamTypeNotIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldExamType, vs...))
}

// ExamTypeGT applies the GT predicate on the "exam_type" field.
func ExamTypeGT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldExamType, v))
}

// ExamTypeGTE applies the GTE predicate on the "exam_type" field.
func ExamTypeGTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldExamType, v))
}

// ExamTypeLT applies the LT predicate on the "exam_type" field.
func ExamTypeLT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldExamType, v))
}

// ExamTypeLTE applies the LTE predicate on the "exam_type" field.
func ExamTypeLTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldExamType, v))
}

// ExamTypeContains applies the Contains predicate on the "exam_type" field.
func ExamTypeContains(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContains(FieldExamType, v))
}

// ExamTypeHasPrefix applies the HasPrefix predicate on the "exam_type" field.
func ExamTypeHasPrefix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasPrefix(FieldExamType, v))
}

// ExamTypeHasSuffix applies the HasSuffix predicate on the "exam_type" field.
func ExamTypeHasSuffix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasSuffix(FieldExamType, v))
}

// ExamTypeEqualFold applies the EqualFold predicate on the "exam_type" field.
func ExamTypeEqualFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEqualFold(FieldExamType, v))
}

// ExamTypeContainsFold applies the ContainsFold predicate on the "exam_type" field.
func ExamTypeContainsFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContainsFold(FieldExamType, v))
}

// SnapshotDayEQ applies the EQ predicate on the "snapshot_day" field.
func SnapshotDayEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldSnapshotDay, v))
}

// SnapshotDayNEQ applies the NEQ predicate on the "snapshot_day" field.
func SnapshotDayNEQ(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldSnapshotDay, v))
}

// SnapshotDayIn applies the In predicate on the "snapshot_day" field.
func SnapshotDayIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldSnapshotDay, vs...))
}

// SnapshotDayNotIn applies the NotIn predicate on the "snapshot_day" field.
func SnapshotDayNotIn(vs ...string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldSnapshotDay, vs...))
}

// SnapshotDayGT applies the GT predicate on the "snapshot_day" field.
func SnapshotDayGT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldSnapshotDay, v))
}

// SnapshotDayGTE applies the GTE predicate on the "snapshot_day" field.
func SnapshotDayGTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldSnapshotDay, v))
}

// SnapshotDayLT applies the LT predicate on the "snapshot_day" field.
func SnapshotDayLT(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldSnapshotDay, v))
}

// SnapshotDayLTE applies the LTE predicate on the "snapshot_day" field.
func SnapshotDayLTE(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldSnapshotDay, v))
}

// SnapshotDayContains applies the Contains predicate on the "snapshot_day" field.
func SnapshotDayContains(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContains(FieldSnapshotDay, v))
}

// SnapshotDayHasPrefix applies the HasPrefix predicate on the "snapshot_day" field.
func SnapshotDayHasPrefix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasPrefix(FieldSnapshotDay, v))
}

// SnapshotDayHasSuffix applies the HasSuffix predicate on the "snapshot_day" field.
func SnapshotDayHasSuffix(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldHasSuffix(FieldSnapshotDay, v))
}

// SnapshotDayEqualFold applies the EqualFold predicate on the "snapshot_day" field.
func SnapshotDayEqualFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEqualFold(FieldSnapshotDay, v))
}

// SnapshotDayContainsFold applies the ContainsFold predicate on the "snapshot_day" field.
func SnapshotDayContainsFold(v string) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldContainsFold(FieldSnapshotDay, v))
}

// ReadinessScoreEQ applies the EQ predicate on the "readiness_score" field.
func ReadinessScoreEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldReadinessScore, v))
}

// ReadinessScoreNEQ applies the NEQ predicate on the "readiness_score" field.
func ReadinessScoreNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldReadinessScore, v))
}

// ReadinessScoreIn applies the In predicate on the "readiness_score" field.
func ReadinessScoreIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldReadinessScore, vs...))
}

// ReadinessScoreNotIn applies the NotIn predicate on the "readiness_score" field.
func ReadinessScoreNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldReadinessScore, vs...))
}

// ReadinessScoreGT applies the GT predicate on the "readiness_score" field.
func ReadinessScoreGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldReadinessScore, v))
}

// ReadinessScoreGTE applies the GTE predicate on the "readiness_score" field.
func ReadinessScoreGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldReadinessScore, v))
}

// ReadinessScoreLT applies the LT predicate on the "readiness_score" field.
func ReadinessScoreLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldReadinessScore, v))
}

// ReadinessScoreLTE applies the LTE predicate on the "readiness_score" field.
func ReadinessScoreLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldReadinessScore, v))
}

// PassProbabilityEQ applies the EQ predicate on the "pass_probability" field.
func PassProbabilityEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldPassProbability, v))
}

// PassProbabilityNEQ applies the NEQ predicate on the "pass_probability" field.
func PassProbabilityNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldPassProbability, v))
}

// PassProbabilityIn applies the In predicate on the "pass_probability" field.
func PassProbabilityIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldPassProbability, vs...))
}

// PassProbabilityNotIn applies the NotIn predicate on the "pass_probability" field.
func PassProbabilityNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldPassProbability, vs...))
}

// PassProbabilityGT applies the GT predicate on the "pass_probability" field.
func PassProbabilityGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldPassProbability, v))
}

// PassProbabilityGTE applies the GTE predicate on the "pass_probability" field.
func PassProbabilityGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldPassProbability, v))
}

// PassProbabilityLT applies the LT predicate on the "pass_probability" field.
func PassProbabilityLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldPassProbability, v))
}

// PassProbabilityLTE applies the LTE predicate on the "pass_probability" field.
func PassProbabilityLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldPassProbability, v))
}

// RecentAccuracyEQ applies the EQ predicate on the "recent_accuracy" field.
func RecentAccuracyEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldRecentAccuracy, v))
}

// RecentAccuracyNEQ applies the NEQ predicate on the "recent_accuracy" field.
func RecentAccuracyNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldRecentAccuracy, v))
}

// RecentAccuracyIn applies the In predicate on the "recent_accuracy" field.
func RecentAccuracyIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldRecentAccuracy, vs...))
}

// RecentAccuracyNotIn applies the NotIn predicate on the "recent_accuracy" field.
func RecentAccuracyNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldRecentAccuracy, vs...))
}

// RecentAccuracyGT applies the GT predicate on the "recent_accuracy" field.
func RecentAccuracyGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldRecentAccuracy, v))
}

// RecentAccuracyGTE applies the GTE predicate on the "recent_accuracy" field.
func RecentAccuracyGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldRecentAccuracy, v))
}

// RecentAccuracyLT applies the LT predicate on the "recent_accuracy" field.
func RecentAccuracyLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldRecentAccuracy, v))
}

// RecentAccuracyLTE applies the LTE predicate on the "recent_accuracy" field.
func RecentAccuracyLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldRecentAccuracy, v))
}

// OverallAccuracyEQ applies the EQ predicate on the "overall_accuracy" field.
func OverallAccuracyEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldOverallAccuracy, v))
}

// OverallAccuracyNEQ applies the NEQ predicate on the "overall_accuracy" field.
func OverallAccuracyNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldOverallAccuracy, v))
}

// OverallAccuracyIn applies the In predicate on the "overall_accuracy" field.
func OverallAccuracyIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldOverallAccuracy, vs...))
}

// OverallAccuracyNotIn applies the NotIn predicate on the "overall_accuracy" field.
func OverallAccuracyNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldOverallAccuracy, vs...))
}

// OverallAccuracyGT applies the GT predicate on the "overall_accuracy" field.
func OverallAccuracyGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldOverallAccuracy, v))
}

// OverallAccuracyGTE applies the GTE predicate on the "overall_accuracy" field.
func OverallAccuracyGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldOverallAccuracy, v))
}

// OverallAccuracyLT applies the LT predicate on the "overall_accuracy" field.
func OverallAccuracyLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldOverallAccuracy, v))
}

// OverallAccuracyLTE applies the LTE predicate on the "overall_accuracy" field.
func OverallAccuracyLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldOverallAccuracy, v))
}

// CoverageEQ applies the EQ predicate on the "coverage" field.
func CoverageEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldCoverage, v))
}

// CoverageNEQ applies the NEQ predicate on the "coverage" field.
func CoverageNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldCoverage, v))
}

// CoverageIn applies the In predicate on the "coverage" field.
func CoverageIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldCoverage, vs...))
}

// CoverageNotIn applies the NotIn predicate on the "coverage" field.
func CoverageNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldCoverage, vs...))
}

// CoverageGT applies the GT predicate on the "coverage" field.
func CoverageGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldCoverage, v))
}

// CoverageGTE applies the GTE predicate on the "coverage" field.
func CoverageGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldCoverage, v))
}

// CoverageLT applies the LT predicate on the "coverage" field.
func CoverageLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldCoverage, v))
}

// CoverageLTE applies the LTE predicate on the "coverage" field.
func CoverageLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldCoverage, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.FieldLTE(FieldMastery, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReadinessSnapshot) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReadinessSnapshot) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReadinessSnapshot) predicate.ReadinessSnapshot {
	return predicate.ReadinessSnapshot(sql.NotPredicates(p))
}
