// Code generated by ent, DO NOT EDIT.

package readinesssnapshot

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the readinesssnapshot type in the database.
	Label = "readiness_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExamType holds the string denoting the exam_type field in the database.
	FieldExamType = "exam_type"
	// FieldSnapshotDay holds the string denoting the snapshot_day field in the database.
	FieldSnapshotDay = "snapshot_day"
	// FieldReadinessScore holds the string denoting the readiness_score field in the database.
	FieldReadinessScore = "readiness_score"
	// FieldPassProbability holds the string denoting the pass_probability field in the database.
	FieldPassProbability = "pass_probability"
	// FieldRecentAccuracy holds the string denoting the recent_accuracy field in the database.
	FieldRecentAccuracy = "recent_accuracy"
	// FieldOverallAccuracy holds the string denoting the overall_accuracy field in the database.
	FieldOverallAccuracy = "overall_accuracy"
	// FieldCoverage holds the string denoting the coverage field in the database.
	FieldCoverage = "coverage"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// Table holds the table name of the readinesssnapshot in the database.
	Table = "readiness_snapshots"
)

// Columns holds all SQL columns for readinesssnapshot fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldExamType,
	FieldSnapshotDay,
	FieldReadinessScore,
	FieldPassProbability,
	FieldRecentAccuracy,
	FieldOverallAccuracy,
	FieldCoverage,
	FieldMastery,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ExamTypeValidator is a validator for the "exam_type" field. It is called by the builders before save.
	ExamTypeValidator func(string) error
	// SnapshotDayValidator is a validator for the "snapshot_day" field. It is called by the builders before save.
	SnapshotDayValidator func(string) error
	// ReadinessScoreValidator is a validator for the "readiness_score" field. It is called by the builders before save.
	ReadinessScoreValidator func(float64) error
	// PassProbabilityValidator is a validator for the "pass_probability" field. It is called by the builders before save.
	PassProbabilityValidator func(float64) error
	// RecentAccuracyValidator is a validator for the "recent_accuracy" field. It is called by the builders before save.
	RecentAccuracyValidator func(float64) error
	// OverallAccuracyValidator is a validator for the "overall_accuracy" field. It is called by the builders before save.
	OverallAccuracyValidator func(float64) error
	// CoverageValidator is a validator for the "coverage" field. It is called by the builders before save.
	CoverageValidator func(float64) error
	// MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	MasteryValidator func(float64) error
)

// OrderOption defines the ordering options for the ReadinessSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExamType orders the results by the exam_type field.
func ByExamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamType, opts...).ToFunc()
}

// BySnapshotDay orders the results by the snapshot_day field.
func BySnapshotDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotDay, opts...).ToFunc()
}

// ByReadinessScore orders the results by the readiness_score field.
func ByReadinessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadinessScore, opts...).ToFunc()
}

// ByPassProbability orders the results by the pass_probability field.
func ByPassProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassProbability, opts...).ToFunc()
}

// ByRecentAccuracy orders the results by the recent_accuracy field.
func ByRecentAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecentAccuracy, opts...).ToFunc()
}

// ByOverallAccuracy orders the results by the overall_accuracy field.
func ByOverallAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallAccuracy, opts...).ToFunc()
}

// ByCoverage orders the results by the coverage field.
func ByCoverage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverage, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}
