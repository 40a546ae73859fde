// Code generated by ent, DO NOT EDIT.

package examattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the examattempt type in the database.
	Label = "exam_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExamAttemptID holds the string denoting the exam_attempt_id field in the database.
	FieldExamAttemptID = "exam_attempt_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldExamType holds the string denoting the exam_type field in the database.
	FieldExamType = "exam_type"
	// FieldRawScore holds the string denoting the raw_score field in the database.
	FieldRawScore = "raw_score"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldPercentage holds the string denoting the percentage field in the database.
	FieldPercentage = "percentage"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the examattempt in the database.
	Table = "exam_attempts"
)

// Columns holds all SQL columns for examattempt fields.
var Columns = []string{
	FieldID,
	FieldExamAttemptID,
	FieldUserID,
	FieldExamType,
	FieldRawScore,
	FieldTotalQuestions,
	FieldPercentage,
	FieldPassed,
	FieldCreatedAt,
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
	// ExamAttemptIDValidator is a validator for the "exam_attempt_id" field. It is called by the builders before save.
	ExamAttemptIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ExamTypeValidator is a validator for the "exam_type" field. It is called by the builders before save.
	ExamTypeValidator func(string) error
	// RawScoreValidator is a validator for the "raw_score" field. It is called by the builders before save.
	RawScoreValidator func(int) error
	// TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	TotalQuestionsValidator func(int) error
	// PercentageValidator is a validator for the "percentage" field. It is called by the builders before save.
	PercentageValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExamAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExamAttemptID orders the results by the exam_attempt_id field.
func ByExamAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamAttemptID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByExamType orders the results by the exam_type field.
func ByExamType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamType, opts...).ToFunc()
}

// ByRawScore orders the results by the raw_score field.
func ByRawScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawScore, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByPercentage orders the results by the percentage field.
func ByPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPercentage, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
