// Code generated by ent, DO NOT EDIT.

package dailyactivity

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailyactivity type in the database.
	Label = "daily_activity"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldActivityDay holds the string denoting the activity_day field in the database.
	FieldActivityDay = "activity_day"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// FieldQuestionsCorrect holds the string denoting the questions_correct field in the database.
	FieldQuestionsCorrect = "questions_correct"
	// FieldExamsCompleted holds the string denoting the exams_completed field in the database.
	FieldExamsCompleted = "exams_completed"
	// FieldExamsPassed holds the string denoting the exams_passed field in the database.
	FieldExamsPassed = "exams_passed"
	// Table holds the table name of the dailyactivity in the database.
	Table = "daily_activities"
)

// Columns holds all SQL columns for dailyactivity fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldActivityDay,
	FieldQuestionsAnswered,
	FieldQuestionsCorrect,
	FieldExamsCompleted,
	FieldExamsPassed,
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
	// ActivityDayValidator is a validator for the "activity_day" field. It is called by the builders before save.
	ActivityDayValidator func(string) error
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
	// QuestionsAnsweredValidator is a validator for the "questions_answered" field. It is called by the builders before save.
	QuestionsAnsweredValidator func(int) error
	// DefaultQuestionsCorrect holds the default value on creation for the "questions_correct" field.
	DefaultQuestionsCorrect int
	// QuestionsCorrectValidator is a validator for the "questions_correct" field. It is called by the builders before save.
	QuestionsCorrectValidator func(int) error
	// DefaultExamsCompleted holds the default value on creation for the "exams_completed" field.
	DefaultExamsCompleted int
	// ExamsCompletedValidator is a validator for the "exams_completed" field. It is called by the builders before save.
	ExamsCompletedValidator func(int) error
	// DefaultExamsPassed holds the default value on creation for the "exams_passed" field.
	DefaultExamsPassed int
	// ExamsPassedValidator is a validator for the "exams_passed" field. It is called by the builders before save.
	ExamsPassedValidator func(int) error
)

// OrderOption defines the ordering options for the DailyActivity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByActivityDay orders the results by the activity_day field.
func ByActivityDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityDay, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}

// ByQuestionsCorrect orders the results by the questions_correct field.
func ByQuestionsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsCorrect, opts...).ToFunc()
}

// ByExamsCompleted orders the results by the exams_completed field.
func ByExamsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamsCompleted, opts...).ToFunc()
}

// ByExamsPassed orders the results by the exams_passed field.
func ByExamsPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamsPassed, opts...).ToFunc()
}
