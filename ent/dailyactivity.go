// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/dailyactivity"
)

// DailyActivity is the model entity for the DailyActivity schema.
type DailyActivity struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// UTC calendar day in YYYY-MM-DD form
	ActivityDay string `json:"activity_day,omitempty"`
	// QuestionsAnswered holds the value of the "questions_answered" field.
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// QuestionsCorrect holds the value of the "questions_correct" field.
	QuestionsCorrect int `json:"questions_correct,omitempty"`
	// ExamsCompleted holds the value of the "exams_completed" field.
	ExamsCompleted int `json:"exams_completed,omitempty"`
	// ExamsPassed holds the value of the "exams_passed" field.
	ExamsPassed  int `json:"exams_passed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyActivity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyactivity.FieldID, dailyactivity.FieldQuestionsAnswered, dailyactivity.FieldQuestionsCorrect, dailyactivity.FieldExamsCompleted, dailyactivity.FieldExamsPassed:
			values[i] = new(sql.NullInt64)
		case dailyactivity.FieldUserID, dailyactivity.FieldActivityDay:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyActivity fields.
func (_m *DailyActivity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyactivity.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailyactivity.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case dailyactivity.FieldActivityDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_day", values[i])
			} else if value.Valid {
				_m.ActivityDay = value.String
			}
		case dailyactivity.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case dailyactivity.FieldQuestionsCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_correct", values[i])
			} else if value.Valid {
				_m.QuestionsCorrect = int(value.Int64)
			}
		case dailyactivity.FieldExamsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exams_completed", values[i])
			} else if value.Valid {
				_m.ExamsCompleted = int(value.Int64)
			}
		case dailyactivity.FieldExamsPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exams_passed", values[i])
			} else if value.Valid {
				_m.ExamsPassed = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyActivity.
// This includes values selected through modifiers, order, etc.
func (_m *DailyActivity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyActivity.
// Note that you need to call DailyActivity.Unwrap() before calling this method if this DailyActivity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyActivity) Update() *DailyActivityUpdateOne {
	return NewDailyActivityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyActivity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyActivity) Unwrap() *DailyActivity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyActivity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyActivity) String() string {
	var builder strings.Builder
	builder.WriteString("DailyActivity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("activity_day=")
	builder.WriteString(_m.ActivityDay)
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("questions_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsCorrect))
	builder.WriteString(", ")
	builder.WriteString("exams_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamsCompleted))
	builder.WriteString(", ")
	builder.WriteString("exams_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExamsPassed))
	builder.WriteByte(')')
	return builder.String()
}

// DailyActivities is a parsable slice of DailyActivity.
type DailyActivities []*DailyActivity
