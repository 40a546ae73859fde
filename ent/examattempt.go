// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/examattempt"
)

// ExamAttempt is the model entity for the ExamAttempt schema.
type ExamAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExamAttemptID holds the value of the "exam_attempt_id" field.
	ExamAttemptID string `json:"exam_attempt_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// technician, general, or extra
	ExamType string `json:"exam_type,omitempty"`
	// RawScore holds the value of the "raw_score" field.
	RawScore int `json:"raw_score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Percentage holds the value of the "percentage" field.
	Percentage int `json:"percentage,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExamAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case examattempt.FieldPassed:
			values[i] = new(sql.NullBool)
		case examattempt.FieldID, examattempt.FieldRawScore, examattempt.FieldTotalQuestions, examattempt.FieldPercentage:
			values[i] = new(sql.NullInt64)
		case examattempt.FieldExamAttemptID, examattempt.FieldUserID, examattempt.FieldExamType:
			values[i] = new(sql.NullString)
		case examattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExamAttempt fields.
func (_m *ExamAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case examattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case examattempt.FieldExamAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_attempt_id", values[i])
			} else if value.Valid {
				_m.ExamAttemptID = value.String
			}
		case examattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case examattempt.FieldExamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_type", values[i])
			} else if value.Valid {
				_m.ExamType = value.String
			}
		case examattempt.FieldRawScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_score", values[i])
			} else if value.Valid {
				_m.RawScore = int(value.Int64)
			}
		case examattempt.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case examattempt.FieldPercentage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percentage", values[i])
			} else if value.Valid {
				_m.Percentage = int(value.Int64)
			}
		case examattempt.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case examattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExamAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *ExamAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExamAttempt.
// Note that you need to call ExamAttempt.Unwrap() before calling this method if this ExamAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExamAttempt) Update() *ExamAttemptUpdateOne {
	return NewExamAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExamAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExamAttempt) Unwrap() *ExamAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExamAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExamAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("ExamAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exam_attempt_id=")
	builder.WriteString(_m.ExamAttemptID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_type=")
	builder.WriteString(_m.ExamType)
	builder.WriteString(", ")
	builder.WriteString("raw_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawScore))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Percentage))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExamAttempts is a parsable slice of ExamAttempt.
type ExamAttempts []*ExamAttempt
