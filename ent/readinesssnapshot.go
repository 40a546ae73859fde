// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
)

// ReadinessSnapshot is the model entity for the ReadinessSnapshot schema.
type ReadinessSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ExamType holds the value of the "exam_type" field.
	ExamType string `json:"exam_type,omitempty"`
	// UTC calendar day in YYYY-MM-DD form
	SnapshotDay string `json:"snapshot_day,omitempty"`
	// ReadinessScore holds the value of the "readiness_score" field.
	ReadinessScore float64 `json:"readiness_score,omitempty"`
	// PassProbability holds the value of the "pass_probability" field.
	PassProbability float64 `json:"pass_probability,omitempty"`
	// RecentAccuracy holds the value of the "recent_accuracy" field.
	RecentAccuracy float64 `json:"recent_accuracy,omitempty"`
	// OverallAccuracy holds the value of the "overall_accuracy" field.
	OverallAccuracy float64 `json:"overall_accuracy,omitempty"`
	// Fraction of the question pool seen at least once
	Coverage float64 `json:"coverage,omitempty"`
	// Mean per-subelement accuracy
	Mastery      float64 `json:"mastery,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReadinessSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case readinesssnapshot.FieldReadinessScore, readinesssnapshot.FieldPassProbability, readinesssnapshot.FieldRecentAccuracy, readinesssnapshot.FieldOverallAccuracy, readinesssnapshot.FieldCoverage, readinesssnapshot.FieldMastery:
			values[i] = new(sql.NullFloat64)
		case readinesssnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case readinesssnapshot.FieldUserID, readinesssnapshot.FieldExamType, readinesssnapshot.FieldSnapshotDay:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReadinessSnapshot fields.
func (_m *ReadinessSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case readinesssnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case readinesssnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case readinesssnapshot.FieldExamType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_type", values[i])
			} else if value.Valid {
				_m.ExamType = value.String
			}
		case readinesssnapshot.FieldSnapshotDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_day", values[i])
			} else if value.Valid {
				_m.SnapshotDay = value.String
			}
		case readinesssnapshot.FieldReadinessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field readiness_score", values[i])
			} else if value.Valid {
				_m.ReadinessScore = value.Float64
			}
		case readinesssnapshot.FieldPassProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_probability", values[i])
			} else if value.Valid {
				_m.PassProbability = value.Float64
			}
		case readinesssnapshot.FieldRecentAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_accuracy", values[i])
			} else if value.Valid {
				_m.RecentAccuracy = value.Float64
			}
		case readinesssnapshot.FieldOverallAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_accuracy", values[i])
			} else if value.Valid {
				_m.OverallAccuracy = value.Float64
			}
		case readinesssnapshot.FieldCoverage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage", values[i])
			} else if value.Valid {
				_m.Coverage = value.Float64
			}
		case readinesssnapshot.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReadinessSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ReadinessSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReadinessSnapshot.
// Note that you need to call ReadinessSnapshot.Unwrap() before calling this method if this ReadinessSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReadinessSnapshot) Update() *ReadinessSnapshotUpdateOne {
	return NewReadinessSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReadinessSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReadinessSnapshot) Unwrap() *ReadinessSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReadinessSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReadinessSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ReadinessSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("exam_type=")
	builder.WriteString(_m.ExamType)
	builder.WriteString(", ")
	builder.WriteString("snapshot_day=")
	builder.WriteString(_m.SnapshotDay)
	builder.WriteString(", ")
	builder.WriteString("readiness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadinessScore))
	builder.WriteString(", ")
	builder.WriteString("pass_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassProbability))
	builder.WriteString(", ")
	builder.WriteString("recent_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentAccuracy))
	builder.WriteString(", ")
	builder.WriteString("overall_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallAccuracy))
	builder.WriteString(", ")
	builder.WriteString("coverage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Coverage))
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteByte(')')
	return builder.String()
}

// ReadinessSnapshots is a parsable slice of ReadinessSnapshot.
type ReadinessSnapshots []*ReadinessSnapshot
