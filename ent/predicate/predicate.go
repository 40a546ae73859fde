// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// BadgeUnlock is the predicate function for badgeunlock builders.
type BadgeUnlock func(*sql.Selector)

// DailyActivity is the predicate function for dailyactivity builders.
type DailyActivity func(*sql.Selector)

// ExamAttempt is the predicate function for examattempt builders.
type ExamAttempt func(*sql.Selector)

// ReadinessSnapshot is the predicate function for readinesssnapshot builders.
type ReadinessSnapshot func(*sql.Selector)

// TelemetryEvent is the predicate function for telemetryevent builders.
type TelemetryEvent func(*sql.Selector)
