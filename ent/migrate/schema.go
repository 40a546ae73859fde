// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "display_code", Type: field.TypeString},
		{Name: "selected_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "session_kind", Type: field.TypeString},
		{Name: "parent_exam_id", Type: field.TypeString, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
			{
				Name:    "attempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4]},
			},
			{
				Name:    "attempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[5]},
			},
			{
				Name:    "attempt_parent_exam_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[10]},
			},
			{
				Name:    "attempt_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[8]},
			},
		},
	}
	// BadgeUnlocksColumns holds the columns for the "badge_unlocks" table.
	BadgeUnlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
		{Name: "seen", Type: field.TypeBool, Default: false},
	}
	// BadgeUnlocksTable holds the schema information for the "badge_unlocks" table.
	BadgeUnlocksTable = &schema.Table{
		Name:       "badge_unlocks",
		Columns:    BadgeUnlocksColumns,
		PrimaryKey: []*schema.Column{BadgeUnlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeunlock_user_id_badge_id",
				Unique:  true,
				Columns: []*schema.Column{BadgeUnlocksColumns[1], BadgeUnlocksColumns[2]},
			},
			{
				Name:    "badgeunlock_user_id_seen",
				Unique:  false,
				Columns: []*schema.Column{BadgeUnlocksColumns[1], BadgeUnlocksColumns[4]},
			},
		},
	}
	// DailyActivitiesColumns holds the columns for the "daily_activities" table.
	DailyActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "activity_day", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "questions_correct", Type: field.TypeInt, Default: 0},
		{Name: "exams_completed", Type: field.TypeInt, Default: 0},
		{Name: "exams_passed", Type: field.TypeInt, Default: 0},
	}
	// DailyActivitiesTable holds the schema information for the "daily_activities" table.
	DailyActivitiesTable = &schema.Table{
		Name:       "daily_activities",
		Columns:    DailyActivitiesColumns,
		PrimaryKey: []*schema.Column{DailyActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailyactivity_user_id_activity_day",
				Unique:  true,
				Columns: []*schema.Column{DailyActivitiesColumns[1], DailyActivitiesColumns[2]},
			},
			{
				Name:    "dailyactivity_activity_day",
				Unique:  false,
				Columns: []*schema.Column{DailyActivitiesColumns[2]},
			},
		},
	}
	// ExamAttemptsColumns holds the columns for the "exam_attempts" table.
	ExamAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "exam_attempt_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_type", Type: field.TypeString},
		{Name: "raw_score", Type: field.TypeInt},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExamAttemptsTable holds the schema information for the "exam_attempts" table.
	ExamAttemptsTable = &schema.Table{
		Name:       "exam_attempts",
		Columns:    ExamAttemptsColumns,
		PrimaryKey: []*schema.Column{ExamAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examattempt_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[2]},
			},
			{
				Name:    "examattempt_exam_type",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[3]},
			},
			{
				Name:    "examattempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExamAttemptsColumns[8]},
			},
		},
	}
	// ReadinessSnapshotsColumns holds the columns for the "readiness_snapshots" table.
	ReadinessSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exam_type", Type: field.TypeString},
		{Name: "snapshot_day", Type: field.TypeString},
		{Name: "readiness_score", Type: field.TypeFloat64},
		{Name: "pass_probability", Type: field.TypeFloat64},
		{Name: "recent_accuracy", Type: field.TypeFloat64},
		{Name: "overall_accuracy", Type: field.TypeFloat64},
		{Name: "coverage", Type: field.TypeFloat64},
		{Name: "mastery", Type: field.TypeFloat64},
	}
	// ReadinessSnapshotsTable holds the schema information for the "readiness_snapshots" table.
	ReadinessSnapshotsTable = &schema.Table{
		Name:       "readiness_snapshots",
		Columns:    ReadinessSnapshotsColumns,
		PrimaryKey: []*schema.Column{ReadinessSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readinesssnapshot_user_id_exam_type_snapshot_day",
				Unique:  true,
				Columns: []*schema.Column{ReadinessSnapshotsColumns[1], ReadinessSnapshotsColumns[2], ReadinessSnapshotsColumns[3]},
			},
			{
				Name:    "readinesssnapshot_user_id_exam_type",
				Unique:  false,
				Columns: []*schema.Column{ReadinessSnapshotsColumns[1], ReadinessSnapshotsColumns[2]},
			},
		},
	}
	// TelemetryEventsColumns holds the columns for the "telemetry_events" table.
	TelemetryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// TelemetryEventsTable holds the schema information for the "telemetry_events" table.
	TelemetryEventsTable = &schema.Table{
		Name:       "telemetry_events",
		Columns:    TelemetryEventsColumns,
		PrimaryKey: []*schema.Column{TelemetryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "telemetryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[1]},
			},
			{
				Name:    "telemetryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[2]},
			},
			{
				Name:    "telemetryevent_name",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[3]},
			},
			{
				Name:    "telemetryevent_success",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		BadgeUnlocksTable,
		DailyActivitiesTable,
		ExamAttemptsTable,
		ReadinessSnapshotsTable,
		TelemetryEventsTable,
	}
)

func init() {
}
