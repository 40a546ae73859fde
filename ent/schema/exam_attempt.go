package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamAttempt is a completed full exam, created atomically with its
// child Attempts and never mutated afterwards.
type ExamAttempt struct {
	ent.Schema
}

func (ExamAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_attempt_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("exam_type").
			NotEmpty().
			Immutable().
			Comment("technician, general, or extra"),
		field.Int("raw_score").
			Min(0).
			Immutable(),
		field.Int("total_questions").
			Positive().
			Immutable(),
		field.Int("percentage").
			Min(0).
			Max(100).
			Immutable(),
		field.Bool("passed").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExamAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("exam_type"),
		index.Fields("created_at"),
	}
}
