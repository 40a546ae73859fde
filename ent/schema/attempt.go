package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records a single answered question. Rows are immutable once
// written; exam-owned attempts carry the parent exam attempt's ID.
type Attempt struct {
	ent.Schema
}

func (Attempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Opaque UUID for the attempt"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable().
			Comment("Opaque question ID, not the display code"),
		field.String("display_code").
			NotEmpty().
			Immutable().
			Comment("Human-readable question code, e.g. T1A01"),
		field.Int("selected_index").
			Min(-1).
			Max(3).
			Immutable().
			Comment("Chosen option 0-3, or -1 for a skipped exam question"),
		field.Bool("correct").
			Immutable(),
		field.String("session_kind").
			NotEmpty().
			Immutable().
			Comment("practice, weak-review, topic-practice, chapter-practice, topic-quiz, or exam"),
		field.String("parent_exam_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Owning exam attempt, empty for standalone practice"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("parent_exam_id"),
		index.Fields("correct"),
	}
}
