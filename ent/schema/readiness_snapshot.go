package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReadinessSnapshot stores one day's readiness estimate for a user and
// exam type. A recomputation upserts the current day's row.
type ReadinessSnapshot struct {
	ent.Schema
}

func (ReadinessSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("exam_type").
			NotEmpty().
			Immutable(),
		field.String("snapshot_day").
			NotEmpty().
			Immutable().
			Comment("UTC calendar day in YYYY-MM-DD form"),
		field.Float("readiness_score").
			Min(0).
			Max(1),
		field.Float("pass_probability").
			Min(0).
			Max(1),
		field.Float("recent_accuracy").
			Min(0).
			Max(1),
		field.Float("overall_accuracy").
			Min(0).
			Max(1),
		field.Float("coverage").
			Min(0).
			Max(1).
			Comment("Fraction of the question pool seen at least once"),
		field.Float("mastery").
			Min(0).
			Max(1).
			Comment("Mean per-subelement accuracy"),
	}
}

func (ReadinessSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "exam_type", "snapshot_day").Unique(),
		index.Fields("user_id", "exam_type"),
	}
}
