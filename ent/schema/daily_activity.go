package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyActivity aggregates one user's activity for one calendar day.
// One row per (user, day); counters only ever increase within a day.
// A new day gets a new row rather than zeroing the old one.
type DailyActivity struct {
	ent.Schema
}

func (DailyActivity) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("activity_day").
			NotEmpty().
			Immutable().
			Comment("UTC calendar day in YYYY-MM-DD form"),
		field.Int("questions_answered").
			Default(0).
			Min(0),
		field.Int("questions_correct").
			Default(0).
			Min(0),
		field.Int("exams_completed").
			Default(0).
			Min(0),
		field.Int("exams_passed").
			Default(0).
			Min(0),
	}
}

func (DailyActivity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "activity_day").Unique(),
		index.Fields("activity_day"),
	}
}
