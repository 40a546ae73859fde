package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeUnlock marks a badge as earned by a user. The unique
// (user_id, badge_id) index is what makes unlocking idempotent:
// re-evaluating an already-unlocked rule cannot create a second row
// or reset unlocked_at.
type BadgeUnlock struct {
	ent.Schema
}

func (BadgeUnlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("badge_id").
			NotEmpty().
			Immutable(),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
		field.Bool("seen").
			Default(false),
	}
}

func (BadgeUnlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "badge_id").Unique(),
		index.Fields("user_id", "seen"),
	}
}
