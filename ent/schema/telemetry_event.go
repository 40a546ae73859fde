package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TelemetryEvent records the outcome of a fire-and-forget task so
// background failures stay observable instead of vanishing.
type TelemetryEvent struct {
	ent.Schema
}

func (TelemetryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TelemetryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Bool("success").
			Immutable(),
		field.String("error_message").
			Optional().
			Immutable(),
	}
}

func (TelemetryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("success"),
	}
}
