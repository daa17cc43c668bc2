package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("type").
			Values("immediate", "scheduled", "sequence").
			Default("immediate"),
		field.Enum("status").
			Values("draft", "active", "paused", "completed").
			Default("draft"),
		field.Time("scheduled_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("message_interval_seconds").
			Default(0).
			Comment("Stagger between recipients for first-step sends"),
		field.JSON("target_filter", map[string]interface{}{}).
			Optional().
			Comment("Snapshot of the lead filter used at enrolment; never re-evaluated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "status"),
	}
}
