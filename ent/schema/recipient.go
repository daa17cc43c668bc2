package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Recipient holds the schema definition for the Recipient entity: the unit of
// campaign progression — a (campaign, target) pair with its own step pointer
// and clock. The target is either a (lead_id, contact_id) pair or a prospect_id.
type Recipient struct {
	ent.Schema
}

// Fields of the Recipient.
func (Recipient) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.String("lead_id").
			Optional().
			Nillable(),
		field.String("contact_id").
			Optional().
			Nillable(),
		field.String("prospect_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "unsubscribed", "replied").
			Default("pending"),
		field.Int("current_step").
			Default(1).
			Comment("1..N+1; monotonically non-decreasing"),
		field.Time("next_action_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Recipient.
func (Recipient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "status"),
		index.Fields("campaign_id", "contact_id").
			Unique().
			Annotations(entsql.IndexWhere("contact_id IS NOT NULL")),
		index.Fields("campaign_id", "prospect_id").
			Unique().
			Annotations(entsql.IndexWhere("prospect_id IS NOT NULL")),
		index.Fields("prospect_id"),
		index.Fields("tenant_id"),
	}
}
