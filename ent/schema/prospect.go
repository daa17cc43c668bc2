package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prospect holds the schema definition for the Prospect entity: a
// channel-native contact not yet promoted to a Lead. Carries the
// platform-specific address (telegram user id or phone) and the inbound
// watermark for reply polling.
type Prospect struct {
	ent.Schema
}

// Fields of the Prospect.
func (Prospect) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("group_id").
			Optional().
			Nillable(),
		field.String("channel_config_id"),
		field.String("display_name"),
		field.String("username").
			Optional().
			Nillable(),
		field.String("phone").
			Optional().
			Nillable().
			Comment("E.164-like digit string; empty members are not sendable"),
		field.Int64("telegram_user_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "messaged", "replied", "converted").
			Default("pending"),
		field.Time("last_messaged_at").
			Optional().
			Nillable(),
		field.Time("last_replied_at").
			Optional().
			Nillable(),
		field.String("last_external_id").
			Optional().
			Nillable().
			Comment("Inbound watermark; monotonically advancing"),
		field.String("converted_lead_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Prospect.
func (Prospect) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("group_id"),
		index.Fields("channel_config_id", "status"),
		index.Fields("telegram_user_id"),
		index.Fields("phone"),
	}
}
