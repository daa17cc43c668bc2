package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// At most one open conversation exists per (contact, channel) and per
// (prospect, channel).
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("channel_kind").
			Values("email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"),
		field.String("channel_config_id"),
		field.String("contact_id").
			Optional().
			Nillable(),
		field.String("prospect_id").
			Optional().
			Nillable(),
		field.String("lead_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("open", "closed").
			Default("open"),
		field.String("last_watermark").
			Optional().
			Nillable().
			Comment("External id beyond which the peer's inbound stream is already consumed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_config_id", "status"),
		index.Fields("tenant_id"),
		index.Fields("channel_kind", "contact_id").
			Unique().
			Annotations(entsql.IndexWhere("contact_id IS NOT NULL AND status = 'open'")),
		index.Fields("channel_kind", "prospect_id").
			Unique().
			Annotations(entsql.IndexWhere("prospect_id IS NOT NULL AND status = 'open'")),
	}
}
