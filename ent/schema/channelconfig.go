package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChannelConfig holds the schema definition for the ChannelConfig entity.
// One row per configured outbound channel for a tenant. Credentials are stored
// as an opaque JSON document; the encrypted shape is {"encrypted": <base64 blob>}
// while legacy rows may still hold plain structured credentials (dual-read).
type ChannelConfig struct {
	ent.Schema
}

// Fields of the ChannelConfig.
func (ChannelConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("kind").
			Values("email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"),
		field.String("name").
			NotEmpty(),
		field.Bool("active").
			Default(true),
		field.Bool("is_default").
			Default(false),
		field.JSON("credentials", map[string]interface{}{}).
			Optional().
			Comment("Opaque credentials document; encrypted blob or legacy plain shape"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("daily_limit, from_name/email/phone, reply_polling, auto_convert"),
		field.String("last_error").
			Optional().
			Nillable().
			Comment("Fatal channel-level error surfaced to the admin UI (auth_failed, crypto_corrupted)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ChannelConfig.
func (ChannelConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "kind"),
		index.Fields("tenant_id", "active"),
	}
}
