package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Template holds the schema definition for the Template entity.
type Template struct {
	ent.Schema
}

// Fields of the Template.
func (Template) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Enum("channel_kind").
			Values("email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"),
		field.String("name").
			NotEmpty(),
		field.String("subject").
			Optional().
			Nillable(),
		field.Text("body"),
		field.Bool("use_ai").
			Default(false).
			Comment("If true, variations must be non-empty and rendering picks one uniformly at random"),
		field.JSON("variations", []map[string]string{}).
			Optional().
			Comment("Ordered {subject?, body} alternatives for AI-backed templates"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Template.
func (Template) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "channel_kind"),
	}
}
