package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContactAttempt holds the schema definition for the ContactAttempt entity.
// Append-only: an attempt row is the ground truth that a send was attempted
// (or an inbound message was ingested). Attempt rows are never updated except
// for delivery/engagement timestamps filled in by receipts and reply polling.
type ContactAttempt struct {
	ent.Schema
}

// Fields of the ContactAttempt.
func (ContactAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("campaign_id").
			Optional().
			Nillable(),
		field.String("campaign_step_id").
			Optional().
			Nillable(),
		field.String("recipient_id").
			Optional().
			Nillable(),
		field.String("lead_id").
			Optional().
			Nillable(),
		field.String("contact_id").
			Optional().
			Nillable(),
		field.String("prospect_id").
			Optional().
			Nillable(),
		field.String("conversation_id").
			Optional().
			Nillable(),
		field.Enum("channel_kind").
			Values("email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"),
		field.Enum("direction").
			Values("outbound", "inbound"),
		field.Enum("status").
			Values("queued", "sent", "delivered", "failed", "bounced"),
		field.String("subject").
			Optional().
			Nillable(),
		field.Text("body"),
		field.String("external_id").
			Optional().
			Nillable().
			Comment("Provider message id"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("opened_at").
			Optional().
			Nillable(),
		field.Time("clicked_at").
			Optional().
			Nillable(),
		field.Time("replied_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Provider payload, error kind and reason"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ContactAttempt.
func (ContactAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("campaign_id"),
		index.Fields("recipient_id"),
		index.Fields("conversation_id", "direction"),
		index.Fields("external_id"),
	}
}
