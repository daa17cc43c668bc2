package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CampaignStep holds the schema definition for the CampaignStep entity.
// Steps are processed strictly in step_order; step 1 carries no delay.
type CampaignStep struct {
	ent.Schema
}

// Fields of the CampaignStep.
func (CampaignStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("campaign_id").
			Immutable(),
		field.Int("step_order").
			Positive(),
		field.Enum("channel_kind").
			Values("email_smtp", "email_api", "sms", "whatsapp_web", "whatsapp_business", "telegram", "voice"),
		field.String("channel_config_id"),
		field.String("template_id"),
		field.Int("delay_days").
			Default(0),
		field.Int("delay_hours").
			Default(0),
		field.Int("delay_minutes").
			Default(0),
		field.String("send_time_start").
			Optional().
			Nillable().
			Comment(`Time-of-day window opening, "HH:MM" tenant-local`),
		field.String("send_time_end").
			Optional().
			Nillable(),
	}
}

// Indexes of the CampaignStep.
func (CampaignStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "step_order").
			Unique(),
		index.Fields("campaign_id"),
	}
}
