package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProspectGroup holds the schema definition for the ProspectGroup entity: a
// channel-native group (Telegram group, WhatsApp group) whose members were
// imported as prospects.
type ProspectGroup struct {
	ent.Schema
}

// Fields of the ProspectGroup.
func (ProspectGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("channel_config_id"),
		field.String("external_id").
			Comment("Platform group id"),
		field.String("name"),
		field.Int("member_count").
			Default(0),
		field.Time("imported_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProspectGroup.
func (ProspectGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("channel_config_id", "external_id").
			Unique(),
	}
}
