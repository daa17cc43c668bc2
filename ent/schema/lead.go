package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity. Leads are written by
// the ingestion surfaces (out of scope) and by prospect auto-conversion; the
// engine otherwise reads them only for template rendering and enrolment.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("company_name"),
		field.String("website").
			Optional().
			Nillable(),
		field.String("industry").
			Optional().
			Nillable(),
		field.String("source").
			Optional().
			Nillable().
			Comment("upload, rss, scrape, api, prospect_conversion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "industry"),
	}
}
