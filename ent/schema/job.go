package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity: the engine's durable,
// priority-ordered, scheduled, leased to-do list. Lifecycle:
// pending → running → {completed | pending (retry) | failed | dead}.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Optional().
			Nillable(),
		field.Enum("kind").
			Values("campaign_step", "scrape", "poll_replies", "webhook", "cleanup"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Int("priority").
			Default(5).
			Comment("Lower is higher priority"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "dead").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_after").
			Default(time.Now),
		field.Time("lease_until").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Lease scan: pending jobs ordered by (priority, run_after, id).
		index.Fields("status", "run_after"),
		index.Fields("status", "priority", "run_after"),
		index.Fields("kind", "status"),
		index.Fields("tenant_id"),
	}
}
