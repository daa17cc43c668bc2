package database

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// partialUniqueIndexes are the predicate-guarded unique indexes the engine's
// idempotence guarantees rest on: one recipient per (campaign, target) and one
// open conversation per (channel, peer). Ent's schema annotations describe
// them for documentation, but test setup applies them here explicitly so
// behaviour matches the production SQL migrations exactly.
var partialUniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS recipient_campaign_id_contact_id ON recipients (campaign_id, contact_id) WHERE contact_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS recipient_campaign_id_prospect_id ON recipients (campaign_id, prospect_id) WHERE prospect_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS conversation_channel_kind_contact_id ON conversations (channel_kind, contact_id) WHERE contact_id IS NOT NULL AND status = 'open'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS conversation_channel_kind_prospect_id ON conversations (channel_kind, prospect_id) WHERE prospect_id IS NOT NULL AND status = 'open'`,
}

// CreatePartialUniqueIndexes applies the predicate-guarded unique indexes.
// Idempotent; safe to run against an already-indexed schema.
func CreatePartialUniqueIndexes(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range partialUniqueIndexes {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("failed to create partial unique index: %w", err)
		}
	}
	return nil
}
