package campaign

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	entcampaign "github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/contact"
	"github.com/outflowhq/outflow/ent/lead"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/recipient"
)

// LeadFilter is the snapshot filter for enrolment mode (c). It is resolved
// once at the moment of addition and stored on the campaign for audit; it is
// never re-evaluated.
type LeadFilter struct {
	Industry        string `json:"industry,omitempty"`
	Source          string `json:"source,omitempty"`
	CompanyContains string `json:"company_contains,omitempty"`
	PrimaryOnly     bool   `json:"primary_only,omitempty"`
}

// AddContacts enrols explicit contacts. Contacts already enrolled in the
// campaign are skipped; the call is idempotent.
func (e *Engine) AddContacts(ctx context.Context, tenantID, campaignID string, contactIDs []string) (int, error) {
	c, err := e.editableCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return 0, err
	}

	contacts, err := e.client.Contact.Query().
		Where(
			contact.TenantIDEQ(tenantID),
			contact.IDIn(contactIDs...),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load contacts: %w", err)
	}
	return e.enrolContacts(ctx, c, contacts)
}

// AddLeads enrols every contact of the given leads; primaryOnly restricts to
// each lead's primary contact. Idempotent.
func (e *Engine) AddLeads(ctx context.Context, tenantID, campaignID string, leadIDs []string, primaryOnly bool) (int, error) {
	c, err := e.editableCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return 0, err
	}

	q := e.client.Contact.Query().
		Where(
			contact.TenantIDEQ(tenantID),
			contact.LeadIDIn(leadIDs...),
		)
	if primaryOnly {
		q = q.Where(contact.IsPrimary(true))
	}
	contacts, err := q.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load lead contacts: %w", err)
	}
	return e.enrolContacts(ctx, c, contacts)
}

// AddByFilter resolves a lead filter right now, enrols the matching leads'
// contacts, and snapshots the filter onto the campaign. The filter is never
// re-evaluated later.
func (e *Engine) AddByFilter(ctx context.Context, tenantID, campaignID string, filter LeadFilter) (int, error) {
	c, err := e.editableCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return 0, err
	}

	q := e.client.Lead.Query().Where(lead.TenantIDEQ(tenantID))
	if filter.Industry != "" {
		q = q.Where(lead.IndustryEQ(filter.Industry))
	}
	if filter.Source != "" {
		q = q.Where(lead.SourceEQ(filter.Source))
	}
	if filter.CompanyContains != "" {
		q = q.Where(lead.CompanyNameContainsFold(filter.CompanyContains))
	}
	leadIDs, err := q.IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolve lead filter: %w", err)
	}

	snapshot := map[string]interface{}{
		"industry":         filter.Industry,
		"source":           filter.Source,
		"company_contains": filter.CompanyContains,
		"primary_only":     filter.PrimaryOnly,
	}
	if err := e.client.Campaign.UpdateOneID(c.ID).
		SetTargetFilter(snapshot).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("snapshot target filter: %w", err)
	}

	if len(leadIDs) == 0 {
		return 0, nil
	}
	return e.AddLeads(ctx, tenantID, campaignID, leadIDs, filter.PrimaryOnly)
}

// AddProspectGroups enrols every prospect in the given groups whose status is
// pending or messaged. Idempotent.
func (e *Engine) AddProspectGroups(ctx context.Context, tenantID, campaignID string, groupIDs []string) (int, error) {
	c, err := e.editableCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return 0, err
	}

	prospects, err := e.client.Prospect.Query().
		Where(
			prospect.TenantIDEQ(tenantID),
			prospect.GroupIDIn(groupIDs...),
			prospect.StatusIn(prospect.StatusPending, prospect.StatusMessaged),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load group prospects: %w", err)
	}

	existing, err := e.client.Recipient.Query().
		Where(
			recipient.CampaignIDEQ(c.ID),
			recipient.ProspectIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load enrolled prospects: %w", err)
	}
	enrolled := make(map[string]bool, len(existing))
	for _, r := range existing {
		enrolled[*r.ProspectID] = true
	}

	var builders []*ent.RecipientCreate
	for _, p := range prospects {
		if enrolled[p.ID] {
			continue
		}
		enrolled[p.ID] = true
		builders = append(builders, e.client.Recipient.Create().
			SetID(uuid.NewString()).
			SetTenantID(tenantID).
			SetCampaignID(c.ID).
			SetProspectID(p.ID))
	}

	created, err := e.createChunked(ctx, builders)
	if err != nil {
		return created, err
	}
	slog.Info("Prospects enrolled",
		"tenant_id", tenantID, "campaign_id", campaignID, "groups", len(groupIDs), "created", created)
	return created, nil
}

// enrolContacts creates pending recipients for contacts not yet enrolled.
func (e *Engine) enrolContacts(ctx context.Context, c *ent.Campaign, contacts []*ent.Contact) (int, error) {
	existing, err := e.client.Recipient.Query().
		Where(
			recipient.CampaignIDEQ(c.ID),
			recipient.ContactIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load enrolled contacts: %w", err)
	}
	enrolled := make(map[string]bool, len(existing))
	for _, r := range existing {
		enrolled[*r.ContactID] = true
	}

	var builders []*ent.RecipientCreate
	for _, ct := range contacts {
		if enrolled[ct.ID] || ct.Unsubscribed {
			continue
		}
		enrolled[ct.ID] = true
		builders = append(builders, e.client.Recipient.Create().
			SetID(uuid.NewString()).
			SetTenantID(c.TenantID).
			SetCampaignID(c.ID).
			SetLeadID(ct.LeadID).
			SetContactID(ct.ID))
	}

	created, err := e.createChunked(ctx, builders)
	if err != nil {
		return created, err
	}
	slog.Info("Contacts enrolled",
		"tenant_id", c.TenantID, "campaign_id", c.ID, "created", created, "skipped", len(contacts)-created)
	return created, nil
}

// createChunked inserts recipients in transactions of at most the configured
// chunk size to keep locks short.
func (e *Engine) createChunked(ctx context.Context, builders []*ent.RecipientCreate) (int, error) {
	chunk := e.config.EnrollChunkSize
	if chunk <= 0 {
		chunk = 1000
	}

	created := 0
	for offset := 0; offset < len(builders); offset += chunk {
		end := min(offset+chunk, len(builders))
		if err := e.client.Recipient.
			CreateBulk(builders[offset:end]...).
			Exec(ctx); err != nil {
			return created, fmt.Errorf("create recipients: %w", err)
		}
		created += end - offset
	}
	return created, nil
}

// editableCampaign loads a campaign and verifies recipients may be added.
func (e *Engine) editableCampaign(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error) {
	c, err := e.loadCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != entcampaign.StatusDraft && c.Status != entcampaign.StatusPaused {
		return nil, ErrNotEditable
	}
	return c, nil
}
