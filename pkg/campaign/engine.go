package campaign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/outflowhq/outflow/ent"
	entcampaign "github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
)

// Sentinel errors surfaced to the admin API.
var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNotEditable      = errors.New("campaign is not editable in its current status")
	ErrNotStartable     = errors.New("campaign can only be started from draft or paused")
	ErrNotPausable      = errors.New("campaign is not active")
	ErrNoSteps          = errors.New("campaign has no steps")
	ErrNoRecipients     = errors.New("campaign has no recipients")
)

// Engine owns campaign lifecycle transitions and recipient enrolment. Step
// execution lives in StepProcessor; the engine only schedules it.
type Engine struct {
	client *ent.Client
	queue  *queue.Service
	config *config.EngineConfig
}

// NewEngine creates a campaign engine.
func NewEngine(client *ent.Client, q *queue.Service, cfg *config.EngineConfig) *Engine {
	return &Engine{client: client, queue: q, config: cfg}
}

// Start activates a campaign. A draft start staggers pending recipients by
// message_interval_seconds and enqueues one campaign_step job each; a paused
// campaign resumes without re-staggering (its jobs are still cycling through
// the soft-pause path).
func (e *Engine) Start(ctx context.Context, tenantID, campaignID string) error {
	c, err := e.loadCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return err
	}

	switch c.Status {
	case entcampaign.StatusDraft:
		return e.startDraft(ctx, c)
	case entcampaign.StatusPaused:
		return e.resume(ctx, c)
	default:
		return ErrNotStartable
	}
}

// Pause soft-pauses an active campaign: step jobs stay queued and re-schedule
// themselves every 30 s until resume. Idempotent.
func (e *Engine) Pause(ctx context.Context, tenantID, campaignID string) error {
	c, err := e.loadCampaign(ctx, tenantID, campaignID)
	if err != nil {
		return err
	}
	if c.Status == entcampaign.StatusPaused {
		return nil
	}
	if c.Status != entcampaign.StatusActive {
		return ErrNotPausable
	}

	if err := c.Update().SetStatus(entcampaign.StatusPaused).Exec(ctx); err != nil {
		return fmt.Errorf("pause campaign %s: %w", campaignID, err)
	}
	slog.Info("Campaign paused", "tenant_id", tenantID, "campaign_id", campaignID)
	return nil
}

func (e *Engine) startDraft(ctx context.Context, c *ent.Campaign) error {
	steps, err := e.client.CampaignStep.Query().
		Where(campaignstep.CampaignIDEQ(c.ID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count campaign steps: %w", err)
	}
	if steps == 0 {
		return ErrNoSteps
	}

	pending, err := e.client.Recipient.Query().
		Where(
			recipient.CampaignIDEQ(c.ID),
			recipient.StatusEQ(recipient.StatusPending),
		).
		Order(ent.Asc(recipient.FieldCreatedAt), ent.Asc(recipient.FieldID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load pending recipients: %w", err)
	}
	if len(pending) == 0 {
		return ErrNoRecipients
	}

	base := time.Now()
	if c.Type == entcampaign.TypeScheduled && c.ScheduledAt != nil && c.ScheduledAt.After(base) {
		base = *c.ScheduledAt
	}
	interval := time.Duration(c.MessageIntervalSeconds) * time.Second

	// Stagger assignments and their jobs commit together, chunked to keep
	// transactions short.
	chunk := e.config.EnrollChunkSize
	if chunk <= 0 {
		chunk = 1000
	}
	for offset := 0; offset < len(pending); offset += chunk {
		end := min(offset+chunk, len(pending))
		if err := e.scheduleChunk(ctx, c, pending[offset:end], base, interval, offset); err != nil {
			return err
		}
	}

	update := e.client.Campaign.UpdateOneID(c.ID).
		SetStatus(entcampaign.StatusActive)
	if c.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("activate campaign %s: %w", c.ID, err)
	}

	slog.Info("Campaign started",
		"tenant_id", c.TenantID, "campaign_id", c.ID, "recipients", len(pending),
		"interval_seconds", c.MessageIntervalSeconds)
	return nil
}

// scheduleChunk assigns next_action_at = base + i*interval per recipient and
// enqueues the step jobs in the same transaction.
func (e *Engine) scheduleChunk(ctx context.Context, c *ent.Campaign, recipients []*ent.Recipient, base time.Time, interval time.Duration, offset int) error {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start enrolment transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, r := range recipients {
		runAfter := base.Add(time.Duration(offset+i) * interval)
		if err := tx.Recipient.UpdateOneID(r.ID).
			SetNextActionAt(runAfter).
			Exec(ctx); err != nil {
			return fmt.Errorf("stagger recipient %s: %w", r.ID, err)
		}

		payload, err := models.EncodePayload(models.CampaignStepPayload{
			RecipientID: r.ID,
			CampaignID:  c.ID,
		})
		if err != nil {
			return err
		}
		if _, err := e.queue.EnqueueTx(ctx, tx, queue.EnqueueInput{
			TenantID: c.TenantID,
			Kind:     job.KindCampaignStep,
			Payload:  payload,
			RunAfter: runAfter,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit campaign schedule: %w", err)
	}
	return nil
}

// resume reactivates a paused campaign. Recipients keep their next_action_at
// and their jobs are already circulating, so no re-staggering happens.
func (e *Engine) resume(ctx context.Context, c *ent.Campaign) error {
	if err := c.Update().SetStatus(entcampaign.StatusActive).Exec(ctx); err != nil {
		return fmt.Errorf("resume campaign %s: %w", c.ID, err)
	}
	slog.Info("Campaign resumed", "tenant_id", c.TenantID, "campaign_id", c.ID)
	return nil
}

// Stats are the aggregate recipient counters for the admin surface.
type Stats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Replied    int `json:"replied"`
	Total      int `json:"total"`
}

// Stats aggregates recipient states for one campaign.
func (e *Engine) Stats(ctx context.Context, tenantID, campaignID string) (Stats, error) {
	if _, err := e.loadCampaign(ctx, tenantID, campaignID); err != nil {
		return Stats{}, err
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := e.client.Recipient.Query().
		Where(recipient.CampaignIDEQ(campaignID)).
		GroupBy(recipient.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate recipients: %w", err)
	}

	var s Stats
	for _, row := range rows {
		s.Total += row.Count
		switch recipient.Status(row.Status) {
		case recipient.StatusPending:
			s.Pending += row.Count
		case recipient.StatusInProgress:
			s.InProgress += row.Count
		case recipient.StatusCompleted:
			s.Completed += row.Count
		case recipient.StatusFailed:
			s.Failed += row.Count
		case recipient.StatusReplied:
			s.Replied += row.Count
		}
	}
	return s, nil
}

// maybeComplete closes the campaign once no recipient is pending or in
// progress. Called by the step processor after terminal transitions.
func (e *Engine) maybeComplete(ctx context.Context, campaignID string) error {
	open, err := e.client.Recipient.Query().
		Where(
			recipient.CampaignIDEQ(campaignID),
			recipient.StatusIn(recipient.StatusPending, recipient.StatusInProgress),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count open recipients: %w", err)
	}
	if open > 0 {
		return nil
	}

	n, err := e.client.Campaign.Update().
		Where(
			entcampaign.IDEQ(campaignID),
			entcampaign.StatusEQ(entcampaign.StatusActive),
		).
		SetStatus(entcampaign.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete campaign %s: %w", campaignID, err)
	}
	if n > 0 {
		slog.Info("Campaign completed", "campaign_id", campaignID)
	}
	return nil
}

func (e *Engine) loadCampaign(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error) {
	c, err := e.client.Campaign.Query().
		Where(
			entcampaign.IDEQ(campaignID),
			entcampaign.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("load campaign %s: %w", campaignID, err)
	}
	return c, nil
}
