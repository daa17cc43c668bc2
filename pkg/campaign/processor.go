package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	entcampaign "github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/job"
	entmessage "github.com/outflowhq/outflow/ent/message"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
)

// MessageDispatcher is the slice of the channel dispatcher the processor
// needs. Implemented by channels.Dispatcher.
type MessageDispatcher interface {
	Dispatch(ctx context.Context, tenantID, channelConfigID string, to models.Address, msg models.RenderedMessage) channels.Outcome
}

// quotaRetryDelay is the extended backoff for provider quota errors.
const quotaRetryDelay = 15 * time.Minute

// StepProcessor handles campaign_step jobs: it advances one recipient through
// its current step — guards, send-time resolution, render, dispatch, outcome
// recording — and chains the next step. It is the only writer of recipient
// state.
type StepProcessor struct {
	client     *ent.Client
	queue      *queue.Service
	dispatcher MessageDispatcher
	engine     *Engine
	config     *config.EngineConfig
}

// NewStepProcessor creates the campaign_step job handler.
func NewStepProcessor(client *ent.Client, q *queue.Service, d MessageDispatcher, e *Engine, cfg *config.EngineConfig) *StepProcessor {
	return &StepProcessor{client: client, queue: q, dispatcher: d, engine: e, config: cfg}
}

// Handle processes one leased campaign_step job.
func (p *StepProcessor) Handle(ctx context.Context, j *ent.Job) error {
	var payload models.CampaignStepPayload
	if err := models.DecodePayload(j.Payload, &payload); err != nil {
		return queue.Fatal(err)
	}
	log := slog.With("job_id", j.ID, "recipient_id", payload.RecipientID, "campaign_id", payload.CampaignID)

	r, err := p.client.Recipient.Get(ctx, payload.RecipientID)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Info("Recipient gone; completing step job")
			return nil
		}
		return fmt.Errorf("load recipient: %w", err)
	}

	c, err := p.client.Campaign.Get(ctx, r.CampaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			// Campaign deleted mid-flight: its jobs drain to completed.
			log.Info("Campaign gone; completing step job")
			return nil
		}
		return fmt.Errorf("load campaign: %w", err)
	}

	// Soft pause: the job re-schedules itself without consuming attempts
	// until the campaign is active again.
	if c.Status != entcampaign.StatusActive {
		if c.Status == entcampaign.StatusCompleted {
			return nil
		}
		return p.requeue(ctx, c, r, time.Now().Add(p.pausedRetryDelay()))
	}

	// Terminal recipients (including REPLIED, set by the reply poller) take
	// no further steps.
	if r.Status != recipient.StatusPending && r.Status != recipient.StatusInProgress {
		return nil
	}

	steps, err := p.client.CampaignStep.Query().
		Where(campaignstep.CampaignIDEQ(c.ID)).
		Order(ent.Asc(campaignstep.FieldStepOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load campaign steps: %w", err)
	}
	if r.CurrentStep > len(steps) {
		return p.finishRecipient(ctx, r, c)
	}
	step := steps[r.CurrentStep-1]

	cfg, settings, err := p.loadChannel(ctx, c.TenantID, step.ChannelConfigID)
	if err != nil {
		return err
	}

	// Not due yet, or outside the step's send window: push the job forward.
	now := time.Now()
	resolved := resolveSendTime(now, r.NextActionAt, step, p.channelLocation(settings))
	if resolved.After(now.Add(time.Second)) {
		return p.requeue(ctx, c, r, resolved)
	}

	tpl, err := p.client.Template.Get(ctx, step.TemplateID)
	if err != nil {
		return fmt.Errorf("load template %s: %w", step.TemplateID, err)
	}

	target, err := p.loadTarget(ctx, r)
	if err != nil {
		return err
	}

	msg, renderErr := RenderTemplate(tpl, VariablesFor(target.contact, target.lead, target.prospect, settings, now))
	if renderErr != nil {
		log.Error("Template render failed", "template_id", tpl.ID, "error", renderErr)
		return p.recordFailure(ctx, j, c, step, r, cfg, channels.Failure(renderErr), target)
	}

	if err := r.Update().SetStatus(recipient.StatusInProgress).Exec(ctx); err != nil {
		return fmt.Errorf("mark recipient in progress: %w", err)
	}

	out := p.dispatcher.Dispatch(ctx, c.TenantID, step.ChannelConfigID, target.address(), msg)
	if out.Status == channels.OutcomeSent {
		return p.recordSent(ctx, c, steps, step, r, out, msg, target)
	}
	return p.recordFailure(ctx, j, c, step, r, cfg, out, target)
}

// target bundles the recipient's resolved peer rows.
type target struct {
	contact  *ent.Contact
	lead     *ent.Lead
	prospect *ent.Prospect
}

func (t target) address() models.Address {
	var a models.Address
	if t.contact != nil {
		a.DisplayName = t.contact.Name
		if t.contact.Email != nil {
			a.Email = *t.contact.Email
		}
		if t.contact.Phone != nil {
			a.Phone = *t.contact.Phone
		}
	}
	if t.prospect != nil {
		a.DisplayName = t.prospect.DisplayName
		if t.prospect.Username != nil {
			a.Username = *t.prospect.Username
		}
		if t.prospect.Phone != nil {
			a.Phone = *t.prospect.Phone
		}
		if t.prospect.TelegramUserID != nil {
			a.TelegramUserID = *t.prospect.TelegramUserID
		}
	}
	return a
}

func (p *StepProcessor) loadTarget(ctx context.Context, r *ent.Recipient) (target, error) {
	var t target
	var err error
	if r.ContactID != nil {
		t.contact, err = p.client.Contact.Get(ctx, *r.ContactID)
		if err != nil && !ent.IsNotFound(err) {
			return t, fmt.Errorf("load contact: %w", err)
		}
	}
	if r.LeadID != nil {
		t.lead, err = p.client.Lead.Get(ctx, *r.LeadID)
		if err != nil && !ent.IsNotFound(err) {
			return t, fmt.Errorf("load lead: %w", err)
		}
	}
	if r.ProspectID != nil {
		t.prospect, err = p.client.Prospect.Get(ctx, *r.ProspectID)
		if err != nil && !ent.IsNotFound(err) {
			return t, fmt.Errorf("load prospect: %w", err)
		}
	}
	return t, nil
}

func (p *StepProcessor) loadChannel(ctx context.Context, tenantID, channelConfigID string) (*ent.ChannelConfig, models.ChannelSettings, error) {
	cfg, err := p.client.ChannelConfig.Query().
		Where(
			channelconfig.IDEQ(channelConfigID),
			channelconfig.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.ChannelSettings{}, queue.Fatal(fmt.Errorf("channel config %s not found", channelConfigID))
		}
		return nil, models.ChannelSettings{}, fmt.Errorf("load channel config: %w", err)
	}
	settings, err := models.ParseChannelSettings(cfg.Settings)
	if err != nil {
		return nil, models.ChannelSettings{}, queue.Fatal(err)
	}
	return cfg, settings, nil
}

func (p *StepProcessor) channelLocation(settings models.ChannelSettings) *time.Location {
	if settings.Timezone != "" {
		if loc, err := time.LoadLocation(settings.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

func (p *StepProcessor) pausedRetryDelay() time.Duration {
	seconds := p.config.PausedRetrySeconds
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// requeue completes the current job and enqueues a fresh one at runAfter, so
// deferrals never consume retry attempts.
func (p *StepProcessor) requeue(ctx context.Context, c *ent.Campaign, r *ent.Recipient, runAfter time.Time) error {
	payload, err := models.EncodePayload(models.CampaignStepPayload{
		RecipientID: r.ID,
		CampaignID:  c.ID,
	})
	if err != nil {
		return err
	}
	_, err = p.queue.Enqueue(ctx, queue.EnqueueInput{
		TenantID: c.TenantID,
		Kind:     job.KindCampaignStep,
		Payload:  payload,
		RunAfter: runAfter,
	})
	return err
}

// finishRecipient marks a recipient completed (no steps remain) and closes
// the campaign when it was the last open one.
func (p *StepProcessor) finishRecipient(ctx context.Context, r *ent.Recipient, c *ent.Campaign) error {
	if err := r.Update().SetStatus(recipient.StatusCompleted).Exec(ctx); err != nil {
		return fmt.Errorf("complete recipient: %w", err)
	}
	return p.engine.maybeComplete(ctx, c.ID)
}

// recordSent writes the attempt, advances the recipient, chains the next
// step, and updates conversation state — in one transaction.
func (p *StepProcessor) recordSent(ctx context.Context, c *ent.Campaign, steps []*ent.CampaignStep, step *ent.CampaignStep, r *ent.Recipient, out channels.Outcome, msg models.RenderedMessage, t target) error {
	now := time.Now()

	tx, err := p.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start outcome transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	convID, err := p.ensureConversationTx(ctx, tx, c.TenantID, step, r, t)
	if err != nil {
		return err
	}

	attempt := tx.ContactAttempt.Create().
		SetID(uuid.NewString()).
		SetTenantID(c.TenantID).
		SetCampaignID(c.ID).
		SetCampaignStepID(step.ID).
		SetRecipientID(r.ID).
		SetChannelKind(contactattempt.ChannelKind(step.ChannelKind)).
		SetDirection(contactattempt.DirectionOutbound).
		SetStatus(contactattempt.StatusSent).
		SetBody(msg.Body).
		SetExternalID(out.ExternalID).
		SetSentAt(now)
	if msg.Subject != "" {
		attempt = attempt.SetSubject(msg.Subject)
	}
	attempt = p.attachTarget(attempt, r)
	if convID != "" {
		attempt = attempt.SetConversationID(convID)

		if err := tx.Message.Create().
			SetID(uuid.NewString()).
			SetTenantID(c.TenantID).
			SetConversationID(convID).
			SetDirection(entmessage.DirectionOutbound).
			SetContent(msg.Body).
			SetExternalID(out.ExternalID).
			Exec(ctx); err != nil {
			return fmt.Errorf("append outbound message: %w", err)
		}
	}
	if err := attempt.Exec(ctx); err != nil {
		return fmt.Errorf("record sent attempt: %w", err)
	}

	// Session-channel prospects move to messaged on first outbound.
	if t.prospect != nil {
		if err := tx.Prospect.UpdateOneID(t.prospect.ID).
			SetStatus(prospectStatusMessagedIfPending(t.prospect)).
			SetLastMessagedAt(now).
			Exec(ctx); err != nil {
			return fmt.Errorf("mark prospect messaged: %w", err)
		}
	}

	nextStep := r.CurrentStep + 1
	update := tx.Recipient.UpdateOneID(r.ID).SetCurrentStep(nextStep)

	recipientDone := nextStep > len(steps)
	if recipientDone {
		update = update.SetStatus(recipient.StatusCompleted)
	} else {
		nextActionAt := now.Add(stepDelay(steps[nextStep-1]))
		update = update.
			SetStatus(recipient.StatusPending).
			SetNextActionAt(nextActionAt)

		payload, err := models.EncodePayload(models.CampaignStepPayload{
			RecipientID: r.ID,
			CampaignID:  c.ID,
		})
		if err != nil {
			return err
		}
		if _, err := p.queue.EnqueueTx(ctx, tx, queue.EnqueueInput{
			TenantID: c.TenantID,
			Kind:     job.KindCampaignStep,
			Payload:  payload,
			RunAfter: nextActionAt,
		}); err != nil {
			return err
		}
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("advance recipient: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sent outcome: %w", err)
	}

	if recipientDone {
		return p.engine.maybeComplete(ctx, c.ID)
	}
	return nil
}

// recordFailure writes the failed attempt and applies the disposition for the
// outcome's error kind: transient kinds retry through the queue, channel-fatal
// kinds kill the job and surface on the channel config, everything else fails
// the recipient permanently.
func (p *StepProcessor) recordFailure(ctx context.Context, j *ent.Job, c *ent.Campaign, step *ent.CampaignStep, r *ent.Recipient, cfg *ent.ChannelConfig, out channels.Outcome, t target) error {
	attempt := p.client.ContactAttempt.Create().
		SetID(uuid.NewString()).
		SetTenantID(c.TenantID).
		SetCampaignID(c.ID).
		SetCampaignStepID(step.ID).
		SetRecipientID(r.ID).
		SetChannelKind(contactattempt.ChannelKind(step.ChannelKind)).
		SetDirection(contactattempt.DirectionOutbound).
		SetStatus(contactattempt.StatusFailed).
		SetBody("").
		SetMetadata(map[string]interface{}{
			"error_kind": string(out.Kind),
			"error":      out.Reason,
		})
	attempt = p.attachTarget(attempt, r)
	if err := attempt.Exec(ctx); err != nil {
		return fmt.Errorf("record failed attempt: %w", err)
	}

	sendErr := channels.Errorf(out.Kind, "%s", out.Reason)

	if out.Kind.ChannelFatal() {
		// Broken credentials poison every send on this config; surface it
		// to the admin UI and stop retrying.
		if err := p.client.ChannelConfig.UpdateOneID(cfg.ID).
			SetLastError(string(out.Kind) + ": " + out.Reason).
			Exec(ctx); err != nil {
			slog.Error("Failed to surface channel error", "channel_config_id", cfg.ID, "error", err)
		}
		if err := p.failRecipient(ctx, r, c); err != nil {
			return err
		}
		return queue.Fatal(sendErr)
	}

	if out.Status == channels.OutcomeTransientFailure {
		if j.Attempts < j.MaxAttempts {
			// Recipient stays on the same step; the queue schedules the retry.
			if out.Kind == channels.KindQuotaExceeded {
				return queue.RetryAfter(quotaRetryDelay, sendErr)
			}
			return sendErr
		}
		// Final attempt just failed: the job goes terminal, so the recipient's
		// outcome must be settled here.
		if err := p.failRecipient(ctx, r, c); err != nil {
			return err
		}
		return sendErr
	}

	// Permanent failure: settle the recipient, complete the job.
	if err := p.failRecipient(ctx, r, c); err != nil {
		return err
	}
	return nil
}

func (p *StepProcessor) failRecipient(ctx context.Context, r *ent.Recipient, c *ent.Campaign) error {
	if err := r.Update().SetStatus(recipient.StatusFailed).Exec(ctx); err != nil {
		return fmt.Errorf("fail recipient: %w", err)
	}
	return p.engine.maybeComplete(ctx, c.ID)
}

// attachTarget copies the recipient's target references onto an attempt row.
func (p *StepProcessor) attachTarget(create *ent.ContactAttemptCreate, r *ent.Recipient) *ent.ContactAttemptCreate {
	if r.LeadID != nil {
		create = create.SetLeadID(*r.LeadID)
	}
	if r.ContactID != nil {
		create = create.SetContactID(*r.ContactID)
	}
	if r.ProspectID != nil {
		create = create.SetProspectID(*r.ProspectID)
	}
	return create
}

// ensureConversationTx finds or creates the open conversation for a
// session-channel send, so reply attribution has an anchor. Non-session
// channels (replies arrive by webhook, out of scope) skip this.
func (p *StepProcessor) ensureConversationTx(ctx context.Context, tx *ent.Tx, tenantID string, step *ent.CampaignStep, r *ent.Recipient, t target) (string, error) {
	if !models.ChannelKind(step.ChannelKind).IsSessionKind() {
		return "", nil
	}

	q := tx.Conversation.Query().
		Where(
			conversation.TenantIDEQ(tenantID),
			conversation.ChannelKindEQ(conversation.ChannelKind(step.ChannelKind)),
			conversation.StatusEQ(conversation.StatusOpen),
		)
	switch {
	case r.ContactID != nil:
		q = q.Where(conversation.ContactIDEQ(*r.ContactID))
	case r.ProspectID != nil:
		q = q.Where(conversation.ProspectIDEQ(*r.ProspectID))
	default:
		return "", nil
	}

	conv, err := q.Only(ctx)
	if err == nil {
		return conv.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("load conversation: %w", err)
	}

	create := tx.Conversation.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetChannelKind(conversation.ChannelKind(step.ChannelKind)).
		SetChannelConfigID(step.ChannelConfigID)
	if r.ContactID != nil {
		create = create.SetContactID(*r.ContactID)
	}
	if r.ProspectID != nil {
		create = create.SetProspectID(*r.ProspectID)
	}
	if r.LeadID != nil {
		create = create.SetLeadID(*r.LeadID)
	}
	conv, err = create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create conversation: %w", err)
	}
	return conv.ID, nil
}

// prospectStatusMessagedIfPending keeps later statuses (replied, converted)
// from regressing when a follow-up step goes out.
func prospectStatusMessagedIfPending(p *ent.Prospect) prospect.Status {
	if p.Status == prospect.StatusPending {
		return prospect.StatusMessaged
	}
	return p.Status
}
