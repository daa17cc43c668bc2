// Package replies ingests inbound messages from session-based channels,
// attributes them to prospects and conversations, and optionally converts
// prospects to leads on first reply.
package replies

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/job"
	entmessage "github.com/outflowhq/outflow/ent/message"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/sessions"
)

// SessionGateway is the slice of the session registry the poller needs.
// Implemented by sessions.Registry.
type SessionGateway interface {
	EnsureReady(ctx context.Context, tenantID, configID string) error
	FetchInbound(ctx context.Context, tenantID, configID string, peer models.Address, sinceExternalID string) ([]sessions.InboundMessage, error)
}

// Poller handles poll_replies jobs: one invocation drains the inbound stream
// of every messaged peer on a channel config past its watermark, then
// re-schedules itself. One poll job circulates per eligible config.
type Poller struct {
	client  *ent.Client
	queue   *queue.Service
	gateway SessionGateway
	config  *config.EngineConfig
}

// NewPoller creates the poll_replies job handler.
func NewPoller(client *ent.Client, q *queue.Service, g SessionGateway, cfg *config.EngineConfig) *Poller {
	return &Poller{client: client, queue: q, gateway: g, config: cfg}
}

// Handle processes one leased poll_replies job.
func (p *Poller) Handle(ctx context.Context, j *ent.Job) error {
	var payload models.PollRepliesPayload
	if err := models.DecodePayload(j.Payload, &payload); err != nil {
		return queue.Fatal(err)
	}
	log := slog.With("job_id", j.ID, "channel_config_id", payload.ChannelConfigID)

	cfg, err := p.client.ChannelConfig.Get(ctx, payload.ChannelConfigID)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Info("Channel config gone; stopping reply polling")
			return nil
		}
		return fmt.Errorf("load channel config: %w", err)
	}

	// The poll cycle ends without re-enqueueing when the config stops being
	// eligible; reconciliation restarts it if it becomes eligible again.
	if !cfg.Active || !models.ChannelKind(cfg.Kind).IsSessionKind() {
		log.Info("Channel config no longer eligible; stopping reply polling")
		return nil
	}
	settings, err := models.ParseChannelSettings(cfg.Settings)
	if err != nil {
		return queue.Fatal(err)
	}
	if !settings.ReplyPolling.Enabled {
		log.Info("Reply polling disabled; stopping")
		return nil
	}

	if err := p.gateway.EnsureReady(ctx, cfg.TenantID, cfg.ID); err != nil {
		// Session down: skip this cycle, keep the poll circulating.
		log.Warn("Session not ready; skipping poll cycle", "error", err)
		return p.requeue(ctx, cfg, settings)
	}

	peers, err := p.collectPeers(ctx, cfg)
	if err != nil {
		return err
	}

	ingested := 0
	for _, pr := range peers {
		msgs, err := p.gateway.FetchInbound(ctx, cfg.TenantID, cfg.ID, pr.address, pr.watermark)
		if err != nil {
			log.Warn("Inbound fetch failed for peer", "peer", pr.address.DisplayName, "error", err)
			continue
		}
		if len(msgs) == 0 {
			continue
		}
		if err := p.ingestPeer(ctx, cfg, settings, pr, msgs); err != nil {
			log.Error("Failed to ingest inbound messages", "peer", pr.address.DisplayName, "error", err)
			continue
		}
		ingested += len(msgs)
	}
	if ingested > 0 {
		log.Info("Reply poll cycle done", "peers", len(peers), "messages", ingested)
	}

	return p.requeue(ctx, cfg, settings)
}

// requeue schedules the next poll cycle for the config.
func (p *Poller) requeue(ctx context.Context, cfg *ent.ChannelConfig, settings models.ChannelSettings) error {
	interval := settings.ReplyPolling.IntervalMinutes
	if interval <= 0 {
		interval = models.DefaultReplyPollIntervalMinutes
	}
	payload, err := models.EncodePayload(models.PollRepliesPayload{ChannelConfigID: cfg.ID})
	if err != nil {
		return err
	}
	_, err = p.queue.Enqueue(ctx, queue.EnqueueInput{
		TenantID: cfg.TenantID,
		Kind:     job.KindPollReplies,
		Payload:  payload,
		RunAfter: time.Now().Add(time.Duration(interval) * time.Minute),
	})
	return err
}

// peer is one inbound stream to drain: a messaged prospect or a contact with
// an open conversation on this config.
type peer struct {
	address   models.Address
	watermark string
	prospect  *ent.Prospect
	contact   *ent.Contact
}

// collectPeers gathers the peers to poll this cycle, capped so one cycle
// cannot hammer the session; watermark ordering lets the next cycle continue.
func (p *Poller) collectPeers(ctx context.Context, cfg *ent.ChannelConfig) ([]peer, error) {
	limit := p.config.ReplyPollPeerCap
	if limit <= 0 {
		limit = 100
	}

	prospects, err := p.client.Prospect.Query().
		Where(
			prospect.TenantIDEQ(cfg.TenantID),
			prospect.ChannelConfigIDEQ(cfg.ID),
			prospect.StatusIn(prospect.StatusMessaged, prospect.StatusReplied, prospect.StatusConverted),
		).
		Order(ent.Asc(prospect.FieldLastMessagedAt), ent.Asc(prospect.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load messaged prospects: %w", err)
	}

	var peers []peer
	for _, pr := range prospects {
		addr := prospectAddress(pr)
		if addr.Phone == "" && addr.Username == "" && addr.TelegramUserID == 0 {
			// No reachable identity on this platform.
			continue
		}
		watermark := ""
		if pr.LastExternalID != nil {
			watermark = *pr.LastExternalID
		}
		peers = append(peers, peer{address: addr, watermark: watermark, prospect: pr})
	}

	if len(peers) >= limit {
		return peers, nil
	}

	// Contacts reached on this config through campaigns have open
	// conversations; their watermark lives on the conversation row.
	convs, err := p.client.Conversation.Query().
		Where(
			conversation.ChannelConfigIDEQ(cfg.ID),
			conversation.StatusEQ(conversation.StatusOpen),
			conversation.ContactIDNotNil(),
		).
		Limit(limit - len(peers)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load open conversations: %w", err)
	}
	for _, conv := range convs {
		ct, err := p.client.Contact.Get(ctx, *conv.ContactID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("load conversation contact: %w", err)
		}
		if ct.Phone == nil || *ct.Phone == "" {
			continue
		}
		watermark := ""
		if conv.LastWatermark != nil {
			watermark = *conv.LastWatermark
		}
		peers = append(peers, peer{
			address:   models.Address{Phone: *ct.Phone, DisplayName: ct.Name},
			watermark: watermark,
			contact:   ct,
		})
	}
	return peers, nil
}

func prospectAddress(pr *ent.Prospect) models.Address {
	a := models.Address{DisplayName: pr.DisplayName}
	if pr.Username != nil {
		a.Username = *pr.Username
	}
	if pr.Phone != nil {
		a.Phone = *pr.Phone
	}
	if pr.TelegramUserID != nil {
		a.TelegramUserID = *pr.TelegramUserID
	}
	return a
}

// ingestPeer writes one peer's new inbound messages and all their side
// effects in a single transaction, so the watermark only advances together
// with the rows it covers.
func (p *Poller) ingestPeer(ctx context.Context, cfg *ent.ChannelConfig, settings models.ChannelSettings, pr peer, msgs []sessions.InboundMessage) error {
	tx, err := p.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("start ingest transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	convID, err := p.ensureConversationTx(ctx, tx, cfg, pr)
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		if err := p.ingestMessageTx(ctx, tx, cfg, convID, pr, msg); err != nil {
			return err
		}
	}

	last := msgs[len(msgs)-1]
	if err := tx.Conversation.UpdateOneID(convID).
		SetLastWatermark(last.ExternalID).
		Exec(ctx); err != nil {
		return fmt.Errorf("advance conversation watermark: %w", err)
	}

	if pr.prospect != nil {
		if err := p.markProspectRepliedTx(ctx, tx, cfg, settings, pr.prospect, convID, last); err != nil {
			return err
		}
	}
	if err := p.markRecipientsRepliedTx(ctx, tx, pr); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit inbound ingest: %w", err)
	}
	return nil
}

// ingestMessageTx appends the Message and inbound ContactAttempt rows for one
// inbound message, and stamps replied_at on the outbound attempt it answers.
func (p *Poller) ingestMessageTx(ctx context.Context, tx *ent.Tx, cfg *ent.ChannelConfig, convID string, pr peer, msg sessions.InboundMessage) error {
	if err := tx.Message.Create().
		SetID(uuid.NewString()).
		SetTenantID(cfg.TenantID).
		SetConversationID(convID).
		SetDirection(entmessage.DirectionInbound).
		SetContent(msg.Body).
		SetExternalID(msg.ExternalID).
		SetCreatedAt(msg.ReceivedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("append inbound message: %w", err)
	}

	attempt := tx.ContactAttempt.Create().
		SetID(uuid.NewString()).
		SetTenantID(cfg.TenantID).
		SetChannelKind(contactattempt.ChannelKind(cfg.Kind)).
		SetDirection(contactattempt.DirectionInbound).
		SetStatus(contactattempt.StatusDelivered).
		SetBody(msg.Body).
		SetExternalID(msg.ExternalID).
		SetConversationID(convID).
		SetRepliedAt(msg.ReceivedAt)
	if pr.prospect != nil {
		attempt = attempt.SetProspectID(pr.prospect.ID)
	}
	if pr.contact != nil {
		attempt = attempt.SetContactID(pr.contact.ID).SetLeadID(pr.contact.LeadID)
	}
	if err := attempt.Exec(ctx); err != nil {
		return fmt.Errorf("record inbound attempt: %w", err)
	}

	// Attribution: the most recent outbound attempt on this conversation not
	// yet answered gets this message's time.
	outbound, err := tx.ContactAttempt.Query().
		Where(
			contactattempt.ConversationIDEQ(convID),
			contactattempt.DirectionEQ(contactattempt.DirectionOutbound),
			contactattempt.RepliedAtIsNil(),
		).
		Order(ent.Desc(contactattempt.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load outbound attempt for attribution: %w", err)
	}
	if err := tx.ContactAttempt.UpdateOneID(outbound.ID).
		SetRepliedAt(msg.ReceivedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("attribute reply: %w", err)
	}
	return nil
}

// markProspectRepliedTx moves the prospect to replied, advances its
// watermark, and auto-converts it to a lead on first reply when the channel
// opts in.
func (p *Poller) markProspectRepliedTx(ctx context.Context, tx *ent.Tx, cfg *ent.ChannelConfig, settings models.ChannelSettings, pros *ent.Prospect, convID string, last sessions.InboundMessage) error {
	update := tx.Prospect.UpdateOneID(pros.ID).
		SetLastRepliedAt(last.ReceivedAt).
		SetLastExternalID(last.ExternalID)
	if pros.Status != prospect.StatusConverted {
		update = update.SetStatus(prospect.StatusReplied)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("mark prospect replied: %w", err)
	}

	if !settings.AutoConvert.Enabled || pros.ConvertedLeadID != nil {
		return nil
	}

	leadID := uuid.NewString()
	if err := tx.Lead.Create().
		SetID(leadID).
		SetTenantID(cfg.TenantID).
		SetCompanyName(prospectCompanyName(pros)).
		SetSource("prospect_conversion").
		Exec(ctx); err != nil {
		return fmt.Errorf("create converted lead: %w", err)
	}

	contact := tx.Contact.Create().
		SetID(uuid.NewString()).
		SetTenantID(cfg.TenantID).
		SetLeadID(leadID).
		SetName(pros.DisplayName).
		SetIsPrimary(true)
	if pros.Phone != nil && *pros.Phone != "" {
		contact = contact.SetPhone(*pros.Phone)
	}
	if err := contact.Exec(ctx); err != nil {
		return fmt.Errorf("create converted contact: %w", err)
	}

	if err := tx.Prospect.UpdateOneID(pros.ID).
		SetConvertedLeadID(leadID).
		SetStatus(prospect.StatusConverted).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark prospect converted: %w", err)
	}
	if err := tx.Conversation.UpdateOneID(convID).
		SetLeadID(leadID).
		Exec(ctx); err != nil {
		return fmt.Errorf("link conversation to converted lead: %w", err)
	}

	slog.Info("Prospect auto-converted to lead",
		"tenant_id", cfg.TenantID, "prospect_id", pros.ID, "lead_id", leadID)
	return nil
}

// markRecipientsRepliedTx settles the peer's open campaign enrolments: a
// reply is a terminal outcome, later steps are skipped.
func (p *Poller) markRecipientsRepliedTx(ctx context.Context, tx *ent.Tx, pr peer) error {
	q := tx.Recipient.Update().
		Where(recipient.StatusIn(recipient.StatusPending, recipient.StatusInProgress))
	switch {
	case pr.prospect != nil:
		q = q.Where(recipient.ProspectIDEQ(pr.prospect.ID))
	case pr.contact != nil:
		q = q.Where(recipient.ContactIDEQ(pr.contact.ID))
	default:
		return nil
	}
	if _, err := q.SetStatus(recipient.StatusReplied).Save(ctx); err != nil {
		return fmt.Errorf("mark recipients replied: %w", err)
	}
	return nil
}

// ensureConversationTx finds or creates the open conversation for a peer.
func (p *Poller) ensureConversationTx(ctx context.Context, tx *ent.Tx, cfg *ent.ChannelConfig, pr peer) (string, error) {
	q := tx.Conversation.Query().
		Where(
			conversation.TenantIDEQ(cfg.TenantID),
			conversation.ChannelKindEQ(conversation.ChannelKind(cfg.Kind)),
			conversation.StatusEQ(conversation.StatusOpen),
		)
	switch {
	case pr.prospect != nil:
		q = q.Where(conversation.ProspectIDEQ(pr.prospect.ID))
	case pr.contact != nil:
		q = q.Where(conversation.ContactIDEQ(pr.contact.ID))
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
		SetTenantID(cfg.TenantID).
		SetChannelKind(conversation.ChannelKind(cfg.Kind)).
		SetChannelConfigID(cfg.ID)
	if pr.prospect != nil {
		create = create.SetProspectID(pr.prospect.ID)
	}
	if pr.contact != nil {
		create = create.SetContactID(pr.contact.ID).SetLeadID(pr.contact.LeadID)
	}
	conv, err = create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("create conversation: %w", err)
	}
	return conv.ID, nil
}

func prospectCompanyName(pr *ent.Prospect) string {
	if pr.DisplayName != "" {
		return pr.DisplayName
	}
	if pr.Username != nil && *pr.Username != "" {
		return *pr.Username
	}
	return "Unknown prospect"
}

// Reconcile ensures exactly one poll_replies job circulates per eligible
// channel config: active, session-based, polling enabled. Called on boot and
// after channel config changes.
func Reconcile(ctx context.Context, client *ent.Client, q *queue.Service) error {
	configs, err := client.ChannelConfig.Query().
		Where(
			channelconfig.ActiveEQ(true),
			channelconfig.KindIn(
				channelconfig.Kind(models.ChannelWhatsAppWeb),
				channelconfig.Kind(models.ChannelTelegram),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("enumerate session configs: %w", err)
	}

	covered, err := polledConfigIDs(ctx, client)
	if err != nil {
		return err
	}

	for _, cfg := range configs {
		settings, err := models.ParseChannelSettings(cfg.Settings)
		if err != nil || !settings.ReplyPolling.Enabled {
			continue
		}
		if covered[cfg.ID] {
			continue
		}
		payload, err := models.EncodePayload(models.PollRepliesPayload{ChannelConfigID: cfg.ID})
		if err != nil {
			return err
		}
		if _, err := q.Enqueue(ctx, queue.EnqueueInput{
			TenantID: cfg.TenantID,
			Kind:     job.KindPollReplies,
			Payload:  payload,
		}); err != nil {
			return err
		}
		slog.Info("Reply polling scheduled",
			"tenant_id", cfg.TenantID, "channel_config_id", cfg.ID, "kind", cfg.Kind)
	}
	return nil
}

// polledConfigIDs returns the config ids that already have a live (pending or
// running) poll job.
func polledConfigIDs(ctx context.Context, client *ent.Client) (map[string]bool, error) {
	jobs, err := client.Job.Query().
		Where(
			job.KindEQ(job.KindPollReplies),
			job.StatusIn(job.StatusPending, job.StatusRunning),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate poll jobs: %w", err)
	}
	covered := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		var payload models.PollRepliesPayload
		if err := models.DecodePayload(j.Payload, &payload); err != nil {
			continue
		}
		covered[payload.ChannelConfigID] = true
	}
	return covered, nil
}
