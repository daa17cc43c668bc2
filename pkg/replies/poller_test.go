package replies

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contact"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/job"
	entlead "github.com/outflowhq/outflow/ent/lead"
	entmessage "github.com/outflowhq/outflow/ent/message"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/sessions"
	testdb "github.com/outflowhq/outflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-1"

// fakeGateway serves scripted inbound messages keyed by peer username.
type fakeGateway struct {
	readyErr error
	inbound  map[string][]sessions.InboundMessage
	fetches  int
}

func (f *fakeGateway) EnsureReady(context.Context, string, string) error {
	return f.readyErr
}

func (f *fakeGateway) FetchInbound(_ context.Context, _, _ string, peer models.Address, since string) ([]sessions.InboundMessage, error) {
	f.fetches++
	var out []sessions.InboundMessage
	for _, msg := range f.inbound[peer.Username] {
		if msg.ExternalID > since {
			out = append(out, msg)
		}
	}
	return out, nil
}

type pollHarness struct {
	client  *ent.Client
	queue   *queue.Service
	gateway *fakeGateway
	poller  *Poller
}

func newPollHarness(t *testing.T) *pollHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	gateway := &fakeGateway{inbound: make(map[string][]sessions.InboundMessage)}
	svc := queue.NewService(dbClient.Client, config.DefaultQueueConfig())
	poller := NewPoller(dbClient.Client, svc, gateway, &config.EngineConfig{ReplyPollPeerCap: 100})

	return &pollHarness{client: dbClient.Client, queue: svc, gateway: gateway, poller: poller}
}

func (h *pollHarness) seedConfig(ctx context.Context, t *testing.T, autoConvert bool) *ent.ChannelConfig {
	t.Helper()
	cfg, err := h.client.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.Kind(models.ChannelTelegram)).
		SetName("tg").
		SetSettings(map[string]interface{}{
			"reply_polling": map[string]interface{}{"enabled": true, "interval_minutes": 5},
			"auto_convert":  map[string]interface{}{"enabled": autoConvert},
		}).
		Save(ctx)
	require.NoError(t, err)
	return cfg
}

func (h *pollHarness) seedMessagedProspect(ctx context.Context, t *testing.T, cfg *ent.ChannelConfig, username string) *ent.Prospect {
	t.Helper()
	p, err := h.client.Prospect.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelConfigID(cfg.ID).
		SetDisplayName(username).
		SetUsername(username).
		SetStatus(prospect.StatusMessaged).
		SetLastMessagedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	return p
}

// seedOutboundAttempt creates the open conversation and an unanswered
// outbound attempt, as the campaign processor would have left them.
func (h *pollHarness) seedOutboundAttempt(ctx context.Context, t *testing.T, cfg *ent.ChannelConfig, p *ent.Prospect) (*ent.Conversation, *ent.ContactAttempt) {
	t.Helper()
	conv, err := h.client.Conversation.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelKind(conversation.ChannelKind(cfg.Kind)).
		SetChannelConfigID(cfg.ID).
		SetProspectID(p.ID).
		Save(ctx)
	require.NoError(t, err)

	attempt, err := h.client.ContactAttempt.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetProspectID(p.ID).
		SetConversationID(conv.ID).
		SetChannelKind(contactattempt.ChannelKind(cfg.Kind)).
		SetDirection(contactattempt.DirectionOutbound).
		SetStatus(contactattempt.StatusSent).
		SetBody("first touch").
		SetSentAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	return conv, attempt
}

func (h *pollHarness) leasePollJob(ctx context.Context, t *testing.T, cfg *ent.ChannelConfig) *ent.Job {
	t.Helper()
	payload, err := models.EncodePayload(models.PollRepliesPayload{ChannelConfigID: cfg.ID})
	require.NoError(t, err)
	_, err = h.queue.Enqueue(ctx, queue.EnqueueInput{
		TenantID: testTenant,
		Kind:     job.KindPollReplies,
		Payload:  payload,
	})
	require.NoError(t, err)

	j, err := h.queue.Lease(ctx, "w-0")
	require.NoError(t, err)
	require.NotNil(t, j)
	return j
}

func inboundAt(externalID, body string, at time.Time) sessions.InboundMessage {
	return sessions.InboundMessage{ExternalID: externalID, Body: body, ReceivedAt: at}
}

func TestPollIngestsReplyAndAttributesIt(t *testing.T) {
	h := newPollHarness(t)
	ctx := context.Background()

	cfg := h.seedConfig(ctx, t, false)
	p := h.seedMessagedProspect(ctx, t, cfg, "tguser")
	conv, outbound := h.seedOutboundAttempt(ctx, t, cfg, p)

	replyAt := time.Now().Add(-time.Minute).Truncate(time.Millisecond)
	h.gateway.inbound["tguser"] = []sessions.InboundMessage{
		inboundAt("000000000101", "interested, tell me more", replyAt),
	}

	// A recipient mid-campaign gets short-circuited by the reply.
	c, err := h.client.Campaign.Create().
		SetID(uuid.NewString()).SetTenantID(testTenant).SetName("camp").
		Save(ctx)
	require.NoError(t, err)
	r, err := h.client.Recipient.Create().
		SetID(uuid.NewString()).SetTenantID(testTenant).
		SetCampaignID(c.ID).SetProspectID(p.ID).
		Save(ctx)
	require.NoError(t, err)

	j := h.leasePollJob(ctx, t, cfg)
	require.NoError(t, h.poller.Handle(ctx, j))
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	// Inbound message row in the conversation.
	msg, err := h.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conv.ID), entmessage.DirectionEQ(entmessage.DirectionInbound)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "interested, tell me more", msg.Content)

	// Inbound attempt, and the outbound attempt stamped with replied_at.
	in, err := h.client.ContactAttempt.Query().
		Where(contactattempt.DirectionEQ(contactattempt.DirectionInbound)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, contactattempt.StatusDelivered, in.Status)
	require.NotNil(t, in.RepliedAt)

	answered, err := h.client.ContactAttempt.Get(ctx, outbound.ID)
	require.NoError(t, err)
	require.NotNil(t, answered.RepliedAt)
	assert.WithinDuration(t, replyAt, *answered.RepliedAt, time.Second)

	// Prospect, recipient, and watermarks.
	reloaded, err := h.client.Prospect.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusReplied, reloaded.Status)
	require.NotNil(t, reloaded.LastExternalID)
	assert.Equal(t, "000000000101", *reloaded.LastExternalID)
	assert.NotNil(t, reloaded.LastRepliedAt)

	rec, err := h.client.Recipient.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, recipient.StatusReplied, rec.Status)

	reloadedConv, err := h.client.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, reloadedConv.LastWatermark)
	assert.Equal(t, "000000000101", *reloadedConv.LastWatermark)

	// The next poll cycle is scheduled at the configured interval.
	next, err := h.client.Job.Query().
		Where(job.KindEQ(job.KindPollReplies), job.StatusEQ(job.StatusPending)).
		Only(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), next.RunAfter, 5*time.Second)
}

func TestPollAutoConvertsProspectOnce(t *testing.T) {
	h := newPollHarness(t)
	ctx := context.Background()

	cfg := h.seedConfig(ctx, t, true)
	p := h.seedMessagedProspect(ctx, t, cfg, "tguser")
	phone := "4915512345"
	require.NoError(t, h.client.Prospect.UpdateOneID(p.ID).SetPhone(phone).Exec(ctx))
	p, err := h.client.Prospect.Get(ctx, p.ID)
	require.NoError(t, err)
	h.seedOutboundAttempt(ctx, t, cfg, p)

	h.gateway.inbound["tguser"] = []sessions.InboundMessage{
		inboundAt("000000000101", "hello", time.Now().Add(-2*time.Minute)),
	}

	j := h.leasePollJob(ctx, t, cfg)
	require.NoError(t, h.poller.Handle(ctx, j))
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	l, err := h.client.Lead.Query().Where(entlead.TenantIDEQ(testTenant)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tguser", l.CompanyName)
	require.NotNil(t, l.Source)
	assert.Equal(t, "prospect_conversion", *l.Source)

	ct, err := h.client.Contact.Query().Where(contact.LeadIDEQ(l.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tguser", ct.Name)
	require.NotNil(t, ct.Phone)
	assert.Equal(t, phone, *ct.Phone)

	converted, err := h.client.Prospect.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusConverted, converted.Status)
	require.NotNil(t, converted.ConvertedLeadID)
	assert.Equal(t, l.ID, *converted.ConvertedLeadID)

	// A second reply must not create another lead.
	h.gateway.inbound["tguser"] = append(h.gateway.inbound["tguser"],
		inboundAt("000000000102", "hello again", time.Now().Add(-time.Minute)))

	j2 := h.leasePollJob(ctx, t, cfg)
	require.NoError(t, h.poller.Handle(ctx, j2))

	leads, err := h.client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, leads)
}

func TestPollSessionNotReadySkipsCycle(t *testing.T) {
	h := newPollHarness(t)
	ctx := context.Background()

	cfg := h.seedConfig(ctx, t, false)
	h.seedMessagedProspect(ctx, t, cfg, "tguser")
	h.gateway.readyErr = channels.Errorf(channels.KindNotConnected, "no live session")

	j := h.leasePollJob(ctx, t, cfg)
	require.NoError(t, h.poller.Handle(ctx, j))
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	assert.Zero(t, h.gateway.fetches)

	// The cycle still reschedules itself.
	next, err := h.client.Job.Query().
		Where(job.KindEQ(job.KindPollReplies), job.StatusEQ(job.StatusPending)).
		Only(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), next.RunAfter, 5*time.Second)
}

func TestPollStopsWhenPollingDisabled(t *testing.T) {
	h := newPollHarness(t)
	ctx := context.Background()

	cfg, err := h.client.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.Kind(models.ChannelTelegram)).
		SetName("tg").
		Save(ctx)
	require.NoError(t, err)

	j := h.leasePollJob(ctx, t, cfg)
	require.NoError(t, h.poller.Handle(ctx, j))
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	pending, err := h.client.Job.Query().
		Where(job.KindEQ(job.KindPollReplies), job.StatusEQ(job.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending, "no next cycle when polling is disabled")
}

func TestPollEmptyPeerSetRequeuesQuickly(t *testing.T) {
	h := newPollHarness(t)
	ctx := context.Background()

	cfg := h.seedConfig(ctx, t, false)

	j := h.leasePollJob(ctx, t, cfg)
	require.NoError(t, h.poller.Handle(ctx, j))

	assert.Zero(t, h.gateway.fetches)
}

func TestReconcileSchedulesOneJobPerEligibleConfig(t *testing.T) {
	h := newPollHarness(t)
	ctx := context.Background()

	h.seedConfig(ctx, t, false)
	h.seedConfig(ctx, t, false)

	// An SMTP config never gets a poll job.
	_, err := h.client.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.Kind(models.ChannelEmailSMTP)).
		SetName("smtp").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, Reconcile(ctx, h.client, h.queue))
	count, err := h.client.Job.Query().Where(job.KindEQ(job.KindPollReplies)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Idempotent: a second pass adds nothing.
	require.NoError(t, Reconcile(ctx, h.client, h.queue))
	count, err = h.client.Job.Query().Where(job.KindEQ(job.KindPollReplies)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
