package campaign

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	entcampaign "github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/ent/template"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
	testdb "github.com/outflowhq/outflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-1"

// fakeDispatcher returns scripted outcomes in order, then keeps returning the
// last one. It records every dispatched message.
type fakeDispatcher struct {
	mu       sync.Mutex
	outcomes []channels.Outcome
	calls    []fakeDispatchCall
}

type fakeDispatchCall struct {
	ChannelConfigID string
	To              models.Address
	Message         models.RenderedMessage
}

func (f *fakeDispatcher) Dispatch(_ context.Context, _, channelConfigID string, to models.Address, msg models.RenderedMessage) channels.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeDispatchCall{ChannelConfigID: channelConfigID, To: to, Message: msg})

	out := channels.Sent("ext-" + uuid.NewString()[:8])
	if len(f.outcomes) > 0 {
		out = f.outcomes[0]
		if len(f.outcomes) > 1 {
			f.outcomes = f.outcomes[1:]
		}
	}
	return out
}

func (f *fakeDispatcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type testHarness struct {
	client     *ent.Client
	queue      *queue.Service
	engine     *Engine
	processor  *StepProcessor
	dispatcher *fakeDispatcher
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	queueCfg := config.DefaultQueueConfig()
	engineCfg := &config.EngineConfig{
		PausedRetrySeconds: 30,
		EnrollChunkSize:    1000,
		ReplyPollPeerCap:   100,
	}

	svc := queue.NewService(dbClient.Client, queueCfg)
	engine := NewEngine(dbClient.Client, svc, engineCfg)
	dispatcher := &fakeDispatcher{}
	processor := NewStepProcessor(dbClient.Client, svc, dispatcher, engine, engineCfg)

	return &testHarness{
		client:     dbClient.Client,
		queue:      svc,
		engine:     engine,
		processor:  processor,
		dispatcher: dispatcher,
	}
}

func (h *testHarness) seedChannelConfig(ctx context.Context, t *testing.T, kind string) *ent.ChannelConfig {
	t.Helper()
	cfg, err := h.client.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.Kind(kind)).
		SetName("test-" + kind).
		Save(ctx)
	require.NoError(t, err)
	return cfg
}

func (h *testHarness) seedTemplate(ctx context.Context, t *testing.T, kind, body string) *ent.Template {
	t.Helper()
	tpl, err := h.client.Template.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelKind(template.ChannelKind(kind)).
		SetName("tpl").
		SetBody(body).
		Save(ctx)
	require.NoError(t, err)
	return tpl
}

func (h *testHarness) seedCampaign(ctx context.Context, t *testing.T, intervalSeconds int) *ent.Campaign {
	t.Helper()
	c, err := h.client.Campaign.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetName("spring push").
		SetMessageIntervalSeconds(intervalSeconds).
		Save(ctx)
	require.NoError(t, err)
	return c
}

func (h *testHarness) seedStep(ctx context.Context, t *testing.T, c *ent.Campaign, order int, kind, cfgID, tplID string, delayHours int) *ent.CampaignStep {
	t.Helper()
	s, err := h.client.CampaignStep.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetCampaignID(c.ID).
		SetStepOrder(order).
		SetChannelKind(campaignstep.ChannelKind(kind)).
		SetChannelConfigID(cfgID).
		SetTemplateID(tplID).
		SetDelayHours(delayHours).
		Save(ctx)
	require.NoError(t, err)
	return s
}

func (h *testHarness) seedLeadContact(ctx context.Context, t *testing.T, name, email string) (*ent.Lead, *ent.Contact) {
	t.Helper()
	l, err := h.client.Lead.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetCompanyName(name + " Co").
		Save(ctx)
	require.NoError(t, err)

	ct, err := h.client.Contact.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetLeadID(l.ID).
		SetName(name).
		SetEmail(email).
		SetIsPrimary(true).
		Save(ctx)
	require.NoError(t, err)
	return l, ct
}

// leaseAndHandle leases the next due job and runs the step processor on it,
// returning the leased job and the handler error.
func (h *testHarness) leaseAndHandle(ctx context.Context, t *testing.T) (*ent.Job, error) {
	t.Helper()
	j, err := h.queue.Lease(ctx, "w-0")
	require.NoError(t, err)
	require.NotNil(t, j, "expected a due job")
	return j, h.processor.Handle(ctx, j)
}

func TestAddContactsIsIdempotent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c := h.seedCampaign(ctx, t, 0)
	_, ct1 := h.seedLeadContact(ctx, t, "Ada", "ada@example.com")
	_, ct2 := h.seedLeadContact(ctx, t, "Grace", "grace@example.com")

	created, err := h.engine.AddContacts(ctx, testTenant, c.ID, []string{ct1.ID, ct2.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = h.engine.AddContacts(ctx, testTenant, c.ID, []string{ct1.ID, ct2.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	total, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestAddLeadsPrimaryOnly(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c := h.seedCampaign(ctx, t, 0)
	l, _ := h.seedLeadContact(ctx, t, "Ada", "ada@example.com")

	// Second, non-primary contact on the same lead.
	_, err := h.client.Contact.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetLeadID(l.ID).
		SetName("Assistant").
		SetEmail("assistant@example.com").
		Save(ctx)
	require.NoError(t, err)

	created, err := h.engine.AddLeads(ctx, testTenant, c.ID, []string{l.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = h.engine.AddLeads(ctx, testTenant, c.ID, []string{l.ID}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, created, "only the non-primary contact is new")
}

func TestAddProspectGroupsEnrolsPendingAndMessaged(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c := h.seedCampaign(ctx, t, 0)
	cfg := h.seedChannelConfig(ctx, t, "telegram")
	groupID := uuid.NewString()

	mk := func(name string, status prospect.Status) *ent.Prospect {
		p, err := h.client.Prospect.Create().
			SetID(uuid.NewString()).
			SetTenantID(testTenant).
			SetGroupID(groupID).
			SetChannelConfigID(cfg.ID).
			SetDisplayName(name).
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
		return p
	}
	mk("pending", prospect.StatusPending)
	mk("messaged", prospect.StatusMessaged)
	mk("converted", prospect.StatusConverted)

	created, err := h.engine.AddProspectGroups(ctx, testTenant, c.ID, []string{groupID})
	require.NoError(t, err)
	assert.Equal(t, 2, created, "converted prospects are not enrolled")

	created, err = h.engine.AddProspectGroups(ctx, testTenant, c.ID, []string{groupID})
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestStartValidation(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c := h.seedCampaign(ctx, t, 0)
	assert.ErrorIs(t, h.engine.Start(ctx, testTenant, c.ID), ErrNoSteps)

	cfg := h.seedChannelConfig(ctx, t, "email_smtp")
	tpl := h.seedTemplate(ctx, t, "email_smtp", "Hello")
	h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	assert.ErrorIs(t, h.engine.Start(ctx, testTenant, c.ID), ErrNoRecipients)

	_, ct := h.seedLeadContact(ctx, t, "Ada", "ada@example.com")
	_, err := h.engine.AddContacts(ctx, testTenant, c.ID, []string{ct.ID})
	require.NoError(t, err)
	require.NoError(t, h.engine.Start(ctx, testTenant, c.ID))

	// Already active.
	assert.ErrorIs(t, h.engine.Start(ctx, testTenant, c.ID), ErrNotStartable)

	assert.ErrorIs(t, h.engine.Start(ctx, testTenant, "missing"), ErrCampaignNotFound)
}

func TestStartStaggersRecipients(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	const interval = 10
	c := h.seedCampaign(ctx, t, interval)
	cfg := h.seedChannelConfig(ctx, t, "email_smtp")
	tpl := h.seedTemplate(ctx, t, "email_smtp", "Hello {{contact.name}}")
	h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)

	var contactIDs []string
	for _, name := range []string{"A", "B", "C"} {
		_, ct := h.seedLeadContact(ctx, t, name, name+"@example.com")
		contactIDs = append(contactIDs, ct.ID)
	}
	_, err := h.engine.AddContacts(ctx, testTenant, c.ID, contactIDs)
	require.NoError(t, err)

	base := time.Now()
	require.NoError(t, h.engine.Start(ctx, testTenant, c.ID))

	recipients, err := h.client.Recipient.Query().
		Where(recipient.CampaignIDEQ(c.ID)).
		Order(ent.Asc(recipient.FieldCreatedAt), ent.Asc(recipient.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, recipients, 3)

	// next_action_at forms the progression base, base+10s, base+20s.
	for i, r := range recipients {
		require.NotNil(t, r.NextActionAt)
		expected := base.Add(time.Duration(i*interval) * time.Second)
		assert.WithinDuration(t, expected, *r.NextActionAt, 3*time.Second)
	}

	jobs, err := h.client.Job.Query().
		Where(job.KindEQ(job.KindCampaignStep), job.StatusEQ(job.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)

	reloaded, err := h.client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusActive, reloaded.Status)
	assert.NotNil(t, reloaded.StartedAt)
}

// startSingleRecipient seeds and starts a campaign with the given steps and
// one recipient named Ada, with zero stagger so the first job is due now.
func (h *testHarness) startSingleRecipient(ctx context.Context, t *testing.T, stepBuild func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template)) (*ent.Campaign, *ent.Contact) {
	t.Helper()
	c := h.seedCampaign(ctx, t, 0)
	cfg := h.seedChannelConfig(ctx, t, "email_smtp")
	tpl := h.seedTemplate(ctx, t, "email_smtp", "Hello {{contact.name}}")
	stepBuild(c, cfg, tpl)

	_, ct := h.seedLeadContact(ctx, t, "Ada", "ada@example.com")
	_, err := h.engine.AddContacts(ctx, testTenant, c.ID, []string{ct.ID})
	require.NoError(t, err)
	require.NoError(t, h.engine.Start(ctx, testTenant, c.ID))
	return c, ct
}

func TestProcessorSendsAndCompletesSingleStepCampaign(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	})

	j, err := h.leaseAndHandle(ctx, t)
	require.NoError(t, err)
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	require.Equal(t, 1, h.dispatcher.callCount())
	assert.Equal(t, "Hello Ada", h.dispatcher.calls[0].Message.Body)
	assert.Equal(t, "ada@example.com", h.dispatcher.calls[0].To.Email)

	attempts, err := h.client.ContactAttempt.Query().
		Where(contactattempt.CampaignIDEQ(c.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, contactattempt.StatusSent, attempts[0].Status)
	assert.Equal(t, "Hello Ada", attempts[0].Body)
	require.NotNil(t, attempts[0].ExternalID)

	r, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, recipient.StatusCompleted, r.Status)
	assert.Equal(t, 2, r.CurrentStep)

	reloaded, err := h.client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusCompleted, reloaded.Status)
	assert.NotNil(t, reloaded.CompletedAt)
}

func TestProcessorChainsNextStepWithDelay(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
		h.seedStep(ctx, t, c, 2, "email_smtp", cfg.ID, tpl.ID, 24)
	})

	j, err := h.leaseAndHandle(ctx, t)
	require.NoError(t, err)
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	r, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, recipient.StatusPending, r.Status)
	assert.Equal(t, 2, r.CurrentStep)
	require.NotNil(t, r.NextActionAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *r.NextActionAt, 5*time.Second)

	next, err := h.client.Job.Query().
		Where(job.KindEQ(job.KindCampaignStep), job.StatusEQ(job.StatusPending)).
		Only(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), next.RunAfter, 5*time.Second)

	reloaded, err := h.client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusActive, reloaded.Status, "campaign stays active while steps remain")
}

func TestProcessorTransientFailureRetriesThenSucceeds(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.dispatcher.outcomes = []channels.Outcome{
		channels.Failure(channels.Errorf(channels.KindTransientNetwork, "connection reset")),
		channels.Sent("ext-ok"),
	}

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	})

	j, handleErr := h.leaseAndHandle(ctx, t)
	require.Error(t, handleErr)
	require.NoError(t, h.queue.Fail(ctx, j, handleErr))

	reloadedJob, err := h.client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloadedJob.Status)
	assert.WithinDuration(t, time.Now().Add(60*time.Second), reloadedJob.RunAfter, 5*time.Second)

	r, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, r.CurrentStep, "recipient stays on the same step")

	// Make the retry due and run it.
	require.NoError(t, h.client.Job.UpdateOneID(j.ID).SetRunAfter(time.Now().Add(-time.Second)).Exec(ctx))
	j2, handleErr := h.leaseAndHandle(ctx, t)
	require.NoError(t, handleErr)
	require.NoError(t, h.queue.Complete(ctx, j2.ID))

	attempts, err := h.client.ContactAttempt.Query().
		Where(contactattempt.CampaignIDEQ(c.ID)).
		Order(ent.Asc(contactattempt.FieldCreatedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, contactattempt.StatusFailed, attempts[0].Status)
	assert.Equal(t, contactattempt.StatusSent, attempts[1].Status)

	r, err = h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, recipient.StatusCompleted, r.Status)
	assert.Equal(t, 2, r.CurrentStep)
}

func TestProcessorQuotaExceededUsesLongRetry(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.dispatcher.outcomes = []channels.Outcome{
		channels.Failure(channels.Errorf(channels.KindQuotaExceeded, "daily limit reached")),
	}

	h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	})

	_, handleErr := h.leaseAndHandle(ctx, t)
	require.Error(t, handleErr)

	var ra *queue.RetryAfterError
	require.True(t, errors.As(handleErr, &ra))
	assert.Equal(t, 15*time.Minute, ra.After)
}

func TestProcessorPermanentFailureFailsRecipient(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.dispatcher.outcomes = []channels.Outcome{
		channels.Failure(channels.Errorf(channels.KindRecipientInvalid, "mailbox does not exist")),
	}

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	})

	j, handleErr := h.leaseAndHandle(ctx, t)
	require.NoError(t, handleErr, "permanent failures complete the job")
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	r, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, recipient.StatusFailed, r.Status)

	attempts, err := h.client.ContactAttempt.Query().Where(contactattempt.CampaignIDEQ(c.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, contactattempt.StatusFailed, attempts[0].Status)
	assert.Equal(t, "recipient_invalid", attempts[0].Metadata["error_kind"])

	reloaded, err := h.client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entcampaign.StatusCompleted, reloaded.Status)
}

func TestProcessorChannelFatalKillsJobAndSurfacesError(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.dispatcher.outcomes = []channels.Outcome{
		channels.Failure(channels.Errorf(channels.KindAuthFailed, "invalid credentials")),
	}

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	})

	j, handleErr := h.leaseAndHandle(ctx, t)
	require.Error(t, handleErr)
	var fatal *queue.FatalError
	require.True(t, errors.As(handleErr, &fatal))

	require.NoError(t, h.queue.Fail(ctx, j, handleErr))
	reloadedJob, err := h.client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDead, reloadedJob.Status)

	r, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, recipient.StatusFailed, r.Status)

	cfgs, err := h.client.ChannelConfig.Query().Where(channelconfig.TenantIDEQ(testTenant)).All(ctx)
	require.NoError(t, err)
	require.Len(t, cfgs, 1)
	require.NotNil(t, cfgs[0].LastError)
	assert.Contains(t, *cfgs[0].LastError, "auth_failed")
}

func TestProcessorSoftPauseRequeues(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
	})
	require.NoError(t, h.engine.Pause(ctx, testTenant, c.ID))
	require.NoError(t, h.engine.Pause(ctx, testTenant, c.ID), "pause is idempotent")

	j, handleErr := h.leaseAndHandle(ctx, t)
	require.NoError(t, handleErr)
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	assert.Zero(t, h.dispatcher.callCount(), "no send happens while paused")

	requeued, err := h.client.Job.Query().
		Where(job.KindEQ(job.KindCampaignStep), job.StatusEQ(job.StatusPending)).
		Only(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Second), requeued.RunAfter, 5*time.Second)

	// Resume and run the requeued job once it is due.
	require.NoError(t, h.engine.Start(ctx, testTenant, c.ID))
	require.NoError(t, h.client.Job.UpdateOneID(requeued.ID).SetRunAfter(time.Now().Add(-time.Second)).Exec(ctx))

	j2, handleErr := h.leaseAndHandle(ctx, t)
	require.NoError(t, handleErr)
	require.NoError(t, h.queue.Complete(ctx, j2.ID))
	assert.Equal(t, 1, h.dispatcher.callCount())
}

func TestProcessorRepliedRecipientShortCircuits(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c, _ := h.startSingleRecipient(ctx, t, func(c *ent.Campaign, cfg *ent.ChannelConfig, tpl *ent.Template) {
		h.seedStep(ctx, t, c, 1, "email_smtp", cfg.ID, tpl.ID, 0)
		h.seedStep(ctx, t, c, 2, "email_smtp", cfg.ID, tpl.ID, 0)
	})

	// The reply poller marked the recipient replied between steps.
	r, err := h.client.Recipient.Query().Where(recipient.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	require.NoError(t, r.Update().SetStatus(recipient.StatusReplied).Exec(ctx))

	j, handleErr := h.leaseAndHandle(ctx, t)
	require.NoError(t, handleErr)
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	assert.Zero(t, h.dispatcher.callCount())
	attempts, err := h.client.ContactAttempt.Query().Where(contactattempt.CampaignIDEQ(c.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, attempts)
}

func TestProcessorSessionSendOpensConversation(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	c := h.seedCampaign(ctx, t, 0)
	cfg := h.seedChannelConfig(ctx, t, "telegram")
	tpl := h.seedTemplate(ctx, t, "telegram", "Hi {{contact.name}}")
	h.seedStep(ctx, t, c, 1, "telegram", cfg.ID, tpl.ID, 0)

	p, err := h.client.Prospect.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelConfigID(cfg.ID).
		SetDisplayName("tg-user").
		SetUsername("tguser").
		Save(ctx)
	require.NoError(t, err)
	groupless, err := h.client.Recipient.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetCampaignID(c.ID).
		SetProspectID(p.ID).
		Save(ctx)
	require.NoError(t, err)
	_ = groupless

	require.NoError(t, h.engine.Start(ctx, testTenant, c.ID))

	j, handleErr := h.leaseAndHandle(ctx, t)
	require.NoError(t, handleErr)
	require.NoError(t, h.queue.Complete(ctx, j.ID))

	conv, err := h.client.Conversation.Query().
		Where(conversation.ProspectIDEQ(p.ID), conversation.StatusEQ(conversation.StatusOpen)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, conv.ChannelConfigID)

	count, err := h.client.Message.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reloaded, err := h.client.Prospect.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusMessaged, reloaded.Status)
	assert.NotNil(t, reloaded.LastMessagedAt)

	attempt, err := h.client.ContactAttempt.Query().Where(contactattempt.CampaignIDEQ(c.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, attempt.ConversationID)
	assert.Equal(t, conv.ID, *attempt.ConversationID)
}
