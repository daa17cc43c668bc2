package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/vault"
	testdb "github.com/outflowhq/outflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-1"

func newTestService(t *testing.T) (*ChannelConfigService, *ent.Client, *queue.Service) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	v, err := vault.New(bytes.Repeat([]byte{0x42}, vault.KeySize))
	require.NoError(t, err)
	q := queue.NewService(dbClient.Client, config.DefaultQueueConfig())
	return NewChannelConfigService(dbClient.Client, v, q), dbClient.Client, q
}

func smtpCredentials() map[string]interface{} {
	return map[string]interface{}{
		"host": "smtp.example.com",
		"port": 587,
		"user": "mailer",
		"pass": "secret",
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testTenant, ChannelConfigInput{Kind: "carrier_pigeon", Name: "x"})
	assert.True(t, IsValidation(err))

	_, err = svc.Create(ctx, testTenant, ChannelConfigInput{Kind: models.ChannelEmailSMTP})
	assert.True(t, IsValidation(err))

	_, err = svc.Create(ctx, testTenant, ChannelConfigInput{
		Kind:        models.ChannelEmailSMTP,
		Name:        "mail",
		Credentials: map[string]interface{}{"port": 587},
	})
	assert.True(t, IsValidation(err))
}

func TestCreateSealsCredentials(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	cfg, err := svc.Create(ctx, testTenant, ChannelConfigInput{
		Kind:        models.ChannelEmailSMTP,
		Name:        "mail",
		Credentials: smtpCredentials(),
	})
	require.NoError(t, err)

	stored, err := client.ChannelConfig.Get(ctx, cfg.ID)
	require.NoError(t, err)
	require.Contains(t, stored.Credentials, "encrypted")
	assert.NotContains(t, stored.Credentials, "pass", "plaintext never hits the row")
}

func TestCreateSessionConfigSchedulesReplyPolling(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testTenant, ChannelConfigInput{
		Kind: models.ChannelTelegram,
		Name: "tg",
		Credentials: map[string]interface{}{
			"api_id":       12345,
			"api_hash":     "hash",
			"phone_number": "+4915512345",
		},
		Settings: map[string]interface{}{
			"reply_polling": map[string]interface{}{"enabled": true},
		},
	})
	require.NoError(t, err)

	count, err := client.Job.Query().Where(job.KindEQ(job.KindPollReplies)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateCredentialsClearsLastError(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	cfg, err := svc.Create(ctx, testTenant, ChannelConfigInput{
		Kind:        models.ChannelEmailSMTP,
		Name:        "mail",
		Credentials: smtpCredentials(),
	})
	require.NoError(t, err)
	require.NoError(t, client.ChannelConfig.UpdateOneID(cfg.ID).
		SetLastError("auth_failed: invalid credentials").
		Exec(ctx))

	updated, err := svc.Update(ctx, testTenant, cfg.ID, ChannelConfigInput{
		Credentials: smtpCredentials(),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.LastError)
}

func TestUpdateUnknownConfig(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Update(context.Background(), testTenant, "missing", ChannelConfigInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	// Tenant isolation: another tenant's config is invisible.
	cfg, err := svc.Create(context.Background(), "other-tenant", ChannelConfigInput{
		Kind: models.ChannelEmailSMTP,
		Name: "mail",
	})
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), testTenant, cfg.ID, ChannelConfigInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMakeDefaultClearsSiblings(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()
	isDefault := true

	first, err := svc.Create(ctx, testTenant, ChannelConfigInput{
		Kind:      models.ChannelEmailSMTP,
		Name:      "mail-1",
		IsDefault: &isDefault,
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, testTenant, ChannelConfigInput{
		Kind:      models.ChannelEmailSMTP,
		Name:      "mail-2",
		IsDefault: &isDefault,
	})
	require.NoError(t, err)

	reloaded, err := client.ChannelConfig.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)

	reloaded, err = client.ChannelConfig.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDefault)
}

func TestMigrateLegacyCredentials(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	legacy, err := client.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.KindEmailSMTP).
		SetName("legacy").
		SetCredentials(smtpCredentials()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.MigrateLegacyCredentials(ctx))

	stored, err := client.ChannelConfig.Get(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Credentials, "encrypted")

	// Idempotent: a second run leaves the sealed blob in place.
	require.NoError(t, svc.MigrateLegacyCredentials(ctx))
}

func TestCleanupHandlerPurgesAndReschedules(t *testing.T) {
	_, client, q := newTestService(t)
	ctx := context.Background()

	// A freshly completed job stays inside the retention window.
	recent, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetKind(job.KindCampaignStep).
		SetStatus(job.StatusCompleted).
		SetRunAfter(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	payload, err := models.EncodePayload(models.CleanupPayload{OlderThanHours: 1})
	require.NoError(t, err)
	j, err := q.Enqueue(ctx, queue.EnqueueInput{Kind: job.KindCleanup, Payload: payload})
	require.NoError(t, err)

	h := NewCleanupHandler(q)
	require.NoError(t, h.Handle(ctx, j))

	kept, err := client.Job.Query().Where(job.IDEQ(recent.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, kept, "rows inside the retention window survive")

	next, err := client.Job.Query().
		Where(job.KindEQ(job.KindCleanup), job.StatusEQ(job.StatusPending), job.IDNEQ(j.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), next.RunAfter, 5*time.Second)
}

func TestEnsureCleanupJobIsIdempotent(t *testing.T) {
	_, client, q := newTestService(t)
	ctx := context.Background()

	require.NoError(t, EnsureCleanupJob(ctx, client, q))
	require.NoError(t, EnsureCleanupJob(ctx, client, q))

	count, err := client.Job.Query().Where(job.KindEQ(job.KindCleanup)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
