package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent/channelconfig"
	entmessage "github.com/outflowhq/outflow/ent/message"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/replies"
	"github.com/outflowhq/outflow/pkg/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the reply-polling loop end to end: boot reconciliation schedules the
// poll job, the worker pool drains the scripted inbound stream, and the reply
// lands as conversation history plus prospect state.
func TestReplyPollingIngestsInbound(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	cfg, err := app.EntClient.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.Kind(models.ChannelTelegram)).
		SetName("tg").
		SetSettings(map[string]interface{}{
			"reply_polling": map[string]interface{}{"enabled": true, "interval_minutes": 5},
		}).
		Save(ctx)
	require.NoError(t, err)

	p, conv := app.SeedMessagedProspect(ctx, t, cfg, "tguser")
	replyAt := time.Now().Add(-time.Minute).Truncate(time.Millisecond)
	app.Gateway.AddInbound("tguser", sessions.InboundMessage{
		ExternalID: "000000000201",
		Body:       "sounds interesting",
		ReceivedAt: replyAt,
	})

	// Boot-style reconciliation schedules the circulating poll job, which the
	// running pool picks up.
	require.NoError(t, replies.Reconcile(ctx, app.EntClient, app.Queue))

	app.WaitFor("reply should be ingested", func() bool {
		reloaded, err := app.EntClient.Prospect.Get(ctx, p.ID)
		return err == nil && reloaded.Status == prospect.StatusReplied
	})

	msg, err := app.EntClient.Message.Query().
		Where(entmessage.ConversationIDEQ(conv.ID), entmessage.DirectionEQ(entmessage.DirectionInbound)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sounds interesting", msg.Content)

	reloaded, err := app.EntClient.Prospect.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.LastExternalID)
	assert.Equal(t, "000000000201", *reloaded.LastExternalID)

	reloadedConv, err := app.EntClient.Conversation.Get(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, reloadedConv.LastWatermark)
	assert.Equal(t, "000000000201", *reloadedConv.LastWatermark)
}
