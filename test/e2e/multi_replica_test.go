package e2e

import (
	"context"
	"net/http"
	"testing"

	entcampaign "github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two replicas lease from the same queue; SKIP LOCKED leasing must hand each
// campaign step to exactly one of them.
func TestMultiReplicaProcessesEachStepOnce(t *testing.T) {
	appA := NewTestApp(t, WithReplicaID("replica-a"))
	appB := NewTestApp(t, WithDBClient(appA.DBClient), WithReplicaID("replica-b"))
	ctx := context.Background()

	cfg := appA.SeedChannelConfig(ctx, t, string(models.ChannelEmailSMTP))
	c := appA.SeedCampaignWithStep(ctx, t, string(models.ChannelEmailSMTP), cfg.ID, "Hi {{contact.name}}")
	contactIDs := appA.SeedContacts(ctx, t, 10)

	code, resp := appA.POST("/api/campaigns/"+c.ID+"/recipients", map[string]any{"contactIds": contactIDs})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, float64(10), resp["added"])

	code, _ = appA.POST("/api/campaigns/"+c.ID+"/start", nil)
	require.Equal(t, http.StatusOK, code)

	appA.WaitFor("campaign should complete", func() bool {
		reloaded, err := appA.EntClient.Campaign.Get(ctx, c.ID)
		return err == nil && reloaded.Status == entcampaign.StatusCompleted
	})

	// Every step dispatched exactly once across the two replicas.
	total := appA.Dispatcher.CallCount() + appB.Dispatcher.CallCount()
	assert.Equal(t, 10, total)

	attempts, err := appA.EntClient.ContactAttempt.Query().
		Where(
			contactattempt.DirectionEQ(contactattempt.DirectionOutbound),
			contactattempt.StatusEQ(contactattempt.StatusSent),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, attempts)
}
