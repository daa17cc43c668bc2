package e2e

import (
	"context"
	"net/http"
	"testing"

	entcampaign "github.com/outflowhq/outflow/ent/campaign"
	"github.com/outflowhq/outflow/ent/recipient"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives a single-step email campaign end to end through the admin API:
// channel creation, enrolment, start, worker processing, and final stats.
func TestCampaignLifecycle(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	cfgID := app.CreateChannelViaAPI(string(models.ChannelEmailSMTP), "mail", map[string]any{
		"host": "smtp.example.com",
		"user": "mailer",
		"pass": "secret",
	}, nil)

	c := app.SeedCampaignWithStep(ctx, t, string(models.ChannelEmailSMTP), cfgID, "Hi {{contact.name}}")
	contactIDs := app.SeedContacts(ctx, t, 3)

	code, resp := app.POST("/api/campaigns/"+c.ID+"/recipients", map[string]any{"contactIds": contactIDs})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), resp["added"])

	code, _ = app.POST("/api/campaigns/"+c.ID+"/start", nil)
	require.Equal(t, http.StatusOK, code)

	app.WaitFor("campaign should complete", func() bool {
		reloaded, err := app.EntClient.Campaign.Get(ctx, c.ID)
		return err == nil && reloaded.Status == entcampaign.StatusCompleted
	})

	assert.Equal(t, 3, app.Dispatcher.CallCount())
	for _, call := range app.Dispatcher.Calls() {
		assert.Equal(t, cfgID, call.ChannelConfigID)
		assert.Contains(t, call.Message.Body, "Hi Contact")
	}

	done, err := app.EntClient.Recipient.Query().
		Where(recipient.CampaignIDEQ(c.ID), recipient.StatusEQ(recipient.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, done)

	code, stats := app.GET("/api/campaigns/" + c.ID + "/stats")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), stats["completed"])
	assert.Equal(t, float64(3), stats["total"])
	assert.Equal(t, float64(0), stats["pending"])
}

func TestStartRequiresRecipientsAndSteps(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	cfgID := app.CreateChannelViaAPI(string(models.ChannelEmailSMTP), "mail", map[string]any{
		"host": "smtp.example.com",
		"user": "mailer",
	}, nil)
	c := app.SeedCampaignWithStep(ctx, t, string(models.ChannelEmailSMTP), cfgID, "Hi")

	// Steps but no recipients.
	code, _ := app.POST("/api/campaigns/"+c.ID+"/start", nil)
	assert.Equal(t, http.StatusConflict, code)

	// Pausing a draft is also a state conflict.
	code, _ = app.POST("/api/campaigns/"+c.ID+"/pause", nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestCompletedCampaignCannotBePaused(t *testing.T) {
	app := NewTestApp(t)
	ctx := context.Background()

	cfgID := app.CreateChannelViaAPI(string(models.ChannelEmailSMTP), "mail", map[string]any{
		"host": "smtp.example.com",
		"user": "mailer",
	}, nil)
	c := app.SeedCampaignWithStep(ctx, t, string(models.ChannelEmailSMTP), cfgID, "Hi")
	contactIDs := app.SeedContacts(ctx, t, 1)

	code, _ := app.POST("/api/campaigns/"+c.ID+"/recipients", map[string]any{"contactIds": contactIDs})
	require.Equal(t, http.StatusOK, code)
	code, _ = app.POST("/api/campaigns/"+c.ID+"/start", nil)
	require.Equal(t, http.StatusOK, code)

	app.WaitFor("campaign should complete", func() bool {
		reloaded, err := app.EntClient.Campaign.Get(ctx, c.ID)
		return err == nil && reloaded.Status == entcampaign.StatusCompleted
	})

	code, _ = app.POST("/api/campaigns/"+c.ID+"/pause", nil)
	assert.Equal(t, http.StatusConflict, code)
}
