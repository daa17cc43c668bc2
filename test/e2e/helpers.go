package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/prospect"
	"github.com/outflowhq/outflow/ent/template"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-e2e"

const (
	waitTimeout = 20 * time.Second
	waitTick    = 100 * time.Millisecond
)

// httpJSON sends a JSON request to the running API and decodes the JSON
// response body into a generic map.
func (app *TestApp) httpJSON(method, path string, body any, tenant string) (int, map[string]any) {
	app.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(app.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, app.BaseURL+path, &buf)
	require.NoError(app.t, err)
	req.Header.Set("Content-Type", "application/json")
	if tenant != "" {
		req.Header.Set("X-Tenant-ID", tenant)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(app.t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		decoded = nil
	}
	return resp.StatusCode, decoded
}

// POST sends a JSON POST as the test tenant.
func (app *TestApp) POST(path string, body any) (int, map[string]any) {
	app.t.Helper()
	return app.httpJSON(http.MethodPost, path, body, testTenant)
}

// GET sends a GET as the test tenant.
func (app *TestApp) GET(path string) (int, map[string]any) {
	app.t.Helper()
	return app.httpJSON(http.MethodGet, path, nil, testTenant)
}

// WaitFor polls cond until it holds or the wait budget is exhausted.
func (app *TestApp) WaitFor(msg string, cond func() bool) {
	app.t.Helper()
	require.Eventually(app.t, cond, waitTimeout, waitTick, msg)
}

// CreateChannelViaAPI creates a channel config through the admin API and
// returns its ID.
func (app *TestApp) CreateChannelViaAPI(kind, name string, credentials, settings map[string]any) string {
	app.t.Helper()
	body := map[string]any{"kind": kind, "name": name}
	if credentials != nil {
		body["credentials"] = credentials
	}
	if settings != nil {
		body["settings"] = settings
	}
	code, view := app.POST("/api/channels", body)
	require.Equal(app.t, http.StatusCreated, code, "channel create failed: %v", view)
	id, _ := view["id"].(string)
	require.NotEmpty(app.t, id)
	return id
}

// SeedChannelConfig creates a channel config row directly.
func (app *TestApp) SeedChannelConfig(ctx context.Context, t *testing.T, kind string) *ent.ChannelConfig {
	t.Helper()
	cfg, err := app.EntClient.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetKind(channelconfig.Kind(kind)).
		SetName("e2e-" + kind).
		Save(ctx)
	require.NoError(t, err)
	return cfg
}

// SeedCampaignWithStep creates a campaign with one immediate step on the
// given channel config, plus the template it renders.
func (app *TestApp) SeedCampaignWithStep(ctx context.Context, t *testing.T, kind, cfgID, body string) *ent.Campaign {
	t.Helper()
	tpl, err := app.EntClient.Template.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelKind(template.ChannelKind(kind)).
		SetName("tpl").
		SetBody(body).
		Save(ctx)
	require.NoError(t, err)

	c, err := app.EntClient.Campaign.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetName("e2e campaign").
		Save(ctx)
	require.NoError(t, err)

	_, err = app.EntClient.CampaignStep.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetCampaignID(c.ID).
		SetStepOrder(1).
		SetChannelKind(campaignstep.ChannelKind(kind)).
		SetChannelConfigID(cfgID).
		SetTemplateID(tpl.ID).
		Save(ctx)
	require.NoError(t, err)
	return c
}

// SeedContacts creates n leads each with one primary contact and returns the
// contact IDs.
func (app *TestApp) SeedContacts(ctx context.Context, t *testing.T, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		l, err := app.EntClient.Lead.Create().
			SetID(uuid.NewString()).
			SetTenantID(testTenant).
			SetCompanyName(fmt.Sprintf("Lead %d Co", i)).
			Save(ctx)
		require.NoError(t, err)

		ct, err := app.EntClient.Contact.Create().
			SetID(uuid.NewString()).
			SetTenantID(testTenant).
			SetLeadID(l.ID).
			SetName(fmt.Sprintf("Contact %d", i)).
			SetEmail(fmt.Sprintf("contact%d@example.com", i)).
			SetIsPrimary(true).
			Save(ctx)
		require.NoError(t, err)
		ids = append(ids, ct.ID)
	}
	return ids
}

// SeedMessagedProspect creates a messaged prospect with an open conversation
// and one unanswered outbound attempt, as a finished first touch leaves them.
func (app *TestApp) SeedMessagedProspect(ctx context.Context, t *testing.T, cfg *ent.ChannelConfig, username string) (*ent.Prospect, *ent.Conversation) {
	t.Helper()
	p, err := app.EntClient.Prospect.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelConfigID(cfg.ID).
		SetDisplayName(username).
		SetUsername(username).
		SetStatus(prospect.StatusMessaged).
		SetLastMessagedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	conv, err := app.EntClient.Conversation.Create().
		SetID(uuid.NewString()).
		SetTenantID(testTenant).
		SetChannelKind(conversation.ChannelKind(cfg.Kind)).
		SetChannelConfigID(cfg.ID).
		SetProspectID(p.ID).
		Save(ctx)
	require.NoError(t, err)

	_, err = app.EntClient.ContactAttempt.Create().
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
	return p, conv
}
