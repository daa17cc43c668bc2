package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/outflowhq/outflow/pkg/campaign"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/services"
	"github.com/outflowhq/outflow/pkg/sessions"
	"github.com/outflowhq/outflow/pkg/vault"
	testdb "github.com/outflowhq/outflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTenant = "tenant-1"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dbClient := testdb.NewTestClient(t)

	v, err := vault.New(bytes.Repeat([]byte{0x42}, vault.KeySize))
	require.NoError(t, err)

	queueCfg := config.DefaultQueueConfig()
	engineCfg := &config.EngineConfig{PausedRetrySeconds: 30, EnrollChunkSize: 1000, ReplyPollPeerCap: 100}

	svc := queue.NewService(dbClient.Client, queueCfg)
	channelSvc := services.NewChannelConfigService(dbClient.Client, v, svc)
	engine := campaign.NewEngine(dbClient.Client, svc, engineCfg)
	registry := sessions.NewRegistry(dbClient.Client, v, t.TempDir())
	pool := queue.NewWorkerPool("api-test", svc, queueCfg)

	return NewServer("0", channelSvc, engine, registry, pool).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, tenant string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tenant != "" {
		req.Header.Set(tenantHeader, tenant)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTenantHeaderIsRequired(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/channels", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), tenantHeader)
}

func TestCreateChannelValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/channels",
		map[string]any{"kind": "carrier_pigeon", "name": "x"}, testTenant)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChannelCredentialsAreRedacted(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/channels", map[string]any{
		"kind": "email_smtp",
		"name": "mail",
		"credentials": map[string]any{
			"host": "smtp.example.com",
			"user": "mailer",
			"pass": "hunter2",
		},
	}, testTenant)
	require.Equal(t, http.StatusCreated, w.Code)

	var view map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, true, view["hasCredentials"])
	assert.NotContains(t, w.Body.String(), "hunter2")

	w = doJSON(t, router, http.MethodGet, "/api/channels", nil, testTenant)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestChannelTenantIsolation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/channels",
		map[string]any{"kind": "email_smtp", "name": "mail"}, testTenant)
	require.Equal(t, http.StatusCreated, w.Code)
	var view map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	w = doJSON(t, router, http.MethodGet, "/api/channels/"+view["id"].(string), nil, "other-tenant")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStartUnknownCampaign(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/campaigns/missing/start", nil, testTenant)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddRecipientsRequiresExactlyOneMode(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/campaigns/some-id/recipients",
		map[string]any{}, testTenant)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/campaigns/some-id/recipients", map[string]any{
		"contactIds": []string{"c1"},
		"leadIds":    []string{"l1"},
	}, testTenant)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil, "")
	// The pool is not started in tests; the endpoint still answers.
	assert.Contains(t, []int{http.StatusOK, http.StatusServiceUnavailable}, w.Code)
}
