// Package e2e boots a complete engine instance — database, queue workers,
// campaign engine, reply poller, and HTTP API — against scripted channel
// transports, and drives it through the admin surface.
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	entjob "github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/pkg/api"
	"github.com/outflowhq/outflow/pkg/campaign"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/database"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/replies"
	"github.com/outflowhq/outflow/pkg/services"
	"github.com/outflowhq/outflow/pkg/sessions"
	"github.com/outflowhq/outflow/pkg/vault"
	testdb "github.com/outflowhq/outflow/test/database"
	"github.com/stretchr/testify/require"
)

// ScriptedDispatcher stands in for the real channel dispatcher. It returns
// scripted outcomes in order (then keeps returning the last one, defaulting
// to success) and records every dispatched message.
type ScriptedDispatcher struct {
	mu       sync.Mutex
	outcomes []channels.Outcome
	calls    []DispatchCall
}

// DispatchCall is one recorded send.
type DispatchCall struct {
	TenantID        string
	ChannelConfigID string
	To              models.Address
	Message         models.RenderedMessage
}

func (d *ScriptedDispatcher) Dispatch(_ context.Context, tenantID, channelConfigID string, to models.Address, msg models.RenderedMessage) channels.Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, DispatchCall{TenantID: tenantID, ChannelConfigID: channelConfigID, To: to, Message: msg})

	out := channels.Sent("ext-" + uuid.NewString()[:8])
	if len(d.outcomes) > 0 {
		out = d.outcomes[0]
		if len(d.outcomes) > 1 {
			d.outcomes = d.outcomes[1:]
		}
	}
	return out
}

// Script queues outcomes to return for the next dispatches.
func (d *ScriptedDispatcher) Script(outcomes ...channels.Outcome) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.outcomes = append(d.outcomes, outcomes...)
}

// Calls returns a copy of the recorded dispatches.
func (d *ScriptedDispatcher) Calls() []DispatchCall {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]DispatchCall(nil), d.calls...)
}

// CallCount returns the number of recorded dispatches.
func (d *ScriptedDispatcher) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}

// ScriptedGateway stands in for the session registry on the reply-polling
// side: inbound messages are scripted per peer username and filtered by the
// caller's watermark.
type ScriptedGateway struct {
	mu       sync.Mutex
	readyErr error
	inbound  map[string][]sessions.InboundMessage
}

func NewScriptedGateway() *ScriptedGateway {
	return &ScriptedGateway{inbound: make(map[string][]sessions.InboundMessage)}
}

func (g *ScriptedGateway) EnsureReady(context.Context, string, string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.readyErr
}

func (g *ScriptedGateway) FetchInbound(_ context.Context, _, _ string, peer models.Address, since string) ([]sessions.InboundMessage, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []sessions.InboundMessage
	for _, msg := range g.inbound[peer.Username] {
		if msg.ExternalID > since {
			out = append(out, msg)
		}
	}
	return out, nil
}

// AddInbound scripts inbound messages for a peer username.
func (g *ScriptedGateway) AddInbound(username string, msgs ...sessions.InboundMessage) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inbound[username] = append(g.inbound[username], msgs...)
}

// TestApp is a running engine instance for one test.
type TestApp struct {
	QueueConfig  *config.QueueConfig
	EngineConfig *config.EngineConfig

	DBClient  *database.Client
	EntClient *ent.Client

	Queue      *queue.Service
	Engine     *campaign.Engine
	Channels   *services.ChannelConfigService
	Dispatcher *ScriptedDispatcher
	Gateway    *ScriptedGateway
	WorkerPool *queue.WorkerPool
	Server     *api.Server

	BaseURL string

	t *testing.T
}

type testAppConfig struct {
	workerCount int
	dbClient    *database.Client
	replicaID   string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithWorkerCount sets the number of worker pool goroutines.
func WithWorkerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.workerCount = n }
}

// WithDBClient injects a pre-created database client, skipping the default
// per-test schema creation. Used for multi-replica tests where several
// TestApp instances share one schema.
func WithDBClient(client *database.Client) TestAppOption {
	return func(c *testAppConfig) { c.dbClient = client }
}

// WithReplicaID overrides the auto-generated replica ID so multi-replica
// tests get distinct lease owners.
func WithReplicaID(id string) TestAppOption {
	return func(c *testAppConfig) { c.replicaID = id }
}

// NewTestApp boots a full engine instance with scripted transports.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{workerCount: 2}
	for _, opt := range opts {
		opt(tc)
	}

	// Queue tuned for fast test turnaround.
	queueCfg := &config.QueueConfig{
		WorkerCount:             tc.workerCount,
		LeaseBatchSize:          1,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      25 * time.Millisecond,
		LeaseDuration:           30 * time.Second,
		JobTimeout:              30 * time.Second,
		HeartbeatInterval:       5 * time.Second,
		ReaperInterval:          5 * time.Second,
		ReaperGrace:             5 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
	}
	engineCfg := &config.EngineConfig{
		PausedRetrySeconds: 1,
		EnrollChunkSize:    1000,
		ReplyPollPeerCap:   100,
	}

	dbClient := tc.dbClient
	if dbClient == nil {
		dbClient = testdb.NewTestClient(t)
	}
	entClient := dbClient.Client

	v, err := vault.New(bytes.Repeat([]byte{0x42}, vault.KeySize))
	require.NoError(t, err)

	queueService := queue.NewService(entClient, queueCfg)
	channelService := services.NewChannelConfigService(entClient, v, queueService)
	registry := sessions.NewRegistry(entClient, v, t.TempDir())

	dispatcher := &ScriptedDispatcher{}
	gateway := NewScriptedGateway()

	engine := campaign.NewEngine(entClient, queueService, engineCfg)
	processor := campaign.NewStepProcessor(entClient, queueService, dispatcher, engine, engineCfg)
	poller := replies.NewPoller(entClient, queueService, gateway, engineCfg)

	replicaID := tc.replicaID
	if replicaID == "" {
		replicaID = fmt.Sprintf("e2e-%s", t.Name())
	}
	pool := queue.NewWorkerPool(replicaID, queueService, queueCfg)
	pool.Register(string(entjob.KindCampaignStep), processor)
	pool.Register(string(entjob.KindPollReplies), poller)
	pool.Register(string(entjob.KindCleanup), services.NewCleanupHandler(queueService))

	ctx := context.Background()
	require.NoError(t, pool.Start(ctx))

	server := api.NewServer("0", channelService, engine, registry, pool)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		QueueConfig:  queueCfg,
		EngineConfig: engineCfg,
		DBClient:     dbClient,
		EntClient:    entClient,
		Queue:        queueService,
		Engine:       engine,
		Channels:     channelService,
		Dispatcher:   dispatcher,
		Gateway:      gateway,
		WorkerPool:   pool,
		Server:       server,
		BaseURL:      fmt.Sprintf("http://%s", ln.Addr().String()),
		t:            t,
	}

	t.Cleanup(func() {
		pool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	return app
}
