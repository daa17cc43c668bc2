// Outflow engine server — runs the campaign queue workers, session registry,
// reply pollers, and the admin HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/outflowhq/outflow/pkg/api"
	"github.com/outflowhq/outflow/pkg/campaign"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/config"
	"github.com/outflowhq/outflow/pkg/database"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/replies"
	"github.com/outflowhq/outflow/pkg/services"
	"github.com/outflowhq/outflow/pkg/sessions"
	"github.com/outflowhq/outflow/pkg/vault"
	"github.com/outflowhq/outflow/pkg/version"

	entjob "github.com/outflowhq/outflow/ent/job"
)

// resolveReplicaID determines the replica identifier for multi-replica lease
// coordination. Priority: REPLICA_ID env > HOSTNAME env > "local".
func resolveReplicaID() string {
	if id := os.Getenv("REPLICA_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	replicaID := resolveReplicaID()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting outflow", "version", version.Full(), "replica_id", replicaID, "http_port", cfg.HTTPPort)

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Return this replica's orphaned leases to the queue before workers start.
	if err := queue.RecoverStartupLeases(ctx, dbClient.Client, replicaID); err != nil {
		slog.Error("Failed to recover startup leases", "error", err)
		// Non-fatal; the reaper picks up expired leases anyway.
	}

	v, err := vault.NewFromBase64(cfg.VaultKey)
	if err != nil {
		slog.Error("Failed to initialize credentials vault", "error", err)
		os.Exit(1)
	}

	queueService := queue.NewService(dbClient.Client, &cfg.Queue)
	channelService := services.NewChannelConfigService(dbClient.Client, v, queueService)

	// Re-encrypt any config still carrying plaintext credentials.
	if err := channelService.MigrateLegacyCredentials(ctx); err != nil {
		slog.Error("Failed to migrate legacy credentials", "error", err)
		os.Exit(1)
	}

	registry := sessions.NewRegistry(dbClient.Client, v, cfg.StorageRoot)
	registry.BootReconnect(ctx)

	dispatcher := channels.NewDispatcher(dbClient.Client, v, registry)
	engine := campaign.NewEngine(dbClient.Client, queueService, &cfg.Engine)
	processor := campaign.NewStepProcessor(dbClient.Client, queueService, dispatcher, engine, &cfg.Engine)
	poller := replies.NewPoller(dbClient.Client, queueService, registry, &cfg.Engine)

	// Ensure the circulating housekeeping jobs exist.
	if err := replies.Reconcile(ctx, dbClient.Client, queueService); err != nil {
		slog.Error("Failed to reconcile reply polling", "error", err)
		os.Exit(1)
	}
	if err := services.EnsureCleanupJob(ctx, dbClient.Client, queueService); err != nil {
		slog.Error("Failed to schedule cleanup job", "error", err)
		os.Exit(1)
	}

	pool := queue.NewWorkerPool(replicaID, queueService, &cfg.Queue)
	pool.Register(string(entjob.KindCampaignStep), processor)
	pool.Register(string(entjob.KindPollReplies), poller)
	pool.Register(string(entjob.KindCleanup), services.NewCleanupHandler(queueService))
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(cfg.HTTPPort, channelService, engine, registry, pool)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Outflow started", "replica_id", replicaID, "workers", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	registry.Shutdown()
	slog.Info("Outflow stopped")
}
