package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
)

// Retention defaults for terminal job rows.
const (
	defaultRetentionHours = 168 // 7 days
	cleanupInterval       = 24 * time.Hour
)

// CleanupHandler handles cleanup jobs: it purges terminal (completed, failed,
// dead) job rows past the retention window, then re-schedules itself daily.
type CleanupHandler struct {
	queue *queue.Service
}

// NewCleanupHandler creates the cleanup job handler.
func NewCleanupHandler(q *queue.Service) *CleanupHandler {
	return &CleanupHandler{queue: q}
}

// Handle processes one leased cleanup job.
func (h *CleanupHandler) Handle(ctx context.Context, j *ent.Job) error {
	var payload models.CleanupPayload
	if err := models.DecodePayload(j.Payload, &payload); err != nil {
		return queue.Fatal(err)
	}
	hours := payload.OlderThanHours
	if hours <= 0 {
		hours = defaultRetentionHours
	}

	purged, err := h.queue.PurgeTerminal(ctx, time.Now().Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		return fmt.Errorf("purge terminal jobs: %w", err)
	}
	if purged > 0 {
		slog.Info("Terminal jobs purged", "count", purged, "older_than_hours", hours)
	}

	encoded, err := models.EncodePayload(payload)
	if err != nil {
		return err
	}
	_, err = h.queue.Enqueue(ctx, queue.EnqueueInput{
		Kind:     job.KindCleanup,
		Payload:  encoded,
		RunAfter: time.Now().Add(cleanupInterval),
	})
	return err
}

// EnsureCleanupJob schedules the circulating cleanup job if none exists.
// Called at boot.
func EnsureCleanupJob(ctx context.Context, client *ent.Client, q *queue.Service) error {
	exists, err := client.Job.Query().
		Where(
			job.KindEQ(job.KindCleanup),
			job.StatusIn(job.StatusPending, job.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check cleanup job: %w", err)
	}
	if exists {
		return nil
	}
	payload, err := models.EncodePayload(models.CleanupPayload{})
	if err != nil {
		return err
	}
	_, err = q.Enqueue(ctx, queue.EnqueueInput{
		Kind:    job.KindCleanup,
		Payload: payload,
	})
	return err
}
