package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/job"
)

// reaperState tracks lease recovery metrics (thread-safe).
type reaperState struct {
	mu              sync.Mutex
	lastScan        time.Time
	leasesRecovered int
}

// runReaper periodically scans for running jobs whose lease expired past the
// grace window. All replicas run this independently — the recovery update is
// idempotent.
func (p *WorkerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.reapExpiredLeases(ctx); err != nil {
				slog.Error("Lease reaper scan failed", "error", err)
			}
		}
	}
}

// reapExpiredLeases returns crashed-worker jobs to the queue. The claiming
// worker already counted the attempt, so a job that keeps crashing its
// workers still marches toward failed.
func (p *WorkerPool) reapExpiredLeases(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.ReaperGrace)

	expired, err := p.service.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LeaseUntilNotNil(),
			job.LeaseUntilLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired leases: %w", err)
	}

	if len(expired) == 0 {
		p.reaper.mu.Lock()
		p.reaper.lastScan = time.Now()
		p.reaper.mu.Unlock()
		return nil
	}

	slog.Warn("Detected expired job leases", "count", len(expired))

	recovered := 0
	for _, j := range expired {
		if err := p.recoverExpiredJob(ctx, j); err != nil {
			slog.Error("Failed to recover expired job", "job_id", j.ID, "error", err)
			continue
		}
		recovered++
	}

	p.reaper.mu.Lock()
	p.reaper.lastScan = time.Now()
	p.reaper.leasesRecovered += recovered
	p.reaper.mu.Unlock()

	return nil
}

// recoverExpiredJob returns one expired job to pending, or marks it failed
// when its attempts are already spent.
func (p *WorkerPool) recoverExpiredJob(ctx context.Context, j *ent.Job) error {
	workerID := "unknown"
	if j.WorkerID != nil {
		workerID = *j.WorkerID
	}
	reason := fmt.Sprintf("lease expired: worker %s stopped heartbeating", workerID)

	if j.Attempts >= j.MaxAttempts {
		err := j.Update().
			SetStatus(job.StatusFailed).
			SetCompletedAt(time.Now()).
			SetError(reason).
			ClearLeaseUntil().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark expired job failed: %w", err)
		}
		slog.Warn("Expired job had no attempts left, marked failed", "job_id", j.ID, "kind", j.Kind)
		return nil
	}

	err := j.Update().
		SetStatus(job.StatusPending).
		SetRunAfter(time.Now()).
		SetError(reason).
		ClearLeaseUntil().
		ClearWorkerID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to return expired job to pending: %w", err)
	}

	slog.Warn("Expired job returned to queue", "job_id", j.ID, "kind", j.Kind, "attempt", j.Attempts)
	return nil
}

// RecoverStartupLeases performs a one-time recovery of jobs leased by this
// replica before a crash or restart. Called once during startup, before the
// worker pool begins processing.
func RecoverStartupLeases(ctx context.Context, client *ent.Client, replicaID string) error {
	stale, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.WorkerIDNotNil(),
			job.WorkerIDHasPrefix(replicaID+"-worker-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup leases: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Warn("Found stale leases from previous run", "replica_id", replicaID, "count", len(stale))

	now := time.Now()
	for _, j := range stale {
		reason := fmt.Sprintf("replica %s restarted while job was running", replicaID)

		var updateErr error
		if j.Attempts >= j.MaxAttempts {
			updateErr = j.Update().
				SetStatus(job.StatusFailed).
				SetCompletedAt(now).
				SetError(reason).
				ClearLeaseUntil().
				Exec(ctx)
		} else {
			updateErr = j.Update().
				SetStatus(job.StatusPending).
				SetRunAfter(now).
				SetError(reason).
				ClearLeaseUntil().
				ClearWorkerID().
				Exec(ctx)
		}
		if updateErr != nil {
			slog.Error("Failed to recover stale lease", "job_id", j.ID, "error", updateErr)
			continue
		}
		slog.Info("Stale lease recovered", "job_id", j.ID, "kind", j.Kind)
	}

	return nil
}
