package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/pkg/config"
)

// Service owns job lifecycle transitions. All state changes to jobs go
// through here so the lease and retry invariants live in one place.
type Service struct {
	client *ent.Client
	config *config.QueueConfig
}

// NewService creates a job queue service.
func NewService(client *ent.Client, cfg *config.QueueConfig) *Service {
	return &Service{client: client, config: cfg}
}

// EnqueueInput describes a job to enqueue.
type EnqueueInput struct {
	TenantID    string
	Kind        job.Kind
	Payload     map[string]interface{}
	Priority    int
	RunAfter    time.Time
	MaxAttempts int
}

// Enqueue inserts a pending job. Zero-value Priority means the default (5);
// zero-value RunAfter means due immediately.
func (s *Service) Enqueue(ctx context.Context, in EnqueueInput) (*ent.Job, error) {
	create := s.client.Job.Create().
		SetID(uuid.NewString()).
		SetKind(in.Kind).
		SetRunAfter(in.RunAfter)
	if in.TenantID != "" {
		create = create.SetTenantID(in.TenantID)
	}
	if in.Payload != nil {
		create = create.SetPayload(in.Payload)
	}
	if in.Priority != 0 {
		create = create.SetPriority(in.Priority)
	}
	if in.RunAfter.IsZero() {
		create = create.SetRunAfter(time.Now())
	}
	if in.MaxAttempts != 0 {
		create = create.SetMaxAttempts(in.MaxAttempts)
	}

	j, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s job: %w", in.Kind, err)
	}
	return j, nil
}

// EnqueueTx is Enqueue inside an existing transaction, for callers that must
// create jobs atomically with other rows (campaign start, reply-poll
// reconciliation).
func (s *Service) EnqueueTx(ctx context.Context, tx *ent.Tx, in EnqueueInput) (*ent.Job, error) {
	create := tx.Job.Create().
		SetID(uuid.NewString()).
		SetKind(in.Kind).
		SetRunAfter(in.RunAfter)
	if in.TenantID != "" {
		create = create.SetTenantID(in.TenantID)
	}
	if in.Payload != nil {
		create = create.SetPayload(in.Payload)
	}
	if in.Priority != 0 {
		create = create.SetPriority(in.Priority)
	}
	if in.RunAfter.IsZero() {
		create = create.SetRunAfter(time.Now())
	}
	if in.MaxAttempts != 0 {
		create = create.SetMaxAttempts(in.MaxAttempts)
	}

	j, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s job: %w", in.Kind, err)
	}
	return j, nil
}

// Lease atomically claims the next due pending job using
// FOR UPDATE SKIP LOCKED, ordered by (priority, run_after, id). The claimed
// job moves to running with attempts incremented and a fresh lease.
func (s *Service) Lease(ctx context.Context, workerID string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	j, err := tx.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.RunAfterLTE(now),
		).
		Order(
			ent.Asc(job.FieldPriority),
			ent.Asc(job.FieldRunAfter),
			ent.Asc(job.FieldID),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	j, err = j.Update().
		SetStatus(job.StatusRunning).
		SetWorkerID(workerID).
		SetStartedAt(now).
		SetLeaseUntil(now.Add(s.config.LeaseDuration)).
		SetAttempts(j.Attempts + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return j, nil
}

// Complete marks a running job completed.
func (s *Service) Complete(ctx context.Context, jobID string) error {
	err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusCompleted).
		SetCompletedAt(time.Now()).
		ClearLeaseUntil().
		ClearError().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete job %s: %w", jobID, err)
	}
	return nil
}

// Fail records a job failure. If attempts remain, the job returns to pending
// with a backoff delay (60s, 300s, 900s — or the delay carried by a
// RetryAfterError). Exhausted attempts move the job to failed; a FatalError
// marks it dead immediately (poison input, retrying cannot help).
func (s *Service) Fail(ctx context.Context, j *ent.Job, jobErr error) error {
	delay := backoffDelay(j.Attempts)
	var retryAfter *RetryAfterError
	if errors.As(jobErr, &retryAfter) {
		delay = retryAfter.After
	}

	var fatal *FatalError
	if errors.As(jobErr, &fatal) {
		err := s.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusDead).
			SetCompletedAt(time.Now()).
			SetError(jobErr.Error()).
			ClearLeaseUntil().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark job %s dead: %w", j.ID, err)
		}
		slog.Warn("Job failed fatally",
			"job_id", j.ID, "kind", j.Kind, "attempts", j.Attempts, "error", jobErr)
		return nil
	}

	if j.Attempts >= j.MaxAttempts {
		err := s.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusFailed).
			SetCompletedAt(time.Now()).
			SetError(jobErr.Error()).
			ClearLeaseUntil().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to mark job %s failed: %w", j.ID, err)
		}
		slog.Warn("Job exhausted retries",
			"job_id", j.ID, "kind", j.Kind, "attempts", j.Attempts, "error", jobErr)
		return nil
	}

	err := s.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusPending).
		SetRunAfter(time.Now().Add(delay)).
		SetError(jobErr.Error()).
		ClearLeaseUntil().
		ClearWorkerID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule retry for job %s: %w", j.ID, err)
	}
	return nil
}

// Kill marks a job dead immediately, regardless of remaining attempts.
// Used when retrying cannot help: broken credentials, corrupted blobs.
func (s *Service) Kill(ctx context.Context, jobID string, jobErr error) error {
	err := s.client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusDead).
		SetCompletedAt(time.Now()).
		SetError(jobErr.Error()).
		ClearLeaseUntil().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to kill job %s: %w", jobID, err)
	}
	return nil
}

// Heartbeat extends the lease of a running job.
func (s *Service) Heartbeat(ctx context.Context, jobID string) error {
	err := s.client.Job.UpdateOneID(jobID).
		SetLeaseUntil(time.Now().Add(s.config.LeaseDuration)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat job %s: %w", jobID, err)
	}
	return nil
}

// QueueDepth returns the number of due pending jobs.
func (s *Service) QueueDepth(ctx context.Context) (int, error) {
	return s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.RunAfterLTE(time.Now()),
		).
		Count(ctx)
}

// RunningCount returns the number of running jobs.
func (s *Service) RunningCount(ctx context.Context) (int, error) {
	return s.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
}

// PurgeTerminal deletes completed, failed, and dead jobs older than the
// cutoff. Used by the cleanup job to keep the jobs table bounded.
func (s *Service) PurgeTerminal(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusDead),
			job.CreatedAtLT(olderThan),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal jobs: %w", err)
	}
	return n, nil
}
