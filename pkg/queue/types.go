// Package queue provides the durable job queue and worker pool.
package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/job"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no due pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// Handler processes one leased job. A nil return completes the job; a non-nil
// error sends it through the retry path (see Service.Fail). Handlers own all
// domain side effects and must be safe to re-run: a job can be re-leased after
// a crash even if the handler's work partially happened.
type Handler interface {
	Handle(ctx context.Context, j *ent.Job) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, j *ent.Job) error

// Handle calls f(ctx, j).
func (f HandlerFunc) Handle(ctx context.Context, j *ent.Job) error { return f(ctx, j) }

// RetryAfterError wraps a handler error with an explicit retry delay,
// overriding the default backoff schedule. Used for provider rate limits
// where the wait is known to be long.
type RetryAfterError struct {
	After time.Duration
	Err   error
}

// Error implements the error interface.
func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("retry after %s: %v", e.After, e.Err)
}

// Unwrap returns the wrapped error.
func (e *RetryAfterError) Unwrap() error { return e.Err }

// RetryAfter wraps err with an explicit retry delay.
func RetryAfter(after time.Duration, err error) error {
	return &RetryAfterError{After: after, Err: err}
}

// FatalError marks a handler error as non-retryable: the job goes straight to
// dead regardless of remaining attempts. Used when retrying cannot help, such
// as broken channel credentials or a corrupted credentials blob.
type FatalError struct {
	Err error
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Err)
}

// Unwrap returns the wrapped error.
func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps err as non-retryable.
func Fatal(err error) error {
	return &FatalError{Err: err}
}

// backoffSchedule is the default delay before re-running a failed job,
// indexed by how many attempts have already run (1-based attempt → index-1).
var backoffSchedule = []time.Duration{
	60 * time.Second,
	300 * time.Second,
	900 * time.Second,
}

// backoffDelay returns the retry delay after the given attempt number.
func backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > len(backoffSchedule) {
		return backoffSchedule[len(backoffSchedule)-1]
	}
	return backoffSchedule[attempt-1]
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	ReplicaID       string         `json:"replica_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	QueueDepth      int            `json:"queue_depth"`
	RunningJobs     int            `json:"running_jobs"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastReaperScan  time.Time      `json:"last_reaper_scan"`
	LeasesRecovered int            `json:"leases_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// Kinds returns all job kinds the engine schedules.
func Kinds() []job.Kind {
	return []job.Kind{
		job.KindCampaignStep,
		job.KindScrape,
		job.KindPollReplies,
		job.KindWebhook,
		job.KindCleanup,
	}
}
