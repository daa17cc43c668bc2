package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/outflowhq/outflow/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	service  *Service
	config   *config.QueueConfig
	handlers HandlerRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// HandlerRegistry resolves the handler for a job kind.
type HandlerRegistry interface {
	HandlerFor(kind string) (Handler, bool)
}

// NewWorker creates a new queue worker.
func NewWorker(id string, service *Service, cfg *config.QueueConfig, handlers HandlerRegistry) *Worker {
	return &Worker{
		id:           id,
		service:      service,
		config:       cfg,
		handlers:     handlers,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess leases one job and runs its handler to a terminal outcome.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	j, err := w.service.Lease(ctx, w.id)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "kind", j.Kind, "worker_id", w.id)
	log.Info("Job leased", "attempt", j.Attempts)

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	handler, ok := w.handlers.HandlerFor(string(j.Kind))
	if !ok {
		// No handler registered for this kind: route through the normal
		// failure path so the job eventually goes terminal instead of looping.
		failErr := fmt.Errorf("no handler registered for kind %q", j.Kind)
		if err := w.service.Fail(context.Background(), j, failErr); err != nil {
			return err
		}
		return nil
	}

	// Job context carries the soft deadline; the heartbeat keeps the lease
	// alive while the handler runs.
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, j.ID)

	handlerErr := handler.Handle(jobCtx, j)
	cancelHeartbeat()

	// Terminal writes use a background context: the job context may already
	// be cancelled or expired.
	if handlerErr != nil {
		if errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
			handlerErr = fmt.Errorf("job timed out after %v: %w", w.config.JobTimeout, handlerErr)
		}
		log.Warn("Job failed", "attempt", j.Attempts, "error", handlerErr)
		if err := w.service.Fail(context.Background(), j, handlerErr); err != nil {
			return err
		}
	} else {
		if err := w.service.Complete(context.Background(), j.ID); err != nil {
			return err
		}
		log.Info("Job completed")
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	return nil
}

// runHeartbeat periodically extends the job lease so the reaper does not
// reclaim a job that is still being worked.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.service.Heartbeat(ctx, jobID); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
