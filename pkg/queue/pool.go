package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/outflowhq/outflow/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the lease reaper.
type WorkerPool struct {
	replicaID string
	service   *Service
	config    *config.QueueConfig
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Handler registry: job kind → handler
	handlerMu sync.RWMutex
	handlers  map[string]Handler
	started   bool

	// Reaper state
	reaper reaperState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(replicaID string, service *Service, cfg *config.QueueConfig) *WorkerPool {
	return &WorkerPool{
		replicaID: replicaID,
		service:   service,
		config:    cfg,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
		handlers:  make(map[string]Handler),
	}
}

// Register binds a handler to a job kind. Must be called before Start.
func (p *WorkerPool) Register(kind string, h Handler) {
	p.handlerMu.Lock()
	defer p.handlerMu.Unlock()
	p.handlers[kind] = h
}

// HandlerFor resolves the handler for a job kind.
func (p *WorkerPool) HandlerFor(kind string) (Handler, bool) {
	p.handlerMu.RLock()
	defer p.handlerMu.RUnlock()
	h, ok := p.handlers[kind]
	return h, ok
}

// Start spawns worker goroutines and the reaper background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "replica_id", p.replicaID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "replica_id", p.replicaID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.replicaID, i)
		worker := NewWorker(workerID, p.service, p.config, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current jobs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.service.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"replica_id", p.replicaID, "error", errQ)
	}

	runningJobs, errR := p.service.RunningCount(ctx)
	if errR != nil {
		slog.Error("Failed to query running jobs for health check",
			"replica_id", p.replicaID, "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.reaper.mu.Lock()
	lastReaperScan := p.reaper.lastScan
	leasesRecovered := p.reaper.leasesRecovered
	p.reaper.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("running jobs query failed: %v", errR)
		}
	}

	return &PoolHealth{
		IsHealthy:       isHealthy,
		DBReachable:     dbHealthy,
		DBError:         dbError,
		ReplicaID:       p.replicaID,
		ActiveWorkers:   activeWorkers,
		TotalWorkers:    len(p.workers),
		QueueDepth:      queueDepth,
		RunningJobs:     runningJobs,
		WorkerStats:     workerStats,
		LastReaperScan:  lastReaperScan,
		LeasesRecovered: leasesRecovered,
	}
}
