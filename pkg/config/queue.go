package config

import "time"

// QueueConfig contains job queue and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of general worker goroutines per replica.
	WorkerCount int `envconfig:"WORKER_COUNT" default:"5"`

	// LeaseBatchSize is the number of jobs a worker leases per poll.
	LeaseBatchSize int `envconfig:"LEASE_BATCH_SIZE" default:"1"`

	// PollInterval is the base interval for checking due jobs.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`

	// PollIntervalJitter is random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `envconfig:"POLL_INTERVAL_JITTER" default:"1s"`

	// LeaseDuration is how long a leased job stays owned without heartbeat.
	LeaseDuration time.Duration `envconfig:"LEASE_DURATION" default:"2m"`

	// JobTimeout is the soft deadline applied to each job's context.
	JobTimeout time.Duration `envconfig:"JOB_TIMEOUT" default:"5m"`

	// HeartbeatInterval is how often long-running jobs extend their lease.
	HeartbeatInterval time.Duration `envconfig:"HEARTBEAT_INTERVAL" default:"30s"`

	// ReaperInterval is how often expired leases are scanned.
	ReaperInterval time.Duration `envconfig:"REAPER_INTERVAL" default:"1m"`

	// ReaperGrace is the slack added past lease expiry before a running job
	// is treated as worker-crashed and returned to pending.
	ReaperGrace time.Duration `envconfig:"REAPER_GRACE" default:"30s"`

	// GracefulShutdownTimeout is the max wait for in-flight jobs on stop.
	GracefulShutdownTimeout time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT" default:"5m"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		LeaseBatchSize:          1,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      1 * time.Second,
		LeaseDuration:           2 * time.Minute,
		JobTimeout:              5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		ReaperInterval:          1 * time.Minute,
		ReaperGrace:             30 * time.Second,
		GracefulShutdownTimeout: 5 * time.Minute,
	}
}
