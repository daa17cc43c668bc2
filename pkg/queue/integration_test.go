package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/job"
	"github.com/outflowhq/outflow/pkg/config"
	testdb "github.com/outflowhq/outflow/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		LeaseBatchSize:          1,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		LeaseDuration:           30 * time.Second,
		JobTimeout:              30 * time.Second,
		HeartbeatInterval:       10 * time.Second,
		ReaperInterval:          time.Second,
		ReaperGrace:             time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func enqueueTestJob(ctx context.Context, t *testing.T, s *Service, kind job.Kind, priority int) *ent.Job {
	t.Helper()
	j, err := s.Enqueue(ctx, EnqueueInput{
		TenantID: "tenant-1",
		Kind:     kind,
		Payload:  map[string]interface{}{"k": "v"},
		Priority: priority,
	})
	require.NoError(t, err)
	return j
}

func TestLeaseClaimsPendingJob(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	j := enqueueTestJob(ctx, t, svc, job.KindCleanup, 0)

	claimed, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	assert.Equal(t, j.ID, claimed.ID)
	assert.Equal(t, job.StatusRunning, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts)
	require.NotNil(t, claimed.LeaseUntil)
	assert.True(t, claimed.LeaseUntil.After(time.Now()))
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "w-0", *claimed.WorkerID)

	// Nothing else to lease.
	_, err = svc.Lease(ctx, "w-1")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestLeaseHonoursPriorityAndDueTime(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	low := enqueueTestJob(ctx, t, svc, job.KindCleanup, 9)
	high := enqueueTestJob(ctx, t, svc, job.KindPollReplies, 1)

	// A future job must not be leased even at top priority.
	_, err := svc.Enqueue(ctx, EnqueueInput{
		Kind:     job.KindCampaignStep,
		Priority: 1,
		RunAfter: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	first, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	assert.Equal(t, high.ID, first.ID)

	second, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	assert.Equal(t, low.ID, second.ID)

	_, err = svc.Lease(ctx, "w-0")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestConcurrentLeaseNoDoubleClaim(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	const jobCount = 10
	for i := 0; i < jobCount; i++ {
		enqueueTestJob(ctx, t, svc, job.KindCleanup, 0)
	}

	var mu sync.Mutex
	claimed := make(map[string]int)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				j, err := svc.Lease(ctx, "w")
				if errors.Is(err, ErrNoJobsAvailable) {
					return
				}
				require.NoError(t, err)
				mu.Lock()
				claimed[j.ID]++
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, claimed, jobCount)
	for id, n := range claimed {
		assert.Equal(t, 1, n, "job %s claimed %d times", id, n)
	}
}

func TestFailRetriesWithBackoffThenFailed(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	enqueueTestJob(ctx, t, svc, job.KindCampaignStep, 0)

	// Attempt 1: fails, returns to pending with ~60s backoff.
	j, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, j, errors.New("transient send failure")))

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status)
	assert.WithinDuration(t, time.Now().Add(60*time.Second), reloaded.RunAfter, 5*time.Second)
	require.NotNil(t, reloaded.Error)
	assert.Contains(t, *reloaded.Error, "transient send failure")

	// Exhaust the remaining attempts; the default max is 3.
	for attempt := 2; attempt <= 3; attempt++ {
		require.NoError(t, dbClient.Client.Job.UpdateOneID(j.ID).SetRunAfter(time.Now().Add(-time.Second)).Exec(ctx))
		j, err = svc.Lease(ctx, "w-0")
		require.NoError(t, err)
		assert.Equal(t, attempt, j.Attempts)
		require.NoError(t, svc.Fail(ctx, j, errors.New("still failing")))
	}

	// Plain retry exhaustion is failed, not dead: dead is reserved for
	// poison jobs (Fatal errors and Kill).
	reloaded, err = dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)

	// Terminal jobs are never leased again.
	_, err = svc.Lease(ctx, "w-0")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestFailHonoursRetryAfter(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	enqueueTestJob(ctx, t, svc, job.KindCampaignStep, 0)

	j, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)

	// Quota errors carry their own wait.
	require.NoError(t, svc.Fail(ctx, j, RetryAfter(15*time.Minute, errors.New("daily quota exceeded"))))

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), reloaded.RunAfter, 5*time.Second)
}

func TestFailFatalGoesStraightToDead(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	enqueueTestJob(ctx, t, svc, job.KindCampaignStep, 0)

	j, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	require.Less(t, j.Attempts, j.MaxAttempts)

	require.NoError(t, svc.Fail(ctx, j, Fatal(errors.New("auth failed for channel"))))

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusDead, reloaded.Status)
	assert.Equal(t, 1, reloaded.Attempts)
}

func TestCompleteClearsLease(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	enqueueTestJob(ctx, t, svc, job.KindCleanup, 0)

	j, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, j.ID))

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, reloaded.Status)
	assert.Nil(t, reloaded.LeaseUntil)
	require.NotNil(t, reloaded.CompletedAt)
}

func TestPoolProcessesJobsToCompletion(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := intTestQueueConfig()
	svc := NewService(dbClient.Client, cfg)

	var processed atomic.Int32
	pool := NewWorkerPool("test-replica", svc, cfg)
	pool.Register(string(job.KindCleanup), HandlerFunc(func(ctx context.Context, j *ent.Job) error {
		processed.Add(1)
		return nil
	}))

	for i := 0; i < 5; i++ {
		enqueueTestJob(ctx, t, svc, job.KindCleanup, 0)
	}

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "all jobs processed", func() bool {
		return processed.Load() == 5
	})

	awaitCondition(t, 5*time.Second, 50*time.Millisecond, "all jobs completed in DB", func() bool {
		n, err := dbClient.Client.Job.Query().Where(job.StatusEQ(job.StatusCompleted)).Count(ctx)
		return err == nil && n == 5
	})
}

func TestPoolRoutesUnregisteredKindToFailure(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := intTestQueueConfig()
	svc := NewService(dbClient.Client, cfg)

	pool := NewWorkerPool("test-replica", svc, cfg)

	j := enqueueTestJob(ctx, t, svc, job.KindWebhook, 0)

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "job left running state", func() bool {
		reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
		return err == nil && reloaded.Status == job.StatusPending
	})

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Error)
	assert.Contains(t, *reloaded.Error, "no handler registered")
}

func TestReaperReturnsExpiredLeaseToQueue(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := intTestQueueConfig()
	cfg.LeaseDuration = 100 * time.Millisecond
	cfg.ReaperGrace = 100 * time.Millisecond
	cfg.WorkerCount = 0 // reaper only; no workers competing for the job
	svc := NewService(dbClient.Client, cfg)

	enqueueTestJob(ctx, t, svc, job.KindCampaignStep, 0)

	// Simulate a crashed worker: claim then never heartbeat or complete.
	j, err := svc.Lease(ctx, "crashed-worker")
	require.NoError(t, err)

	pool := NewWorkerPool("test-replica", svc, cfg)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "expired lease recovered", func() bool {
		reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
		return err == nil && reloaded.Status == job.StatusPending
	})

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.LeaseUntil)
	assert.Nil(t, reloaded.WorkerID)
	// The crashed attempt stays counted.
	assert.Equal(t, 1, reloaded.Attempts)
}

func TestReaperMarksExhaustedExpiredLeaseFailed(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	cfg := intTestQueueConfig()
	cfg.LeaseDuration = 100 * time.Millisecond
	cfg.ReaperGrace = 100 * time.Millisecond
	cfg.WorkerCount = 0
	svc := NewService(dbClient.Client, cfg)

	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:    "tenant-1",
		Kind:        job.KindCampaignStep,
		MaxAttempts: 1,
	})
	require.NoError(t, err)

	// The crashed worker's claim spent the only attempt.
	j, err := svc.Lease(ctx, "crashed-worker")
	require.NoError(t, err)
	require.Equal(t, j.Attempts, j.MaxAttempts)

	pool := NewWorkerPool("test-replica", svc, cfg)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "exhausted lease marked failed", func() bool {
		reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
		return err == nil && reloaded.Status == job.StatusFailed
	})
}

func TestRecoverStartupLeases(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	enqueueTestJob(ctx, t, svc, job.KindPollReplies, 0)
	j, err := svc.Lease(ctx, "replica-a-worker-0")
	require.NoError(t, err)

	// Another replica's lease must not be touched.
	enqueueTestJob(ctx, t, svc, job.KindPollReplies, 0)
	other, err := svc.Lease(ctx, "replica-b-worker-0")
	require.NoError(t, err)

	require.NoError(t, RecoverStartupLeases(ctx, dbClient.Client, "replica-a"))

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, reloaded.Status)

	untouched, err := dbClient.Client.Job.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
}

func TestRecoverStartupLeasesMarksExhaustedJobFailed(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	_, err := svc.Enqueue(ctx, EnqueueInput{
		TenantID:    "tenant-1",
		Kind:        job.KindCampaignStep,
		MaxAttempts: 1,
	})
	require.NoError(t, err)

	j, err := svc.Lease(ctx, "replica-a-worker-0")
	require.NoError(t, err)
	require.Equal(t, j.Attempts, j.MaxAttempts)

	require.NoError(t, RecoverStartupLeases(ctx, dbClient.Client, "replica-a"))

	reloaded, err := dbClient.Client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)
}

func TestPurgeTerminalJobs(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewService(dbClient.Client, intTestQueueConfig())

	// One completed job, one pending job. Only terminal jobs may be purged.
	old := enqueueTestJob(ctx, t, svc, job.KindCleanup, 0)
	j, err := svc.Lease(ctx, "w-0")
	require.NoError(t, err)
	require.NoError(t, svc.Complete(ctx, j.ID))

	// A failed job is terminal and purgeable too.
	failed := enqueueTestJob(ctx, t, svc, job.KindCampaignStep, 0)
	require.NoError(t, dbClient.Client.Job.UpdateOneID(failed.ID).
		SetStatus(job.StatusFailed).
		SetAttempts(3).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	keep := enqueueTestJob(ctx, t, svc, job.KindCleanup, 0)

	n, err := svc.PurgeTerminal(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = dbClient.Client.Job.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = dbClient.Client.Job.Get(ctx, failed.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = dbClient.Client.Job.Get(ctx, keep.ID)
	assert.NoError(t, err)
}
