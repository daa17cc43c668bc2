package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendQueueSerialisesConcurrentSends(t *testing.T) {
	const gap = 50 * time.Millisecond
	q := newSendQueue(gap)
	defer q.Close()

	var (
		mu    sync.Mutex
		times []time.Time
	)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Do(context.Background(), func(ctx context.Context) (string, error) {
				mu.Lock()
				times = append(times, time.Now())
				mu.Unlock()
				return "id", nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, times, 5)
	for i := 1; i < len(times); i++ {
		delta := times[i].Sub(times[i-1])
		assert.GreaterOrEqual(t, delta, gap-5*time.Millisecond,
			"sends %d and %d were only %s apart", i-1, i, delta)
	}
}

func TestSendQueuePreservesFIFOOrder(t *testing.T) {
	q := newSendQueue(time.Millisecond)
	defer q.Close()

	var (
		mu    sync.Mutex
		order []int
	)

	// Park the consumer on a slow first job so the rest queue up in order.
	release := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		_, err := q.Do(context.Background(), func(ctx context.Context) (string, error) {
			<-release
			mu.Lock()
			order = append(order, 0)
			mu.Unlock()
			return "", nil
		})
		first <- err
	}()

	time.Sleep(20 * time.Millisecond)

	var wg sync.WaitGroup
	results := make([]error, 3)
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		n := i
		go func() {
			defer wg.Done()
			_, err := q.Do(context.Background(), func(ctx context.Context) (string, error) {
				mu.Lock()
				order = append(order, n)
				mu.Unlock()
				return "", nil
			})
			results[n-1] = err
		}()
		// Stagger enqueues so arrival order is deterministic.
		time.Sleep(10 * time.Millisecond)
	}

	close(release)
	wg.Wait()
	require.NoError(t, <-first)
	for _, err := range results {
		require.NoError(t, err)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestSendQueueReturnsRunResult(t *testing.T) {
	q := newSendQueue(0)
	defer q.Close()

	id, err := q.Do(context.Background(), func(ctx context.Context) (string, error) {
		return "ext-42", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-42", id)
}

func TestSendQueueHonoursCallerCancellation(t *testing.T) {
	q := newSendQueue(time.Millisecond)
	defer q.Close()

	// Occupy the consumer.
	release := make(chan struct{})
	go func() {
		_, _ = q.Do(context.Background(), func(ctx context.Context) (string, error) {
			<-release
			return "", nil
		})
	}()
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := q.Do(ctx, func(ctx context.Context) (string, error) {
		t.Error("cancelled job must not run")
		return "", nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}

func TestSendQueueCloseFailsQueuedJobs(t *testing.T) {
	q := newSendQueue(time.Millisecond)

	release := make(chan struct{})
	go func() {
		_, _ = q.Do(context.Background(), func(ctx context.Context) (string, error) {
			<-release
			return "", nil
		})
	}()
	time.Sleep(20 * time.Millisecond)

	q.Close()
	close(release)

	_, err := q.Do(context.Background(), func(ctx context.Context) (string, error) {
		return "", nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSendQueueCloseUnblocksWaitingCaller(t *testing.T) {
	q := newSendQueue(time.Millisecond)

	// Occupy the consumer so the next job stays buffered, unstarted.
	release := make(chan struct{})
	go func() {
		_, _ = q.Do(context.Background(), func(ctx context.Context) (string, error) {
			<-release
			return "", nil
		})
	}()
	time.Sleep(20 * time.Millisecond)

	waiting := make(chan error, 1)
	go func() {
		_, err := q.Do(context.Background(), func(ctx context.Context) (string, error) {
			t.Error("job buffered at close must not run")
			return "", nil
		})
		waiting <- err
	}()
	time.Sleep(20 * time.Millisecond)

	// Close while the second caller is parked waiting for its result; it must
	// fail promptly instead of hanging until its context deadline.
	q.Close()
	close(release)

	select {
	case err := <-waiting:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("caller with a queued job was not released by Close")
	}
}
