package sessions

import (
	"context"
	"sync"
	"time"
)

// sendQueue serialises outbound sends for one session. WhatsApp Web in
// particular cannot run two sends concurrently, and both platforms want
// pacing: a single consumer goroutine executes sends FIFO with a minimum
// gap between consecutive sends.
type sendQueue struct {
	jobs      chan sendJob
	minGap    time.Duration
	closeOnce sync.Once
	done      chan struct{}
}

type sendJob struct {
	ctx    context.Context
	run    func(ctx context.Context) (string, error)
	result chan sendResult
}

type sendResult struct {
	externalID string
	err        error
}

// newSendQueue starts the consumer goroutine.
func newSendQueue(minGap time.Duration) *sendQueue {
	q := &sendQueue{
		jobs:   make(chan sendJob, 64),
		minGap: minGap,
		done:   make(chan struct{}),
	}
	go q.consume()
	return q
}

// Do enqueues run and waits for its slot and result. Callers waiting for a
// slot honour ctx cancellation; a send already started runs to completion.
func (q *sendQueue) Do(ctx context.Context, run func(ctx context.Context) (string, error)) (string, error) {
	job := sendJob{
		ctx:    ctx,
		run:    run,
		result: make(chan sendResult, 1),
	}

	select {
	case q.jobs <- job:
	case <-ctx.Done():
		return "", ctx.Err()
	case <-q.done:
		return "", context.Canceled
	}

	select {
	case res := <-job.result:
		return res.externalID, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-q.done:
		// The consumer exited; a job still buffered in q.jobs would never
		// get a result. A result that raced the close still wins.
		select {
		case res := <-job.result:
			return res.externalID, res.err
		default:
			return "", context.Canceled
		}
	}
}

// consume is the single consumer loop enforcing the inter-send gap.
func (q *sendQueue) consume() {
	var lastSend time.Time

	for {
		// Checked first so a close never loses the race against a buffered
		// job: nothing new starts once Close has been called.
		select {
		case <-q.done:
			return
		default:
		}

		select {
		case <-q.done:
			return
		case job := <-q.jobs:
			// Caller may have given up while queued.
			if job.ctx.Err() != nil {
				job.result <- sendResult{err: job.ctx.Err()}
				continue
			}

			if wait := q.minGap - time.Since(lastSend); wait > 0 && !lastSend.IsZero() {
				select {
				case <-time.After(wait):
				case <-q.done:
					job.result <- sendResult{err: context.Canceled}
					return
				case <-job.ctx.Done():
					job.result <- sendResult{err: job.ctx.Err()}
					continue
				}
			}

			externalID, err := job.run(job.ctx)
			lastSend = time.Now()
			job.result <- sendResult{externalID: externalID, err: err}
		}
	}
}

// Close stops the consumer. Queued jobs not yet started fail with Canceled
// via the done channel in Do.
func (q *sendQueue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
