// Package memoryqueue implements robin.JobQueue entirely in memory.
// Intended for unit testing and development; nothing is durable across
// process restarts. Unlike backend connections, a memory Queue is safe
// for concurrent use, so one instance can serve a whole test.
package memoryqueue

import (
	"context"
	"sync"
	"time"

	"github.com/Atul9/robin"
)

// Compile-time interface check.
var _ robin.JobQueue = (*Queue)(nil)

// Queue is an in-memory robin.JobQueue.
type Queue struct {
	mu      sync.Mutex
	jobs    map[robin.QueueIdentifier][]robin.EnqueuedJob
	waiters map[robin.QueueIdentifier]chan struct{}
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{
		jobs:    make(map[robin.QueueIdentifier][]robin.EnqueuedJob),
		waiters: make(map[robin.QueueIdentifier]chan struct{}),
	}
	for _, iden := range robin.Identifiers() {
		q.waiters[iden] = make(chan struct{}, 1)
	}
	return q
}

// Enqueue appends the job to the tail of the logical queue and wakes one
// blocked consumer, if any.
func (q *Queue) Enqueue(_ context.Context, job robin.EnqueuedJob, iden robin.QueueIdentifier) error {
	q.mu.Lock()
	q.jobs[iden] = append(q.jobs[iden], job)
	q.mu.Unlock()

	q.signal(iden)
	return nil
}

// Dequeue pops the head of the logical queue, blocking up to timeout if
// it is empty. Returns robin.ErrDequeueTimeout when nothing arrives in
// time, or ctx.Err() if the context is cancelled first.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration, iden robin.QueueIdentifier) (robin.EnqueuedJob, error) {
	deadline := time.Now().Add(timeout)

	for {
		q.mu.Lock()
		if jobs := q.jobs[iden]; len(jobs) > 0 {
			job := jobs[0]
			q.jobs[iden] = jobs[1:]
			remaining := len(q.jobs[iden])
			q.mu.Unlock()

			// Pass the wakeup along so other waiters see the rest.
			if remaining > 0 {
				q.signal(iden)
			}
			return job, nil
		}
		ch := q.waiters[iden]
		q.mu.Unlock()

		wait := time.Until(deadline)
		if wait <= 0 {
			return robin.EnqueuedJob{}, robin.ErrDequeueTimeout
		}

		timer := time.NewTimer(wait)
		select {
		case <-ch:
			timer.Stop()
		case <-timer.C:
			return robin.EnqueuedJob{}, robin.ErrDequeueTimeout
		case <-ctx.Done():
			timer.Stop()
			return robin.EnqueuedJob{}, ctx.Err()
		}
	}
}

// DeleteAll drops every pending job from the logical queue.
func (q *Queue) DeleteAll(_ context.Context, iden robin.QueueIdentifier) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.jobs, iden)
	return nil
}

// Size returns the number of pending jobs in the logical queue.
func (q *Queue) Size(_ context.Context, iden robin.QueueIdentifier) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.jobs[iden])), nil
}

// signal wakes at most one consumer blocked on the queue. The channel is
// buffered so a wakeup sent with no one waiting is kept for the next
// Dequeue rather than lost.
func (q *Queue) signal(iden robin.QueueIdentifier) {
	select {
	case q.waiters[iden] <- struct{}{}:
	default:
	}
}
