package middleware

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/Atul9/robin"
)

// RateLimit wraps a queue so dequeues are throttled by a token bucket of
// the given sustained rate and burst. Consumers polling in a tight loop
// then pull work no faster than the limit allows. Waiting for a token is
// bounded by ctx, not by the dequeue timeout, which only governs the
// backend wait. Other operations pass through unthrottled.
func RateLimit(next robin.JobQueue, limit rate.Limit, burst int) robin.JobQueue {
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedQueue{next: next, limiter: rate.NewLimiter(limit, burst)}
}

type rateLimitedQueue struct {
	next    robin.JobQueue
	limiter *rate.Limiter
}

var _ robin.JobQueue = (*rateLimitedQueue)(nil)

func (q *rateLimitedQueue) Enqueue(ctx context.Context, job robin.EnqueuedJob, iden robin.QueueIdentifier) error {
	return q.next.Enqueue(ctx, job, iden)
}

func (q *rateLimitedQueue) Dequeue(ctx context.Context, timeout time.Duration, iden robin.QueueIdentifier) (robin.EnqueuedJob, error) {
	if err := q.limiter.Wait(ctx); err != nil {
		return robin.EnqueuedJob{}, err
	}
	return q.next.Dequeue(ctx, timeout, iden)
}

func (q *rateLimitedQueue) DeleteAll(ctx context.Context, iden robin.QueueIdentifier) error {
	return q.next.DeleteAll(ctx, iden)
}

func (q *rateLimitedQueue) Size(ctx context.Context, iden robin.QueueIdentifier) (int64, error) {
	return q.next.Size(ctx, iden)
}
