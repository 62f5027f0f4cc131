package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/Atul9/robin"
)

// Logging wraps a queue so every operation is logged. Successful
// operations and quiet dequeue timeouts log at debug; failures log at
// error.
func Logging(next robin.JobQueue, logger *slog.Logger) robin.JobQueue {
	return &loggingQueue{next: next, logger: logger}
}

type loggingQueue struct {
	next   robin.JobQueue
	logger *slog.Logger
}

var _ robin.JobQueue = (*loggingQueue)(nil)

func (q *loggingQueue) Enqueue(ctx context.Context, job robin.EnqueuedJob, iden robin.QueueIdentifier) error {
	err := q.next.Enqueue(ctx, job, iden)
	if err != nil {
		q.logger.Error("enqueue failed",
			slog.String("job_name", job.Name),
			slog.String("queue", iden.QueueName()),
			slog.String("error", err.Error()),
		)
		return err
	}
	q.logger.Debug("job enqueued",
		slog.String("job_name", job.Name),
		slog.String("queue", iden.QueueName()),
		slog.String("retry_count", job.RetryCount.String()),
	)
	return nil
}

func (q *loggingQueue) Dequeue(ctx context.Context, timeout time.Duration, iden robin.QueueIdentifier) (robin.EnqueuedJob, error) {
	start := time.Now()
	job, err := q.next.Dequeue(ctx, timeout, iden)
	elapsed := time.Since(start)

	switch {
	case robin.IsTimeout(err):
		q.logger.Debug("dequeue timed out",
			slog.String("queue", iden.QueueName()),
			slog.Duration("waited", elapsed),
		)
	case err != nil:
		q.logger.Error("dequeue failed",
			slog.String("queue", iden.QueueName()),
			slog.String("error", err.Error()),
		)
	default:
		q.logger.Debug("job dequeued",
			slog.String("job_name", job.Name),
			slog.String("queue", iden.QueueName()),
			slog.Duration("waited", elapsed),
		)
	}
	return job, err
}

func (q *loggingQueue) DeleteAll(ctx context.Context, iden robin.QueueIdentifier) error {
	err := q.next.DeleteAll(ctx, iden)
	if err != nil {
		q.logger.Error("delete all failed",
			slog.String("queue", iden.QueueName()),
			slog.String("error", err.Error()),
		)
		return err
	}
	q.logger.Debug("queue cleared", slog.String("queue", iden.QueueName()))
	return nil
}

func (q *loggingQueue) Size(ctx context.Context, iden robin.QueueIdentifier) (int64, error) {
	n, err := q.next.Size(ctx, iden)
	if err != nil {
		q.logger.Error("size failed",
			slog.String("queue", iden.QueueName()),
			slog.String("error", err.Error()),
		)
	}
	return n, err
}
