package middleware

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Atul9/robin"
)

// Dequeue outcome labels.
const (
	outcomeJob     = "job"
	outcomeTimeout = "timeout"
	outcomeError   = "error"
)

// Metrics wraps a queue so operations are counted and timed with
// Prometheus. Collectors are registered against reg; registering two
// Metrics queues on one registry panics, the usual Prometheus contract.
func Metrics(next robin.JobQueue, reg prometheus.Registerer) robin.JobQueue {
	q := &metricsQueue{
		next: next,
		enqueues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "robin_enqueued_jobs_total",
			Help: "Jobs successfully enqueued, by logical queue.",
		}, []string{"queue"}),
		dequeues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "robin_dequeue_attempts_total",
			Help: "Dequeue attempts by logical queue and outcome (job, timeout, error).",
		}, []string{"queue", "outcome"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "robin_queue_errors_total",
			Help: "Failed queue operations, by operation.",
		}, []string{"op"}),
		dequeueWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "robin_dequeue_wait_seconds",
			Help:    "Time spent blocked in dequeue, by logical queue.",
			Buckets: prometheus.DefBuckets,
		}, []string{"queue"}),
	}
	reg.MustRegister(q.enqueues, q.dequeues, q.errors, q.dequeueWait)
	return q
}

type metricsQueue struct {
	next robin.JobQueue

	enqueues    *prometheus.CounterVec
	dequeues    *prometheus.CounterVec
	errors      *prometheus.CounterVec
	dequeueWait *prometheus.HistogramVec
}

var _ robin.JobQueue = (*metricsQueue)(nil)

func (q *metricsQueue) Enqueue(ctx context.Context, job robin.EnqueuedJob, iden robin.QueueIdentifier) error {
	err := q.next.Enqueue(ctx, job, iden)
	if err != nil {
		q.errors.WithLabelValues("enqueue").Inc()
		return err
	}
	q.enqueues.WithLabelValues(iden.QueueName()).Inc()
	return nil
}

func (q *metricsQueue) Dequeue(ctx context.Context, timeout time.Duration, iden robin.QueueIdentifier) (robin.EnqueuedJob, error) {
	start := time.Now()
	job, err := q.next.Dequeue(ctx, timeout, iden)
	q.dequeueWait.WithLabelValues(iden.QueueName()).Observe(time.Since(start).Seconds())

	switch {
	case robin.IsTimeout(err):
		q.dequeues.WithLabelValues(iden.QueueName(), outcomeTimeout).Inc()
	case err != nil:
		q.dequeues.WithLabelValues(iden.QueueName(), outcomeError).Inc()
		q.errors.WithLabelValues("dequeue").Inc()
	default:
		q.dequeues.WithLabelValues(iden.QueueName(), outcomeJob).Inc()
	}
	return job, err
}

func (q *metricsQueue) DeleteAll(ctx context.Context, iden robin.QueueIdentifier) error {
	err := q.next.DeleteAll(ctx, iden)
	if err != nil {
		q.errors.WithLabelValues("delete_all").Inc()
	}
	return err
}

func (q *metricsQueue) Size(ctx context.Context, iden robin.QueueIdentifier) (int64, error) {
	n, err := q.next.Size(ctx, iden)
	if err != nil {
		q.errors.WithLabelValues("size").Inc()
	}
	return n, err
}
