package robin

import (
	"context"
	"time"
)

// JobQueue is the backend-agnostic contract every queue implementation
// satisfies. Producers, consumers, and the external worker runtime depend
// on this interface only, never on a concrete backend.
//
// Construction is backend-specific (for example redisqueue.New), selected
// at composition time.
//
// A single queue value issues one synchronous backend exchange per call
// and is not safe for concurrent use; callers needing concurrency use one
// queue instance per concurrent caller. Distinct instances may safely
// share a backend: the backend's atomic pop guarantees each job is
// delivered to at most one consumer.
type JobQueue interface {
	// Enqueue appends the job to the tail of the named logical queue.
	// Once it returns nil the job is durably stored from the backend's
	// perspective. It fails on serialization or backend I/O errors.
	Enqueue(ctx context.Context, job EnqueuedJob, iden QueueIdentifier) error

	// Dequeue removes and returns the job at the head of the named
	// logical queue, blocking up to timeout if the queue is empty. The
	// outcome is three-way:
	//
	//   - (job, nil): the head job, atomically removed.
	//   - (zero, ErrDequeueTimeout): no job arrived within timeout.
	//   - (zero, other error): backend I/O or payload decode failure.
	//
	// There is no cancellation beyond the timeout and ctx; a caller
	// wanting earlier wakeup uses a shorter timeout and loops.
	Dequeue(ctx context.Context, timeout time.Duration, iden QueueIdentifier) (EnqueuedJob, error)

	// DeleteAll removes every pending job from the named logical queue.
	// Irreversible. On error the queue's state is backend-dependent.
	DeleteAll(ctx context.Context, iden QueueIdentifier) error

	// Size returns the number of jobs currently pending in the named
	// logical queue. Advisory only: it may be stale immediately under
	// concurrent producers or consumers.
	Size(ctx context.Context, iden QueueIdentifier) (int64, error)
}
