// Package robin provides a minimal, backend-pluggable durable job queue.
// Producers serialize named jobs with opaque arguments into a logical
// queue; consumers dequeue them with a bounded blocking wait; failed jobs
// carry a retry counter and are routed to a secondary queue by the caller.
//
// Robin is a library, not a runtime. It defines the queue contract
// (JobQueue), the job data model (EnqueuedJob, RetryCount), the logical
// queue namespacing scheme (QueueIdentifier), and the serialization codec.
// Concrete backends live in subpackages (redisqueue, memoryqueue). Job
// execution, worker pools, and scheduling are external collaborators that
// call into this interface.
//
// # Quick Start
//
//	q, err := redisqueue.New(ctx, redisqueue.DefaultConfig())
//	if err != nil { ... }
//
//	job := robin.NewEnqueuedJob("send_email", `{"to":"a@b.com"}`)
//	if err := q.Enqueue(ctx, job, robin.Main); err != nil { ... }
//
//	got, err := q.Dequeue(ctx, 5*time.Second, robin.Main)
//	switch {
//	case errors.Is(err, robin.ErrDequeueTimeout):
//	    // no work available right now, loop again
//	case err != nil:
//	    // backend or payload failure
//	default:
//	    // process got
//	}
//
// # Retry Policy
//
// Robin never executes retries itself. On handler failure the external
// runtime produces a copy of the job with an incremented retry count
// (EnqueuedJob.WithRetryIncremented), checks RetryCount.LimitReached
// against its Config, and either re-enqueues into robin.Retry or abandons
// the job. Robin never inspects job names or arguments.
package robin
