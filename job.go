package robin

// EnqueuedJob is the unit of work that gets serialized and stored in a
// queue. Name identifies the handler on the consuming side; Args is an
// opaque serialized payload meaningful only to that handler.
//
// A job is immutable after construction. Retrying produces a copy with an
// incremented retry count (WithRetryIncremented); Name and Args are never
// changed for the life of the job.
type EnqueuedJob struct {
	Name       string     `json:"name" msgpack:"name"`
	Args       string     `json:"args" msgpack:"args"`
	RetryCount RetryCount `json:"retry_count" msgpack:"retry_count"`
}

// NewEnqueuedJob builds a job that has never been retried.
func NewEnqueuedJob(name, args string) EnqueuedJob {
	return EnqueuedJob{
		Name:       name,
		Args:       args,
		RetryCount: NeverRetried(),
	}
}

// WithRetryIncremented returns a copy of the job with the retry count
// advanced by one. The receiver is left untouched.
func (j EnqueuedJob) WithRetryIncremented() EnqueuedJob {
	return EnqueuedJob{
		Name:       j.Name,
		Args:       j.Args,
		RetryCount: j.RetryCount.Increment(),
	}
}
