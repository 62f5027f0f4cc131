package robin

// QueueIdentifier selects one of the fixed logical queues. Queues are
// distinguished by purpose, not by backend technology: every identifier
// resolves to exactly one backend key for a given namespace, independent
// of call order or backend state.
type QueueIdentifier int

const (
	// Main is the queue all new jobs are put into.
	Main QueueIdentifier = iota

	// Retry holds jobs that failed on the main queue and are waiting to
	// be retried by the external runtime.
	Retry
)

// Identifiers returns every logical queue, in declaration order.
func Identifiers() []QueueIdentifier {
	return []QueueIdentifier{Main, Retry}
}

// QueueName returns the backend key suffix for the queue.
func (iden QueueIdentifier) QueueName() string {
	switch iden {
	case Main:
		return "main"
	case Retry:
		return "retry"
	default:
		return "unknown"
	}
}

func (iden QueueIdentifier) String() string {
	switch iden {
	case Main:
		return "Main"
	case Retry:
		return "Retry"
	default:
		return "Unknown"
	}
}
