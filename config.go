package robin

// Config holds the configuration read by the queue core. Backend-specific
// settings (address, namespace) live with each backend package.
type Config struct {
	// RetryCountLimit is the number of times a failed job may be retried
	// before RetryCount.LimitReached reports true. A job can therefore
	// execute RetryCountLimit+1 times in total: the original attempt plus
	// one attempt per retry.
	RetryCountLimit uint32
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RetryCountLimit: 10,
	}
}
