package robin

import "errors"

var (
	// ErrDequeueTimeout reports that no job became available within the
	// caller-supplied wait window. It is an expected outcome, not a
	// failure; consumers typically loop on it.
	ErrDequeueTimeout = errors.New("robin: dequeue timed out")

	// ErrUnexpectedReply reports that the backend answered a dequeue with
	// a reply shape this library does not understand.
	ErrUnexpectedReply = errors.New("robin: unexpected backend reply")
)

// IsTimeout reports whether err is the dequeue-timeout outcome, so callers
// can distinguish "nothing to do" from "something went wrong".
func IsTimeout(err error) bool {
	return errors.Is(err, ErrDequeueTimeout)
}
