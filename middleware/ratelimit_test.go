package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/Atul9/robin"
	"github.com/Atul9/robin/memoryqueue"
)

func TestRateLimitPassesResultsThrough(t *testing.T) {
	t.Parallel()

	q := RateLimit(memoryqueue.New(), rate.Inf, 1)
	ctx := context.Background()

	job := robin.NewEnqueuedJob("send_email", "{}")
	require.NoError(t, q.Enqueue(ctx, job, robin.Main))

	got, err := q.Dequeue(ctx, time.Second, robin.Main)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestRateLimitThrottlesDequeue(t *testing.T) {
	t.Parallel()

	// Burst of one and no refill: the second dequeue blocks on the
	// limiter until its context expires.
	q := RateLimit(memoryqueue.New(), 0, 1)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, robin.NewEnqueuedJob("a", "{}"), robin.Main))
	require.NoError(t, q.Enqueue(ctx, robin.NewEnqueuedJob("b", "{}"), robin.Main))

	_, err := q.Dequeue(ctx, time.Second, robin.Main)
	require.NoError(t, err)

	limited, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = q.Dequeue(limited, time.Second, robin.Main)
	require.Error(t, err)
	assert.False(t, robin.IsTimeout(err), "limiter wait must not masquerade as a queue timeout")
}

func TestRateLimitLeavesOtherOpsAlone(t *testing.T) {
	t.Parallel()

	q := RateLimit(memoryqueue.New(), 0, 1)
	ctx := context.Background()

	// Enqueue, Size, and DeleteAll never consume tokens.
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(ctx, robin.NewEnqueuedJob("job", "{}"), robin.Main))
	}
	size, err := q.Size(ctx, robin.Main)
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)
	require.NoError(t, q.DeleteAll(ctx, robin.Main))
}
