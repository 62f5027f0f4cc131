package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atul9/robin"
	"github.com/Atul9/robin/memoryqueue"
)

func TestMetricsCountsOperations(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	q := Metrics(memoryqueue.New(), reg).(*metricsQueue)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, robin.NewEnqueuedJob("send_email", "{}"), robin.Main))

	_, err := q.Dequeue(ctx, time.Second, robin.Main)
	require.NoError(t, err)

	_, err = q.Dequeue(ctx, 10*time.Millisecond, robin.Main)
	require.True(t, robin.IsTimeout(err))

	assert.Equal(t, 1.0, testutil.ToFloat64(q.enqueues.WithLabelValues("main")))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.dequeues.WithLabelValues("main", outcomeJob)))
	assert.Equal(t, 1.0, testutil.ToFloat64(q.dequeues.WithLabelValues("main", outcomeTimeout)))
	assert.Equal(t, 0.0, testutil.ToFloat64(q.dequeues.WithLabelValues("main", outcomeError)))
}

func TestMetricsPassesResultsThrough(t *testing.T) {
	t.Parallel()

	q := Metrics(memoryqueue.New(), prometheus.NewRegistry())
	ctx := context.Background()

	job := robin.NewEnqueuedJob("send_email", `{"to":"a@b.com"}`)
	require.NoError(t, q.Enqueue(ctx, job, robin.Main))

	size, err := q.Size(ctx, robin.Main)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	got, err := q.Dequeue(ctx, time.Second, robin.Main)
	require.NoError(t, err)
	assert.Equal(t, job, got)

	require.NoError(t, q.DeleteAll(ctx, robin.Main))
}
