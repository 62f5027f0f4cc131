package redisqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Atul9/robin"
)

// Compile-time interface check.
var _ robin.JobQueue = (*Queue)(nil)

// DefaultURL is the Redis address used when Config.URL is empty.
const DefaultURL = "redis://127.0.0.1:6379/0"

// DefaultNamespace is the key prefix used when Config.Namespace is empty.
const DefaultNamespace = "robin_"

// Config holds the arguments required to construct a Queue.
type Config struct {
	// URL is the Redis connection address, in redis:// form.
	URL string

	// Namespace is the key prefix isolating this application's queues
	// from others sharing the same Redis instance.
	Namespace string
}

// DefaultConfig returns a Config pointing at a local Redis with the
// default namespace.
func DefaultConfig() Config {
	return Config{
		URL:       DefaultURL,
		Namespace: DefaultNamespace,
	}
}

// Option configures the Queue.
type Option func(*Queue)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(q *Queue) { q.logger = l }
}

// WithCodec sets the job serialization codec. Defaults to JSON.
func WithCodec(c robin.Codec) Option {
	return func(q *Queue) { q.codec = c }
}

// Queue implements robin.JobQueue backed by Redis lists.
//
// A Queue issues one synchronous Redis exchange per operation and holds
// no state beyond its connection. It is not safe for concurrent use by
// multiple callers; use one Queue per concurrent caller.
type Queue struct {
	client    goredis.Cmdable
	namespace string
	codec     robin.Codec
	logger    *slog.Logger
}

// New dials Redis from the given config and verifies the connection with
// a ping. An empty URL or Namespace falls back to the defaults. It fails
// if the address cannot be parsed or the backend is unreachable.
func New(ctx context.Context, cfg Config, opts ...Option) (*Queue, error) {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	redisOpts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("robin/redisqueue: parse url %q: %w", cfg.URL, err)
	}
	client := goredis.NewClient(redisOpts)

	q := NewWithClient(client, cfg.Namespace, opts...)
	if err := q.Ping(ctx); err != nil {
		return nil, fmt.Errorf("robin/redisqueue: connect %q: %w", cfg.URL, err)
	}
	return q, nil
}

// NewWithClient wraps an existing Redis client. The caller owns the client
// lifecycle; the Queue never closes it.
func NewWithClient(client goredis.Cmdable, namespace string, opts ...Option) *Queue {
	q := &Queue{
		client:    client,
		namespace: namespace,
		codec:     &robin.JSONCodec{},
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// Ping verifies the Redis connection is alive.
func (q *Queue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

// Enqueue serializes the job and appends it to the tail of the queue's
// list. On success the list length has grown by exactly one.
func (q *Queue) Enqueue(ctx context.Context, job robin.EnqueuedJob, iden robin.QueueIdentifier) error {
	data, err := q.codec.Encode(job)
	if err != nil {
		return fmt.Errorf("robin/redisqueue: encode job %q: %w", job.Name, err)
	}
	if err := q.client.RPush(ctx, q.key(iden), data).Err(); err != nil {
		return fmt.Errorf("robin/redisqueue: enqueue rpush: %w", err)
	}

	q.logger.Debug("job enqueued",
		slog.String("job_name", job.Name),
		slog.String("queue", iden.QueueName()),
	)
	return nil
}

// Dequeue pops the head of the queue's list, blocking up to timeout if it
// is empty. Redis removes the element atomically, so each job goes to at
// most one consumer. A quiet timeout window yields robin.ErrDequeueTimeout;
// an undecodable payload or any other failure yields a wrapped error.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration, iden robin.QueueIdentifier) (robin.EnqueuedJob, error) {
	reply, err := q.client.BLPop(ctx, timeout, q.key(iden)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return robin.EnqueuedJob{}, robin.ErrDequeueTimeout
		}
		return robin.EnqueuedJob{}, fmt.Errorf("robin/redisqueue: dequeue blpop: %w", err)
	}

	// BLPOP replies with the pair (list key, payload).
	if len(reply) != 2 {
		return robin.EnqueuedJob{}, fmt.Errorf("%w: blpop returned %d elements", robin.ErrUnexpectedReply, len(reply))
	}

	job, err := q.codec.Decode([]byte(reply[1]))
	if err != nil {
		return robin.EnqueuedJob{}, fmt.Errorf("robin/redisqueue: decode job payload: %w", err)
	}
	return job, nil
}

// DeleteAll removes every pending job from the queue by deleting its list
// key.
func (q *Queue) DeleteAll(ctx context.Context, iden robin.QueueIdentifier) error {
	if err := q.client.Del(ctx, q.key(iden)).Err(); err != nil {
		return fmt.Errorf("robin/redisqueue: delete all: %w", err)
	}
	return nil
}

// Size returns the length of the queue's list.
func (q *Queue) Size(ctx context.Context, iden robin.QueueIdentifier) (int64, error) {
	n, err := q.client.LLen(ctx, q.key(iden)).Result()
	if err != nil {
		return 0, fmt.Errorf("robin/redisqueue: size llen: %w", err)
	}
	return n, nil
}

func (q *Queue) key(iden robin.QueueIdentifier) string {
	return queueKey(q.namespace, iden)
}
