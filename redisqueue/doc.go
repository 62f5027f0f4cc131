// Package redisqueue implements robin.JobQueue over Redis lists. Jobs are
// stored as serialized strings on one list per logical queue; enqueue is
// RPUSH, dequeue is BLPOP with a bounded wait, so each job is delivered
// to at most one consumer even across independent connections.
//
// Usage:
//
//	q, err := redisqueue.New(ctx, redisqueue.Config{
//	    URL:       "redis://127.0.0.1:6379/0",
//	    Namespace: "myapp",
//	})
//	if err != nil { ... }
//
// A Queue performs no internal reconnection: if the connection fails,
// establishing a fresh Queue is the caller's concern.
package redisqueue
