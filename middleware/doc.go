// Package middleware provides robin.JobQueue decorators for cross-cutting
// concerns: structured logging, Prometheus metrics, and dequeue rate
// limiting. Decorators wrap any backend and compose in any order:
//
//	q := middleware.Logging(
//	    middleware.Metrics(base, prometheus.DefaultRegisterer),
//	    slog.Default(),
//	)
package middleware
