package redisqueue

import "github.com/Atul9/robin"

// Redis key naming for robin queues. Each logical queue lives on one list
// keyed by the configured namespace so applications sharing a Redis
// instance stay isolated.

// queueKey returns the list key for a logical queue: {namespace}_{suffix}.
func queueKey(namespace string, iden robin.QueueIdentifier) string {
	return namespace + "_" + iden.QueueName()
}
