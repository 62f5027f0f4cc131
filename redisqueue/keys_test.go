package redisqueue

import (
	"testing"

	"github.com/Atul9/robin"
)

func TestQueueKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		namespace string
		iden      robin.QueueIdentifier
		want      string
	}{
		{"robin_", robin.Main, "robin__main"},
		{"robin_", robin.Retry, "robin__retry"},
		{"myapp", robin.Main, "myapp_main"},
		{"myapp", robin.Retry, "myapp_retry"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := queueKey(tt.namespace, tt.iden); got != tt.want {
				t.Fatalf("queueKey(%q, %v) = %q, want %q", tt.namespace, tt.iden, got, tt.want)
			}
			// Pure function: the same inputs always derive the same key.
			if again := queueKey(tt.namespace, tt.iden); again != tt.want {
				t.Fatalf("queueKey not stable: %q then %q", tt.want, again)
			}
		})
	}
}

func TestQueueKeysNeverCollide(t *testing.T) {
	t.Parallel()

	seen := make(map[string]robin.QueueIdentifier)
	for _, iden := range robin.Identifiers() {
		key := queueKey("ns", iden)
		if prev, dup := seen[key]; dup {
			t.Fatalf("%v and %v derive the same key %q", prev, iden, key)
		}
		seen[key] = iden
	}
}
