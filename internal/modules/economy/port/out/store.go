package out

import "context"

// Storage keys of the three persisted records.
const (
	KeyChores   = "choreTracker.choreNames"
	KeySessions = "choreTracker.sessions"
	KeyStats    = "choreTracker.stats"
)

// KeyValueStore holds raw JSON records. Get reports ok=false for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
