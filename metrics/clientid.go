package metrics

import "github.com/google/uuid"

// NewClientID returns a fresh UUIDv4 suitable for the uid field. Hosts
// generate one per client and persist it across sessions; the broker
// itself keeps no cross-session state.
func NewClientID() string {
	return uuid.NewString()
}
