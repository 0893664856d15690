package channel

import (
	"context"
	"fmt"
	"sync"
)

// Broadcast publishes structured payloads verbatim on a broadcast bus,
// keyed by topic. It is the client channel used by webextension add-ons.
type Broadcast struct {
	topic string
	bus   *Bus

	mu     sync.Mutex
	closed bool
}

// NewBroadcast creates a broadcast channel for topic on bus.
func NewBroadcast(topic string, bus *Bus) (*Broadcast, error) {
	if bus == nil {
		return nil, fmt.Errorf("broadcast bus unavailable")
	}
	return &Broadcast{topic: topic, bus: bus}, nil
}

// Topic returns the broadcast channel name.
func (b *Broadcast) Topic() string { return b.topic }

// Publish posts payload to all subscribers of the topic. The payload is
// delivered as-is, no string serialization happens on this path.
func (b *Broadcast) Publish(_ context.Context, payload any) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return fmt.Errorf("broadcast channel %q is closed", b.topic)
	}
	b.bus.Publish(b.topic, payload)
	return nil
}

// Close marks the channel closed. The shared bus stays up for other
// channels on the same topic.
func (b *Broadcast) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
