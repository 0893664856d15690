package channel

import "sync"

// defaultBuffer is the per-subscriber queue depth on a broadcast bus.
const defaultBuffer = 16

// Bus is an in-process broadcast bus: subscribers register per topic and
// every publish is delivered to all current subscribers of that topic.
// Delivery is non-blocking; a subscriber that stops draining its queue
// loses messages rather than stalling the publisher.
type Bus struct {
	mu     sync.Mutex
	closed bool
	subs   map[string]map[int]chan any
	nextID int
}

// NewBus creates an empty broadcast bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]chan any)}
}

// Subscribe registers a subscriber for topic. The returned cancel
// function removes the subscription and closes the receive channel.
func (b *Bus) Subscribe(topic string) (<-chan any, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan any, defaultBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan any)
	}
	b.subs[topic][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[topic][id]; ok {
			delete(b.subs[topic], id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers payload to every subscriber of topic.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs[topic] {
		select {
		case sub <- payload:
		default:
			// subscriber queue full, drop for this subscriber
		}
	}
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, subs := range b.subs {
		for _, sub := range subs {
			close(sub)
		}
	}
	b.subs = make(map[string]map[int]chan any)
}
