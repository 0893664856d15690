package channel

import "context"

// Channel is the client-side delivery path for one broker. A channel is
// bound to a single topic at construction and delivers each published
// payload at most once.
type Channel interface {
	// Topic returns the logical channel name this channel publishes on.
	Topic() string

	// Publish delivers one payload to the channel's subscribers.
	Publish(ctx context.Context, payload any) error

	// Close releases the channel. Publishing after Close is an error.
	Close() error
}

// NotificationService is the environment messaging primitive used by
// sdk and bootstrapped add-ons: string payloads delivered under a topic
// with a subject identifying the sender.
type NotificationService interface {
	Notify(subject, topic, data string) error
}

// Console is the environment debug console resolved for bootstrapped
// add-ons.
type Console interface {
	Log(msg string)
	Error(msg string)
}

// Environment resolves the host capabilities a broker needs. Each
// resolver returns an error when the underlying dependency cannot be
// loaded; brokers surface that as a transport initialization fault.
type Environment interface {
	// Broadcast creates a broadcast channel keyed by topic.
	Broadcast(topic string) (Channel, error)

	// Notifications resolves the environment notification service.
	Notifications() (NotificationService, error)

	// Console resolves the environment debug console.
	Console() (Console, error)
}
