package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pdehaan/testpilot-metrics/errors"
)

// Notification delivers payloads through the environment notification
// service: the payload is JSON-serialized and published as a string
// under the channel topic, with the sender id as the notification
// subject. It is the client channel used by sdk and bootstrapped
// add-ons.
type Notification struct {
	topic   string
	subject string
	service NotificationService

	mu     sync.Mutex
	closed bool
}

// NewNotification creates a notification channel publishing on topic
// with subject as the notification subject.
func NewNotification(topic, subject string, service NotificationService) (*Notification, error) {
	if service == nil {
		return nil, fmt.Errorf("notification service unavailable")
	}
	return &Notification{topic: topic, subject: subject, service: service}, nil
}

// Topic returns the notification event name.
func (n *Notification) Topic() string { return n.topic }

// Publish JSON-serializes payload and hands the string to the
// notification service. A serialization failure aborts this sink only.
func (n *Notification) Publish(_ context.Context, payload any) error {
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return fmt.Errorf("notification channel %q is closed", n.topic)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.SerializeFailed(err)
	}
	if err := n.service.Notify(n.subject, n.topic, string(data)); err != nil {
		return errors.PublishFailed(n.topic, err)
	}
	return nil
}

// Close marks the channel closed.
func (n *Notification) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	return nil
}
