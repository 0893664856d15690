package testutil

import (
	"context"
	"sync"

	"github.com/pdehaan/testpilot-metrics/channel"
)

// Beacon records every encoded hit body handed to it. The zero value is
// ready to use.
type Beacon struct {
	// Err, when set, is returned from Send instead of recording.
	Err error

	mu     sync.Mutex
	bodies []string
}

// Send records body, or fails with the configured error.
func (b *Beacon) Send(_ context.Context, body string) error {
	if b.Err != nil {
		return b.Err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bodies = append(b.bodies, body)
	return nil
}

// Sent returns the recorded bodies in send order.
func (b *Beacon) Sent() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.bodies))
	copy(out, b.bodies)
	return out
}

// Env is a channel.Environment for tests. It captures everything a
// broker publishes and can be set to fail resolution of each host
// capability, or to fail publishes after resolution.
type Env struct {
	// BroadcastErr fails Broadcast resolution.
	BroadcastErr error
	// NotifyErr fails Notifications resolution.
	NotifyErr error
	// ConsoleErr fails Console resolution.
	ConsoleErr error
	// PublishErr fails every publish on resolved channels.
	PublishErr error

	mu       sync.Mutex
	payloads []any
	notices  []channel.Notice
	logs     []string
	errors   []string
}

// Broadcast returns a capturing broadcast channel.
func (e *Env) Broadcast(topic string) (channel.Channel, error) {
	if e.BroadcastErr != nil {
		return nil, e.BroadcastErr
	}
	return &envChannel{env: e, topic: topic}, nil
}

// Notifications returns a capturing notification service.
func (e *Env) Notifications() (channel.NotificationService, error) {
	if e.NotifyErr != nil {
		return nil, e.NotifyErr
	}
	return &envNotifier{env: e}, nil
}

// Console returns a capturing console.
func (e *Env) Console() (channel.Console, error) {
	if e.ConsoleErr != nil {
		return nil, e.ConsoleErr
	}
	return &envConsole{env: e}, nil
}

// Payloads returns the broadcast payloads published so far.
func (e *Env) Payloads() []any {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]any, len(e.payloads))
	copy(out, e.payloads)
	return out
}

// Notices returns the notifications published so far.
func (e *Env) Notices() []channel.Notice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]channel.Notice, len(e.notices))
	copy(out, e.notices)
	return out
}

// ConsoleLogs returns everything logged through the console.
func (e *Env) ConsoleLogs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.logs))
	copy(out, e.logs)
	return out
}

// ConsoleErrors returns everything error-logged through the console.
func (e *Env) ConsoleErrors() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.errors))
	copy(out, e.errors)
	return out
}

type envChannel struct {
	env   *Env
	topic string
}

func (c *envChannel) Topic() string { return c.topic }

func (c *envChannel) Publish(_ context.Context, payload any) error {
	if c.env.PublishErr != nil {
		return c.env.PublishErr
	}
	c.env.mu.Lock()
	defer c.env.mu.Unlock()
	c.env.payloads = append(c.env.payloads, payload)
	return nil
}

func (c *envChannel) Close() error { return nil }

type envNotifier struct {
	env *Env
}

func (n *envNotifier) Notify(subject, topic, data string) error {
	if n.env.PublishErr != nil {
		return n.env.PublishErr
	}
	n.env.mu.Lock()
	defer n.env.mu.Unlock()
	n.env.notices = append(n.env.notices, channel.Notice{Subject: subject, Topic: topic, Data: data})
	return nil
}

type envConsole struct {
	env *Env
}

func (c *envConsole) Log(msg string) {
	c.env.mu.Lock()
	defer c.env.mu.Unlock()
	c.env.logs = append(c.env.logs, msg)
}

func (c *envConsole) Error(msg string) {
	c.env.mu.Lock()
	defer c.env.mu.Unlock()
	c.env.errors = append(c.env.errors, msg)
}
