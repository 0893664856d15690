package channel

import (
	"sync"

	"github.com/pdehaan/testpilot-metrics/logger"
)

// Notice is the unit of delivery subscribers receive from the in-process
// notification service.
type Notice struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Data    string `json:"data"`
}

// InProcess is an Environment backed by a single in-process broadcast
// bus. Broadcast channels and notification observers with the same topic
// are connected through it, the way same-named broadcast channels
// connect inside one page.
type InProcess struct {
	bus *Bus
	log *logger.Logger
}

// NewInProcess creates an in-process environment. A nil log disables
// console output.
func NewInProcess(log *logger.Logger) *InProcess {
	if log == nil {
		log = logger.Nop()
	}
	return &InProcess{bus: NewBus(), log: log}
}

// Broadcast creates a broadcast channel keyed by topic.
func (e *InProcess) Broadcast(topic string) (Channel, error) {
	return NewBroadcast(topic, e.bus)
}

// Notifications resolves the in-process notification service. Notices
// are delivered on the bus under their topic.
func (e *InProcess) Notifications() (NotificationService, error) {
	return &busNotifier{bus: e.bus}, nil
}

// Console resolves a console backed by the environment logger.
func (e *InProcess) Console() (Console, error) {
	return &loggerConsole{log: e.log.WithComponent("console")}, nil
}

// Subscribe registers a bus subscriber for topic. Broadcast payloads
// arrive verbatim; notifications arrive as Notice values.
func (e *InProcess) Subscribe(topic string) (<-chan any, func()) {
	return e.bus.Subscribe(topic)
}

// Close shuts down the environment bus.
func (e *InProcess) Close() {
	e.bus.Close()
}

type busNotifier struct {
	bus *Bus
}

func (n *busNotifier) Notify(subject, topic, data string) error {
	n.bus.Publish(topic, Notice{Subject: subject, Topic: topic, Data: data})
	return nil
}

type loggerConsole struct {
	log *logger.Logger
}

func (c *loggerConsole) Log(msg string)   { c.log.Debug(msg) }
func (c *loggerConsole) Error(msg string) { c.log.Error(msg) }

var (
	defaultEnv     *InProcess
	defaultEnvOnce sync.Once
)

// DefaultEnvironment returns the shared in-process environment used by
// brokers constructed without an explicit one.
func DefaultEnvironment() *InProcess {
	defaultEnvOnce.Do(func() {
		defaultEnv = NewInProcess(logger.NewFromEnv("environment"))
	})
	return defaultEnv
}
