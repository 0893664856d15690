package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Sink labels used on broker counters.
const (
	SinkClient    = "client"
	SinkAnalytics = "analytics"
	SinkAll       = "all"
)

// Metrics bundles the broker's instruments. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	eventsDispatched metric.Int64Counter
	eventsDropped    metric.Int64Counter
}

// NewMetrics creates the broker instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	dispatched, err := meter.Int64Counter("testpilot.events.dispatched",
		metric.WithDescription("Events delivered to a sink"))
	if err != nil {
		return nil, err
	}
	dropped, err := meter.Int64Counter("testpilot.events.dropped",
		metric.WithDescription("Events dropped before reaching a sink"))
	if err != nil {
		return nil, err
	}
	return &Metrics{
		eventsDispatched: dispatched,
		eventsDropped:    dropped,
	}, nil
}

// RecordDispatch counts one event delivered to sink.
func (m *Metrics) RecordDispatch(ctx context.Context, sink string) {
	if m == nil {
		return
	}
	m.eventsDispatched.Add(ctx, 1, metric.WithAttributes(
		attribute.String("sink", sink),
	))
}

// RecordDrop counts one event dropped before reaching sink.
func (m *Metrics) RecordDrop(ctx context.Context, sink, reason string) {
	if m == nil {
		return
	}
	m.eventsDropped.Add(ctx, 1, metric.WithAttributes(
		attribute.String("sink", sink),
		attribute.String("reason", reason),
	))
}
