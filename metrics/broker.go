package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdehaan/testpilot-metrics/channel"
	"github.com/pdehaan/testpilot-metrics/collector"
	"github.com/pdehaan/testpilot-metrics/errors"
	"github.com/pdehaan/testpilot-metrics/logger"
	"github.com/pdehaan/testpilot-metrics/observability"
)

// Transform lets a caller reshape the analytics hit for one event. It
// receives the event's analytics copy and the default hit; returning a
// non-empty hit replaces the default, returning an empty hit falls back
// to it, and returning an error drops the analytics sink for this call.
type Transform func(raw Event, def collector.Hit) (collector.Hit, error)

// Broker accepts discrete event submissions and fans each one out to
// the client channel and, when a tracking id is configured, the
// analytics collector. Construction either fully succeeds or fails;
// SendEvent never fails.
type Broker struct {
	cfg     Config
	topic   string
	channel channel.Channel
	console channel.Console
	beacon  collector.Beacon
	log     *logger.Logger
	obs     *observability.Metrics
	tracer  trace.Tracer

	// debug is flipped between calls by the owning caller; the broker
	// runs on the host's single event loop, so no synchronization.
	debug bool
}

type options struct {
	log    *logger.Logger
	env    channel.Environment
	beacon collector.Beacon
	obs    *observability.Metrics
}

// Option configures optional broker collaborators.
type Option func(*options)

// WithLogger sets the logger used when debug is enabled.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithEnvironment sets the host environment the broker resolves its
// transports from. Defaults to the shared in-process environment.
func WithEnvironment(env channel.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithBeacon sets the analytics beacon. Defaults to an HTTP beacon
// against the standard collector endpoint.
func WithBeacon(b collector.Beacon) Option {
	return func(o *options) { o.beacon = b }
}

// WithMetrics sets the instrument bundle dispatches and drops are
// counted on.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.obs = m }
}

// New validates cfg and constructs a ready broker. All configuration
// checks run before any transport is created; a transport that cannot
// be initialized fails construction.
func New(cfg Config, opts ...Option) (*Broker, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.New(&logger.Config{
			Level:     "debug",
			Format:    "console",
			Output:    "stderr",
			Timestamp: true,
		}, "metrics")
	}
	if o.env == nil {
		o.env = channel.DefaultEnvironment()
	}

	b := &Broker{
		cfg:    cfg,
		topic:  TopicFor(cfg.ID, cfg.Type),
		log:    o.log,
		obs:    o.obs,
		tracer: observability.Tracer(observability.TracerName),
		debug:  cfg.Debug,
	}

	if cfg.Type == TypeBootstrapped {
		console, err := o.env.Console()
		if err != nil {
			return nil, errors.TransportInit("console", err)
		}
		b.console = console
	}

	switch cfg.Type {
	case TypeWebExtension:
		ch, err := o.env.Broadcast(b.topic)
		if err != nil {
			return nil, errors.TransportInit("broadcast", err)
		}
		b.channel = ch
	default:
		svc, err := o.env.Notifications()
		if err != nil {
			return nil, errors.TransportInit("notification", err)
		}
		ch, err := channel.NewNotification(b.topic, cfg.ID, svc)
		if err != nil {
			return nil, errors.TransportInit("notification", err)
		}
		b.channel = ch
	}

	b.beacon = o.beacon
	if b.beacon == nil && cfg.TrackingID != "" {
		beacon, err := collector.NewHTTPBeacon(collector.Config{
			Endpoint: cfg.Collector.Endpoint,
		})
		if err != nil {
			return nil, errors.TransportInit("beacon", err)
		}
		b.beacon = beacon
	}

	b.logDebug(fmt.Sprintf("initialized broker for %s", cfg.ID), logger.Fields(
		logger.FieldAddonID, cfg.ID,
		logger.FieldAddonType, string(cfg.Type),
		logger.FieldTopic, b.topic,
		"analytics", cfg.TrackingID != "",
	))
	return b, nil
}

// Topic returns the client channel name derived at construction.
func (b *Broker) Topic() string { return b.topic }

// SetDebug flips broker logging between calls.
func (b *Broker) SetDebug(enabled bool) { b.debug = enabled }

// DebugEnabled reports whether broker logging is on.
func (b *Broker) DebugEnabled() bool { return b.debug }

// SendEvent fans event out to the configured sinks. It never returns an
// error and never panics: every failure degrades to dropping the
// affected sink's message, logged when debug is enabled.
func (b *Broker) SendEvent(ctx context.Context, event Event, transform ...Transform) {
	defer func() {
		if r := recover(); r != nil {
			b.logError("send aborted", fmt.Errorf("panic: %v", r))
		}
	}()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := b.tracer.Start(ctx, "metrics.send_event", trace.WithAttributes(
		attribute.String("topic", b.topic),
		attribute.String("addon.type", string(b.cfg.Type)),
	))
	defer span.End()

	if event.Category == "" {
		event.Category = DefaultCategory
	}

	// One copy per sink, so neither sink sees caller-held references
	// or the other sink's mutations.
	clientCopy, cerr := event.Clone()
	analyticsCopy, aerr := event.Clone()
	if cerr != nil || aerr != nil {
		err := cerr
		if err == nil {
			err = aerr
		}
		b.logError("cannot clone payload", err)
		b.obs.RecordDrop(ctx, observability.SinkAll, "clone")
		return
	}

	b.sendClient(ctx, clientCopy)

	if b.cfg.TrackingID == "" || b.beacon == nil {
		return
	}
	b.sendAnalytics(ctx, analyticsCopy, transform...)
}

// Close releases the client channel and waits out any in-flight
// beacons.
func (b *Broker) Close() error {
	err := b.channel.Close()
	if f, ok := b.beacon.(interface{ Flush() }); ok {
		f.Flush()
	}
	return err
}

func (b *Broker) sendClient(ctx context.Context, event Event) {
	if err := b.channel.Publish(ctx, event); err != nil {
		b.logError("client channel publish failed", err)
		b.obs.RecordDrop(ctx, observability.SinkClient, "publish")
		return
	}
	b.logDebug("client channel publish succeeded", logger.Fields(
		logger.FieldTopic, b.topic,
	))
	b.obs.RecordDispatch(ctx, observability.SinkClient)
}

func (b *Broker) sendAnalytics(ctx context.Context, event Event, transform ...Transform) {
	hit := b.defaultHit(event)
	if len(transform) > 0 && transform[0] != nil {
		custom, err := runTransform(transform[0], event, hit)
		if err != nil {
			b.logError("transform failed", err)
			b.obs.RecordDrop(ctx, observability.SinkAnalytics, "transform")
			return
		}
		if custom.Len() > 0 {
			hit = custom
		}
	}

	if err := b.beacon.Send(ctx, hit.Encode()); err != nil {
		b.logError("beacon send failed", errors.BeaconFailed(err))
		b.obs.RecordDrop(ctx, observability.SinkAnalytics, "beacon")
		return
	}
	b.logDebug("analytics hit sent", logger.Fields(
		"keys", hit.Len(),
	))
	b.obs.RecordDispatch(ctx, observability.SinkAnalytics)
}

// defaultHit maps config and event onto the measurement protocol keys.
func (b *Broker) defaultHit(event Event) collector.Hit {
	hit := collector.NewHit().
		Set("v", "1").
		Set("an", b.cfg.ID).
		Set("av", b.cfg.Version).
		Set("tid", b.cfg.TrackingID).
		Set("uid", b.cfg.UID).
		Set("t", "event").
		Set("ec", event.Category).
		Set("ea", event.Method)
	if event.Object != "" {
		hit = hit.Set("el", event.Object)
	}
	if event.Variant != "" {
		hit = hit.Set("cd1", event.Variant)
	}
	return hit
}

// runTransform isolates caller code: both returned errors and panics
// surface as a transform failure.
func runTransform(t Transform, raw Event, def collector.Hit) (hit collector.Hit, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.TransformFailed(fmt.Errorf("panic: %v", r))
		}
	}()
	hit, err = t(raw, def)
	if err != nil {
		err = errors.TransformFailed(err)
	}
	return hit, err
}

// logDebug emits only when debug is enabled. For bootstrapped add-ons
// the resolved environment console is used instead of the logger.
func (b *Broker) logDebug(msg string, fields ...map[string]interface{}) {
	if !b.debug {
		return
	}
	if b.console != nil {
		b.console.Log(msg)
		return
	}
	b.log.Debug(msg, fields...)
}

// logError emits to the error channel, only when debug is enabled.
func (b *Broker) logError(msg string, err error) {
	if !b.debug {
		return
	}
	if b.console != nil {
		b.console.Error(fmt.Sprintf("%s: %v", msg, err))
		return
	}
	b.log.Error(msg, logger.Fields(logger.FieldError, err.Error()))
}
