// Package observability provides OpenTelemetry tracing and metrics
// integration for the broker.
//
// Everything here is optional: without InitTracer/InitMeter the global
// no-op providers apply, and a nil *Metrics records nothing.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-addon"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-addon"))
//	defer mp.Shutdown(ctx)
//
//	m, err := observability.NewMetrics(observability.Meter("my-addon"))
package observability
