// Package logger provides structured logging for the metrics broker
// using zerolog.
//
// The broker only logs when its debug flag is enabled; this package
// supplies the underlying logger, including a no-op variant used when
// no logger is configured.
//
// # Usage
//
//	log := logger.NewDefault("metrics")
//	log.Debug("event sent", logger.Fields("topic", "testpilot"))
package logger
