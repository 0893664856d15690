// Package config loads broker settings from config files, .env files,
// and TESTPILOT_* environment variables, in that precedence order
// (environment wins).
//
//	settings, err := config.Load()
//	if err != nil { ... }
//	broker, err := metrics.New(settings.Metrics,
//	    metrics.WithLogger(logger.New(&settings.Logging, "metrics")))
package config
