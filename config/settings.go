package config

import (
	"github.com/pdehaan/testpilot-metrics/logger"
	"github.com/pdehaan/testpilot-metrics/metrics"
	"github.com/pdehaan/testpilot-metrics/validation"
)

// Settings is the full on-disk/environment configuration surface: the
// broker identity plus logging.
//
// Example config.yml:
//
//	metrics:
//	  id: "my-addon@example.com"
//	  version: "1.0.2"
//	  uid: "0c0f37a4-e2f7-4e42-aeb7-7d56b7a102f1"
//	  tracking_id: "UA-XXXXX-Y"
//	  type: "webextension"
//	logging:
//	  level: "debug"
//	  format: "json"
type Settings struct {
	Metrics metrics.Config `yaml:"metrics" mapstructure:"metrics"`
	Logging logger.Config  `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies defaults to every section.
func (s *Settings) ApplyDefaults() {
	s.Metrics.ApplyDefaults()
	s.Logging.ApplyDefaults()
}

// Validate checks every section via struct tags. The broker re-runs
// its own ordered identity checks at construction time.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	return s.Logging.Validate()
}
