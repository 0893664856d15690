package collector

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultEndpoint is the collector endpoint hits are beaconed to.
	DefaultEndpoint = "https://ssl.google-analytics.com/collect"

	defaultTimeout = 30 * time.Second
)

// Config configures the HTTP beacon.
type Config struct {
	// Endpoint is the collector URL. Defaults to DefaultEndpoint.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Timeout bounds each beacon request. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("collector: endpoint must be an absolute URL (got: %s)", c.Endpoint)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("collector: timeout must be positive")
	}
	return nil
}
