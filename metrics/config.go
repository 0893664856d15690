package metrics

import "github.com/pdehaan/testpilot-metrics/errors"

// AddonType identifies the kind of add-on hosting the broker. It
// selects the client channel strategy.
type AddonType string

const (
	// TypeWebExtension publishes on a broadcast channel.
	TypeWebExtension AddonType = "webextension"
	// TypeSDK publishes through the environment notification service.
	TypeSDK AddonType = "sdk"
	// TypeBootstrapped publishes like TypeSDK and additionally resolves
	// the environment debug console at construction.
	TypeBootstrapped AddonType = "bootstrapped"
)

// Valid reports whether t is a recognized add-on type.
func (t AddonType) Valid() bool {
	switch t {
	case TypeWebExtension, TypeSDK, TypeBootstrapped:
		return true
	}
	return false
}

// Config is the broker's identity configuration. It is immutable after
// construction; only the debug flag can be flipped later, via
// Broker.SetDebug.
type Config struct {
	// ID is the add-on identifier. Required.
	ID string `yaml:"id" mapstructure:"id" validate:"required"`

	// Version is the add-on version. Required.
	Version string `yaml:"version" mapstructure:"version" validate:"required"`

	// UID is the per-client identifier. Required. See NewClientID.
	UID string `yaml:"uid" mapstructure:"uid" validate:"required"`

	// TrackingID is the analytics property id. When set, every event is
	// also beaconed to the analytics collector.
	TrackingID string `yaml:"tracking_id" mapstructure:"tracking_id"`

	// Type selects the client channel strategy. Defaults to webextension.
	Type AddonType `yaml:"type" mapstructure:"type" validate:"omitempty,oneof=webextension sdk bootstrapped"`

	// Debug enables broker logging.
	Debug bool `yaml:"debug" mapstructure:"debug"`

	// Collector overrides the analytics beacon settings.
	Collector CollectorConfig `yaml:"collector" mapstructure:"collector"`
}

// CollectorConfig carries the optional analytics beacon overrides.
type CollectorConfig struct {
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

// ApplyDefaults fills in the default add-on type.
func (c *Config) ApplyDefaults() {
	if c.Type == "" {
		c.Type = TypeWebExtension
	}
}

// Validate checks the required identity fields, in a fixed order, then
// the add-on type. It runs before any transport setup.
func (c *Config) Validate() error {
	if c.ID == "" {
		return errors.MissingField("id")
	}
	if c.Version == "" {
		return errors.MissingField("version")
	}
	if c.UID == "" {
		return errors.MissingField("uid")
	}
	if !c.Type.Valid() {
		return errors.InvalidType(string(c.Type))
	}
	return nil
}
