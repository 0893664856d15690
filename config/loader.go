package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// envBindings maps TESTPILOT_* environment variables onto settings keys.
var envBindings = map[string]string{
	"metrics.id":                 "TESTPILOT_ID",
	"metrics.version":            "TESTPILOT_VERSION",
	"metrics.uid":                "TESTPILOT_UID",
	"metrics.tracking_id":        "TESTPILOT_TRACKING_ID",
	"metrics.type":               "TESTPILOT_TYPE",
	"metrics.debug":              "TESTPILOT_DEBUG",
	"metrics.collector.endpoint": "TESTPILOT_COLLECTOR_ENDPOINT",
	"logging.level":              "TESTPILOT_LOG_LEVEL",
	"logging.format":             "TESTPILOT_LOG_FORMAT",
	"logging.output":             "TESTPILOT_LOG_OUTPUT",
}

// configSearchPaths are the standard locations, checked in order.
var configSearchPaths = []string{
	"./testpilot.yml",
	"./config/testpilot.yml",
	"./config.yml",
}

// envSearchPaths are the standard .env locations, checked in order.
var envSearchPaths = []string{
	".env.testpilot",
	".env",
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load resolves config and .env files, binds TESTPILOT_* environment
// variables, and returns validated settings with defaults applied.
// Environment variables win over file values.
func Load(opts ...LoaderOption) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(lc.FileSystem, configSearchPaths)
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(lc.FileSystem, envSearchPaths)
	}

	// .env first so the env bindings below see its variables.
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	bindEnv(v)

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// bindEnv overlays set TESTPILOT_* variables with explicit-set
// precedence, so they win over file values during unmarshal.
func bindEnv(v *viper.Viper) {
	for key, env := range envBindings {
		if value, ok := os.LookupEnv(env); ok && value != "" {
			v.Set(key, value)
		}
	}
}

func findFirst(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
