package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alem-hub/student-registry/internal/domain/registry"
	"github.com/alem-hub/student-registry/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// IsValid reports whether e is one of the known environments.
func (e Environment) IsValid() bool {
	switch e {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return true
	default:
		return false
	}
}

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Registry
	Registry RegistryConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Version     string
}

// RegistryConfig holds the student registry settings.
type RegistryConfig struct {
	// Number of slots, in [registry.DefaultSize, registry.MaxSize].
	Slots int
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	AddCaller bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		Registry:      loadRegistryConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	return AppConfig{
		Name:        getEnv("APP_NAME", "student-registry"),
		Environment: Environment(getEnv("APP_ENV", "development")),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadRegistryConfig() RegistryConfig {
	return RegistryConfig{
		Slots: getEnvInt("REGISTRY_SLOTS", registry.DefaultSize),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		AddCaller: getEnvBool("LOG_ADD_CALLER", false),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if !c.App.Environment.IsValid() {
		errs = append(errs, fmt.Sprintf("APP_ENV must be one of development, staging, production (got %q)", c.App.Environment))
	}

	if c.Registry.Slots < registry.DefaultSize || c.Registry.Slots > registry.MaxSize {
		errs = append(errs, fmt.Sprintf("REGISTRY_SLOTS must be between %d and %d (got %d)",
			registry.DefaultSize, registry.MaxSize, c.Registry.Slots))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// LoggerOptions builds logger options from the observability settings.
func (c *Config) LoggerOptions() logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = logger.ParseLevel(c.Observability.LogLevel)
	opts.AddCaller = c.Observability.AddCaller
	return opts
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
