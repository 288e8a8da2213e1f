// Package config manages rocketsim configuration
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the rocketsim configuration. Stage parameters are fixed and
// deliberately absent.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Checks    ChecksConfig    `mapstructure:"checks"`
	Demo      DemoConfig      `mapstructure:"demo"`
	Display   DisplayConfig   `mapstructure:"display"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ChecksConfig holds pre-launch check configuration
type ChecksConfig struct {
	FaultProbability float64       `mapstructure:"fault_probability"`
	StepDelay        time.Duration `mapstructure:"step_delay"`
}

// DemoConfig holds scripted demo configuration
type DemoConfig struct {
	StepDelay time.Duration `mapstructure:"step_delay"`
}

// DisplayConfig holds console rendering configuration
type DisplayConfig struct {
	Color bool `mapstructure:"color"`
}

// MetricsConfig holds flight metrics configuration
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// TelemetryConfig holds flight journal configuration
type TelemetryConfig struct {
	// Retain caps the snapshots kept per flight; 0 keeps everything.
	Retain int `mapstructure:"retain"`
}

// Default returns the built-in configuration, ignoring config files and the
// environment.
func Default() *Config {
	cfg, err := load(newViper(false))
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load loads configuration from path, or from rocketsim.yaml in the working
// directory when path is empty. A missing default file is not an error.
// ROCKETSIM_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := newViper(true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rocketsim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return load(v)
}

func newViper(env bool) *viper.Viper {
	v := viper.New()

	if env {
		v.SetEnvPrefix("ROCKETSIM")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("checks.fault_probability", 0.10)
	v.SetDefault("checks.step_delay", 150*time.Millisecond)
	v.SetDefault("demo.step_delay", 400*time.Millisecond)
	v.SetDefault("display.color", true)
	v.SetDefault("metrics.namespace", "rocketsim")
	v.SetDefault("telemetry.retain", 0)

	return v
}

func load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Checks.FaultProbability < 0 || c.Checks.FaultProbability > 1 {
		return fmt.Errorf("checks.fault_probability must be within [0,1], got %v", c.Checks.FaultProbability)
	}
	if c.Checks.StepDelay < 0 || c.Demo.StepDelay < 0 {
		return fmt.Errorf("step delays must not be negative")
	}
	if c.Telemetry.Retain < 0 {
		return fmt.Errorf("telemetry.retain must not be negative, got %d", c.Telemetry.Retain)
	}
	if c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace must not be empty")
	}
	return nil
}
