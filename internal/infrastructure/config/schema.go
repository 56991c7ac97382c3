package config

import (
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
)

// Config represents the complete configuration for dozer.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Lifecycle controls when idle tabs are suspended and how they are shown.
	Lifecycle LifecycleConfig `mapstructure:"lifecycle" yaml:"lifecycle" toml:"lifecycle"`
	// Performance selects the capability profile applied to the engine.
	Performance PerformanceConfig `mapstructure:"performance" yaml:"performance" toml:"performance"`
	// Engine configures the browser the tabs run in.
	Engine EngineConfig `mapstructure:"engine" yaml:"engine" toml:"engine"`
	// Events controls the persisted activity log.
	Events EventsConfig `mapstructure:"events" yaml:"events" toml:"events"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	MaxAge int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
}

// LifecycleConfig holds tab suspension settings.
type LifecycleConfig struct {
	// TickInterval is how often idle tabs are checked.
	TickInterval Duration `mapstructure:"tick_interval" yaml:"tick_interval" toml:"tick_interval"`
	// IdleThreshold is how long a background tab may stay unused before it is suspended.
	IdleThreshold Duration `mapstructure:"idle_threshold" yaml:"idle_threshold" toml:"idle_threshold"`
	// BlankURL is the placeholder loaded into suspended tabs.
	BlankURL             string `mapstructure:"blank_url" yaml:"blank_url" toml:"blank_url"`
	SuspendedLabelPrefix string `mapstructure:"suspended_label_prefix" yaml:"suspended_label_prefix" toml:"suspended_label_prefix"`
	SuspendedIcon        string `mapstructure:"suspended_icon" yaml:"suspended_icon" toml:"suspended_icon"`
	// ExemptPinned keeps pinned tabs from ever being suspended.
	ExemptPinned bool `mapstructure:"exempt_pinned" yaml:"exempt_pinned" toml:"exempt_pinned"`
}

// PerformanceConfig selects and declares capability profiles.
type PerformanceConfig struct {
	// Profile is the profile applied at startup when none was persisted.
	Profile string `mapstructure:"profile" yaml:"profile" toml:"profile"`
	// Profiles declares extra profiles or overrides built-in ones.
	Profiles map[string]ProfileConfig `mapstructure:"profiles" yaml:"profiles" toml:"profiles,omitempty"`
}

// ProfileConfig is one capability bundle. Every flag must be given.
type ProfileConfig struct {
	WebGL      bool `mapstructure:"webgl" yaml:"webgl" toml:"webgl"`
	JavaScript bool `mapstructure:"javascript" yaml:"javascript" toml:"javascript"`
	Images     bool `mapstructure:"images" yaml:"images" toml:"images"`
	Animations bool `mapstructure:"animations" yaml:"animations" toml:"animations"`
}

// EngineConfig configures the Chrome DevTools engine.
type EngineConfig struct {
	Headless bool `mapstructure:"headless" yaml:"headless" toml:"headless"`
	// ExecPath overrides the browser binary lookup.
	ExecPath string `mapstructure:"exec_path" yaml:"exec_path" toml:"exec_path"`
	// RemoteURL attaches to a running browser instead of launching one.
	RemoteURL   string `mapstructure:"remote_url" yaml:"remote_url" toml:"remote_url"`
	UserDataDir string `mapstructure:"user_data_dir" yaml:"user_data_dir" toml:"user_data_dir"`
	// ReclaimWorkers bounds concurrent cache clears.
	ReclaimWorkers int `mapstructure:"reclaim_workers" yaml:"reclaim_workers" toml:"reclaim_workers"`
}

// EventsConfig controls the lifecycle event log.
type EventsConfig struct {
	RetentionDays int `mapstructure:"retention_days" yaml:"retention_days" toml:"retention_days"`
	MaxListed     int `mapstructure:"max_listed" yaml:"max_listed" toml:"max_listed"`
}

// Duration is a time.Duration written as a Go duration string ("60s", "30m").
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// JSONSchema describes Duration as a string in the generated schema.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
		Description: "Go duration string, e.g. 60s or 30m",
	}
}
