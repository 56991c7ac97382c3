package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dozer/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLifecycle(config)...)
	validationErrors = append(validationErrors, validatePerformance(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateEvents(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateLifecycle(config *Config) []string {
	var validationErrors []string
	lc := config.Lifecycle
	if lc.TickInterval <= 0 {
		validationErrors = append(validationErrors, "lifecycle.tick_interval must be positive")
	}
	if lc.IdleThreshold <= 0 {
		validationErrors = append(validationErrors, "lifecycle.idle_threshold must be positive")
	}
	if lc.TickInterval > 0 && lc.IdleThreshold > 0 && lc.TickInterval > lc.IdleThreshold {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"lifecycle.tick_interval (%s) must not exceed lifecycle.idle_threshold (%s)",
			lc.TickInterval, lc.IdleThreshold,
		))
	}
	if lc.BlankURL == "" {
		validationErrors = append(validationErrors, "lifecycle.blank_url must not be empty")
	}
	return validationErrors
}

func validatePerformance(config *Config) []string {
	var validationErrors []string
	known := make(map[string]bool)
	for _, p := range entity.BuiltinProfiles() {
		known[p.Name()] = true
	}
	for name := range config.Performance.Profiles {
		if strings.TrimSpace(name) == "" {
			validationErrors = append(validationErrors, "performance.profiles must not contain an empty name")
			continue
		}
		known[strings.ToLower(name)] = true
	}
	if !known[config.Performance.Profile] {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"performance.profile %q is neither built-in nor declared under performance.profiles",
			config.Performance.Profile,
		))
	}
	return validationErrors
}

func validateEngine(config *Config) []string {
	if config.Engine.ReclaimWorkers < 1 {
		return []string{"engine.reclaim_workers must be at least 1"}
	}
	return nil
}

func validateEvents(config *Config) []string {
	var validationErrors []string
	if config.Events.RetentionDays < 0 {
		validationErrors = append(validationErrors, "events.retention_days must be non-negative")
	}
	if config.Events.MaxListed < 1 {
		validationErrors = append(validationErrors, "events.max_listed must be at least 1")
	}
	return validationErrors
}
