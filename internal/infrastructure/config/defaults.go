package config

import "time"

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogAgeDays = 7  // days
	defaultMaxLogSizeMB  = 50 // megabytes
	defaultMaxLogBackups = 3

	// Lifecycle defaults
	defaultTickInterval         = 60 * time.Second
	defaultIdleThreshold        = 30 * time.Minute
	defaultBlankURL             = "about:blank"
	defaultSuspendedLabelPrefix = "[Suspended] "
	defaultSuspendedIcon        = "images/suspended.png"

	// Performance defaults
	defaultProfile = "balanced"

	// Engine defaults
	defaultReclaimWorkers = 3

	// Events defaults
	defaultEventRetentionDays = 14
	defaultEventsListed       = 50
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for dozer.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			MaxAge:        defaultMaxLogAgeDays,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
		},
		Lifecycle: LifecycleConfig{
			TickInterval:         Duration(defaultTickInterval),
			IdleThreshold:        Duration(defaultIdleThreshold),
			BlankURL:             defaultBlankURL,
			SuspendedLabelPrefix: defaultSuspendedLabelPrefix,
			SuspendedIcon:        defaultSuspendedIcon,
			ExemptPinned:         false,
		},
		Performance: PerformanceConfig{
			Profile:  defaultProfile,
			Profiles: map[string]ProfileConfig{},
		},
		Engine: EngineConfig{
			Headless:       true,
			ReclaimWorkers: defaultReclaimWorkers,
		},
		Events: EventsConfig{
			RetentionDays: defaultEventRetentionDays,
			MaxListed:     defaultEventsListed,
		},
	}
}
