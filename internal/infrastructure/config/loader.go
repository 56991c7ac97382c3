package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Every key is reachable as DOZER_<SECTION>_<KEY>, e.g. DOZER_LIFECYCLE_IDLE_THRESHOLD.
	v.SetEnvPrefix("DOZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DOZER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOZER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOZER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOZER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, completes, normalizes and validates the viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := m.viper.Unmarshal(config, hook); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Lifecycle.BlankURL = strings.TrimSpace(config.Lifecycle.BlankURL)
	config.Engine.ExecPath = strings.TrimSpace(config.Engine.ExecPath)
	config.Engine.RemoteURL = strings.TrimSpace(config.Engine.RemoteURL)
	normalizePerformanceProfile(config)
}

func normalizePerformanceProfile(config *Config) {
	config.Performance.Profile = strings.ToLower(strings.TrimSpace(config.Performance.Profile))
	if config.Performance.Profile == "" {
		config.Performance.Profile = defaultProfile
	}
	if config.Performance.Profiles == nil {
		config.Performance.Profiles = map[string]ProfileConfig{}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Performance.Profiles = maps.Clone(m.config.Performance.Profiles)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setLoggingDefaults(defaults)
	m.setLifecycleDefaults(defaults)
	m.setPerformanceDefaults(defaults)
	m.setEngineDefaults(defaults)
	m.setEventsDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setLifecycleDefaults(defaults *Config) {
	m.viper.SetDefault("lifecycle.tick_interval", defaults.Lifecycle.TickInterval.String())
	m.viper.SetDefault("lifecycle.idle_threshold", defaults.Lifecycle.IdleThreshold.String())
	m.viper.SetDefault("lifecycle.blank_url", defaults.Lifecycle.BlankURL)
	m.viper.SetDefault("lifecycle.suspended_label_prefix", defaults.Lifecycle.SuspendedLabelPrefix)
	m.viper.SetDefault("lifecycle.suspended_icon", defaults.Lifecycle.SuspendedIcon)
	m.viper.SetDefault("lifecycle.exempt_pinned", defaults.Lifecycle.ExemptPinned)
}

func (m *Manager) setPerformanceDefaults(defaults *Config) {
	m.viper.SetDefault("performance.profile", defaults.Performance.Profile)
}

func (m *Manager) setEngineDefaults(defaults *Config) {
	m.viper.SetDefault("engine.headless", defaults.Engine.Headless)
	m.viper.SetDefault("engine.exec_path", defaults.Engine.ExecPath)
	m.viper.SetDefault("engine.remote_url", defaults.Engine.RemoteURL)
	m.viper.SetDefault("engine.user_data_dir", defaults.Engine.UserDataDir)
	m.viper.SetDefault("engine.reclaim_workers", defaults.Engine.ReclaimWorkers)
}

func (m *Manager) setEventsDefaults(defaults *Config) {
	m.viper.SetDefault("events.retention_days", defaults.Events.RetentionDays)
	m.viper.SetDefault("events.max_listed", defaults.Events.MaxListed)
}
