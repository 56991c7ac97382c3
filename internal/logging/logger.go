package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig enables a rotated log file next to the stderr output.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	var output = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that also writes JSON lines to a rotated file.
// The returned cleanup closes the file; it is never nil.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), func() {}, nil
		}
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.Dir, 0o750); err != nil {
		return New(cfg), func() {}, err
	}

	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        fileCfg.Dir,
		MaxSizeMB:  fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAgeDays: fileCfg.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		return New(cfg), func() {}, err
	}

	var out io.Writer = rotator
	if fileCfg.WriteToStderr {
		console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		out = zerolog.MultiLevelWriter(console, rotator)
	}

	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	return logger, func() { _ = rotator.Close() }, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from raw level and format strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// DOZER_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DOZER_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DOZER_LOG_LEVEL"), os.Getenv("DOZER_LOG_FORMAT"))
}
