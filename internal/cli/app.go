// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/cli/styles"
	"github.com/bnema/dozer/internal/domain/build"
	"github.com/bnema/dozer/internal/domain/repository"
	"github.com/bnema/dozer/internal/infrastructure/config"
	"github.com/bnema/dozer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dozer/internal/logging"
)

// App holds CLI dependencies.
// The database is opened lazily so commands that never touch it stay cheap.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	DB        *sqlite.LazyDB
	Events    repository.LifecycleEventRepository
	Selection repository.ProfileSelectionRepository

	EventLogUC *usecase.EventLogUseCase

	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and wires the shared dependencies.
// Until the configuration is read, logging follows DOZER_LOG_LEVEL and
// DOZER_LOG_FORMAT only.
func NewApp() (*App, error) {
	boot := logging.NewFromEnv()

	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		boot.Debug().Err(err).Msg("configuration rejected")
		return nil, fmt.Errorf("load config: %w", err)
	}
	boot.Debug().Str("file", mgr.GetConfigFile()).Msg("configuration loaded")
	return newApp(mgr, mgr.Get())
}

func newApp(mgr *config.Manager, cfg *config.Config) (*App, error) {
	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("DOZER_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logger, logCleanup, logErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			WriteToStderr: true,
		},
	)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging disabled")
	}

	lazyDB := sqlite.NewLazyDB(cfg.Database.Path)
	events := sqlite.NewLazyLifecycleEventRepository(lazyDB)
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database configured")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		DB:         lazyDB,
		Events:     events,
		Selection:  sqlite.NewLazyProfileSelectionRepository(lazyDB),
		EventLogUC: usecase.NewEventLogUseCase(events, nil),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ProfileCatalog returns a profile manager holding the built-in and declared
// profiles. It is not attached to an engine; only listing and persisting
// the selection are meaningful.
func (a *App) ProfileCatalog() (*usecase.PerformanceProfileUseCase, error) {
	catalog := usecase.NewPerformanceProfileUseCase(nil, nil, nil, a.Selection, nil, nil)
	if err := registerProfiles(catalog, &a.Config.Performance); err != nil {
		return nil, err
	}
	return catalog, nil
}

// SelectedProfile returns the persisted profile, or the configured default
// when nothing was stored yet.
func (a *App) SelectedProfile(ctx context.Context) string {
	name, err := a.Selection.GetSelected(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to load selected profile")
	}
	if name == "" {
		return a.Config.Performance.Profile
	}
	return name
}
