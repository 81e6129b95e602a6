// Package cli wires configuration, logging, persistence and the focus engine
// for the remotenav commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/domain/build"
	"github.com/bnema/remotenav/internal/domain/repository"
	"github.com/bnema/remotenav/internal/infrastructure/config"
	"github.com/bnema/remotenav/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/remotenav/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager // nil when the config file could not be loaded
	Theme     *styles.Theme
	BuildInfo build.Info
	DB        *sqlite.LazyDB
	Memory    repository.FocusMemoryRepository
	Hints     repository.HintRepository
	SessionID string

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened lazily on first use.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logger, logCleanup, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	sessionID := logging.GenerateSessionID()
	logger = logger.With().Str("session_id", sessionID).Logger()
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("app initialized")

	db := sqlite.NewLazyDB(cfg.Database.Path)

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		DB:         db,
		Memory:     sqlite.NewLazyFocusMemoryRepository(db),
		Hints:      sqlite.NewLazyHintRepository(db),
		SessionID:  sessionID,
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

// newLogger builds the process logger. Without a log file, logs are dropped:
// every command draws on the terminal and stderr output would tear the TUI.
func newLogger(cfg *config.Config) (logger zerolog.Logger, cleanup func(), err error) {
	logCfg := cfg.LoggerConfig()
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = io.Discard
	cleanup = func() {}

	if cfg.Logging.EnableFileLog {
		rotator, rotErr := logging.NewLogRotator(cfg.RotatorConfig())
		if rotErr != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", rotErr)
		}
		logCfg.Output = rotator
		cleanup = func() { _ = rotator.Close() }
	}

	return logging.New(logCfg), cleanup, nil
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, defaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	if dir, err := config.GetLogDir(); err == nil {
		cfg.Logging.LogDir = dir
	}
	return cfg
}
