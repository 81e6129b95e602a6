// Package config loads, validates and watches the remotenav configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// REMOTENAV_NAVIGATION_LOOP, REMOTENAV_GAMEPAD_DEADZONE, ...
	v.SetEnvPrefix("REMOTENAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "REMOTENAV_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind REMOTENAV_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "REMOTENAV_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind REMOTENAV_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile, err,
		)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// reload re-reads the file and replaces the active config.
// Must be called with the lock held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile, err,
		)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	config.Gamepad.Devices = strings.TrimSpace(config.Gamepad.Devices)
	if config.Gamepad.Devices == "" {
		config.Gamepad.Devices = defaultJoystickDevices
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	if m.watching {
		// The watcher sees our own write; keep the in-memory copy.
		m.skipNextReload = true
		configCopy := *cfg
		m.config = &configCopy
		return nil
	}
	return m.reload(true)
}

// GetConfigFile returns the path of the config file in use.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", m.configFile)
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("navigation.enabled", d.Navigation.Enabled)
	m.viper.SetDefault("navigation.align_tolerance", d.Navigation.AlignTolerance)
	m.viper.SetDefault("navigation.cross_axis_weight", d.Navigation.CrossAxisWeight)
	m.viper.SetDefault("navigation.alignment_bonus", d.Navigation.AlignmentBonus)
	m.viper.SetDefault("navigation.loop", d.Navigation.Loop)

	m.viper.SetDefault("scroll.top_margin", d.Scroll.TopMargin)
	m.viper.SetDefault("scroll.bottom_margin", d.Scroll.BottomMargin)
	m.viper.SetDefault("scroll.side_margin", d.Scroll.SideMargin)
	m.viper.SetDefault("scroll.comfort_line", d.Scroll.ComfortLine)

	m.viper.SetDefault("keyboard.nav_delay_ms", d.Keyboard.NavDelayMs)

	m.viper.SetDefault("gamepad.enabled", d.Gamepad.Enabled)
	m.viper.SetDefault("gamepad.nav_delay_ms", d.Gamepad.NavDelayMs)
	m.viper.SetDefault("gamepad.deadzone", d.Gamepad.Deadzone)
	m.viper.SetDefault("gamepad.poll_interval_ms", d.Gamepad.PollIntervalMs)
	m.viper.SetDefault("gamepad.devices", d.Gamepad.Devices)

	m.viper.SetDefault("pointer.min_move_distance", d.Pointer.MinMoveDistance)
	m.viper.SetDefault("pointer.moves_to_exit", d.Pointer.MovesToExit)
	m.viper.SetDefault("pointer.move_reset_window_ms", d.Pointer.MoveResetWindowMs)

	m.viper.SetDefault("hint.duration_ms", d.Hint.DurationMs)
	m.viper.SetDefault("hint.show_once", d.Hint.ShowOnce)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", d.Logging.Compress)

	m.viper.SetDefault("database.path", d.Database.Path)
	m.viper.SetDefault("database.remember_focus", d.Database.RememberFocus)
}
