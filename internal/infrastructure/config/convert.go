package config

import (
	"time"

	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/focus"
	"github.com/bnema/remotenav/internal/ui/input"
)

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// SearchTuning returns the spatial search weights.
func (c *Config) SearchTuning() usecase.SearchTuning {
	return usecase.SearchTuning{
		AlignTolerance:  c.Navigation.AlignTolerance,
		CrossAxisWeight: c.Navigation.CrossAxisWeight,
		AlignmentBonus:  c.Navigation.AlignmentBonus,
	}
}

// FocusOptions returns the focus controller options.
func (c *Config) FocusOptions() focus.Options {
	return focus.Options{
		Scroll: focus.ScrollMargins{
			Top:         c.Scroll.TopMargin,
			Bottom:      c.Scroll.BottomMargin,
			Side:        c.Scroll.SideMargin,
			ComfortLine: c.Scroll.ComfortLine,
		},
		Loop: c.Navigation.Loop,
	}
}

func (c *Config) KeyNavDelay() time.Duration {
	return ms(c.Keyboard.NavDelayMs)
}

func (c *Config) GamepadOptions() input.GamepadOptions {
	return input.GamepadOptions{
		NavDelay:     ms(c.Gamepad.NavDelayMs),
		Deadzone:     c.Gamepad.Deadzone,
		PollInterval: ms(c.Gamepad.PollIntervalMs),
	}
}

func (c *Config) PointerOptions() input.PointerOptions {
	return input.PointerOptions{
		MinMoveDistance: c.Pointer.MinMoveDistance,
		MovesToExit:     c.Pointer.MovesToExit,
		ResetWindow:     ms(c.Pointer.MoveResetWindowMs),
	}
}

func (c *Config) HintOptions() input.HintOptions {
	return input.HintOptions{
		Duration: ms(c.Hint.DurationMs),
		ShowOnce: c.Hint.ShowOnce,
	}
}

// LoggerConfig returns the logger configuration. Environment overrides
// (REMOTENAV_LOG_LEVEL, REMOTENAV_LOG_FORMAT) are already merged by viper.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if lvl, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = lvl
	}
	if c.Logging.Format != "" {
		cfg.Format = c.Logging.Format
	}
	return cfg
}

// RotatorConfig returns the log file rotation settings.
func (c *Config) RotatorConfig() logging.RotatorConfig {
	return logging.RotatorConfig{
		Dir:        c.Logging.LogDir,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}
