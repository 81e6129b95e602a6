package config

import (
	"fmt"
	"strings"

	"github.com/bnema/remotenav/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateNavigation(config)...)
	validationErrors = append(validationErrors, validateScroll(config)...)
	validationErrors = append(validationErrors, validateInput(config)...)
	validationErrors = append(validationErrors, validateHint(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateNavigation(config *Config) []string {
	var validationErrors []string
	if config.Navigation.AlignTolerance < 0 {
		validationErrors = append(validationErrors, "navigation.align_tolerance must be non-negative")
	}
	if config.Navigation.CrossAxisWeight < 0 {
		validationErrors = append(validationErrors, "navigation.cross_axis_weight must be non-negative")
	}
	if config.Navigation.AlignmentBonus < 0 {
		validationErrors = append(validationErrors, "navigation.alignment_bonus must be non-negative")
	}
	return validationErrors
}

func validateScroll(config *Config) []string {
	var validationErrors []string
	s := config.Scroll
	if s.TopMargin < 0 || s.BottomMargin < 0 || s.SideMargin < 0 {
		validationErrors = append(validationErrors, "scroll margins must be non-negative")
	}
	if s.ComfortLine < 0 || s.ComfortLine > 1 {
		validationErrors = append(validationErrors, "scroll.comfort_line must be between 0 and 1")
	}
	return validationErrors
}

func validateInput(config *Config) []string {
	var validationErrors []string
	if config.Keyboard.NavDelayMs < 0 {
		validationErrors = append(validationErrors, "keyboard.nav_delay_ms must be non-negative")
	}
	if config.Gamepad.NavDelayMs < 0 {
		validationErrors = append(validationErrors, "gamepad.nav_delay_ms must be non-negative")
	}
	if config.Gamepad.Deadzone < 0 || config.Gamepad.Deadzone >= 1 {
		validationErrors = append(validationErrors, "gamepad.deadzone must be in [0, 1)")
	}
	if config.Gamepad.PollIntervalMs < 1 {
		validationErrors = append(validationErrors, "gamepad.poll_interval_ms must be at least 1")
	}
	if config.Pointer.MinMoveDistance < 0 {
		validationErrors = append(validationErrors, "pointer.min_move_distance must be non-negative")
	}
	if config.Pointer.MovesToExit < 1 {
		validationErrors = append(validationErrors, "pointer.moves_to_exit must be at least 1")
	}
	if config.Pointer.MoveResetWindowMs < 0 {
		validationErrors = append(validationErrors, "pointer.move_reset_window_ms must be non-negative")
	}
	return validationErrors
}

func validateHint(config *Config) []string {
	if config.Hint.DurationMs < 0 {
		return []string{"hint.duration_ms must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}
