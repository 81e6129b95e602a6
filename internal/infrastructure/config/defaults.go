package config

import (
	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/ui/focus"
	"github.com/bnema/remotenav/internal/ui/input"
)

// Default configuration constants
const (
	defaultKeyNavDelayMs     = 100
	defaultGamepadNavDelayMs = 150
	defaultPollIntervalMs    = 16
	defaultJoystickDevices   = "/dev/input/js*"

	defaultMoveResetWindowMs = 500
	defaultHintDurationMs    = 6000

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Navigation: NavigationConfig{
			Enabled:         true,
			AlignTolerance:  usecase.DefaultAlignTolerance,
			CrossAxisWeight: usecase.DefaultCrossAxisWeight,
			AlignmentBonus:  usecase.DefaultAlignmentBonus,
			Loop:            false,
		},
		Scroll: ScrollConfig{
			TopMargin:    focus.DefaultScrollTopMargin,
			BottomMargin: focus.DefaultScrollBottomMargin,
			SideMargin:   focus.DefaultScrollSideMargin,
			ComfortLine:  focus.DefaultComfortLine,
		},
		Keyboard: KeyboardConfig{
			NavDelayMs: defaultKeyNavDelayMs,
		},
		Gamepad: GamepadConfig{
			Enabled:        true,
			NavDelayMs:     defaultGamepadNavDelayMs,
			Deadzone:       input.DefaultStickDeadzone,
			PollIntervalMs: defaultPollIntervalMs,
			Devices:        defaultJoystickDevices,
		},
		Pointer: PointerConfig{
			MinMoveDistance:   input.DefaultMinMoveDistance,
			MovesToExit:       input.DefaultMovesToExit,
			MoveResetWindowMs: defaultMoveResetWindowMs,
		},
		Hint: HintConfig{
			DurationMs: defaultHintDurationMs,
			ShowOnce:   false,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
		Database: DatabaseConfig{
			RememberFocus: true,
		},
	}
}
