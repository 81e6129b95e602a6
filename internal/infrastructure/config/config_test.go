package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{"negative tolerance", func(c *Config) { c.Navigation.AlignTolerance = -1 }, "navigation.align_tolerance"},
		{"comfort line", func(c *Config) { c.Scroll.ComfortLine = 1.2 }, "scroll.comfort_line"},
		{"margins", func(c *Config) { c.Scroll.SideMargin = -5 }, "scroll margins"},
		{"poll interval", func(c *Config) { c.Gamepad.PollIntervalMs = 0 }, "gamepad.poll_interval_ms"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"hint duration", func(c *Config) { c.Hint.DurationMs = -10 }, "hint.duration_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Logging.Format = "weird"
	cfg.Gamepad.Devices = ""

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/dev/input/js*", cfg.Gamepad.Devices)
}

func TestConfigConversions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation.Loop = true
	cfg.Logging.Level = "warn"

	tuning := cfg.SearchTuning()
	assert.Equal(t, 3.0, tuning.CrossAxisWeight)
	assert.Equal(t, 100.0, tuning.AlignmentBonus)

	opts := cfg.FocusOptions()
	assert.True(t, opts.Loop)
	assert.Equal(t, 120.0, opts.Scroll.Top)
	assert.Equal(t, 50.0, opts.Scroll.Side)

	assert.Equal(t, 100*time.Millisecond, cfg.KeyNavDelay())
	assert.Equal(t, 150*time.Millisecond, cfg.GamepadOptions().NavDelay)
	assert.Equal(t, 16*time.Millisecond, cfg.GamepadOptions().PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PointerOptions().ResetWindow)
	assert.Equal(t, 5, cfg.PointerOptions().MovesToExit)
	assert.Equal(t, 6*time.Second, cfg.HintOptions().Duration)
	assert.Equal(t, zerolog.WarnLevel, cfg.LoggerConfig().Level)
}

func TestDiff(t *testing.T) {
	from := DefaultConfig()
	to := DefaultConfig()
	to.Navigation.Loop = true
	to.Gamepad.Deadzone = 0.25

	changes := Diff(from, to)
	require.Len(t, changes, 2)
	assert.Equal(t, "gamepad.deadzone", changes[0].Key)
	assert.Equal(t, KeyChangeModified, changes[0].Type)
	assert.Equal(t, "0.5", changes[0].OldValue)
	assert.Equal(t, "0.25", changes[0].NewValue)
	assert.Equal(t, "navigation.loop", changes[1].Key)

	out := FormatChanges(changes)
	assert.Contains(t, out, "~ navigation.loop: false -> true")

	assert.Empty(t, Diff(from, DefaultConfig()))
	assert.Equal(t, "No changes detected.", FormatChanges(nil))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"navigation", "scroll", "keyboard", "gamepad", "pointer", "hint", "logging", "database"} {
		assert.Contains(t, props, section)
	}
}
