package config

// Config represents the complete configuration for remotenav.
type Config struct {
	// Navigation tunes the spatial search.
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation" json:"navigation"`
	// Scroll controls when and how a newly focused target is scrolled into view.
	Scroll   ScrollConfig   `mapstructure:"scroll" toml:"scroll" json:"scroll"`
	Keyboard KeyboardConfig `mapstructure:"keyboard" toml:"keyboard" json:"keyboard"`
	Gamepad  GamepadConfig  `mapstructure:"gamepad" toml:"gamepad" json:"gamepad"`
	// Pointer decides when mouse movement ends remote-control mode.
	Pointer  PointerConfig  `mapstructure:"pointer" toml:"pointer" json:"pointer"`
	Hint     HintConfig     `mapstructure:"hint" toml:"hint" json:"hint"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
}

// NavigationConfig holds spatial search weights.
type NavigationConfig struct {
	// Enabled turns directional navigation on or off.
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// AlignTolerance is the minimum center offset, in pixels, for a candidate
	// to count as lying in the requested direction.
	AlignTolerance float64 `mapstructure:"align_tolerance" toml:"align_tolerance" json:"align_tolerance" jsonschema:"minimum=0"`
	// CrossAxisWeight penalizes lateral offset against forward distance.
	CrossAxisWeight float64 `mapstructure:"cross_axis_weight" toml:"cross_axis_weight" json:"cross_axis_weight" jsonschema:"minimum=0"`
	// AlignmentBonus is subtracted from the score of a fully overlapping candidate.
	AlignmentBonus float64 `mapstructure:"alignment_bonus" toml:"alignment_bonus" json:"alignment_bonus" jsonschema:"minimum=0"`
	// Loop wraps around in list order when nothing lies in the requested direction.
	Loop bool `mapstructure:"loop" toml:"loop" json:"loop"`
}

// ScrollConfig holds viewport margins, in pixels.
type ScrollConfig struct {
	TopMargin    float64 `mapstructure:"top_margin" toml:"top_margin" json:"top_margin" jsonschema:"minimum=0"`
	BottomMargin float64 `mapstructure:"bottom_margin" toml:"bottom_margin" json:"bottom_margin" jsonschema:"minimum=0"`
	SideMargin   float64 `mapstructure:"side_margin" toml:"side_margin" json:"side_margin" jsonschema:"minimum=0"`
	// ComfortLine is where a vertically scrolled target's center lands, as a
	// fraction of the viewport height.
	ComfortLine float64 `mapstructure:"comfort_line" toml:"comfort_line" json:"comfort_line" jsonschema:"minimum=0,maximum=1"`
}

type KeyboardConfig struct {
	// NavDelayMs discards arrow presses closer together than this.
	NavDelayMs int `mapstructure:"nav_delay_ms" toml:"nav_delay_ms" json:"nav_delay_ms" jsonschema:"minimum=0"`
}

type GamepadConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// NavDelayMs throttles D-pad and stick navigation.
	NavDelayMs int `mapstructure:"nav_delay_ms" toml:"nav_delay_ms" json:"nav_delay_ms" jsonschema:"minimum=0"`
	// Deadzone is the stick magnitude (0..1) below which the stick is at rest.
	Deadzone       float64 `mapstructure:"deadzone" toml:"deadzone" json:"deadzone" jsonschema:"minimum=0,maximum=1"`
	PollIntervalMs int     `mapstructure:"poll_interval_ms" toml:"poll_interval_ms" json:"poll_interval_ms" jsonschema:"minimum=1"`
	// Devices is a glob of Linux joystick device nodes.
	Devices string `mapstructure:"devices" toml:"devices" json:"devices"`
}

type PointerConfig struct {
	// MinMoveDistance is the smallest move, in pixels, that counts as deliberate.
	MinMoveDistance float64 `mapstructure:"min_move_distance" toml:"min_move_distance" json:"min_move_distance" jsonschema:"minimum=0"`
	// MovesToExit consecutive deliberate moves switch to pointer mode.
	MovesToExit       int `mapstructure:"moves_to_exit" toml:"moves_to_exit" json:"moves_to_exit" jsonschema:"minimum=1"`
	MoveResetWindowMs int `mapstructure:"move_reset_window_ms" toml:"move_reset_window_ms" json:"move_reset_window_ms" jsonschema:"minimum=0"`
}

type HintConfig struct {
	// DurationMs hides the key-hint legend after this long without directional input.
	DurationMs int `mapstructure:"duration_ms" toml:"duration_ms" json:"duration_ms" jsonschema:"minimum=0"`
	// ShowOnce never shows the legend again once it was dismissed.
	ShowOnce bool `mapstructure:"show_once" toml:"show_once" json:"show_once"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/remotenav/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// DatabaseConfig holds focus memory storage settings.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/remotenav/remotenav.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// RememberFocus restores the last focused element when returning to a screen.
	RememberFocus bool `mapstructure:"remember_focus" toml:"remember_focus" json:"remember_focus"`
}
