// Package cmd provides Cobra CLI commands for remotenav.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli"
	"github.com/bnema/remotenav/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "remotenav",
		Short: "D-pad focus navigation for TV front ends",
		Long: `remotenav - steer a TV front end with a remote, a keyboard or a gamepad.

A directional focus-navigation engine: every screen (channel lists, movie
carousels, player controls, modals) is reachable with Up/Down/Left/Right,
Select and Back, while the pointer keeps working without the two fighting.

Features:
  - Spatial search with alignment preference and optional wrap-around
  - Keyboard, gamepad D-pad and analog stick input (Linux joystick API)
  - Two-stage scroll-into-view for carousels
  - Back handler stack for modals and overlays
  - Focus memory per screen, persisted in SQLite
  - Hot-reloaded TOML configuration

Use 'remotenav demo' to try it in a terminal TV shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
