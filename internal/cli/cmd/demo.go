package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/remotenav/internal/cli"
	"github.com/bnema/remotenav/internal/cli/model"
	"github.com/bnema/remotenav/internal/infrastructure/config"
	"github.com/bnema/remotenav/internal/infrastructure/joystick"
	"github.com/bnema/remotenav/internal/logging"
)

var demoNoGamepad bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the terminal TV shell",
	Long: `Run a TV front end in the terminal, driven by the focus engine.

The shell has a channel rail, movie carousels, a search field, a player with
controls and a channel modal. Navigate with the arrow keys or a gamepad,
select with Enter or A, go back with Esc, Backspace or B. Moving the mouse
hands control back to the pointer.

Config changes are applied live.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoNoGamepad, "no-gamepad", false, "ignore joysticks even if enabled in config")
}

func runDemo(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "demo")
	log := logging.FromContext(ctx)

	cfg := app.Config
	if demoNoGamepad {
		copied := *cfg
		copied.Gamepad.Enabled = false
		cfg = &copied
	}

	shell := model.NewShell(ctx, model.DemoCatalog())

	var pads *joystick.Manager
	deps := cli.NavigationDeps{
		Surface:  shell,
		Renderer: shell,
		Scroller: shell,
		Router:   shell,
		Memory:   app.Memory,
		Hints:    app.Hints,
	}
	if cfg.Gamepad.Enabled {
		pads = joystick.NewManager(cfg.Gamepad.Devices, joystick.XpadMapping())
		defer func() { _ = pads.Close() }()
		deps.Gamepads = pads
	}

	nav := cli.NewNavigation(ctx, cfg, deps)
	defer nav.Close()
	shell.Attach(nav.Engine)
	nav.Engine.Controller.ResetForRoute(ctx, model.ScreenHome)

	tvDeps := model.TVShellDeps{
		Shell:     shell,
		Engine:    nav.Engine,
		Keyboard:  nav.Keyboard,
		Pointer:   nav.Pointer,
		Indicator: nav.Indicator,
		Theme:     app.Theme,
	}
	if pads != nil {
		nav.Gamepad.Attach(pads)
		tvDeps.Gamepads = func() int { return len(pads.Devices()) }
	}
	tv := model.NewTVShell(ctx, tvDeps)

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(newCfg *config.Config) {
			nav.Apply(ctx, newCfg)
			tv.Notify()
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload unavailable")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	programCtx, cancelProgram := context.WithCancel(gctx)
	defer cancelProgram()

	if pads != nil {
		g.Go(func() error {
			defer logging.RecoverPanic(gctx)
			if err := pads.Watch(gctx); err != nil {
				// No /dev/input on this machine; keyboard and mouse still work.
				log.Warn().Err(err).Msg("joystick hotplug disabled")
			}
			return nil
		})
	}

	g.Go(func() error {
		defer logging.RecoverPanic(gctx)
		// Quitting the TUI ends the whole group.
		defer stop()
		program := tea.NewProgram(tv,
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithContext(programCtx),
		)
		if _, err := program.Run(); err != nil && programCtx.Err() == nil {
			return fmt.Errorf("run tv shell: %w", err)
		}
		return nil
	})

	err := g.Wait()
	log.Info().Msg("demo stopped")
	return err
}
