package cli

import (
	"context"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/repository"
	"github.com/bnema/remotenav/internal/infrastructure/config"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/focus"
	"github.com/bnema/remotenav/internal/ui/input"
)

// NavigationDeps are the front-end collaborators the navigation stack drives.
// Gamepads, Memory and Hints may be nil.
type NavigationDeps struct {
	Surface  port.Surface
	Renderer port.FocusRenderer
	Scroller port.Scroller
	Router   port.Router
	Gamepads port.GamepadSource
	Memory   repository.FocusMemoryRepository
	Hints    repository.HintRepository
}

// Navigation bundles the focus engine with its input adapters.
type Navigation struct {
	Engine    *focus.Engine
	Keyboard  *input.KeyboardAdapter
	Pointer   *input.PointerAdapter
	Gamepad   *input.GamepadAdapter // nil when gamepad input is disabled
	Indicator *input.ModeIndicator
}

// NewNavigation builds the engine and adapters from cfg.
func NewNavigation(ctx context.Context, cfg *config.Config, deps NavigationDeps) *Navigation {
	log := logging.FromContext(ctx).With().Str("component", "navigation").Logger()
	ctx = logging.WithContext(ctx, log)

	memory := deps.Memory
	if !cfg.Database.RememberFocus {
		memory = nil
	}

	engine := focus.NewEngine(focus.Deps{
		Surface:  deps.Surface,
		Renderer: deps.Renderer,
		Scroller: deps.Scroller,
		Router:   deps.Router,
		Memory:   memory,
	}, cfg.SearchTuning(), cfg.FocusOptions())

	indicator := input.NewModeIndicator(ctx, engine.Controller, deps.Hints, cfg.HintOptions())

	nav := &Navigation{
		Engine:    engine,
		Keyboard:  input.NewKeyboardAdapter(ctx, engine.Controller, engine.Back, indicator, cfg.KeyNavDelay()),
		Pointer:   input.NewPointerAdapter(engine.Controller, cfg.PointerOptions()),
		Indicator: indicator,
	}
	if cfg.Gamepad.Enabled && deps.Gamepads != nil {
		nav.Gamepad = input.NewGamepadAdapter(ctx, deps.Gamepads, engine.Controller, engine.Back, indicator, cfg.GamepadOptions())
	}

	engine.Controller.SetEnabled(ctx, cfg.Navigation.Enabled)

	log.Debug().
		Bool("enabled", cfg.Navigation.Enabled).
		Bool("gamepad", nav.Gamepad != nil).
		Bool("remember_focus", memory != nil).
		Msg("navigation ready")
	return nav
}

// Apply pushes a reloaded configuration into the running stack.
// Gamepad and focus memory wiring are fixed at startup.
func (n *Navigation) Apply(ctx context.Context, cfg *config.Config) {
	n.Engine.Reconfigure(cfg.SearchTuning(), cfg.FocusOptions())
	n.Engine.Controller.SetEnabled(ctx, cfg.Navigation.Enabled)
	n.Keyboard.SetNavDelay(cfg.KeyNavDelay())
	n.Pointer.SetOptions(cfg.PointerOptions())
	n.Indicator.SetOptions(cfg.HintOptions())
	if n.Gamepad != nil {
		n.Gamepad.SetOptions(cfg.GamepadOptions())
	}
	logging.FromContext(ctx).Info().Msg("navigation settings reloaded")
}

// Close stops polling and pending hint timers.
func (n *Navigation) Close() {
	if n.Gamepad != nil {
		n.Gamepad.Close()
	}
	n.Indicator.Close()
}
