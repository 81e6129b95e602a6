package input

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

const (
	// DefaultGamepadNavDelay throttles D-pad and stick navigation.
	DefaultGamepadNavDelay = 150 * time.Millisecond
	// DefaultStickDeadzone is the axis magnitude below which the stick is at rest.
	DefaultStickDeadzone = 0.5
)

// GamepadOptions tunes the gamepad adapter.
type GamepadOptions struct {
	NavDelay     time.Duration
	Deadzone     float64
	PollInterval time.Duration
}

// DefaultGamepadOptions returns the standard gamepad tuning.
func DefaultGamepadOptions() GamepadOptions {
	return GamepadOptions{
		NavDelay:     DefaultGamepadNavDelay,
		Deadzone:     DefaultStickDeadzone,
		PollInterval: DefaultFrameInterval,
	}
}

var dpadDirections = [...]struct {
	button    int
	direction entity.Direction
}{
	{entity.ButtonDPadUp, entity.DirUp},
	{entity.ButtonDPadDown, entity.DirDown},
	{entity.ButtonDPadLeft, entity.DirLeft},
	{entity.ButtonDPadRight, entity.DirRight},
}

type padState struct {
	prev []bool
	// armed is false while the stick stays outside the deadzone after a move.
	armed bool
}

type gamepadAction struct {
	action    Action
	direction entity.Direction
}

// GamepadAdapter polls controllers and turns D-pad presses, button edges and
// stick flicks into navigation.
type GamepadAdapter struct {
	source   port.GamepadSource
	nav      Navigator
	back     BackDispatcher
	notifier RemoteInputNotifier

	opts    GamepadOptions
	now     Clock
	lastNav time.Time
	pads    map[int]*padState
	loop    *FrameLoop

	ctx context.Context
	mu  sync.Mutex
}

// NewGamepadAdapter creates a gamepad adapter. notifier may be nil.
func NewGamepadAdapter(
	ctx context.Context,
	source port.GamepadSource,
	nav Navigator,
	back BackDispatcher,
	notifier RemoteInputNotifier,
	opts GamepadOptions,
) *GamepadAdapter {
	a := &GamepadAdapter{
		source:   source,
		nav:      nav,
		back:     back,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
		pads:     make(map[int]*padState),
		ctx:      ctx,
	}
	a.loop = NewFrameLoop(opts.PollInterval, func(ctx context.Context) {
		a.Poll(ctx)
	})
	return a
}

// SetClock replaces the time source.
func (a *GamepadAdapter) SetClock(now Clock) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.now = now
}

// SetOptions updates throttle and deadzone. The poll interval applies to the
// next loop start.
func (a *GamepadAdapter) SetOptions(opts GamepadOptions) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.opts = opts
}

// Attach starts polling whenever the notifier reports a controller.
func (a *GamepadAdapter) Attach(notifier port.GamepadConnectionNotifier) {
	notifier.OnConnected(func(index int) {
		logging.FromContext(a.ctx).Info().Int("gamepad", index).Msg("gamepad connected")
		a.Start()
	})
}

// Start begins per-frame polling. No-op if already polling.
func (a *GamepadAdapter) Start() bool {
	return a.loop.Start(a.ctx)
}

// Polling reports whether the frame loop is running.
func (a *GamepadAdapter) Polling() bool {
	return a.loop.Running()
}

// Close stops polling.
func (a *GamepadAdapter) Close() {
	a.loop.Stop()
}

// Poll samples every controller once and dispatches the resulting actions.
// Returns the number of actions dispatched.
func (a *GamepadAdapter) Poll(ctx context.Context) int {
	actions := a.collect(a.source.Gamepads())
	if len(actions) == 0 {
		return 0
	}

	log := logging.FromContext(ctx)
	if a.notifier != nil {
		a.notifier.NoteDirectionalInput(ctx)
	}

	for _, act := range actions {
		switch act.action {
		case ActionMove:
			moved := a.nav.MoveFocus(ctx, act.direction)
			log.Debug().Str("direction", string(act.direction)).Bool("moved", moved).Msg("gamepad navigation")
		case ActionActivate:
			a.nav.Activate(ctx)
		case ActionBack:
			if a.back != nil {
				a.back.HandleBack(ctx)
			}
		}
	}
	return len(actions)
}

func (a *GamepadAdapter) collect(pads []entity.GamepadState) []gamepadAction {
	a.mu.Lock()
	defer a.mu.Unlock()

	var actions []gamepadAction
	seen := make(map[int]struct{}, len(pads))

	for _, pad := range pads {
		if !pad.Connected {
			continue
		}
		seen[pad.Index] = struct{}{}

		st, ok := a.pads[pad.Index]
		if !ok {
			st = &padState{armed: true}
			a.pads[pad.Index] = st
		}

		pressedEdge := func(button int) bool {
			was := button < len(st.prev) && st.prev[button]
			return pad.Pressed(button) && !was
		}

		// A held D-pad repeats once per throttle window.
		for _, d := range dpadDirections {
			if pad.Pressed(d.button) && a.acceptNavLocked() {
				actions = append(actions, gamepadAction{action: ActionMove, direction: d.direction})
			}
		}
		if pressedEdge(entity.ButtonA) {
			actions = append(actions, gamepadAction{action: ActionActivate})
		}
		if pressedEdge(entity.ButtonB) {
			actions = append(actions, gamepadAction{action: ActionBack})
		}

		if dir, ok := a.stickLocked(pad, st); ok {
			actions = append(actions, gamepadAction{action: ActionMove, direction: dir})
		}

		st.prev = append(st.prev[:0], pad.Buttons...)
	}

	for idx := range a.pads {
		if _, ok := seen[idx]; !ok {
			delete(a.pads, idx)
		}
	}
	return actions
}

// stickLocked reads the left stick. A flick fires once, then the stick must
// return inside the deadzone before it can fire again.
func (a *GamepadAdapter) stickLocked(pad entity.GamepadState, st *padState) (entity.Direction, bool) {
	x := pad.Axis(entity.AxisLeftStickX)
	y := pad.Axis(entity.AxisLeftStickY)
	dz := a.opts.Deadzone

	if math.Abs(x) < dz && math.Abs(y) < dz {
		st.armed = true
		return "", false
	}
	if !st.armed || !a.acceptNavLocked() {
		return "", false
	}
	st.armed = false

	if math.Abs(x) >= math.Abs(y) {
		if x > 0 {
			return entity.DirRight, true
		}
		return entity.DirLeft, true
	}
	if y > 0 {
		return entity.DirDown, true
	}
	return entity.DirUp, true
}

func (a *GamepadAdapter) acceptNavLocked() bool {
	now := a.now()
	if !a.lastNav.IsZero() && now.Sub(a.lastNav) < a.opts.NavDelay {
		return false
	}
	a.lastNav = now
	return true
}
