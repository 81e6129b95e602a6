package focus

import (
	"context"
	"sync"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/application/usecase"
	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/domain/repository"
	"github.com/bnema/remotenav/internal/logging"
)

// FocusChangeFunc is called after the focused target changed. Either side may be empty.
type FocusChangeFunc func(from, to entity.TargetID)

// ModeChangeFunc is called after the navigation mode flipped.
type ModeChangeFunc func(remote bool)

// Options tunes the controller.
type Options struct {
	Scroll ScrollMargins
	// Loop wraps around in list order when nothing lies in the requested direction.
	Loop bool
}

// DefaultOptions returns the default controller options.
func DefaultOptions() Options {
	return Options{Scroll: DefaultScrollMargins()}
}

// SetFocusOptions controls the side effects of SetFocus.
type SetFocusOptions struct {
	ScrollIntoView bool
}

// Controller is the single owner of the focus state. Input adapters only call
// its operations; they never touch markers, native focus or scrolling.
//
// The renderer and scroller are invoked with the internal lock held and must
// not call back into the controller. Listeners and Activate run after the lock
// is released and may.
type Controller struct {
	registry *Registry
	search   *usecase.SpatialSearchUseCase
	renderer port.FocusRenderer
	scroller port.Scroller
	memory   repository.FocusMemoryRepository

	opts       Options
	state      entity.FocusState
	currentKey string
	screen     string
	scope      string

	focusListeners []FocusChangeFunc
	modeListeners  []ModeChangeFunc

	mu sync.Mutex
}

// NewController creates a focus controller. scroller and memory may be nil.
func NewController(
	registry *Registry,
	search *usecase.SpatialSearchUseCase,
	renderer port.FocusRenderer,
	scroller port.Scroller,
	memory repository.FocusMemoryRepository,
	opts Options,
) *Controller {
	return &Controller{
		registry: registry,
		search:   search,
		renderer: renderer,
		scroller: scroller,
		memory:   memory,
		opts:     opts,
		state: entity.FocusState{
			Enabled: true,
			Phase:   entity.PhaseUninitialized,
		},
	}
}

// pendingEvents collects notifications raised under the lock.
type pendingEvents struct {
	focusChanged bool
	from, to     entity.TargetID
	modeChanged  bool
	remote       bool
}

// emit delivers notifications. Must be called without c.mu held.
func (c *Controller) emit(ev pendingEvents) {
	if !ev.focusChanged && !ev.modeChanged {
		return
	}
	c.mu.Lock()
	focusListeners := make([]FocusChangeFunc, len(c.focusListeners))
	copy(focusListeners, c.focusListeners)
	modeListeners := make([]ModeChangeFunc, len(c.modeListeners))
	copy(modeListeners, c.modeListeners)
	c.mu.Unlock()

	if ev.focusChanged {
		for _, fn := range focusListeners {
			fn(ev.from, ev.to)
		}
	}
	if ev.modeChanged {
		for _, fn := range modeListeners {
			fn(ev.remote)
		}
	}
}

// OnFocusChange registers a callback for focus changes.
func (c *Controller) OnFocusChange(fn FocusChangeFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focusListeners = append(c.focusListeners, fn)
}

// OnModeChange registers a callback for remote/pointer mode changes.
func (c *Controller) OnModeChange(fn ModeChangeFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modeListeners = append(c.modeListeners, fn)
}

// State returns a snapshot of the focus state.
func (c *Controller) State() entity.FocusState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the focused target, or an empty ID.
func (c *Controller) Current() entity.TargetID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Current
}

// RemoteMode reports whether the last input was directional.
func (c *Controller) RemoteMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.RemoteMode
}

// Screen returns the screen name set by the last ResetForRoute.
func (c *Controller) Screen() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// SetOptions replaces the controller options (used on config reload).
func (c *Controller) SetOptions(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts = opts
}

// SetScope restricts navigation to a sub-container. Empty means the whole document.
func (c *Controller) SetScope(scope string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scope = scope
}

// SetEnabled turns navigation on or off. While disabled, moves and
// activation are no-ops; the current focus is kept.
func (c *Controller) SetEnabled(ctx context.Context, enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initLocked()
	if c.state.Enabled == enabled {
		return
	}
	c.state.Enabled = enabled
	logging.FromContext(ctx).Debug().Bool("enabled", enabled).Msg("focus navigation toggled")
}

// EnterRemoteMode records that the last input was directional.
func (c *Controller) EnterRemoteMode(ctx context.Context) {
	c.setMode(ctx, true)
}

// EnterPointerMode records that the user went back to the pointer.
func (c *Controller) EnterPointerMode(ctx context.Context) {
	c.setMode(ctx, false)
}

func (c *Controller) setMode(ctx context.Context, remote bool) {
	c.mu.Lock()
	c.initLocked()
	if c.state.RemoteMode == remote {
		c.mu.Unlock()
		return
	}
	c.state.RemoteMode = remote
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().Bool("remote", remote).Msg("navigation mode changed")
	c.emit(pendingEvents{modeChanged: true, remote: remote})
}

// SetFocus focuses the target with the given ID, or clears focus for an empty ID.
// Returns false when the target is not currently eligible.
func (c *Controller) SetFocus(ctx context.Context, id entity.TargetID, opts SetFocusOptions) bool {
	c.mu.Lock()
	c.initLocked()

	if id == "" {
		ev := c.clearLocked()
		c.mu.Unlock()
		c.emit(ev)
		return true
	}

	target, ok := c.registry.Lookup(ctx, id, c.scope)
	if !ok {
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("target", string(id)).Msg("set focus on ineligible target ignored")
		return false
	}

	ev := c.applyLocked(ctx, target, opts.ScrollIntoView)
	c.mu.Unlock()
	c.emit(ev)
	return true
}

// MoveFocus moves focus one step in direction using the live registry.
// Returns whether focus actually changed. A failed move is a no-op.
func (c *Controller) MoveFocus(ctx context.Context, direction entity.Direction) bool {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	c.initLocked()
	if !c.state.Enabled {
		c.mu.Unlock()
		return false
	}

	candidates := c.registry.CollectCandidates(ctx, c.scope)
	output, err := c.search.FindNext(ctx, usecase.FindNextInput{
		Current:    c.state.Current,
		Direction:  direction,
		Candidates: candidates,
		Loop:       c.opts.Loop,
	})
	if err != nil {
		c.mu.Unlock()
		log.Warn().Err(err).Str("direction", string(direction)).Msg("move focus failed")
		return false
	}
	if !output.Found || output.Target.ID == c.state.Current {
		c.mu.Unlock()
		return false
	}

	if output.ColdStart && c.state.Current != "" {
		log.Debug().Str("stale", string(c.state.Current)).Msg("focused target vanished, recovering")
	}

	ev := c.applyLocked(ctx, output.Target, true)
	c.mu.Unlock()
	c.emit(ev)
	return true
}

// FocusFirst focuses the first eligible target inside scope. An empty scope
// uses the controller's scope. Returns false when there is no candidate.
func (c *Controller) FocusFirst(ctx context.Context, scope string) bool {
	c.mu.Lock()
	c.initLocked()
	ev, ok := c.focusFirstLocked(ctx, scope)
	c.mu.Unlock()
	c.emit(ev)
	return ok
}

// FocusElement focuses the target carrying the given focus key.
func (c *Controller) FocusElement(ctx context.Context, key, scope string) bool {
	c.mu.Lock()
	c.initLocked()
	if scope == "" {
		scope = c.scope
	}
	target, ok := c.registry.FindByKey(ctx, key, scope)
	if !ok {
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("key", key).Msg("focus key not found")
		return false
	}
	ev := c.applyLocked(ctx, target, true)
	c.mu.Unlock()
	c.emit(ev)
	return true
}

// SyncFromPointer aligns the focus state with a pointer click on id.
// It never scrolls and never changes the navigation mode.
func (c *Controller) SyncFromPointer(ctx context.Context, id entity.TargetID) bool {
	c.mu.Lock()
	c.initLocked()
	target, ok := c.registry.Lookup(ctx, id, c.scope)
	if !ok {
		c.mu.Unlock()
		return false
	}
	ev := c.applyLocked(ctx, target, false)
	c.mu.Unlock()
	c.emit(ev)
	return true
}

// Activate triggers the focused target through the same entry point a
// pointer click uses. Returns false when nothing valid is focused.
func (c *Controller) Activate(ctx context.Context) bool {
	c.mu.Lock()
	c.initLocked()
	id := c.state.Current
	valid := c.state.Enabled && c.registry.IsValid(ctx, id, c.scope)
	c.mu.Unlock()

	if !valid {
		return false
	}
	logging.FromContext(ctx).Debug().Str("target", string(id)).Msg("activating target")
	c.renderer.Activate(id)
	return true
}

// Revalidate keeps the current target if it is still eligible, otherwise
// falls back to the first candidate. Returns whether something is focused.
func (c *Controller) Revalidate(ctx context.Context) bool {
	c.mu.Lock()
	c.initLocked()
	if c.state.Current != "" && c.registry.IsValid(ctx, c.state.Current, c.scope) {
		c.mu.Unlock()
		return true
	}

	ev := c.clearLocked()
	firstEv, ok := c.focusFirstLocked(ctx, "")
	c.mu.Unlock()

	c.emit(mergeEvents(ev, firstEv))
	return ok
}

// ResetForRoute handles a page/route change to screen: the focus of the old
// screen is remembered, focus is cleared, and in remote mode it is re-seeded
// from memory or the first candidate.
func (c *Controller) ResetForRoute(ctx context.Context, screen string) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	c.initLocked()
	oldScreen, oldKey := c.screen, c.currentKey
	ev := c.clearLocked()
	c.screen = screen
	remote := c.state.RemoteMode
	c.mu.Unlock()
	c.emit(ev)

	log.Debug().Str("from", oldScreen).Str("to", screen).Bool("remote", remote).Msg("route changed")

	c.remember(ctx, oldScreen, oldKey)

	if !remote {
		return
	}
	if key := c.recall(ctx, screen); key != "" && c.FocusElement(ctx, key, "") {
		return
	}
	c.FocusFirst(ctx, "")
}

func (c *Controller) remember(ctx context.Context, screen, key string) {
	if c.memory == nil || screen == "" || key == "" {
		return
	}
	if err := c.memory.Set(ctx, &entity.FocusMemory{Screen: screen, Key: key}); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("screen", screen).Msg("failed to remember focus")
	}
}

func (c *Controller) recall(ctx context.Context, screen string) string {
	if c.memory == nil || screen == "" {
		return ""
	}
	mem, err := c.memory.Get(ctx, screen)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("screen", screen).Msg("failed to recall focus")
		return ""
	}
	if mem == nil {
		return ""
	}
	return mem.Key
}

// initLocked leaves the uninitialized phase. Must be called with c.mu held.
func (c *Controller) initLocked() {
	if c.state.Phase == entity.PhaseUninitialized {
		c.state.Phase = entity.PhaseIdle
	}
}

// focusFirstLocked must be called with c.mu held.
func (c *Controller) focusFirstLocked(ctx context.Context, scope string) (pendingEvents, bool) {
	if scope == "" {
		scope = c.scope
	}
	candidates := c.registry.CollectCandidates(ctx, scope)
	if len(candidates) == 0 {
		return pendingEvents{}, false
	}
	return c.applyLocked(ctx, candidates[0], true), true
}

// applyLocked moves markers and native focus to target.
// Must be called with c.mu held.
func (c *Controller) applyLocked(ctx context.Context, target entity.Candidate, scroll bool) pendingEvents {
	prev := c.state.Current
	if prev != "" && prev != target.ID {
		c.renderer.SetFocusMarker(prev, false)
	}
	c.renderer.SetFocusMarker(target.ID, true)
	c.renderer.FocusNative(target.ID)

	if scroll {
		c.scrollIntoViewLocked(ctx, target)
	}

	c.state.Current = target.ID
	c.state.Phase = entity.PhaseFocused
	c.currentKey = target.Key

	if prev == target.ID {
		return pendingEvents{}
	}

	logging.FromContext(ctx).Debug().
		Str("from", string(prev)).
		Str("to", string(target.ID)).
		Msg("focus changed")

	return pendingEvents{focusChanged: true, from: prev, to: target.ID}
}

// clearLocked removes focus. Must be called with c.mu held.
func (c *Controller) clearLocked() pendingEvents {
	prev := c.state.Current
	c.state.Current = ""
	c.state.Phase = entity.PhaseIdle
	c.currentKey = ""
	if prev == "" {
		return pendingEvents{}
	}
	c.renderer.SetFocusMarker(prev, false)
	return pendingEvents{focusChanged: true, from: prev, to: ""}
}

// mergeEvents collapses a clear followed by a refocus into one notification.
func mergeEvents(first, second pendingEvents) pendingEvents {
	if !second.focusChanged {
		return first
	}
	if !first.focusChanged {
		return second
	}
	return pendingEvents{focusChanged: first.from != second.to, from: first.from, to: second.to}
}
