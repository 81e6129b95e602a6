package input

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

// DefaultKeyNavDelay discards key-repeat storms.
const DefaultKeyNavDelay = 100 * time.Millisecond

// KeyEvent is a key press delivered by the rendering layer.
type KeyEvent struct {
	Key Key
	// InTextField is true when a text input currently owns native focus.
	InTextField bool
}

// KeyboardAdapter maps key presses to navigation, activation and Back.
type KeyboardAdapter struct {
	nav      Navigator
	back     BackDispatcher
	notifier RemoteInputNotifier

	navDelay time.Duration
	now      Clock
	lastNav  time.Time

	ctx context.Context
	mu  sync.Mutex
}

// NewKeyboardAdapter creates a keyboard adapter. notifier may be nil.
func NewKeyboardAdapter(
	ctx context.Context,
	nav Navigator,
	back BackDispatcher,
	notifier RemoteInputNotifier,
	navDelay time.Duration,
) *KeyboardAdapter {
	log := logging.FromContext(ctx)
	log.Debug().Dur("nav_delay", navDelay).Msg("creating keyboard handler")

	return &KeyboardAdapter{
		nav:      nav,
		back:     back,
		notifier: notifier,
		navDelay: navDelay,
		now:      time.Now,
		ctx:      ctx,
	}
}

// SetClock replaces the time source.
func (h *KeyboardAdapter) SetClock(now Clock) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
}

// SetNavDelay changes the minimum delay between two navigations.
func (h *KeyboardAdapter) SetNavDelay(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.navDelay = d
}

// MapKey resolves the action of a key event. Text fields keep every key except
// vertical arrows and Escape so typing is never hijacked.
func MapKey(ev KeyEvent) (Action, entity.Direction) {
	switch ev.Key {
	case KeyArrowUp:
		return ActionMove, entity.DirUp
	case KeyArrowDown:
		return ActionMove, entity.DirDown
	case KeyEscape:
		return ActionBack, ""
	}

	if ev.InTextField {
		return ActionNone, ""
	}

	switch ev.Key {
	case KeyArrowLeft:
		return ActionMove, entity.DirLeft
	case KeyArrowRight:
		return ActionMove, entity.DirRight
	case KeyEnter, KeySpace:
		return ActionActivate, ""
	case KeyBackspace:
		return ActionBack, ""
	default:
		return ActionNone, ""
	}
}

// HandleKey processes a key press.
// Returns true if the event was handled and default behavior should be prevented.
func (h *KeyboardAdapter) HandleKey(ctx context.Context, ev KeyEvent) bool {
	log := logging.FromContext(ctx)

	action, dir := MapKey(ev)
	if action == ActionNone {
		return false
	}

	if action == ActionMove && !h.acceptNav() {
		log.Trace().Str("key", string(ev.Key)).Msg("key repeat discarded")
		return true
	}

	if h.notifier != nil {
		h.notifier.NoteDirectionalInput(ctx)
	}

	switch action {
	case ActionMove:
		moved := h.nav.MoveFocus(ctx, dir)
		log.Debug().Str("direction", string(dir)).Bool("moved", moved).Msg("keyboard navigation")
	case ActionActivate:
		if !h.nav.Activate(ctx) {
			// Nothing focused: let the key reach the page
			return false
		}
	case ActionBack:
		if h.back == nil || !h.back.HandleBack(ctx) {
			return false
		}
	}

	return true
}

// acceptNav enforces the minimum delay between navigations.
func (h *KeyboardAdapter) acceptNav() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	if !h.lastNav.IsZero() && now.Sub(h.lastNav) < h.navDelay {
		return false
	}
	h.lastNav = now
	return true
}
