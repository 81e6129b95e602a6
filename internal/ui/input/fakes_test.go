package input

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/ui/focus"
)

type fakeNav struct {
	mu          sync.Mutex
	moves       []entity.Direction
	activations int
	synced      []entity.TargetID
	remote      bool
	hasFocus    bool
	pointerMode int
}

func (n *fakeNav) MoveFocus(_ context.Context, d entity.Direction) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.moves = append(n.moves, d)
	n.hasFocus = true
	return true
}

func (n *fakeNav) Activate(context.Context) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.hasFocus {
		return false
	}
	n.activations++
	return true
}

func (n *fakeNav) SyncFromPointer(_ context.Context, id entity.TargetID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.synced = append(n.synced, id)
	n.hasFocus = true
	return true
}

func (n *fakeNav) RemoteMode() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.remote
}

func (n *fakeNav) EnterPointerMode(context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.remote = false
	n.pointerMode++
}

func (n *fakeNav) Moves() []entity.Direction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]entity.Direction(nil), n.moves...)
}

type fakeBack struct {
	calls   int
	consume bool
}

func (b *fakeBack) HandleBack(context.Context) bool {
	b.calls++
	return b.consume
}

type fakeNotifier struct {
	mu    sync.Mutex
	count int
}

func (f *fakeNotifier) NoteDirectionalInput(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
}

type fakeSource struct {
	mu   sync.Mutex
	pads []entity.GamepadState
}

func (s *fakeSource) Gamepads() []entity.GamepadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.GamepadState(nil), s.pads...)
}

func (s *fakeSource) set(pads ...entity.GamepadState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pads = pads
}

type fakeNotifierHub struct {
	fns []func(int)
}

func (h *fakeNotifierHub) OnConnected(fn func(index int)) {
	h.fns = append(h.fns, fn)
}

func (h *fakeNotifierHub) connect(index int) {
	for _, fn := range h.fns {
		fn(index)
	}
}

type fakeSwitcher struct {
	mu        sync.Mutex
	remote    bool
	entered   int
	listeners []focus.ModeChangeFunc
}

func (s *fakeSwitcher) EnterRemoteMode(context.Context) {
	s.mu.Lock()
	s.entered++
	changed := !s.remote
	s.remote = true
	listeners := append([]focus.ModeChangeFunc(nil), s.listeners...)
	s.mu.Unlock()
	if changed {
		for _, fn := range listeners {
			fn(true)
		}
	}
}

func (s *fakeSwitcher) OnModeChange(fn focus.ModeChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *fakeSwitcher) leaveRemote() {
	s.mu.Lock()
	s.remote = false
	listeners := append([]focus.ModeChangeFunc(nil), s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(false)
	}
}

type fakeHints struct {
	mu     sync.Mutex
	seen   bool
	marked int
}

func (h *fakeHints) HintSeen(context.Context) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seen, nil
}

func (h *fakeHints) MarkHintSeen(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = true
	h.marked++
	return nil
}

func (h *fakeHints) ResetHint(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = false
	return nil
}

func (h *fakeHints) Marked() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.marked
}

// manualClock is a settable time source.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func pad(index int, pressed ...int) entity.GamepadState {
	buttons := make([]bool, entity.StandardButtonCount)
	for _, b := range pressed {
		buttons[b] = true
	}
	return entity.GamepadState{
		Index:     index,
		ID:        "test pad",
		Connected: true,
		Buttons:   buttons,
		Axes:      make([]float64, 4),
	}
}

func stick(index int, x, y float64) entity.GamepadState {
	p := pad(index)
	p.Axes[entity.AxisLeftStickX] = x
	p.Axes[entity.AxisLeftStickY] = y
	return p
}
