package input

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/domain/repository"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/focus"
)

// DefaultHintDuration is how long the key-hint legend stays up after the
// last directional input.
const DefaultHintDuration = 6 * time.Second

// ModeSwitcher is the mode half of the focus controller.
type ModeSwitcher interface {
	EnterRemoteMode(ctx context.Context)
	OnModeChange(fn focus.ModeChangeFunc)
}

// HintOptions tunes the key-hint legend.
type HintOptions struct {
	Duration time.Duration
	// ShowOnce hides the legend for good once it has been dismissed.
	ShowOnce bool
}

// HintChangeFunc is called when the legend appears or disappears.
type HintChangeFunc func(visible bool)

// ModeIndicator enters remote mode on directional input and manages the
// key-hint legend with an inactivity timeout.
type ModeIndicator struct {
	switcher ModeSwitcher
	hints    repository.HintRepository
	opts     HintOptions

	visible bool
	seen    bool
	closed  bool
	timer   *time.Timer
	// gen invalidates timers that fired after being rescheduled.
	gen uint64

	listeners []HintChangeFunc

	ctx context.Context
	mu  sync.Mutex
}

// NewModeIndicator creates an indicator. hints may be nil, in which case
// show-once only lasts for the process lifetime.
func NewModeIndicator(
	ctx context.Context,
	switcher ModeSwitcher,
	hints repository.HintRepository,
	opts HintOptions,
) *ModeIndicator {
	log := logging.FromContext(ctx)

	m := &ModeIndicator{
		switcher: switcher,
		hints:    hints,
		opts:     opts,
		ctx:      ctx,
	}

	if opts.ShowOnce && hints != nil {
		seen, err := hints.HintSeen(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load hint state")
		}
		m.seen = seen
	}

	switcher.OnModeChange(func(remote bool) {
		if !remote {
			m.hide(0, false)
		}
	})
	return m
}

// OnHintChange registers a legend visibility listener.
func (m *ModeIndicator) OnHintChange(fn HintChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// HintVisible reports whether the legend is shown.
func (m *ModeIndicator) HintVisible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// SetOptions updates the legend tuning. Applies from the next input.
func (m *ModeIndicator) SetOptions(opts HintOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = opts
}

// NoteDirectionalInput enters remote mode and shows the legend, restarting
// the inactivity timer.
func (m *ModeIndicator) NoteDirectionalInput(ctx context.Context) {
	m.switcher.EnterRemoteMode(ctx)

	m.mu.Lock()
	if m.closed || (m.opts.ShowOnce && m.seen && !m.visible) {
		m.mu.Unlock()
		return
	}

	shown := !m.visible
	m.visible = true
	m.scheduleLocked()
	listeners := m.snapshotLocked(shown)
	m.mu.Unlock()

	if shown {
		logging.FromContext(ctx).Debug().Dur("timeout", m.opts.Duration).Msg("key hint shown")
	}
	for _, fn := range listeners {
		fn(true)
	}
}

// Close stops the timer. The legend state is left as is.
func (m *ModeIndicator) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.cancelTimerLocked()
}

func (m *ModeIndicator) scheduleLocked() {
	m.cancelTimerLocked()
	m.gen++
	if m.opts.Duration <= 0 {
		return
	}
	gen := m.gen
	m.timer = time.AfterFunc(m.opts.Duration, func() {
		m.hide(gen, true)
	})
}

func (m *ModeIndicator) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// hide removes the legend. A timer hide only applies if no input arrived
// since it was scheduled.
func (m *ModeIndicator) hide(gen uint64, fromTimer bool) {
	m.mu.Lock()
	if !m.visible || (fromTimer && gen != m.gen) {
		m.mu.Unlock()
		return
	}
	m.visible = false
	m.cancelTimerLocked()
	persist := m.opts.ShowOnce && !m.seen
	if m.opts.ShowOnce {
		m.seen = true
	}
	listeners := m.snapshotLocked(true)
	m.mu.Unlock()

	log := logging.FromContext(m.ctx)
	log.Debug().Bool("timeout", fromTimer).Msg("key hint hidden")

	for _, fn := range listeners {
		fn(false)
	}

	if persist && m.hints != nil {
		if err := m.hints.MarkHintSeen(m.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to persist hint state")
		}
	}
}

func (m *ModeIndicator) snapshotLocked(changed bool) []HintChangeFunc {
	if !changed || len(m.listeners) == 0 {
		return nil
	}
	return append([]HintChangeFunc(nil), m.listeners...)
}
