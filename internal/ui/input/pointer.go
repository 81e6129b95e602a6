package input

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/logging"
)

const (
	DefaultMinMoveDistance = 10.0
	DefaultMovesToExit     = 5
	DefaultMoveResetWindow = 500 * time.Millisecond
)

// PointerOptions tunes when pointer movement takes over from remote mode.
type PointerOptions struct {
	MinMoveDistance float64
	MovesToExit     int
	ResetWindow     time.Duration
}

// DefaultPointerOptions returns the standard pointer arbitration tuning.
func DefaultPointerOptions() PointerOptions {
	return PointerOptions{
		MinMoveDistance: DefaultMinMoveDistance,
		MovesToExit:     DefaultMovesToExit,
		ResetWindow:     DefaultMoveResetWindow,
	}
}

// PointerAdapter keeps pointer clicks and remote focus in agreement and
// decides when deliberate pointer movement ends remote mode.
// Sensor jitter and a resting hand never leave remote mode.
type PointerAdapter struct {
	nav  Navigator
	opts PointerOptions
	now  Clock

	lastX, lastY float64
	hasPos       bool
	moves        int
	lastMove     time.Time

	mu sync.Mutex
}

// NewPointerAdapter creates a pointer adapter.
func NewPointerAdapter(nav Navigator, opts PointerOptions) *PointerAdapter {
	return &PointerAdapter{
		nav:  nav,
		opts: opts,
		now:  time.Now,
	}
}

// SetClock replaces the time source.
func (p *PointerAdapter) SetClock(now Clock) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = now
}

// SetOptions updates the arbitration tuning and resets the move count.
func (p *PointerAdapter) SetOptions(opts PointerOptions) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts = opts
	p.moves = 0
}

// HandleClick records a click on id as the current focus.
// The mode is left unchanged: a click never ends remote mode.
func (p *PointerAdapter) HandleClick(ctx context.Context, id entity.TargetID) bool {
	if id == "" {
		return false
	}
	return p.nav.SyncFromPointer(ctx, id)
}

// HandleMove processes a pointer position. Returns true when the movement
// switched the engine to pointer mode.
func (p *PointerAdapter) HandleMove(ctx context.Context, x, y float64) bool {
	remote := p.nav.RemoteMode()

	p.mu.Lock()
	if !p.hasPos {
		p.lastX, p.lastY, p.hasPos = x, y, true
		p.mu.Unlock()
		return false
	}

	dist := math.Hypot(x-p.lastX, y-p.lastY)
	p.lastX, p.lastY = x, y

	if !remote || dist < p.opts.MinMoveDistance {
		p.moves = 0
		p.mu.Unlock()
		return false
	}

	now := p.now()
	if !p.lastMove.IsZero() && now.Sub(p.lastMove) > p.opts.ResetWindow {
		p.moves = 0
	}
	p.lastMove = now
	p.moves++

	if p.moves < p.opts.MovesToExit {
		p.mu.Unlock()
		return false
	}
	p.moves = 0
	p.mu.Unlock()

	logging.FromContext(ctx).Debug().Float64("distance", dist).Msg("pointer movement left remote mode")
	p.nav.EnterPointerMode(ctx)
	return true
}
