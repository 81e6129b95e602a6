package input

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/remotenav/internal/logging"
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameLoop runs a task once per frame until stopped.
// At most one loop goroutine runs at a time.
type FrameLoop struct {
	interval time.Duration
	tick     func(ctx context.Context)

	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
}

// NewFrameLoop creates a stopped frame loop.
func NewFrameLoop(interval time.Duration, tick func(ctx context.Context)) *FrameLoop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameLoop{
		interval: interval,
		tick:     tick,
	}
}

// Start launches the loop. Returns false if it was already running.
func (l *FrameLoop) Start(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		return false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	logging.FromContext(ctx).Debug().Dur("interval", l.interval).Msg("frame loop started")

	go l.run(loopCtx, done)
	return true
}

func (l *FrameLoop) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer l.release(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

// release clears the loop state when the parent context ended the loop.
func (l *FrameLoop) release(done chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done == done {
		l.cancel()
		l.cancel, l.done = nil, nil
	}
}

// Stop cancels the loop and waits for the current frame to finish.
// Safe to call on a stopped loop.
func (l *FrameLoop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop goroutine is active.
func (l *FrameLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}
