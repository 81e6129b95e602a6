package focus

import (
	"context"
	"sync"

	"github.com/bnema/remotenav/internal/application/port"
	"github.com/bnema/remotenav/internal/logging"
)

// BackHandler intercepts the Back gesture. It returns true when it consumed
// the gesture, false to let the next handler below it try.
type BackHandler func(ctx context.Context) bool

type backEntry struct {
	id      uint64
	handler BackHandler
}

// BackStack lets transient UI (modals, overlays, players) intercept Back
// before it falls through to page navigation. Last registered runs first.
type BackStack struct {
	mu      sync.Mutex
	entries []backEntry
	nextID  uint64
	router  port.Router
}

// NewBackStack creates a back stack falling back to router. router may be nil,
// in which case an unconsumed Back is a no-op.
func NewBackStack(router port.Router) *BackStack {
	return &BackStack{router: router}
}

// Register pushes a handler and returns the function that removes it.
// The returned function is idempotent and removes the entry wherever it sits
// in the stack, so overlays may unmount out of order.
func (s *BackStack) Register(handler BackHandler) (unregister func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, backEntry{id: id, handler: handler})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Len returns the number of registered handlers.
func (s *BackStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// HandleBack dispatches a Back gesture. Handlers are tried most recent first;
// the first one that consumes it stops the chain. If none does and the router
// is not at its root screen, the router navigates back exactly once.
// Returns whether anything handled the gesture.
func (s *BackStack) HandleBack(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	// Snapshot so handlers can unregister themselves while running
	s.mu.Lock()
	entries := make([]backEntry, len(s.entries))
	copy(entries, s.entries)
	router := s.router
	s.mu.Unlock()

	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].handler == nil {
			continue
		}
		if entries[i].handler(ctx) {
			log.Debug().Uint64("handler", entries[i].id).Int("depth", len(entries)).Msg("back consumed by handler")
			return true
		}
	}

	if router == nil || router.AtRoot() {
		log.Debug().Msg("back ignored at root")
		return false
	}

	log.Debug().Msg("back falling through to router")
	router.NavigateBack(ctx)
	return true
}

func (s *BackStack) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
