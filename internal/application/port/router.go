package port

import "context"

// Router is the page-level routing collaborator used as the Back fallback.
type Router interface {
	// AtRoot reports whether the application shows its root screen.
	AtRoot() bool

	// NavigateBack performs the default "navigate back" action.
	NavigateBack(ctx context.Context)
}
