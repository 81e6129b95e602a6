package input

import (
	"context"
	"time"

	"github.com/bnema/remotenav/internal/domain/entity"
)

// Action is a logical remote-control gesture.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionActivate
	ActionBack
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionActivate:
		return "activate"
	case ActionBack:
		return "back"
	default:
		return "none"
	}
}

// Navigator is the part of the focus controller that input adapters drive.
type Navigator interface {
	MoveFocus(ctx context.Context, direction entity.Direction) bool
	Activate(ctx context.Context) bool
	SyncFromPointer(ctx context.Context, id entity.TargetID) bool
	RemoteMode() bool
	EnterPointerMode(ctx context.Context)
}

// BackDispatcher routes the Back gesture through the back-handler stack.
type BackDispatcher interface {
	HandleBack(ctx context.Context) bool
}

// RemoteInputNotifier is told about every remote-control style input.
type RemoteInputNotifier interface {
	NoteDirectionalInput(ctx context.Context)
}

// Clock returns the current time. Injected in tests.
type Clock func() time.Time
