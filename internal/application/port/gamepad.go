package port

import "github.com/bnema/remotenav/internal/domain/entity"

// GamepadSource exposes polled controller snapshots.
// Gamepads expose no events for button state, so callers poll once per frame.
type GamepadSource interface {
	// Gamepads returns the connected controllers. Disconnected slots may be
	// omitted or reported with Connected=false.
	Gamepads() []entity.GamepadState
}

// GamepadConnectionNotifier signals controller hot-plug.
type GamepadConnectionNotifier interface {
	// OnConnected registers fn to be called whenever a controller appears.
	OnConnected(fn func(index int))
}
