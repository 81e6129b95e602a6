package entity

// Standard gamepad layout button indices.
const (
	ButtonA         = 0
	ButtonB         = 1
	ButtonDPadUp    = 12
	ButtonDPadDown  = 13
	ButtonDPadLeft  = 14
	ButtonDPadRight = 15

	// StandardButtonCount is the number of buttons in the standard layout.
	StandardButtonCount = 17
)

// Standard gamepad layout axis indices.
const (
	AxisLeftStickX = 0
	AxisLeftStickY = 1
)

// GamepadState is a snapshot of one controller taken during a poll.
type GamepadState struct {
	Index     int
	ID        string
	Connected bool
	Buttons   []bool
	Axes      []float64 // Normalized to [-1, 1]; positive Y points down
}

// Pressed reports whether the button at index is held.
// Out-of-range indices read as released.
func (g GamepadState) Pressed(index int) bool {
	if index < 0 || index >= len(g.Buttons) {
		return false
	}
	return g.Buttons[index]
}

// Axis returns the axis value at index, or zero when absent.
func (g GamepadState) Axis(index int) float64 {
	if index < 0 || index >= len(g.Axes) {
		return 0
	}
	return g.Axes[index]
}
