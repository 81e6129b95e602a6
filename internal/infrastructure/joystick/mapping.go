package joystick

import (
	"github.com/bnema/remotenav/internal/domain/entity"
)

// Standard-layout indices beyond the ones the navigation engine uses.
const (
	stdButtonX           = 2
	stdButtonY           = 3
	stdButtonLB          = 4
	stdButtonRB          = 5
	stdButtonLT          = 6
	stdButtonRT          = 7
	stdButtonSelect      = 8
	stdButtonStart       = 9
	stdButtonLeftStick   = 10
	stdButtonRightStick  = 11
	stdButtonHome        = 16
	stdAxisRightStickX   = 2
	stdAxisRightStickY   = 3
	standardAxisCount    = 4
	triggerPressedCutoff = 0
)

// Mapping translates raw joystick button and axis numbers into the standard
// gamepad layout. Negative entries are unmapped.
type Mapping struct {
	// Buttons maps raw button numbers to standard button indices.
	Buttons map[uint8]int
	// Axes maps raw axis numbers to standard axis indices.
	Axes map[uint8]int
	// Triggers maps raw analog trigger axes to standard buttons.
	Triggers map[uint8]int
	// HatX and HatY are the raw axes of a digital D-pad reported as a hat.
	HatX, HatY int
}

// XpadMapping matches the Linux xpad and xpadneo drivers, which cover most
// Xbox-style controllers.
func XpadMapping() Mapping {
	return Mapping{
		Buttons: map[uint8]int{
			0:  entity.ButtonA,
			1:  entity.ButtonB,
			2:  stdButtonX,
			3:  stdButtonY,
			4:  stdButtonLB,
			5:  stdButtonRB,
			6:  stdButtonSelect,
			7:  stdButtonStart,
			8:  stdButtonHome,
			9:  stdButtonLeftStick,
			10: stdButtonRightStick,
			// xpad with dpad_to_buttons
			11: entity.ButtonDPadLeft,
			12: entity.ButtonDPadRight,
			13: entity.ButtonDPadUp,
			14: entity.ButtonDPadDown,
		},
		Axes: map[uint8]int{
			0: entity.AxisLeftStickX,
			1: entity.AxisLeftStickY,
			3: stdAxisRightStickX,
			4: stdAxisRightStickY,
		},
		Triggers: map[uint8]int{
			2: stdButtonLT,
			5: stdButtonRT,
		},
		HatX: 6,
		HatY: 7,
	}
}

// state accumulates raw events into a standard-layout snapshot.
type state struct {
	mapping Mapping
	buttons []bool
	axes    []float64
	// hat keeps D-pad buttons driven by the hat apart from real buttons.
	hat [4]bool
}

func newState(m Mapping) *state {
	return &state{
		mapping: m,
		buttons: make([]bool, entity.StandardButtonCount),
		axes:    make([]float64, standardAxisCount),
	}
}

func normalizeAxis(v int16) float64 {
	if v < 0 {
		return float64(v) / 32768
	}
	return float64(v) / 32767
}

func (s *state) apply(e Event) {
	switch e.Kind() {
	case EventButton:
		if idx, ok := s.mapping.Buttons[e.Number]; ok && idx >= 0 && idx < len(s.buttons) {
			s.buttons[idx] = e.Value != 0
		}
	case EventAxis:
		switch int(e.Number) {
		case s.mapping.HatX:
			s.hat[2] = e.Value < 0
			s.hat[3] = e.Value > 0
			return
		case s.mapping.HatY:
			s.hat[0] = e.Value < 0
			s.hat[1] = e.Value > 0
			return
		}
		if idx, ok := s.mapping.Triggers[e.Number]; ok {
			s.buttons[idx] = e.Value > triggerPressedCutoff
			return
		}
		if idx, ok := s.mapping.Axes[e.Number]; ok && idx >= 0 && idx < len(s.axes) {
			s.axes[idx] = normalizeAxis(e.Value)
		}
	}
}

// snapshot returns the current state with hat directions merged into the
// D-pad buttons.
func (s *state) snapshot() (buttons []bool, axes []float64) {
	buttons = append([]bool(nil), s.buttons...)
	dpad := [4]int{entity.ButtonDPadUp, entity.ButtonDPadDown, entity.ButtonDPadLeft, entity.ButtonDPadRight}
	for i, b := range dpad {
		buttons[b] = buttons[b] || s.hat[i]
	}
	return buttons, append([]float64(nil), s.axes...)
}
