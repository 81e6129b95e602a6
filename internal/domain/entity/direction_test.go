package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_Valid(t *testing.T) {
	for _, d := range Directions() {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, Direction("diagonal").Valid())
	assert.False(t, Direction("").Valid())
}

func TestDirection_AxisAndForward(t *testing.T) {
	assert.Equal(t, AxisVertical, DirUp.Axis())
	assert.Equal(t, AxisVertical, DirDown.Axis())
	assert.Equal(t, AxisHorizontal, DirLeft.Axis())
	assert.Equal(t, AxisHorizontal, DirRight.Axis())

	assert.True(t, DirDown.Forward())
	assert.True(t, DirRight.Forward())
	assert.False(t, DirUp.Forward())
	assert.False(t, DirLeft.Forward())
}

func TestStyle_Visible(t *testing.T) {
	assert.True(t, VisibleStyle().Visible())
	assert.False(t, Style{Display: false, Visibility: VisibilityVisible, Opacity: 1}.Visible())
	assert.False(t, Style{Display: true, Visibility: VisibilityHidden, Opacity: 1}.Visible())
	assert.False(t, Style{Display: true, Visibility: VisibilityCollapse, Opacity: 1}.Visible())
	assert.False(t, Style{Display: true, Visibility: VisibilityVisible, Opacity: 0}.Visible())
}

func TestGamepadState_OutOfRange(t *testing.T) {
	g := GamepadState{Buttons: []bool{true}, Axes: []float64{0.5}}
	assert.True(t, g.Pressed(ButtonA))
	assert.False(t, g.Pressed(ButtonDPadUp))
	assert.False(t, g.Pressed(-1))
	assert.InDelta(t, 0.5, g.Axis(AxisLeftStickX), 0.001)
	assert.InDelta(t, 0.0, g.Axis(AxisLeftStickY), 0.001)
}
