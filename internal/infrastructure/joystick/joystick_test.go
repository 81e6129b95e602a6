package joystick

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/remotenav/internal/domain/entity"
)

func TestDecodeEvent(t *testing.T) {
	raw := EncodeEvent(Event{Time: 1234, Value: -32767, Type: EventAxis | EventInit, Number: 1})

	ev, err := DecodeEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), ev.Time)
	assert.Equal(t, int16(-32767), ev.Value)
	assert.Equal(t, EventAxis, ev.Kind())
	assert.True(t, ev.Initial())
	assert.Equal(t, uint8(1), ev.Number)

	_, err = DecodeEvent(raw[:5])
	assert.Error(t, err)
}

func TestState_ButtonsAndSticks(t *testing.T) {
	s := newState(XpadMapping())

	s.apply(Event{Type: EventButton, Number: 0, Value: 1})
	s.apply(Event{Type: EventButton | EventInit, Number: 1, Value: 0})
	s.apply(Event{Type: EventAxis, Number: 0, Value: 32767})
	s.apply(Event{Type: EventAxis, Number: 1, Value: -32768})
	s.apply(Event{Type: EventAxis, Number: 2, Value: 20000})
	s.apply(Event{Type: EventButton, Number: 200, Value: 1})

	buttons, axes := s.snapshot()
	assert.True(t, buttons[entity.ButtonA])
	assert.False(t, buttons[entity.ButtonB])
	assert.True(t, buttons[stdButtonLT], "analog trigger past rest counts as pressed")
	assert.InDelta(t, 1.0, axes[entity.AxisLeftStickX], 1e-9)
	assert.InDelta(t, -1.0, axes[entity.AxisLeftStickY], 1e-9)
}

func TestState_HatMapsToDPad(t *testing.T) {
	tests := []struct {
		name   string
		axis   uint8
		value  int16
		button int
	}{
		{"left", 6, -32767, entity.ButtonDPadLeft},
		{"right", 6, 32767, entity.ButtonDPadRight},
		{"up", 7, -32767, entity.ButtonDPadUp},
		{"down", 7, 32767, entity.ButtonDPadDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(XpadMapping())
			s.apply(Event{Type: EventAxis, Number: tt.axis, Value: tt.value})

			buttons, _ := s.snapshot()
			assert.True(t, buttons[tt.button])

			s.apply(Event{Type: EventAxis, Number: tt.axis, Value: 0})
			buttons, _ = s.snapshot()
			assert.False(t, buttons[tt.button], "hat release clears the D-pad")
		})
	}
}

func writeEvents(t *testing.T, path string, events ...Event) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	require.NoError(t, err)
	defer f.Close()
	for _, ev := range events {
		_, err := f.Write(EncodeEvent(ev))
		require.NoError(t, err)
	}
}

func TestDevice_DrainFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "js0")
	writeEvents(t, path,
		Event{Type: EventButton | EventInit, Number: 0, Value: 0},
		Event{Type: EventAxis, Number: 7, Value: 32767},
		Event{Type: EventButton, Number: 1, Value: 1},
	)

	dev, err := OpenDevice(path, XpadMapping())
	require.NoError(t, err)
	t.Cleanup(func() { _ = dev.Close() })

	n, err := dev.Drain()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	pad := dev.Snapshot(3)
	assert.Equal(t, 3, pad.Index)
	assert.True(t, pad.Connected)
	assert.True(t, pad.Pressed(entity.ButtonDPadDown))
	assert.True(t, pad.Pressed(entity.ButtonB))
	assert.Equal(t, "unknown controller", dev.Name())

	require.NoError(t, dev.Close())
	_, err = dev.Drain()
	assert.Error(t, err)
}

func TestManager_ScanAndGamepads(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeEvents(t, filepath.Join(dir, "js0"), Event{Type: EventButton, Number: 0, Value: 1})
	writeEvents(t, filepath.Join(dir, "js1"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event3"), nil, 0o600))

	m := NewManager(filepath.Join(dir, "js*"), XpadMapping())
	t.Cleanup(func() { _ = m.Close() })

	var connected []int
	m.OnConnected(func(index int) { connected = append(connected, index) })

	require.NoError(t, m.Scan(ctx))
	assert.ElementsMatch(t, []int{0, 1}, connected)
	assert.Len(t, m.Devices(), 2)

	pads := m.Gamepads()
	require.Len(t, pads, 2)
	assert.Equal(t, 0, pads[0].Index)
	assert.Equal(t, 1, pads[1].Index)

	pressed := 0
	for _, p := range pads {
		if p.Pressed(entity.ButtonA) {
			pressed++
		}
	}
	assert.Equal(t, 1, pressed)

	require.NoError(t, os.Remove(filepath.Join(dir, "js0")))
	require.NoError(t, m.Scan(ctx))
	assert.Len(t, m.Gamepads(), 1)

	writeEvents(t, filepath.Join(dir, "js2"))
	require.NoError(t, m.Scan(ctx))
	assert.Len(t, m.Gamepads(), 2)
	assert.Len(t, connected, 3, "rescans only announce new devices")
}

func TestManager_ScanNotifiesOutsideLock(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeEvents(t, filepath.Join(dir, "js0"))

	m := NewManager(filepath.Join(dir, "js*"), XpadMapping())
	t.Cleanup(func() { _ = m.Close() })

	var first, late []int
	m.OnConnected(func(index int) {
		first = append(first, index)
		// Listeners may call back into the manager.
		assert.NotEmpty(t, m.Devices())
		m.OnConnected(func(index int) { late = append(late, index) })
	})

	require.NoError(t, m.Scan(ctx))
	assert.Equal(t, []int{0}, first)
	assert.Empty(t, late, "listeners added during a scan wait for the next device")

	writeEvents(t, filepath.Join(dir, "js1"))
	require.NoError(t, m.Scan(ctx))
	assert.Equal(t, []int{0, 1}, first)
	assert.Equal(t, []int{1}, late)
}
