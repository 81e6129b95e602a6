// Package joystick reads game controllers through the Linux joystick API
// (/dev/input/js*) and exposes them as standard-layout gamepads.
package joystick

import (
	"encoding/binary"
	"fmt"
)

// EventSize is sizeof(struct js_event).
const EventSize = 8

// Event types from linux/joystick.h.
const (
	EventButton uint8 = 0x01
	EventAxis   uint8 = 0x02
	// EventInit is or-ed into the type for the synthetic events that report
	// the initial state right after open.
	EventInit uint8 = 0x80
)

// Event is one decoded js_event.
type Event struct {
	Time   uint32 // milliseconds, driver clock
	Value  int16
	Type   uint8
	Number uint8
}

// Kind returns the event type without the init flag.
func (e Event) Kind() uint8 {
	return e.Type &^ EventInit
}

// Initial reports whether the event describes the state at open time.
func (e Event) Initial() bool {
	return e.Type&EventInit != 0
}

// DecodeEvent parses one js_event from buf.
func DecodeEvent(buf []byte) (Event, error) {
	if len(buf) < EventSize {
		return Event{}, fmt.Errorf("short joystick event: %d bytes", len(buf))
	}
	return Event{
		Time:   binary.NativeEndian.Uint32(buf[0:4]),
		Value:  int16(binary.NativeEndian.Uint16(buf[4:6])),
		Type:   buf[6],
		Number: buf[7],
	}, nil
}

// EncodeEvent is the inverse of DecodeEvent.
func EncodeEvent(e Event) []byte {
	buf := make([]byte, EventSize)
	binary.NativeEndian.PutUint32(buf[0:4], e.Time)
	binary.NativeEndian.PutUint16(buf[4:6], uint16(e.Value))
	buf[6] = e.Type
	buf[7] = e.Number
	return buf
}
