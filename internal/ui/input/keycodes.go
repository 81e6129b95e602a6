// Package input translates keyboard, gamepad and pointer input into focus
// navigation operations, each source on its own cadence.
package input

import "strings"

// Key is a normalized key name, matching DOM KeyboardEvent.key values.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
	KeyEscape     Key = "Escape"
	KeyBackspace  Key = "Backspace"
)

var keyByName = map[string]Key{
	"up":         KeyArrowUp,
	"arrowup":    KeyArrowUp,
	"down":       KeyArrowDown,
	"arrowdown":  KeyArrowDown,
	"left":       KeyArrowLeft,
	"arrowleft":  KeyArrowLeft,
	"right":      KeyArrowRight,
	"arrowright": KeyArrowRight,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	" ":          KeySpace,
	"space":      KeySpace,
	"esc":        KeyEscape,
	"escape":     KeyEscape,
	"backspace":  KeyBackspace,
}

// ParseKey normalizes a key name ("up", "ArrowUp", "esc", "space", ...).
// Unknown names are returned unchanged.
func ParseKey(name string) Key {
	if name == " " {
		return KeySpace
	}
	if k, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return Key(name)
}
