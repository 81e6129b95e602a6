package entity

import "time"

// FocusMemory records the last focus key used on a screen so focus can be
// restored when the user navigates back to it.
type FocusMemory struct {
	Screen    string
	Key       string
	UpdatedAt time.Time
}
