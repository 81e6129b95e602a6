package entity

// Phase is the lifecycle phase of the focus state.
type Phase int

const (
	// PhaseUninitialized is the state before the first focus operation.
	PhaseUninitialized Phase = iota
	// PhaseIdle means the engine is running but nothing is focused.
	PhaseIdle
	// PhaseFocused means a target currently holds focus.
	PhaseFocused
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseIdle:
		return "idle"
	case PhaseFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// FocusState is a snapshot of the engine's focus state.
type FocusState struct {
	Current    TargetID // Empty when nothing is focused
	Enabled    bool
	RemoteMode bool
	Phase      Phase
}

// HasFocus reports whether a target is currently focused.
func (s FocusState) HasFocus() bool {
	return s.Current != ""
}
