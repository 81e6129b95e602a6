package entity

// TargetID is the stable identity of a focusable element across re-renders.
type TargetID string

// Visibility mirrors the computed CSS visibility of an element.
type Visibility string

const (
	VisibilityVisible  Visibility = "visible"
	VisibilityHidden   Visibility = "hidden"
	VisibilityCollapse Visibility = "collapse"
)

// Element is a rendered node that marked itself as a focus candidate.
// Geometry and style are queried separately and never stored here.
type Element struct {
	ID        TargetID
	Key       string // Optional stable focus key for programmatic jumps
	Focusable bool
	Disabled  bool
}

// Style is the computed style subset that decides visibility.
type Style struct {
	Display    bool // false means display:none
	Visibility Visibility
	Opacity    float64
}

// VisibleStyle returns the style of a plainly visible element.
func VisibleStyle() Style {
	return Style{Display: true, Visibility: VisibilityVisible, Opacity: 1}
}

// Visible reports whether the style allows the element to be seen.
func (s Style) Visible() bool {
	if !s.Display {
		return false
	}
	if s.Visibility == VisibilityHidden || s.Visibility == VisibilityCollapse {
		return false
	}
	return s.Opacity > 0
}

// Candidate is an eligible focus target sampled at collection time.
type Candidate struct {
	ID   TargetID
	Key  string
	Rect Rect
}
