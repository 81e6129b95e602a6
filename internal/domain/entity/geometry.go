// Package entity defines domain entities for the focus-navigation engine.
package entity

// Rect represents a focus target's on-screen position and size, in viewport pixels.
// Used by the spatial search to find the next target by position.
type Rect struct {
	X, Y float64 // Top-left position relative to the viewport
	W, H float64 // Width and height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no rendered area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// OverlapX returns the length of the horizontal overlap between r and other.
// Zero when the two rectangles do not share any column.
func (r Rect) OverlapX(other Rect) float64 {
	return overlap(r.X, r.Right(), other.X, other.Right())
}

// OverlapY returns the length of the vertical overlap between r and other.
func (r Rect) OverlapY(other Rect) float64 {
	return overlap(r.Y, r.Bottom(), other.Y, other.Bottom())
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func overlap(aStart, aEnd, bStart, bEnd float64) float64 {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}
