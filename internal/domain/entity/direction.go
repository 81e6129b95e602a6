package entity

// Direction is the unit of a single navigation step.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// Axis identifies the screen axis a direction moves along.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Directions lists every valid direction.
func Directions() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	default:
		return false
	}
}

// Axis returns the main axis of the direction.
func (d Direction) Axis() Axis {
	if d == DirLeft || d == DirRight {
		return AxisHorizontal
	}
	return AxisVertical
}

// Forward reports whether the direction moves toward increasing coordinates.
func (d Direction) Forward() bool {
	return d == DirDown || d == DirRight
}

func (d Direction) String() string { return string(d) }
