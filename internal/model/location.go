package model

import "math"

// Facing direction along the X axis.
const (
	FaceRight int8 = 1
	FaceLeft  int8 = -1
)

// Location is a position in the 2D world plus facing. Value type,
// passed by value (immutable).
type Location struct {
	X      float64
	Y      float64
	Facing int8 // FaceRight or FaceLeft
}

// NewLocation creates a Location. A non-negative facing sign maps to
// FaceRight.
func NewLocation(x, y float64, facing int8) Location {
	if facing < 0 {
		facing = FaceLeft
	} else {
		facing = FaceRight
	}
	return Location{X: x, Y: y, Facing: facing}
}

// WithFacing returns a copy with updated facing (immutable pattern).
func (l Location) WithFacing(facing int8) Location {
	if facing < 0 {
		l.Facing = FaceLeft
	} else {
		l.Facing = FaceRight
	}
	return l
}

// WithCoordinates returns a copy with updated coordinates.
func (l Location) WithCoordinates(x, y float64) Location {
	l.X = x
	l.Y = y
	return l
}

// Distance returns the distance to another point.
func (l Location) Distance(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}
