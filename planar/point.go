package planar

import (
	"fmt"
	"math"
)

// Point is an integer coordinate in the shared plane.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// FromFloat rounds a float coordinate to the nearest grid point
// (halves away from zero).
func FromFloat(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// Float returns the coordinate as float64 values.
func (p Point) Float() (x, y float64) {
	return float64(p.X), float64(p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a non-negative extent along both axes.
type Size struct {
	X, Y int
}

// Empty reports whether either extent is zero.
func (s Size) Empty() bool {
	return s.X == 0 || s.Y == 0
}
