package arc

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/thetabrick/planar"
)

// Arc is the part of a circle between Begin and End (radians, Begin <= End).
// Inner marks an arc that bounds its band from the inside, which flips the
// side its wedges are built on.
type Arc struct {
	Centre     planar.Point
	Radius     int
	Begin, End float64
	Inner      bool
}

// Validate rejects negative radii and inverted or non-finite spans.
func (a Arc) Validate() error {
	if a.Radius < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRadius, a.Radius)
	}
	if math.IsNaN(a.Begin) || math.IsNaN(a.End) || math.IsInf(a.Begin, 0) || math.IsInf(a.End, 0) || a.End < a.Begin {
		return fmt.Errorf("%w: [%v, %v]", ErrInvertedSpan, a.Begin, a.End)
	}
	return nil
}

// Span returns End - Begin.
func (a Arc) Span() float64 {
	return a.End - a.Begin
}

// Point returns the rounded coordinate at angle.
func (a Arc) Point(angle float64) planar.Point {
	cx, cy := a.Centre.Float()
	r := float64(a.Radius)
	return planar.FromFloat(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
}

// EvenQuadrant reports whether p lies in the first or third quadrant around
// the centre, axes counted with the quadrant on their positive side.
func (a Arc) EvenQuadrant(p planar.Point) bool {
	return (p.X >= a.Centre.X) == (p.Y >= a.Centre.Y)
}

// Steps returns the number of wedges: floor(radius*span/resolution), at least 1
// and at most MaxSteps. A non-positive resolution falls back to
// DefaultResolution. CheckSteps reports when the cap applies.
func (a Arc) Steps(resolution float64) int {
	q := a.stepQuotient(resolution)
	if !(q < MaxSteps) {
		return MaxSteps
	}
	return max(1, int(math.Floor(q)))
}

// CheckSteps returns ErrTooManySteps when radius*span/resolution does not fit
// in MaxSteps.
func (a Arc) CheckSteps(resolution float64) error {
	if q := a.stepQuotient(resolution); !(q < MaxSteps+1) {
		return fmt.Errorf("%w: radius %d over %.4g rad at resolution %g gives %g steps, max %d",
			ErrTooManySteps, a.Radius, a.Span(), resolution, q, MaxSteps)
	}
	return nil
}

func (a Arc) stepQuotient(resolution float64) float64 {
	if !(resolution > 0) {
		resolution = DefaultResolution
	}
	return float64(a.Radius) * a.Span() / resolution
}

// Concentric returns a copy of a at radius. The copy is Inner when it lies
// inside a.
func (a Arc) Concentric(radius int) Arc {
	c := a
	c.Radius = radius
	c.Inner = radius < a.Radius
	return c
}

// VertexGroups lazily yields, for each of Steps(resolution) equal segments,
// the triple [p(a1), p90, p(a2)]. Consecutive triples share their end points;
// the first starts at p(Begin) and the last ends at p(End).
func (a Arc) VertexGroups(resolution float64) iter.Seq[[3]planar.Point] {
	return func(yield func([3]planar.Point) bool) {
		steps := a.Steps(resolution)
		step := a.Span() / float64(steps)
		for i := 0; i < steps; i++ {
			a1 := a.Begin + float64(i)*step
			a2 := a.Begin + float64(i+1)*step
			if i == steps-1 {
				a2 = a.End
			}
			p1, mid, p3 := a.Point(a1), a.Point((a1+a2)/2), a.Point(a2)

			var p90 planar.Point
			if a.EvenQuadrant(mid) == a.Inner {
				p90 = planar.Pt(p1.X, p3.Y)
			} else {
				p90 = planar.Pt(p3.X, p1.Y)
			}
			if !yield([3]planar.Point{p1, p90, p3}) {
				return
			}
		}
	}
}
