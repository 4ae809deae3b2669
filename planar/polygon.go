package planar

import (
	"github.com/katalvlaran/thetabrick"
)

// Polygon is an ordered loop of points; the last point connects back to the
// first. Bounds, Size and Position are recomputed on every insertion and are
// meaningful only once at least one point is present.
//
// Fields are exported for reading. Mutate through Push and Extend only,
// otherwise the derived attributes go stale.
type Polygon struct {
	Points   []Point
	Min, Max Point
	Size     Size
	Position Point
}

// NewPolygon builds a polygon from points, computing its bounds.
// Complexity: O(len(points)).
func NewPolygon(points ...Point) *Polygon {
	p := &Polygon{Points: make([]Point, 0, len(points))}
	p.Extend(points...)
	return p
}

// Rect builds the axis-aligned rectangle with top-left corner (x, y) and
// extent (w, h), in the order tl, tr, br, bl.
func Rect(x, y, w, h int) *Polygon {
	return NewPolygon(
		Point{X: x, Y: y},
		Point{X: x + w, Y: y},
		Point{X: x + w, Y: y + h},
		Point{X: x, Y: y + h},
	)
}

// Len returns the number of points.
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Push appends one point.
func (p *Polygon) Push(pt Point) {
	p.Extend(pt)
}

// Extend appends points in order.
func (p *Polygon) Extend(points ...Point) {
	if len(points) == 0 {
		return
	}
	first := len(p.Points) == 0
	p.Points = append(p.Points, points...)
	if first {
		// seed from the first point so an empty polygon never drags the origin into its bounds
		p.Min, p.Max = points[0], points[0]
	}
	for _, pt := range points {
		p.Min.X = min(p.Min.X, pt.X)
		p.Min.Y = min(p.Min.Y, pt.Y)
		p.Max.X = max(p.Max.X, pt.X)
		p.Max.Y = max(p.Max.Y, pt.Y)
	}
	p.update()
}

// update recomputes Size and Position from Min/Max.
func (p *Polygon) update() {
	if !p.ValidBounds() {
		thetabrick.Logger().Warn("planar: inverted polygon bounds",
			"min", p.Min, "max", p.Max, "points", len(p.Points))
	}
	p.Size = Size{X: abs(p.Max.X - p.Min.X), Y: abs(p.Max.Y - p.Min.Y)}
	p.Position = Point{
		X: p.Min.X*2 + p.Size.X,
		Y: p.Min.Y*2 + p.Size.Y,
	}
}

// ValidBounds reports whether Min <= Max on both axes.
func (p *Polygon) ValidBounds() bool {
	return p.Min.X <= p.Max.X && p.Min.Y <= p.Max.Y
}

// Clone returns a deep copy.
func (p *Polygon) Clone() *Polygon {
	c := *p
	c.Points = append([]Point(nil), p.Points...)
	return &c
}

// Contains reports whether pt lies inside the polygon under the even-odd rule.
// Complexity: O(n) for n points; O(1) when rejected by the bounding box.
func (p *Polygon) Contains(pt Point) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	if pt.X < p.Min.X || pt.X > p.Max.X || pt.Y < p.Min.Y || pt.Y > p.Max.Y {
		return false
	}

	crossings := 0
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			// integer division truncates toward zero
			ix := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < ix {
				crossings++
			}
		}
	}

	return crossings%2 == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
