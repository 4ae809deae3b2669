package canvas

import (
	"errors"
	"image/color"
	"math"

	"github.com/katalvlaran/thetabrick/planar"
)

// ErrNoSurface is returned by Save on canvases that have nothing to persist.
var ErrNoSurface = errors.New("canvas: nothing to save")

// Canvas is a debug drawing surface. Angles are radians measured from +X
// towards +Y (clockwise on screen, since Y grows downwards).
type Canvas interface {
	DrawArc(centre planar.Point, radius int, start, end float64, c color.Color)
	DrawLine(a, b planar.Point, c color.Color)
	DrawOutline(poly *planar.Polygon, c color.Color)
	DrawFilledPolygon(poly *planar.Polygon, c color.Color)
	Save(path string) error
}

// Nop is a Canvas that discards everything.
type Nop struct{}

func (Nop) DrawArc(planar.Point, int, float64, float64, color.Color) {}
func (Nop) DrawLine(planar.Point, planar.Point, color.Color)         {}
func (Nop) DrawOutline(*planar.Polygon, color.Color)                 {}
func (Nop) DrawFilledPolygon(*planar.Polygon, color.Color)           {}
func (Nop) Save(string) error                                        { return ErrNoSurface }

// arcSamples returns the points of a smooth arc, one roughly every pixel
// of circumference, with a floor of eight segments.
func arcSamples(centre planar.Point, radius int, start, end float64) [][2]float64 {
	cx, cy := centre.Float()
	r := float64(radius)
	n := max(8, int(math.Ceil(r*(end-start))))
	pts := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return pts
}

func degenerateArc(radius int, start, end float64) bool {
	return radius <= 0 || !(end > start)
}

func outlineable(poly *planar.Polygon) bool {
	return poly != nil && poly.Len() >= 2
}

func fillable(poly *planar.Polygon) bool {
	return poly != nil && poly.Len() >= 3
}
