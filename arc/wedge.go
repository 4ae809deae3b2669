package arc

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/brick"
	"github.com/katalvlaran/thetabrick/canvas"
	"github.com/katalvlaran/thetabrick/decompose"
	"github.com/katalvlaran/thetabrick/planar"
)

// WedgeArc is a band of thickness RadiusGap whose outer boundary is Arc.
type WedgeArc struct {
	Color     brick.Color
	Arc       Arc
	RadiusGap int
}

// boundary collects one approximated arc: its wedges in order and every
// vertex of every group.
type boundary struct {
	first, last [3]planar.Point
	points      []planar.Point
	wedges      []brick.Brick
}

// Build approximates the band, appends its bricks to sink and draws the
// intermediate geometry on c (which may be nil). Rectangle bricks are
// appended before wedge bricks. Nothing is appended when an error is returned.
//
// Complexity: O(Steps) plus the band decomposition.
func (w WedgeArc) Build(sink brick.Sink, c canvas.Canvas, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if err = w.Arc.Validate(); err != nil {
		return err
	}
	if w.RadiusGap < 0 {
		return fmt.Errorf("%w: radius gap %d", ErrNegativeRadius, w.RadiusGap)
	}
	if err = w.Arc.CheckSteps(o.Resolution); err != nil {
		return fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	if c == nil {
		c = canvas.Nop{}
	}

	outer := w.Arc
	inner := outer.Concentric(max(0, outer.Radius-w.RadiusGap))

	in := w.approximate(inner, o.Resolution, c)
	out := w.approximate(outer, o.Resolution, c)

	band := w.band(in, out)
	rects, err := decompose.Rectangles(band,
		decompose.WithMaxExtent(o.MaxExtent),
		decompose.WithWorkers(o.Workers),
	)
	if err != nil {
		return fmt.Errorf("arc: decompose band r=%d: %w", outer.Radius, err)
	}

	bricks := make([]brick.Brick, 0, len(rects)+len(in.wedges)+len(out.wedges))
	for _, r := range rects {
		c.DrawFilledPolygon(r, w.Color)
		if b, ok := RectangleBrick(r, w.Color); ok {
			bricks = append(bricks, b)
		}
	}
	bricks = append(bricks, in.wedges...)
	bricks = append(bricks, out.wedges...)
	sink.Append(bricks...)

	thetabrick.Logger().Debug("arc: band built",
		"radius", outer.Radius, "begin", outer.Begin, "end", outer.End,
		"rectangles", len(rects), "wedges", len(in.wedges)+len(out.wedges))
	return nil
}

func (w WedgeArc) approximate(a Arc, resolution float64, c canvas.Canvas) boundary {
	var b boundary
	n := 0
	for g := range a.VertexGroups(resolution) {
		if n == 0 {
			b.first = g
		}
		b.last = g
		n++

		wedge := planar.NewPolygon(g[:]...)
		if br, ok := WedgeBrick(wedge, w.Color); ok {
			b.wedges = append(b.wedges, br)
			c.DrawOutline(wedge, w.Color)
		}
		b.points = append(b.points, g[:]...)
	}
	return b
}

// band closes the annular strip between in and out: the Begin corner, the
// inner points in order, the End corner, then the outer points reversed.
func (w WedgeArc) band(in, out boundary) *planar.Polygon {
	begin, end := w.corners(in, out)
	band := planar.NewPolygon(begin)
	band.Extend(in.points...)
	band.Push(end)
	outer := slices.Clone(out.points)
	slices.Reverse(outer)
	band.Extend(outer...)
	return band
}

// corners returns the two vertices that close the band at Begin and at End.
// Each is the axis-aligned corner between the inner and outer end points,
// picked by the quadrant of the outer point; the Begin corner picks the
// opposite one.
func (w WedgeArc) corners(in, out boundary) (begin, end planar.Point) {
	corner := func(inner, outer planar.Point, inverse bool) planar.Point {
		options := [2]planar.Point{
			planar.Pt(outer.X, inner.Y),
			planar.Pt(inner.X, outer.Y),
		}
		if w.Arc.EvenQuadrant(outer) != inverse {
			return options[1]
		}
		return options[0]
	}
	return corner(in.first[0], out.first[0], true), corner(in.last[2], out.last[2], false)
}

// WedgeBrick maps a three-point wedge [p1, p90, p3] to a wedge brick.
// It reports false when the wedge has a zero extent on either axis.
func WedgeBrick(wedge *planar.Polygon, c brick.Color) (brick.Brick, bool) {
	if wedge == nil || wedge.Len() != 3 || wedge.Size.Empty() {
		return brick.Brick{}, false
	}
	p90 := wedge.Points[1]

	rot := brick.Deg0
	if p90.Y == wedge.Max.Y {
		rot = brick.Deg180
	}
	dir := brick.ZNegative
	if p90 == wedge.Min || p90 == wedge.Max {
		dir = brick.ZPositive
	}

	return brick.Brick{
		Kind:      brick.Wedge,
		Color:     c,
		Size:      [3]int{wedge.Size.X, wedge.Size.Y, brick.Thickness},
		Position:  [3]int{wedge.Position.X, wedge.Position.Y, brick.Thickness},
		Rotation:  rot,
		Direction: dir,
	}, true
}

// RectangleBrick maps an axis-aligned rectangle polygon to a rectangle brick.
// It reports false for an empty rectangle.
func RectangleBrick(rect *planar.Polygon, c brick.Color) (brick.Brick, bool) {
	if rect == nil || rect.Len() == 0 || rect.Size.Empty() {
		return brick.Brick{}, false
	}
	return brick.Brick{
		Kind:     brick.Rectangle,
		Color:    c,
		Size:     [3]int{rect.Size.X, rect.Size.Y, brick.Thickness},
		Position: [3]int{rect.Position.X, rect.Position.Y, brick.Thickness},
	}, true
}
