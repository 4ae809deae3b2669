package canvas

import (
	"image/color"

	"github.com/katalvlaran/thetabrick/planar"
)

type opKind uint8

const (
	opArc opKind = iota
	opLine
	opOutline
	opFill
)

type op struct {
	kind       opKind
	a, b       planar.Point
	radius     int
	start, end float64
	poly       *planar.Polygon
	color      color.Color
}

// Recorder is a Canvas that remembers every call for a later Replay.
// Polygons are cloned on record, so callers may keep mutating theirs.
type Recorder struct {
	ops []op
}

// Len returns the number of recorded calls, degenerate ones included.
func (r *Recorder) Len() int {
	return len(r.ops)
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) DrawArc(centre planar.Point, radius int, start, end float64, c color.Color) {
	r.ops = append(r.ops, op{kind: opArc, a: centre, radius: radius, start: start, end: end, color: c})
}

func (r *Recorder) DrawLine(a, b planar.Point, c color.Color) {
	r.ops = append(r.ops, op{kind: opLine, a: a, b: b, color: c})
}

func (r *Recorder) DrawOutline(poly *planar.Polygon, c color.Color) {
	r.ops = append(r.ops, op{kind: opOutline, poly: clone(poly), color: c})
}

func (r *Recorder) DrawFilledPolygon(poly *planar.Polygon, c color.Color) {
	r.ops = append(r.ops, op{kind: opFill, poly: clone(poly), color: c})
}

// Save always fails; a Recorder has no surface of its own.
func (r *Recorder) Save(string) error {
	return ErrNoSurface
}

// Replay issues every recorded call on dst in recording order.
func (r *Recorder) Replay(dst Canvas) {
	for _, o := range r.ops {
		switch o.kind {
		case opArc:
			dst.DrawArc(o.a, o.radius, o.start, o.end, o.color)
		case opLine:
			dst.DrawLine(o.a, o.b, o.color)
		case opOutline:
			dst.DrawOutline(o.poly, o.color)
		case opFill:
			dst.DrawFilledPolygon(o.poly, o.color)
		}
	}
}

func clone(p *planar.Polygon) *planar.Polygon {
	if p == nil {
		return nil
	}
	return p.Clone()
}
