package canvas

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/planar"
)

type svgElement struct {
	path   geom.Path
	closed bool
	filled bool
	color  color.Color
}

// SVG is a Canvas that accumulates vector paths. The view box grows to
// contain everything drawn, so no surface size is needed up front.
type SVG struct {
	elements []svgElement
	bounds   geom.Rect
	stroke   float64
}

// NewSVG returns an empty SVG canvas with the DefaultStroke width.
func NewSVG() *SVG {
	return &SVG{bounds: geom.NilRect(), stroke: DefaultStroke}
}

// Len returns the number of accumulated elements.
func (s *SVG) Len() int {
	return len(s.elements)
}

// Bounds returns the union of everything drawn so far.
func (s *SVG) Bounds() geom.Rect {
	return s.bounds
}

func coord(p planar.Point) geom.Coord {
	x, y := p.Float()
	return geom.Coord{X: x, Y: y}
}

func (s *SVG) add(e svgElement) {
	s.bounds.ExpandToContainRect(*e.path.Bounds())
	s.elements = append(s.elements, e)
}

func (s *SVG) DrawArc(centre planar.Point, radius int, start, end float64, c color.Color) {
	if degenerateArc(radius, start, end) {
		return
	}
	e := svgElement{color: c}
	for _, p := range arcSamples(centre, radius, start, end) {
		e.path.AddVertex(geom.Coord{X: p[0], Y: p[1]})
	}
	s.add(e)
}

func (s *SVG) DrawLine(a, b planar.Point, c color.Color) {
	if a == b {
		return
	}
	e := svgElement{color: c}
	e.path.AddVertex(coord(a))
	e.path.AddVertex(coord(b))
	s.add(e)
}

func (s *SVG) DrawOutline(poly *planar.Polygon, c color.Color) {
	if !outlineable(poly) {
		return
	}
	s.add(polyElement(poly, c, false))
}

func (s *SVG) DrawFilledPolygon(poly *planar.Polygon, c color.Color) {
	if !fillable(poly) {
		return
	}
	s.add(polyElement(poly, c, true))
}

func polyElement(poly *planar.Polygon, c color.Color, filled bool) svgElement {
	e := svgElement{closed: true, filled: filled, color: c}
	for _, p := range poly.Points {
		e.path.AddVertex(coord(p))
	}
	return e
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// WriteTo writes the document. An empty canvas produces an empty view box.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	box := s.bounds
	if len(s.elements) == 0 {
		box = geom.Rect{}
	}
	pad := s.stroke
	fmt.Fprintf(cw, `<?xml version="1.0"?>
<svg version="1.1" viewBox="%g %g %g %g" xmlns="http://www.w3.org/2000/svg">
<rect x="%g" y="%g" width="%g" height="%g" fill="#ffffff"/>
`, box.Min.X-pad, box.Min.Y-pad, box.Width()+2*pad, box.Height()+2*pad,
		box.Min.X-pad, box.Min.Y-pad, box.Width()+2*pad, box.Height()+2*pad)

	for _, e := range s.elements {
		v := e.path.Vertices()
		fmt.Fprintf(cw, "<path d='M%g,%g", v[0].X, v[0].Y)
		for _, p := range v[1:] {
			fmt.Fprintf(cw, " L%g,%g", p.X, p.Y)
		}
		if e.closed {
			fmt.Fprint(cw, " Z")
		}
		if e.filled {
			fmt.Fprintf(cw, "' fill='%s' stroke='none'/>\n", hex(e.color))
		} else {
			fmt.Fprintf(cw, "' fill='none' stroke='%s' stroke-width='%g'/>\n", hex(e.color), s.stroke)
		}
	}
	fmt.Fprint(cw, "</svg>\n")
	return cw.n, cw.err
}

// Save writes the document to path.
func (s *SVG) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("canvas: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("canvas: write %s: %w", path, err)
	}
	thetabrick.Logger().Info("canvas: saved svg", "path", path, "elements", len(s.elements))
	return f.Close()
}

// countWriter records the first error and the bytes written so that the
// Fprintf calls above need no individual checks.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
