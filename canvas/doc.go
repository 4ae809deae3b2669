// Package canvas provides the debug drawing surfaces used while building a
// maze: a no-op surface, a task-local Recorder, a PNG Raster and an SVG
// writer.
//
// What:
//
//   - Canvas is the drawing contract: arcs, lines, polygon outlines, filled
//     polygons and Save.
//   - Nop accepts every call and draws nothing. Geometry built against Nop is
//     identical to geometry built against any other Canvas.
//   - Recorder stores calls so that goroutines can draw into private
//     recorders which are later replayed, in a fixed order, onto a shared
//     surface.
//   - Raster rasterises onto an *image.RGBA with golang.org/x/image/vector and
//     writes PNG. An optional caption is rendered with the Go Regular face.
//   - SVG accumulates paths built from github.com/jbeda/geom coordinates and
//     writes a standalone SVG document.
//
// Degenerate input is silently ignored: zero-length lines, arcs with a
// non-positive radius or an empty span, outlines with fewer than two points
// and fills with fewer than three.
//
// None of the surfaces are safe for concurrent use.
package canvas
