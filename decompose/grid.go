package decompose

import (
	"github.com/katalvlaran/thetabrick/internal/parallel"
	"github.com/katalvlaran/thetabrick/planar"
)

// Grid is the sampled raster of a polygon's bounding box. Cell (col, row)
// stands for the point Origin + (col, row). It is immutable once built.
type Grid struct {
	Origin        planar.Point
	Width, Height int
	cells         []bool
}

// Raster samples poly over its inclusive bounding box. The caller must have
// validated the bounds; Rectangles does so before calling it.
// Complexity: O(W·H·n) time spread over workers, O(W·H) memory.
func Raster(poly *planar.Polygon, workers int) *Grid {
	g := &Grid{
		Origin: poly.Min,
		Width:  poly.Size.X + 1,
		Height: poly.Size.Y + 1,
	}
	g.cells = make([]bool, g.Width*g.Height)

	// each row writes only its own slice of cells
	parallel.ForEach(g.Height, workers, func(row int) {
		y := g.Origin.Y + row
		base := row * g.Width
		for col := 0; col < g.Width; col++ {
			if poly.Contains(planar.Point{X: g.Origin.X + col, Y: y}) {
				g.cells[base+col] = true
			}
		}
	})

	return g
}

// InBounds reports whether (col, row) lies within the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// Inside reports whether cell (col, row) was sampled inside the polygon.
// Out-of-bounds cells are outside.
func (g *Grid) Inside(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.cells[g.index(col, row)]
}

// Count returns the number of inside cells.
func (g *Grid) Count() int {
	n := 0
	for _, in := range g.cells {
		if in {
			n++
		}
	}
	return n
}

// Point maps a cell to its sample point in the plane.
func (g *Grid) Point(col, row int) planar.Point {
	return planar.Point{X: g.Origin.X + col, Y: g.Origin.Y + row}
}

// index maps (col,row) to a row-major index.
func (g *Grid) index(col, row int) int {
	return row*g.Width + col
}
