package decompose

import (
	"fmt"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/planar"
)

// Rectangles decomposes poly into non-overlapping rectangles covering exactly
// the inside cells of its raster. Each rectangle is returned as a four-point
// planar.Polygon (tl, tr, br, bl) whose Size and Position are ready for brick
// placement.
//
// Polygons with fewer than three points yield no rectangles and no error.
func Rectangles(poly *planar.Polygon, opts ...Option) ([]*planar.Polygon, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if poly == nil || poly.Len() < 3 {
		return nil, nil
	}
	// validate before allocating anything sized by the bounds
	if !poly.ValidBounds() {
		thetabrick.Logger().Warn("decompose: refusing polygon with inverted bounds",
			"min", poly.Min, "max", poly.Max)
		return nil, fmt.Errorf("%w: min %v max %v", ErrInvertedBounds, poly.Min, poly.Max)
	}
	w, h := poly.Size.X+1, poly.Size.Y+1
	if w > o.MaxCells/h {
		return nil, fmt.Errorf("%w: %dx%d > %d cells", ErrGridTooLarge, w, h, o.MaxCells)
	}

	grid := Raster(poly, o.Workers)
	thetabrick.Logger().Debug("decompose: rasterised polygon",
		"points", poly.Len(), "width", w, "height", h, "inside", grid.Count())

	return merge(grid, o.MaxExtent), nil
}

// merge runs the greedy scanline merge over grid and splits oversize results.
func merge(g *Grid, maxExtent int) []*planar.Polygon {
	var rects []*planar.Polygon
	processed := make([]bool, len(g.cells))
	free := func(col, row int) bool {
		i := g.index(col, row)
		return g.cells[i] && !processed[i]
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if !free(col, row) {
				continue
			}

			width := 0
			for col+width < g.Width && free(col+width, row) {
				width++
			}

			height := 0
		grow:
			for row+height < g.Height {
				for dx := 0; dx < width; dx++ {
					if !free(col+dx, row+height) {
						break grow
					}
				}
				height++
			}

			for dy := 0; dy < height; dy++ {
				for dx := 0; dx < width; dx++ {
					processed[g.index(col+dx, row+dy)] = true
				}
			}

			origin := g.Point(col, row)
			rect := planar.Rect(origin.X, origin.Y, width, height)
			rects = append(rects, Split(rect, maxExtent)...)
		}
	}

	return rects
}

// Split halves rect until neither width nor height reaches maxExtent. Width is
// split first when both violate. rect must be an axis-aligned rectangle in the
// tl, tr, br, bl order produced by planar.Rect.
func Split(rect *planar.Polygon, maxExtent int) []*planar.Polygon {
	x, y := rect.Min.X, rect.Min.Y
	w, h := rect.Size.X, rect.Size.Y

	switch {
	case w >= maxExtent:
		half := w / 2
		return append(
			Split(planar.Rect(x, y, half, h), maxExtent),
			Split(planar.Rect(x+half, y, w-half, h), maxExtent)...,
		)
	case h >= maxExtent:
		half := h / 2
		return append(
			Split(planar.Rect(x, y, w, half), maxExtent),
			Split(planar.Rect(x, y+half, w, h-half), maxExtent)...,
		)
	default:
		return []*planar.Polygon{rect}
	}
}
