package decompose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetabrick/decompose"
	"github.com/katalvlaran/thetabrick/planar"
)

// coverage expands rectangles into their unit cells, failing on any overlap.
func coverage(t *testing.T, rects []*planar.Polygon) map[planar.Point]bool {
	t.Helper()
	cells := make(map[planar.Point]bool)
	for _, r := range rects {
		for y := r.Min.Y; y < r.Min.Y+r.Size.Y; y++ {
			for x := r.Min.X; x < r.Min.X+r.Size.X; x++ {
				p := planar.Pt(x, y)
				require.False(t, cells[p], "cell %v covered twice", p)
				cells[p] = true
			}
		}
	}
	return cells
}

// sampled returns every cell Contains reports inside within the bounding box.
func sampled(poly *planar.Polygon) map[planar.Point]bool {
	cells := make(map[planar.Point]bool)
	for y := poly.Min.Y; y <= poly.Max.Y; y++ {
		for x := poly.Min.X; x <= poly.Max.X; x++ {
			if poly.Contains(planar.Pt(x, y)) {
				cells[planar.Pt(x, y)] = true
			}
		}
	}
	return cells
}

// band approximates an annular quarter band between radii r1 < r2.
func band(cx, cy, r1, r2 int, steps int) *planar.Polygon {
	poly := planar.NewPolygon()
	for i := 0; i <= steps; i++ {
		a := math.Pi / 2 * float64(i) / float64(steps)
		poly.Push(planar.FromFloat(float64(cx)+float64(r1)*math.Cos(a), float64(cy)+float64(r1)*math.Sin(a)))
	}
	for i := steps; i >= 0; i-- {
		a := math.Pi / 2 * float64(i) / float64(steps)
		poly.Push(planar.FromFloat(float64(cx)+float64(r2)*math.Cos(a), float64(cy)+float64(r2)*math.Sin(a)))
	}
	return poly
}

// TestRectangles_Coverage checks exact coverage, non-overlap and the size bound
// over a set of simple polygons.
func TestRectangles_Coverage(t *testing.T) {
	cases := []struct {
		name string
		poly *planar.Polygon
	}{
		{"Square", planar.NewPolygon(planar.Pt(0, 0), planar.Pt(10, 0), planar.Pt(10, 10), planar.Pt(0, 10))},
		{"Triangle", planar.NewPolygon(planar.Pt(0, 0), planar.Pt(40, 0), planar.Pt(0, 25))},
		{"LShape", planar.NewPolygon(
			planar.Pt(0, 0), planar.Pt(30, 0), planar.Pt(30, 10),
			planar.Pt(10, 10), planar.Pt(10, 30), planar.Pt(0, 30))},
		{"Negative", planar.NewPolygon(planar.Pt(-20, -15), planar.Pt(5, -30), planar.Pt(12, 7), planar.Pt(-8, 3))},
		{"Band", band(100, 100, 60, 110, 12)},
		{"Wide", planar.Rect(0, 0, 2500, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rects, err := decompose.Rectangles(tc.poly)
			require.NoError(t, err)
			require.NotEmpty(t, rects)

			assert.Equal(t, sampled(tc.poly), coverage(t, rects))
			for _, r := range rects {
				assert.Less(t, r.Size.X, decompose.DefaultMaxExtent)
				assert.Less(t, r.Size.Y, decompose.DefaultMaxExtent)
				assert.False(t, r.Size.Empty())
			}
		})
	}
}

func TestRectangles_SquareIsOneRectangle(t *testing.T) {
	sq := planar.NewPolygon(planar.Pt(0, 0), planar.Pt(10, 0), planar.Pt(10, 10), planar.Pt(0, 10))
	rects, err := decompose.Rectangles(sq)
	require.NoError(t, err)
	require.Len(t, rects, 1)
	assert.Equal(t, planar.Pt(0, 0), rects[0].Min)
	assert.Equal(t, planar.Size{X: 10, Y: 10}, rects[0].Size)
	assert.Equal(t, planar.Pt(10, 10), rects[0].Position)
}

func TestRectangles_WideIsSplit(t *testing.T) {
	rects, err := decompose.Rectangles(planar.Rect(0, 0, 2500, 10))
	require.NoError(t, err)
	require.Len(t, rects, 4)
	for _, r := range rects {
		assert.Equal(t, planar.Size{X: 625, Y: 10}, r.Size)
	}
}

func TestRectangles_WorkersAgree(t *testing.T) {
	poly := band(0, 0, 200, 260, 30)
	serial, err := decompose.Rectangles(poly, decompose.WithWorkers(1))
	require.NoError(t, err)
	wide, err := decompose.Rectangles(poly, decompose.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, serial, wide)
}

func TestRectangles_Validation(t *testing.T) {
	t.Run("Degenerate", func(t *testing.T) {
		rects, err := decompose.Rectangles(planar.NewPolygon(planar.Pt(0, 0), planar.Pt(4, 4)))
		assert.NoError(t, err)
		assert.Empty(t, rects)

		rects, err = decompose.Rectangles(nil)
		assert.NoError(t, err)
		assert.Empty(t, rects)
	})
	t.Run("InvertedBounds", func(t *testing.T) {
		bad := &planar.Polygon{
			Points: []planar.Point{planar.Pt(0, 0), planar.Pt(5, 0), planar.Pt(5, 5)},
			Min:    planar.Pt(5, 5),
			Max:    planar.Pt(0, 0),
		}
		_, err := decompose.Rectangles(bad)
		assert.ErrorIs(t, err, decompose.ErrInvertedBounds)
	})
	t.Run("TooLarge", func(t *testing.T) {
		_, err := decompose.Rectangles(planar.Rect(0, 0, 100, 100), decompose.WithMaxCells(50))
		assert.ErrorIs(t, err, decompose.ErrGridTooLarge)
	})
	t.Run("BadOption", func(t *testing.T) {
		_, err := decompose.Rectangles(planar.Rect(0, 0, 4, 4), decompose.WithMaxExtent(1))
		assert.ErrorIs(t, err, decompose.ErrOptionViolation)
	})
}

func TestSplit(t *testing.T) {
	parts := decompose.Split(planar.Rect(0, 0, 9, 3), 4)
	total := 0
	for _, p := range parts {
		assert.Less(t, p.Size.X, 4)
		assert.Less(t, p.Size.Y, 4)
		total += p.Size.X * p.Size.Y
	}
	assert.Equal(t, 27, total)

	// width is halved before height
	both := decompose.Split(planar.Rect(0, 0, 6, 6), 6)
	require.Len(t, both, 4)
	assert.Equal(t, planar.Pt(0, 0), both[0].Min)
	assert.Equal(t, planar.Pt(0, 3), both[1].Min)
	assert.Equal(t, planar.Pt(3, 0), both[2].Min)
}

func TestRaster(t *testing.T) {
	g := decompose.Raster(planar.NewPolygon(planar.Pt(0, 0), planar.Pt(10, 0), planar.Pt(10, 10), planar.Pt(0, 10)), 2)
	assert.Equal(t, 11, g.Width)
	assert.Equal(t, 11, g.Height)
	assert.Equal(t, 100, g.Count())
	assert.True(t, g.Inside(0, 0))
	assert.False(t, g.Inside(10, 5))
	assert.False(t, g.Inside(-1, 0))
	assert.Equal(t, planar.Pt(3, 4), g.Point(3, 4))
}
