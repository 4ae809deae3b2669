package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetabrick/planar"
)

func square() *planar.Polygon {
	return planar.NewPolygon(planar.Pt(0, 0), planar.Pt(10, 0), planar.Pt(10, 10), planar.Pt(0, 10))
}

// TestContains_Golden records the point-in-polygon regression fixture.
func TestContains_Golden(t *testing.T) {
	sq := square()
	cases := []struct {
		name string
		p    planar.Point
		want bool
	}{
		{"Centre", planar.Pt(5, 5), true},
		{"Outside", planar.Pt(15, 15), false},
		{"LeftEdge", planar.Pt(0, 5), true},
		{"RightEdge", planar.Pt(10, 5), false},
		{"BottomEdge", planar.Pt(5, 0), true},
		{"TopEdge", planar.Pt(5, 10), false},
		{"OriginCorner", planar.Pt(0, 0), true},
		{"FarCorner", planar.Pt(10, 10), false},
		{"LeftOfBox", planar.Pt(-1, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sq.Contains(tc.p))
		})
	}
}

func TestContains_Triangle(t *testing.T) {
	tri := planar.NewPolygon(planar.Pt(0, 0), planar.Pt(8, 0), planar.Pt(0, 8))
	assert.True(t, tri.Contains(planar.Pt(1, 1)))
	assert.True(t, tri.Contains(planar.Pt(3, 3)))
	assert.False(t, tri.Contains(planar.Pt(6, 6)))
	assert.False(t, tri.Contains(planar.Pt(7, 7)))
}

func TestContains_Degenerate(t *testing.T) {
	line := planar.NewPolygon(planar.Pt(0, 0), planar.Pt(5, 5))
	assert.False(t, line.Contains(planar.Pt(0, 0)))
	assert.False(t, planar.NewPolygon().Contains(planar.Pt(0, 0)))
}

func TestBoundsAndPosition(t *testing.T) {
	p := planar.NewPolygon(planar.Pt(3, 7), planar.Pt(9, 2), planar.Pt(5, 11))
	assert.Equal(t, planar.Pt(3, 2), p.Min)
	assert.Equal(t, planar.Pt(9, 11), p.Max)
	assert.Equal(t, planar.Size{X: 6, Y: 9}, p.Size)
	// Position = Min*2 + Size
	assert.Equal(t, planar.Pt(12, 13), p.Position)
	assert.True(t, p.ValidBounds())
}

// TestEmptyPolygonIgnoresOrigin verifies that the first point seeds the bounds.
func TestEmptyPolygonIgnoresOrigin(t *testing.T) {
	p := planar.NewPolygon()
	assert.Equal(t, 0, p.Len())

	p.Push(planar.Pt(100, 200))
	p.Extend(planar.Pt(110, 205), planar.Pt(104, 230))
	assert.Equal(t, planar.Pt(100, 200), p.Min)
	assert.Equal(t, planar.Pt(110, 230), p.Max)
	assert.Equal(t, planar.Size{X: 10, Y: 30}, p.Size)
}

func TestRectAndClone(t *testing.T) {
	r := planar.Rect(2, 3, 4, 5)
	require.Equal(t, 4, r.Len())
	assert.Equal(t, planar.Size{X: 4, Y: 5}, r.Size)
	assert.Equal(t, planar.Pt(8, 11), r.Position)

	c := r.Clone()
	c.Push(planar.Pt(100, 100))
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, planar.Pt(6, 8), r.Max)
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, planar.Pt(3, -3), planar.FromFloat(2.5, -2.5))
	assert.Equal(t, planar.Pt(2, -2), planar.FromFloat(2.49, -2.49))
	assert.True(t, planar.Size{X: 0, Y: 3}.Empty())
	assert.False(t, planar.Size{X: 1, Y: 3}.Empty())
}
