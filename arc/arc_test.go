package arc_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetabrick/arc"
	"github.com/katalvlaran/thetabrick/planar"
)

func groups(a arc.Arc, resolution float64) [][3]planar.Point {
	return slices.Collect(a.VertexGroups(resolution))
}

func TestEndpointFidelity(t *testing.T) {
	for _, r := range []int{30, 300, 650} {
		a := arc.Arc{Radius: r, Begin: 0, End: arc.SemiCircle}
		gs := groups(a, arc.DefaultResolution)
		require.Len(t, gs, a.Steps(arc.DefaultResolution))
		assert.Equal(t, planar.Pt(r, 0), gs[0][0], "r=%d", r)
		assert.Equal(t, planar.Pt(-r, 0), gs[len(gs)-1][2], "r=%d", r)

		for i := 1; i < len(gs); i++ {
			assert.Equal(t, gs[i-1][2], gs[i][0], "groups must chain, r=%d i=%d", r, i)
		}
	}
}

func TestSteps(t *testing.T) {
	cases := []struct {
		name       string
		radius     int
		span       float64
		resolution float64
		want       int
	}{
		{"Tiny", 30, 1, 30, 1},
		{"ZeroRadius", 0, arc.Circle, 30, 1},
		{"ZeroSpan", 500, 0, 30, 1},
		{"FullCircle", 650, arc.Circle, 30, 136},
		{"FineResolution", 100, math.Pi, 10, 31},
		{"DefaultOnZero", 300, math.Pi, 0, 31},
		{"Capped", 100, math.Pi, 1e-300, arc.MaxSteps},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := arc.Arc{Radius: tc.radius, End: tc.span}
			assert.Equal(t, tc.want, a.Steps(tc.resolution))
		})
	}
}

func TestCheckSteps(t *testing.T) {
	half := arc.Arc{Radius: 100, End: math.Pi}
	require.NoError(t, half.CheckSteps(arc.DefaultResolution))
	require.NoError(t, half.CheckSteps(0))

	// 100π/2.5e-4 ≈ 1.26M, over the 2^20 cap
	assert.ErrorIs(t, half.CheckSteps(2.5e-4), arc.ErrTooManySteps)
	assert.ErrorIs(t, half.CheckSteps(1e-300), arc.ErrTooManySteps)
}

func TestRightAngleVertex(t *testing.T) {
	outer := arc.Arc{Radius: 100, Begin: 0, End: math.Pi / 2}
	gs := groups(outer, 1000)
	require.Len(t, gs, 1)
	assert.Equal(t, [3]planar.Point{{X: 100, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 100}}, gs[0])

	// the same span bounding from inside turns the corner outwards
	inner := outer.Concentric(100)
	inner.Inner = true
	gs = groups(inner, 1000)
	assert.Equal(t, [3]planar.Point{{X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}, gs[0])

	// odd quadrant flips the choice
	odd := arc.Arc{Radius: 100, Begin: math.Pi / 2, End: math.Pi}
	gs = groups(odd, 1000)
	assert.Equal(t, [3]planar.Point{{X: 0, Y: 100}, {X: 0, Y: 0}, {X: -100, Y: 0}}, gs[0])
}

func TestConcentric(t *testing.T) {
	a := arc.Arc{Centre: planar.Pt(5, 5), Radius: 100, Begin: 1, End: 2}
	in := a.Concentric(50)
	assert.True(t, in.Inner)
	assert.Equal(t, 50, in.Radius)
	assert.Equal(t, a.Centre, in.Centre)
	assert.Equal(t, a.Begin, in.Begin)
	assert.False(t, a.Concentric(100).Inner)
	assert.False(t, a.Concentric(150).Inner)
}

func TestEvenQuadrant(t *testing.T) {
	a := arc.Arc{Centre: planar.Pt(10, 10)}
	assert.True(t, a.EvenQuadrant(planar.Pt(20, 20)))
	assert.True(t, a.EvenQuadrant(planar.Pt(0, 0)))
	assert.True(t, a.EvenQuadrant(planar.Pt(10, 10)))
	assert.False(t, a.EvenQuadrant(planar.Pt(20, 0)))
	assert.False(t, a.EvenQuadrant(planar.Pt(0, 20)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, arc.Arc{Radius: 0, Begin: 1, End: 1}.Validate())
	assert.ErrorIs(t, arc.Arc{Radius: -1, End: 1}.Validate(), arc.ErrNegativeRadius)
	assert.ErrorIs(t, arc.Arc{Radius: 1, Begin: 2, End: 1}.Validate(), arc.ErrInvertedSpan)
	assert.ErrorIs(t, arc.Arc{Radius: 1, Begin: 0, End: math.NaN()}.Validate(), arc.ErrInvertedSpan)
}

func TestVertexGroupsStopsEarly(t *testing.T) {
	a := arc.Arc{Radius: 600, End: arc.Circle}
	n := 0
	for range a.VertexGroups(arc.DefaultResolution) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
