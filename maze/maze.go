package maze

import (
	"fmt"
	"math"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/decompose"
	"github.com/katalvlaran/thetabrick/planar"
	"github.com/katalvlaran/thetabrick/sfc32"
)

// ThetaMaze is a circular maze. Create it with New and carve it with Generate.
type ThetaMaze struct {
	ringWidth int
	rings     int
	initial   int

	cells    [][]Cell
	solution []Address
	entry    int
	seed     sfc32.Seed

	canvasSize int
	centre     planar.Point
	generated  bool
}

// New checks the dimensions and prepares an uncarved maze.
// At least two rings are required: the hub and one ring to enter it from.
func New(ringWidth, rings, initialDivisions int) (*ThetaMaze, error) {
	if ringWidth < 1 || initialDivisions < 1 {
		return nil, fmt.Errorf("%w: ringWidth=%d initialDivisions=%d", ErrInvalidShape, ringWidth, initialDivisions)
	}
	if rings < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rings, got %d", ErrInvalidShape, rings)
	}

	total := 0
	for r := 0; r < rings; r++ {
		shift := r / 2
		if shift > 30 || initialDivisions > MaxCells>>shift {
			return nil, fmt.Errorf("%w: ring %d overflows", ErrTooLarge, r)
		}
		total += initialDivisions << shift
		if total > MaxCells {
			return nil, fmt.Errorf("%w: more than %d cells", ErrTooLarge, MaxCells)
		}
	}
	if ringWidth > (MaxCanvas-Padding)/(2*rings) {
		return nil, fmt.Errorf("%w: canvas extent for ringWidth=%d rings=%d", ErrTooLarge, ringWidth, rings)
	}
	// the outer wall band spans the whole diameter and is rasterised in one piece
	if side := 2*ringWidth*rings + 1; side > decompose.DefaultMaxCells/side {
		return nil, fmt.Errorf("%w: outer wall raster %dx%d exceeds %d cells",
			ErrTooLarge, side, side, decompose.DefaultMaxCells)
	}

	size := ringWidth*rings*2 + Padding
	return &ThetaMaze{
		ringWidth:  ringWidth,
		rings:      rings,
		initial:    initialDivisions,
		canvasSize: size,
		centre:     planar.Pt(size/2, size/2),
	}, nil
}

// Rings returns the number of rings, the hub included.
func (m *ThetaMaze) Rings() int { return m.rings }

// RingWidth returns the radial width of one ring.
func (m *ThetaMaze) RingWidth() int { return m.ringWidth }

// CanvasSize returns the side of the square canvas holding the maze.
func (m *ThetaMaze) CanvasSize() int { return m.canvasSize }

// Centre returns the maze centre on the canvas.
func (m *ThetaMaze) Centre() planar.Point { return m.centre }

// Seed returns the seed of the last Generate.
func (m *ThetaMaze) Seed() sfc32.Seed { return m.seed }

// Entry returns the hub division the solution enters through.
func (m *ThetaMaze) Entry() int { return m.entry }

// Generated reports whether Generate has run.
func (m *ThetaMaze) Generated() bool { return m.generated }

// DivisionsInRing returns initial * 2^(ring/2).
func (m *ThetaMaze) DivisionsInRing(ring int) int {
	return m.initial << (ring / 2)
}

// Cells returns the total number of cells, the hub cells included.
func (m *ThetaMaze) Cells() int {
	n := 0
	for r := 0; r < m.rings; r++ {
		n += m.DivisionsInRing(r)
	}
	return n
}

// Cell returns a copy of the cell at a. It panics if a is out of range or
// the maze has not been generated.
func (m *ThetaMaze) Cell(a Address) Cell {
	return m.cells[a.Ring][a.Division]
}

// Entrance returns the cell whose outer wall is open.
func (m *ThetaMaze) Entrance() Address {
	return Address{Ring: m.rings - 1, Division: 0}
}

// Solution returns a copy of the recorded path from the entrance to the hub.
// It is nil before Generate.
func (m *ThetaMaze) Solution() []Address {
	if m.solution == nil {
		return nil
	}
	return append([]Address(nil), m.solution...)
}

// inner returns the inner neighbour of a cell of ring > 0.
func (m *ThetaMaze) inner(a Address) Address {
	if a.Ring%2 == 1 {
		return Address{a.Ring - 1, a.Division}
	}
	return Address{a.Ring - 1, a.Division / 2}
}

// adjacent lists the grid neighbours of a in candidate order: left, right,
// inner, then outer. In a two-division ring left and right coincide and
// both are listed.
func (m *ThetaMaze) adjacent(a Address, yield func(Address)) {
	n := m.DivisionsInRing(a.Ring)
	yield(Address{a.Ring, (a.Division + n - 1) % n})
	yield(Address{a.Ring, (a.Division + 1) % n})
	if a.Ring > 0 {
		yield(m.inner(a))
	}
	if a.Ring < m.rings-1 {
		if a.Ring%2 == 1 {
			yield(Address{a.Ring + 1, a.Division * 2})
			yield(Address{a.Ring + 1, a.Division*2 + 1})
		} else {
			yield(Address{a.Ring + 1, a.Division})
		}
	}
}

// Neighbours returns the unvisited grid neighbours of a, in the order the
// carver draws from.
func (m *ThetaMaze) Neighbours(a Address) []Address {
	var out []Address
	m.adjacent(a, func(b Address) {
		if !m.cells[b.Ring][b.Division].Visited {
			out = append(out, b)
		}
	})
	return out
}

// openWallBetween removes the wall shared by two adjacent cells.
func (m *ThetaMaze) openWallBetween(a, b Address) {
	if a.Ring == b.Ring {
		if b.Division == (a.Division+1)%m.DivisionsInRing(a.Ring) {
			m.cells[a.Ring][a.Division].RightWall = false
		} else {
			m.cells[b.Ring][b.Division].RightWall = false
		}
		return
	}
	outer := b
	if a.Ring > b.Ring {
		outer = a
	}
	m.cells[outer.Ring][outer.Division].InnerWall = false
}

func (m *ThetaMaze) reset() {
	m.cells = make([][]Cell, m.rings)
	for r := range m.cells {
		row := make([]Cell, m.DivisionsInRing(r))
		for d := range row {
			row[d] = newCell()
		}
		m.cells[r] = row
	}
	m.solution = nil
	m.entry = 0
}

// Generate carves the maze for seed, replacing any previous carving.
// The same seed always yields the same maze and solution.
func (m *ThetaMaze) Generate(seed sfc32.Seed) {
	m.reset()
	m.seed = seed
	rng := sfc32.New(seed)

	for d := 0; d < m.initial; d++ {
		m.cells[0][d].RightWall = false
		m.cells[0][d].Visited = true
	}

	cur := m.Entrance()
	m.cells[cur.Ring][cur.Division].Visited = true
	m.cells[cur.Ring][cur.Division].OuterWall = false

	var stack, solution []Address
	entry := 0
	if cur.Ring == 1 {
		// the entrance already borders the hub
		solution = []Address{cur, {0, cur.Division}}
	}
	for {
		candidates := m.Neighbours(cur)
		if len(candidates) == 0 {
			if len(stack) == 0 {
				break
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		stack = append(stack, cur)
		next := candidates[rng.Intn(len(candidates))]
		m.openWallBetween(cur, next)
		cur = next
		m.cells[cur.Ring][cur.Division].Visited = true

		if cur.Ring == 1 {
			entry = cur.Division
			solution = append(append(solution[:0], stack...), cur, Address{0, cur.Division})
		}
	}

	m.cells[1][entry].InnerWall = false
	m.entry = entry
	m.solution = solution
	m.generated = true

	thetabrick.Logger().Info("maze: generated",
		"seed", seed.String(), "rings", m.rings, "cells", m.Cells(),
		"solution", len(solution), "entry", entry)
}

// ringColor returns the grey of a ring's inner walls, brightening towards
// the outside and black for the inner 70%.
func (m *ThetaMaze) ringColor(ring int) uint8 {
	v := (float64(ring)/float64(m.rings) - 0.7) * 255
	return uint8(math.Max(0, math.Min(255, math.Trunc(v))))
}
