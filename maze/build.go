package maze

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/arc"
	"github.com/katalvlaran/thetabrick/brick"
	"github.com/katalvlaran/thetabrick/canvas"
	"github.com/katalvlaran/thetabrick/decompose"
	"github.com/katalvlaran/thetabrick/internal/parallel"
	"github.com/katalvlaran/thetabrick/planar"
)

// ringOutput is everything one ring produces. Each ring owns its output, so
// rings can be built concurrently and merged afterwards in ring order.
type ringOutput struct {
	bricks     brick.Buffer
	mazeOps    canvas.Recorder
	brickOps   canvas.Recorder
	arcs       int
	connectors int
	err        error
}

// wallRun tracks a run of consecutive standing walls on one boundary arc.
type wallRun struct {
	radius int
	color  brick.Color
	open   bool
	begin  float64
}

// Build converts the carved walls into bricks. Every maximal run of standing
// inner walls (and, on the outermost ring, outer walls) becomes one WedgeArc
// band. Standing right walls are drawn as radial lines on the canvases and,
// with WithRadialWalls, also emitted as rectangle bricks.
//
// The bricks of ring r precede those of ring r+1, and within a ring they
// appear in angular order, so the result does not depend on WithWorkers.
func (m *ThetaMaze) Build(opts ...BuildOption) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !m.generated {
		return nil, ErrNotGenerated
	}
	if err = m.checkOptions(&o); err != nil {
		return nil, err
	}

	outs := make([]ringOutput, m.rings)
	var mu sync.Mutex
	var failed atomic.Bool
	done := 0
	parallel.ForEach(m.rings, o.Workers, func(ring int) {
		if failed.Load() {
			return
		}
		m.buildRing(ring, &o, &outs[ring], &failed)
		if outs[ring].err != nil {
			failed.Store(true)
		}

		if o.Progress != nil {
			mu.Lock()
			done++
			o.Progress(done, m.rings)
			mu.Unlock()
		}
	})

	res := &Result{Solution: m.Solution()}
	for ring := range outs {
		out := &outs[ring]
		if out.err != nil {
			return nil, fmt.Errorf("maze: ring %d: %w", ring, out.err)
		}
		res.Bricks = append(res.Bricks, out.bricks.Bricks...)
		if o.MazeCanvas != nil {
			out.mazeOps.Replay(o.MazeCanvas)
		}
		if o.BrickCanvas != nil {
			out.brickOps.Replay(o.BrickCanvas)
		}
		thetabrick.Logger().Debug("maze: ring built",
			"ring", ring, "arcs", out.arcs, "connectors", out.connectors, "bricks", out.bricks.Len())
	}

	if o.Solve && o.MazeCanvas != nil {
		m.drawSolution(o.MazeCanvas)
	}

	thetabrick.Logger().Info("maze: built",
		"bricks", len(res.Bricks), "rings", m.rings, "solution", len(res.Solution))
	return res, nil
}

// checkOptions rejects settings the geometry of this maze cannot honour.
func (m *ThetaMaze) checkOptions(o *BuildOptions) error {
	outer := arc.Arc{Radius: m.ringWidth * m.rings, End: arc.Circle}
	if err := outer.CheckSteps(o.Resolution); err != nil {
		return fmt.Errorf("%w: resolution %g: %w", ErrOptionViolation, o.Resolution, err)
	}
	// a radial wall band is at most ringWidth+width across on either axis
	if side := m.ringWidth + o.RadialWalls + 1; side > decompose.DefaultMaxCells/side {
		return fmt.Errorf("%w: radial wall width %d exceeds the raster budget",
			ErrOptionViolation, o.RadialWalls)
	}
	return nil
}

// polar returns the point at radius r and angle a around the centre.
func (m *ThetaMaze) polar(r, a float64) planar.Point {
	cx, cy := m.centre.Float()
	return planar.FromFloat(cx+r*math.Cos(a), cy+r*math.Sin(a))
}

// buildRing fills out with the geometry of one ring. It gives up early once
// failed is set by another ring.
func (m *ThetaMaze) buildRing(ring int, o *BuildOptions, out *ringOutput, failed *atomic.Bool) {
	var mazeCanvas, brickCanvas canvas.Canvas = canvas.Nop{}, canvas.Nop{}
	if o.MazeCanvas != nil {
		mazeCanvas = &out.mazeOps
	}
	if o.BrickCanvas != nil {
		brickCanvas = &out.brickOps
	}

	n := m.DivisionsInRing(ring)
	step := arc.Circle / float64(n)
	rInner := m.ringWidth * ring
	rOuter := rInner + m.ringWidth
	grey := m.ringColor(ring)
	col := brick.RGB(grey, grey, grey)

	runs := [2]wallRun{
		{radius: rInner, color: col},
		{radius: rOuter, color: brick.Black},
	}
	flush := func(run *wallRun, end float64) {
		run.open = false
		if out.err != nil || failed.Load() {
			return
		}
		mazeCanvas.DrawArc(m.centre, run.radius, run.begin, end, run.color)
		if run.radius <= 0 {
			thetabrick.Logger().Debug("maze: skipped arc at centre", "ring", ring, "begin", run.begin, "end", end)
			return
		}
		w := arc.WedgeArc{
			Color:     run.color,
			Arc:       arc.Arc{Centre: m.centre, Radius: run.radius, Begin: run.begin, End: end},
			RadiusGap: o.RadiusGap,
		}
		out.err = w.Build(&out.bricks, brickCanvas,
			arc.WithResolution(o.Resolution),
			arc.WithMaxExtent(o.MaxExtent),
			arc.WithWorkers(1),
		)
		out.arcs++
	}

	for d := 0; d < n && !failed.Load(); d++ {
		cell := m.cells[ring][d]
		start := step * float64(d)
		end := start + step

		for k := range runs {
			run := &runs[k]
			wall := cell.InnerWall
			if k == 1 {
				wall = ring == m.rings-1 && cell.OuterWall
			}
			if wall {
				if !run.open {
					run.open, run.begin = true, start
				}
			} else if run.open {
				flush(run, start)
			}
		}

		if cell.RightWall {
			from := m.polar(float64(rInner), end)
			to := m.polar(float64(rOuter), end)
			mazeCanvas.DrawLine(from, to, col)
			brickCanvas.DrawLine(from, to, brick.Red)
			out.connectors++
			if o.RadialWalls > 0 && out.err == nil {
				out.err = m.radialWall(from, to, o, col, &out.bricks, brickCanvas)
			}
		}
	}

	for k := range runs {
		if runs[k].open {
			flush(&runs[k], step*float64(n))
		}
	}
}

// radialWall emits a straight wall from a to b of width o.RadialWalls as
// rectangle bricks.
func (m *ThetaMaze) radialWall(a, b planar.Point, o *BuildOptions, col brick.Color, sink brick.Sink, c canvas.Canvas) error {
	ax, ay := a.Float()
	bx, by := b.Float()
	l := math.Hypot(bx-ax, by-ay)
	if l == 0 {
		return nil
	}
	half := float64(o.RadialWalls) / 2
	nx, ny := -(by-ay)/l*half, (bx-ax)/l*half
	band := planar.NewPolygon(
		planar.FromFloat(ax+nx, ay+ny),
		planar.FromFloat(bx+nx, by+ny),
		planar.FromFloat(bx-nx, by-ny),
		planar.FromFloat(ax-nx, ay-ny),
	)
	rects, err := decompose.Rectangles(band, decompose.WithMaxExtent(o.MaxExtent), decompose.WithWorkers(1))
	if err != nil {
		return fmt.Errorf("radial wall %v-%v: %w", a, b, err)
	}
	for _, r := range rects {
		c.DrawFilledPolygon(r, col)
		if br, ok := arc.RectangleBrick(r, col); ok {
			sink.Append(br)
		}
	}
	return nil
}

// cellMidpoint returns the centre of a cell on the canvas.
func (m *ThetaMaze) cellMidpoint(a Address) planar.Point {
	step := arc.Circle / float64(m.DivisionsInRing(a.Ring))
	angle := step*float64(a.Division) + step/2
	return m.polar(float64(m.ringWidth)*(float64(a.Ring)+0.5), angle)
}

func (m *ThetaMaze) drawSolution(c canvas.Canvas) {
	for i := 1; i < len(m.solution); i++ {
		c.DrawLine(m.cellMidpoint(m.solution[i-1]), m.cellMidpoint(m.solution[i]), brick.Red)
	}
}
