package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/thetabrick/arc"
	"github.com/katalvlaran/thetabrick/brick"
	"github.com/katalvlaran/thetabrick/canvas"
	"github.com/katalvlaran/thetabrick/decompose"
)

// Sentinel errors.
var (
	// ErrInvalidShape indicates a non-positive dimension or fewer than two rings.
	ErrInvalidShape = errors.New("maze: invalid shape")

	// ErrTooLarge indicates a cell count or canvas extent beyond the supported range.
	ErrTooLarge = errors.New("maze: dimensions too large")

	// ErrNotGenerated indicates an operation that needs a carved maze.
	ErrNotGenerated = errors.New("maze: not generated")

	// ErrCycle indicates two cells joined by more than one route.
	ErrCycle = errors.New("maze: passage closes a cycle")

	// ErrDisconnected indicates cells unreachable from the hub.
	ErrDisconnected = errors.New("maze: cells unreachable")

	// ErrNoPath indicates the hub cannot be reached from the entrance.
	ErrNoPath = errors.New("maze: no path from entrance to hub")

	// ErrOptionViolation indicates an invalid BuildOption value.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

const (
	// MaxCells bounds the total number of cells of a maze.
	MaxCells = 1 << 24

	// MaxCanvas bounds the canvas extent, keeping every coordinate within int32.
	MaxCanvas = 1<<31 - 1

	// Padding is added to the maze diameter to get the canvas extent.
	Padding = 100
)

// Cell is one maze cell. Walls are true while standing.
type Cell struct {
	InnerWall bool
	RightWall bool
	OuterWall bool
	Visited   bool
}

func newCell() Cell {
	return Cell{InnerWall: true, RightWall: true, OuterWall: true}
}

// Address locates a cell by ring and division.
type Address struct {
	Ring, Division int
}

func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Ring, a.Division)
}

// Result is the output of Build.
type Result struct {
	Bricks   []brick.Brick
	Solution []Address
}

// BuildOptions configures Build.
type BuildOptions struct {
	MazeCanvas  canvas.Canvas
	BrickCanvas canvas.Canvas
	Solve       bool
	RadiusGap   int
	Resolution  float64
	MaxExtent   int
	Workers     int
	Progress    func(done, total int)
	RadialWalls int

	err error
}

// BuildOption configures Build via functional arguments.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns the settings used when no option is given:
// no canvases, no solution overlay, arc.DefaultRadiusGap,
// arc.DefaultResolution, decompose.DefaultMaxExtent, GOMAXPROCS workers and
// radial walls drawn only as debug lines.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		RadiusGap:  arc.DefaultRadiusGap,
		Resolution: arc.DefaultResolution,
		MaxExtent:  decompose.DefaultMaxExtent,
	}
}

// WithMazeCanvas draws the maze outline (and the solution, with WithSolve) on c.
func WithMazeCanvas(c canvas.Canvas) BuildOption {
	return func(o *BuildOptions) {
		o.MazeCanvas = c
	}
}

// WithBrickCanvas draws the brick geometry on c.
func WithBrickCanvas(c canvas.Canvas) BuildOption {
	return func(o *BuildOptions) {
		o.BrickCanvas = c
	}
}

// WithSolve overlays the recorded solution on the maze canvas.
func WithSolve(on bool) BuildOption {
	return func(o *BuildOptions) {
		o.Solve = on
	}
}

// WithRadiusGap sets the wall thickness. Must be >= 0.
func WithRadiusGap(gap int) BuildOption {
	return func(o *BuildOptions) {
		if gap < 0 {
			o.err = fmt.Errorf("%w: RadiusGap must be >= 0 (%d)", ErrOptionViolation, gap)
			return
		}
		o.RadiusGap = gap
	}
}

// WithResolution sets the arc length per wedge. Must be positive and finite;
// Build also rejects values that would give the outer wall more than
// arc.MaxSteps wedges.
func WithResolution(r float64) BuildOption {
	return func(o *BuildOptions) {
		if !(r > 0) || math.IsInf(r, 0) {
			o.err = fmt.Errorf("%w: Resolution must be positive (%v)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}

// WithMaxExtent bounds the side of every rectangle brick. Must be >= 2.
func WithMaxExtent(n int) BuildOption {
	return func(o *BuildOptions) {
		if n < 2 {
			o.err = fmt.Errorf("%w: MaxExtent must be >= 2 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExtent = n
	}
}

// WithWorkers bounds the number of rings built at once; <= 0 means GOMAXPROCS.
func WithWorkers(n int) BuildOption {
	return func(o *BuildOptions) {
		o.Workers = n
	}
}

// WithProgress registers fn, called once per finished ring. Calls are
// serialised but may come from any goroutine.
func WithProgress(fn func(done, total int)) BuildOption {
	return func(o *BuildOptions) {
		o.Progress = fn
	}
}

// WithRadialWalls also turns the radial walls into rectangle bricks, each a
// straight band of the given width. Zero disables them.
func WithRadialWalls(width int) BuildOption {
	return func(o *BuildOptions) {
		if width < 0 {
			o.err = fmt.Errorf("%w: radial wall width must be >= 0 (%d)", ErrOptionViolation, width)
			return
		}
		o.RadialWalls = width
	}
}

func buildOptions(opts []BuildOption) (BuildOptions, error) {
	o := DefaultBuildOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o, o.err
}
