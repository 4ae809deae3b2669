package arc

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/thetabrick/decompose"
)

// Sentinel errors.
var (
	// ErrNegativeRadius indicates an arc radius or radius gap below zero.
	ErrNegativeRadius = errors.New("arc: negative radius")

	// ErrInvertedSpan indicates End < Begin, or a non-finite angle.
	ErrInvertedSpan = errors.New("arc: end angle precedes begin angle")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("arc: invalid option supplied")

	// ErrTooManySteps indicates a radius and resolution whose step count
	// exceeds MaxSteps.
	ErrTooManySteps = errors.New("arc: step count out of range")
)

const (
	// SemiCircle is a half turn in radians.
	SemiCircle = math.Pi
	// Circle is a full turn in radians.
	Circle = 2 * math.Pi

	// DefaultResolution is the approximate arc length covered by one wedge.
	// Higher values produce coarser approximations.
	DefaultResolution = 30.0

	// DefaultRadiusGap is the band thickness used by maze walls.
	DefaultRadiusGap = 50

	// MaxSteps bounds the number of wedges of one arc.
	MaxSteps = 1 << 20
)

// Options tunes wedge building.
type Options struct {
	Resolution float64
	MaxExtent  int
	Workers    int

	err error
}

// Option configures Build via functional arguments.
type Option func(*Options)

// DefaultOptions returns the defaults used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Resolution: DefaultResolution,
		MaxExtent:  decompose.DefaultMaxExtent,
		Workers:    1,
	}
}

// WithResolution sets the arc length per wedge. Must be positive and finite.
func WithResolution(r float64) Option {
	return func(o *Options) {
		if !(r > 0) || math.IsInf(r, 0) {
			o.err = fmt.Errorf("%w: Resolution must be positive (%v)", ErrOptionViolation, r)
			return
		}
		o.Resolution = r
	}
}

// WithMaxExtent bounds the side of every rectangle brick.
func WithMaxExtent(n int) Option {
	return func(o *Options) {
		o.MaxExtent = n
	}
}

// WithWorkers sets the raster parallelism of the band decomposition.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o, o.err
}
