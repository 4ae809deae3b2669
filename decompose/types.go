package decompose

import (
	"errors"
	"fmt"
)

// Sentinel errors for decomposition.
var (
	// ErrInvertedBounds indicates a polygon whose Max lies below its Min.
	ErrInvertedBounds = errors.New("decompose: polygon bounds are inverted")

	// ErrGridTooLarge indicates the bounding box would exceed the raster cell budget.
	ErrGridTooLarge = errors.New("decompose: raster grid exceeds cell budget")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("decompose: invalid option supplied")
)

// Deterministic defaults.
const (
	// DefaultMaxExtent is the exclusive upper bound on rectangle width and height.
	DefaultMaxExtent = 1000

	// DefaultMaxCells bounds the raster allocation (cells, one byte each).
	DefaultMaxCells = 1 << 26
)

// Options configures Rectangles.
type Options struct {
	// MaxExtent: any rectangle with width or height >= MaxExtent is split.
	MaxExtent int

	// Workers is the raster goroutine count; <= 0 means GOMAXPROCS.
	Workers int

	// MaxCells bounds (W+1)·(H+1) of the sampled box.
	MaxCells int

	err error
}

// Option configures decomposition via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by Rectangles.
type Option func(*Options)

// DefaultOptions returns MaxExtent=1000, Workers=0 (GOMAXPROCS), MaxCells=1<<26.
func DefaultOptions() Options {
	return Options{
		MaxExtent: DefaultMaxExtent,
		Workers:   0,
		MaxCells:  DefaultMaxCells,
	}
}

// WithMaxExtent sets the split threshold; n must be >= 2 so halves stay non-empty.
func WithMaxExtent(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: MaxExtent must be >= 2 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExtent = n
	}
}

// WithWorkers sets the raster goroutine count; <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxCells sets the raster cell budget.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxCells must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
