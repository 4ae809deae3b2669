// Package brick defines the primitive records produced by the geometry engine
// and the sinks that collect them.
//
// A Brick is either a rectangular micro-brick or a right-triangular
// micro-wedge. Sizes are whole grid units, positions are half units centred
// on the shape's bounding box, and both carry a fixed Z of 100. Degenerate
// shapes (any zero extent) are never produced.
package brick

import (
	"fmt"
	"image/color"
	"sync"
)

// Thickness is the fixed Z extent and Z position of every brick.
const Thickness = 100

// Kind selects the primitive shape.
type Kind uint8

const (
	// Rectangle is an axis-aligned block.
	Rectangle Kind = iota
	// Wedge is a right-triangular block.
	Wedge
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Wedge:
		return "wedge"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rotation around Z. Rectangles are always Deg0.
type Rotation uint8

const (
	Deg0 Rotation = iota
	Deg180
)

func (r Rotation) String() string {
	if r == Deg180 {
		return "180"
	}
	return "0"
}

// Direction is the facing axis of a wedge. Rectangles carry the zero value.
type Direction uint8

const (
	ZPositive Direction = iota
	ZNegative
)

func (d Direction) String() string {
	if d == ZNegative {
		return "-Z"
	}
	return "+Z"
}

// Color is an explicit (unique, not palette-indexed) RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromColor converts any color.Color to an opaque brick colour.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Blue  = RGB(0, 0, 255)
)

// Brick is one placed primitive.
type Brick struct {
	Kind      Kind
	Color     Color
	Size      [3]int
	Position  [3]int
	Rotation  Rotation
	Direction Direction
}

// Sink accepts an unordered append of bricks.
type Sink interface {
	Append(bricks ...Brick)
}

// Buffer is a Sink backed by a slice. It is not safe for concurrent use;
// give each goroutine its own Buffer and concatenate afterwards.
type Buffer struct {
	Bricks []Brick
}

// Append implements Sink.
func (b *Buffer) Append(bricks ...Brick) {
	b.Bricks = append(b.Bricks, bricks...)
}

// Len returns the number of buffered bricks.
func (b *Buffer) Len() int {
	return len(b.Bricks)
}

// Count returns how many bricks of kind k are buffered.
func (b *Buffer) Count(k Kind) int {
	n := 0
	for _, br := range b.Bricks {
		if br.Kind == k {
			n++
		}
	}
	return n
}

// SyncSink serialises appends from several goroutines onto an inner Sink.
type SyncSink struct {
	mu    sync.Mutex
	inner Sink
}

// NewSyncSink wraps inner with a mutex.
func NewSyncSink(inner Sink) *SyncSink {
	return &SyncSink{inner: inner}
}

// Append implements Sink.
func (s *SyncSink) Append(bricks ...Brick) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Append(bricks...)
}
