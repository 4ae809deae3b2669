package sfc32

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ErrInvalidSeed is returned when a textual seed cannot be parsed into four
// unsigned 32-bit words.
var ErrInvalidSeed = errors.New("sfc32: seed must be four comma-separated uint32 words")

// twoPow32 normalises a 32-bit output onto [0, 1).
const twoPow32 = 4294967296.0

// Seed is the four-word initial state (a, b, c, d).
type Seed [4]uint32

// String renders the seed in the form accepted by ParseSeed.
func (s Seed) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", s[0], s[1], s[2], s[3])
}

// ParseSeed parses "a,b,c,d" (whitespace around words is ignored).
func ParseSeed(text string) (Seed, error) {
	var seed Seed
	parts := strings.Split(text, ",")
	if len(parts) != len(seed) {
		return seed, fmt.Errorf("%w: got %d words in %q", ErrInvalidSeed, len(parts), text)
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return seed, fmt.Errorf("%w: word %d: %v", ErrInvalidSeed, i, err)
		}
		seed[i] = uint32(v)
	}

	return seed, nil
}

// State is the running generator state.
type State struct {
	A, B, C, D uint32
}

// New returns a generator positioned at seed.
func New(seed Seed) *State {
	return &State{A: seed[0], B: seed[1], C: seed[2], D: seed[3]}
}

// Uint32 advances the state and returns the next raw output.
//
// The steps run in this exact order:
//
//	t = a + b + d
//	d = d + 1
//	a = a ^ (b >> 9)
//	b = b + c + (c << 3)
//	c = rotl(c, 21) + t
//
// All additions wrap modulo 2^32.
func (s *State) Uint32() uint32 {
	t := s.A + s.B + s.D
	s.D++
	s.A ^= s.B >> 9
	s.B = s.B + s.C + (s.C << 3)
	s.C = bits.RotateLeft32(s.C, 21)
	s.C += t

	return t
}

// Float64 returns the next output scaled onto [0, 1).
func (s *State) Float64() float64 {
	return float64(s.Uint32()) / twoPow32
}

// Intn returns a uniform index in [0, n). It panics if n <= 0, like
// math/rand.Intn, because an empty candidate set is a caller bug.
func (s *State) Intn(n int) int {
	if n <= 0 {
		panic("sfc32: Intn called with n <= 0")
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		// float rounding can only reach n for enormous n; clamp instead of overflowing the slice
		i = n - 1
	}

	return i
}
