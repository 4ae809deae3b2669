package sfc32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetabrick/sfc32"
)

// TestGoldenVector locks the exact output of sfc32(1,2,3,4) for five draws.
func TestGoldenVector(t *testing.T) {
	want := []uint32{7, 35, 56623203, 188882335, 3506797914}

	raw := sfc32.New(sfc32.Seed{1, 2, 3, 4})
	for i, w := range want {
		assert.Equal(t, w, raw.Uint32(), "draw %d", i)
	}

	floats := sfc32.New(sfc32.Seed{1, 2, 3, 4})
	for i, w := range want {
		got := floats.Float64()
		assert.Equal(t, float64(w)/4294967296.0, got, "draw %d", i)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 1.0)
	}
}

// TestMazeSeedVector locks the seed used by the reference maze fixture.
func TestMazeSeedVector(t *testing.T) {
	s := sfc32.New(sfc32.Seed{11, 12, 15, 2})
	for i, w := range []uint32{25, 161, 283115907, 755667757, 4196705815} {
		assert.Equal(t, w, s.Uint32(), "draw %d", i)
	}
}

// TestStateIsCopyable verifies that a copied State replays the same stream.
func TestStateIsCopyable(t *testing.T) {
	s := sfc32.New(sfc32.Seed{9, 8, 7, 6})
	for i := 0; i < 10; i++ {
		s.Uint32()
	}
	snapshot := *s

	first := make([]uint32, 16)
	for i := range first {
		first[i] = s.Uint32()
	}
	for i := range first {
		assert.Equal(t, first[i], snapshot.Uint32())
	}
}

func TestIntnRange(t *testing.T) {
	s := sfc32.New(sfc32.Seed{0xdeadbeef, 0xcafebabe, 0x12345678, 0x9abcdef0})
	seen := make(map[int]int)
	for i := 0; i < 4000; i++ {
		v := s.Intn(4)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
		seen[v]++
	}
	assert.Len(t, seen, 4, "every index should be drawn at least once")
	assert.Panics(t, func() { s.Intn(0) })
}

func TestParseSeed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want sfc32.Seed
		err  bool
	}{
		{"Plain", "1,2,3,4", sfc32.Seed{1, 2, 3, 4}, false},
		{"Spaces", " 11, 12 ,15,2 ", sfc32.Seed{11, 12, 15, 2}, false},
		{"MaxWord", "4294967295,0,0,0", sfc32.Seed{4294967295, 0, 0, 0}, false},
		{"TooFew", "1,2,3", sfc32.Seed{}, true},
		{"Overflow", "4294967296,0,0,0", sfc32.Seed{}, true},
		{"Negative", "-1,0,0,0", sfc32.Seed{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sfc32.ParseSeed(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, sfc32.ErrInvalidSeed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) sfc32.Seed {
	t.Helper()
	seed, err := sfc32.ParseSeed(s)
	require.NoError(t, err)
	return seed
}
