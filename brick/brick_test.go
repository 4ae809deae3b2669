package brick_test

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/thetabrick/brick"
)

func TestBuffer(t *testing.T) {
	var buf brick.Buffer
	buf.Append(brick.Brick{Kind: brick.Rectangle}, brick.Brick{Kind: brick.Wedge})
	buf.Append(brick.Brick{Kind: brick.Wedge})
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, 1, buf.Count(brick.Rectangle))
	assert.Equal(t, 2, buf.Count(brick.Wedge))
}

func TestSyncSink(t *testing.T) {
	var buf brick.Buffer
	s := brick.NewSyncSink(&buf)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Append(brick.Brick{})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, buf.Len())
}

func TestColor(t *testing.T) {
	c := brick.FromColor(color.RGBA{R: 10, G: 20, B: 30, A: 40})
	assert.Equal(t, brick.Color{R: 10, G: 20, B: 30, A: 255}, c)
	assert.Equal(t, uint8(255), brick.Red.A)

	r, _, _, a := brick.Red.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "rectangle", brick.Rectangle.String())
	assert.Equal(t, "wedge", brick.Wedge.String())
	assert.Equal(t, "180", brick.Deg180.String())
	assert.Equal(t, "-Z", brick.ZNegative.String())
	assert.Equal(t, "+Z", brick.ZPositive.String())
}
