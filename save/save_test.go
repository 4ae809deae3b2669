package save_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thetabrick/brick"
	"github.com/katalvlaran/thetabrick/save"
)

func sample() *save.Document {
	return save.NewDocument(save.Header{Title: "Maze", Seed: "11,12,15,2", Rings: 3, RingWidth: 100, Divisions: 4},
		[]brick.Brick{
			{Kind: brick.Rectangle, Color: brick.Black, Size: [3]int{10, 20, 100}, Position: [3]int{30, 40, 100}},
			{Kind: brick.Wedge, Color: brick.Red, Size: [3]int{5, 5, 100}, Position: [3]int{7, 9, 100},
				Rotation: brick.Deg180, Direction: brick.ZNegative},
		})
}

func TestNewDocument(t *testing.T) {
	doc := sample()
	assert.Equal(t, 2, doc.Header.BrickCount)
	assert.Equal(t, []string{save.MicroBrick, save.MicroWedge}, doc.Assets)
	assert.Equal(t, 1, doc.Count(save.MicroBrick))
	assert.Equal(t, 1, doc.Count(save.MicroWedge))
	assert.Equal(t, 0, doc.Count("PB_Unknown"))

	w := doc.Bricks[1]
	assert.Equal(t, 1, w.Asset)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, w.Color)
	assert.Equal(t, "180", w.Rotation)
	assert.Equal(t, "-Z", w.Direction)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, save.WriteJSON(&buf, sample()))

	var got save.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sample(), got)
	assert.Contains(t, buf.String(), `"brick_count": 2`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, save.WriteYAML(&buf, sample()))

	var got save.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sample(), got)
	assert.Contains(t, buf.String(), "ring_width: 100")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"maze.json", "maze.yaml", "maze.YML"} {
		path := filepath.Join(dir, name)
		require.NoError(t, save.WriteFile(path, sample()), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	err := save.WriteFile(filepath.Join(dir, "maze.brs"), sample())
	assert.ErrorIs(t, err, save.ErrUnknownFormat)
}
