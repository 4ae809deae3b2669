// Package save serialises generated bricks into a save document: a header
// describing the maze, an asset table and one record per brick.
// Documents are written as JSON or YAML.
package save

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/brick"
)

// ErrUnknownFormat is returned by WriteFile for an unsupported extension.
var ErrUnknownFormat = errors.New("save: unknown file format")

// Asset names, indexed by brick.Kind.
const (
	MicroBrick = "PB_DefaultMicroBrick"
	MicroWedge = "PB_DefaultMicroWedge"
)

// Assets is the asset table of every document.
var Assets = []string{MicroBrick, MicroWedge}

// Header describes the maze a document was generated from.
type Header struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Seed        string `json:"seed" yaml:"seed"`
	Rings       int    `json:"rings" yaml:"rings"`
	RingWidth   int    `json:"ring_width" yaml:"ring_width"`
	Divisions   int    `json:"divisions" yaml:"divisions"`
	BrickCount  int    `json:"brick_count" yaml:"brick_count"`
}

// Record is one serialised brick. Asset indexes the document's asset table.
type Record struct {
	Asset     int      `json:"asset" yaml:"asset"`
	Color     [4]uint8 `json:"color" yaml:"color,flow"`
	Size      [3]int   `json:"size" yaml:"size,flow"`
	Position  [3]int   `json:"position" yaml:"position,flow"`
	Rotation  string   `json:"rotation" yaml:"rotation"`
	Direction string   `json:"direction" yaml:"direction"`
}

// Document is a complete save.
type Document struct {
	Header Header   `json:"header" yaml:"header"`
	Assets []string `json:"assets" yaml:"assets"`
	Bricks []Record `json:"bricks" yaml:"bricks"`
}

// NewDocument converts bricks into records under header. BrickCount is
// filled in from len(bricks).
func NewDocument(header Header, bricks []brick.Brick) *Document {
	doc := &Document{
		Header: header,
		Assets: append([]string(nil), Assets...),
		Bricks: make([]Record, len(bricks)),
	}
	doc.Header.BrickCount = len(bricks)
	for i, b := range bricks {
		doc.Bricks[i] = FromBrick(b)
	}
	return doc
}

// FromBrick converts one brick.
func FromBrick(b brick.Brick) Record {
	return Record{
		Asset:     int(b.Kind),
		Color:     [4]uint8{b.Color.R, b.Color.G, b.Color.B, b.Color.A},
		Size:      b.Size,
		Position:  b.Position,
		Rotation:  b.Rotation.String(),
		Direction: b.Direction.String(),
	}
}

// Count returns the number of records using asset.
func (d *Document) Count(asset string) int {
	idx := -1
	for i, a := range d.Assets {
		if a == asset {
			idx = i
		}
	}
	n := 0
	for _, r := range d.Bricks {
		if r.Asset == idx {
			n++
		}
	}
	return n
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("save: encode json: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("save: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("save: encode yaml: %w", err)
	}
	return nil
}

// WriteFile writes doc to path, choosing the format from the extension:
// .json, or .yaml / .yml.
func WriteFile(path string, doc *Document) error {
	var write func(io.Writer, *Document) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := write(bw, doc); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("save: flush %s: %w", path, err)
	}
	thetabrick.Logger().Info("save: written", "path", path, "bricks", len(doc.Bricks))
	return f.Close()
}
