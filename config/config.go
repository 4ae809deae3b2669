// Package config holds the run configuration of the thetabrick command:
// maze shape, seed, geometry tuning and outputs. It loads from YAML and
// validates every value before any of it reaches the geometry code.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thetabrick/arc"
	"github.com/katalvlaran/thetabrick/decompose"
	"github.com/katalvlaran/thetabrick/maze"
	"github.com/katalvlaran/thetabrick/sfc32"
)

// ErrOutOfRange indicates a configuration value outside its accepted range.
var ErrOutOfRange = errors.New("config: value out of range")

// ErrUnknownCanvas indicates a debug canvas format other than png or svg.
var ErrUnknownCanvas = errors.New("config: unknown canvas format")

// Canvas formats.
const (
	CanvasPNG = "png"
	CanvasSVG = "svg"
)

// Config is one run of the generator.
type Config struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`

	Rings     int    `yaml:"rings"`
	RingWidth int    `yaml:"ring_width"`
	Divisions int    `yaml:"divisions"`
	Seed      string `yaml:"seed"`

	RadiusGap   int     `yaml:"radius_gap"`
	Resolution  float64 `yaml:"resolution"`
	MaxExtent   int     `yaml:"max_extent"`
	Workers     int     `yaml:"workers"`
	RadialWalls int     `yaml:"radial_walls"`

	Out      string `yaml:"out"`
	Draw     bool   `yaml:"draw"`
	Solve    bool   `yaml:"solve"`
	DebugDir string `yaml:"debug_dir"`
	Canvas   string `yaml:"canvas"`
	Verify   bool   `yaml:"verify"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Title:      "Maze",
		Rings:      3,
		RingWidth:  100,
		Divisions:  2,
		Seed:       sfc32.Seed{11, 12, 15, 2}.String(),
		RadiusGap:  arc.DefaultRadiusGap,
		Resolution: arc.DefaultResolution,
		MaxExtent:  decompose.DefaultMaxExtent,
		Out:        "maze.json",
		DebugDir:   ".",
		Canvas:     CanvasPNG,
	}
}

// Load reads a YAML file over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default. An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate checks every value, returning the first problem found.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		v, lo int
	}{
		{"rings", c.Rings, 2},
		{"ring_width", c.RingWidth, 1},
		{"divisions", c.Divisions, 1},
		{"radius_gap", c.RadiusGap, 0},
		{"max_extent", c.MaxExtent, 2},
		{"radial_walls", c.RadialWalls, 0},
	}
	for _, ch := range checks {
		if ch.v < ch.lo {
			return fmt.Errorf("%w: %s=%d, minimum %d", ErrOutOfRange, ch.name, ch.v, ch.lo)
		}
	}
	if !(c.Resolution > 0) || math.IsInf(c.Resolution, 0) {
		return fmt.Errorf("%w: resolution=%v must be positive and finite", ErrOutOfRange, c.Resolution)
	}
	if c.Canvas != CanvasPNG && c.Canvas != CanvasSVG {
		return fmt.Errorf("%w: %q", ErrUnknownCanvas, c.Canvas)
	}
	if _, err := c.ParsedSeed(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := maze.New(c.RingWidth, c.Rings, c.Divisions); err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	outer := arc.Arc{Radius: c.RingWidth * c.Rings, End: arc.Circle}
	if err := outer.CheckSteps(c.Resolution); err != nil {
		return fmt.Errorf("%w: resolution=%v: %v", ErrOutOfRange, c.Resolution, err)
	}
	if side := c.RingWidth + c.RadialWalls + 1; side > decompose.DefaultMaxCells/side {
		return fmt.Errorf("%w: radial_walls=%d exceeds the raster budget", ErrOutOfRange, c.RadialWalls)
	}
	return nil
}

// ParsedSeed returns Seed as an sfc32.Seed.
func (c Config) ParsedSeed() (sfc32.Seed, error) {
	return sfc32.ParseSeed(c.Seed)
}

// BuildOptions maps the geometry settings onto maze build options.
func (c Config) BuildOptions() []maze.BuildOption {
	return []maze.BuildOption{
		maze.WithRadiusGap(c.RadiusGap),
		maze.WithResolution(c.Resolution),
		maze.WithMaxExtent(c.MaxExtent),
		maze.WithWorkers(c.Workers),
		maze.WithRadialWalls(c.RadialWalls),
		maze.WithSolve(c.Solve),
	}
}
