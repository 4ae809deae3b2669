// Command thetabrick generates a theta maze, converts it into bricks and
// writes the bricks as a save document.
//
// Usage:
//
//	thetabrick [flags]
//	thetabrick -config maze.yaml -seed 1,2,3,4 -draw -solve
//
// Flags override values from -config, which override the built-in defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/thetabrick"
	"github.com/katalvlaran/thetabrick/brick"
	"github.com/katalvlaran/thetabrick/canvas"
	"github.com/katalvlaran/thetabrick/config"
	"github.com/katalvlaran/thetabrick/maze"
	"github.com/katalvlaran/thetabrick/save"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "thetabrick: %v\n", err)
		os.Exit(1)
	}
}

// bind registers every Config flag on fs, writing into c.
func bind(fs *flag.FlagSet, c *config.Config) {
	fs.StringVar(&c.Title, "title", c.Title, "save title")
	fs.StringVar(&c.Author, "author", c.Author, "save author")
	fs.IntVar(&c.Rings, "rings", c.Rings, "number of rings, hub included (>= 2)")
	fs.IntVar(&c.RingWidth, "ring-width", c.RingWidth, "radial width of a ring")
	fs.IntVar(&c.Divisions, "divisions", c.Divisions, "divisions of the hub ring")
	fs.StringVar(&c.Seed, "seed", c.Seed, "four comma-separated uint32 words")
	fs.IntVar(&c.RadiusGap, "radius-gap", c.RadiusGap, "wall thickness")
	fs.Float64Var(&c.Resolution, "resolution", c.Resolution, "arc length per wedge")
	fs.IntVar(&c.MaxExtent, "max-extent", c.MaxExtent, "largest rectangle side")
	fs.IntVar(&c.Workers, "workers", c.Workers, "rings built at once (0 = all CPUs)")
	fs.IntVar(&c.RadialWalls, "radial", c.RadialWalls, "radial wall width in bricks (0 = debug lines only)")
	fs.StringVar(&c.Out, "out", c.Out, "save file (.json, .yaml)")
	fs.BoolVar(&c.Draw, "draw", c.Draw, "write debug images of the maze and its bricks")
	fs.BoolVar(&c.Solve, "solve", c.Solve, "draw the solution on the maze image")
	fs.StringVar(&c.DebugDir, "debug-dir", c.DebugDir, "directory for debug images")
	fs.StringVar(&c.Canvas, "canvas", c.Canvas, "debug image format: png or svg")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "check the maze is perfect and solvable")
}

// options that are not part of Config.
type cliFlags struct {
	configPath string
	logLevel   string
	preview    bool
}

func parse(args []string, stderr io.Writer) (config.Config, cliFlags, error) {
	cfg := config.Default()
	var cli cliFlags

	fs := flag.NewFlagSet("thetabrick", flag.ContinueOnError)
	fs.SetOutput(stderr)
	bind(fs, &cfg)
	fs.StringVar(&cli.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&cli.logLevel, "log-level", "warn", "debug, info, warn or error")
	fs.BoolVar(&cli.preview, "preview", false, "show the maze in the terminal")
	if err := fs.Parse(args); err != nil {
		return cfg, cli, err
	}
	if fs.NArg() > 0 {
		return cfg, cli, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cli.configPath == "" {
		return cfg, cli, nil
	}

	// reapply explicit flags over the file
	loaded, err := config.Load(cli.configPath)
	if err != nil {
		return cfg, cli, err
	}
	over := flag.NewFlagSet("override", flag.ContinueOnError)
	over.SetOutput(io.Discard)
	bind(over, &loaded)
	fs.Visit(func(f *flag.Flag) {
		if over.Lookup(f.Name) != nil && err == nil {
			err = over.Set(f.Name, f.Value.String())
		}
	})
	return loaded, cli, err
}

func setupLogger(level string, stderr io.Writer) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	thetabrick.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func newCanvas(format string, size int) canvas.Canvas {
	if format == config.CanvasSVG {
		return canvas.NewSVG()
	}
	return canvas.NewRaster(size, size)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, cli, err := parse(args, stderr)
	if err != nil {
		return err
	}
	if err = setupLogger(cli.logLevel, stderr); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	seed, err := cfg.ParsedSeed()
	if err != nil {
		return err
	}
	m, err := maze.New(cfg.RingWidth, cfg.Rings, cfg.Divisions)
	if err != nil {
		return err
	}
	m.Generate(seed)

	if cfg.Verify {
		if err = verify(m); err != nil {
			return err
		}
	}

	opts := cfg.BuildOptions()
	var mazeCanvas, brickCanvas canvas.Canvas
	if cfg.Draw {
		mazeCanvas = newCanvas(cfg.Canvas, m.CanvasSize())
		brickCanvas = newCanvas(cfg.Canvas, m.CanvasSize())
		opts = append(opts, maze.WithMazeCanvas(mazeCanvas), maze.WithBrickCanvas(brickCanvas))
	}
	opts = append(opts, maze.WithProgress(func(done, total int) {
		fmt.Fprintf(stderr, "\rbuilding rings %d/%d", done, total)
		if done == total {
			fmt.Fprintln(stderr)
		}
	}))

	res, err := m.Build(opts...)
	if err != nil {
		return err
	}

	doc := save.NewDocument(save.Header{
		Title:     cfg.Title,
		Author:    cfg.Author,
		Seed:      seed.String(),
		Rings:     cfg.Rings,
		RingWidth: cfg.RingWidth,
		Divisions: cfg.Divisions,
	}, res.Bricks)
	if err = save.WriteFile(cfg.Out, doc); err != nil {
		return err
	}

	var images []string
	if cfg.Draw {
		if images, err = saveImages(cfg, m, mazeCanvas, brickCanvas); err != nil {
			return err
		}
	}

	printSummary(stdout, summaryOf(cfg, m, res, images))

	if cli.preview {
		return preview(previewImage(m, mazeCanvas, cfg.Solve))
	}
	return nil
}

func verify(m *maze.ThetaMaze) error {
	if err := m.Verify(); err != nil {
		return err
	}
	path, err := m.Solve()
	if err != nil {
		return err
	}
	want := m.Solution()
	if len(path) != len(want) {
		return fmt.Errorf("solution mismatch: search found %d cells, carving recorded %d", len(path), len(want))
	}
	for i := range path {
		if path[i] != want[i] {
			return fmt.Errorf("solution mismatch at step %d: %v != %v", i, path[i], want[i])
		}
	}
	return nil
}

func saveImages(cfg config.Config, m *maze.ThetaMaze, mazeCanvas, brickCanvas canvas.Canvas) ([]string, error) {
	if err := os.MkdirAll(cfg.DebugDir, 0o755); err != nil {
		return nil, err
	}
	if r, ok := mazeCanvas.(*canvas.Raster); ok {
		r.Caption(fmt.Sprintf("%s  seed %s", cfg.Title, m.Seed()))
	}
	var paths []string
	for _, out := range []struct {
		name string
		c    canvas.Canvas
	}{{"maze", mazeCanvas}, {"maze_bricks", brickCanvas}} {
		p := filepath.Join(cfg.DebugDir, out.name+"."+cfg.Canvas)
		if err := out.c.Save(p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// previewImage reuses the maze raster when there is one and draws a fresh
// one otherwise.
func previewImage(m *maze.ThetaMaze, drawn canvas.Canvas, solve bool) image.Image {
	if r, ok := drawn.(*canvas.Raster); ok {
		return r.Image()
	}
	r := canvas.NewRaster(m.CanvasSize(), m.CanvasSize())
	r.SetStroke(float64(max(2, m.CanvasSize()/200)))
	if _, err := m.Build(maze.WithMazeCanvas(r), maze.WithSolve(solve), maze.WithRadiusGap(0)); err != nil {
		thetabrick.Logger().Warn("preview: build failed", "err", err)
	}
	return r.Image()
}

func countKinds(bricks []brick.Brick) (rects, wedges int) {
	for _, b := range bricks {
		if b.Kind == brick.Wedge {
			wedges++
		} else {
			rects++
		}
	}
	return rects, wedges
}
