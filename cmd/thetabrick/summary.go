package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/thetabrick/config"
	"github.com/katalvlaran/thetabrick/maze"
)

// summary is what a run reports on stdout.
type summary struct {
	Seed       string
	Rings      int
	Cells      int
	Solution   int
	Rectangles int
	Wedges     int
	Out        string
	Images     []string
}

func summaryOf(cfg config.Config, m *maze.ThetaMaze, res *maze.Result, images []string) summary {
	rects, wedges := countKinds(res.Bricks)
	return summary{
		Seed:       m.Seed().String(),
		Rings:      m.Rings(),
		Cells:      m.Cells(),
		Solution:   len(res.Solution),
		Rectangles: rects,
		Wedges:     wedges,
		Out:        cfg.Out,
		Images:     images,
	}
}

// printSummary writes the run summary with grouped digits.
func printSummary(w io.Writer, s summary) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "seed %s: %d rings, %d cells, solution %d cells\n", s.Seed, s.Rings, s.Cells, s.Solution)
	p.Fprintf(w, "%d bricks (%d rectangles, %d wedges) -> %s\n", s.Rectangles+s.Wedges, s.Rectangles, s.Wedges, s.Out)
	for _, img := range s.Images {
		p.Fprintf(w, "debug image -> %s\n", img)
	}
}
