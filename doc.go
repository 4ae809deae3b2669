// Package thetabrick generates circular ("theta") mazes and turns their walls
// into axis-aligned brick primitives for voxel-grid worlds.
//
// What is inside:
//
//	sfc32/      deterministic Small Fast Counter RNG with explicit state
//	planar/     integer Point and Polygon (running bounds, even-odd containment)
//	decompose/  polygon → non-overlapping, size-bounded rectangles
//	arc/        arc → right-angle wedges; annular band → wedges + rectangles
//	maze/       ring/division grid, seeded backtracker, solver, brick emission
//	brick/      brick records and sinks
//	canvas/     optional debug canvases (PNG raster, SVG, recorder, no-op)
//	save/       save document writers (JSON, YAML)
//	config/     configuration surface shared by the CLI
//
// Quick sketch of a 3-ring maze with 2 initial divisions:
//
//	  ring 2 ─ 4 divisions
//	  ring 1 ─ 2 divisions
//	  ring 0 ─ 2 divisions (hub, fully open)
//
// The package itself only carries the shared logger; see SetLogger.
//
//	go get github.com/katalvlaran/thetabrick
package thetabrick
