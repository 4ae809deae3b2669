// Package decompose tiles a simple polygon with non-overlapping, axis-aligned
// rectangles whose extent never reaches a maximum (1000 units by default).
//
// What:
//
//   - Raster samples every integer cell of the polygon's bounding box with
//     planar.Polygon.Contains. A cell is sampled at its own integer
//     coordinate, not at its centre. Rows are independent and run in parallel.
//   - Rectangles scans the raster row-major. At the first unprocessed inside
//     cell it grows right while cells stay inside and unprocessed, then grows
//     down while every cell across that width does, marks the block processed
//     and emits it.
//   - Split halves any rectangle with width or height >= MaxExtent, width
//     first, recursively.
//
// Guarantees: the union of emitted cells equals the set of inside cells, no
// two rectangles overlap, and no rectangle reaches MaxExtent. The count is a
// greedy heuristic, not a minimum.
//
// Complexity:
//
//   - Raster:     O(W·H·n) for a W×H box and n polygon points.
//   - Rectangles: O(W·H) after rasterisation.
//   - Memory:     O(W·H) bits for the raster and processed masks.
//
// Options:
//
//   - WithMaxExtent: split threshold (default 1000).
//   - WithWorkers:   raster goroutines (default GOMAXPROCS).
//   - WithMaxCells:  refuse rasters larger than this (default 1<<26).
//
// Errors:
//
//   - ErrInvertedBounds: polygon Max < Min on some axis; logged and refused.
//   - ErrGridTooLarge:   bounding box exceeds MaxCells.
//   - ErrOptionViolation: invalid option value.
package decompose
