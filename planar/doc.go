// Package planar defines the integer plane shared by the maze and geometry
// packages: Point, Size and Polygon.
//
// What:
//
//   - Point is an integer (X, Y) value.
//   - Polygon is an implicitly closed loop of Points. Every insertion updates
//     Min/Max bounds, Size (Max - Min) and Position (Min*2 + Size).
//   - Contains is an even-odd ray cast with a bounding-box rejection.
//
// Position reconciles two unit systems: geometry works in whole grid units
// while brick placement works in half units centred on the bounding box.
//
// Edge rule for Contains: an edge counts when exactly one endpoint lies
// strictly above the query row (p.Y > y), and the crossing is recorded when
// the query x is strictly less than the truncated integer intercept. Left and
// bottom (minimum-y) boundaries of an axis-aligned square therefore report
// inside, right and top boundaries report outside.
package planar
