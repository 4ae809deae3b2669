// Package arc approximates circular arcs with right-triangular wedges and
// turns a thick arc band into bricks.
//
// What:
//
//   - Arc is a circular arc on the integer plane. VertexGroups splits it into
//     Steps segments and yields, per segment, the triple [p(a1), p90, p(a2)]
//     where p90 is the right-angle vertex that makes the triangle's legs
//     axis-aligned. Which corner is chosen depends on the quadrant of the
//     segment's midpoint and on whether the arc bounds its band from inside.
//   - WedgeArc thickens an Arc inwards by RadiusGap. Both boundary arcs are
//     approximated, the staircase polygon between them is decomposed into
//     rectangles, and the triangles that fill each staircase out to the chord
//     become wedge bricks.
//
// Why:
//
//   - A voxel world has no curved primitive; an axis-aligned staircase plus one
//     wedge per step reproduces the curve to within one step.
//
// Complexity:
//
//   - VertexGroups: O(Steps) time, O(1) memory (lazy).
//   - WedgeArc.Build: O(Steps) for the wedges plus the decomposition cost of
//     the band's bounding box (see package decompose).
//
// Options:
//
//   - WithResolution(r): arc length per segment, default DefaultResolution.
//   - WithMaxExtent(n), WithWorkers(n): forwarded to decompose.
//
// Errors:
//
//   - ErrNegativeRadius, ErrInvertedSpan: rejected arcs.
//   - ErrOptionViolation: invalid option values.
//   - decompose errors are wrapped and returned unchanged in kind.
package arc
