// Package maze generates theta (circular) mazes and converts their walls
// into bricks.
//
// What:
//
//   - A ThetaMaze is a set of concentric rings of cells. Ring r has
//     initial * 2^(r/2) divisions, so every odd ring has as many cells as the
//     ring inside it and every even ring doubles them.
//   - Ring 0 is the hub: all of its cells are pre-visited and joined, and it
//     counts as a single node of the maze graph.
//   - Generate carves a perfect maze with a seeded iterative backtracker,
//     starting at division 0 of the outermost ring (the entrance), and records
//     the path from the entrance to the hub.
//   - Build turns every wall run into a WedgeArc band and collects the bricks.
//     Rings are independent and are built concurrently; results are merged in
//     ring order, so the output is identical for any worker count.
//
// Why:
//
//   - The fixed RNG makes a seed a complete description of a maze.
//
// Complexity:
//
//   - Generate: O(C) time and memory for C cells.
//   - Solve, Verify: O(C).
//   - Build: O(C) plus the arc band decompositions, divided across workers.
//
// Errors:
//
//   - ErrInvalidShape, ErrTooLarge: rejected by New.
//   - ErrNotGenerated: Build, Solve or Verify before Generate.
//   - ErrCycle, ErrDisconnected: Verify found an imperfect maze.
//   - ErrNoPath: Solve could not reach the hub.
//   - ErrOptionViolation: invalid BuildOption.
package maze
