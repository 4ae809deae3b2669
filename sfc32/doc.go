// Package sfc32 implements the Small Fast Counter (sfc32) pseudo-random
// generator with explicit, copyable state.
//
// What:
//
//   - State holds the four 32-bit words (a, b, c, d).
//   - Uint32 advances the state once and returns the raw 32-bit output.
//   - Float64 maps that output onto [0, 1) by dividing by 2^32.
//   - Intn draws a uniform index in [0, n) by scaling Float64 and truncating.
//
// Why:
//
//   - Determinism: the same Seed reproduces the same maze on every platform.
//   - Portability: the operation order is fixed, so other implementations can
//     be checked against the golden vectors in the tests.
//   - Testability: State is a plain value; it can be copied, stored and
//     replayed independently of any generation run.
//
// Concurrency:
//
//   - *State is NOT goroutine-safe. Give each goroutine its own copy.
//
// Complexity: every operation is O(1) with no allocations.
package sfc32
