// Package corridor synthesizes and grows the connective path network a map
// is built around.
//
// What:
//
//   - Corridor: a Manhattan-stepped cell path with a recorded direction.
//   - Generator: produces an initial corridor set for one of four topology
//     patterns and grows the network on demand when room placement runs out
//     of space.
//
// Patterns:
//
//   - PatternRandom: a branching walk from the starting point; every further
//     corridor leaves a random cell of a random existing corridor.
//   - PatternStar: four full-length cardinal spokes from the starting point,
//     plus perpendicular branch spokes when more rooms are requested.
//   - PatternGrid: an orthogonal lattice with a fixed pitch spanning the
//     whole interior.
//   - PatternLinear: a single full-width spine through the starting row.
//
// Growth (used by the placement solver, in escalation order):
//
//   - Extend: lengthen one corridor along its recorded direction.
//   - AddBranch: attach one new corridor to the existing network.
//   - AddLongCorridors: last resort, spanning corridors across the interior.
//
// None of these operations fail: paths are clipped at the 1-cell reserved
// border and carving ignores out-of-bounds cells. Determinism follows from
// the injected prng source (WithSeed/WithRand) and the fixed emission order.
//
// Complexity: Generate and every growth step are O(L) in the emitted path
// length; Carve is O(total corridor cells).
package corridor
