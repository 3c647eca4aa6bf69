// Package prng provides a deterministic 32-bit linear congruential
// pseudo-random source for reproducible map generation.
//
// What:
//
//   - LCG advances state' = (1664525·state + 1013904223) mod 2^32
//     (the Numerical Recipes constants).
//   - Next, Float64 and Intn expose the state as raw draws, [0,1) floats
//     and bounded integers.
//   - Reset replays the stored initial seed; Reseed replaces it.
//
// Why:
//
//   - Networked sessions must reproduce a map from a seed alone, so the
//     output sequence has to be byte-identical across processes and
//     architectures — math/rand makes no such cross-version promise.
//   - Determinism is structural: sources are constructed and injected,
//     never a process-wide singleton.
//
// Contract:
//
//   - Identical seed + identical call sequence ⇒ identical output sequence.
//   - Intn(max) returns 0 for max ≤ 1; no operation fails or panics.
//
// Complexity: every operation is O(1) time and O(1) space.
package prng
