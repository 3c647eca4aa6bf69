// Package mapgen orchestrates one map generation pass and exports the
// result: the binary walkable grid, the recorded room placements, and the
// per-cell metadata consumed by the board layer.
//
// What:
//
//   - Generator: constructed once with (width, height, pattern, seed?),
//     then GenerateMap(rooms, start) produces a carved, trimmed {0,1} grid.
//   - Cells: the derived read-only metadata view (room ownership per cell,
//     blocker flags).
//   - Seed: the construction seed, for sessions that reproduce maps by
//     sharing a seed instead of a grid.
//
// Pass order (later carves never erase earlier ones — all set-to-1):
//
//  1. Reset recorded corridors and placements; allocate an all-solid grid.
//  2. Empty room list ⇒ return the grid unchanged.
//  3. Synthesize corridors for the pattern and starting point.
//  4. Solve room placements (placement totality guaranteed).
//  5. Carve corridors, then rooms, then connectors.
//  6. Trim to the carved box plus a one-cell margin and translate every
//     recorded position into the trimmed frame.
//
// A call to GenerateMap is synchronous and atomic for the caller: accessors
// observe only the finished result, never an intermediate state.
//
// Errors (construction only):
//
//   - ErrInvalidDimensions, ErrUnknownPattern.
//
// Complexity: one pass is O(W×H + corridor cells × rooms); Cells is
// O(W×H×R) with a linear ownership scan per cell (a spatial index would cut
// this without changing observable behavior).
package mapgen
