// Package placement assigns a grid position to every requested room,
// guaranteed — the solver never returns fewer placements than rooms.
//
// What:
//
//   - Room: a placement request (square footprint side length + name).
//   - PlacedRoom: the solved position, its connection kind and the corridor
//     anchor a connector is carved from.
//   - Placer: scans the corridor network for valid centers, escalates
//     network expansion when space runs out, and finally force-places.
//
// Algorithm, per room in caller order (earlier rooms get first choice):
//
//  1. Scan corridor cells for a through placement (center on a corridor).
//  2. Scan side placements at increasing offsets from corridor cells.
//  3. Escalate expansion under a hard round cap: lengthen corridors, then
//     branch, then span the grid with long corridors, rescanning each time.
//  4. Force-place at the least-violating in-bounds center. Separation may
//     give way here; bounds never do.
//
// Validity of a center: the footprint stays inside the 1-cell reserved
// border and the Manhattan distance to every placed center is at least
// floor(size₁/2) + floor(size₂/2) + 1.
//
// Errors (construction only; Place itself is total):
//
//   - ErrNilGenerator, ErrNilRand, ErrInvalidDimensions.
//
// Complexity: one scan is O(corridor cells × placed rooms); force placement
// is O(W×H × placed rooms).
package placement
