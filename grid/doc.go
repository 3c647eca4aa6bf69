// Package grid provides the spatial primitives of the map engine: points,
// the four cardinal directions, and the carveable width×height cell buffer.
//
// What:
//
//   - Point/Direction: integer cell coordinates and Manhattan stepping.
//   - Grid: a rectangular buffer of cell states, 0 = solid, 1 = carved,
//     stored row-major as Cells[y][x].
//   - CarvedBounds/Trim: locate the carved content box and slice the buffer
//     down to it with a one-cell margin.
//
// Ownership:
//
//   - A Grid belongs to a single generation pass. Carving collaborators
//     receive it by reference for the duration of one call and must not
//     retain it afterwards.
//
// Errors:
//
//   - ErrInvalidDimensions: requested width or height is not positive.
//
// Complexity: Carve/IsCarved/InBounds are O(1); CarvedBounds and Trim are
// O(W×H) time, Trim O(W'×H') extra memory for the sliced buffer.
package grid
