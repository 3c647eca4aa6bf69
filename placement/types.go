package placement

import "github.com/katalvlaran/tacmap/grid"

// ConnectionType records how a placed room attaches to the corridor network.
type ConnectionType int

const (
	// Through marks a room centered directly on a corridor cell.
	Through ConnectionType = iota
	// Side marks a room offset from the corridor, reached via a connector.
	Side
)

// String implements fmt.Stringer.
func (c ConnectionType) String() string {
	if c == Through {
		return "through"
	}

	return "side"
}

// Room is a placement request: a square footprint of Size cells per axis and
// a display name. Size is normally an odd integer ≥ 3; even sizes are
// accepted and anchored off-center (the extra cell falls on the high side).
type Room struct {
	Size int
	Name string
}

// Half returns floor(Size/2), the room's half-extent used by the separation
// invariant and the footprint membership test.
func (r Room) Half() int {
	return r.Size / 2
}

// PlacedRoom is the solver output for one room. Center is assigned exactly
// once and is the authoritative position for the room's whole lifetime.
// Anchor is the corridor cell a side connector is carved from; for through
// rooms it equals Center.
type PlacedRoom struct {
	Room       Room
	Center     grid.Point
	Connection ConnectionType
	Anchor     grid.Point
}

// Bounds returns the carved footprint box [min, max] (inclusive): Size cells
// per axis with the center Half cells from the minimum corner.
func (pr PlacedRoom) Bounds() (min, max grid.Point) {
	h := pr.Room.Half()
	min = grid.Point{X: pr.Center.X - h, Y: pr.Center.Y - h}
	max = grid.Point{X: min.X + pr.Room.Size - 1, Y: min.Y + pr.Room.Size - 1}

	return min, max
}

// Contains reports whether p lies within Half of the center on both axes —
// the ownership test cell metadata is built from.
func (pr PlacedRoom) Contains(p grid.Point) bool {
	h := pr.Room.Half()
	dx, dy := p.X-pr.Center.X, p.Y-pr.Center.Y

	return dx >= -h && dx <= h && dy >= -h && dy <= h
}
