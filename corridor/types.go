package corridor

import "github.com/katalvlaran/tacmap/grid"

// Pattern selects the topology strategy for the initial corridor network.
type Pattern int

const (
	// PatternRandom branches a walk from the starting point.
	PatternRandom Pattern = iota
	// PatternStar radiates spokes from the starting point.
	PatternStar
	// PatternGrid lays an orthogonal lattice over the interior.
	PatternGrid
	// PatternLinear lays a single long spine through the starting row.
	PatternLinear
)

// Valid reports whether p names a known pattern.
func (p Pattern) Valid() bool {
	return p >= PatternRandom && p <= PatternLinear
}

// String implements fmt.Stringer.
func (p Pattern) String() string {
	switch p {
	case PatternRandom:
		return "random"
	case PatternStar:
		return "star"
	case PatternGrid:
		return "grid"
	case PatternLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Corridor is a Manhattan-stepped path between Start and End. Cells holds
// the ordered coordinates including both endpoints. A corridor is read-only
// for consumers once returned; only its owning Generator may extend it.
type Corridor struct {
	Start, End grid.Point
	Cells      []grid.Point
	Direction  grid.Direction
}
