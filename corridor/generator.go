package corridor

import (
	"time"

	"github.com/katalvlaran/tacmap/grid"
	"github.com/katalvlaran/tacmap/prng"
)

// Generator synthesizes and grows a corridor network over a width×height
// grid. It never touches a Grid except inside Carve, and it keeps every
// emitted cell inside the 1-cell reserved border.
// Not safe for concurrent use; a generation pass owns its generator.
type Generator struct {
	width, height int
	rng           *prng.LCG
	corridors     []*Corridor
}

// NewGenerator constructs a Generator for a width×height grid.
// Without WithRand/WithSeed the source is seeded from the wall clock, so
// reproducible runs must inject their randomness explicitly.
// Returns ErrInvalidDimensions when either dimension is not positive.
func NewGenerator(width, height int, opts ...Option) (*Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	g := &Generator{width: width, height: height}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = prng.New(uint32(time.Now().UnixNano()))
	}

	return g, nil
}

// Corridors returns the current corridor set. The slice and the corridors it
// holds are read-only for callers; the set may grow on later growth calls.
func (g *Generator) Corridors() []*Corridor {
	return g.corridors
}

// Reset clears the recorded network. When corridors are supplied they become
// the new starting set, which is how a recorded layout is replayed.
func (g *Generator) Reset(cs ...*Corridor) {
	g.corridors = g.corridors[:0]
	g.corridors = append(g.corridors, cs...)
}

// Generate discards the current network and produces the initial corridor
// set for roomCount rooms using the given pattern, anchored at start
// (clamped into the interior). It returns the fresh set for convenience.
// Complexity: O(total emitted cells).
func (g *Generator) Generate(roomCount int, pattern Pattern, start grid.Point) []*Corridor {
	g.corridors = g.corridors[:0]
	start = g.clamp(start)

	switch pattern {
	case PatternStar:
		g.generateStar(roomCount, start)
	case PatternGrid:
		g.generateGrid()
	case PatternLinear:
		g.generateLinear(start)
	default:
		g.generateRandom(roomCount, start)
	}

	return g.corridors
}

// walk builds a corridor from start stepping up to length cells in dir,
// stopping at the interior border. The start cell is always included, so a
// fully clipped walk degenerates to a single-cell corridor.
func (g *Generator) walk(start grid.Point, dir grid.Direction, length int) *Corridor {
	cells := make([]grid.Point, 1, length+1)
	cells[0] = start
	p := start
	for i := 0; i < length; i++ {
		next := p.Step(dir)
		if !g.inInterior(next) {
			break
		}
		p = next
		cells = append(cells, p)
	}

	return &Corridor{Start: start, End: p, Cells: cells, Direction: dir}
}

// span is a walk length guaranteed to reach the interior border.
func (g *Generator) span() int {
	return g.width + g.height
}

func (g *Generator) inInterior(p grid.Point) bool {
	return p.X >= 1 && p.X <= g.width-2 && p.Y >= 1 && p.Y <= g.height-2
}

// clamp pulls p into the interior; on degenerate grids (width or height < 3)
// the result may still be out of bounds, which downstream carving ignores.
func (g *Generator) clamp(p grid.Point) grid.Point {
	return grid.Point{
		X: clampAxis(p.X, 1, g.width-2),
		Y: clampAxis(p.Y, 1, g.height-2),
	}
}

func clampAxis(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi && hi >= lo {
		v = hi
	}

	return v
}

// randomDirection draws one of the four cardinal directions.
func (g *Generator) randomDirection() grid.Direction {
	return grid.Directions[g.rng.Intn(len(grid.Directions))]
}

// randomCell draws a uniformly random cell of a uniformly random corridor.
// Must only be called with a non-empty network.
func (g *Generator) randomCell() grid.Point {
	c := g.corridors[g.rng.Intn(len(g.corridors))]

	return c.Cells[g.rng.Intn(len(c.Cells))]
}
