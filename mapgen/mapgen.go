package mapgen

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tacmap/corridor"
	"github.com/katalvlaran/tacmap/grid"
	"github.com/katalvlaran/tacmap/placement"
	"github.com/katalvlaran/tacmap/prng"
)

// Generator orchestrates map generation passes. It owns the grid buffer of
// the current pass and shares one PRNG between the corridor synthesizer and
// the placement solver, so a pass consumes a single deterministic draw
// sequence. Not safe for concurrent use.
type Generator struct {
	width, height int
	pattern       corridor.Pattern
	seed          uint32
	hasSeed       bool

	rng        *prng.LCG
	corridors  *corridor.Generator
	placer     *placement.Placer
	grid       *grid.Grid
	placements []placement.PlacedRoom
}

// New constructs a Generator for a width×height map with the given corridor
// pattern. Two generators built with identical arguments (including
// WithSeed) produce bit-identical results for identical inputs.
func New(width, height int, pattern corridor.Pattern, opts ...Option) (*Generator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	if !pattern.Valid() {
		return nil, fmt.Errorf("New: pattern %d: %w", int(pattern), ErrUnknownPattern)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.seed
	if !cfg.hasSeed {
		seed = uint32(time.Now().UnixNano())
	}
	rng := prng.New(seed)

	cg, err := corridor.NewGenerator(width, height, corridor.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	pl, err := placement.New(cg, width, height, rng)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Generator{
		width:   width,
		height:  height,
		pattern: pattern,
		seed:    seed,
		hasSeed: cfg.hasSeed,
		rng:     rng,

		corridors: cg,
		placer:    pl,
	}, nil
}

// GenerateMap runs one full pass for the given rooms and starting point and
// returns the resulting grid rows (0 = solid, 1 = carved), trimmed to the
// carved content plus a one-cell margin. An empty room list returns the
// unmodified all-solid width×height grid. The returned rows are the live
// buffer backing Cells; callers must treat them as read-only.
func (g *Generator) GenerateMap(rooms []placement.Room, start grid.Point) [][]int {
	g.corridors.Reset()
	g.placements = g.placements[:0]

	buf, _ := grid.New(g.width, g.height) // dimensions validated in New
	g.grid = buf
	if len(rooms) == 0 {
		return buf.Cells
	}

	g.corridors.Generate(len(rooms), g.pattern, start)
	g.placements = append(g.placements, g.placer.Place(rooms)...)

	g.corridors.Carve(buf)
	g.placer.CarveRooms(buf)
	g.placer.CarveConnections(buf)

	if origin, ok := buf.Trim(); ok {
		for i := range g.placements {
			g.placements[i].Center.X -= origin.X
			g.placements[i].Center.Y -= origin.Y
			g.placements[i].Anchor.X -= origin.X
			g.placements[i].Anchor.Y -= origin.Y
		}
	}

	return buf.Cells
}

// Placements returns the recorded room placements of the last pass, in the
// trimmed coordinate frame and in input room order. The slice is a copy and
// safe to hold.
func (g *Generator) Placements() []placement.PlacedRoom {
	out := make([]placement.PlacedRoom, len(g.placements))
	copy(out, g.placements)

	return out
}

// Seed reports the seed supplied at construction. ok is false when no seed
// was given (the generator then seeded itself from the clock and the value
// is meaningless to share).
func (g *Generator) Seed() (seed uint32, ok bool) {
	if !g.hasSeed {
		return 0, false
	}

	return g.seed, true
}
