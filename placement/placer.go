package placement

import (
	"github.com/katalvlaran/tacmap/corridor"
	"github.com/katalvlaran/tacmap/prng"
)

// Expansion schedule. The cap is deliberately a small constant rather than a
// grid-proportional figure: after four AddLongCorridors rounds the network
// spans every latitude of the grid, so further expansion cannot open new
// space and force placement is the correct terminal state.
const (
	extendRounds = 4
	branchRounds = 4
	longRounds   = 4
	// maxExpansionRounds caps the escalating expansion per room; exhausting
	// it falls through to force placement, never to a failure.
	maxExpansionRounds = extendRounds + branchRounds + longRounds
)

// maxSideOffset is how far beyond the adjacent slot (Half+1) the side scan
// pushes a candidate center away from its corridor anchor.
const maxSideOffset = 3

// Placer assigns non-overlapping, in-bounds positions to rooms along a
// corridor network, growing the network through gen when needed.
// Not safe for concurrent use; a generation pass owns its placer.
type Placer struct {
	width, height int
	gen           *corridor.Generator
	rng           *prng.LCG
	placed        []PlacedRoom
}

// New constructs a Placer over gen for a width×height grid. The PRNG is
// shared with the corridor generator by the orchestrator so one pass
// consumes a single draw sequence.
func New(gen *corridor.Generator, width, height int, rng *prng.LCG) (*Placer, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Placer{width: width, height: height, gen: gen, rng: rng}, nil
}

// Placed returns the placements recorded so far. Read-only for callers.
func (p *Placer) Placed() []PlacedRoom {
	return p.placed
}

// Place assigns every room a center, in input order — earlier rooms get
// first choice of corridor slots, a deliberate policy, not an accident.
// The result always has exactly len(rooms) entries (placement totality).
func (p *Placer) Place(rooms []Room) []PlacedRoom {
	p.placed = p.placed[:0]
	for _, room := range rooms {
		p.placed = append(p.placed, p.placeOne(room))
	}

	return p.placed
}

// placeOne runs the scan / expand / rescan ladder for a single room and
// falls through to force placement when the round cap is exhausted.
func (p *Placer) placeOne(room Room) PlacedRoom {
	if pr, ok := p.scan(room); ok {
		return pr
	}
	for round := 0; round < maxExpansionRounds; round++ {
		p.expand(round)
		if pr, ok := p.scan(room); ok {
			return pr
		}
	}

	return p.forcePlace(room)
}

// expand escalates the corridor network: first lengthen existing corridors
// (cycling through them), then branch, then span the grid.
func (p *Placer) expand(round int) {
	switch {
	case round < extendRounds:
		cs := p.gen.Corridors()
		if len(cs) == 0 {
			p.gen.AddBranch()
			return
		}
		p.gen.Extend(cs[round%len(cs)])
	case round < extendRounds+branchRounds:
		p.gen.AddBranch()
	default:
		p.gen.AddLongCorridors()
	}
}
