package corridor

import "github.com/katalvlaran/tacmap/grid"

// generateStar radiates one full-length spoke in every cardinal direction
// from the starting point, in canonical direction order. While the spoke
// count is below roomCount it keeps adding branch spokes, each leaving a
// random cell of one of the four cardinal spokes perpendicular to it.
//
// Determinism: spoke emission order is fixed; branch draws occur in a fixed
// order per branch (origin cell, perpendicular side, length).
func (g *Generator) generateStar(roomCount int, start grid.Point) {
	for _, dir := range grid.Directions {
		g.corridors = append(g.corridors, g.walk(start, dir, g.span()))
	}

	for i := cardinalSpokes; i < roomCount; i++ {
		spoke := g.corridors[i%cardinalSpokes]
		from := spoke.Cells[g.rng.Intn(len(spoke.Cells))]
		perp := spoke.Direction.Perpendicular()
		dir := perp[g.rng.Intn(len(perp))]
		length := baseWalkLen + g.rng.Intn(walkLenJitter)
		g.corridors = append(g.corridors, g.walk(from, dir, length))
	}
}
