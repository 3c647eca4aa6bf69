package corridor

import "github.com/katalvlaran/tacmap/grid"

// generateRandom grows a branching walk sized to roomCount: the first
// corridor leaves the starting point in a random direction, every further
// corridor leaves a random cell of a random existing corridor.
//
// Determinism: draws occur in a fixed order per corridor (origin corridor,
// origin cell, direction, length), so a fixed seed fixes the topology.
func (g *Generator) generateRandom(roomCount int, start grid.Point) {
	count := roomCount + extraWalks
	for i := 0; i < count; i++ {
		from := start
		if len(g.corridors) > 0 {
			from = g.randomCell()
		}
		dir := g.randomDirection()
		length := baseWalkLen + g.rng.Intn(walkLenJitter)
		g.corridors = append(g.corridors, g.walk(from, dir, length))
	}
}
