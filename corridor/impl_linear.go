package corridor

import "github.com/katalvlaran/tacmap/grid"

// generateLinear lays a single spine across the full interior width through
// the starting row. Rooms then line up along it, which is the most readable
// layout for small scripted encounters.
//
// Determinism: no random draws.
func (g *Generator) generateLinear(start grid.Point) {
	g.corridors = append(g.corridors, g.walk(grid.Point{X: 1, Y: start.Y}, grid.Right, g.span()))
}
