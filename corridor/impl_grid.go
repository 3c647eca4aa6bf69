package corridor

import "github.com/katalvlaran/tacmap/grid"

// generateGrid lays an orthogonal lattice with latticePitch spacing across
// the whole interior: horizontal corridors first (top to bottom), then
// vertical (left to right). The lattice covers the grid regardless of the
// requested room count, so no sizing parameter is needed.
//
// Determinism: no random draws; the lattice is a pure function of the grid
// dimensions.
func (g *Generator) generateGrid() {
	for y := 1; y <= g.height-2; y += latticePitch {
		g.corridors = append(g.corridors, g.walk(grid.Point{X: 1, Y: y}, grid.Right, g.span()))
	}
	for x := 1; x <= g.width-2; x += latticePitch {
		g.corridors = append(g.corridors, g.walk(grid.Point{X: x, Y: 1}, grid.Down, g.span()))
	}
}
