package corridor

import "github.com/katalvlaran/tacmap/grid"

// Carve marks every corridor cell as carved in gr. The grid is borrowed for
// the duration of the call only. Complexity: O(total corridor cells).
func (g *Generator) Carve(gr *grid.Grid) {
	for _, c := range g.corridors {
		for _, p := range c.Cells {
			gr.Carve(p)
		}
	}
}
