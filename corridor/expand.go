package corridor

import "github.com/katalvlaran/tacmap/grid"

// Extend lengthens c along its recorded direction by up to extendStep cells,
// stopping at the interior border. The corridor is mutated in place; at the
// border the call is a no-op. Complexity: O(extendStep).
func (g *Generator) Extend(c *Corridor) {
	p := c.End
	for i := 0; i < extendStep; i++ {
		next := p.Step(c.Direction)
		if !g.inInterior(next) {
			break
		}
		p = next
		c.Cells = append(c.Cells, p)
	}
	c.End = p
}

// AddBranch appends one new corridor attached to the existing network: it
// leaves a random cell of a random corridor in a random direction. With an
// empty network the branch starts from the grid center instead, so the call
// is total. Returns the new corridor. Complexity: O(branch length).
func (g *Generator) AddBranch() *Corridor {
	from := g.clamp(grid.Point{X: g.width / 2, Y: g.height / 2})
	if len(g.corridors) > 0 {
		from = g.randomCell()
	}
	dir := g.randomDirection()
	length := baseWalkLen + g.rng.Intn(walkLenJitter)

	c := g.walk(from, dir, length)
	g.corridors = append(g.corridors, c)

	return c
}

// AddLongCorridors is the last-resort bulk expansion: longPerAxis spanning
// corridors per axis, each at a random interior row or column. After one
// call the network reaches every latitude of the grid, which is what the
// placement fallback needs. Complexity: O(longPerAxis × (W+H)).
func (g *Generator) AddLongCorridors() {
	for i := 0; i < longPerAxis; i++ {
		y := 1 + g.rng.Intn(g.height-2)
		g.corridors = append(g.corridors, g.walk(grid.Point{X: 1, Y: y}, grid.Right, g.span()))
	}
	for i := 0; i < longPerAxis; i++ {
		x := 1 + g.rng.Intn(g.width-2)
		g.corridors = append(g.corridors, g.walk(grid.Point{X: x, Y: 1}, grid.Down, g.span()))
	}
}
