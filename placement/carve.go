package placement

import "github.com/katalvlaran/tacmap/grid"

// CarveRooms stamps every placed room's square footprint as carved. Cells
// falling outside the grid (possible only for force-placed oversized rooms)
// are clipped by the grid itself. Complexity: O(Σ size²).
func (p *Placer) CarveRooms(g *grid.Grid) {
	for _, pr := range p.placed {
		min, max := pr.Bounds()
		for y := min.Y; y <= max.Y; y++ {
			for x := min.X; x <= max.X; x++ {
				g.Carve(grid.Point{X: x, Y: y})
			}
		}
	}
}

// CarveConnections carves the connector path of every side-placed room.
// Through-placed rooms need no connector and leave the grid untouched.
func (p *Placer) CarveConnections(g *grid.Grid) {
	for _, pr := range p.placed {
		for _, cell := range ConnectorPath(pr) {
			g.Carve(cell)
		}
	}
}

// ConnectorPath returns the cells joining a side room to the corridor
// network: a Manhattan walk from the anchor toward the center, horizontal
// leg first, stopping at the footprint edge. The anchor itself (already a
// carved corridor cell) and the footprint are excluded, so an adjacent room
// yields an empty path. Through rooms always yield an empty path.
func ConnectorPath(pr PlacedRoom) []grid.Point {
	if pr.Connection != Side {
		return nil
	}
	min, max := pr.Bounds()
	inside := func(q grid.Point) bool {
		return q.X >= min.X && q.X <= max.X && q.Y >= min.Y && q.Y <= max.Y
	}

	var path []grid.Point
	q := pr.Anchor
	for steps := q.Manhattan(pr.Center); steps > 0 && !inside(q); steps-- {
		switch {
		case q.X < pr.Center.X:
			q.X++
		case q.X > pr.Center.X:
			q.X--
		case q.Y < pr.Center.Y:
			q.Y++
		default:
			q.Y--
		}
		if inside(q) {
			break
		}
		path = append(path, q)
	}

	return path
}
