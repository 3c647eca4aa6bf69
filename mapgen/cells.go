package mapgen

import "github.com/katalvlaran/tacmap/grid"

// Cell is the per-cell metadata record exported to the board layer.
type Cell struct {
	// Position is the cell coordinate in the trimmed frame.
	Position grid.Point
	// Locations lists the names of every placed room owning this cell —
	// empty for corridor and solid cells, more than one entry only for the
	// overlapping footprints a force placement can produce.
	Locations []string
	// Elements is reserved for the board layer; generation leaves it empty.
	Elements []string
	// Content is the cell payload.
	Content Content
}

// Content describes what occupies a cell.
type Content struct {
	Position grid.Point
	// Location is the first owning room name in placement order, "" when
	// the cell belongs to no room.
	Location string
	// Blocker is true for solid (unwalkable) cells.
	Blocker bool
}

// Cells builds the metadata view over the last generated grid: one Cell per
// coordinate, same dimensions as the grid GenerateMap returned. The view is
// derived and read-only; it returns nil before the first pass.
// Complexity: O(W×H×R), R = number of placed rooms.
func (g *Generator) Cells() [][]Cell {
	if g.grid == nil {
		return nil
	}

	rows := make([][]Cell, g.grid.Height)
	for y := 0; y < g.grid.Height; y++ {
		row := make([]Cell, g.grid.Width)
		for x := 0; x < g.grid.Width; x++ {
			p := grid.Point{X: x, Y: y}
			locations := g.owners(p)
			location := ""
			if len(locations) > 0 {
				location = locations[0]
			}
			row[x] = Cell{
				Position:  p,
				Locations: locations,
				Elements:  []string{},
				Content: Content{
					Position: p,
					Location: location,
					Blocker:  !g.grid.IsCarved(p),
				},
			}
		}
		rows[y] = row
	}

	return rows
}

// owners lists the placed rooms whose footprint contains p, in placement
// order.
func (g *Generator) owners(p grid.Point) []string {
	names := []string{}
	for _, pr := range g.placements {
		if pr.Contains(p) {
			names = append(names, pr.Room.Name)
		}
	}

	return names
}
