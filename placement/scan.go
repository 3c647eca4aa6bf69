package placement

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tacmap/grid"
)

// scan looks for the first valid center along the corridor network: a
// through pass over every corridor cell, then a side pass at increasing
// offsets. Corridors overlap after branching, so the through pass dedupes
// cells with a set. Scan order is fixed (corridor order, cell order,
// canonical directions), keeping results deterministic.
func (p *Placer) scan(room Room) (PlacedRoom, bool) {
	seen := mapset.New[grid.Point]()
	for _, c := range p.gen.Corridors() {
		for _, cell := range c.Cells {
			if seen.Has(cell) {
				continue
			}
			seen.Put(cell)
			if p.fits(room, cell) {
				return PlacedRoom{Room: room, Center: cell, Connection: Through, Anchor: cell}, true
			}
		}
	}

	for offset := room.Half() + 1; offset <= room.Half()+maxSideOffset; offset++ {
		for _, c := range p.gen.Corridors() {
			for _, anchor := range c.Cells {
				for _, dir := range grid.Directions {
					dx, dy := dir.Delta()
					center := grid.Point{X: anchor.X + dx*offset, Y: anchor.Y + dy*offset}
					if p.fits(room, center) {
						return PlacedRoom{Room: room, Center: center, Connection: Side, Anchor: anchor}, true
					}
				}
			}
		}
	}

	return PlacedRoom{}, false
}

// fits reports whether a footprint centered at center stays inside the
// reserved border and keeps the separation invariant against every placed
// room.
func (p *Placer) fits(room Room, center grid.Point) bool {
	return p.inBounds(room, center) && p.violation(room, center) == 0
}

// inBounds checks the footprint against [1, width-2] × [1, height-2].
func (p *Placer) inBounds(room Room, center grid.Point) bool {
	pr := PlacedRoom{Room: room, Center: center}
	min, max := pr.Bounds()

	return min.X >= 1 && min.Y >= 1 && max.X <= p.width-2 && max.Y <= p.height-2
}

// violation sums, over all placed rooms, how far center falls short of the
// required Manhattan separation floor(size₁/2)+floor(size₂/2)+1.
// Zero means the separation invariant holds.
func (p *Placer) violation(room Room, center grid.Point) int {
	total := 0
	for _, pr := range p.placed {
		required := room.Half() + pr.Room.Half() + 1
		if d := center.Manhattan(pr.Center); d < required {
			total += required - d
		}
	}

	return total
}

// forcePlace accepts the least-violating in-bounds center, scanning
// row-major with first-wins ties. On a grid too small to hold the footprint
// at all it falls back to the grid center — bounds give way only when no
// in-bounds center exists, separation always gives way first.
func (p *Placer) forcePlace(room Room) PlacedRoom {
	h := room.Half()
	xMax := p.width - 2 - (room.Size - 1 - h)
	yMax := p.height - 2 - (room.Size - 1 - h)

	best := grid.Point{X: p.width / 2, Y: p.height / 2}
	bestViolation := -1
	for y := h + 1; y <= yMax; y++ {
		for x := h + 1; x <= xMax; x++ {
			v := p.violation(room, grid.Point{X: x, Y: y})
			if bestViolation < 0 || v < bestViolation {
				best, bestViolation = grid.Point{X: x, Y: y}, v
			}
		}
	}

	pr := PlacedRoom{Room: room, Center: best, Connection: Side, Anchor: best}
	if p.corridorCells().Has(best) {
		pr.Connection = Through

		return pr
	}
	if anchor, ok := p.nearestCorridorCell(best); ok {
		pr.Anchor = anchor
	}

	return pr
}

// corridorCells collects every corridor cell into a set for membership tests.
func (p *Placer) corridorCells() mapset.Set[grid.Point] {
	cells := mapset.New[grid.Point]()
	for _, c := range p.gen.Corridors() {
		for _, pt := range c.Cells {
			cells.Put(pt)
		}
	}

	return cells
}

// nearestCorridorCell returns the corridor cell closest to from by Manhattan
// distance, first-wins on ties; ok is false with an empty network.
func (p *Placer) nearestCorridorCell(from grid.Point) (grid.Point, bool) {
	var best grid.Point
	bestD := -1
	for _, c := range p.gen.Corridors() {
		for _, pt := range c.Cells {
			if d := from.Manhattan(pt); bestD < 0 || d < bestD {
				best, bestD = pt, d
			}
		}
	}

	return best, bestD >= 0
}
