package grid

// CarvedBounds returns the minimal bounding box [min, max] (inclusive)
// containing every carved cell. ok is false when nothing is carved.
// Complexity: O(W×H) time, O(1) space.
func (g *Grid) CarvedBounds() (min, max Point, ok bool) {
	min = Point{X: g.Width, Y: g.Height}
	max = Point{X: -1, Y: -1}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != Carved {
				continue
			}
			if x < min.X {
				min.X = x
			}
			if y < min.Y {
				min.Y = y
			}
			if x > max.X {
				max.X = x
			}
			if y > max.Y {
				max.Y = y
			}
		}
	}

	return min, max, max.X >= 0
}

// Trim slices the grid down to its carved bounding box expanded by one cell
// on each side, clipped at the grid edges. It returns the origin of the
// retained box so callers can translate recorded positions into the trimmed
// coordinate frame. When nothing is carved, Trim is a no-op and ok is false.
// Complexity: O(W×H) time, O(W'×H') memory for the replacement buffer.
func (g *Grid) Trim() (origin Point, ok bool) {
	min, max, ok := g.CarvedBounds()
	if !ok {
		return Point{}, false
	}

	// One-cell margin, clipped at the edges.
	min.X, min.Y = clipLow(min.X-1), clipLow(min.Y-1)
	max.X, max.Y = clipHigh(max.X+1, g.Width-1), clipHigh(max.Y+1, g.Height-1)

	width, height := max.X-min.X+1, max.Y-min.Y+1
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		copy(cells[y], g.Cells[min.Y+y][min.X:max.X+1])
	}
	g.Width, g.Height, g.Cells = width, height, cells

	return min, true
}

func clipLow(v int) int {
	if v < 0 {
		return 0
	}

	return v
}

func clipHigh(v, limit int) int {
	if v > limit {
		return limit
	}

	return v
}
