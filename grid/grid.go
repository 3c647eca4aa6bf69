package grid

// Cell states held in Grid.Cells.
const (
	// Solid marks an unwalkable cell.
	Solid = 0
	// Carved marks a walkable cell.
	Carved = 1
)

// Grid is a width×height buffer of cell states, row-major: Cells[y][x].
// It is owned by the orchestrator of a generation pass and handed by
// reference to carve operations; see the package doc for the ownership rule.
type Grid struct {
	Width, Height int
	Cells         [][]int
}

// New allocates an all-solid width×height grid.
// Returns ErrInvalidDimensions when either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}

	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// InInterior reports whether p lies within the 1-cell reserved border,
// i.e. inside [1, Width-2] × [1, Height-2].
func (g *Grid) InInterior(p Point) bool {
	return p.X >= 1 && p.X <= g.Width-2 && p.Y >= 1 && p.Y <= g.Height-2
}

// Carve marks p walkable. Out-of-bounds points are ignored, so carve loops
// clipped by the grid edge need no pre-checks.
func (g *Grid) Carve(p Point) {
	if !g.InBounds(p) {
		return
	}
	g.Cells[p.Y][p.X] = Carved
}

// IsCarved reports whether p is walkable; out-of-bounds points are solid.
func (g *Grid) IsCarved(p Point) bool {
	return g.InBounds(p) && g.Cells[p.Y][p.X] == Carved
}
