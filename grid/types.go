package grid

// Point identifies a cell by column (X) and row (Y).
type Point struct {
	X, Y int
}

// Step returns the point one cell away in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()

	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Direction is one of the four cardinal directions a corridor can run in.
type Direction int

const (
	// Up decreases Y.
	Up Direction = iota
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Directions lists all four directions in their canonical scan order.
// Iterating this slice keeps candidate enumeration deterministic.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the unit offset of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Perpendicular returns the two directions orthogonal to d, in canonical order.
func (d Direction) Perpendicular() [2]Direction {
	if d == Up || d == Down {
		return [2]Direction{Left, Right}
	}

	return [2]Direction{Up, Down}
}

// String implements fmt.Stringer for log-friendly direction names.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
