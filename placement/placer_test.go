package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tacmap/corridor"
	"github.com/katalvlaran/tacmap/grid"
	"github.com/katalvlaran/tacmap/placement"
	"github.com/katalvlaran/tacmap/prng"
)

// latticePlacer builds a placer over a grid-pattern network on a 50×50 grid;
// the lattice is deterministic, so scan results can be asserted exactly.
func latticePlacer(t *testing.T) *placement.Placer {
	t.Helper()
	rng := prng.New(1)
	gen, err := corridor.NewGenerator(50, 50, corridor.WithRand(rng))
	require.NoError(t, err)
	gen.Generate(3, corridor.PatternGrid, grid.Point{})
	p, err := placement.New(gen, 50, 50, rng)
	require.NoError(t, err)

	return p
}

// TestNew_Errors validates constructor arguments.
func TestNew_Errors(t *testing.T) {
	rng := prng.New(1)
	gen, err := corridor.NewGenerator(10, 10, corridor.WithRand(rng))
	require.NoError(t, err)

	_, err = placement.New(nil, 10, 10, rng)
	assert.ErrorIs(t, err, placement.ErrNilGenerator)
	_, err = placement.New(gen, 10, 10, nil)
	assert.ErrorIs(t, err, placement.ErrNilRand)
	_, err = placement.New(gen, 0, 10, rng)
	assert.ErrorIs(t, err, placement.ErrInvalidDimensions)
}

// TestPlace_ThroughOnLattice pins the exact scan outcome on the lattice:
// all three rooms land centered on the y=7 corridor, first-fit left to
// right, respecting the separation invariant.
func TestPlace_ThroughOnLattice(t *testing.T) {
	p := latticePlacer(t)
	placed := p.Place([]placement.Room{
		{Size: 5, Name: "Room1"},
		{Size: 7, Name: "Room2"},
		{Size: 3, Name: "Room3"},
	})

	require.Len(t, placed, 3)
	wantCenters := []grid.Point{{X: 3, Y: 7}, {X: 9, Y: 7}, {X: 14, Y: 7}}
	for i, pr := range placed {
		assert.Equal(t, wantCenters[i], pr.Center, "room %d", i)
		assert.Equal(t, placement.Through, pr.Connection, "room %d", i)
		assert.Equal(t, pr.Center, pr.Anchor, "room %d", i)
	}
}

// TestPlace_Order confirms the documented policy: placement follows caller
// order, so swapping the input swaps who gets the first slot.
func TestPlace_Order(t *testing.T) {
	a := latticePlacer(t).Place([]placement.Room{{Size: 5, Name: "A"}, {Size: 3, Name: "B"}})
	b := latticePlacer(t).Place([]placement.Room{{Size: 3, Name: "B"}, {Size: 5, Name: "A"}})

	assert.Equal(t, grid.Point{X: 3, Y: 7}, a[0].Center)
	assert.Equal(t, grid.Point{X: 2, Y: 7}, b[0].Center) // size 3 fits one cell further left
	assert.NotEqual(t, a[0].Center, b[1].Center)
}

// TestPlace_SidePlacement: a single corridor hugging the border admits no
// through center, so the solver goes to the side pass.
func TestPlace_SidePlacement(t *testing.T) {
	rng := prng.New(1)
	gen, err := corridor.NewGenerator(20, 20, corridor.WithRand(rng))
	require.NoError(t, err)

	cells := make([]grid.Point, 0, 18)
	for x := 1; x <= 18; x++ {
		cells = append(cells, grid.Point{X: x, Y: 2})
	}
	gen.Reset(&corridor.Corridor{
		Start: cells[0], End: cells[len(cells)-1], Cells: cells, Direction: grid.Right,
	})

	p, err := placement.New(gen, 20, 20, rng)
	require.NoError(t, err)
	placed := p.Place([]placement.Room{{Size: 5, Name: "Bay"}})

	require.Len(t, placed, 1)
	assert.Equal(t, placement.Side, placed[0].Connection)
	assert.Equal(t, grid.Point{X: 3, Y: 5}, placed[0].Center)
	assert.Equal(t, grid.Point{X: 3, Y: 2}, placed[0].Anchor)
}

// TestPlace_SeparationInvariant checks the pairwise Manhattan separation on
// a roomy grid where no force placement can occur.
func TestPlace_SeparationInvariant(t *testing.T) {
	p := latticePlacer(t)
	placed := p.Place([]placement.Room{
		{Size: 5, Name: "R1"}, {Size: 7, Name: "R2"}, {Size: 3, Name: "R3"},
		{Size: 5, Name: "R4"}, {Size: 9, Name: "R5"},
	})

	require.Len(t, placed, 5)
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			required := placed[i].Room.Half() + placed[j].Room.Half() + 1
			d := placed[i].Center.Manhattan(placed[j].Center)
			assert.GreaterOrEqual(t, d, required, "rooms %d and %d", i, j)
		}
	}
}

// TestPlace_Regression_DegenerateCorridor is the hardening case: ten rooms
// of size 7 on a 50×50 grid whose network starts as one single-cell
// corridor. Every room must be placed and every footprint must stay inside
// the reserved border, whatever expansion it takes.
func TestPlace_Regression_DegenerateCorridor(t *testing.T) {
	rng := prng.New(12345)
	gen, err := corridor.NewGenerator(50, 50, corridor.WithRand(rng))
	require.NoError(t, err)
	seed := grid.Point{X: 25, Y: 25}
	gen.Reset(&corridor.Corridor{
		Start: seed, End: seed, Cells: []grid.Point{seed}, Direction: grid.Right,
	})

	p, err := placement.New(gen, 50, 50, rng)
	require.NoError(t, err)

	rooms := make([]placement.Room, 10)
	for i := range rooms {
		rooms[i] = placement.Room{Size: 7, Name: "R"}
	}
	placed := p.Place(rooms)

	require.Len(t, placed, 10, "placement totality must hold unconditionally")
	for i, pr := range placed {
		min, max := pr.Bounds()
		assert.GreaterOrEqual(t, min.X, 1, "room %d", i)
		assert.GreaterOrEqual(t, min.Y, 1, "room %d", i)
		assert.LessOrEqual(t, max.X, 48, "room %d", i)
		assert.LessOrEqual(t, max.Y, 48, "room %d", i)
	}
}

// TestPlace_EmptyInput yields an empty result, not nil-panics downstream.
func TestPlace_EmptyInput(t *testing.T) {
	p := latticePlacer(t)
	assert.Empty(t, p.Place(nil))
	assert.Empty(t, p.Placed())
}
