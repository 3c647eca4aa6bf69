package mapgen_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tacmap/corridor"
	"github.com/katalvlaran/tacmap/grid"
	"github.com/katalvlaran/tacmap/mapgen"
	"github.com/katalvlaran/tacmap/placement"
)

// BenchmarkGenerateMap measures a full pass: 10 rooms on a 100×100 grid.
// Complexity: O(W×H + corridor cells × rooms).
func BenchmarkGenerateMap(b *testing.B) {
	rooms := make([]placement.Room, 10)
	for i := range rooms {
		rooms[i] = placement.Room{Size: 5 + 2*(i%3), Name: fmt.Sprintf("R%d", i)}
	}
	g, err := mapgen.New(100, 100, corridor.PatternRandom, mapgen.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	start := grid.Point{X: 50, Y: 50}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.GenerateMap(rooms, start)
	}
}

// BenchmarkCells measures the metadata export on the same map.
func BenchmarkCells(b *testing.B) {
	g, err := mapgen.New(100, 100, corridor.PatternStar, mapgen.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	g.GenerateMap([]placement.Room{
		{Size: 5, Name: "A"}, {Size: 7, Name: "B"}, {Size: 9, Name: "C"},
	}, grid.Point{X: 50, Y: 50})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Cells()
	}
}
