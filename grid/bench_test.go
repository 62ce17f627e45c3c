package grid_test

import (
	"testing"

	"github.com/katalvlaran/spacefill/grid"
)

// BenchmarkChebyshevNeighbors measures a full neighbor scan of a 512×512 grid.
// Complexity: O(W×H)
func BenchmarkChebyshevNeighbors(b *testing.B) {
	g, err := grid.NewGrid(9, grid.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	cells := g.Cells()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range cells {
			_ = g.ChebyshevNeighbors(c)
		}
	}
}
