package hilbert_test

import (
	"fmt"

	"github.com/katalvlaran/spacefill/grid"
	"github.com/katalvlaran/spacefill/hilbert"
)

// ExampleCodec_IndexToCoordinate decodes two cells of the order-3 curve and
// encodes them back.
func ExampleCodec_IndexToCoordinate() {
	c, _ := hilbert.New(3)
	for _, i := range []uint64{4, 12} {
		p, _ := c.IndexToCoordinate(i)
		back, _ := c.CoordinateToIndex(p)
		fmt.Println(i, p, back, grid.FromCentered(p, 3))
	}
	// Output:
	// 4 (-3,-7) 4 (2,0)
	// 12 (-5,-1) 12 (1,3)
}
