package moore_test

import (
	"fmt"

	"github.com/katalvlaran/spacefill/moore"
)

// ExampleCodec_IndexToCoordinateZero walks the first and last cells of the
// order-3 loop: they sit side by side at the bottom center.
func ExampleCodec_IndexToCoordinateZero() {
	c, _ := moore.New(3)
	first, _ := c.IndexToCoordinateZero(0)
	last, _ := c.IndexToCoordinateZero(63)
	fmt.Println(first, last)
	// Output:
	// (3,0) (4,0)
}
