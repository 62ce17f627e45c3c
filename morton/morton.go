package morton

import (
	"fmt"

	"github.com/katalvlaran/spacefill/grid"
)

// Spreading masks and shifts, indexed by round.
var (
	masks  = [4]uint32{0x55555555, 0x33333333, 0x0F0F0F0F, 0x00FF00FF}
	shifts = [4]uint32{1, 2, 4, 8}
)

// spread moves bit i of the low 16 bits of v to bit 2i.
func spread(v uint32) uint32 {
	v &= 0x0000FFFF
	v = (v | (v << shifts[3])) & masks[3]
	v = (v | (v << shifts[2])) & masks[2]
	v = (v | (v << shifts[1])) & masks[1]
	v = (v | (v << shifts[0])) & masks[0]
	return v
}

// compact is the inverse of spread: it gathers the even bits of v into the low 16 bits.
func compact(v uint32) uint32 {
	v &= masks[0]
	v = (v | (v >> shifts[0])) & masks[1]
	v = (v | (v >> shifts[1])) & masks[2]
	v = (v | (v >> shifts[2])) & masks[3]
	v = (v | (v >> shifts[3])) & 0x0000FFFF
	return v
}

// Encode interleaves the low 16 bits of x (even positions) and y (odd positions).
func Encode(x, y uint32) uint32 {
	return spread(x) | (spread(y) << 1)
}

// Decode splits a Morton index back into (x, y).
func Decode(z uint32) (x, y uint32) {
	return compact(z), compact(z >> 1)
}

// Codec is the Morton curve of a fixed order over zero-based coordinates.
// It is immutable and safe for concurrent use.
type Codec struct {
	order int
	side  int
}

// New returns the Morton codec of the given order.
// Returns grid.ErrInvalidOrder if order is outside [1, grid.MaxOrder].
func New(order int) (*Codec, error) {
	if err := grid.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("morton: %w", err)
	}
	return &Codec{order: order, side: grid.Side(order)}, nil
}

// Order returns the codec order.
func (c *Codec) Order() int { return c.order }

// CoordinateToIndex returns the Z-order index of zero-based cell p.
func (c *Codec) CoordinateToIndex(p grid.Coord) (uint64, error) {
	if p.X < 0 || p.X >= c.side || p.Y < 0 || p.Y >= c.side {
		return 0, fmt.Errorf("morton: %v at order %d: %w", p, c.order, grid.ErrCoordinateOutOfRange)
	}
	return uint64(Encode(uint32(p.X), uint32(p.Y))), nil
}

// IndexToCoordinate returns the zero-based cell visited at position i.
func (c *Codec) IndexToCoordinate(i uint64) (grid.Coord, error) {
	if i >= grid.CellCount(c.order) {
		return grid.Coord{}, fmt.Errorf("morton: index %d at order %d: %w", i, c.order, grid.ErrIndexOutOfRange)
	}
	x, y := Decode(uint32(i))
	return grid.Coord{X: int(x), Y: int(y)}, nil
}

// CoordinateSequence lists every cell of the grid in visiting order, ready
// for a renderer that connects consecutive cell centers.
// Complexity: O(4^order) time and memory.
func (c *Codec) CoordinateSequence() []grid.Coord {
	n := grid.CellCount(c.order)
	out := make([]grid.Coord, n)
	for i := uint64(0); i < n; i++ {
		x, y := Decode(uint32(i))
		out[i] = grid.Coord{X: int(x), Y: int(y)}
	}
	return out
}
