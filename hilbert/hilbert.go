package hilbert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spacefill/grid"
)

// ErrUnclassifiableCoordinate indicates a centered coordinate with a zero
// component: it lies on an axis and belongs to no quadrant.
var ErrUnclassifiableCoordinate = errors.New("hilbert: coordinate has a zero component")

// Quadrant numbers in visiting order at every recursion level.
const (
	LowerLeft  = 0
	UpperLeft  = 1
	UpperRight = 2
	LowerRight = 3
)

// base is the order-1 curve: index → centered coordinate.
var base = [4]grid.Coord{
	{X: -1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
}

// Codec is the Hilbert curve of a fixed order. Immutable; safe for concurrent use.
type Codec struct {
	order int
}

// New returns the Hilbert codec of the given order.
// Returns grid.ErrInvalidOrder if order is outside [1, grid.MaxOrder].
func New(order int) (*Codec, error) {
	if err := grid.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("hilbert: %w", err)
	}
	return &Codec{order: order}, nil
}

// Order returns the codec order.
func (c *Codec) Order() int { return c.order }

// CoordinateToIndex returns the Hilbert index of centered coordinate p.
func (c *Codec) CoordinateToIndex(p grid.Coord) (uint64, error) {
	if p.X == 0 || p.Y == 0 {
		return 0, fmt.Errorf("%w: %v", ErrUnclassifiableCoordinate, p)
	}
	if !grid.ValidCentered(p, c.order) {
		return 0, fmt.Errorf("hilbert: %v at order %d: %w", p, c.order, grid.ErrCoordinateOutOfRange)
	}
	return Encode(p, c.order), nil
}

// IndexToCoordinate returns the centered coordinate visited at position i.
func (c *Codec) IndexToCoordinate(i uint64) (grid.Coord, error) {
	if i >= grid.CellCount(c.order) {
		return grid.Coord{}, fmt.Errorf("hilbert: index %d at order %d: %w", i, c.order, grid.ErrIndexOutOfRange)
	}
	return Decode(i, c.order), nil
}

// CoordinateToIndexZero is CoordinateToIndex for a zero-based cell.
func (c *Codec) CoordinateToIndexZero(p grid.Coord) (uint64, error) {
	return c.CoordinateToIndex(grid.ToCentered(p, c.order))
}

// IndexToCoordinateZero is IndexToCoordinate returning a zero-based cell.
func (c *Codec) IndexToCoordinateZero(i uint64) (grid.Coord, error) {
	p, err := c.IndexToCoordinate(i)
	if err != nil {
		return grid.Coord{}, err
	}
	return grid.FromCentered(p, c.order), nil
}

// CoordinateSequence lists every centered cell in visiting order.
// Complexity: O(n·4^n).
func (c *Codec) CoordinateSequence() []grid.Coord {
	n := grid.CellCount(c.order)
	out := make([]grid.Coord, n)
	for i := uint64(0); i < n; i++ {
		out[i] = Decode(i, c.order)
	}
	return out
}

// Quadrant classifies a centered coordinate by the signs of its components.
// ok is false when a component is zero.
func Quadrant(p grid.Coord) (q int, ok bool) {
	switch {
	case p.X < 0 && p.Y < 0:
		return LowerLeft, true
	case p.X < 0 && p.Y > 0:
		return UpperLeft, true
	case p.X > 0 && p.Y > 0:
		return UpperRight, true
	case p.X > 0 && p.Y < 0:
		return LowerRight, true
	}
	return 0, false
}

// Encode is the unchecked recursion behind CoordinateToIndex. p must satisfy
// grid.ValidCentered(p, order); order may be 0, in which case the single cell
// (0,0) has index 0.
func Encode(p grid.Coord, order int) uint64 {
	if order == 0 {
		return 0
	}
	q, _ := Quadrant(p)
	if order == 1 {
		return uint64(q)
	}
	sub := toSubFrame(p, q, order)
	return uint64(q)<<uint(2*(order-1)) + Encode(sub, order-1)
}

// Decode is the unchecked recursion behind IndexToCoordinate. i must be below
// 4^order; order 0 yields (0,0).
func Decode(i uint64, order int) grid.Coord {
	if order == 0 {
		return grid.Coord{}
	}
	if order == 1 {
		return base[i&3]
	}
	shift := uint(2 * (order - 1))
	q := int((i >> shift) & 3)
	prev := Decode(i&(uint64(1)<<shift-1), order-1)
	return fromSubFrame(prev, q, order)
}

// toSubFrame moves p from the order-n frame into the centered frame of its
// quadrant's order-(n-1) sub-curve.
func toSubFrame(p grid.Coord, q, order int) grid.Coord {
	s := 1 << uint(order-1)
	switch q {
	case LowerLeft:
		return transpose(grid.Coord{X: p.X + s, Y: p.Y + s})
	case UpperLeft:
		return grid.Coord{X: p.X + s, Y: p.Y - s}
	case UpperRight:
		return grid.Coord{X: p.X - s, Y: p.Y - s}
	default:
		return antiTranspose(grid.Coord{X: p.X - s, Y: p.Y + s})
	}
}

// fromSubFrame is the inverse of toSubFrame. Both reflections are involutions.
func fromSubFrame(p grid.Coord, q, order int) grid.Coord {
	s := 1 << uint(order-1)
	switch q {
	case LowerLeft:
		p = transpose(p)
		return grid.Coord{X: p.X - s, Y: p.Y - s}
	case UpperLeft:
		return grid.Coord{X: p.X - s, Y: p.Y + s}
	case UpperRight:
		return grid.Coord{X: p.X + s, Y: p.Y + s}
	default:
		p = antiTranspose(p)
		return grid.Coord{X: p.X + s, Y: p.Y - s}
	}
}

// transpose reflects across y = x.
func transpose(p grid.Coord) grid.Coord {
	return grid.Coord{X: p.Y, Y: p.X}
}

// antiTranspose reflects across y = -x.
func antiTranspose(p grid.Coord) grid.Coord {
	return grid.Coord{X: -p.Y, Y: -p.X}
}
