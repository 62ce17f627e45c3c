package moore

import (
	"fmt"

	"github.com/katalvlaran/spacefill/grid"
	"github.com/katalvlaran/spacefill/hilbert"
)

// Codec is the Moore curve of a fixed order. Immutable; safe for concurrent use.
type Codec struct {
	order int
	// hilbertOrder is the order of each quadrant's Hilbert piece: order-1.
	hilbertOrder int
}

// New returns the Moore codec of the given order.
// Returns grid.ErrInvalidOrder if order is outside [1, grid.MaxOrder].
func New(order int) (*Codec, error) {
	if err := grid.ValidateOrder(order); err != nil {
		return nil, fmt.Errorf("moore: %w", err)
	}
	return &Codec{order: order, hilbertOrder: order - 1}, nil
}

// Order returns the nominal codec order (grid side 2^order).
func (c *Codec) Order() int { return c.order }

// IsClosed reports that the last cell is adjacent to the first.
func (c *Codec) IsClosed() bool { return true }

// CoordinateToIndex returns the Moore index of centered coordinate p.
func (c *Codec) CoordinateToIndex(p grid.Coord) (uint64, error) {
	q, ok := hilbert.Quadrant(p)
	if !ok {
		return 0, fmt.Errorf("moore: %w: %v", hilbert.ErrUnclassifiableCoordinate, p)
	}
	if !grid.ValidCentered(p, c.order) {
		return 0, fmt.Errorf("moore: %v at order %d: %w", p, c.order, grid.ErrCoordinateOutOfRange)
	}
	s := 1 << uint(c.hilbertOrder)
	var local grid.Coord
	switch q {
	case hilbert.LowerLeft:
		local = rotateCW(grid.Coord{X: p.X + s, Y: p.Y + s})
	case hilbert.UpperLeft:
		local = rotateCW(grid.Coord{X: p.X + s, Y: p.Y - s})
	case hilbert.UpperRight:
		local = rotateCCW(grid.Coord{X: p.X - s, Y: p.Y - s})
	default:
		local = rotateCCW(grid.Coord{X: p.X - s, Y: p.Y + s})
	}
	offset := uint64(q) << uint(2*c.hilbertOrder)
	return offset + hilbert.Encode(local, c.hilbertOrder), nil
}

// IndexToCoordinate returns the centered coordinate visited at position i.
func (c *Codec) IndexToCoordinate(i uint64) (grid.Coord, error) {
	if i >= grid.CellCount(c.order) {
		return grid.Coord{}, fmt.Errorf("moore: index %d at order %d: %w", i, c.order, grid.ErrIndexOutOfRange)
	}
	shift := uint(2 * c.hilbertOrder)
	q := int(i >> shift)
	local := hilbert.Decode(i&(uint64(1)<<shift-1), c.hilbertOrder)
	s := 1 << uint(c.hilbertOrder)
	switch q {
	case hilbert.LowerLeft:
		p := rotateCCW(local)
		return grid.Coord{X: p.X - s, Y: p.Y - s}, nil
	case hilbert.UpperLeft:
		p := rotateCCW(local)
		return grid.Coord{X: p.X - s, Y: p.Y + s}, nil
	case hilbert.UpperRight:
		p := rotateCW(local)
		return grid.Coord{X: p.X + s, Y: p.Y + s}, nil
	default:
		p := rotateCW(local)
		return grid.Coord{X: p.X + s, Y: p.Y - s}, nil
	}
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
func (c *Codec) CoordinateSequence() []grid.Coord {
	n := grid.CellCount(c.order)
	out := make([]grid.Coord, n)
	for i := uint64(0); i < n; i++ {
		out[i], _ = c.IndexToCoordinate(i)
	}
	return out
}

// rotateCW turns p a quarter clockwise about the origin.
func rotateCW(p grid.Coord) grid.Coord {
	return grid.Coord{X: p.Y, Y: -p.X}
}

// rotateCCW turns p a quarter counter-clockwise about the origin.
func rotateCCW(p grid.Coord) grid.Coord {
	return grid.Coord{X: -p.Y, Y: p.X}
}
