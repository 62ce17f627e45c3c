package grid

import "fmt"

// MaxOrder is the largest supported order. Morton packs 16 bits per axis into
// a 32-bit index, and the same ceiling bounds every enumeration in the module.
const MaxOrder = 16

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional (Chebyshev) connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord is a grid cell. Whether it is zero-based or centered depends on the
// operation receiving it; every exported function documents which one.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ValidateOrder returns ErrInvalidOrder (wrapped with the offending value)
// when order is outside [1, MaxOrder].
func ValidateOrder(order int) error {
	if order < 1 || order > MaxOrder {
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	return nil
}

// Side returns 2^order.
func Side(order int) int {
	return 1 << uint(order)
}

// CellCount returns 4^order, the number of cells and curve indices.
func CellCount(order int) uint64 {
	return uint64(1) << uint(2*order)
}

// ToCentered maps a zero-based coordinate to the centered, odd-integer
// convention: centered = 2*zero - (2^order - 1).
func ToCentered(c Coord, order int) Coord {
	m := Side(order) - 1
	return Coord{X: 2*c.X - m, Y: 2*c.Y - m}
}

// FromCentered is the inverse of ToCentered.
func FromCentered(c Coord, order int) Coord {
	m := Side(order) - 1
	return Coord{X: (c.X + m) / 2, Y: (c.Y + m) / 2}
}

// ValidCentered reports whether c is a cell of the centered grid of the given
// order: both components odd and within ±(2^order - 1).
func ValidCentered(c Coord, order int) bool {
	m := Side(order) - 1
	return isOdd(c.X) && isOdd(c.Y) &&
		c.X >= -m && c.X <= m && c.Y >= -m && c.Y <= m
}

func isOdd(v int) bool {
	return v&1 == 1
}
