// Package grid describes the square cell grids that every curve in spacefill
// is drawn on, and the neighbor relations the locality analysis walks.
//
// What:
//
//   - Order validation: a grid of order n has side 2^n and 4^n cells.
//   - Coord in two conventions: zero-based (0 ≤ x,y ≤ 2^n-1) and centered
//     (odd integers symmetric about the origin, spacing 2).
//   - Grid enumerates its cells in row-major order and answers InBounds.
//   - Neighbors with Conn4 (orthogonal) or Conn8 (Chebyshev distance 1).
//
// Why:
//
//   - Hilbert and Moore recursion classifies cells by sign, which needs the
//     centered convention; Morton and enumeration use the zero-based one.
//     Keeping both conversions here prevents the two from being conflated.
//
// Complexity:
//
//   - ToCentered / FromCentered / InBounds: O(1).
//   - Neighbors:                            O(1), at most 8 results.
//   - Cells:                                O(4^n) time and memory.
//
// Errors:
//
//   - ErrInvalidOrder: order < 1 or order > MaxOrder.
//   - ErrCoordinateOutOfRange: coordinate outside the grid (or even in the centered convention).
//   - ErrIndexOutOfRange: curve index ≥ 4^n.
package grid
