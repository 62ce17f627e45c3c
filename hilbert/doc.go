// Package hilbert maps cells of a 2^n × 2^n grid to their position along the
// Hilbert curve and back, by recursive quadrant decomposition.
//
// 🚀 Conventions
//
//	Codec methods take centered, odd-integer coordinates (see grid.ToCentered):
//	the order-1 curve visits
//
//	  1 (-1, 1) ── 2 ( 1, 1)
//	     │             │
//	  0 (-1,-1)    3 ( 1,-1)
//
//	and every higher order is four copies of the previous one, the lower-left
//	copy transposed and the lower-right copy anti-transposed so the pieces join
//	end to end. The *Zero variants accept zero-based cells instead.
//
// ⚙️ Algorithm
//
//	CoordinateToIndex classifies the cell by the signs of (x, y), moves it into
//	the quadrant's own centered frame (translate by 2^(n-1), then transpose or
//	anti-transpose for quadrants 0 and 3), recurses at n-1 and adds
//	quadrant·4^(n-1). IndexToCoordinate reads the quadrant from the top two
//	bits, recurses on the rest and applies the inverse transform.
//	Recursion is purely functional: every level returns a fresh value.
//
// Complexity:
//
//   - CoordinateToIndex / IndexToCoordinate: O(n) time, O(n) stack.
//
// Errors:
//
//   - grid.ErrInvalidOrder: order outside [1, grid.MaxOrder].
//   - ErrUnclassifiableCoordinate: a component is zero, so no quadrant matches.
//   - grid.ErrCoordinateOutOfRange: even component or beyond ±(2^n-1).
//   - grid.ErrIndexOutOfRange: index ≥ 4^n.
package hilbert
