// Package moore maps cells of a 2^n × 2^n grid to their position along the
// Moore curve, the closed-loop variant of the Hilbert curve.
//
// A Moore curve of order n is four Hilbert curves of order n-1, one per
// quadrant, visited lower-left, upper-left, upper-right, lower-right. The two
// left pieces are the Hilbert sub-curve turned a quarter counter-clockwise
// and the two right pieces a quarter clockwise, so the curve climbs the left
// half, crosses the top and descends the right half, finishing next to where
// it started.
//
// Coordinates follow the same centered, odd-integer convention as package
// hilbert, with *Zero wrappers for zero-based cells. The grammar form of the
// curve already draws the first recursion level in its axiom, which is why an
// order-n Moore curve is built from order-(n-1) Hilbert pieces.
//
// Complexity: O(n) per conversion.
package moore
