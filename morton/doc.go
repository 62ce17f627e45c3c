// Package morton implements the Z-order (Morton) curve as a pure
// bit-interleaving bijection between a zero-based grid cell and its index.
//
// The lower 16 bits of x land in the even bit positions of the index and the
// lower 16 bits of y in the odd positions, using the magic-mask spreading
// technique: four shift-or-mask rounds with shifts 8, 4, 2, 1 and masks
// 0x00FF00FF, 0x0F0F0F0F, 0x33333333, 0x55555555. Decoding runs the same
// rounds in reverse.
//
//	y=1  2 3
//	y=0  0 1
//	    x=0 x=1
//
// Complexity:
//
//   - Encode / Decode:    O(1).
//   - CoordinateSequence: O(4^order).
//
// Errors:
//
//   - grid.ErrInvalidOrder: order outside [1, 16].
//   - grid.ErrCoordinateOutOfRange / grid.ErrIndexOutOfRange for Codec lookups.
package morton
