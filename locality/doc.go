// Package locality measures how well a space-filling curve keeps 2-D
// neighbors close together once the grid is flattened to 1-D.
//
// What:
//
//   - Codec: one capability (zero-based cell ↔ index) over the Hilbert, Moore
//     and Morton codecs, chosen once by Kind.
//   - Stretch: for a cell and one of its Chebyshev neighbors, the absolute
//     difference of their curve indices.
//   - AverageStretch: mean over cells of the mean stretch to each neighbor.
//   - MedianStretch: the same with the median at both levels (even count →
//     mean of the two middle values).
//   - Sweep: every (curve, order) pair computed in parallel.
//
// Why:
//
//   - The mean is dominated by the few huge jumps at quadrant seams, the
//     median by the typical neighbor; reporting both shows where a curve
//     loses locality.
//
// Options:
//
//   - WithCyclicDistance: for closed curves (Moore) measure min(d, 4^n-d).
//     Off by default, so every curve shares one neighbor relation.
//   - WithWorkers: bound Sweep parallelism.
//
// Complexity:
//
//   - AverageStretch / MedianStretch: O(n·4^n) time, O(4^n) memory.
//   - Sweep: the sum of its pairs divided across workers.
//
// Errors:
//
//   - ErrEmptyAggregation: a mean or median over nothing.
//   - ErrUnknownKind: unrecognized curve name or Kind.
//   - grid.ErrInvalidOrder from codec construction.
package locality
