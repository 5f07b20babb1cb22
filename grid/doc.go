// Package grid provides an N-dimensional binned lookup table: per-axis
// bin-edge geometry plus a dense, stride-addressed value store with O(1)
// coordinate-to-bin resolution.
//
// What:
//
//   - Axis describes one dimension: equidistant (min, max, nBins) or
//     variable (explicit, strictly increasing edges), combined with a
//     Boundary policy (Bound, Open or Closed).
//   - Grid composes an ordered tuple of axes over a flat []T store and
//     translates between continuous points, per-axis local bin indices
//     and a single global (flat) index via a mixed-radix stride table.
//   - Interpolate blends the stored values of the bracketing grid points
//     (the closest-points stencil) with multilinear weights.
//   - NeighborhoodIndices answers boundary-aware Chebyshev-ball queries
//     around a bin; Closed axes wrap, Open axes truncate, Bound axes
//     reach into the under-/overflow slots.
//
// Why:
//
//   - Material maps: per-region material properties keyed by position.
//   - Field maps: sampled field values with d-linear interpolation.
//   - Geometry search: local neighbor lookup without spatial trees.
//
// Layout:
//
//	Every axis allocates nBins+2 local slots. Slot 0 and slot nBins+1 are
//	the under- and overflow bins; real bins are 1..nBins. The global index
//	of a local tuple (l1,...,ln) is Σ li·stride_i with stride_n = 1 and
//	stride_i = stride_{i+1}·(nBins_{i+1}+2). Axis 1 is the most
//	significant ("outer") dimension.
//
// Complexity:
//
//   - Bin / GlobalIndex / At: O(d) time (O(d·log nBins) for variable axes).
//   - LocalIndices: O(d) time.
//   - NeighborhoodIndices: O((2r+1)^d) time for radius r.
//   - Interpolate / ClosestPoints: O(2^d) time.
//
// Errors:
//
//   - ErrBinCount: equidistant axis constructed with fewer than one bin.
//   - ErrDomainOrder: equidistant axis constructed with min >= max.
//   - ErrTooFewEdges: variable axis constructed with fewer than two edges.
//   - ErrEdgesNotIncreasing: variable axis edges not strictly increasing.
//   - ErrNoAxes: grid constructed without axes.
//   - ErrNilAxis: grid constructed with a nil axis.
//
// Malformed local-index tuples and dimension-mismatched points indicate
// caller misuse and panic; see the individual method contracts.
//
// A Grid is an ordinary owned value: readers may run concurrently on an
// immutable grid, concurrent mutation must be serialized by the caller.
package grid
