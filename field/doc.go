// Package field provides interpolated lookup of scalar and vector samples
// stored on a grid.Grid — the guard layer between raw grid storage and
// physics-facing callers.
//
// What:
//
//   - ScalarMap wraps a *grid.Grid[float64] and serves d-linearly
//     interpolated values with an explicit out-of-domain error instead of
//     the grid's undefined extrapolation behavior.
//   - VectorMap does the same for fixed-width []float64 samples (e.g.
//     three-component field vectors), blending the stencil corners with
//     gonum's floats kernels.
//   - WithTransform installs a coordinate transform applied before every
//     grid access, so a map sampled in (r, z) can be queried in (x, y, z).
//
// Why:
//
//   - Field maps: magnetic/electric field samples on a 2D or 3D grid.
//   - Material maps: interpolated material properties per region.
//
// Errors:
//
//   - ErrNilGrid: map constructed without a backing grid.
//   - ErrSampleDim: vector map sample width mismatch.
//   - ErrOutsideDomain: lookup outside the declared grid domain.
//
// Complexity: every lookup is O(d·2^d) on top of the O(d) bin resolution
// of the backing grid.
package field
