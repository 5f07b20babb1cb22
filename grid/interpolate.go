// SPDX-License-Identifier: MIT

package grid

// Float constrains the cell types supported by Interpolate.
type Float interface {
	~float32 | ~float64
}

// Interpolate performs d-linear interpolation of the grid values at
// point: the closest-points stencil is blended with the per-corner
// multilinear weights of ClosestPoints. Stored values are semantically
// located at each real bin's lower-left edge; the last bin's upper edge
// is the overflow slot's grid point and is reachable as a bracket only
// while point lies inside the final bin.
//
// Interpolate is a free function rather than a method because the numeric
// constraint cannot be introduced on a Grid[T] method.
//
// Behavior outside the grid domain is undefined: no extrapolation is
// promised, callers bound their input with IsInside.
// Panics if len(point) != Dim(). Complexity: O(d·2^d).
func Interpolate[T Float](g *Grid[T], point []float64) T {
	indices, weights := g.ClosestPoints(point)
	acc := 0.0
	for k, idx := range indices {
		acc += weights[k] * float64(g.data[idx])
	}

	return T(acc)
}
