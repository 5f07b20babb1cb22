// SPDX-License-Identifier: MIT

// Package grid: boundary-aware spatial queries. NeighborhoodIndices is the
// fixed-radius Chebyshev ball around a bin; ClosestPoints is the minimal
// bracketing stencil used for multilinear interpolation.
package grid

import "sort"

// NeighborhoodIndices returns the sorted global indices of all bins whose
// local index lies within Chebyshev distance radius of local, each axis
// resolved independently per its boundary policy (Bound reaches into the
// ghost slots, Open truncates, Closed wraps). The result is empty when any
// axis contributes no candidates, e.g. a Closed axis centered on a ghost
// slot. Panics on a malformed tuple or a negative radius.
// Complexity: O(d·(2·radius+1)^d).
func (g *Grid[T]) NeighborhoodIndices(local []int, radius int) []int {
	g.checkLocal("NeighborhoodIndices", local)
	ranges := make([][]int, len(g.axes))
	for i, a := range g.axes {
		ranges[i] = a.NeighborRange(local[i], radius)
		if len(ranges[i]) == 0 {
			return nil
		}
	}

	return g.flattenRanges(ranges)
}

// NeighborhoodIndicesAt is the point form of NeighborhoodIndices: the
// center bin is resolved per axis via Bin, out-of-range coordinates
// therefore center on the under-/overflow slots. Panics if
// len(point) != Dim() or radius is negative. Complexity: as above.
func (g *Grid[T]) NeighborhoodIndicesAt(point []float64, radius int) []int {
	g.checkPointDim("NeighborhoodIndicesAt", point)
	local := make([]int, len(g.axes))
	for i, a := range g.axes {
		local[i] = a.Bin(point[i])
	}

	return g.NeighborhoodIndices(local, radius)
}

// ClosestPoints returns the interpolation stencil for point: the global
// indices of the up-to-2^d grid points bracketing it, paired with their
// multilinear weights. Per axis the containing real bin l contributes the
// lower grid point with weight 1-f and its upper partner with weight f,
// where f is the fractional offset of the coordinate inside bin l. The
// upper partner is l+1 for a Bound axis (the overflow slot when l is the
// last bin), the wrapped first bin for a Closed axis, and is dropped
// entirely for an Open axis when l is the last bin (that corner's weight
// stays on the lower grid point).
//
// Corners are listed in cartesian order, last axis fastest. Behavior for
// points outside the grid domain is undefined; the containing bin is
// clamped to the real range so the result is always addressable, but no
// extrapolation semantics are promised. Callers guard with IsInside.
// Panics if len(point) != Dim(). Complexity: O(d·2^d).
func (g *Grid[T]) ClosestPoints(point []float64) (indices []int, weights []float64) {
	g.checkPointDim("ClosestPoints", point)
	d := len(g.axes)
	// Per-axis candidate slots and weights; 1 or 2 entries each.
	cand := make([][2]int, d)
	cw := make([][2]float64, d)
	n := make([]int, d)
	total := 1
	for i, a := range g.axes {
		l := a.Bin(point[i])
		if l < 1 {
			l = 1
		} else if l > a.NBins() {
			l = a.NBins()
		}
		lower, upper := a.BinLowerEdge(l), a.BinUpperEdge(l)
		f := (point[i] - lower) / (upper - lower)
		switch {
		case a.Boundary() == Open && l == a.NBins():
			cand[i] = [2]int{l, 0}
			cw[i] = [2]float64{1, 0}
			n[i] = 1
		case a.Boundary() == Closed && l == a.NBins():
			cand[i] = [2]int{l, 1}
			cw[i] = [2]float64{1 - f, f}
			n[i] = 2
		default:
			cand[i] = [2]int{l, l + 1}
			cw[i] = [2]float64{1 - f, f}
			n[i] = 2
		}
		total *= n[i]
	}

	indices = make([]int, 0, total)
	weights = make([]float64, 0, total)
	pick := make([]int, d)
	for {
		idx, w := 0, 1.0
		for i := 0; i < d; i++ {
			idx += cand[i][pick[i]] * g.strides[i]
			w *= cw[i][pick[i]]
		}
		indices = append(indices, idx)
		weights = append(weights, w)
		// odometer over pick, last axis fastest
		i := d - 1
		for ; i >= 0; i-- {
			pick[i]++
			if pick[i] < n[i] {
				break
			}
			pick[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return indices, weights
}

// ClosestPointsIndices returns the stencil of ClosestPoints as a sorted,
// duplicate-free set of global indices, without weights. A single-bin
// Closed axis wraps its partner onto the containing bin itself, hence the
// deduplication. Panics if len(point) != Dim(). Complexity: O(d·2^d).
func (g *Grid[T]) ClosestPointsIndices(point []float64) []int {
	indices, _ := g.ClosestPoints(point)
	sort.Ints(indices)
	out := indices[:0]
	for i, idx := range indices {
		if i == 0 || idx != indices[i-1] {
			out = append(out, idx)
		}
	}

	return out
}

// flattenRanges maps the cartesian product of per-axis index ranges to
// sorted global indices. Per-axis entries are unique, so the products are
// distinct by the mixed-radix bijection; only ordering remains.
func (g *Grid[T]) flattenRanges(ranges [][]int) []int {
	total := 1
	for _, r := range ranges {
		total *= len(r)
	}
	out := make([]int, 0, total)
	d := len(ranges)
	pick := make([]int, d)
	for {
		idx := 0
		for i := 0; i < d; i++ {
			idx += ranges[i][pick[i]] * g.strides[i]
		}
		out = append(out, idx)
		i := d - 1
		for ; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(ranges[i]) {
				break
			}
			pick[i] = 0
		}
		if i < 0 {
			break
		}
	}
	sort.Ints(out)

	return out
}
