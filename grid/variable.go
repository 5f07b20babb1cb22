// SPDX-License-Identifier: MIT

package grid

import "sort"

// VariableAxis is an axis whose nBins bins are bounded by an explicit,
// strictly increasing sequence of nBins+1 edges. Coordinate resolution is
// a binary search over the edges.
type VariableAxis struct {
	edges    []float64
	boundary Boundary
}

// compile-time interface check
var _ Axis = (*VariableAxis)(nil)

// NewVariableAxis constructs an axis from an explicit edge sequence.
// Stage 1 (Validate): at least two edges, strictly increasing; invalid
// input is rejected, never sorted or deduplicated.
// Stage 2 (Prepare): deep-copy the edges to guarantee immutability.
// Stage 3 (Finalize): return the immutable axis.
// Complexity: O(n) time and memory for n edges.
func NewVariableAxis(edges []float64, opts ...AxisOption) (*VariableAxis, error) {
	if len(edges) < 2 {
		return nil, ErrTooFewEdges
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i-1] < edges[i]) {
			return nil, ErrEdgesNotIncreasing
		}
	}
	cfg := gatherAxisOptions(opts)
	own := make([]float64, len(edges))
	copy(own, edges)

	return &VariableAxis{edges: own, boundary: cfg.boundary}, nil
}

// NBins returns the number of real bins, len(edges)-1. Complexity: O(1).
func (a *VariableAxis) NBins() int { return len(a.edges) - 1 }

// Min returns the first edge. Complexity: O(1).
func (a *VariableAxis) Min() float64 { return a.edges[0] }

// Max returns the last edge. Complexity: O(1).
func (a *VariableAxis) Max() float64 { return a.edges[len(a.edges)-1] }

// Boundary returns the boundary policy. Complexity: O(1).
func (a *VariableAxis) Boundary() Boundary { return a.boundary }

// BinEdges returns a copy of the full edge sequence. Complexity: O(n).
func (a *VariableAxis) BinEdges() []float64 {
	out := make([]float64, len(a.edges))
	copy(out, a.edges)

	return out
}

// Bin counts the edges at or below x, which is the local bin index already
// clamped into [0, nBins+1]: 0 below the first edge, nBins+1 at or above
// the last. See Axis.Bin for the out-of-range contract.
// Complexity: O(log n).
func (a *VariableAxis) Bin(x float64) int {
	return sort.Search(len(a.edges), func(i int) bool { return a.edges[i] > x })
}

// IsInside reports whether x lies within [first edge, last edge).
// Complexity: O(1).
func (a *VariableAxis) IsInside(x float64) bool {
	return a.edges[0] <= x && x < a.edges[len(a.edges)-1]
}

// BinLowerEdge returns edges[b-1] for a real bin b. Complexity: O(1).
func (a *VariableAxis) BinLowerEdge(b int) float64 {
	checkRealBin("BinLowerEdge", b, a.NBins())

	return a.edges[b-1]
}

// BinUpperEdge returns edges[b] for a real bin b. Complexity: O(1).
func (a *VariableAxis) BinUpperEdge(b int) float64 {
	checkRealBin("BinUpperEdge", b, a.NBins())

	return a.edges[b]
}

// BinCenter returns the midpoint of real bin b. Complexity: O(1).
func (a *VariableAxis) BinCenter(b int) float64 {
	checkRealBin("BinCenter", b, a.NBins())

	return (a.edges[b-1] + a.edges[b]) / 2
}

// NeighborRange returns the boundary-adjusted Chebyshev interval around b.
// See Axis.NeighborRange. Complexity: O(radius).
func (a *VariableAxis) NeighborRange(b, radius int) []int {
	return neighborRange(b, radius, a.NBins(), a.boundary)
}
