// SPDX-License-Identifier: MIT

package grid

import "math"

// EquidistantAxis is an axis of nBins equal-width bins over [min, max).
// It resolves coordinates to bins with pure arithmetic, no search.
type EquidistantAxis struct {
	min, max float64
	width    float64
	nBins    int
	boundary Boundary
}

// compile-time interface check
var _ Axis = (*EquidistantAxis)(nil)

// NewEquidistantAxis constructs an equal-width axis over [min, max) with
// nBins real bins.
// Stage 1 (Validate): nBins >= 1 and min < max.
// Stage 2 (Prepare): precompute the bin width.
// Stage 3 (Finalize): return the immutable axis.
// Complexity: O(1) time and memory.
func NewEquidistantAxis(min, max float64, nBins int, opts ...AxisOption) (*EquidistantAxis, error) {
	if nBins < 1 {
		return nil, ErrBinCount
	}
	if !(min < max) {
		return nil, ErrDomainOrder
	}
	cfg := gatherAxisOptions(opts)

	return &EquidistantAxis{
		min:      min,
		max:      max,
		width:    (max - min) / float64(nBins),
		nBins:    nBins,
		boundary: cfg.boundary,
	}, nil
}

// NBins returns the number of real bins. Complexity: O(1).
func (a *EquidistantAxis) NBins() int { return a.nBins }

// Min returns the lower end of the domain. Complexity: O(1).
func (a *EquidistantAxis) Min() float64 { return a.min }

// Max returns the upper end of the domain. Complexity: O(1).
func (a *EquidistantAxis) Max() float64 { return a.max }

// Boundary returns the boundary policy. Complexity: O(1).
func (a *EquidistantAxis) Boundary() Boundary { return a.boundary }

// Width returns the common width of all real bins. Complexity: O(1).
func (a *EquidistantAxis) Width() float64 { return a.width }

// Bin maps in-domain x to floor((x-min)/width)+1; coordinates below min
// resolve to slot 0, coordinates at or above max to slot nBins+1.
// See Axis.Bin for the out-of-range contract. Complexity: O(1).
func (a *EquidistantAxis) Bin(x float64) int {
	// Resolve out-of-range coordinates by comparison, not arithmetic:
	// converting a huge float to int does not saturate.
	if x < a.min {
		return 0
	}
	if x >= a.max {
		return a.nBins + 1
	}
	raw := int(math.Floor((x-a.min)/a.width)) + 1
	// division rounding near the domain edges must not leak into a ghost slot
	if raw < 1 {
		return 1
	}
	if raw > a.nBins {
		return a.nBins
	}

	return raw
}

// IsInside reports whether min <= x < max. Complexity: O(1).
func (a *EquidistantAxis) IsInside(x float64) bool {
	return a.min <= x && x < a.max
}

// BinLowerEdge returns min+(b-1)·width for a real bin b. Complexity: O(1).
func (a *EquidistantAxis) BinLowerEdge(b int) float64 {
	checkRealBin("BinLowerEdge", b, a.nBins)

	return a.min + float64(b-1)*a.width
}

// BinUpperEdge returns min+b·width for a real bin b. Complexity: O(1).
func (a *EquidistantAxis) BinUpperEdge(b int) float64 {
	checkRealBin("BinUpperEdge", b, a.nBins)

	return a.min + float64(b)*a.width
}

// BinCenter returns the midpoint of real bin b. Complexity: O(1).
func (a *EquidistantAxis) BinCenter(b int) float64 {
	checkRealBin("BinCenter", b, a.nBins)

	return a.min + (float64(b)-0.5)*a.width
}

// NeighborRange returns the boundary-adjusted Chebyshev interval around b.
// See Axis.NeighborRange. Complexity: O(radius).
func (a *EquidistantAxis) NeighborRange(b, radius int) []int {
	return neighborRange(b, radius, a.nBins, a.boundary)
}
