// SPDX-License-Identifier: MIT

// Package grid: the Axis abstraction shared by both spacing variants.
// This file defines:
//   - Boundary (Bound / Open / Closed) and its semantics,
//   - the Axis interface consumed by Grid,
//   - AxisOption functional options with validated defaults,
//   - the boundary-aware neighbor-range arithmetic common to all axes.
package grid

import "sort"

// Boundary selects how coordinate-based and neighbor/stencil queries treat
// the under- and overflow slots 0 and nBins+1. Storage layout is identical
// for all three policies: every axis always allocates nBins+2 slots.
type Boundary int

const (
	// Bound reserves slots 0 and nBins+1 as addressable under-/overflow
	// buckets: out-of-range coordinates land there, and neighbor/stencil
	// queries include them when in reach.
	Bound Boundary = iota

	// Open bounds the axis without wraparound: neighbor and stencil
	// queries truncate at the domain edges, ghost slots never appear in
	// their results.
	Open

	// Closed makes the axis periodic: neighbor and stencil queries wrap
	// modulo nBins, producing only real bins 1..nBins.
	Closed
)

// DefaultBoundary is the policy applied when no WithBoundary option is
// given. Bound matches the behavior of a plain histogram-style axis.
const DefaultBoundary = Bound

// String implements fmt.Stringer for diagnostics.
func (b Boundary) String() string {
	switch b {
	case Bound:
		return "Bound"
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return "Boundary(?)"
	}
}

// Axis describes one dimension of a Grid: its bin-edge geometry and its
// boundary policy. Implementations are immutable once constructed and are
// owned exclusively by the Grid they are passed to.
//
// Local bin indices run over 0..NBins()+1; real bins are 1..NBins().
// Bin edge and center queries are defined for real bins only.
type Axis interface {
	// NBins returns the number of real bins.
	NBins() int

	// Min returns the lower end of the axis domain.
	Min() float64

	// Max returns the upper end of the axis domain.
	Max() float64

	// Boundary returns the boundary policy of the axis.
	Boundary() Boundary

	// Bin maps a coordinate to a local bin index in [0, NBins()+1].
	// Coordinates inside [Min, Max) map to their containing real bin.
	// Coordinates outside the domain map to the raw floor/search index
	// clamped into the slot range, i.e. slot 0 below Min and slot
	// NBins()+1 at or above Max, for every boundary policy. For Open and
	// Closed axes this clamping is an implementation choice kept only so
	// that storage access stays total; the boundary-aware semantics of
	// those policies live in NeighborRange and the grid stencil queries.
	Bin(x float64) int

	// IsInside reports whether Min() <= x < Max().
	IsInside(x float64) bool

	// BinLowerEdge returns the lower edge of real bin b in [1, NBins()].
	// Panics on any other b.
	BinLowerEdge(b int) float64

	// BinUpperEdge returns the upper edge of real bin b in [1, NBins()].
	// Panics on any other b.
	BinUpperEdge(b int) float64

	// BinCenter returns the midpoint of real bin b in [1, NBins()].
	// Panics on any other b.
	BinCenter(b int) float64

	// NeighborRange returns the local indices within Chebyshev distance
	// radius of bin b, adjusted per boundary policy: Bound clips to
	// [0, NBins()+1], Open clips to [1, NBins()], Closed wraps modulo
	// NBins() into [1, NBins()]. The result is sorted and duplicate-free.
	// A Closed axis returns nil when b itself is a ghost slot, since a
	// periodic axis never addresses its ghosts independently.
	NeighborRange(b, radius int) []int
}

// AxisOption configures axis construction.
type AxisOption func(*axisConfig)

type axisConfig struct {
	boundary Boundary
}

// WithBoundary selects the boundary policy of the axis being constructed.
// Panics on an unknown Boundary value (programmer error).
func WithBoundary(b Boundary) AxisOption {
	if b != Bound && b != Open && b != Closed {
		panicf("WithBoundary: unknown boundary policy %d", int(b))
	}

	return func(c *axisConfig) { c.boundary = b }
}

// gatherAxisOptions applies opts over the documented defaults.
func gatherAxisOptions(opts []AxisOption) axisConfig {
	c := axisConfig{boundary: DefaultBoundary}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// neighborRange implements Axis.NeighborRange for both spacing variants;
// only nBins and the boundary policy matter. Complexity: O(radius) plus
// O(k log k) for the sort in the wrapped case.
func neighborRange(b, radius, nBins int, policy Boundary) []int {
	if radius < 0 {
		panicf("NeighborRange: radius must be non-negative, got %d", radius)
	}
	lo, hi := b-radius, b+radius

	switch policy {
	case Open:
		lo = max(lo, 1)
		hi = min(hi, nBins)
	case Bound:
		lo = max(lo, 0)
		hi = min(hi, nBins+1)
	case Closed:
		// A periodic axis never addresses slot 0 or nBins+1 on its own.
		if b < 1 || b > nBins {
			return nil
		}
		if 2*radius+1 >= nBins {
			lo, hi = 1, nBins
			break
		}
		wrapped := make([]int, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			wrapped = append(wrapped, (i-1+nBins)%nBins+1)
		}
		sort.Ints(wrapped)

		return wrapped
	}
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

// checkRealBin panics unless b addresses a real bin 1..nBins.
func checkRealBin(method string, b, nBins int) {
	if b < 1 || b > nBins {
		panicf("%s: bin %d outside real range [1, %d]", method, b, nBins)
	}
}
