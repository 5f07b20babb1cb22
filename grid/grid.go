// SPDX-License-Identifier: MIT

// Package grid: the Grid container. This file covers construction, the
// mixed-radix address translation between flat storage and per-axis local
// indices, value access and per-bin geometry queries. Neighbor and stencil
// searches live in neighbors.go, interpolation in interpolate.go.
package grid

// Grid is an N-dimensional binned lookup table storing one T per bin in a
// dense, contiguous slice of length ∏(nBins_i+2). Axis order is fixed at
// construction; axis 1 is the most significant ("outer") dimension.
//
// A Grid provides no internal locking: concurrent reads of an immutable
// grid are safe, concurrent mutation must be serialized by the caller.
type Grid[T any] struct {
	axes    []Axis
	strides []int
	data    []T
}

// New constructs a Grid over the given axes with default-valued storage.
// The axes are owned by the grid afterwards and must not be mutated or
// shared with another grid.
// Stage 1 (Validate): at least one non-nil axis.
// Stage 2 (Prepare): compute the stride table, last axis stride 1.
// Stage 3 (Finalize): allocate ∏(nBins_i+2) default-valued cells.
// Complexity: O(size) time and memory.
func New[T any](axes ...Axis) (*Grid[T], error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	for _, a := range axes {
		if a == nil {
			return nil, ErrNilAxis
		}
	}
	strides := make([]int, len(axes))
	strides[len(axes)-1] = 1
	for i := len(axes) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * (axes[i+1].NBins() + 2)
	}
	size := strides[0] * (axes[0].NBins() + 2)
	own := make([]Axis, len(axes))
	copy(own, axes)

	return &Grid[T]{axes: own, strides: strides, data: make([]T, size)}, nil
}

// Dim returns the number of axes. Complexity: O(1).
func (g *Grid[T]) Dim() int { return len(g.axes) }

// Size returns the total slot count, under-/overflow bins included.
// Complexity: O(1).
func (g *Grid[T]) Size() int { return len(g.data) }

// NBins returns the per-axis real bin counts. Complexity: O(d).
func (g *Grid[T]) NBins() []int {
	out := make([]int, len(g.axes))
	for i, a := range g.axes {
		out[i] = a.NBins()
	}

	return out
}

// Axes returns the grid's axes in order. The returned slice is a copy;
// the axes themselves are immutable. Complexity: O(d).
func (g *Grid[T]) Axes() []Axis {
	out := make([]Axis, len(g.axes))
	copy(out, g.axes)

	return out
}

// GlobalIndex resolves a point to the global index of its containing bin:
// each coordinate is mapped through its axis's Bin, the local indices are
// combined via the stride table. Out-of-range coordinates land in the
// under-/overflow slots. Panics if len(point) != Dim().
// Complexity: O(d).
func (g *Grid[T]) GlobalIndex(point []float64) int {
	g.checkPointDim("GlobalIndex", point)
	idx := 0
	for i, a := range g.axes {
		idx += a.Bin(point[i]) * g.strides[i]
	}

	return idx
}

// GlobalIndexFromLocal encodes a local-index tuple into a global index.
// Panics if the tuple has the wrong length or any component lies outside
// [0, nBins_i+1]. Complexity: O(d).
func (g *Grid[T]) GlobalIndexFromLocal(local []int) int {
	g.checkLocal("GlobalIndexFromLocal", local)
	idx := 0
	for i, l := range local {
		idx += l * g.strides[i]
	}

	return idx
}

// LocalIndices decodes a global index into its local-index tuple by
// successive division, most significant axis first. It is the exact
// inverse of GlobalIndexFromLocal over [0, Size()). Panics on a global
// index outside that range. Complexity: O(d).
func (g *Grid[T]) LocalIndices(global int) []int {
	g.checkGlobal("LocalIndices", global)
	local := make([]int, len(g.axes))
	for i, s := range g.strides {
		local[i] = global / s
		global %= s
	}

	return local
}

// At returns a mutable reference to the value stored in the bin
// containing point. Consistent with AtIndex and AtLocal for the same
// logical bin. Panics if len(point) != Dim(). Complexity: O(d).
func (g *Grid[T]) At(point []float64) *T {
	return &g.data[g.GlobalIndex(point)]
}

// AtIndex returns a mutable reference to the value at a global index.
// Panics on an index outside [0, Size()). Complexity: O(1).
func (g *Grid[T]) AtIndex(global int) *T {
	g.checkGlobal("AtIndex", global)

	return &g.data[global]
}

// AtLocal returns a mutable reference to the value at a local-index
// tuple. Panics on a malformed tuple. Complexity: O(d).
func (g *Grid[T]) AtLocal(local []int) *T {
	return &g.data[g.GlobalIndexFromLocal(local)]
}

// IsInside reports whether every coordinate lies inside its axis domain.
// Panics if len(point) != Dim(). Complexity: O(d).
func (g *Grid[T]) IsInside(point []float64) bool {
	g.checkPointDim("IsInside", point)
	for i, a := range g.axes {
		if !a.IsInside(point[i]) {
			return false
		}
	}

	return true
}

// BinCenter returns the center of the real bin addressed by local.
// Panics if any component is outside [1, nBins_i]. Complexity: O(d).
func (g *Grid[T]) BinCenter(local []int) []float64 {
	g.checkRealLocal("BinCenter", local)
	out := make([]float64, len(g.axes))
	for i, a := range g.axes {
		out[i] = a.BinCenter(local[i])
	}

	return out
}

// LowerLeftEdge returns the lower-left corner of the real bin addressed
// by local. Panics if any component is outside [1, nBins_i].
// Complexity: O(d).
func (g *Grid[T]) LowerLeftEdge(local []int) []float64 {
	g.checkRealLocal("LowerLeftEdge", local)
	out := make([]float64, len(g.axes))
	for i, a := range g.axes {
		out[i] = a.BinLowerEdge(local[i])
	}

	return out
}

// UpperRightEdge returns the upper-right corner of the real bin addressed
// by local. Panics if any component is outside [1, nBins_i].
// Complexity: O(d).
func (g *Grid[T]) UpperRightEdge(local []int) []float64 {
	g.checkRealLocal("UpperRightEdge", local)
	out := make([]float64, len(g.axes))
	for i, a := range g.axes {
		out[i] = a.BinUpperEdge(local[i])
	}

	return out
}

// checkPointDim panics on a point of the wrong dimension.
func (g *Grid[T]) checkPointDim(method string, point []float64) {
	if len(point) != len(g.axes) {
		panicf("%s: point has %d coordinates, grid has %d axes", method, len(point), len(g.axes))
	}
}

// checkGlobal panics on a global index outside [0, Size()).
func (g *Grid[T]) checkGlobal(method string, global int) {
	if global < 0 || global >= len(g.data) {
		panicf("%s: global index %d outside [0, %d)", method, global, len(g.data))
	}
}

// checkLocal panics on a tuple of the wrong length or with a component
// outside the slot range of its axis.
func (g *Grid[T]) checkLocal(method string, local []int) {
	if len(local) != len(g.axes) {
		panicf("%s: tuple has %d components, grid has %d axes", method, len(local), len(g.axes))
	}
	for i, l := range local {
		if l < 0 || l > g.axes[i].NBins()+1 {
			panicf("%s: local index %d outside [0, %d] on axis %d", method, l, g.axes[i].NBins()+1, i+1)
		}
	}
}

// checkRealLocal panics unless every component addresses a real bin.
func (g *Grid[T]) checkRealLocal(method string, local []int) {
	if len(local) != len(g.axes) {
		panicf("%s: tuple has %d components, grid has %d axes", method, len(local), len(g.axes))
	}
	for i, l := range local {
		if l < 1 || l > g.axes[i].NBins() {
			panicf("%s: local index %d outside real range [1, %d] on axis %d", method, l, g.axes[i].NBins(), i+1)
		}
	}
}
