// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/sPHENIX-Collaboration/acts-core/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: address translation
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_GlobalIndex demonstrates the mixed-radix mapping between a
// continuous point, its per-axis local bin indices and the flat storage
// index on a 2D mixed-spacing grid.
// Scenario:
//
//   - Axis 1: equidistant, 4 bins over [0, 1)
//   - Axis 2: variable, edges {0, 0.5, 3}
//   - Every axis allocates nBins+2 slots, so the grid holds 6*4 = 24 cells.
//
// Complexity: O(d) per query.
func ExampleGrid_GlobalIndex() {
	ax1, _ := grid.NewEquidistantAxis(0, 1, 4)
	ax2, _ := grid.NewVariableAxis([]float64{0, 0.5, 3})
	g, _ := grid.New[float64](ax1, ax2)

	fmt.Println("size:", g.Size())
	global := g.GlobalIndex([]float64{0, 0})
	fmt.Println("global:", global)
	fmt.Println("local:", g.LocalIndices(global))

	// Output:
	// size: 24
	// global: 5
	// local: [1 1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: interpolation
////////////////////////////////////////////////////////////////////////////////

// ExampleInterpolate stores samples at the grid points of a 1D axis and
// reads back a d-linearly blended value between them.
func ExampleInterpolate() {
	ax, _ := grid.NewEquidistantAxis(0, 2, 2)
	g, _ := grid.New[float64](ax)

	*g.AtLocal([]int{1}) = 10 // sample at x = 0
	*g.AtLocal([]int{2}) = 20 // sample at x = 1
	*g.AtLocal([]int{3}) = 30 // overflow slot: sample at x = 2

	fmt.Println(grid.Interpolate(g, []float64{0.25}))
	fmt.Println(grid.Interpolate(g, []float64{1.5}))

	// Output:
	// 12.5
	// 25
}

////////////////////////////////////////////////////////////////////////////////
// Example: periodic neighborhoods
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_NeighborhoodIndices shows wraparound on a Closed (periodic)
// axis: the neighborhood of the first bin reaches the last real bin
// instead of an underflow slot.
func ExampleGrid_NeighborhoodIndices() {
	ax, _ := grid.NewEquidistantAxis(0, 360, 10, grid.WithBoundary(grid.Closed))
	g, _ := grid.New[float64](ax)

	fmt.Println(g.NeighborhoodIndices([]int{1}, 1))

	// Output:
	// [1 2 10]
}
