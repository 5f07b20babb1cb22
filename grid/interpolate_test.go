package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/sPHENIX-Collaboration/acts-core/grid"
)

//----------------------------------------------------------------------------//
// Interpolation Tests
//----------------------------------------------------------------------------//

// TestInterpolate2D pins bilinear behavior on two equidistant axes over
// [1,3]x[1,5] with corner values 10, 20, 30, 40 stored at each real
// bin's lower-left edge.
func TestInterpolate2D(t *testing.T) {
	g, err := grid.New[float64](mustEqAxis(t, 1, 3, 2), mustEqAxis(t, 1, 5, 2))
	require.NoError(t, err)

	*g.At([]float64{1, 1}) = 10
	*g.At([]float64{2, 1}) = 20
	*g.At([]float64{1, 3}) = 30
	*g.At([]float64{2, 3}) = 40

	// exact at the grid points themselves
	require.Equal(t, 10.0, grid.Interpolate(g, []float64{1, 1}))
	require.Equal(t, 20.0, grid.Interpolate(g, []float64{2, 1}))
	require.Equal(t, 30.0, grid.Interpolate(g, []float64{1, 3}))
	require.Equal(t, 40.0, grid.Interpolate(g, []float64{2, 3}))

	// linear along each axis
	require.InDelta(t, 15.0, grid.Interpolate(g, []float64{1.5, 1}), 1e-12)
	require.InDelta(t, 20.0, grid.Interpolate(g, []float64{1, 2}), 1e-12)
	require.InDelta(t, 25.0, grid.Interpolate(g, []float64{1.5, 2}), 1e-12)
}

// TestInterpolate3D is the full trilinear fixture: corner values 10..80
// on axes [1,3], [1,5] and [1,7] with 2 bins each.
func TestInterpolate3D(t *testing.T) {
	g, err := grid.New[float64](
		mustEqAxis(t, 1, 3, 2),
		mustEqAxis(t, 1, 5, 2),
		mustEqAxis(t, 1, 7, 2),
	)
	require.NoError(t, err)

	corners := []struct {
		p []float64
		v float64
	}{
		{[]float64{1, 1, 1}, 10}, {[]float64{2, 1, 1}, 20},
		{[]float64{1, 3, 1}, 30}, {[]float64{2, 3, 1}, 40},
		{[]float64{1, 1, 4}, 50}, {[]float64{2, 1, 4}, 60},
		{[]float64{1, 3, 4}, 70}, {[]float64{2, 3, 4}, 80},
	}
	for _, c := range corners {
		*g.At(c.p) = c.v
	}

	cases := []struct {
		p    []float64
		want float64
	}{
		// stored grid points reproduce exactly
		{[]float64{1, 1, 1}, 10}, {[]float64{2, 1, 1}, 20},
		{[]float64{1, 3, 1}, 30}, {[]float64{2, 3, 1}, 40},
		{[]float64{1, 1, 4}, 50}, {[]float64{2, 1, 4}, 60},
		{[]float64{1, 3, 4}, 70}, {[]float64{2, 3, 4}, 80},
		// midpoints along single axes
		{[]float64{1.5, 1, 1}, 15}, {[]float64{1.5, 3, 1}, 35},
		{[]float64{1, 2, 1}, 20}, {[]float64{2, 2, 1}, 30},
		{[]float64{1.5, 1, 4}, 55}, {[]float64{1.5, 3, 4}, 75},
		{[]float64{1, 2, 4}, 60}, {[]float64{2, 2, 4}, 70},
		{[]float64{1, 1, 2.5}, 30}, {[]float64{1, 3, 2.5}, 50},
		{[]float64{2, 1, 2.5}, 40}, {[]float64{2, 3, 2.5}, 60},
		// cell center and a generic interior point
		{[]float64{1.5, 2, 2.5}, 45},
		{[]float64{1.3, 2.1, 1.6}, 32},
	}
	for _, tc := range cases {
		got := grid.Interpolate(g, tc.p)
		if !scalar.EqualWithinAbs(got, tc.want, 1e-9) {
			t.Errorf("Interpolate(%v) = %v; want %v", tc.p, got, tc.want)
		}
	}
}

// TestInterpolate_LastBinBracket: inside the final bin the upper bracket
// is the overflow slot's grid point, which sits exactly on the domain
// maximum.
func TestInterpolate_LastBinBracket(t *testing.T) {
	g, err := grid.New[float64](mustEqAxis(t, 0, 2, 2))
	require.NoError(t, err)

	*g.AtLocal([]int{1}) = 0  // sample at 0.0
	*g.AtLocal([]int{2}) = 10 // sample at 1.0
	*g.AtLocal([]int{3}) = 20 // overflow slot: sample at 2.0

	require.InDelta(t, 5.0, grid.Interpolate(g, []float64{0.5}), 1e-12)
	require.InDelta(t, 15.0, grid.Interpolate(g, []float64{1.5}), 1e-12)
	require.InDelta(t, 19.0, grid.Interpolate(g, []float64{1.9}), 1e-12)
}

// TestInterpolate_Float32 exercises the non-default cell type of the
// numeric constraint.
func TestInterpolate_Float32(t *testing.T) {
	g, err := grid.New[float32](mustEqAxis(t, 0, 2, 2))
	require.NoError(t, err)

	*g.AtLocal([]int{1}) = 1
	*g.AtLocal([]int{2}) = 3

	require.InDelta(t, 2.0, float64(grid.Interpolate(g, []float64{0.5})), 1e-6)
}

// TestInterpolate_OpenUpperEdge: an open axis drops the missing upper
// bracket and leaves the full weight on the last stored grid point.
func TestInterpolate_OpenUpperEdge(t *testing.T) {
	g, err := grid.New[float64](mustEqAxis(t, 0, 2, 2, grid.WithBoundary(grid.Open)))
	require.NoError(t, err)

	*g.AtLocal([]int{1}) = 0
	*g.AtLocal([]int{2}) = 10

	require.InDelta(t, 5.0, grid.Interpolate(g, []float64{0.5}), 1e-12)
	require.InDelta(t, 10.0, grid.Interpolate(g, []float64{1.7}), 1e-12)
}

// TestInterpolate_ClosedWrap: a periodic axis brackets the final bin
// with the wrapped first grid point.
func TestInterpolate_ClosedWrap(t *testing.T) {
	g, err := grid.New[float64](mustEqAxis(t, 0, 4, 4, grid.WithBoundary(grid.Closed)))
	require.NoError(t, err)

	*g.AtLocal([]int{1}) = 8
	*g.AtLocal([]int{2}) = 2
	*g.AtLocal([]int{3}) = 4
	*g.AtLocal([]int{4}) = 6

	// inside the last bin the partner is bin 1 again
	require.InDelta(t, 7.0, grid.Interpolate(g, []float64{3.5}), 1e-12)
}
