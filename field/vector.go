// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/sPHENIX-Collaboration/acts-core/grid"
)

// VectorMap serves d-linearly interpolated vector samples of a fixed
// value dimension stored on a grid. Unset cells (nil samples) contribute
// nothing to the blend; every set cell must carry exactly Dim()
// components, enforced at construction and by Set.
type VectorMap struct {
	g   *grid.Grid[[]float64]
	dim int
	cfg mapConfig
}

// NewVectorMap wraps g in a guarded interpolating view over samples of
// width dim.
// Stage 1 (Validate): non-nil grid, dim >= 1 (panic: programmer error).
// Stage 2 (Validate data): every already-populated cell has width dim.
// Stage 3 (Finalize): return the map; g is owned by it afterwards.
// Complexity: O(size) time for the sample sweep.
func NewVectorMap(g *grid.Grid[[]float64], dim int, opts ...MapOption) (*VectorMap, error) {
	if dim < 1 {
		panic(fmt.Sprintf("field: NewVectorMap requires dim >= 1, got %d", dim))
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	for idx := 0; idx < g.Size(); idx++ {
		if s := *g.AtIndex(idx); s != nil && len(s) != dim {
			return nil, fmt.Errorf("cell %d has width %d, want %d: %w", idx, len(s), dim, ErrSampleDim)
		}
	}

	return &VectorMap{g: g, dim: dim, cfg: gatherMapOptions(opts)}, nil
}

// Dim returns the value dimension of the stored samples.
func (m *VectorMap) Dim() int { return m.dim }

// Grid exposes the backing grid.
func (m *VectorMap) Grid() *grid.Grid[[]float64] { return m.g }

// Set stores a sample at the bin containing point (after the configured
// transform), copying v. Returns ErrSampleDim on a width mismatch.
func (m *VectorMap) Set(point, v []float64) error {
	if len(v) != m.dim {
		return fmt.Errorf("sample width %d, want %d: %w", len(v), m.dim, ErrSampleDim)
	}
	own := make([]float64, m.dim)
	copy(own, v)
	*m.g.At(m.cfg.lookupPoint(point)) = own

	return nil
}

// IsInside reports whether point (after the configured transform) lies
// inside the grid domain.
func (m *VectorMap) IsInside(point []float64) bool {
	return m.g.IsInside(m.cfg.lookupPoint(point))
}

// At returns the interpolated sample at point: the stencil corner vectors
// accumulated with their multilinear weights. Returns ErrOutsideDomain
// when the (transformed) point leaves the grid domain.
func (m *VectorMap) At(point []float64) ([]float64, error) {
	p := m.cfg.lookupPoint(point)
	if !m.g.IsInside(p) {
		return nil, ErrOutsideDomain
	}
	indices, weights := m.g.ClosestPoints(p)
	out := make([]float64, m.dim)
	for k, idx := range indices {
		if s := *m.g.AtIndex(idx); s != nil {
			floats.AddScaled(out, weights[k], s)
		}
	}

	return out, nil
}
