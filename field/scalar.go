// SPDX-License-Identifier: MIT

package field

import (
	"github.com/sPHENIX-Collaboration/acts-core/grid"
)

// ScalarMap serves d-linearly interpolated scalar samples stored on a
// grid. It owns the backing grid after construction; populate the grid
// first (values live at each real bin's lower-left edge, the overflow
// slots hold the samples at the domain maximum).
type ScalarMap struct {
	g   *grid.Grid[float64]
	cfg mapConfig
}

// NewScalarMap wraps g in a guarded interpolating view.
// Returns ErrNilGrid when g is nil.
func NewScalarMap(g *grid.Grid[float64], opts ...MapOption) (*ScalarMap, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &ScalarMap{g: g, cfg: gatherMapOptions(opts)}, nil
}

// Grid exposes the backing grid, e.g. for population.
func (m *ScalarMap) Grid() *grid.Grid[float64] { return m.g }

// IsInside reports whether point (after the configured transform) lies
// inside the grid domain.
func (m *ScalarMap) IsInside(point []float64) bool {
	return m.g.IsInside(m.cfg.lookupPoint(point))
}

// At returns the interpolated sample at point. Returns ErrOutsideDomain
// instead of extrapolating when the (transformed) point leaves the grid
// domain.
func (m *ScalarMap) At(point []float64) (float64, error) {
	p := m.cfg.lookupPoint(point)
	if !m.g.IsInside(p) {
		return 0, ErrOutsideDomain
	}

	return grid.Interpolate(m.g, p), nil
}
