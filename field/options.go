// SPDX-License-Identifier: MIT

// Package field: sentinel errors and functional configuration shared by
// ScalarMap and VectorMap.
package field

import "errors"

// Sentinel errors for field map construction and lookup.
var (
	// ErrNilGrid indicates a map constructed without a backing grid.
	ErrNilGrid = errors.New("field: backing grid must be non-nil")

	// ErrSampleDim indicates a vector sample whose width differs from the
	// map's declared value dimension.
	ErrSampleDim = errors.New("field: sample width does not match value dimension")

	// ErrOutsideDomain indicates a lookup outside the grid domain. Unlike
	// raw grid interpolation, field maps reject such points instead of
	// leaving the result undefined.
	ErrOutsideDomain = errors.New("field: point outside the field map domain")
)

// Transform maps a lookup-space point to grid-space coordinates. The
// result's dimension must equal the backing grid's dimension; the input's
// is up to the caller (e.g. a cylindrical (r, z) grid queried in
// cartesian (x, y, z) space).
type Transform func(point []float64) []float64

// MapOption configures field map construction.
type MapOption func(*mapConfig)

type mapConfig struct {
	transform Transform
}

// WithTransform installs the coordinate transform applied before every
// grid access. Panics on a nil transform (programmer error).
func WithTransform(t Transform) MapOption {
	if t == nil {
		panic("field: WithTransform requires a non-nil transform")
	}

	return func(c *mapConfig) { c.transform = t }
}

// gatherMapOptions applies opts over the defaults (identity transform).
func gatherMapOptions(opts []MapOption) mapConfig {
	var c mapConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// lookupPoint applies the configured transform, if any.
func (c mapConfig) lookupPoint(point []float64) []float64 {
	if c.transform == nil {
		return point
	}

	return c.transform(point)
}
