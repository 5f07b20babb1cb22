// SPDX-License-Identifier: MIT

// Package grid: sentinel errors shared by axis and grid constructors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBinCount indicates an equidistant axis with fewer than one bin.
	ErrBinCount = errors.New("grid: axis must have at least one bin")

	// ErrDomainOrder indicates an equidistant axis whose min is not strictly
	// below its max.
	ErrDomainOrder = errors.New("grid: axis min must be strictly less than max")

	// ErrTooFewEdges indicates a variable axis with fewer than two edges.
	ErrTooFewEdges = errors.New("grid: variable axis requires at least two edges")

	// ErrEdgesNotIncreasing indicates a variable axis whose edge sequence is
	// not strictly increasing. Edges are rejected, never sorted or deduped.
	ErrEdgesNotIncreasing = errors.New("grid: variable axis edges must be strictly increasing")

	// ErrNoAxes indicates a grid constructed without any axis.
	ErrNoAxes = errors.New("grid: at least one axis is required")

	// ErrNilAxis indicates a grid constructed with a nil axis.
	ErrNilAxis = errors.New("grid: axis must be non-nil")
)

// panicf reports a contract violation (caller misuse, not a data condition).
func panicf(format string, args ...any) {
	panic(fmt.Sprintf("grid: "+format, args...))
}
