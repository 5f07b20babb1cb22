// Package actscore is an in-memory toolkit for binned lookup tables:
// N-dimensional grids over mixed axis types, d-linear interpolation, and
// interpolating field maps built on top.
//
// 🚀 What is acts-core?
//
//	A small, concurrency-neutral library that brings together:
//		• Axes: equidistant & variable binning with bound, open or closed edges
//		• Grids: any dimension, any cell type, under/overflow on every axis
//		• Neighborhoods: radius windows per boundary policy, wrap-aware
//		• Interpolation: multilinear blending over the 2^d closest grid points
//		• Field maps: guarded scalar & vector lookups with coordinate transforms
//
// ✨ Why choose acts-core?
//
//   - Predictable layout – one flat slice, explicit stride arithmetic
//   - Clear failure modes – sentinel errors for bad input, panics for misuse
//   - Pure Go – generics for cell types, no cgo
//   - Composable – bring your own cell struct, wrap grids in richer views
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/  — axes, the generic Grid container, neighborhood search & interpolation
//	field/ — interpolating scalar & vector maps over a grid
//
// Quick ASCII example:
//
//	    y ↑  ┌───┬───┬───┐
//	      3  │1,3│2,3│3,3│
//	      2  │1,2│2,2│3,2│
//	      1  │1,1│2,1│3,1│
//	      0  └───┴───┴───┘ → x
//
//	a 3x3 grid; each axis also carries hidden under/overflow slots.
//
// Dive into the grid package docs for the index layout and the boundary
// policy semantics, and the field package for end-to-end lookup examples.
//
//	go get github.com/sPHENIX-Collaboration/acts-core
package actscore
