// SPDX-License-Identifier: MIT
// Package: meshwalk/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Constructors never panic.

package builder

import "errors"

// ErrTooFewSides indicates a polygon or fan with fewer than MinPolygonSides.
var ErrTooFewSides = errors.New("builder: too few sides")

// ErrBadDimensions indicates a grid with rows or cols below MinGridDim.
var ErrBadDimensions = errors.New("builder: bad grid dimensions")

// ErrConstructFailed indicates a nil constructor or a soup that
// topology.New refused; the topology error is wrapped alongside.
var ErrConstructFailed = errors.New("builder: construction failed")
