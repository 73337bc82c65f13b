// SPDX-License-Identifier: MIT
// Package: meshwalk/builder
//
// impl_grid.go: Grid(rows, cols) and TriGrid(rows, cols).
//
// Canonical model:
//   • (rows+1)×(cols+1) lattice vertices, index base + r*(cols+1) + c, y up.
//   • Grid: one quad per cell, corners (r,c) (r,c+1) (r+1,c+1) (r+1,c).
//   • TriGrid: the same cell split along (r,c)-(r+1,c+1) into a lower-right
//     and an upper-left triangle, emitted in that order.
//
// Determinism:
//   • Cells are emitted row-major (r asc, then c asc).

package builder

import "fmt"

// Grid returns a Constructor for a rows×cols grid of quad tiles.
func Grid(rows, cols int) Constructor {
	return func(s *Soup) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrBadDimensions)
		}
		at := lattice(s, rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.AddFace(at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c))
			}
		}

		return nil
	}
}

// TriGrid returns a Constructor for a rows×cols grid with every cell split
// into two triangles.
func TriGrid(rows, cols int) Constructor {
	return func(s *Soup) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodTriGrid, rows, cols, MinGridDim, ErrBadDimensions)
		}
		at := lattice(s, rows, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.AddFace(at(r, c), at(r, c+1), at(r+1, c+1))
				s.AddFace(at(r, c), at(r+1, c+1), at(r+1, c))
			}
		}

		return nil
	}
}

// lattice reserves the (rows+1)×(cols+1) corner vertices and returns the
// index function for corner (r, c).
func lattice(s *Soup, rows, cols int) func(r, c int) int {
	stride := cols + 1
	base := s.AddVertices((rows + 1) * stride)
	return func(r, c int) int { return base + r*stride + c }
}
