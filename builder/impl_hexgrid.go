// SPDX-License-Identifier: MIT
// Package: meshwalk/builder
//
// impl_hexgrid.go: HexGrid(rows, cols).
//
// Canonical model:
//   • Pointy-top hexes, odd rows shifted right by half a hex ("odd-r").
//   • Corners live on an integer lattice: x in half-widths, y in quarter
//     heights. Hex (r,c) is centred at (2c + r&1, 3r); its corners, counter-
//     clockwise from lower-right, are offset by (1,-1) (1,1) (0,2) (-1,1)
//     (-1,-1) (0,-2). Shared corners collapse on equal lattice keys.
//   • Vertices are numbered in order of first use; face index r*cols + c.

package builder

import "fmt"

// hexCorners lists corner offsets counter-clockwise (y up).
var hexCorners = [6][2]int{{1, -1}, {1, 1}, {0, 2}, {-1, 1}, {-1, -1}, {0, -2}}

// HexGrid returns a Constructor for a rows×cols field of hexagonal tiles.
func HexGrid(rows, cols int) Constructor {
	return func(s *Soup) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodHexGrid, rows, cols, MinGridDim, ErrBadDimensions)
		}

		ids := make(map[[2]int]int, 2*(rows+1)*(cols+1))
		faces := make([][6]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cx, cy := 2*c+(r&1), 3*r
				var face [6]int
				for k, d := range hexCorners {
					key := [2]int{cx + d[0], cy + d[1]}
					id, ok := ids[key]
					if !ok {
						id = len(ids)
						ids[key] = id
					}
					face[k] = id
				}
				faces = append(faces, face)
			}
		}

		base := s.AddVertices(len(ids))
		for _, f := range faces {
			s.AddFace(base+f[0], base+f[1], base+f[2], base+f[3], base+f[4], base+f[5])
		}

		return nil
	}
}
