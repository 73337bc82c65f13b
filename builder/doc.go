// SPDX-License-Identifier: MIT

// Package builder assembles deterministic tile meshes as *topology.Topology
// values: single polygons, fans, quad grids, triangle grids and hex grids.
//
// What
//
//   - Constructor: a closure that appends vertices and counter-clockwise faces
//     to a Soup. Constructors never see each other's indices; every call to
//     Soup.AddVertices returns a fresh base, so composed constructors produce
//     disjoint components.
//   - Build(cons...): the single orchestrator. Runs constructors in order and
//     hands the resulting soup to topology.New.
//
// Index schemes (documented and stable)
//
//   - Polygon(n):        vertices 0..n-1 counter-clockwise, one face.
//   - Fan(n):            vertex 0 is the hub, rim 1..n; face i = (0, i+1, i+2).
//   - Grid(rows, cols):  vertex r*(cols+1)+c, face r*cols+c (row-major, y up).
//   - TriGrid(rows, cols): each grid cell split along its rising diagonal;
//     faces 2*(r*cols+c) (lower-right) and 2*(r*cols+c)+1 (upper-left).
//   - HexGrid(rows, cols): pointy-top hexes in odd-row offset layout;
//     face r*cols+c, vertices numbered in order of first use.
//
// Errors
//
//   - ErrTooFewSides      polygon/fan with fewer than MinPolygonSides.
//   - ErrBadDimensions    rows or cols below MinGridDim.
//   - ErrConstructFailed  nil constructor or topology.New rejected the soup.
//
// Complexity
//
//	Every constructor is linear in the number of faces it emits; Build adds
//	the O(V + E) cost of topology.New.
package builder
