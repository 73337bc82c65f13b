// SPDX-License-Identifier: MIT

// Package topology provides an immutable, index-based half-edge mesh and the
// element handles used to walk it: Vertex, VertexEdge, Face and FaceEdge.
//
// What
//
//   - A Topology is built once from polygon index lists (New) and never mutates.
//   - Every interior polygon is a Face; every boundary loop of the surface is
//     closed by an additional external Face, so each vertex has a complete ring
//     of outgoing edges and each edge has a twin.
//   - Handles are small value types (topology pointer + integer index). They are
//     copyable, comparable with ==, and valid as long as the Topology is alive.
//
// Half-edge views
//
//	A single half-edge table backs both edge kinds:
//
//	  VertexEdge h: NearVertex = origin(h), FarVertex = origin(twin(h)),
//	                Next rotates counter-clockwise around NearVertex.
//	  FaceEdge   h: NearFace = face(h), FarFace = face(twin(h)),
//	                Next walks counter-clockwise around NearFace.
//
//	    D ─────── C
//	    │         │        one quad: faces = {0: internal, 1: external}
//	    │    0    │        vertex ring of A = {A→B, A→D}
//	    │         │        face ring of 0  = {A→B, B→C, C→D, D→A}
//	    A ─────── B
//
// Determinism
//
//	Internal faces keep the order they were supplied in; external faces follow,
//	numbered in the order their first boundary edge appears. Vertex rings start
//	at the lowest-index outgoing interior edge.
//
// Errors
//
//   - ErrNoVertices         vertex count < 1.
//   - ErrDegenerateFace     polygon with fewer than 3 corners or a repeated corner.
//   - ErrVertexIndex        corner index outside [0, vertexCount).
//   - ErrDuplicateEdge      two polygons share a directed edge (inconsistent winding).
//   - ErrNonManifoldVertex  a vertex whose faces do not form a single fan.
//   - ErrIsolatedVertex     a vertex referenced by no polygon.
//   - ErrCorrupt            Validate found a broken half-edge invariant.
//
//	Independent problems are collected into one go-multierror value; every
//	member still matches its sentinel with errors.Is.
//
// Complexity
//
//   - New:      O(V + E) time and memory (E = half-edges).
//   - Handles:  O(1) per accessor; ring enumeration O(degree).
package topology
