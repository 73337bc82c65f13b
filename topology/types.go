// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Topology storage, sentinel errors and read-only counters.

package topology

import "errors"

// Sentinel errors for topology construction and validation.
var (
	// ErrNoVertices indicates a topology requested with no vertices.
	ErrNoVertices = errors.New("topology: vertex count must be positive")

	// ErrDegenerateFace indicates a polygon with fewer than three corners
	// or with the same corner listed twice.
	ErrDegenerateFace = errors.New("topology: degenerate face")

	// ErrVertexIndex indicates a polygon corner outside the vertex range.
	ErrVertexIndex = errors.New("topology: vertex index out of range")

	// ErrDuplicateEdge indicates two polygons using the same directed edge,
	// which happens with inconsistent winding or more than two faces on an edge.
	ErrDuplicateEdge = errors.New("topology: duplicate directed edge")

	// ErrNonManifoldVertex indicates a vertex whose incident faces do not form
	// a single fan (e.g. two fans touching only at that vertex).
	ErrNonManifoldVertex = errors.New("topology: non-manifold vertex")

	// ErrIsolatedVertex indicates a vertex that no polygon references.
	ErrIsolatedVertex = errors.New("topology: isolated vertex")

	// ErrCorrupt indicates a broken half-edge invariant found by Validate.
	ErrCorrupt = errors.New("topology: corrupt half-edge structure")
)

// none marks an unset half-edge link during construction.
const none = -1

// halfEdge is one directed edge record. The face lies to the left of the
// edge; next and prev walk that face counter-clockwise.
type halfEdge struct {
	origin int // vertex the edge leaves
	face   int // face on the left
	twin   int // opposite half-edge
	next   int // next edge around face
	prev   int // previous edge around face
}

// Topology is an immutable half-edge mesh.
//
// Faces [0, internal) are the polygons supplied to New; faces
// [internal, len(faceEdge)) are external faces closing each boundary loop.
// Because nothing mutates after New returns, a *Topology is safe for
// concurrent readers.
type Topology struct {
	edges []halfEdge

	vertexEdge   []int // first outgoing half-edge per vertex
	vertexDegree []int // ring size per vertex

	faceEdge  []int // first half-edge per face
	faceSides []int // ring size per face
	internal  int   // count of internal faces
}

// VertexCount returns the number of vertices.
func (t *Topology) VertexCount() int {
	if t == nil {
		return 0
	}
	return len(t.vertexEdge)
}

// EdgeCount returns the number of half-edges. VertexEdge and FaceEdge
// handles share this index space.
func (t *Topology) EdgeCount() int {
	if t == nil {
		return 0
	}
	return len(t.edges)
}

// FaceCount returns the number of faces, internal and external.
func (t *Topology) FaceCount() int {
	if t == nil {
		return 0
	}
	return len(t.faceEdge)
}

// InternalFaceCount returns the number of faces supplied to New.
func (t *Topology) InternalFaceCount() int {
	if t == nil {
		return 0
	}
	return t.internal
}

// ExternalFaceCount returns the number of boundary loops.
func (t *Topology) ExternalFaceCount() int {
	return t.FaceCount() - t.InternalFaceCount()
}
