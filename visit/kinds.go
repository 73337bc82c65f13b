// SPDX-License-Identifier: MIT
//
// File: kinds.go
// Role: Adjacency strategies for the four element kinds.
// Policy:
//   - Neighbour enumeration follows the ring order of topology handles and
//     does not allocate.
//   - "internal" means: the connecting edge is not on the boundary (vertex
//     kinds) or the neighbouring face is internal (face kinds).

package visit

import "github.com/katalvlaran/meshwalk/topology"

const noKey = -1

// VertexKind walks vertices; neighbours are the far vertices of each
// outgoing edge.
type VertexKind struct{}

// Count implements Adjacency.
func (VertexKind) Count(t *topology.Topology) int { return t.VertexCount() }

// Element implements Adjacency.
func (VertexKind) Element(t *topology.Topology, key int) topology.Vertex { return t.Vertex(key) }

// Key implements Adjacency.
func (VertexKind) Key(v topology.Vertex) int { return v.Index() }

// Target implements Adjacency.
func (VertexKind) Target(v topology.Vertex) int { return v.Index() }

// Source implements Adjacency.
func (VertexKind) Source(topology.Vertex) int { return noKey }

// Backtrack implements Adjacency.
func (VertexKind) Backtrack(topology.Vertex) int { return noKey }

// Topology implements Adjacency.
func (VertexKind) Topology(v topology.Vertex) *topology.Topology { return v.Topology() }

// Neighbors implements Adjacency.
func (VertexKind) Neighbors(v topology.Vertex, yield func(topology.Vertex, bool)) {
	e := v.FirstEdge()
	for i := v.NeighborCount(); i > 0; i-- {
		yield(e.FarVertex(), !e.IsBoundary())
		e = e.Next()
	}
}

// FaceKind walks faces; neighbours are the far faces of each side,
// external faces included.
type FaceKind struct{}

// Count implements Adjacency.
func (FaceKind) Count(t *topology.Topology) int { return t.FaceCount() }

// Element implements Adjacency.
func (FaceKind) Element(t *topology.Topology, key int) topology.Face { return t.Face(key) }

// Key implements Adjacency.
func (FaceKind) Key(f topology.Face) int { return f.Index() }

// Target implements Adjacency.
func (FaceKind) Target(f topology.Face) int { return f.Index() }

// Source implements Adjacency.
func (FaceKind) Source(topology.Face) int { return noKey }

// Backtrack implements Adjacency.
func (FaceKind) Backtrack(topology.Face) int { return noKey }

// Topology implements Adjacency.
func (FaceKind) Topology(f topology.Face) *topology.Topology { return f.Topology() }

// Neighbors implements Adjacency.
func (FaceKind) Neighbors(f topology.Face, yield func(topology.Face, bool)) {
	e := f.FirstEdge()
	for i := f.NeighborCount(); i > 0; i-- {
		far := e.FarFace()
		yield(far, far.IsInternal())
		e = e.Next()
	}
}

// VertexEdgeKind walks vertex-edges. An edge commits its far vertex; its
// neighbours are the outgoing edges of that far vertex, the twin included.
type VertexEdgeKind struct{}

// Count implements Adjacency.
func (VertexEdgeKind) Count(t *topology.Topology) int { return t.VertexCount() }

// Element implements Adjacency.
func (VertexEdgeKind) Element(t *topology.Topology, key int) topology.VertexEdge {
	return t.VertexEdge(key)
}

// Key implements Adjacency.
func (VertexEdgeKind) Key(e topology.VertexEdge) int { return e.Index() }

// Target implements Adjacency.
func (VertexEdgeKind) Target(e topology.VertexEdge) int { return e.FarVertex().Index() }

// Source implements Adjacency.
func (VertexEdgeKind) Source(e topology.VertexEdge) int { return e.NearVertex().Index() }

// Backtrack implements Adjacency.
func (VertexEdgeKind) Backtrack(e topology.VertexEdge) int { return e.Twin().Index() }

// Topology implements Adjacency.
func (VertexEdgeKind) Topology(e topology.VertexEdge) *topology.Topology { return e.Topology() }

// Neighbors implements Adjacency.
func (VertexEdgeKind) Neighbors(e topology.VertexEdge, yield func(topology.VertexEdge, bool)) {
	far := e.FarVertex()
	n := far.FirstEdge()
	for i := far.NeighborCount(); i > 0; i-- {
		yield(n, !n.IsBoundary())
		n = n.Next()
	}
}

// FaceEdgeKind walks face-edges. An edge commits its far face; its
// neighbours are the sides of that far face, the twin included.
type FaceEdgeKind struct{}

// Count implements Adjacency.
func (FaceEdgeKind) Count(t *topology.Topology) int { return t.FaceCount() }

// Element implements Adjacency.
func (FaceEdgeKind) Element(t *topology.Topology, key int) topology.FaceEdge {
	return t.FaceEdge(key)
}

// Key implements Adjacency.
func (FaceEdgeKind) Key(e topology.FaceEdge) int { return e.Index() }

// Target implements Adjacency.
func (FaceEdgeKind) Target(e topology.FaceEdge) int { return e.FarFace().Index() }

// Source implements Adjacency.
func (FaceEdgeKind) Source(e topology.FaceEdge) int { return e.NearFace().Index() }

// Backtrack implements Adjacency.
func (FaceEdgeKind) Backtrack(e topology.FaceEdge) int { return e.Twin().Index() }

// Topology implements Adjacency.
func (FaceEdgeKind) Topology(e topology.FaceEdge) *topology.Topology { return e.Topology() }

// Neighbors implements Adjacency.
func (FaceEdgeKind) Neighbors(e topology.FaceEdge, yield func(topology.FaceEdge, bool)) {
	far := e.FarFace()
	n := far.FirstEdge()
	for i := far.NeighborCount(); i > 0; i-- {
		yield(n, !n.IsOuterBoundary())
		n = n.Next()
	}
}

var (
	_ Adjacency[topology.Vertex]     = VertexKind{}
	_ Adjacency[topology.Face]       = FaceKind{}
	_ Adjacency[topology.VertexEdge] = VertexEdgeKind{}
	_ Adjacency[topology.FaceEdge]   = FaceEdgeKind{}
)
