// SPDX-License-Identifier: MIT
//
// File: handles.go
// Role: Value handles over the vertex, face and half-edge tables.
// Policy:
//   - Handles never allocate except the slice-returning Edges() helpers.
//   - A zero handle (nil topology) reports IsValid() == false; other accessors
//     on it panic like any nil dereference.

package topology

// Vertex is a handle to one vertex of a Topology.
type Vertex struct {
	topology *Topology
	index    int
}

// Vertex returns the handle for vertex i. The index is not range-checked.
func (t *Topology) Vertex(i int) Vertex { return Vertex{topology: t, index: i} }

// Vertices returns handles for all vertices in index order.
func (t *Topology) Vertices() []Vertex {
	out := make([]Vertex, t.VertexCount())
	for i := range out {
		out[i] = Vertex{topology: t, index: i}
	}
	return out
}

// Topology returns the owning topology.
func (v Vertex) Topology() *Topology { return v.topology }

// Index returns the vertex index.
func (v Vertex) Index() int { return v.index }

// IsValid reports whether the handle refers to a topology.
func (v Vertex) IsValid() bool { return v.topology != nil }

// NeighborCount returns the number of edges (and neighbouring vertices).
func (v Vertex) NeighborCount() int { return v.topology.vertexDegree[v.index] }

// FirstEdge returns the first outgoing edge of the vertex ring.
func (v Vertex) FirstEdge() VertexEdge {
	return VertexEdge{topology: v.topology, index: v.topology.vertexEdge[v.index]}
}

// Edges returns the outgoing edges in counter-clockwise order.
func (v Vertex) Edges() []VertexEdge {
	out := make([]VertexEdge, 0, v.NeighborCount())
	e := v.FirstEdge()
	for i := v.NeighborCount(); i > 0; i-- {
		out = append(out, e)
		e = e.Next()
	}
	return out
}

// VertexEdge is a half-edge seen from the vertex it leaves.
type VertexEdge struct {
	topology *Topology
	index    int
}

// VertexEdge returns the handle for half-edge i viewed around its origin.
func (t *Topology) VertexEdge(i int) VertexEdge { return VertexEdge{topology: t, index: i} }

// Topology returns the owning topology.
func (e VertexEdge) Topology() *Topology { return e.topology }

// Index returns the half-edge index.
func (e VertexEdge) Index() int { return e.index }

// IsValid reports whether the handle refers to a topology.
func (e VertexEdge) IsValid() bool { return e.topology != nil }

// NearVertex is the vertex the edge leaves.
func (e VertexEdge) NearVertex() Vertex {
	return Vertex{topology: e.topology, index: e.topology.edges[e.index].origin}
}

// FarVertex is the vertex the edge arrives at.
func (e VertexEdge) FarVertex() Vertex {
	return Vertex{topology: e.topology, index: e.topology.edges[e.topology.edges[e.index].twin].origin}
}

// Twin returns the opposite edge, leaving FarVertex.
func (e VertexEdge) Twin() VertexEdge {
	return VertexEdge{topology: e.topology, index: e.topology.edges[e.index].twin}
}

// Next returns the following outgoing edge counter-clockwise around NearVertex.
func (e VertexEdge) Next() VertexEdge {
	return VertexEdge{topology: e.topology, index: e.topology.edges[e.topology.edges[e.index].prev].twin}
}

// Prev returns the preceding outgoing edge (clockwise) around NearVertex.
func (e VertexEdge) Prev() VertexEdge {
	return VertexEdge{topology: e.topology, index: e.topology.edges[e.topology.edges[e.index].twin].next}
}

// LeftFace is the face between this edge and Next.
func (e VertexEdge) LeftFace() Face {
	return Face{topology: e.topology, index: e.topology.edges[e.index].face}
}

// RightFace is the face between Prev and this edge.
func (e VertexEdge) RightFace() Face {
	return Face{topology: e.topology, index: e.topology.edges[e.topology.edges[e.index].twin].face}
}

// FaceEdge returns the same half-edge viewed around LeftFace.
func (e VertexEdge) FaceEdge() FaceEdge { return FaceEdge(e) }

// IsBoundary reports whether either adjacent face is external.
func (e VertexEdge) IsBoundary() bool {
	return e.LeftFace().IsExternal() || e.RightFace().IsExternal()
}

// Face is a handle to one face of a Topology.
type Face struct {
	topology *Topology
	index    int
}

// Face returns the handle for face i. The index is not range-checked.
func (t *Topology) Face(i int) Face { return Face{topology: t, index: i} }

// InternalFaces returns handles for all internal faces in index order.
func (t *Topology) InternalFaces() []Face {
	out := make([]Face, t.InternalFaceCount())
	for i := range out {
		out[i] = Face{topology: t, index: i}
	}
	return out
}

// Topology returns the owning topology.
func (f Face) Topology() *Topology { return f.topology }

// Index returns the face index.
func (f Face) Index() int { return f.index }

// IsValid reports whether the handle refers to a topology.
func (f Face) IsValid() bool { return f.topology != nil }

// IsExternal reports whether the face closes a boundary loop.
func (f Face) IsExternal() bool { return f.index >= f.topology.internal }

// IsInternal reports whether the face is one of the supplied polygons.
func (f Face) IsInternal() bool { return f.index < f.topology.internal }

// NeighborCount returns the number of sides (and neighbouring faces).
func (f Face) NeighborCount() int { return f.topology.faceSides[f.index] }

// FirstEdge returns the first edge of the face ring.
func (f Face) FirstEdge() FaceEdge {
	return FaceEdge{topology: f.topology, index: f.topology.faceEdge[f.index]}
}

// Edges returns the face sides in counter-clockwise order.
func (f Face) Edges() []FaceEdge {
	out := make([]FaceEdge, 0, f.NeighborCount())
	e := f.FirstEdge()
	for i := f.NeighborCount(); i > 0; i-- {
		out = append(out, e)
		e = e.Next()
	}
	return out
}

// FaceEdge is a half-edge seen from the face on its left.
type FaceEdge struct {
	topology *Topology
	index    int
}

// FaceEdge returns the handle for half-edge i viewed around its face.
func (t *Topology) FaceEdge(i int) FaceEdge { return FaceEdge{topology: t, index: i} }

// Topology returns the owning topology.
func (e FaceEdge) Topology() *Topology { return e.topology }

// Index returns the half-edge index.
func (e FaceEdge) Index() int { return e.index }

// IsValid reports whether the handle refers to a topology.
func (e FaceEdge) IsValid() bool { return e.topology != nil }

// NearFace is the face the edge bounds.
func (e FaceEdge) NearFace() Face {
	return Face{topology: e.topology, index: e.topology.edges[e.index].face}
}

// FarFace is the face across the edge.
func (e FaceEdge) FarFace() Face {
	return Face{topology: e.topology, index: e.topology.edges[e.topology.edges[e.index].twin].face}
}

// Twin returns the opposite edge, bounding FarFace.
func (e FaceEdge) Twin() FaceEdge {
	return FaceEdge{topology: e.topology, index: e.topology.edges[e.index].twin}
}

// Next returns the following side counter-clockwise around NearFace.
func (e FaceEdge) Next() FaceEdge {
	return FaceEdge{topology: e.topology, index: e.topology.edges[e.index].next}
}

// Prev returns the preceding side around NearFace.
func (e FaceEdge) Prev() FaceEdge {
	return FaceEdge{topology: e.topology, index: e.topology.edges[e.index].prev}
}

// PrevVertex is the corner the side starts at.
func (e FaceEdge) PrevVertex() Vertex {
	return Vertex{topology: e.topology, index: e.topology.edges[e.index].origin}
}

// NextVertex is the corner the side ends at.
func (e FaceEdge) NextVertex() Vertex {
	return Vertex{topology: e.topology, index: e.topology.edges[e.topology.edges[e.index].next].origin}
}

// VertexEdge returns the same half-edge viewed around PrevVertex.
func (e FaceEdge) VertexEdge() VertexEdge { return VertexEdge(e) }

// IsOuterBoundary reports whether FarFace is external.
func (e FaceEdge) IsOuterBoundary() bool { return e.FarFace().IsExternal() }
