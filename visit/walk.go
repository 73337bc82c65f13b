// SPDX-License-Identifier: MIT

package visit

import "github.com/katalvlaran/meshwalk/topology"

// Walk builds a Visitor and runs it.
func Walk[E, D any](adj Adjacency[E], order Order[D], roots []Root[E, D], fn VisitFunc[E, D], opts ...Option) (Stats, error) {
	v, err := New(adj, order, roots, fn, opts...)
	if err != nil {
		return Stats{}, err
	}
	return v.Run()
}

// Vertices walks vertices from roots.
func Vertices[D any](order Order[D], roots []Root[topology.Vertex, D], fn VisitFunc[topology.Vertex, D], opts ...Option) (Stats, error) {
	return Walk[topology.Vertex, D](VertexKind{}, order, roots, fn, opts...)
}

// VertexEdges walks vertex-edges from root edges.
func VertexEdges[D any](order Order[D], roots []Root[topology.VertexEdge, D], fn VisitFunc[topology.VertexEdge, D], opts ...Option) (Stats, error) {
	return Walk[topology.VertexEdge, D](VertexEdgeKind{}, order, roots, fn, opts...)
}

// Faces walks faces from roots.
func Faces[D any](order Order[D], roots []Root[topology.Face, D], fn VisitFunc[topology.Face, D], opts ...Option) (Stats, error) {
	return Walk[topology.Face, D](FaceKind{}, order, roots, fn, opts...)
}

// FaceEdges walks face-edges from root edges.
func FaceEdges[D any](order Order[D], roots []Root[topology.FaceEdge, D], fn VisitFunc[topology.FaceEdge, D], opts ...Option) (Stats, error) {
	return Walk[topology.FaceEdge, D](FaceEdgeKind{}, order, roots, fn, opts...)
}
