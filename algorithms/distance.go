// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Breadth-first depth fields over vertices and internal faces.

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

// checkFaces rejects an empty root list and roots that are not internal faces.
func checkFaces(roots []topology.Face) error {
	if len(roots) == 0 {
		return ErrNoSeeds
	}
	for i, f := range roots {
		if !f.IsValid() || f.IsExternal() {
			return fmt.Errorf("%w: face root %d", ErrInvalidRoot, i)
		}
	}
	return nil
}

func checkVertices(roots []topology.Vertex) error {
	if len(roots) == 0 {
		return ErrNoSeeds
	}
	for i, v := range roots {
		if !v.IsValid() {
			return fmt.Errorf("%w: vertex root %d", ErrInvalidRoot, i)
		}
	}
	return nil
}

func filled(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = unreached
	}
	return out
}

// VertexDistances returns, for every vertex, the number of edges on the
// shortest chain to the nearest root, or -1 if unreachable.
//
// Complexity: O((V + E) log E).
func VertexDistances(roots []topology.Vertex, opts ...visit.Option) ([]int, error) {
	if err := checkVertices(roots); err != nil {
		return nil, fmt.Errorf("VertexDistances: %w", err)
	}
	dist := filled(roots[0].Topology().VertexCount())
	_, err := visit.Vertices(visit.BreadthFirst[struct{}](), visit.Roots[struct{}](roots...),
		func(v *visit.Visitor[topology.Vertex, struct{}]) {
			dist[v.Element().Index()] = v.Depth()
			v.VisitAllNeighbors()
		}, opts...)
	if err != nil {
		return nil, fmt.Errorf("VertexDistances: %w", err)
	}
	return dist, nil
}

// FaceDistances returns, for every face, the number of internal side
// crossings from the nearest root, or -1 for external and unreachable faces.
//
// Complexity: O((F + E) log E).
func FaceDistances(roots []topology.Face, opts ...visit.Option) ([]int, error) {
	if err := checkFaces(roots); err != nil {
		return nil, fmt.Errorf("FaceDistances: %w", err)
	}
	dist := filled(roots[0].Topology().FaceCount())
	_, err := visit.Faces(visit.BreadthFirst[struct{}](), visit.Roots[struct{}](roots...),
		func(v *visit.Visitor[topology.Face, struct{}]) {
			dist[v.Element().Index()] = v.Depth()
			v.VisitInternalNeighbors()
		}, opts...)
	if err != nil {
		return nil, fmt.Errorf("FaceDistances: %w", err)
	}
	return dist, nil
}

// VertexRings groups vertex indices by their distance from root, ring 0
// holding the root alone. maxDepth > 0 bounds the number of rings after the
// root; 0 walks everything reachable. Within a ring vertices appear in the
// order they were reached.
func VertexRings(root topology.Vertex, maxDepth int, opts ...visit.Option) ([][]int, error) {
	if err := checkVertices([]topology.Vertex{root}); err != nil {
		return nil, fmt.Errorf("VertexRings: %w", err)
	}
	var rings [][]int
	opts = append(append([]visit.Option(nil), opts...), visit.WithMaxDepth(maxDepth))
	_, err := visit.Vertices(visit.BreadthFirst[struct{}](), visit.Roots[struct{}](root),
		func(v *visit.Visitor[topology.Vertex, struct{}]) {
			if v.Depth() == len(rings) {
				rings = append(rings, nil)
			}
			rings[v.Depth()] = append(rings[v.Depth()], v.Element().Index())
			v.VisitAllNeighbors()
		}, opts...)
	if err != nil {
		return nil, fmt.Errorf("VertexRings: %w", err)
	}
	return rings, nil
}
