// SPDX-License-Identifier: MIT
//
// File: fill.go
// Role: Flood fill and connected components over internal faces.

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

// FloodFill returns the internal faces connected to root through faces
// accepted by accept, root first. A rejected root yields an empty result.
// A nil accept takes every internal face.
//
// The order of the result past the root is unspecified.
//
// Complexity: O(F + E).
func FloodFill(root topology.Face, accept func(topology.Face) bool, opts ...visit.Option) ([]int, error) {
	if err := checkFaces([]topology.Face{root}); err != nil {
		return nil, fmt.Errorf("FloodFill: %w", err)
	}
	if accept == nil {
		accept = func(topology.Face) bool { return true }
	}
	var out []int
	_, err := visit.Faces(visit.Arbitrary[struct{}](), visit.Roots[struct{}](root),
		func(v *visit.Visitor[topology.Face, struct{}]) {
			if !accept(v.Element()) {
				return
			}
			out = append(out, v.Element().Index())
			v.VisitInternalNeighbors()
		}, opts...)
	if err != nil {
		return nil, fmt.Errorf("FloodFill: %w", err)
	}
	return out, nil
}

// Components labels every internal face with the id of its connected group
// and returns the labels with the number of groups. Ids are dense, assigned
// in order of each group's lowest face index; external faces get -1.
//
// One traversal labels everything: every internal face is a root carrying
// its own index, and the stack order finishes a whole group before the next
// root is popped, so each group inherits the index of the root that opened it.
//
// Complexity: O(F + E).
func Components(t *topology.Topology, opts ...visit.Option) ([]int, int, error) {
	if t == nil || t.InternalFaceCount() == 0 {
		return nil, 0, fmt.Errorf("Components: %w", ErrNoSeeds)
	}
	n := t.InternalFaceCount()
	roots := make([]visit.Root[topology.Face, int], 0, n)
	for i := n - 1; i >= 0; i-- {
		roots = append(roots, visit.Root[topology.Face, int]{Element: t.Face(i), Distance: i})
	}

	labels := filled(t.FaceCount())
	dense := make(map[int]int)
	_, err := visit.Faces(visit.Arbitrary[int](), roots, func(v *visit.Visitor[topology.Face, int]) {
		id, ok := dense[v.Distance()]
		if !ok {
			id = len(dense)
			dense[v.Distance()] = id
		}
		labels[v.Element().Index()] = id
		v.VisitInternalNeighbors()
	}, opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("Components: %w", err)
	}
	return labels, len(dense), nil
}
