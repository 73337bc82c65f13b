// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Cheapest chain of face crossings between two internal faces.

package algorithms

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

// ShortestFacePath returns the face-edges crossed on the cheapest route
// from src to dst through internal faces, and the total cost. cost prices
// one crossing; nil means every crossing costs 1. src == dst yields an
// empty path.
//
// Implementation:
//   - Shortest-first face-edge walk; the sides of src are the roots.
//   - The first time a face is reached its arrival edge is recorded; with
//     non-negative costs that arrival is the cheapest.
//   - Break as soon as dst is reached, then follow arrival edges back.
//
// Errors: ErrInvalidRoot, ErrNegativeCost, ErrNoPath,
// visit.ErrTopologyMismatch.
//
// Complexity: O(E log E).
func ShortestFacePath(src, dst topology.Face, cost func(topology.FaceEdge) float64, opts ...visit.Option) ([]topology.FaceEdge, float64, error) {
	if err := checkFaces([]topology.Face{src, dst}); err != nil {
		return nil, 0, fmt.Errorf("ShortestFacePath: %w", err)
	}
	if src.Topology() != dst.Topology() {
		return nil, 0, fmt.Errorf("ShortestFacePath: %w", visit.ErrTopologyMismatch)
	}
	if src == dst {
		return nil, 0, nil
	}
	if cost == nil {
		cost = func(topology.FaceEdge) float64 { return 1 }
	}

	var (
		negative error
		roots    []visit.Root[topology.FaceEdge, float64]
	)
	price := func(e topology.FaceEdge) (float64, bool) {
		c := cost(e)
		if c < 0 {
			negative = fmt.Errorf("%w: %g across edge %d", ErrNegativeCost, c, e.Index())
			return 0, false
		}
		return c, true
	}
	for _, e := range src.Edges() {
		if e.IsOuterBoundary() {
			continue
		}
		c, ok := price(e)
		if !ok {
			return nil, 0, fmt.Errorf("ShortestFacePath: %w", negative)
		}
		roots = append(roots, visit.Root[topology.FaceEdge, float64]{Element: e, Distance: c})
	}

	arrival := filled(src.Topology().FaceCount())
	total := 0.0
	_, err := visit.FaceEdges(visit.ShortestFirst[float64](), roots,
		func(v *visit.Visitor[topology.FaceEdge, float64]) {
			e := v.Element()
			far := e.FarFace()
			arrival[far.Index()] = e.Index()
			if far == dst {
				total = v.Distance()
				v.Break()
				return
			}
			back := e.Twin()
			for _, n := range far.Edges() {
				if n == back || n.IsOuterBoundary() {
					continue
				}
				c, ok := price(n)
				if !ok {
					v.Break()
					return
				}
				v.VisitNeighborWith(n, v.Distance()+c)
			}
		}, opts...)
	switch {
	case err != nil:
		return nil, 0, fmt.Errorf("ShortestFacePath: %w", err)
	case negative != nil:
		return nil, 0, fmt.Errorf("ShortestFacePath: %w", negative)
	case arrival[dst.Index()] == unreached:
		return nil, 0, fmt.Errorf("ShortestFacePath: face %d to %d: %w", src.Index(), dst.Index(), ErrNoPath)
	}

	t := src.Topology()
	var path []topology.FaceEdge
	for f := dst; f != src; {
		e := t.FaceEdge(arrival[f.Index()])
		path = append(path, e)
		f = e.NearFace()
	}
	slices.Reverse(path)
	return path, total, nil
}
