// SPDX-License-Identifier: MIT
//
// File: relax.go
// Role: Label-correcting vertex costs driven by RevisitNeighbor.

package algorithms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

// VertexCosts returns the cheapest cost from any root to every vertex,
// pricing each directed edge with cost (nil means 1). Unreachable vertices
// get +Inf, and so do vertices a visit.WithMaxDepth limit keeps out of
// reach.
//
// The walk runs in arbitrary order, so a vertex may be reached first along
// an expensive route. Whenever a cheaper route to an already visited vertex
// appears, the vertex is revisited and its neighbours are relaxed again.
// Items made obsolete by a later improvement are ignored when popped, so
// they never commit a vertex ahead of its better pending item.
//
// Errors: ErrNoSeeds, ErrInvalidRoot, ErrNegativeCost,
// visit.ErrTopologyMismatch.
//
// Complexity: O(V·E) worst case; near O(V + E) on tile meshes.
func VertexCosts(roots []topology.Vertex, cost func(topology.VertexEdge) float64, opts ...visit.Option) ([]float64, error) {
	if err := checkVertices(roots); err != nil {
		return nil, fmt.Errorf("VertexCosts: %w", err)
	}
	top := roots[0].Topology()
	for i, r := range roots {
		if r.Topology() != top {
			return nil, fmt.Errorf("VertexCosts: root %d: %w", i, visit.ErrTopologyMismatch)
		}
	}
	if cost == nil {
		cost = func(topology.VertexEdge) float64 { return 1 }
	}

	best := make([]float64, top.VertexCount())
	for i := range best {
		best[i] = math.Inf(1)
	}
	for _, r := range roots {
		best[r.Index()] = 0
	}

	var negative error
	_, err := visit.Vertices(visit.Arbitrary[float64](), visit.Roots[float64](roots...),
		func(v *visit.Visitor[topology.Vertex, float64]) {
			d := v.Distance()
			if d > best[v.Element().Index()] {
				v.Ignore()
				return
			}
			for _, e := range v.Element().Edges() {
				c := cost(e)
				if c < 0 {
					negative = fmt.Errorf("%w: %g across edge %d", ErrNegativeCost, c, e.Index())
					v.Break()
					return
				}
				far := e.FarVertex()
				if nd := d + c; nd < best[far.Index()] && v.RevisitNeighbor(far, nd) {
					best[far.Index()] = nd
				}
			}
		}, opts...)
	switch {
	case err != nil:
		return nil, fmt.Errorf("VertexCosts: %w", err)
	case negative != nil:
		return nil, fmt.Errorf("VertexCosts: %w", negative)
	}
	return best, nil
}
