// SPDX-License-Identifier: MIT
//
// File: regions.go
// Role: Random-order region growing over face-edges.

package algorithms

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/meshwalk/queue"
	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

// GrowRegions partitions the internal faces reachable from seeds into
// regions, returning for every face the index of the seed whose region
// claimed it (-1 for external and unreachable faces).
//
// Regions grow one crossing at a time in an order drawn from rng, which
// gives irregular borders; the same rng seed reproduces the partition.
// A nil rng uses queue.SeededRand(0). A face listed twice keeps its first
// seed index.
//
// Implementation:
//   - Every seed face is labelled directly.
//   - Each internal side of each seed becomes a root edge carrying the seed
//     index; the seed itself counts as visited.
//   - Visiting an edge labels its far face with the carried index and pushes
//     the far face's other internal sides.
//
// Complexity: O(E) pushes, O(1) each.
func GrowRegions(t *topology.Topology, seeds []topology.Face, rng *rand.Rand, opts ...visit.Option) ([]int, error) {
	if err := checkFaces(seeds); err != nil {
		return nil, fmt.Errorf("GrowRegions: %w", err)
	}
	for i, s := range seeds {
		if s.Topology() != t {
			return nil, fmt.Errorf("GrowRegions: seed %d: %w", i, visit.ErrTopologyMismatch)
		}
	}
	if rng == nil {
		rng = queue.SeededRand(0)
	}

	labels := filled(t.FaceCount())
	var roots []visit.Root[topology.FaceEdge, int]
	for i, s := range seeds {
		if labels[s.Index()] != unreached {
			continue
		}
		labels[s.Index()] = i
		for _, e := range s.Edges() {
			if !e.IsOuterBoundary() {
				roots = append(roots, visit.Root[topology.FaceEdge, int]{Element: e, Distance: i})
			}
		}
	}

	_, err := visit.FaceEdges(visit.Random[int](rng), roots, func(v *visit.Visitor[topology.FaceEdge, int]) {
		labels[v.Element().FarFace().Index()] = v.Distance()
		v.VisitInternalNeighborsExceptSource()
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("GrowRegions: %w", err)
	}
	return labels, nil
}
