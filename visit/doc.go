// SPDX-License-Identifier: MIT

// Package visit is a queue-driven traversal engine over the elements of a
// topology.Topology: vertices, vertex-edges, faces and face-edges.
//
// One generic Visitor[E, D] serves every element kind. The kind is supplied
// as an Adjacency[E] strategy (VertexKind, VertexEdgeKind, FaceKind,
// FaceEdgeKind); D is an optional per-element distance or state value that
// is threaded through the queue and, for some orders, drives it.
//
// The engine does not decide which neighbours to explore. For every element
// it pops, it calls the caller's VisitFunc, and the callback pushes
// neighbours through the Visitor's mutators:
//
//	VisitNeighbor / VisitNeighborWith          guarded push (skipped if visited)
//	VisitNeighborIncludingVisited              unguarded push
//	RevisitNeighbor                            push, then clear visited bit
//	VisitAllNeighbors[...], ...Except, ...ExceptSource, VisitInternalNeighbors
//	Ignore()                                   do not mark this element visited
//	Break()                                    stop after this callback
//
// The single-neighbour pushes report whether an item was queued; a guard
// or the WithMaxDepth limit can refuse one.
//
// Loop
//
//  1. Pop the next Item from the order's queue.
//  2. If its target is already visited, drop it (stale entry).
//  3. Expose element, depth and distance; call the callback.
//  4. Unless Ignore was called, mark the target visited.
//     If Break was called, stop; pending items are abandoned.
//
// When two pending items target the same unvisited element, the first one
// popped is the one reported; the other is dropped as stale later.
//
// Orders
//
//	Arbitrary      LIFO stack
//	BreadthFirst   a.Depth <= b.Depth
//	DepthFirst     a.Depth >= b.Depth
//	ShortestFirst  a.Distance <= b.Distance
//	LongestFirst   a.Distance >= b.Distance
//	Custom         caller predicate over Items
//	Random         uniform pick driven by an injected *rand.Rand
//
// Edge kinds
//
// For VertexEdgeKind and FaceEdgeKind the queue is keyed by the edge that was
// followed, but visited state is kept per far element. The near element of
// every root edge is marked visited before the first pop, and
// VisitAllNeighborsExceptSource skips the twin of the arrival edge
// (except at depth 0, where nothing has been arrived through).
//
// Hazards
//
// A callback that keeps calling RevisitNeighbor around a cycle never
// terminates; the engine does not detect it. A Visitor is single-use and not
// safe for concurrent use; independent Visitors may share one Topology.
package visit
