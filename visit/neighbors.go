// SPDX-License-Identifier: MIT
//
// File: neighbors.go
// Role: Callback mutators that queue neighbours of the current element.
// Policy:
//   - Every push lands at Depth()+1.
//   - Guarded forms skip neighbours whose target is already visited.
//   - Forms without an explicit distance carry Distance() forward.

package visit

// VisitNeighbor queues n with the current distance unless n is visited.
// It reports whether an item was queued.
func (v *Visitor[E, D]) VisitNeighbor(n E) bool { return v.VisitNeighborWith(n, v.distance) }

// VisitNeighborWith queues n carrying d unless n is visited or the depth
// limit forbids it, and reports whether an item was queued.
func (v *Visitor[E, D]) VisitNeighborWith(n E, d D) bool {
	if v.IsVisited(n) {
		v.stats.Guarded++
		return false
	}
	return v.push(v.adj.Key(n), v.depth+1, d)
}

// VisitNeighborIncludingVisited queues n carrying d even if n is visited.
// A visited target is dropped as stale when popped unless something clears
// it first. Only the depth limit can refuse the push.
func (v *Visitor[E, D]) VisitNeighborIncludingVisited(n E, d D) bool {
	return v.push(v.adj.Key(n), v.depth+1, d)
}

// RevisitNeighbor clears n's visited mark and queues it carrying d. It is
// the relaxation step of label-correcting searches; a callback that revisits
// around a cycle forever never terminates.
//
// When the depth limit refuses the push, n keeps its mark and false is
// returned; callers tracking a best value per element should only store it
// on true.
func (v *Visitor[E, D]) RevisitNeighbor(n E, d D) bool {
	if !v.push(v.adj.Key(n), v.depth+1, d) {
		return false
	}
	v.visited.ClearVisited(v.adj.Target(n))
	v.stats.Revisits++
	return true
}

// sweep queues neighbours of the current element, optionally skipping
// external ones and the one keyed skip.
func (v *Visitor[E, D]) sweep(d D, guarded, internalOnly bool, skip int) {
	v.adj.Neighbors(v.current, func(n E, internal bool) {
		if internalOnly && !internal {
			return
		}
		if skip != noKey && v.adj.Key(n) == skip {
			return
		}
		if guarded {
			v.VisitNeighborWith(n, d)
			return
		}
		v.VisitNeighborIncludingVisited(n, d)
	})
}

// source returns the key ExceptSource sweeps skip; roots have none.
func (v *Visitor[E, D]) source() int {
	if v.depth == 0 {
		return noKey
	}
	return v.adj.Backtrack(v.current)
}

// VisitAllNeighbors queues every unvisited neighbour with the current distance.
func (v *Visitor[E, D]) VisitAllNeighbors() { v.sweep(v.distance, true, false, noKey) }

// VisitAllNeighborsWith queues every unvisited neighbour carrying d.
func (v *Visitor[E, D]) VisitAllNeighborsWith(d D) { v.sweep(d, true, false, noKey) }

// VisitAllNeighborsIncludingVisited queues every neighbour carrying d.
func (v *Visitor[E, D]) VisitAllNeighborsIncludingVisited(d D) { v.sweep(d, false, false, noKey) }

// VisitAllNeighborsExcept queues every unvisited neighbour other than x.
func (v *Visitor[E, D]) VisitAllNeighborsExcept(x E) {
	v.sweep(v.distance, true, false, v.adj.Key(x))
}

// VisitAllNeighborsExceptWith queues every unvisited neighbour other than x,
// carrying d.
func (v *Visitor[E, D]) VisitAllNeighborsExceptWith(x E, d D) {
	v.sweep(d, true, false, v.adj.Key(x))
}

// VisitAllNeighborsExceptSource queues every unvisited neighbour except the
// edge leading back along the arrival edge. Element kinds have no arrival
// edge and behave like VisitAllNeighbors; so do roots.
func (v *Visitor[E, D]) VisitAllNeighborsExceptSource() {
	v.sweep(v.distance, true, false, v.source())
}

// VisitAllNeighborsExceptSourceWith is VisitAllNeighborsExceptSource carrying d.
func (v *Visitor[E, D]) VisitAllNeighborsExceptSourceWith(d D) {
	v.sweep(d, true, false, v.source())
}

// VisitInternalNeighbors queues every unvisited neighbour on the internal
// side of the mesh: across non-boundary edges for vertex kinds, into
// internal faces for face kinds.
func (v *Visitor[E, D]) VisitInternalNeighbors() { v.sweep(v.distance, true, true, noKey) }

// VisitInternalNeighborsWith is VisitInternalNeighbors carrying d.
func (v *Visitor[E, D]) VisitInternalNeighborsWith(d D) { v.sweep(d, true, true, noKey) }

// VisitInternalNeighborsExceptSource combines the internal filter with the
// arrival-edge exclusion.
func (v *Visitor[E, D]) VisitInternalNeighborsExceptSource() {
	v.sweep(v.distance, true, true, v.source())
}
