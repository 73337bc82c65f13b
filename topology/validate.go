// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate re-checks the half-edge invariants of t and reports every
// violation it finds, each wrapping ErrCorrupt:
//
//   - twin(twin(h)) == h and twin(h) != h
//   - next(prev(h)) == h and prev(next(h)) == h
//   - face(next(h)) == face(h)
//   - origin(next(h)) == origin(twin(h))
//   - ring sizes match the stored degrees and side counts
//
// A Topology returned by New always validates; the check exists for
// fixtures assembled by hand in tests and for debugging tools.
//
// Complexity: O(V + E).
func (t *Topology) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil topology", ErrCorrupt)
	}
	var errs *multierror.Error
	n := len(t.edges)
	inRange := func(i int) bool { return i >= 0 && i < n }

	for h, e := range t.edges {
		if !inRange(e.twin) || !inRange(e.next) || !inRange(e.prev) {
			errs = multierror.Append(errs, fmt.Errorf("%w: half-edge %d has a dangling link", ErrCorrupt, h))
			continue
		}
		if e.twin == h || t.edges[e.twin].twin != h {
			errs = multierror.Append(errs, fmt.Errorf("%w: half-edge %d twin %d is not mutual", ErrCorrupt, h, e.twin))
		}
		if t.edges[e.prev].next != h || t.edges[e.next].prev != h {
			errs = multierror.Append(errs, fmt.Errorf("%w: half-edge %d next/prev are not inverse", ErrCorrupt, h))
		}
		if t.edges[e.next].face != e.face {
			errs = multierror.Append(errs, fmt.Errorf("%w: half-edge %d leaves face %d", ErrCorrupt, h, e.face))
		}
		if t.edges[e.next].origin != t.edges[e.twin].origin {
			errs = multierror.Append(errs, fmt.Errorf("%w: half-edge %d endpoint mismatch", ErrCorrupt, h))
		}
	}
	if errs != nil {
		return errs.ErrorOrNil()
	}

	for f := range t.faceEdge {
		sides := 0
		for h := t.faceEdge[f]; ; {
			sides++
			h = t.edges[h].next
			if h == t.faceEdge[f] || sides > n {
				break
			}
		}
		if sides != t.faceSides[f] {
			errs = multierror.Append(errs, fmt.Errorf("%w: face %d has %d sides, recorded %d",
				ErrCorrupt, f, sides, t.faceSides[f]))
		}
	}
	for v := range t.vertexEdge {
		degree := 0
		for h := t.vertexEdge[v]; ; {
			if t.edges[h].origin != v {
				errs = multierror.Append(errs, fmt.Errorf("%w: vertex %d ring leaves through %d", ErrCorrupt, v, h))
				break
			}
			degree++
			h = t.edges[t.edges[h].prev].twin
			if h == t.vertexEdge[v] || degree > n {
				break
			}
		}
		if degree != t.vertexDegree[v] {
			errs = multierror.Append(errs, fmt.Errorf("%w: vertex %d has degree %d, recorded %d",
				ErrCorrupt, v, degree, t.vertexDegree[v]))
		}
	}

	return errs.ErrorOrNil()
}
