// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Topology construction from polygon index lists.
// Determinism:
//   - Half-edges are numbered face by face, corner by corner, then external
//     half-edges in the order of the interior edges they close.

package topology

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// edgeKey identifies a directed edge u→v during construction.
type edgeKey struct{ from, to int }

// New builds a Topology over vertexCount vertices from counter-clockwise
// polygons, each given as a list of vertex indices.
//
// Implementation:
//   - Stage 1: Validate every polygon independently; collect all problems.
//   - Stage 2: Emit one half-edge per polygon side and link next/prev.
//   - Stage 3: Pair twins; sides without a partner become boundary sides.
//   - Stage 4: Close every boundary loop with an external face.
//   - Stage 5: Build vertex rings and reject isolated or pinched vertices.
//
// Errors:
//   - A *multierror.Error whose members wrap ErrNoVertices, ErrDegenerateFace,
//     ErrVertexIndex, ErrDuplicateEdge, ErrNonManifoldVertex or ErrIsolatedVertex.
//
// Complexity:
//   - Time O(V + E), Memory O(V + E).
func New(vertexCount int, faces [][]int) (*Topology, error) {
	if vertexCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoVertices, vertexCount)
	}
	if err := validateFaces(vertexCount, faces); err != nil {
		return nil, err
	}

	t := &Topology{internal: len(faces)}

	// Stage 2: interior half-edges.
	sides := 0
	for _, f := range faces {
		sides += len(f)
	}
	t.edges = make([]halfEdge, 0, 2*sides)
	t.faceEdge = make([]int, 0, len(faces)+1)
	t.faceSides = make([]int, 0, len(faces)+1)
	byKey := make(map[edgeKey]int, sides)

	var errs *multierror.Error
	for fi, f := range faces {
		base := len(t.edges)
		n := len(f)
		t.faceEdge = append(t.faceEdge, base)
		t.faceSides = append(t.faceSides, n)
		for k := 0; k < n; k++ {
			h := base + k
			t.edges = append(t.edges, halfEdge{
				origin: f[k],
				face:   fi,
				twin:   none,
				next:   base + (k+1)%n,
				prev:   base + (k+n-1)%n,
			})
			key := edgeKey{from: f[k], to: f[(k+1)%n]}
			if other, dup := byKey[key]; dup {
				errs = multierror.Append(errs, fmt.Errorf("%w: %d→%d in faces %d and %d",
					ErrDuplicateEdge, key.from, key.to, t.edges[other].face, fi))
				continue
			}
			byKey[key] = h
		}
	}
	if errs != nil {
		return nil, errs.ErrorOrNil()
	}

	// Stage 3: twins.
	interior := len(t.edges)
	for h := 0; h < interior; h++ {
		if t.edges[h].twin != none {
			continue
		}
		to := t.edges[t.edges[h].next].origin
		if g, ok := byKey[edgeKey{from: to, to: t.edges[h].origin}]; ok {
			t.edges[h].twin = g
			t.edges[g].twin = h
		}
	}

	// Stage 4: external half-edges and boundary loops.
	if err := t.closeBoundaries(interior); err != nil {
		return nil, err
	}

	// Stage 5: vertex rings.
	if err := t.buildRings(vertexCount); err != nil {
		return nil, err
	}

	return t, nil
}

// validateFaces checks polygon shape and index range without building anything.
func validateFaces(vertexCount int, faces [][]int) error {
	var errs *multierror.Error
	for fi, f := range faces {
		if len(f) < 3 {
			errs = multierror.Append(errs, fmt.Errorf("%w: face %d has %d corners", ErrDegenerateFace, fi, len(f)))
			continue
		}
		seen := make(map[int]struct{}, len(f))
		for _, v := range f {
			if v < 0 || v >= vertexCount {
				errs = multierror.Append(errs, fmt.Errorf("%w: face %d references %d (count %d)",
					ErrVertexIndex, fi, v, vertexCount))
				continue
			}
			if _, dup := seen[v]; dup {
				errs = multierror.Append(errs, fmt.Errorf("%w: face %d repeats vertex %d", ErrDegenerateFace, fi, v))
				continue
			}
			seen[v] = struct{}{}
		}
	}

	return errs.ErrorOrNil()
}

// closeBoundaries adds a twin for every interior half-edge that has none and
// links those twins into loops, one external face per loop.
func (t *Topology) closeBoundaries(interior int) error {
	// outgoing external half-edge per vertex; a second one means two boundary
	// gaps meet at the vertex, which a single fan cannot represent.
	extOut := make(map[int]int)
	var errs *multierror.Error
	for h := 0; h < interior; h++ {
		if t.edges[h].twin != none {
			continue
		}
		x := len(t.edges)
		from := t.edges[t.edges[h].next].origin
		t.edges = append(t.edges, halfEdge{origin: from, face: none, twin: h, next: none, prev: none})
		t.edges[h].twin = x
		if _, dup := extOut[from]; dup {
			errs = multierror.Append(errs, fmt.Errorf("%w: vertex %d has more than one boundary gap",
				ErrNonManifoldVertex, from))
			continue
		}
		extOut[from] = x
	}
	if errs != nil {
		return errs.ErrorOrNil()
	}

	for x := interior; x < len(t.edges); x++ {
		to := t.edges[t.edges[x].twin].origin
		nx := extOut[to]
		t.edges[x].next = nx
		t.edges[nx].prev = x
	}

	for x := interior; x < len(t.edges); x++ {
		if t.edges[x].face != none {
			continue
		}
		fi := len(t.faceEdge)
		n := 0
		for h := x; ; {
			t.edges[h].face = fi
			n++
			h = t.edges[h].next
			if h == x {
				break
			}
		}
		t.faceEdge = append(t.faceEdge, x)
		t.faceSides = append(t.faceSides, n)
	}

	return nil
}

// buildRings picks a first outgoing edge per vertex and measures its ring.
func (t *Topology) buildRings(vertexCount int) error {
	t.vertexEdge = make([]int, vertexCount)
	t.vertexDegree = make([]int, vertexCount)
	outgoing := make([]int, vertexCount)
	for i := range t.vertexEdge {
		t.vertexEdge[i] = none
	}
	for h := range t.edges {
		o := t.edges[h].origin
		outgoing[o]++
		// interior half-edges precede external ones, so the first seen is
		// the lowest-index interior edge
		if t.vertexEdge[o] == none {
			t.vertexEdge[o] = h
		}
	}

	var errs *multierror.Error
	for v := 0; v < vertexCount; v++ {
		first := t.vertexEdge[v]
		if first == none {
			errs = multierror.Append(errs, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v))
			continue
		}
		n := 0
		for h := first; ; {
			n++
			h = t.edges[t.edges[h].prev].twin
			if h == first || n > outgoing[v] {
				break
			}
		}
		if n != outgoing[v] {
			errs = multierror.Append(errs, fmt.Errorf("%w: vertex %d ring has %d of %d edges",
				ErrNonManifoldVertex, v, n, outgoing[v]))
			continue
		}
		t.vertexDegree[v] = n
	}

	return errs.ErrorOrNil()
}
