// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Items, roots, callback type, lifecycle state, stats and errors.

package visit

import (
	"errors"

	"github.com/katalvlaran/meshwalk/topology"
)

// Sentinel errors returned by New and Run.
var (
	// ErrNilAdjacency is returned when no Adjacency strategy is given.
	ErrNilAdjacency = errors.New("visit: adjacency strategy is nil")

	// ErrNilOrder is returned when no Order is given.
	ErrNilOrder = errors.New("visit: order is nil")

	// ErrNilVisitFunc is returned when no callback is given.
	ErrNilVisitFunc = errors.New("visit: visit func is nil")

	// ErrTopologyMismatch is returned when roots come from different topologies.
	ErrTopologyMismatch = errors.New("visit: roots belong to different topologies")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("visit: invalid option supplied")

	// ErrAlreadyRun is returned by a second call to Run.
	ErrAlreadyRun = errors.New("visit: visitor already run")
)

// Item is one pending queue entry. Key is the element index for element
// kinds and the followed edge index for edge kinds.
type Item[D any] struct {
	Key      int
	Depth    int
	Distance D
}

// Root seeds a traversal at depth 0.
type Root[E, D any] struct {
	Element  E
	Distance D
}

// Roots wraps elems as roots carrying the zero distance.
//
//	visit.Roots[int](top.Vertex(0), top.Vertex(5))
func Roots[D, E any](elems ...E) []Root[E, D] {
	var zero D
	return RootsAt(zero, elems...)
}

// RootsAt wraps elems as roots carrying distance d.
func RootsAt[D, E any](d D, elems ...E) []Root[E, D] {
	out := make([]Root[E, D], len(elems))
	for i, e := range elems {
		out[i] = Root[E, D]{Element: e, Distance: d}
	}
	return out
}

// VisitFunc is called once per popped, unvisited element. It inspects the
// current element through v and pushes neighbours with v's mutators.
type VisitFunc[E, D any] func(v *Visitor[E, D])

// State is the lifecycle stage of a Visitor.
type State int

const (
	// Idle means constructed but not run.
	Idle State = iota
	// Running means the loop is in progress.
	Running
	// Terminated means the queue drained or Break was called.
	Terminated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Stats summarises one traversal.
type Stats struct {
	Visits   int  // callbacks invoked
	Pushes   int  // items queued, roots included
	Guarded  int  // pushes skipped by the visited guard or the depth limit
	Stale    int  // popped items dropped because the target was visited
	Revisits int  // RevisitNeighbor calls that queued an item
	Ignored  int  // callbacks that called Ignore
	Broken   bool // Break ended the traversal
	MaxDepth int  // deepest depth reported to the callback
}

// Adjacency adapts one element kind of a Topology to the engine.
//
// Element kinds (vertices, faces) are keyed and tracked by their own index.
// Edge kinds are keyed by edge index and tracked by the far element.
type Adjacency[E any] interface {
	// Count sizes the visited set for t.
	Count(t *topology.Topology) int
	// Element turns a queue key back into a handle.
	Element(t *topology.Topology, key int) E
	// Key is the queue key of e.
	Key(e E) int
	// Target is the visited-set index e commits.
	Target(e E) int
	// Source is the visited-set index pre-marked for a root e, or -1.
	Source(e E) int
	// Backtrack is the key of the neighbour leading back where e came from,
	// or -1 when the kind has no notion of arrival.
	Backtrack(e E) int
	// Topology returns the owning topology of e.
	Topology(e E) *topology.Topology
	// Neighbors calls yield for each neighbour of e in ring order, reporting
	// whether the neighbour lies on the internal side of the mesh.
	Neighbors(e E, yield func(n E, internal bool))
}
