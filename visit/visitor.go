// SPDX-License-Identifier: MIT
//
// File: visitor.go
// Role: Visitor construction and the pop/visit/commit loop.
// Determinism:
//   - For Arbitrary and the comparator orders the whole traversal is a pure
//     function of the topology, the roots and the callback.

package visit

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/meshwalk/queue"
	"github.com/katalvlaran/meshwalk/topology"
)

// Visitor is one single-use traversal. The callback receives it as context.
type Visitor[E, D any] struct {
	adj     Adjacency[E]
	top     *topology.Topology
	pending queue.Discipline[Item[D]]
	visited *VisitedSet
	fn      VisitFunc[E, D]
	opts    Options
	roots   []Root[E, D]

	state    State
	current  E
	depth    int
	distance D
	ignore   bool
	stop     bool

	stats Stats
}

// New prepares a traversal of the elements reachable from roots.
//
// The topology is taken from the roots. With no roots, or roots whose
// topology is nil, Run performs no callbacks.
//
// Errors: ErrNilAdjacency, ErrNilOrder, ErrNilVisitFunc, ErrOptionViolation,
// ErrTopologyMismatch.
func New[E, D any](adj Adjacency[E], order Order[D], roots []Root[E, D], fn VisitFunc[E, D], opts ...Option) (*Visitor[E, D], error) {
	switch {
	case adj == nil:
		return nil, ErrNilAdjacency
	case order == nil:
		return nil, ErrNilOrder
	case fn == nil:
		return nil, ErrNilVisitFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var top *topology.Topology
	for i, r := range roots {
		rt := adj.Topology(r.Element)
		if i == 0 {
			top = rt
			continue
		}
		if rt != top {
			return nil, fmt.Errorf("%w: root %d", ErrTopologyMismatch, i)
		}
	}

	return &Visitor[E, D]{
		adj:     adj,
		top:     top,
		pending: order(),
		visited: NewVisitedSet(adj.Count(top)),
		fn:      fn,
		opts:    o,
		roots:   roots,
	}, nil
}

// Run drives the traversal to exhaustion or Break.
//
// Complexity: O(P log P) for comparator orders and O(P) otherwise, where P
// is the number of pushes the callback makes.
func (v *Visitor[E, D]) Run() (Stats, error) {
	if v.state != Idle {
		return v.stats, ErrAlreadyRun
	}
	v.state = Running
	log := v.opts.Logger
	if v.top == nil {
		v.state = Terminated
		log.Debug("visit: nothing to traverse")
		return v.stats, nil
	}

	// roots: near elements of root edges count as already visited
	for _, r := range v.roots {
		v.visited.MarkVisited(v.adj.Source(r.Element))
	}
	for _, r := range v.roots {
		v.push(v.adj.Key(r.Element), 0, r.Distance)
	}
	log.WithFields(logrus.Fields{
		"roots":    len(v.roots),
		"elements": v.visited.Len(),
	}).Debug("visit: traversal started")

	v.loop()

	v.state = Terminated
	log.WithFields(logrus.Fields{
		"visits":   v.stats.Visits,
		"pushes":   v.stats.Pushes,
		"stale":    v.stats.Stale,
		"broken":   v.stats.Broken,
		"maxDepth": v.stats.MaxDepth,
	}).Debug("visit: traversal terminated")

	return v.stats, nil
}

// loop pops until the queue drains or the callback breaks.
func (v *Visitor[E, D]) loop() {
	for !v.pending.Empty() {
		item, _ := v.pending.Pop()
		v.opts.OnPop(item.Key, item.Depth)

		e := v.adj.Element(v.top, item.Key)
		target := v.adj.Target(e)
		if v.visited.IsVisited(target) {
			v.stats.Stale++
			continue
		}

		v.current, v.depth, v.distance = e, item.Depth, item.Distance
		v.ignore, v.stop = false, false
		v.stats.Visits++
		if item.Depth > v.stats.MaxDepth {
			v.stats.MaxDepth = item.Depth
		}

		v.fn(v)

		if v.ignore {
			v.stats.Ignored++
		} else {
			v.visited.MarkVisited(target)
		}
		if v.stop {
			v.stats.Broken = true
			v.opts.Logger.WithField("pending", v.pending.Len()).Debug("visit: break requested")
			return
		}
	}
}

// push queues key at depth unless the depth limit forbids it.
func (v *Visitor[E, D]) push(key, depth int, d D) bool {
	if v.opts.MaxDepth > 0 && depth > v.opts.MaxDepth {
		v.stats.Guarded++
		return false
	}
	v.stats.Pushes++
	v.opts.OnPush(key, depth)
	v.pending.Push(Item[D]{Key: key, Depth: depth, Distance: d})
	return true
}

// Element returns the element being visited.
func (v *Visitor[E, D]) Element() E { return v.current }

// Depth returns the depth of the element being visited; roots are 0.
func (v *Visitor[E, D]) Depth() int { return v.depth }

// Distance returns the distance carried by the element being visited.
func (v *Visitor[E, D]) Distance() D { return v.distance }

// Topology returns the topology being traversed, or nil when there is none.
func (v *Visitor[E, D]) Topology() *topology.Topology { return v.top }

// State returns the lifecycle stage.
func (v *Visitor[E, D]) State() State { return v.state }

// IsVisited reports whether n's target is already committed.
func (v *Visitor[E, D]) IsVisited(n E) bool { return v.visited.IsVisited(v.adj.Target(n)) }

// Visited exposes the visited set. Callers must treat it as read-only while
// the traversal runs.
func (v *Visitor[E, D]) Visited() *VisitedSet { return v.visited }

// Stats returns the counters gathered so far.
func (v *Visitor[E, D]) Stats() Stats { return v.stats }

// Ignore leaves the current element unvisited after the callback returns,
// so a later push of it is visited again.
func (v *Visitor[E, D]) Ignore() { v.ignore = true }

// Break ends the traversal once the callback returns. The visited mark of
// the current element is still applied; pending items are abandoned.
func (v *Visitor[E, D]) Break() { v.stop = true }
