package visit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshwalk/builder"
	"github.com/katalvlaran/meshwalk/queue"
	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

// Vertex indices of the Polygon(4) cycle A-B-C-D–A.
const (
	vA = iota
	vB
	vC
	vD
)

func mesh(tb testing.TB, cons ...builder.Constructor) *topology.Topology {
	tb.Helper()
	top, err := builder.Build(cons...)
	require.NoError(tb, err)
	return top
}

// recorder mirrors the pending set of a wrapped queue and counts pops that
// rank behind an item still pending.
type recorder[D comparable] struct {
	inner   queue.Discipline[visit.Item[D]]
	pending []visit.Item[D]
	popped  []visit.Item[D]
	ranks   func(popped, other visit.Item[D]) bool
	bad     int
}

// record wraps order so every pop is checked with ranks(popped, other)
// against all items left pending.
func record[D comparable](order visit.Order[D], ranks func(popped, other visit.Item[D]) bool) (visit.Order[D], *recorder[D]) {
	r := &recorder[D]{ranks: ranks}
	return func() queue.Discipline[visit.Item[D]] {
		r.inner = order()
		return r
	}, r
}

func (r *recorder[D]) Push(it visit.Item[D]) {
	r.pending = append(r.pending, it)
	r.inner.Push(it)
}

func (r *recorder[D]) Pop() (visit.Item[D], bool) {
	it, ok := r.inner.Pop()
	if !ok {
		return it, false
	}
	for i, p := range r.pending {
		if p == it {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			break
		}
	}
	for _, p := range r.pending {
		if !r.ranks(it, p) {
			r.bad++
		}
	}
	r.popped = append(r.popped, it)
	return it, true
}

func (r *recorder[D]) Empty() bool { return r.inner.Empty() }

func (r *recorder[D]) Len() int { return r.inner.Len() }
