// SPDX-License-Identifier: MIT

package queue

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// entry pairs an item with its insertion sequence for tie-breaking.
type entry[T any] struct {
	item T
	seq  uint64
}

// Ordered pops the pending item ranked first by a caller predicate.
type Ordered[T any] struct {
	heap   *binaryheap.Heap
	before func(a, b T) bool
	seq    uint64
}

// NewOrdered returns an empty container ordered by before(a, b), which
// reports whether a should pop ahead of b. It panics on a nil predicate.
//
// The predicate is turned into a three-way comparison: a sorts first when
// before(a, b) holds and before(b, a) does not; when both or neither hold
// the items tie and the earlier push pops first.
func NewOrdered[T any](before func(a, b T) bool) *Ordered[T] {
	if before == nil {
		panic("queue: NewOrdered(nil)")
	}
	q := &Ordered[T]{before: before}
	q.heap = binaryheap.NewWith(func(x, y interface{}) int {
		a, b := x.(entry[T]), y.(entry[T])
		ab, ba := q.before(a.item, b.item), q.before(b.item, a.item)
		switch {
		case ab && !ba:
			return -1
		case ba && !ab:
			return 1
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})
	return q
}

// Push adds item to the pending set.
func (q *Ordered[T]) Push(item T) {
	q.heap.Push(entry[T]{item: item, seq: q.seq})
	q.seq++
}

// Pop removes the first-ranked item.
func (q *Ordered[T]) Pop() (T, bool) {
	v, ok := q.heap.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(entry[T]).item, true
}

// Peek returns the first-ranked item without removing it.
func (q *Ordered[T]) Peek() (T, bool) {
	v, ok := q.heap.Peek()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(entry[T]).item, true
}

// Empty reports whether no items are pending.
func (q *Ordered[T]) Empty() bool { return q.heap.Empty() }

// Len returns the number of pending items.
func (q *Ordered[T]) Len() int { return q.heap.Size() }
