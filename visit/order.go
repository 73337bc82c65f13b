// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: Ordering policies. An Order builds a fresh queue per traversal.

package visit

import (
	"cmp"
	"math/rand"

	"github.com/katalvlaran/meshwalk/queue"
)

// Order is a factory for the pending-item queue of one traversal.
type Order[D any] func() queue.Discipline[Item[D]]

// Arbitrary pops the most recently pushed item. The order is deterministic
// but carries no depth or distance meaning.
func Arbitrary[D any]() Order[D] {
	return func() queue.Discipline[Item[D]] { return queue.NewStack[Item[D]]() }
}

// BreadthFirst pops the shallowest pending item.
func BreadthFirst[D any]() Order[D] {
	return Custom(func(a, b Item[D]) bool { return a.Depth <= b.Depth })
}

// DepthFirst pops the deepest pending item.
func DepthFirst[D any]() Order[D] {
	return Custom(func(a, b Item[D]) bool { return a.Depth >= b.Depth })
}

// ShortestFirst pops the pending item with the smallest distance.
func ShortestFirst[D cmp.Ordered]() Order[D] {
	return Custom(func(a, b Item[D]) bool { return a.Distance <= b.Distance })
}

// LongestFirst pops the pending item with the largest distance.
func LongestFirst[D cmp.Ordered]() Order[D] {
	return Custom(func(a, b Item[D]) bool { return a.Distance >= b.Distance })
}

// ShortestFirstBy is ShortestFirst for distance types without a built-in
// order; less must be a strict weak order. It panics on nil.
func ShortestFirstBy[D any](less func(a, b D) bool) Order[D] {
	if less == nil {
		panic("visit: ShortestFirstBy(nil)")
	}
	return Custom(func(a, b Item[D]) bool { return !less(b.Distance, a.Distance) })
}

// LongestFirstBy is LongestFirst for distance types without a built-in
// order. It panics on nil.
func LongestFirstBy[D any](less func(a, b D) bool) Order[D] {
	if less == nil {
		panic("visit: LongestFirstBy(nil)")
	}
	return Custom(func(a, b Item[D]) bool { return !less(a.Distance, b.Distance) })
}

// Custom pops the pending item before ranks first. before should be a total
// preorder over items; ties pop in push order, which callers must not rely
// on. It panics on nil.
func Custom[D any](before func(a, b Item[D]) bool) Order[D] {
	if before == nil {
		panic("visit: Custom(nil)")
	}
	return func() queue.Discipline[Item[D]] { return queue.NewOrdered(before) }
}

// Random pops a pending item chosen uniformly by rng. A seeded rng gives a
// reproducible order. rng is shared by every queue the Order builds, so it
// must not be used by two traversals at once. It panics on nil.
func Random[D any](rng *rand.Rand) Order[D] {
	if rng == nil {
		panic("visit: Random(nil)")
	}
	return func() queue.Discipline[Item[D]] { return queue.NewRandom[Item[D]](rng) }
}
