// SPDX-License-Identifier: MIT

// Package queue provides the pending-item containers that decide the order of
// a topology traversal.
//
// Every container implements Discipline[T]:
//
//	Push(item)            add a pending item
//	Pop() (item, ok)      remove the next item; ok == false when empty
//	Empty() bool
//	Len() int
//
// Implementations
//
//   - Stack:   LIFO (gods arraystack). Deterministic "arbitrary" order.
//   - Ordered: pops the item a before(a, b) predicate ranks first (gods binary
//     heap). The predicate should be a total preorder; either the strict (<)
//     or the non-strict (<=) form works. Items the predicate cannot separate
//     pop in insertion order, which callers must not rely on.
//   - Random:  pops a uniformly chosen pending item using an injected
//     *rand.Rand, so a fixed seed reproduces the order.
//
// Complexity
//
//   - Stack:   O(1) Push/Pop.
//   - Ordered: O(log n) Push/Pop.
//   - Random:  O(1) Push/Pop (index draw + swap-remove).
//
// None of the containers is safe for concurrent use.
package queue
