// SPDX-License-Identifier: MIT

package queue

// Discipline is a container of pending items with a fixed pop policy.
type Discipline[T any] interface {
	// Push adds item to the pending set.
	Push(item T)
	// Pop removes and returns the next item per the policy.
	// It returns the zero T and false when the container is empty.
	Pop() (T, bool)
	// Empty reports whether no items are pending.
	Empty() bool
	// Len returns the number of pending items.
	Len() int
}

var (
	_ Discipline[int] = (*Stack[int])(nil)
	_ Discipline[int] = (*Ordered[int])(nil)
	_ Discipline[int] = (*Random[int])(nil)
)
