// SPDX-License-Identifier: MIT

package queue

import "github.com/emirpasic/gods/stacks/arraystack"

// Stack pops the most recently pushed item first.
type Stack[T any] struct {
	items *arraystack.Stack
}

// NewStack returns an empty LIFO container.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{items: arraystack.New()}
}

// Push adds item on top.
func (s *Stack[T]) Push(item T) { s.items.Push(item) }

// Pop removes the top item.
func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.items.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	// a nil interface value does not assert to an interface T
	item, _ := v.(T)
	return item, true
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return s.items.Empty() }

// Len returns the number of items.
func (s *Stack[T]) Len() int { return s.items.Size() }
