// SPDX-License-Identifier: MIT

package queue

import "math/rand"

// defaultSeed is used by SeededRand when the caller passes 0.
const defaultSeed int64 = 1

// SeededRand returns a deterministic *rand.Rand; seed 0 maps to a fixed
// default so the zero value of a config still reproduces.
func SeededRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream id into an independent seed
// (SplitMix64 finalizer), for giving concurrent traversals their own rngs.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Random pops a uniformly chosen pending item.
type Random[T any] struct {
	items []T
	rng   *rand.Rand
}

// NewRandom returns an empty container drawing from rng. It panics on nil.
// rng is not safe for concurrent use; give every traversal its own.
func NewRandom[T any](rng *rand.Rand) *Random[T] {
	if rng == nil {
		panic("queue: NewRandom(nil)")
	}
	return &Random[T]{rng: rng}
}

// Push adds item to the pending set.
func (q *Random[T]) Push(item T) { q.items = append(q.items, item) }

// Pop removes an item chosen uniformly among those pending.
func (q *Random[T]) Pop() (T, bool) {
	n := len(q.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	i := q.rng.Intn(n)
	item := q.items[i]
	q.items[i] = q.items[n-1]
	var zero T
	q.items[n-1] = zero
	q.items = q.items[:n-1]
	return item, true
}

// Empty reports whether no items are pending.
func (q *Random[T]) Empty() bool { return len(q.items) == 0 }

// Len returns the number of pending items.
func (q *Random[T]) Len() int { return len(q.items) }
