package queue_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshwalk/queue"
)

func drain[T any](q queue.Discipline[T]) []T {
	var out []T
	for !q.Empty() {
		v, ok := q.Pop()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestStack_LIFO(t *testing.T) {
	s := queue.NewStack[int]()
	for i := 1; i <= 4; i++ {
		s.Push(i)
	}
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int{4, 3, 2, 1}, drain[int](s))

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestStack_NilInterfaceItem(t *testing.T) {
	s := queue.NewStack[error]()
	s.Push(nil)
	assert.Equal(t, 1, s.Len())

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.True(t, s.Empty())
}

func TestOrdered_Priority(t *testing.T) {
	q := queue.NewOrdered(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 4, 2, 3} {
		q.Push(v)
	}
	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, drain[int](q))
}

type tagged struct {
	rank int
	name string
}

func TestOrdered_TiesPopInInsertionOrder(t *testing.T) {
	// strict and non-strict predicates must agree
	preds := map[string]func(a, b tagged) bool{
		"strict":     func(a, b tagged) bool { return a.rank < b.rank },
		"non-strict": func(a, b tagged) bool { return a.rank <= b.rank },
	}
	for name, before := range preds {
		t.Run(name, func(t *testing.T) {
			q := queue.NewOrdered(before)
			q.Push(tagged{1, "a"})
			q.Push(tagged{0, "x"})
			q.Push(tagged{1, "b"})
			q.Push(tagged{1, "c"})
			q.Push(tagged{0, "y"})

			var names []string
			for _, v := range drain[tagged](q) {
				names = append(names, v.name)
			}
			assert.Equal(t, []string{"x", "y", "a", "b", "c"}, names)
		})
	}
}

func TestOrdered_Empty(t *testing.T) {
	q := queue.NewOrdered(func(a, b string) bool { return a < b })
	assert.True(t, q.Empty())
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestRandom_CoversEveryItem(t *testing.T) {
	q := queue.NewRandom[int](queue.SeededRand(42))
	const n = 100
	for i := 0; i < n; i++ {
		q.Push(i)
	}
	out := drain[int](q)
	require.Len(t, out, n)

	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	for i := range sorted {
		assert.Equal(t, i, sorted[i])
	}
	assert.NotEqual(t, sorted, out, "100 items popped in push order")
}

func TestRandom_SeedReproduces(t *testing.T) {
	run := func(seed int64) []int {
		q := queue.NewRandom[int](queue.SeededRand(seed))
		for i := 0; i < 32; i++ {
			q.Push(i)
		}
		return drain[int](q)
	}
	assert.Equal(t, run(7), run(7))
	assert.Equal(t, run(0), run(1), "seed 0 maps to the default seed")
}

func TestConstructors_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { queue.NewOrdered[int](nil) })
	assert.Panics(t, func() { queue.NewRandom[int](nil) })
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, queue.DeriveSeed(5, 1), queue.DeriveSeed(5, 1))
	seen := map[int64]bool{}
	for stream := uint64(0); stream < 64; stream++ {
		s := queue.DeriveSeed(5, stream)
		assert.False(t, seen[s], "stream %d collides", stream)
		seen[s] = true
	}
	assert.NotEqual(t, queue.DeriveSeed(5, 0), queue.DeriveSeed(6, 0))
}
