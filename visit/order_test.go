package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/meshwalk/visit"
)

type cost struct {
	steps   int
	penalty float64
}

func lessCost(a, b cost) bool {
	if a.steps != b.steps {
		return a.steps < b.steps
	}
	return a.penalty < b.penalty
}

func popAll[D any](order visit.Order[D], items ...visit.Item[D]) []visit.Item[D] {
	q := order()
	for _, it := range items {
		q.Push(it)
	}
	var out []visit.Item[D]
	for !q.Empty() {
		it, _ := q.Pop()
		out = append(out, it)
	}
	return out
}

func TestShortestAndLongestFirstBy(t *testing.T) {
	items := []visit.Item[cost]{
		{Key: 0, Distance: cost{2, 0.5}},
		{Key: 1, Distance: cost{1, 9}},
		{Key: 2, Distance: cost{2, 0.1}},
	}
	keys := func(in []visit.Item[cost]) []int {
		var out []int
		for _, it := range in {
			out = append(out, it.Key)
		}
		return out
	}

	assert.Equal(t, []int{1, 2, 0}, keys(popAll(visit.ShortestFirstBy(lessCost), items...)))
	assert.Equal(t, []int{0, 2, 1}, keys(popAll(visit.LongestFirstBy(lessCost), items...)))
}

func TestArbitrary_IsLIFO(t *testing.T) {
	got := popAll(visit.Arbitrary[int](), visit.Item[int]{Key: 1}, visit.Item[int]{Key: 2}, visit.Item[int]{Key: 3})
	assert.Equal(t, 3, got[0].Key)
	assert.Equal(t, 1, got[2].Key)
}

func TestCustom_KeyOrder(t *testing.T) {
	byKey := visit.Custom(func(a, b visit.Item[string]) bool { return a.Key < b.Key })
	got := popAll(byKey, visit.Item[string]{Key: 5}, visit.Item[string]{Key: 1}, visit.Item[string]{Key: 3})
	assert.Equal(t, []int{1, 3, 5}, []int{got[0].Key, got[1].Key, got[2].Key})
}

func TestOrder_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { visit.Custom[int](nil) })
	assert.Panics(t, func() { visit.Random[int](nil) })
	assert.Panics(t, func() { visit.ShortestFirstBy[int](nil) })
	assert.Panics(t, func() { visit.LongestFirstBy[int](nil) })
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", visit.Idle.String())
	assert.Equal(t, "running", visit.Running.String())
	assert.Equal(t, "terminated", visit.Terminated.String())
	assert.Equal(t, "unknown", visit.State(9).String())
}
