package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshwalk/builder"
	"github.com/katalvlaran/meshwalk/topology"
	"github.com/katalvlaran/meshwalk/visit"
)

type vev = visit.Visitor[topology.VertexEdge, int]

func TestVertexEdges_RootNearIsPreMarked(t *testing.T) {
	top := mesh(t, builder.Polygon(4))
	root := top.Vertex(vA).FirstEdge()
	require.Equal(t, vB, root.FarVertex().Index())

	var far, depths []int
	stats, err := visit.VertexEdges(visit.BreadthFirst[int](), visit.Roots[int](root), func(v *vev) {
		e := v.Element()
		far = append(far, e.FarVertex().Index())
		depths = append(depths, v.Depth())
		v.VisitAllNeighborsExceptSource()
	})
	require.NoError(t, err)

	assert.Equal(t, []int{vB, vC, vD}, far, "A is never reported")
	assert.Equal(t, []int{0, 1, 2}, depths)
	assert.Equal(t, 3, stats.Visits)
	assert.Equal(t, 2, stats.Guarded)
}

func TestVertexEdges_ExceptSourceSkipsTwin(t *testing.T) {
	top := mesh(t, builder.Polygon(4))
	root := top.Vertex(vA).FirstEdge()

	walk := func(sweep func(v *vev)) visit.Stats {
		stats, err := visit.VertexEdges(visit.BreadthFirst[int](), visit.Roots[int](root), sweep)
		require.NoError(t, err)
		return stats
	}

	plain := walk(func(v *vev) { v.VisitAllNeighbors() })
	except := walk(func(v *vev) { v.VisitAllNeighborsExceptSource() })
	assert.Equal(t, plain.Visits, except.Visits)
	assert.Equal(t, 4, plain.Guarded)
	assert.Equal(t, 2, except.Guarded)

	var pushed []int
	_, err := visit.VertexEdges(visit.BreadthFirst[int](), visit.Roots[int](root), func(v *vev) {
		if v.Depth() > 0 {
			twin := v.Element().Twin().Index()
			v.VisitAllNeighborsExceptSource()
			assert.NotContains(t, pushed, twin)
			return
		}
		v.VisitAllNeighborsIncludingVisited(0)
	}, visit.WithOnPush(func(key, _ int) { pushed = append(pushed, key) }))
	require.NoError(t, err)
	assert.Contains(t, pushed, root.Twin().Index(), "roots sweep their twin")
}

func TestFaceEdges_InternalExceptSource(t *testing.T) {
	top := mesh(t, builder.Grid(1, 3))
	var root topology.FaceEdge
	for _, e := range top.Face(0).Edges() {
		if e.FarFace().Index() == 1 {
			root = e
		}
	}
	require.True(t, root.IsValid())

	var far, depths []int
	_, err := visit.FaceEdges(visit.BreadthFirst[int](), visit.Roots[int](root),
		func(v *visit.Visitor[topology.FaceEdge, int]) {
			far = append(far, v.Element().FarFace().Index())
			depths = append(depths, v.Depth())
			v.VisitInternalNeighborsExceptSource()
		})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, far)
	assert.Equal(t, []int{0, 1}, depths)
}

func TestFaces_InternalVersusAll(t *testing.T) {
	top := mesh(t, builder.Grid(2, 2))
	ext := top.InternalFaceCount()

	walk := func(internalOnly bool) map[int]int {
		depth := map[int]int{}
		_, err := visit.Faces(visit.BreadthFirst[int](), visit.Roots[int](top.Face(0)),
			func(v *visit.Visitor[topology.Face, int]) {
				depth[v.Element().Index()] = v.Depth()
				if internalOnly {
					v.VisitInternalNeighbors()
					return
				}
				v.VisitAllNeighbors()
			})
		require.NoError(t, err)
		return depth
	}

	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, walk(true))
	all := walk(false)
	assert.Len(t, all, top.FaceCount())
	assert.Equal(t, 1, all[ext])
}

func TestVisitAllNeighborsExcept(t *testing.T) {
	top := mesh(t, builder.Polygon(4))
	var got []int
	_, err := visit.Vertices(visit.BreadthFirst[int](), visit.Roots[int](top.Vertex(vA)), func(v *vv) {
		got = append(got, v.Element().Index())
		if v.Depth() == 0 {
			v.VisitAllNeighborsExcept(top.Vertex(vD))
			return
		}
		v.VisitAllNeighborsExceptWith(top.Vertex(vD), v.Distance()+1)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{vA, vB, vC}, got)
}

func TestVertexKind_InternalNeighbors(t *testing.T) {
	// the centre of a 2x2 grid touches no boundary edge; corners only
	// touch boundary edges
	top := mesh(t, builder.Grid(2, 2))
	var got []int
	_, err := visit.Vertices(visit.BreadthFirst[int](), visit.Roots[int](top.Vertex(4)), func(v *vv) {
		got = append(got, v.Element().Index())
		v.VisitInternalNeighbors()
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{4, 1, 3, 5, 7}, got)
}

func TestVisitNeighbor_CarriesDistance(t *testing.T) {
	top := mesh(t, builder.Polygon(3))
	dist := map[int]float64{}
	_, err := visit.Vertices(visit.ShortestFirst[float64](), visit.RootsAt(1.5, top.Vertex(0)),
		func(v *visit.Visitor[topology.Vertex, float64]) {
			dist[v.Element().Index()] = v.Distance()
			for _, e := range v.Element().Edges() {
				v.VisitNeighbor(e.FarVertex())
			}
		})
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{0: 1.5, 1: 1.5, 2: 1.5}, dist)
}
