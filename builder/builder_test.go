package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshwalk/builder"
	"github.com/katalvlaran/meshwalk/topology"
)

// internalNeighbors counts the internal faces adjacent to f.
func internalNeighbors(f topology.Face) int {
	n := 0
	for _, e := range f.Edges() {
		if e.FarFace().IsInternal() {
			n++
		}
	}
	return n
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantF     int // internal faces
		wantExt   int // external faces
		wantEdges int // half-edges
		check     func(t *testing.T, top *topology.Topology)
	}{
		{
			name: "Polygon(4)", ctor: builder.Polygon(4),
			wantV: 4, wantF: 1, wantExt: 1, wantEdges: 8,
			check: func(t *testing.T, top *topology.Topology) {
				for _, v := range top.Vertices() {
					assert.Equal(t, 2, v.NeighborCount())
				}
			},
		},
		{
			name: "Fan(6)", ctor: builder.Fan(6),
			wantV: 7, wantF: 6, wantExt: 1, wantEdges: 24,
			check: func(t *testing.T, top *topology.Topology) {
				assert.Equal(t, 6, top.Vertex(0).NeighborCount())
				for _, f := range top.InternalFaces() {
					assert.Equal(t, 2, internalNeighbors(f))
				}
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3),
			wantV: 12, wantF: 6, wantExt: 1, wantEdges: 34,
			check: func(t *testing.T, top *topology.Topology) {
				// corner, edge and centre cells
				assert.Equal(t, 2, internalNeighbors(top.Face(0)))
				assert.Equal(t, 3, internalNeighbors(top.Face(1)))
				assert.Equal(t, 4, top.Vertex(5).NeighborCount())
			},
		},
		{
			name: "TriGrid(1,1)", ctor: builder.TriGrid(1, 1),
			wantV: 4, wantF: 2, wantExt: 1, wantEdges: 10,
			check: func(t *testing.T, top *topology.Topology) {
				assert.Equal(t, 3, top.Vertex(0).NeighborCount())
				assert.Equal(t, 1, internalNeighbors(top.Face(0)))
			},
		},
		{
			name: "HexGrid(2,2)", ctor: builder.HexGrid(2, 2),
			wantV: 16, wantF: 4, wantExt: 1, wantEdges: 2 * 19,
			check: func(t *testing.T, top *topology.Topology) {
				assert.Equal(t, 2, internalNeighbors(top.Face(0)))
				assert.Equal(t, 3, internalNeighbors(top.Face(2)))
				for _, f := range top.InternalFaces() {
					assert.Equal(t, 6, f.NeighborCount())
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			top, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, top.VertexCount(), "vertices")
			assert.Equal(t, tc.wantF, top.InternalFaceCount(), "internal faces")
			assert.Equal(t, tc.wantExt, top.ExternalFaceCount(), "external faces")
			assert.Equal(t, tc.wantEdges, top.EdgeCount(), "half-edges")
			assert.NoError(t, top.Validate())
			tc.check(t, top)
		})
	}
}

func TestBuild_ComposesDisjointComponents(t *testing.T) {
	top, err := builder.Build(builder.Polygon(3), builder.Grid(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 7, top.VertexCount())
	assert.Equal(t, 2, top.InternalFaceCount())
	// one boundary loop per component
	assert.Equal(t, 2, top.ExternalFaceCount())
	assert.Equal(t, 0, internalNeighbors(top.Face(0)))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"polygon too small", []builder.Constructor{builder.Polygon(2)}, builder.ErrTooFewSides},
		{"fan too small", []builder.Constructor{builder.Fan(1)}, builder.ErrTooFewSides},
		{"grid rows", []builder.Constructor{builder.Grid(0, 3)}, builder.ErrBadDimensions},
		{"trigrid cols", []builder.Constructor{builder.TriGrid(2, 0)}, builder.ErrBadDimensions},
		{"hexgrid", []builder.Constructor{builder.HexGrid(-1, 1)}, builder.ErrBadDimensions},
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"empty soup", nil, topology.ErrNoVertices},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			top, err := builder.Build(tc.cons...)
			assert.Nil(t, top)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSoup_Custom(t *testing.T) {
	// a constructor producing a flipped second triangle is rejected by topology
	flipped := func(s *builder.Soup) error {
		b := s.AddVertices(4)
		s.AddFace(b, b+1, b+2)
		s.AddFace(b, b+1, b+3)
		return nil
	}
	_, err := builder.Build(flipped)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, topology.ErrDuplicateEdge)
}
