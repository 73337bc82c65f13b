package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/meshwalk/algorithms"
	"github.com/katalvlaran/meshwalk/builder"
)

// ExampleShortestFacePath crosses a row of four tiles.
func ExampleShortestFacePath() {
	top, _ := builder.Build(builder.Grid(1, 4))

	path, total, _ := algorithms.ShortestFacePath(top.Face(0), top.Face(3), nil)
	for _, e := range path {
		fmt.Printf("%d->%d ", e.NearFace().Index(), e.FarFace().Index())
	}
	fmt.Println("cost", total)
	// Output: 0->1 1->2 2->3 cost 3
}

// ExampleComponents labels two separate meshes built together.
func ExampleComponents() {
	top, _ := builder.Build(builder.Grid(1, 2), builder.HexGrid(1, 2))

	labels, n, _ := algorithms.Components(top)
	fmt.Println(n, labels[:top.InternalFaceCount()])
	// Output: 2 [0 0 1 1]
}

// ExampleVertexRings lists the vertices around a fan hub.
func ExampleVertexRings() {
	top, _ := builder.Build(builder.Fan(5))

	rings, _ := algorithms.VertexRings(top.Vertex(0), 1)
	fmt.Println(len(rings[0]), len(rings[1]))
	// Output: 1 5
}
