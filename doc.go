// SPDX-License-Identifier: MIT

// Package meshwalk builds tile meshes as half-edge topologies and walks them
// with one generic, queue-driven traversal engine.
//
// What is in the box?
//
//	• topology:   immutable half-edge mesh with Vertex, VertexEdge, Face and
//	              FaceEdge handles; boundary loops closed by external faces
//	• builder:    polygons, fans, quad, triangle and hex grids, composable
//	• queue:      stack, comparator-ordered and random pending queues
//	• visit:      the traversal engine: arbitrary, breadth-first, depth-first,
//	              shortest/longest-distance-first, custom and random orders,
//	              with Ignore, Revisit and Break
//	• algorithms: distance fields, flood fill, components, region growing,
//	              face paths and label-correcting vertex costs
//	• cmd/meshwalk: a CLI over all of the above
//
// Quick example, breadth-first over the square A-B-C-D:
//
//	top, _ := builder.Build(builder.Polygon(4))
//	visit.Vertices(visit.BreadthFirst[int](), visit.Roots[int](top.Vertex(0)),
//		func(v *visit.Visitor[topology.Vertex, int]) {
//			fmt.Println(v.Element().Index(), v.Depth())
//			v.VisitAllNeighbors()
//		})
//
// prints 0 0, 1 1, 3 1, 2 2.
//
// The callback, not the engine, decides which neighbours to explore, so the
// same loop serves pathfinding, flood fill, region growing and other
// procedural passes.
//
//	go get github.com/katalvlaran/meshwalk
package meshwalk
