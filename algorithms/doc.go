// SPDX-License-Identifier: MIT

// Package algorithms implements procedural passes over a topology.Topology,
// each expressed as a visit traversal.
//
// It provides free-function implementations of:
//
//   - Distance fields
//     - VertexDistances, FaceDistances (breadth-first depth per element)
//     - VertexRings (vertices grouped by depth, bounded)
//
//   - Fills and labelling
//     - FloodFill (faces connected through accepted faces)
//     - Components (connected groups of internal faces)
//     - GrowRegions (random-order region growing from seed faces)
//
//   - Costs
//     - ShortestFacePath (cheapest chain of face crossings)
//     - VertexCosts (label-correcting relaxation over vertex-edges)
//
// Every function works on internal faces only; external faces close the
// boundary loops and are never labelled. Results are dense slices indexed
// by element index, using -1 (or +Inf for costs) for unreached elements.
// Extra visit.Options (logger, hooks) are passed through to the traversal.
package algorithms
