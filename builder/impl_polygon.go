// SPDX-License-Identifier: MIT
// Package: meshwalk/builder
//
// impl_polygon.go: Polygon(n) and Fan(n).
//
// Contract:
//   • n ≥ MinPolygonSides (else ErrTooFewSides).
//   • Polygon: vertices base..base+n-1 counter-clockwise, one face.
//   • Fan: hub vertex first, then the rim; n triangles (hub, rim i, rim i+1).

package builder

import "fmt"

// Polygon returns a Constructor for a single n-sided face. Its vertex graph
// is the cycle C_n.
func Polygon(n int) Constructor {
	return func(s *Soup) error {
		if n < MinPolygonSides {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPolygon, n, MinPolygonSides, ErrTooFewSides)
		}
		base := s.AddVertices(n)
		corners := make([]int, n)
		for i := range corners {
			corners[i] = base + i
		}
		s.AddFace(corners...)

		return nil
	}
}

// Fan returns a Constructor for n triangles sharing one hub vertex and
// closing into a disc (the wheel W_{n+1} as a mesh).
func Fan(n int) Constructor {
	return func(s *Soup) error {
		if n < MinPolygonSides {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodFan, n, MinPolygonSides, ErrTooFewSides)
		}
		hub := s.AddVertices(n + 1)
		for i := 0; i < n; i++ {
			s.AddFace(hub, hub+1+i, hub+1+(i+1)%n)
		}

		return nil
	}
}
