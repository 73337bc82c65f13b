// SPDX-License-Identifier: MIT
// Package: meshwalk/builder
//
// api.go: Soup, Constructor and the Build orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshwalk/topology"
)

// Soup accumulates vertices and counter-clockwise faces for topology.New.
type Soup struct {
	vertices int
	faces    [][]int
}

// AddVertices reserves n new vertices and returns the index of the first.
func (s *Soup) AddVertices(n int) int {
	base := s.vertices
	s.vertices += n
	return base
}

// AddFace appends one counter-clockwise face. The corner slice is copied.
func (s *Soup) AddFace(corners ...int) {
	s.faces = append(s.faces, append([]int(nil), corners...))
}

// VertexCount returns the number of reserved vertices.
func (s *Soup) VertexCount() int { return s.vertices }

// FaceCount returns the number of faces added so far.
func (s *Soup) FaceCount() int { return len(s.faces) }

// Constructor appends one mesh component to a Soup. Constructors validate
// their parameters before touching the soup and return sentinel errors.
type Constructor func(s *Soup) error

// Build runs every constructor in order on a fresh Soup and converts the
// result into a Topology.
//
// Errors:
//   - Constructor errors are returned wrapped as "Build: %w".
//   - A nil constructor or a topology.New failure wraps ErrConstructFailed.
//
// Complexity: Σ constructor cost + O(V + E) for topology.New.
func Build(cons ...Constructor) (*topology.Topology, error) {
	s := &Soup{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	t, err := topology.New(s.vertices, s.faces)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return t, nil
}
