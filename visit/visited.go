// SPDX-License-Identifier: MIT

package visit

import "github.com/bits-and-blooms/bitset"

// VisitedSet records committed element indices for one traversal.
// Indices outside [0, Len()) read as unvisited and are ignored on write.
type VisitedSet struct {
	bits *bitset.BitSet
	n    int
}

// NewVisitedSet returns an all-false set over n indices.
func NewVisitedSet(n int) *VisitedSet {
	if n < 0 {
		n = 0
	}
	return &VisitedSet{bits: bitset.New(uint(n)), n: n}
}

func (s *VisitedSet) inRange(i int) bool { return i >= 0 && i < s.n }

// IsVisited reports whether index i is marked.
func (s *VisitedSet) IsVisited(i int) bool {
	return s.inRange(i) && s.bits.Test(uint(i))
}

// MarkVisited marks index i.
func (s *VisitedSet) MarkVisited(i int) {
	if s.inRange(i) {
		s.bits.Set(uint(i))
	}
}

// ClearVisited unmarks index i.
func (s *VisitedSet) ClearVisited(i int) {
	if s.inRange(i) {
		s.bits.Clear(uint(i))
	}
}

// Len returns the number of indices the set covers.
func (s *VisitedSet) Len() int { return s.n }

// Count returns the number of marked indices.
func (s *VisitedSet) Count() int { return int(s.bits.Count()) }
