// SPDX-License-Identifier: MIT

// Package matrix - Search capability group.
//
// The methods take a match predicate so they work for any T; the package-level
// Has/Count/IndicesOf add the comparable bound only where equality is needed.
// Every scan is linear over the row-major buffer.

package matrix

// HasFunc reports whether any cell satisfies match. Stops at the first hit.
// Complexity: O(r*c).
func (m *Dense[T]) HasFunc(match func(T) bool) bool {
	for k := range m.data {
		if match(m.data[k]) {
			return true
		}
	}

	return false
}

// CountFunc returns the number of cells satisfying match.
// Complexity: O(r*c).
func (m *Dense[T]) CountFunc(match func(T) bool) int {
	n := 0
	for k := range m.data {
		if match(m.data[k]) {
			n++
		}
	}

	return n
}

// IndicesFunc returns the coordinates of all cells satisfying match,
// in row-major scan order. The result is empty (not nil) when nothing matches.
// Complexity: O(r*c).
func (m *Dense[T]) IndicesFunc(match func(T) bool) []Index {
	out := make([]Index, 0)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if match(m.data[base+j]) {
				out = append(out, Index{Row: i, Col: j})
			}
		}
	}

	return out
}

// equalTo builds the equality predicate shared by Has, Count and IndicesOf.
func equalTo[T comparable](entry T) func(T) bool {
	return func(v T) bool { return v == entry }
}

// Has reports whether any cell of s equals entry.
func Has[T comparable](s Searcher[T], entry T) bool {
	return s.HasFunc(equalTo(entry))
}

// Count returns the number of cells of s equal to entry.
func Count[T comparable](s Searcher[T], entry T) int {
	return s.CountFunc(equalTo(entry))
}

// IndicesOf returns every coordinate of s holding entry, in row-major order.
func IndicesOf[T comparable](s Searcher[T], entry T) []Index {
	return s.IndicesFunc(equalTo(entry))
}
