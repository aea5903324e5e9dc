// SPDX-License-Identifier: MIT

// Package matrix - Exec capability group: elementwise apply.
//
// Purpose:
//   - In-place map over every cell, single-operand and paired.
//
// Determinism & Side effects:
//   - Row-major order (flat 0..n-1), so callbacks with side effects observe a
//     predictable sequence.
//   - Paired variants validate the other operand before touching any cell.

package matrix

import "fmt"

// Apply replaces every cell v with f(v), row-major.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(T) T) {
	for k := range m.data {
		m.data[k] = f(m.data[k])
	}
}

// ApplyIndexed replaces every cell v at (i,j) with f(i,j,v), row-major.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) ApplyIndexed(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// ApplyWith replaces every cell a of m with f(a, b), b the cell of other at
// the same coordinate.
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrDimensionMismatch when the shapes differ; m is left unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) ApplyWith(other *Dense[T], f func(a, b T) T) error {
	if err := m.validatePaired(other); err != nil {
		return fmt.Errorf("Dense.%s(%dx%d): %w", ctxApply, m.r, m.c, err)
	}
	for k := range m.data {
		m.data[k] = f(m.data[k], other.data[k])
	}

	return nil
}

// RefApply hands f a pointer to each cell and stores f's result back into it.
// f may mutate through the pointer; the returned value is what the cell ends up holding.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) RefApply(f func(*T) T) {
	for k := range m.data {
		m.data[k] = f(&m.data[k])
	}
}

// RefApplyWith is ApplyWith with a pointer to m's cell. The other operand is
// passed by value and is never written.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m unchanged).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) RefApplyWith(other *Dense[T], f func(a *T, b T) T) error {
	if err := m.validatePaired(other); err != nil {
		return fmt.Errorf("Dense.%s(%dx%d): %w", ctxRefApply, m.r, m.c, err)
	}
	for k := range m.data {
		m.data[k] = f(&m.data[k], other.data[k])
	}

	return nil
}
