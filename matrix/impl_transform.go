// SPDX-License-Identifier: MIT

// Package matrix - Transform capability group: reshape, transpose, flips, rotations.
//
// Ownership:
//   - Reshape, Transpose and Rotate* return a NEW matrix with its own buffer and
//     leave the receiver untouched; callers that treat them as consuming simply
//     drop the old handle.
//   - FlipHorizontal / FlipVertical rearrange the receiver in place.
//
// Determinism:
//   - Fixed loop orders; no allocation in the in-place flips.

package matrix

import "fmt"

// Reshape returns the same row-major sequence under rows×cols dimensions.
//
// Behavior highlights:
//   - No element moves: Values() of the result equals Values() of m, only the
//     (row, col) addressing changes.
//
// Errors:
//   - ErrReshapeNotPossible unless rows>0, cols>0 and rows*cols == Rows()*Cols()
//     without int overflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Reshape(rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 || !productFits(rows, cols) || rows*cols != len(m.data) {
		return nil, fmt.Errorf("Dense.%s: %dx%d to %dx%d: %w", ctxReshape, m.r, m.c, rows, cols, ErrReshapeNotPossible)
	}

	return mustAdopt(m.Values(), rows, cols), nil
}

// Transpose returns the Cols()×Rows() matrix with result[j][i] = m[i][j].
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	buf := make([]T, len(m.data))
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			buf[j*m.r+i] = m.data[base+j] // (i,j) -> (j,i) in an r-wide layout
		}
	}

	return mustAdopt(buf, m.c, m.r)
}

// FlipHorizontal mirrors rows top-to-bottom in place:
// row i swaps with row Rows()-1-i for i in [0, Rows()/2).
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) FlipHorizontal() {
	var i, j, top, bottom int
	for i = 0; i < m.r/2; i++ {
		top = i * m.c
		bottom = (m.r - 1 - i) * m.c
		for j = 0; j < m.c; j++ {
			m.data[top+j], m.data[bottom+j] = m.data[bottom+j], m.data[top+j]
		}
	}
}

// FlipVertical mirrors columns left-to-right in place:
// column j swaps with column Cols()-1-j for j in [0, Cols()/2).
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) FlipVertical() {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c/2; j++ {
			m.data[base+j], m.data[base+m.c-1-j] = m.data[base+m.c-1-j], m.data[base+j]
		}
	}
}

// Rotate90 returns m rotated a quarter turn clockwise (Cols()×Rows()).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Rotate90() *Dense[T] {
	buf := make([]T, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			buf[j*m.r+(m.r-1-i)] = m.data[i*m.c+j]
		}
	}

	return mustAdopt(buf, m.c, m.r)
}

// Rotate180 returns m rotated a half turn (same shape).
// In row-major storage that is the buffer reversed.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Rotate180() *Dense[T] {
	n := len(m.data)
	buf := make([]T, n)
	for k := 0; k < n; k++ {
		buf[k] = m.data[n-1-k]
	}

	return mustAdopt(buf, m.r, m.c)
}

// Rotate270 returns m rotated a quarter turn counter-clockwise (Cols()×Rows()).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Rotate270() *Dense[T] {
	buf := make([]T, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			buf[(m.c-1-j)*m.r+i] = m.data[i*m.c+j]
		}
	}

	return mustAdopt(buf, m.c, m.r)
}
