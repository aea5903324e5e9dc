// SPDX-License-Identifier: MIT

// Package matrix - Slice capability group: rows, columns and rectangular areas.
//
// Purpose:
//   - Copy rows/columns out of a matrix.
//   - Extract an inclusive rectangular area into a new, independent Dense.
//   - Write a block back into an area of the same shape.
//
// Determinism:
//   - Areas are traversed row-major over the sub-region, matching the parent layout.

package matrix

import "fmt"

// areaErrorf wraps a sentinel with the method name and both corners.
func areaErrorf(method string, r1, c1, r2, c2 int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", method, r1, c1, r2, c2, err)
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is not in [0,Rows()).
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c]) // one contiguous run in row-major storage

	return out, nil
}

// Col returns a copy of column j, top to bottom.
// Errors: ErrOutOfRange when j is not in [0,Cols()).
// Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j] // stride of c between consecutive rows
	}

	return out, nil
}

// Area copies the inclusive region rows [r1..r2], cols [c1..c2] into a new matrix.
//
// Implementation:
//   - Stage 1: validate corners (bounds first, then ordering).
//   - Stage 2: copy each row segment into a fresh (r2-r1+1)×(c2-c1+1) buffer.
//
// Behavior highlights:
//   - m is not modified; the result shares no storage with m.
//
// Errors:
//   - ErrOutOfRange if a corner is outside m.
//   - ErrBadShape if r2 < r1 or c2 < c1.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func (m *Dense[T]) Area(r1, c1, r2, c2 int) (*Dense[T], error) {
	h, w, err := m.validateArea(r1, c1, r2, c2)
	if err != nil {
		return nil, areaErrorf(ctxArea, r1, c1, r2, c2, err)
	}
	buf := make([]T, h*w)
	var i, src int
	for i = 0; i < h; i++ {
		src = (r1+i)*m.c + c1
		copy(buf[i*w:(i+1)*w], m.data[src:src+w])
	}

	return mustAdopt(buf, h, w), nil
}

// ReplaceArea overwrites the inclusive region rows [r1..r2], cols [c1..c2]
// with the cells of src, row-major.
//
// Implementation:
//   - Stage 1: reject nil src, validate corners, require src shape == area shape.
//   - Stage 2: copy each src row into the matching row segment of m.
//
// Behavior highlights:
//   - Every check runs before the first write, so a failing call leaves m unchanged.
//   - Passing m itself as src is accepted and leaves m unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrBadShape, ErrReplacementMismatch (in that priority).
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (m *Dense[T]) ReplaceArea(r1, c1, r2, c2 int, src *Dense[T]) error {
	if src == nil {
		return areaErrorf(ctxReplace, r1, c1, r2, c2, ErrNilMatrix)
	}
	h, w, err := m.validateArea(r1, c1, r2, c2)
	if err != nil {
		return areaErrorf(ctxReplace, r1, c1, r2, c2, err)
	}
	if src.r != h || src.c != w {
		return fmt.Errorf("Dense.%s: area %dx%d, replacement %dx%d: %w",
			ctxReplace, h, w, src.r, src.c, ErrReplacementMismatch)
	}
	if src == m {
		return nil // only a full-matrix area matches m's own shape
	}
	var i, dst int
	for i = 0; i < h; i++ {
		dst = (r1+i)*m.c + c1
		copy(m.data[dst:dst+w], src.data[i*w:(i+1)*w])
	}

	return nil
}
