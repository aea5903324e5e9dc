// SPDX-License-Identifier: MIT

// Package matrix - row-by-row construction of Dense matrices.
//
// Contract:
//   - Push/Row record rows in order; the builder tracks the row count and the
//     width of the LAST row pushed.
//   - Build concatenates rows in push order and adopts the result through
//     NewDenseFrom(flat, rowCount, lastWidth).
//   - Width consistency is validated late, in Build, unless WithStrictRows is set.

package matrix

import "fmt"

// Builder accumulates rows for a Dense matrix.
// Build copies the pushed rows, so the result never aliases a pushed slice.
//
// Build requires every row to match the last row's width. Ragged rows are
// rejected even when their total happens to equal rows*width, e.g. rows
// [1 2 3], [4], [5 6] fail with ErrInvalidDataLen instead of forming a 3×2 grid.
type Builder[T any] struct {
	rows    int   // number of pushed rows
	columns int   // width of the most recently pushed row
	buffer  [][]T // pushed rows, in push order
	opts    builderOptions
	err     error // sticky error (strict mode only)
}

// NewBuilder returns an empty builder configured by opts.
// Complexity: O(1) plus the optional row-capacity allocation.
func NewBuilder[T any](opts ...BuilderOption) *Builder[T] {
	o := gatherBuilderOptions(opts...)

	return &Builder[T]{
		buffer: make([][]T, 0, o.rowCapacity),
		opts:   o,
	}
}

// Push appends a row. The slice is kept as given (not copied) until Build.
//
// Behavior highlights:
//   - Default mode accepts any width; mismatches surface in Build.
//   - Strict mode records the first width mismatch as a sticky error and
//     ignores every push after it.
//
// Complexity:
//   - Time O(1) amortized.
func (b *Builder[T]) Push(row []T) {
	if b.err != nil {
		return
	}
	if b.opts.strictRows && b.rows > 0 && len(row) != len(b.buffer[0]) {
		b.err = fmt.Errorf("Builder.Push: row %d has %d values, want %d: %w",
			b.rows, len(row), len(b.buffer[0]), ErrInvalidDataLen)
		return
	}
	b.columns = len(row)
	b.rows++
	b.buffer = append(b.buffer, row)
}

// Row is the chaining form of Push:
//
//	m, err := NewBuilder[int]().Row([]int{1, 2}).Row([]int{3, 4}).Build()
func (b *Builder[T]) Row(row []T) *Builder[T] {
	b.Push(row)

	return b
}

// Rows returns the number of rows pushed so far.
func (b *Builder[T]) Rows() int { return b.rows }

// Err returns the sticky strict-mode error, or nil.
func (b *Builder[T]) Err() error { return b.err }

// Build assembles the pushed rows into a Dense matrix.
//
// Implementation:
//   - Stage 1: return the sticky error if strict mode recorded one.
//   - Stage 2: reject zero rows or a zero-width last row (ErrInvalidDimensions).
//   - Stage 3: compare every row width against the last row (ErrInvalidDataLen).
//   - Stage 4: concatenate rows and adopt the flat buffer.
//
// Behavior highlights:
//   - Stage 3 also rejects ragged inputs whose total length happens to equal
//     rows*lastWidth, which a pure length check would let through.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidDataLen.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (b *Builder[T]) Build() (*Dense[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.rows == 0 || b.columns == 0 {
		return nil, fmt.Errorf("Builder.Build: %d rows of width %d: %w", b.rows, b.columns, ErrInvalidDimensions)
	}
	var i int
	for i = 0; i < b.rows; i++ {
		if len(b.buffer[i]) != b.columns {
			return nil, fmt.Errorf("Builder.Build: row %d has %d values, want %d: %w",
				i, len(b.buffer[i]), b.columns, ErrInvalidDataLen)
		}
	}
	flat := make([]T, 0, b.rows*b.columns)
	for i = 0; i < b.rows; i++ {
		flat = append(flat, b.buffer[i]...)
	}

	return NewDenseFrom(flat, b.rows, b.columns)
}
