// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a generic row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: every accessor returns an error instead of panicking.
//   - Keep deterministic traversal (fixed i→j loops, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; NewDenseFrom: O(1) adoption; At/Set/Ptr/Swap: O(1); Clone/Values: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewDense"     // ctor tag for NewDense
	ctxFrom     = "NewDenseFrom" // ctor tag for NewDenseFrom
	ctxAt       = "At"           // method tag used in error wrappers
	ctxSet      = "Set"          // method tag used in error wrappers
	ctxPtr      = "Ptr"          // method tag used in error wrappers
	ctxSwap     = "Swap"         // method tag used in error wrappers
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxArea     = "Area"
	ctxReplace  = "ReplaceArea"
	ctxReshape  = "Reshape"
	ctxApply    = "ApplyWith"
	ctxRefApply = "RefApplyWith"
)

// productFits reports whether rows*cols is representable as an int.
// Callers pass positive dimensions only.
// Complexity: O(1).
func productFits(rows, cols int) bool {
	return cols <= math.MaxInt/rows
}

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// The sentinel stays matchable through %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; construct with NewDense, NewDenseFrom or Builder.
type Dense[T any] struct {
	r, c int // row and column counts (>= 1)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt conformance.
var (
	_ Matrix[int]    = (*Dense[int])(nil)
	_ fmt.Stringer   = (*Dense[int])(nil)
	_ fmt.GoStringer = (*Dense[int])(nil)
)

// NewDense creates a rows×cols matrix with every cell set to fill.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits an int; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and copy fill into each cell.
//
// Behavior highlights:
//   - Cells receive Go value copies of fill. If T holds references (pointers,
//     slices, maps) the cells share what those references point to.
//
// Errors:
//   - ErrInvalidDimensions (zero or negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int, fill T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 || !productFits(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = fill
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseFrom adopts data as the row-major backing store of a rows×cols matrix.
//
// Implementation:
//   - Stage 1: check rows>0 && cols>0 and no rows*cols overflow; else ErrInvalidDimensions.
//   - Stage 2: check len(data) == rows*cols; else ErrInvalidDataLen.
//   - Stage 3: take data as-is (no copy).
//
// Behavior highlights:
//   - Ownership of data moves to the matrix: the caller must not keep writing
//     through its own reference.
//   - This is the single adoption path used by every operation that returns a
//     new matrix.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidDataLen (in that priority).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom[T any](data []T, rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 || !productFits(rows, cols) {
		return nil, fmt.Errorf("%s(len=%d,%d,%d): %w", ctxFrom, len(data), rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(len=%d,%d,%d): %w", ctxFrom, len(data), rows, cols, ErrInvalidDataLen)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// mustAdopt wraps a buffer the package itself produced with a known-good shape.
// A failure here means an internal size computation is wrong.
func mustAdopt[T any](data []T, rows, cols int) *Dense[T] {
	m, err := NewDenseFrom(data, rows, cols)
	if err != nil {
		panic(fmt.Sprintf("matrix: internal shape invariant violated: %v", err))
	}

	return m
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the element count rows*cols.
// Complexity: O(1).
func (m *Dense[T]) Len() int { return len(m.data) }

// InBounds reports whether (row, col) addresses a cell of m.
// Complexity: O(1).
func (m *Dense[T]) InBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// isNil reports whether m is a typed nil pointer. Safe on a nil receiver.
func (m *Dense[T]) isNil() bool { return m == nil }

// nilChecker is satisfied by every *Dense instantiation.
type nilChecker interface{ isNil() bool }

// SameShape reports whether other has exactly m's dimensions.
// Contents are not compared. A nil other, including a typed nil *Dense of
// any element type, never matches.
// Complexity: O(1).
func (m *Dense[T]) SameShape(other Shaped) bool {
	if other == nil {
		return false
	}
	if nc, ok := other.(nilChecker); ok && nc.isNil() {
		return false
	}

	return m.r == other.Rows() && m.c == other.Cols()
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own name and coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ptr returns a pointer to the cell at (row, col) for in-place reads and writes.
//
// Behavior highlights:
//   - The pointer aliases the backing store; it stays valid as long as m is
//     alive and is not affected by later structure-returning operations,
//     which always allocate their own buffers.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Ptr(row, col int) (*T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxPtr, row, col, err)
	}

	return &m.data[off], nil
}

// Swap exchanges the values at (r1,c1) and (r2,c2).
//
// Implementation:
//   - Stage 1: resolve both offsets; on any failure return before writing.
//   - Stage 2: exchange the two cells.
//
// Behavior highlights:
//   - Atomic with respect to failure: an error leaves m unchanged.
//   - Swapping a cell with itself is a no-op.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Swap(r1, c1, r2, c2 int) error {
	a, err := m.indexOf(r1, c1)
	if err != nil {
		return denseErrorf(ctxSwap, r1, c1, err)
	}
	b, err := m.indexOf(r2, c2)
	if err != nil {
		return denseErrorf(ctxSwap, r2, c2, err)
	}
	m.data[a], m.data[b] = m.data[b], m.data[a]

	return nil
}

// Clone returns a deep copy of the buffer (element values are copied, not cloned).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Values returns a row-major copy of every cell.
// The layout is part of the contract: Values()[i*Cols()+j] == At(i, j).
// Complexity: O(r*c).
func (m *Dense[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// All yields every (Index, value) pair in row-major order.
// Stopping the range early is supported.
// Complexity: O(r*c) for a full range.
func (m *Dense[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		var i, j, base int
		for i = 0; i < m.r; i++ {
			base = i * m.c
			for j = 0; j < m.c; j++ {
				if !yield(Index{Row: i, Col: j}, m.data[base+j]) {
					return
				}
			}
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// It stops early when f returns false. Read-only with respect to m.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// EqualFunc reports whether a and b have the same shape and eq holds for
// every pair of corresponding cells. Nil matrices are equal only to each other.
// Complexity: O(r*c).
func EqualFunc[T any](a, b *Dense[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.SameShape(b) {
		return false
	}
	for k := range a.data {
		if !eq(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b have the same shape and contents.
// Complexity: O(r*c).
func Equal[T comparable](a, b *Dense[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}
