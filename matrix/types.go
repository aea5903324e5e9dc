// SPDX-License-Identifier: MIT

// Package matrix: domain types and capability interfaces.
// This file intentionally contains ONLY types: the coordinate pair, the shape
// contract and the four capability groups (Slice, Transform, Search, Exec).
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "iter"

// Index is a (row, column) coordinate, zero-based.
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// Shaped is the dimension-only contract shared by every matrix.
// Complexity: all methods O(1).
type Shaped interface {
	// Rows returns the number of rows (>= 1 for a valid matrix).
	Rows() int

	// Cols returns the number of columns (>= 1 for a valid matrix).
	Cols() int
}

// Slicer extracts and inserts rows, columns and rectangular areas.
// Areas use inclusive corners (r1,c1) top-left and (r2,c2) bottom-right.
type Slicer[T any] interface {
	Shaped

	// Row returns a copy of row i.
	Row(i int) ([]T, error)

	// Col returns a copy of column j.
	Col(j int) ([]T, error)

	// Area copies the inclusive region [r1..r2] x [c1..c2] into a new matrix.
	Area(r1, c1, r2, c2 int) (*Dense[T], error)

	// ReplaceArea overwrites the inclusive region with the cells of src.
	ReplaceArea(r1, c1, r2, c2 int, src *Dense[T]) error
}

// Transformer reshapes and reorders a whole matrix.
// Reshape, Transpose and the rotations return new matrices; flips work in place.
type Transformer[T any] interface {
	Shaped

	// Reshape relabels the row-major sequence under new dimensions.
	Reshape(rows, cols int) (*Dense[T], error)

	// Transpose returns the cols x rows matrix with result[j][i] = m[i][j].
	Transpose() *Dense[T]

	// FlipHorizontal mirrors rows top-to-bottom in place.
	FlipHorizontal()

	// FlipVertical mirrors columns left-to-right in place.
	FlipVertical()
}

// Searcher scans cells with a caller-supplied match predicate.
// For comparable element types use the package functions Has, Count and IndicesOf.
type Searcher[T any] interface {
	Shaped

	// HasFunc reports whether any cell satisfies match.
	HasFunc(match func(T) bool) bool

	// CountFunc returns the number of cells satisfying match.
	CountFunc(match func(T) bool) int

	// IndicesFunc returns the coordinates of matching cells in row-major order.
	IndicesFunc(match func(T) bool) []Index
}

// Executor applies callbacks to every cell in row-major order.
type Executor[T any] interface {
	Shaped

	// Apply replaces every cell v with f(v).
	Apply(f func(T) T)

	// ApplyWith replaces every cell a with f(a, b), b the same cell of other.
	ApplyWith(other *Dense[T], f func(a, b T) T) error

	// RefApply replaces every cell with f(&cell).
	RefApply(f func(*T) T)

	// RefApplyWith replaces every cell with f(&cell, otherCell).
	RefApplyWith(other *Dense[T], f func(a *T, b T) T) error
}

// Matrix is the union of all capability groups plus cell access.
type Matrix[T any] interface {
	Slicer[T]
	Transformer[T]
	Searcher[T]
	Executor[T]

	// At returns a copy of the value at (row, col).
	At(row, col int) (T, error)

	// Set stores v at (row, col).
	Set(row, col int, v T) error

	// All yields every cell with its coordinate in row-major order.
	All() iter.Seq2[Index, T]
}
