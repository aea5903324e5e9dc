// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and Builder tests.
//   - Keep assertions in one place so each test reads as data in, grid out.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// MustGrid BUILDS a Dense from literal rows or fails the test.
func MustGrid[T any](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	b := matrix.NewBuilder[T]()
	for _, row := range rows {
		b.Push(row)
	}
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

// Seq RETURNS an r×c int matrix holding 1..r*c in row-major order.
func Seq(t *testing.T, r, c int) *matrix.Dense[int] {
	t.Helper()
	data := make([]int, r*c)
	for k := range data {
		data[k] = k + 1
	}
	m, err := matrix.NewDenseFrom(data, r, c)
	require.NoError(t, err)

	return m
}

// ToGrid COPIES m into a [][]T using the public Row accessor.
func ToGrid[T any](t *testing.T, m *matrix.Dense[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

// RequireGrid ASSERTS shape and contents of m against want.
func RequireGrid[T any](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	require.Equal(t, want, ToGrid(t, m))
}

// shapes is the shared table of dimensions for property-style tests.
var shapes = []struct{ r, c int }{
	{1, 1}, {1, 5}, {5, 1}, {2, 2}, {2, 3}, {3, 2}, {3, 3}, {4, 7},
}

// outOfRange lists coordinates outside a 2×3 matrix.
var outOfRange = [][2]int{
	{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {2, 3}, {5, 5}, {-1, -1},
}
