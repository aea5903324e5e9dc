// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Slice capability group.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowCol(t *testing.T) {
	m := Seq(t, 3, 3)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6, 9}, col)

	// Returned slices are copies.
	row[0] = 0
	col[0] = 0
	v, _ := m.At(1, 0)
	require.Equal(t, 4, v)
	v, _ = m.At(0, 2)
	require.Equal(t, 3, v)
}

func TestRowColOutOfRange(t *testing.T) {
	m := Seq(t, 2, 3)
	for _, i := range []int{-1, 2, 10} {
		_, err := m.Row(i)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Row(%d)", i)
	}
	for _, j := range []int{-1, 3, 10} {
		_, err := m.Col(j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Col(%d)", j)
	}
}

// TestArea covers the inner block, single cells, full copies and strips.
func TestArea(t *testing.T) {
	m := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	cases := []struct {
		name           string
		r1, c1, r2, c2 int
		want           [][]int
	}{
		{"inner 2x2", 1, 1, 2, 2, [][]int{{5, 6}, {8, 9}}},
		{"single cell", 0, 2, 0, 2, [][]int{{3}}},
		{"full", 0, 0, 2, 2, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{"middle row", 1, 0, 1, 2, [][]int{{4, 5, 6}}},
		{"first col", 0, 0, 2, 0, [][]int{{1}, {4}, {7}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := m.Area(tc.r1, tc.c1, tc.r2, tc.c2)
			require.NoError(t, err)
			RequireGrid(t, tc.want, a)
		})
	}
}

func TestAreaIsIndependent(t *testing.T) {
	m := Seq(t, 3, 3)
	a, err := m.Area(0, 0, 1, 1)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
}

func TestAreaErrors(t *testing.T) {
	m := Seq(t, 3, 3)

	_, err := m.Area(0, 0, 3, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Area(-1, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// Reversed corners are rejected, not wrapped around.
	_, err = m.Area(2, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Area(0, 2, 1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// Bounds take priority over ordering.
	_, err = m.Area(2, 2, 0, 5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestReplaceArea(t *testing.T) {
	m := MustGrid(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	repl := MustGrid(t, [][]int{{5, 6}, {8, 9}})

	require.NoError(t, m.ReplaceArea(0, 0, 1, 1, repl))
	RequireGrid(t, [][]int{{5, 6, 3}, {8, 9, 6}, {7, 8, 9}}, m)
}

func TestReplaceAreaErrorsLeaveMatrixUnchanged(t *testing.T) {
	m := Seq(t, 3, 3)
	before := m.Values()

	err := m.ReplaceArea(0, 0, 1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = m.ReplaceArea(0, 0, 1, 1, Seq(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrReplacementMismatch)

	err = m.ReplaceArea(0, 0, 1, 1, Seq(t, 4, 1))
	require.ErrorIs(t, err, matrix.ErrReplacementMismatch)

	err = m.ReplaceArea(1, 1, 3, 3, Seq(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.ReplaceArea(1, 1, 0, 0, Seq(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	require.Equal(t, before, m.Values())
}

func TestReplaceAreaWithSelf(t *testing.T) {
	m := Seq(t, 2, 2)
	require.NoError(t, m.ReplaceArea(0, 0, 1, 1, m))
	require.Equal(t, []int{1, 2, 3, 4}, m.Values())
}

// TestAreaRoundTrip: replacing an area with its own extraction changes nothing.
func TestAreaRoundTrip(t *testing.T) {
	m := Seq(t, 4, 5)
	want := m.Values()
	for r1 := 0; r1 < 4; r1++ {
		for c1 := 0; c1 < 5; c1++ {
			for r2 := r1; r2 < 4; r2++ {
				for c2 := c1; c2 < 5; c2++ {
					a, err := m.Area(r1, c1, r2, c2)
					require.NoError(t, err)
					require.Equal(t, [2]int{r2 - r1 + 1, c2 - c1 + 1}, [2]int{a.Rows(), a.Cols()})
					require.NoError(t, m.ReplaceArea(r1, c1, r2, c2, a))
					require.Equal(t, want, m.Values())
				}
			}
		}
	}
}
