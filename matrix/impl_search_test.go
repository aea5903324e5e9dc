// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Search capability group.
package matrix_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestIndicesOfRowMajor(t *testing.T) {
	m := MustGrid(t, [][]int{{1, 2}, {1, 3}})
	require.Equal(t, []matrix.Index{{Row: 0, Col: 0}, {Row: 1, Col: 0}}, matrix.IndicesOf(m, 1))
}

func TestHasCount(t *testing.T) {
	m := MustGrid(t, [][]int{{7, 0, 7}, {0, 7, 1}})

	require.True(t, matrix.Has(m, 7))
	require.True(t, matrix.Has(m, 1))
	require.False(t, matrix.Has(m, 42))

	require.Equal(t, 3, matrix.Count(m, 7))
	require.Equal(t, 2, matrix.Count(m, 0))
	require.Equal(t, 0, matrix.Count(m, 42))
}

func TestIndicesOfNoMatch(t *testing.T) {
	m := Seq(t, 2, 2)
	got := matrix.IndicesOf(m, 9)
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestSearchFuncNonComparable runs the predicate forms over a slice type,
// which the comparable helpers cannot accept.
func TestSearchFuncNonComparable(t *testing.T) {
	m := MustGrid(t, [][][]string{
		{{"a"}, {"b", "c"}},
		{{}, {"d", "e"}},
	})
	pair := func(v []string) bool { return len(v) == 2 }

	require.True(t, m.HasFunc(pair))
	require.Equal(t, 2, m.CountFunc(pair))
	require.Equal(t, []matrix.Index{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, m.IndicesFunc(pair))
	require.False(t, m.HasFunc(func(v []string) bool { return len(v) > 2 }))
}

// TestSearcherInterface drives search through the narrow capability interface.
func TestSearcherInterface(t *testing.T) {
	var s matrix.Searcher[string] = MustGrid(t, [][]string{{"go", "Go"}, {"GO", "rust"}})
	require.Equal(t, 3, s.CountFunc(func(v string) bool { return strings.EqualFold(v, "go") }))
	require.Equal(t, 1, matrix.Count(s, "Go"))
}

// TestIndicesOfWideGrid checks coordinates on a non-square grid with several hits per row.
func TestIndicesOfWideGrid(t *testing.T) {
	m := MustGrid(t, [][]int{
		{0, 5, 0, 5},
		{5, 0, 0, 0},
		{0, 0, 5, 5},
	})
	want := []matrix.Index{
		{Row: 0, Col: 1}, {Row: 0, Col: 3},
		{Row: 1, Col: 0},
		{Row: 2, Col: 2}, {Row: 2, Col: 3},
	}
	require.Equal(t, want, matrix.IndicesOf(m, 5))
}
