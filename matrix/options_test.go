// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for builder options.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/genmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestWithRowCapacityPanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithRowCapacity: n must be >= 0", func() {
		_ = matrix.WithRowCapacity(-1)
	})
	require.NotPanics(t, func() { _ = matrix.WithRowCapacity(0) })
}

func TestNilOptionIsSkipped(t *testing.T) {
	m, err := matrix.NewBuilder[int](nil, matrix.WithRowCapacity(1)).Row([]int{1}).Build()
	require.NoError(t, err)
	RequireGrid(t, [][]int{{1}}, m)
}

// TestDefaultIsLateValidation pins the documented default.
func TestDefaultIsLateValidation(t *testing.T) {
	require.False(t, matrix.DefaultStrictRows)

	b := matrix.NewBuilder[int]().Row([]int{1, 2}).Row([]int{3})
	require.NoError(t, b.Err())
	require.Equal(t, 2, b.Rows())
}
