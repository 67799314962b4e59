// SPDX-License-Identifier: MIT

package gauss_test

import (
	"testing"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/stretchr/testify/require"
)

// TestFindAndSwapPivotLowestIndex picks the first nonzero row below i.
func TestFindAndSwapPivotLowestIndex(t *testing.T) {
	m := mustAugmented(t, [][]float64{
		{0, 1, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 5, 1, 0, 0},
		{0, 7, 1, 0, 0},
	})
	// Column 1 at row 1 is zero; rows 2 and 3 qualify, row 2 must win.
	row2 := m.Row(2)
	require.True(t, gauss.FindAndSwapPivot(m, 1))
	require.Equal(t, 5.0, m.Row(1)[1])
	require.Equal(t, 7.0, m.Row(3)[1])
	require.Same(t, &row2[0], &m.Row(1)[0]) // handle moved, not copied
}

// TestFindAndSwapPivotNone leaves the matrix as is when nothing qualifies.
func TestFindAndSwapPivotNone(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2},
		{0, 3, 4},
	}
	m := mustAugmented(t, rows)
	require.False(t, gauss.FindAndSwapPivot(m, 0))
	require.Equal(t, rows, m.ToRows())

	// Last row has nothing below it.
	require.False(t, gauss.FindAndSwapPivot(m, 1))
}
