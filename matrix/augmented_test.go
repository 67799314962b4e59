// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

func mustFromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Augmented {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// TestNewAugmented checks shape and zero initialisation.
func TestNewAugmented(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewAugmented(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	for i := 0; i < 3; i++ {
		require.Equal(t, []float64{0, 0, 0, 0}, m.Row(i))
	}

	_, err = matrix.NewAugmented(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewAugmented(-4)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRowsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		opts    []matrix.Option
		wantErr error
	}{
		{"empty", nil, nil, matrix.ErrInvalidDimensions},
		{"short row", [][]float64{{1, 2, 3}, {4, 5}}, nil, matrix.ErrDimensionMismatch},
		{"square not augmented", [][]float64{{1, 2}, {3, 4}}, nil, matrix.ErrDimensionMismatch},
		{"NaN rejected", [][]float64{{math.NaN(), 1}}, nil, matrix.ErrNaNInf},
		{"Inf rejected", [][]float64{{1, math.Inf(-1)}}, nil, matrix.ErrNaNInf},
		{"NaN allowed", [][]float64{{math.NaN(), 1}}, []matrix.Option{matrix.WithNoValidateNaNInf()}, nil},
		{"ok", [][]float64{{1, 2, 3}, {4, 5, 6}}, nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.rows, tc.opts...)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestFromRowsCopies ensures the input slices are not retained.
func TestFromRowsCopies(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}}
	m := mustFromRows(t, rows)
	rows[0][0] = 99
	require.Equal(t, 1.0, m.Row(0)[0])
}

func TestAtSetBounds(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.NoError(t, m.Set(0, 2, -1))
	require.Equal(t, -1.0, m.Row(0)[2])

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(rc[0], rc[1], 1), matrix.ErrOutOfRange)
	}

	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	lax := mustFromRows(t, [][]float64{{1, 2}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, lax.Set(0, 0, math.Inf(1)))
}

// TestSwapRowsMovesHandles checks swaps exchange row buffers, not values.
func TestSwapRowsMovesHandles(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r0, r1 := m.Row(0), m.Row(1)
	require.NoError(t, m.SwapRows(0, 1))
	require.Same(t, &r0[0], &m.Row(1)[0])
	require.Same(t, &r1[0], &m.Row(0)[0])
	require.Equal(t, []float64{4, 5, 6}, m.Row(0))

	require.NoError(t, m.SwapRows(1, 1)) // self-swap is a no-op
	require.Equal(t, []float64{1, 2, 3}, m.Row(1))

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

// TestSwapUnchecked exchanges handles like SwapRows and panics out of range.
func TestSwapUnchecked(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r1 := m.Row(1)
	m.Swap(0, 1)
	require.Same(t, &r1[0], &m.Row(0)[0])
	require.Equal(t, []float64{1, 2, 3}, m.Row(1))

	require.Panics(t, func() { m.Swap(0, 2) })
}

// TestCloneIsDeep mutates and swaps a clone and checks the source is intact.
func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	src := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	c := src.Clone()
	require.Equal(t, src.ToRows(), c.ToRows())

	c.Row(0)[0] = 42
	require.NoError(t, c.SwapRows(0, 1))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, src.ToRows())

	out := src.ToRows()
	out[1][1] = -7
	require.Equal(t, 5.0, src.Row(1)[1])
}

func TestCoefficientsRHSResidual(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{
		{2, 1, 5},
		{1, 3, 10},
	}) // x = (1, 3)
	A, err := m.Coefficients()
	require.NoError(t, err)
	require.Equal(t, 2, A.Rows())
	require.Equal(t, 2, A.Cols())
	v, err := A.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	require.Equal(t, []float64{5, 10}, m.RHS())

	res, err := m.Residual([]float64{1, 3})
	require.NoError(t, err)
	require.Equal(t, 0.0, res)

	res, err = m.Residual([]float64{1, 2})
	require.NoError(t, err)
	require.InDelta(t, 3.0, res, 1e-12) // row 1 off by 3

	_, err = m.Residual([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Residual(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqualApprox(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 2}}, matrix.WithEpsilon(1e-3))
	b := mustFromRows(t, [][]float64{{1.0005, 2}})
	require.True(t, a.EqualApprox(b))
	require.False(t, b.EqualApprox(a)) // b uses the 1e-9 default
	require.False(t, a.EqualApprox(nil))
	require.False(t, a.EqualApprox(mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})))
}

func TestAugmentedString(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2.5, -3}, {0, 1, 4}})
	require.Equal(t, "[1, 2.5, -3]\n[0, 1, 4]\n", m.String())
}
