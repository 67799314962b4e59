// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/katalvlaran/gauss/matrix"
)

// BackSubstitute solves an echelon-form system for x.
//
//	x[n-1] = m[n-1][n]
//	x[i]   = m[i][n] − Σ_{j>i} m[i][j]·x[j],  i = n-2 … 0
//
// m must already be reduced (unit diagonal on pivoted rows). Rows left
// without a pivot produce meaningless values for their unknowns.
// Sequential by nature: x[i] depends on every x[j>i].
//
// Complexity: O(n²).
func BackSubstitute(m *matrix.Augmented) []float64 {
	x := make([]float64, m.N())
	backSubstitute(m, x)

	return x
}

// BackSubstituteInto is BackSubstitute writing into a caller-owned buffer.
//
// Errors:
//   - matrix.ErrNilMatrix when m or x is nil.
//   - matrix.ErrDimensionMismatch when len(x) != n.
func BackSubstituteInto(m *matrix.Augmented, x []float64) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return gaussErrorf("BackSubstituteInto", err)
	}
	if err := matrix.ValidateVecLen(x, m.N()); err != nil {
		return gaussErrorf("BackSubstituteInto", err)
	}
	backSubstitute(m, x)

	return nil
}

func backSubstitute(m *matrix.Augmented, x []float64) {
	n := m.N()
	x[n-1] = m.Row(n - 1)[n]
	for i := n - 2; i >= 0; i-- {
		row := m.Row(i)
		acc := row[n]
		for j := i + 1; j < n; j++ {
			acc -= row[j] * x[j]
		}
		x[i] = acc
	}
}
