// SPDX-License-Identifier: MIT

// Package gauss: row kernels and the pivot loop shared by both reducers.
//
// Both reducers run the same arithmetic in the same order per row and differ
// only in who executes eliminateRow for the rows below the pivot, so their
// results are bit-identical.
package gauss

import (
	"github.com/katalvlaran/gauss/matrix"
	"github.com/rs/zerolog"
)

// normalizeRow divides row[i:] by row[i] so that the pivot becomes exactly 1.
// Columns < i are already zero and are not touched.
func normalizeRow(row []float64, i int) {
	c := row[i]
	for k := len(row) - 1; k >= i; k-- {
		row[k] /= c
	}
}

// eliminateRow subtracts row[i] times the normalized pivot row from row,
// zeroing column i. Only columns >= i are touched.
func eliminateRow(row, pivot []float64, i int) {
	d := row[i]
	if d == 0 {
		return // nothing to eliminate
	}
	for k := len(row) - 1; k >= i; k-- {
		row[k] -= d * pivot[k]
	}
}

// eliminateRange applies eliminateRow to rows [lo, hi) of m.
func eliminateRange(m *matrix.Augmented, pivot []float64, i, lo, hi int) {
	for j := lo; j < hi; j++ {
		eliminateRow(m.Row(j), pivot, i)
	}
}

// echelon runs the strictly sequential pivot loop and delegates step 3
// (elimination below the pivot) to eliminateBelow, which must have finished
// every row i+1..n-1 before it returns.
//
// Implementation:
//   - Stage 1: zero pivot ⇒ FindAndSwapPivot; no pivot ⇒ record, skip column.
//   - Stage 2: normalize row i (controlling goroutine).
//   - Stage 3: eliminateBelow(pivot, i).
func echelon(m *matrix.Augmented, log zerolog.Logger, eliminateBelow func(pivot []float64, i int)) Stats {
	var st Stats
	n := m.N()
	for i := 0; i < n; i++ {
		if m.Row(i)[i] == 0 {
			if !FindAndSwapPivot(m, i) {
				st.Degenerate = append(st.Degenerate, i)
				log.Debug().Int("column", i).Msg("no nonzero pivot; row left unreduced")
				continue
			}
			st.Swaps++
		}

		pivot := m.Row(i)
		normalizeRow(pivot, i)
		if i+1 < n {
			eliminateBelow(pivot, i)
		}
	}

	return st
}
