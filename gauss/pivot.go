// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/gauss/matrix"

// FindAndSwapPivot looks for a usable pivot for column i below row i.
//
// It scans rows i+1..n-1 in increasing order and stops at the first row j
// with m[j][i] != 0. That row is swapped into position i (row-handle
// exchange, O(1)) and the function returns true. If no such row exists the
// matrix is left untouched and the function returns false.
//
// Callers invoke it only when m[i][i] == 0; it does not inspect row i itself.
// Always picking the lowest index keeps results independent of scheduling.
//
// Complexity: O(n) comparisons, O(1) swap.
func FindAndSwapPivot(m *matrix.Augmented, i int) bool {
	n := m.N()
	for j := i + 1; j < n; j++ {
		if m.Row(j)[i] != 0 {
			m.Swap(i, j)
			return true
		}
	}

	return false
}
