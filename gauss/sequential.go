// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/katalvlaran/gauss/matrix"
	"github.com/rs/zerolog"
)

// Sequential reduces on the calling goroutine only.
type Sequential struct {
	log zerolog.Logger
}

// NewSequential builds a single-goroutine reducer. Only WithLogger applies.
func NewSequential(opts ...Option) *Sequential {
	o := gatherOptions(opts...)

	return &Sequential{log: o.logger}
}

// Name identifies the reducer in reports.
func (s *Sequential) Name() string { return "single-thread" }

// Reduce mutates m into row-echelon form.
//
// Algorithm, for i = 0..n-1:
//  1. m[i][i] == 0 ⇒ FindAndSwapPivot; on failure skip column i.
//  2. Divide row i (columns ≥ i) by m[i][i].
//  3. For j = i+1..n-1: m[j][k] -= m[j][i]·m[i][k] for k ≥ i.
//
// Complexity: O(n³) time, O(1) extra space.
func (s *Sequential) Reduce(m *matrix.Augmented) Stats {
	n := m.N()

	return echelon(m, s.log, func(pivot []float64, i int) {
		eliminateRange(m, pivot, i, i+1, n)
	})
}
