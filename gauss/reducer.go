// SPDX-License-Identifier: MIT

package gauss

import "github.com/katalvlaran/gauss/matrix"

// Reducer brings an augmented matrix to row-echelon form in place.
//
// Implementations must:
//   - process pivot columns strictly in increasing order,
//   - leave a column without a nonzero pivot unreduced and carry on,
//   - never retain m after Reduce returns.
//
// m must be non-nil; use Solve/SolveCopy for a validated entry point.
type Reducer interface {
	Reduce(m *matrix.Augmented) Stats
	Name() string
}

// Stats summarizes one reduction.
type Stats struct {
	// Swaps counts row exchanges performed by pivot search.
	Swaps int
	// Degenerate lists, in increasing order, the columns for which no
	// nonzero pivot was found. The matching unknowns are meaningless.
	Degenerate []int
}

// Singular reports whether any column was left without a pivot.
func (s Stats) Singular() bool { return len(s.Degenerate) > 0 }

// Compile-time assertions.
var (
	_ Reducer = (*Sequential)(nil)
	_ Reducer = (*Parallel)(nil)
)
