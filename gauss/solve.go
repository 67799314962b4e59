// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/gauss/matrix"
)

const (
	opSolve     = "Solve"
	opSolveCopy = "SolveCopy"
)

// Solve runs r.Reduce then BackSubstitute on m, IN PLACE: m is left in
// echelon form. Use SolveCopy when m must be preserved.
//
// Options:
//   - WithStrict: return ErrSingular (wrapping the first degenerate column)
//     instead of a solution when a column had no pivot.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNilReducer, ErrSingular (strict only).
func Solve(m *matrix.Augmented, r Reducer, opts ...Option) ([]float64, Stats, error) {
	return solve(opSolve, m, r, opts...)
}

// SolveCopy is Solve on a private deep copy of m; m is never mutated.
func SolveCopy(m *matrix.Augmented, r Reducer, opts ...Option) ([]float64, Stats, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, Stats{}, gaussErrorf(opSolveCopy, err)
	}

	return solve(opSolveCopy, m.Clone(), r, opts...)
}

func solve(tag string, m *matrix.Augmented, r Reducer, opts ...Option) ([]float64, Stats, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, Stats{}, gaussErrorf(tag, err)
	}
	if r == nil {
		return nil, Stats{}, gaussErrorf(tag, ErrNilReducer)
	}
	o := gatherOptions(opts...)

	st := r.Reduce(m)
	if o.strict && st.Singular() {
		return nil, st, gaussErrorf(tag, fmt.Errorf("column %d: %w", st.Degenerate[0], ErrSingular))
	}

	return BackSubstitute(m), st, nil
}
