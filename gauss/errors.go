// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.
//
// Elimination itself never fails: Reduce has no error return and a missing
// pivot is a tolerated degeneracy reported through Stats. Errors surface only
// at the pipeline boundary (Solve, SolveCopy, BackSubstituteInto).

package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned by Solve/SolveCopy under WithStrict when some
	// column had no nonzero pivot on or below the diagonal.
	ErrSingular = errors.New("gauss: singular system (no nonzero pivot)")

	// ErrNilReducer indicates that a nil Reducer was passed to the pipeline.
	ErrNilReducer = errors.New("gauss: nil reducer")
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
