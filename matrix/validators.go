// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and kernels minimal by delegating shape/nil checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil pointer).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Augmented:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateAugmentedRows checks that rows describe an n×(n+1) system:
// n ≥ 1, every row has exactly n+1 entries, and (when finite is true)
// every entry is finite.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n²).
func ValidateAugmentedRows(rows [][]float64, finite bool) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateAugmentedRows", ErrInvalidDimensions)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n+1 {
			return validatorErrorf(fmt.Sprintf("ValidateAugmentedRows: row %d has %d entries, want %d", i, len(rows[i]), n+1), ErrDimensionMismatch)
		}
		if !finite {
			continue
		}
		for j = 0; j <= n; j++ {
			if isNonFinite(rows[i][j]) {
				return validatorErrorf(fmt.Sprintf("ValidateAugmentedRows: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
