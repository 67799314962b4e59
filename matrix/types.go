// SPDX-License-Identifier: MIT

// Package matrix: shared interface implemented by the dense stores.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the
	// finite-only numeric policy.
	Set(i, j int, v float64) error
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*Augmented)(nil)
)
