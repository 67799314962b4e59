// SPDX-License-Identifier: MIT

// Package matrix - Augmented storage for linear systems Ax = b.
//
// Purpose:
//   - Hold an n×(n+1) system as n independently owned row buffers, the last
//     column being the right-hand side b.
//   - Make row swaps O(1): SwapRows exchanges row handles, never elements.
//   - Give elimination kernels direct slice access (Row) while the public
//     surface (At/Set/SwapRows) stays bounds-checked and error-returning.
//
// Ownership:
//   - An Augmented owns its row buffers for its whole lifetime. Kernels borrow
//     the matrix and mutate it in place; callers that need the original intact
//     work on Clone().
//
// Complexity quicksheet:
//   - NewAugmented/FromRows: O(n²); At/Set/Row/Swap/SwapRows: O(1); Clone: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const ctxSwap = "SwapRows"

// augmentedErrorf wraps an error with Augmented context and coordinates.
func augmentedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Augmented.%s(%d,%d): %w", method, row, col, err)
}

// Augmented is an n×(n+1) augmented matrix stored as row handles.
//   - n is the number of unknowns (and rows).
//   - rows[i] has length n+1; rows[i][n] is b[i].
//   - validateNaNInf enables NaN/Inf rejection in Set (ingestion policy).
//   - eps is the tolerance used by EqualApprox.
type Augmented struct {
	n              int
	rows           [][]float64
	validateNaNInf bool
	eps            float64
}

// NewAugmented allocates a zero n×(n+1) system.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity: Time O(n²), Space O(n²).
func NewAugmented(n int, opts ...Option) (*Augmented, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	a := &Augmented{
		n:              n,
		rows:           make([][]float64, n),
		validateNaNInf: o.validateNaNInf,
		eps:            o.eps,
	}
	// One backing allocation per row keeps handles independent for swaps.
	for i := range a.rows {
		a.rows[i] = make([]float64, n+1)
	}

	return a, nil
}

// FromRows builds an Augmented by copying rows. The input slices are not retained.
//
// Implementation:
//   - Stage 1: ValidateAugmentedRows (n ≥ 1, each row n+1 long, finite values
//     when the numeric policy is on).
//   - Stage 2: allocate and copy row by row.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (wrapped).
func FromRows(rows [][]float64, opts ...Option) (*Augmented, error) {
	o := gatherOptions(opts...)
	if err := ValidateAugmentedRows(rows, o.validateNaNInf); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	a, err := NewAugmented(len(rows), opts...)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i := range rows {
		copy(a.rows[i], rows[i])
	}

	return a, nil
}

// N returns the number of unknowns.
func (a *Augmented) N() int { return a.n }

// Rows returns the row count (n).
func (a *Augmented) Rows() int { return a.n }

// Cols returns the column count (n+1).
func (a *Augmented) Cols() int { return a.n + 1 }

// At returns the value at (row, col) or ErrOutOfRange.
func (a *Augmented) At(row, col int) (float64, error) {
	if row < 0 || row >= a.n || col < 0 || col > a.n {
		return 0, augmentedErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return a.rows[row][col], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
func (a *Augmented) Set(row, col int, v float64) error {
	if row < 0 || row >= a.n || col < 0 || col > a.n {
		return augmentedErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if a.validateNaNInf && isNonFinite(v) {
		return augmentedErrorf(ctxSet, row, col, ErrNaNInf)
	}
	a.rows[row][col] = v

	return nil
}

// Row returns the live handle of row i (length n+1). Writes through the
// returned slice mutate the matrix and bypass the numeric policy.
// Panics on an out-of-range i like any slice index; hot loops rely on that.
func (a *Augmented) Row(i int) []float64 { return a.rows[i] }

// SwapRows exchanges the handles of rows i and j in O(1).
//
// Errors:
//   - ErrOutOfRange if either index is invalid.
func (a *Augmented) SwapRows(i, j int) error {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return augmentedErrorf(ctxSwap, i, j, ErrOutOfRange)
	}
	a.Swap(i, j)

	return nil
}

// Swap is SwapRows without the bounds check, for kernels that already hold
// valid indices. Panics on an out-of-range index like Row.
func (a *Augmented) Swap(i, j int) { a.rows[i], a.rows[j] = a.rows[j], a.rows[i] }

// Clone returns a deep copy: fresh row buffers, same values and policy.
// Mutating the clone (including swapping its rows) never affects a.
// Complexity: O(n²).
func (a *Augmented) Clone() *Augmented {
	c := &Augmented{
		n:              a.n,
		rows:           make([][]float64, a.n),
		validateNaNInf: a.validateNaNInf,
		eps:            a.eps,
	}
	for i, r := range a.rows {
		c.rows[i] = append(make([]float64, 0, len(r)), r...)
	}

	return c
}

// ToRows returns a deep copy of the rows as a plain [][]float64.
func (a *Augmented) ToRows() [][]float64 {
	out := make([][]float64, a.n)
	for i, r := range a.rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}

// Coefficients materializes A (the first n columns) as an n×n Dense.
func (a *Augmented) Coefficients() (*Dense, error) {
	d, err := NewDense(a.n, a.n, a.policy()...)
	if err != nil {
		return nil, matrixErrorf("Coefficients", err)
	}
	for i, r := range a.rows {
		copy(d.data[i*a.n:(i+1)*a.n], r[:a.n])
	}

	return d, nil
}

// RHS returns a copy of the right-hand side column b.
func (a *Augmented) RHS() []float64 {
	b := make([]float64, a.n)
	for i, r := range a.rows {
		b[i] = r[a.n]
	}

	return b
}

// Residual returns max_i |(A·x − b)_i| for a candidate solution x.
// Must be called on the unreduced system to be meaningful.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch when x is nil or has the wrong length.
func (a *Augmented) Residual(x []float64) (float64, error) {
	A, err := a.Coefficients()
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	ax, err := MatVec(A, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	worst := ZeroSum
	for i, r := range a.rows {
		if d := math.Abs(ax[i] - r[a.n]); d > worst || math.IsNaN(d) {
			worst = d
		}
	}

	return worst, nil
}

// EqualApprox reports whether b has the same shape as a and every pair of
// entries differs by at most the tolerance configured with WithEpsilon.
func (a *Augmented) EqualApprox(b *Augmented) bool {
	if b == nil || a.n != b.n {
		return false
	}
	for i := range a.rows {
		for j := range a.rows[i] {
			if math.Abs(a.rows[i][j]-b.rows[i][j]) > a.eps {
				return false
			}
		}
	}

	return true
}

// policy re-expresses the instance policy as options for derived stores.
func (a *Augmented) policy() []Option {
	if a.validateNaNInf {
		return []Option{WithValidateNaNInf(), WithEpsilon(a.eps)}
	}

	return []Option{WithNoValidateNaNInf(), WithEpsilon(a.eps)}
}

// String provides a readable row-wise dump for diagnostics.
func (a *Augmented) String() string {
	var sb strings.Builder
	for _, r := range a.rows {
		sb.WriteString(_fmtRowOpen)
		for j, v := range r {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
