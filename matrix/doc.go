// Package matrix offers the in-memory stores used by the gauss solvers.
//
// The matrix package provides:
//
//   - Augmented, an n×(n+1) system [A | b] kept as independent row buffers so
//     that pivoting swaps rows in O(1) by exchanging handles.
//   - Dense, a row-major matrix with bounds-checked accessors, used for the
//     coefficient view A and residual checks (MatVec).
//   - A single numeric policy (finite-only ingestion, comparison epsilon)
//     configured through functional options.
//
// All public accessors return sentinel errors (see errors.go) instead of
// panicking; Augmented.Row is the one deliberate exception, handing hot
// elimination loops a raw slice.
//
// See example_test.go for usage patterns.
package matrix
