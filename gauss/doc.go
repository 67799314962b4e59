// Package gauss solves dense linear systems Ax = b by Gaussian elimination
// to row-echelon form followed by back substitution.
//
// 🚀 What is in here?
//
//	The input is an augmented n×(n+1) matrix [A | b] (matrix.Augmented).
//	A Reducer mutates it in place into row-echelon form: every pivoted row
//	gets a unit diagonal and zeros to its left. BackSubstitute then reads the
//	solution vector from the bottom row upwards.
//
// ✨ Key features:
//   - two interchangeable reducers behind one interface:
//     Sequential (single goroutine) and Parallel (fork-join over a fixed
//     worker pool, one barrier per pivot step)
//   - deterministic pivoting: a zero pivot is replaced by the lowest-indexed
//     row below it with a nonzero entry in that column; swaps are O(1)
//   - identical arithmetic in both reducers, so results agree bit for bit
//     regardless of the worker count
//   - tolerant degeneracy: a column with no usable pivot is recorded in
//     Stats.Degenerate and skipped; WithStrict turns it into ErrSingular
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gauss/gauss"
//
//	m, _ := matrix.FromRows(rows)
//	r := gauss.NewParallel(gauss.WithWorkers(8))
//	defer r.Close()
//
//	x, stats, err := gauss.SolveCopy(m, r) // m stays untouched
//
// Performance:
//
//   - Time:   O(n³) for reduction, O(n²) for back substitution
//   - Memory: in place; SolveCopy adds one O(n²) clone
//
// See example_test.go for runnable walkthroughs.
package gauss
