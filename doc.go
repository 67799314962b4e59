// Package gauss is a small, dependency-light toolkit for solving dense linear
// systems A·x = b by Gaussian elimination, single-threaded or fork-join
// parallel, and for checking and timing those solvers.
//
// 🚀 What is inside?
//
//	matrix/      Augmented n×(n+1) store with O(1) row swaps, Dense view, residuals
//	gauss/       pivot search, sequential & parallel echelon reducers, back-substitution
//	workerpool/  persistent worker pool with static and dynamic row partitioning
//	matrixio/    binary matrix files, text printing, deterministic random systems
//	harness/     validation against known systems, best-of-R benchmarking
//	cmd/gauss    command-line front end (validate, generate, print, single, multi)
//
// ✨ Guarantees
//
//   - The parallel reducer produces bit-identical results to the sequential one.
//   - Worker counts are explicit; nothing is tuned behind your back.
//   - Columns without a nonzero pivot are reported, never hidden.
//
// Quick start:
//
//	m, _ := matrix.FromRows([][]float64{{2, 1, 5}, {1, 3, 10}})
//	x, _, err := gauss.SolveCopy(m, gauss.NewSequential())
//
// Install the CLI:
//
//	go install github.com/katalvlaran/gauss/cmd/gauss@latest
package gauss
