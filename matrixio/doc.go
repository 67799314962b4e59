// Package matrixio reads, writes, prints and generates augmented matrices.
//
// File format (little-endian):
//
//	int32    n                 number of unknowns, n ≥ 1
//	float64  a[0][0] … a[0][n] row 0, n+1 values
//	…
//	float64  a[n-1][0] … a[n-1][n]
//
// Generate fills a system with uniform integers in [0, r), row by row, from
// per-row random streams derived from one seed: the output depends only on
// (n, r, seed), never on how many workers produced it.
package matrixio
