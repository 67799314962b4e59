// SPDX-License-Identifier: MIT
// Package gauss_test contains test helpers
//
// Purpose:
//   • Provide deterministic fixtures (known systems, random well-conditioned systems).
//   • Keep all data finite and well-formed.

package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

// eps is the validation tolerance for solution vectors.
const eps = 1e-4

var scenarioA = [][]float64{
	{1, 2, 3, 4, 0},
	{7, 14, 20, 27, 0},
	{5, 10, 16, 19, -2},
	{3, 5, 6, 13, 5},
}

var expectedA = []float64{1, -1, -1, 1}

var scenarioB = [][]float64{
	{2, -1, -1, -4, -1, 2},
	{-1, 2, -1, -1, -1, 0},
	{4, 1, -5, -8, -5, 1},
	{1, 1, 2, 1, 1, 0},
	{1, 1, 1, 2, 1, 0.5},
}

var expectedB = []float64{5.0 / 18.0, 4.0 / 9.0, -4.0 / 3.0, -5.0 / 6.0, 25.0 / 9.0}

// mustAugmented builds an Augmented from rows or fails the test.
func mustAugmented(t testing.TB, rows [][]float64) *matrix.Augmented {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSystem builds a strictly diagonally dominant n×(n+1) system with a
// known solution xTrue, so elimination is well-conditioned.
func randomSystem(t testing.TB, n int, seed int64) (*matrix.Augmented, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	xTrue := make([]float64, n)
	for i := range xTrue {
		xTrue[i] = rng.Float64()*20 - 10
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n+1)
		for j := 0; j < n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n) + 1 // |a_ii| > Σ|a_ij|, j≠i
		var b float64
		for j := 0; j < n; j++ {
			b += rows[i][j] * xTrue[j]
		}
		rows[i][n] = b
	}

	return mustAugmented(t, rows), xTrue
}

// requireClose asserts two vectors agree within tol using go-cmp.
func requireClose(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		require.Failf(t, "vectors differ", "(-want +got):\n%s", diff)
	}
}

// reducerCase names a reducer constructor for table-driven tests.
type reducerCase struct {
	name string
	make func() gauss.Reducer
}

// reducerCases covers the sequential reducer and the parallel one across
// worker counts and both schedules.
func reducerCases() []reducerCase {
	return []reducerCase{
		{"sequential", func() gauss.Reducer { return gauss.NewSequential() }},
		{"parallel-1", func() gauss.Reducer { return gauss.NewParallel(gauss.WithWorkers(1)) }},
		{"parallel-2", func() gauss.Reducer { return gauss.NewParallel(gauss.WithWorkers(2)) }},
		{"parallel-4", func() gauss.Reducer { return gauss.NewParallel(gauss.WithWorkers(4)) }},
		{"parallel-default", func() gauss.Reducer { return gauss.NewParallel() }},
		{"parallel-8-dynamic", func() gauss.Reducer {
			return gauss.NewParallel(gauss.WithWorkers(8), gauss.WithSchedule(gauss.Dynamic), gauss.WithBatchSize(1))
		}},
	}
}

// closeReducer releases pool-backed reducers.
func closeReducer(r gauss.Reducer) {
	if p, ok := r.(*gauss.Parallel); ok {
		p.Close()
	}
}
