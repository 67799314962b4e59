// SPDX-License-Identifier: MIT

package harness_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/harness"
	"github.com/katalvlaran/gauss/matrix"
	"github.com/stretchr/testify/require"
)

const lineA = "| 1.000000 | -1.000000 | -1.000000 | 1.000000 |"
const lineB = "| 0.277778 | 0.444444 | -1.333333 | -0.833333 | 2.777778 |"

// fakeClock returns a clock whose i-th run (two calls each) lasts durs[i].
func fakeClock(durs ...time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	calls := 0
	return func() time.Time {
		if calls%2 == 1 {
			t = t.Add(durs[(calls/2)%len(durs)])
		}
		calls++
		return t
	}
}

func reducers(t *testing.T) []gauss.Reducer {
	t.Helper()
	p := gauss.NewParallel(gauss.WithWorkers(3))
	t.Cleanup(p.Close)

	return []gauss.Reducer{gauss.NewSequential(), p}
}

func TestValidateScenarios(t *testing.T) {
	for _, r := range reducers(t) {
		var buf bytes.Buffer
		v, err := harness.Validate(&buf, r, harness.ScenarioA())
		require.NoError(t, err)
		require.True(t, v.Passed(), r.Name())
		require.Equal(t, -1, v.FirstFailure)
		require.Equal(t, lineA, buf.String())

		buf.Reset()
		v, err = harness.Validate(&buf, r, harness.ScenarioB())
		require.NoError(t, err)
		require.True(t, v.Passed(), r.Name())
		require.Equal(t, lineB, buf.String())
	}
}

// TestValidateReportsFirstFailureAndContinues flags only the first bad index
// but still prints every value.
func TestValidateReportsFirstFailureAndContinues(t *testing.T) {
	sc := harness.ScenarioA()
	sc.Expected = []float64{1, 5, 5, 1} // indices 1 and 2 are wrong

	var buf bytes.Buffer
	v, err := harness.Validate(&buf, gauss.NewSequential(), sc)
	require.NoError(t, err)
	require.False(t, v.Passed())
	require.Equal(t, 1, v.FirstFailure)
	require.Equal(t,
		"| 1.000000 | -1.000000 Assertion failed at 1| -1.000000 | 1.000000 |",
		buf.String())
	require.Equal(t, 1, strings.Count(buf.String(), "Assertion failed"))
}

// TestValidateFlagsNaN overflows to ±Inf during elimination so the solution
// turns NaN; NaN must fail validation.
func TestValidateFlagsNaN(t *testing.T) {
	sc := harness.Scenario{
		Name:     "overflow",
		Rows:     [][]float64{{1, 1e308, 1e308}, {1, -1e308, -1e308}},
		Expected: []float64{0, 1},
	}

	var buf bytes.Buffer
	v, err := harness.Validate(&buf, gauss.NewSequential(), sc)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v.Solution[0]))
	require.False(t, v.Passed())
	require.Equal(t, 0, v.FirstFailure)
	require.Equal(t, "| NaN Assertion failed at 0| NaN |", buf.String())
}

func TestValidateEpsilon(t *testing.T) {
	sc := harness.ScenarioA()
	sc.Expected = []float64{1, -1, -1, 1.01}

	v, err := harness.Validate(&bytes.Buffer{}, gauss.NewSequential(), sc)
	require.NoError(t, err)
	require.Equal(t, 3, v.FirstFailure) // 0.01 > 1e-4

	v, err = harness.Validate(&bytes.Buffer{}, gauss.NewSequential(), sc, harness.WithEpsilon(0.1))
	require.NoError(t, err)
	require.True(t, v.Passed())
}

func TestValidateLeavesScenarioUntouched(t *testing.T) {
	sc := harness.ScenarioA()
	_, err := harness.Validate(&bytes.Buffer{}, gauss.NewSequential(), sc)
	require.NoError(t, err)
	require.Equal(t, harness.ScenarioA().Rows, sc.Rows)
}

func TestValidateErrors(t *testing.T) {
	_, err := harness.Validate(&bytes.Buffer{}, nil, harness.ScenarioA())
	require.ErrorIs(t, err, gauss.ErrNilReducer)

	sc := harness.ScenarioA()
	sc.Expected = sc.Expected[:2]
	_, err = harness.Validate(&bytes.Buffer{}, gauss.NewSequential(), sc)
	require.ErrorIs(t, err, harness.ErrScenarioShape)
}

// TestValidateAllOrder checks A then B per reducer, one line each.
func TestValidateAllOrder(t *testing.T) {
	rs := reducers(t)
	var buf bytes.Buffer
	vs, err := harness.ValidateAll(&buf, rs)
	require.NoError(t, err)
	require.Len(t, vs, 4)

	require.Equal(t, lineA+"\n"+lineB+"\n"+lineA+"\n"+lineB+"\n", buf.String())
	require.Equal(t, []string{"A", "B", "A", "B"}, []string{vs[0].Scenario, vs[1].Scenario, vs[2].Scenario, vs[3].Scenario})
	require.Equal(t, rs[0].Name(), vs[0].Reducer)
	require.Equal(t, rs[1].Name(), vs[3].Reducer)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestValidateAllWriteError(t *testing.T) {
	_, err := harness.ValidateAll(failingWriter{}, []gauss.Reducer{gauss.NewSequential()})
	require.Error(t, err)
}

func TestBenchmarkReport(t *testing.T) {
	original, err := matrix.FromRows(harness.ScenarioB().Rows)
	require.NoError(t, err)
	before := original.ToRows()

	durs := []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond}
	var buf bytes.Buffer
	rep, err := harness.Benchmark(&buf, gauss.NewSequential(), original,
		harness.WithRuns(5), harness.WithClock(fakeClock(durs...)), harness.WithVerbose())
	require.NoError(t, err)

	require.Equal(t, before, original.ToRows()) // original never mutated
	require.Len(t, rep.Runs, 5)
	require.Equal(t, 10*time.Millisecond, rep.Best)
	for _, d := range rep.Runs {
		require.LessOrEqual(t, rep.Best, d)
	}
	require.Empty(t, cmp.Diff(harness.ScenarioB().Expected, rep.Solution, cmpopts.EquateApprox(0, 1e-9)))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "# single-thread n=5 workers=1 "))
	require.Contains(t, out, "run 0: time = 0.030000;\n")
	require.Contains(t, out, "run 1: time = 0.010000;\n")
	require.Contains(t, out, "run 4: time = 0.010000;\n")
	require.True(t, strings.HasSuffix(out, "Best time: 0.010000\n"))

	// every run prints the same solution line
	solLine := "| 0.277778 | 0.444444 | -1.333333 | -0.833333 | 2.777778 \n"
	require.Equal(t, 5, strings.Count(out, solLine))
}

func TestBenchmarkParallelAndResidual(t *testing.T) {
	original, err := matrix.FromRows(harness.ScenarioA().Rows)
	require.NoError(t, err)
	p := gauss.NewParallel(gauss.WithWorkers(2))
	defer p.Close()

	var buf bytes.Buffer
	rep, err := harness.Benchmark(&buf, p, original, harness.WithRuns(2), harness.WithResidual())
	require.NoError(t, err)
	require.Len(t, rep.Residuals, 2)
	for _, res := range rep.Residuals {
		require.Less(t, res, 1e-9)
	}
	require.Equal(t, 1, rep.Stats.Swaps)
	require.Contains(t, buf.String(), "workers=2")
	require.Equal(t, 2, strings.Count(buf.String(), "residual = "))
}

func TestBenchmarkErrors(t *testing.T) {
	_, err := harness.Benchmark(&bytes.Buffer{}, gauss.NewSequential(), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.FromRows(harness.ScenarioA().Rows)
	require.NoError(t, err)
	_, err = harness.Benchmark(&bytes.Buffer{}, nil, m)
	require.ErrorIs(t, err, gauss.ErrNilReducer)

	_, err = harness.Benchmark(failingWriter{}, gauss.NewSequential(), m)
	require.Error(t, err)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { harness.WithRuns(0) })
	require.Panics(t, func() { harness.WithEpsilon(0) })
	require.Panics(t, func() { harness.WithClock(nil) })
}

func TestEnvironmentString(t *testing.T) {
	env := harness.DetectEnvironment()
	require.Positive(t, env.NumCPU)
	require.Positive(t, env.GOMAXPROCS)
	require.Contains(t, env.String(), env.GOOS+"/"+env.GOARCH)
}
