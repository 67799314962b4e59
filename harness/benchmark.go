// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/matrix"
	"github.com/samber/lo"
)

const opBenchmark = "Benchmark"

// Report summarizes a Benchmark call.
type Report struct {
	Reducer   string
	N         int
	Runs      []time.Duration // one per run, in run order
	Best      time.Duration   // min(Runs)
	Residuals []float64       // filled only WithResidual
	Solution  []float64       // from the last run
	Stats     gauss.Stats     // from the last run
}

// workerCounter is implemented by reducers with a fixed worker pool.
type workerCounter interface {
	Workers() int
}

// Benchmark times r on private copies of original.
//
// Output:
//
//	# <reducer> n=<n> workers=<k> <environment>
//	run 0: time = <seconds>;
//	| x0 | x1 ...            (WithVerbose)
//	residual = <max|Ax-b|>   (WithResidual)
//	...
//	Best time: <seconds>
//
// Each run deep-copies original, then times Reduce plus back-substitution.
// The copy is outside the timed region; original is never mutated.
//
// Errors:
//   - gauss.ErrNilReducer, matrix.ErrNilMatrix, write errors from w.
func Benchmark(w io.Writer, r gauss.Reducer, original *matrix.Augmented, opts ...Option) (Report, error) {
	if r == nil {
		return Report{}, harnessErrorf(opBenchmark, gauss.ErrNilReducer)
	}
	if err := matrix.ValidateNotNil(original); err != nil {
		return Report{}, harnessErrorf(opBenchmark, err)
	}
	o := gatherOptions(opts...)

	rep := Report{Reducer: r.Name(), N: original.N(), Runs: make([]time.Duration, 0, o.runs)}
	workers := 1
	if wc, ok := r.(workerCounter); ok {
		workers = wc.Workers()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s n=%d workers=%d %s\n", rep.Reducer, rep.N, workers, DetectEnvironment())
	for i := 0; i < o.runs; i++ {
		work := original.Clone()

		start := o.clock()
		st := r.Reduce(work)
		x := gauss.BackSubstitute(work)
		elapsed := o.clock().Sub(start)

		rep.Runs = append(rep.Runs, elapsed)
		rep.Solution, rep.Stats = x, st
		fmt.Fprintf(&sb, "run %d: time = %f;\n", i, elapsed.Seconds())
		if o.verbose {
			sb.WriteString(formatVector(x))
			sb.WriteByte('\n')
		}
		if o.residual {
			res, err := original.Residual(x)
			if err != nil {
				return rep, harnessErrorf(opBenchmark, err)
			}
			rep.Residuals = append(rep.Residuals, res)
			fmt.Fprintf(&sb, "residual = %e\n", res)
		}
		o.logger.Debug().
			Str("reducer", rep.Reducer).
			Int("run", i).
			Dur("elapsed", elapsed).
			Int("swaps", st.Swaps).
			Ints("degenerate", st.Degenerate).
			Msg("benchmark run")

		// flush per run so long benchmarks show progress
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return rep, harnessErrorf(opBenchmark, err)
		}
		sb.Reset()
	}

	rep.Best = lo.Min(rep.Runs)
	if _, err := fmt.Fprintf(w, "Best time: %f\n", rep.Best.Seconds()); err != nil {
		return rep, harnessErrorf(opBenchmark, err)
	}

	return rep, nil
}

// formatVector renders x as "| v0 | v1 ... " with no closing bar.
func formatVector(x []float64) string {
	return strings.Join(lo.Map(x, func(v float64, _ int) string {
		return fmt.Sprintf("| %f ", v)
	}), "")
}
