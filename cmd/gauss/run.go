// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/harness"
	"github.com/katalvlaran/gauss/matrixio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// benchFlags are shared by the single and multi commands.
type benchFlags struct {
	verbose  bool
	residual bool
	runs     int
}

func (f *benchFlags) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print the solution after every run")
	fs.BoolVar(&f.residual, "residual", false, "print max|A·x-b| after every run")
	fs.IntVar(&f.runs, "runs", harness.DefaultRuns, "number of timed runs")
}

func (f *benchFlags) options(a *app) ([]harness.Option, error) {
	if f.runs <= 0 {
		return nil, fmt.Errorf("invalid run count: %d", f.runs)
	}
	opts := []harness.Option{harness.WithRuns(f.runs), harness.WithLogger(a.log)}
	if f.verbose {
		opts = append(opts, harness.WithVerbose())
	}
	if f.residual {
		opts = append(opts, harness.WithResidual())
	}

	return opts, nil
}

// benchmarkFile loads path and benchmarks r on it.
func benchmarkFile(a *app, r gauss.Reducer, path string, opts []harness.Option) error {
	m, err := matrixio.ReadFile(path)
	if err != nil {
		return err
	}
	a.log.Info().Str("path", path).Int("n", m.N()).Str("reducer", r.Name()).Msg("benchmark start")
	_, err = harness.Benchmark(a.out, r, m, opts...)

	return err
}

func newSingleCmd(a *app) *cobra.Command {
	var bf benchFlags
	cmd := &cobra.Command{
		Use:     "single <in>",
		Aliases: []string{"s"},
		Short:   "Benchmark the single-thread reducer on a matrix file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := bf.options(a)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			return benchmarkFile(a, gauss.NewSequential(gauss.WithLogger(a.log)), args[0], opts)
		},
	}
	bf.register(cmd.Flags())

	return cmd
}

func newMultiCmd(a *app) *cobra.Command {
	var (
		bf        benchFlags
		threads   int
		schedule  string
		batchSize int
	)
	cmd := &cobra.Command{
		Use:     "multi <in>",
		Aliases: []string{"m"},
		Short:   "Benchmark the multi-thread reducer on a matrix file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := bf.options(a)
			if err != nil {
				return err
			}
			if threads < 0 {
				return fmt.Errorf("invalid thread count: %d", threads)
			}
			if batchSize <= 0 {
				return fmt.Errorf("invalid batch size: %d", batchSize)
			}
			sched, err := gauss.ParseSchedule(schedule)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			par := gauss.NewParallel(
				gauss.WithWorkers(threads),
				gauss.WithSchedule(sched),
				gauss.WithBatchSize(batchSize),
				gauss.WithLogger(a.log),
			)
			defer par.Close()

			return benchmarkFile(a, par, args[0], opts)
		},
	}
	bf.register(cmd.Flags())
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&schedule, "schedule", gauss.DefaultSchedule.String(), "row partitioning: static|dynamic")
	cmd.Flags().IntVar(&batchSize, "batch", gauss.DefaultBatchSize, "rows per claim under the dynamic schedule")

	return cmd
}
