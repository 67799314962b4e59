// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gauss/gauss"
	"github.com/katalvlaran/gauss/harness"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		threads int
		eps     float64
	)
	cmd := &cobra.Command{
		Use:     "validate",
		Aliases: []string{"v"},
		Short:   "Solve the built-in systems with both reducers and check the results",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if threads < 0 {
				return fmt.Errorf("invalid thread count: %d", threads)
			}
			if !(eps > 0) || math.IsInf(eps, 1) {
				return fmt.Errorf("invalid epsilon: %g", eps)
			}
			cmd.SilenceUsage = true

			par := gauss.NewParallel(gauss.WithWorkers(threads), gauss.WithLogger(a.log))
			defer par.Close()
			seq := gauss.NewSequential(gauss.WithLogger(a.log))

			verdicts, err := harness.ValidateAll(a.out, []gauss.Reducer{seq, par},
				harness.WithEpsilon(eps), harness.WithLogger(a.log))
			if err != nil {
				return err
			}
			failed := lo.Filter(verdicts, func(v harness.Verdict, _ int) bool { return !v.Passed() })
			if len(failed) > 0 {
				a.log.Warn().Int("failed", len(failed)).Msg("validation failed")
				return fmt.Errorf("%d of %d scenarios failed", len(failed), len(verdicts))
			}
			a.log.Info().Int("scenarios", len(verdicts)).Msg("validation passed")

			return nil
		},
	}
	cmd.Flags().IntVar(&threads, "threads", 0, "workers for the multi-thread reducer (0 = GOMAXPROCS)")
	cmd.Flags().Float64Var(&eps, "epsilon", harness.DefaultEpsilon, "absolute tolerance")

	return cmd
}
