// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/gauss/matrixio"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed    int64
		workers int
	)
	cmd := &cobra.Command{
		Use:     "generate <n> <r> <out>",
		Aliases: []string{"g"},
		Short:   "Write a random n×(n+1) system with integer entries in [0, r)",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := positiveArg(args, 0, "matrix dimension")
			if err != nil {
				return err
			}
			r, err := positiveArg(args, 1, "value range")
			if err != nil {
				return err
			}
			if workers < 0 {
				return fmt.Errorf("invalid worker count: %d", workers)
			}
			cmd.SilenceUsage = true

			m, err := matrixio.Generate(cmd.Context(), n, r,
				matrixio.WithSeed(seed), matrixio.WithWorkers(workers), matrixio.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err = matrixio.WriteFile(args[2], m); err != nil {
				return err
			}
			a.log.Info().Str("path", args[2]).Int("n", n).Msg("matrix written")

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "generator seed (0 = default seed)")
	cmd.Flags().IntVar(&workers, "workers", 0, "generator goroutines (0 = GOMAXPROCS)")

	return cmd
}
