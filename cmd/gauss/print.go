// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/gauss/matrixio"
	"github.com/spf13/cobra"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "print <in>",
		Aliases: []string{"p"},
		Short:   "Print a matrix file as text",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			m, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			a.log.Info().Str("path", args[0]).Int("n", m.N()).Msg("matrix read")

			return matrixio.Print(a.out, m)
		},
	}
}
