// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logLevel string
	log      zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "gauss",
		Short: "Gaussian elimination: validation, matrix files and benchmarks",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := newLogger(a.errOut, a.logLevel)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")

	root.AddCommand(
		newValidateCmd(a),
		newGenerateCmd(a),
		newPrintCmd(a),
		newSingleCmd(a),
		newMultiCmd(a),
	)

	return root
}

// positiveArg parses args[i] as an integer > 0.
func positiveArg(args []string, i int, what string) (int, error) {
	v, err := strconv.Atoi(args[i])
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s: %s", what, args[i])
	}

	return v, nil
}
