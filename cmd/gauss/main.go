// SPDX-License-Identifier: MIT

// Command gauss validates, generates, prints and benchmarks dense linear
// systems solved by Gaussian elimination.
//
// Usage:
//
//	gauss validate                         (alias v)
//	gauss generate <n> <r> <out>           (alias g)
//	gauss print <in>                       (alias p)
//	gauss single <in> [--verbose]          (alias s)
//	gauss multi <in> --threads k [--verbose] (alias m)
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
