// SPDX-License-Identifier: MIT

package harness

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// Defaults.
const (
	// DefaultRuns is the number of timed runs per Benchmark call.
	DefaultRuns = 5

	// DefaultEpsilon is the absolute tolerance used by Validate.
	DefaultEpsilon = 1e-4
)

// Panic messages (stable for tests).
const (
	panicRunsInvalid    = "harness: WithRuns: runs must be > 0"
	panicEpsilonInvalid = "harness: WithEpsilon: eps must be > 0 and finite"
	panicClockNil       = "harness: WithClock: clock must be non-nil"
)

// Option configures Validate, ValidateAll and Benchmark.
type Option func(*Options)

// Options holds resolved harness settings.
type Options struct {
	runs     int
	verbose  bool
	eps      float64
	clock    func() time.Time
	residual bool
	logger   zerolog.Logger
}

// WithRuns sets the number of benchmark runs. Panics if runs <= 0.
func WithRuns(runs int) Option {
	if runs <= 0 {
		panic(panicRunsInvalid)
	}

	return func(o *Options) { o.runs = runs }
}

// WithVerbose prints the solution vector after every benchmark run.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithEpsilon overrides the validation tolerance.
// Panics if eps is not strictly positive or not finite.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithClock replaces time.Now as the benchmark time source.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicClockNil)
	}

	return func(o *Options) { o.clock = now }
}

// WithResidual prints max|A·x - b| against the original system after every run.
func WithResidual() Option {
	return func(o *Options) { o.residual = true }
}

// WithLogger attaches a zerolog logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		runs:   DefaultRuns,
		eps:    DefaultEpsilon,
		clock:  time.Now,
		logger: zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
