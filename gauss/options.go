// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for reducers and the solve pipeline.
//
// Design goals:
//   - No global state: the worker count travels through NewParallel, never
//     through a process-wide setting.
//   - Safe by construction: WithX panics only on nonsensical values.
//   - One Option type shared by NewSequential, NewParallel, Solve and
//     SolveCopy; each consumer reads only the fields it needs.
package gauss

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Schedule selects how the parallel reducer partitions the rows below a pivot.
type Schedule int

const (
	// Static gives each worker one contiguous span of the rows below the pivot.
	Static Schedule = iota

	// Dynamic lets workers claim batches of rows through an atomic counter.
	Dynamic
)

// String returns the lower-case schedule name.
func (s Schedule) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("schedule(%d)", int(s))
	}
}

// ParseSchedule maps "static"/"dynamic" to a Schedule.
func ParseSchedule(s string) (Schedule, error) {
	switch s {
	case "static", "":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	default:
		return Static, fmt.Errorf("gauss: unknown schedule %q", s)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// DefaultSchedule is static contiguous chunking.
	DefaultSchedule = Static

	// DefaultBatchSize is the row batch claimed per grab under Dynamic.
	DefaultBatchSize = 16

	// DefaultStrict keeps degenerate columns silent.
	DefaultStrict = false
)

const (
	panicWorkersInvalid   = "gauss: WithWorkers: workers must be >= 0"
	panicScheduleInvalid  = "gauss: WithSchedule: unknown schedule"
	panicBatchSizeInvalid = "gauss: WithBatchSize: batch size must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers   int
	schedule  Schedule
	batchSize int
	strict    bool
	logger    zerolog.Logger
}

// WithWorkers sets the worker count of the parallel reducer.
// 0 selects runtime.GOMAXPROCS(0). Panics on negative values.
func WithWorkers(k int) Option {
	if k < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithSchedule selects Static or Dynamic row partitioning.
func WithSchedule(s Schedule) Option {
	if s != Static && s != Dynamic {
		panic(panicScheduleInvalid)
	}

	return func(o *Options) { o.schedule = s }
}

// WithBatchSize sets the batch size used by the Dynamic schedule.
func WithBatchSize(b int) Option {
	if b < 1 {
		panic(panicBatchSizeInvalid)
	}

	return func(o *Options) { o.batchSize = b }
}

// WithStrict makes Solve and SolveCopy return ErrSingular when a column had
// no usable pivot, instead of returning a meaningless solution.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithLogger attaches a zerolog logger. Degenerate columns are logged at
// debug level. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		schedule:  DefaultSchedule,
		batchSize: DefaultBatchSize,
		strict:    DefaultStrict,
		logger:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
