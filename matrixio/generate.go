// SPDX-License-Identifier: MIT

package matrixio

import (
	"context"
	"runtime"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const opGenerate = "Generate"

const panicWorkersInvalid = "matrixio: WithWorkers: workers must be >= 0"

// Option configures Generate.
type Option func(*genOptions)

type genOptions struct {
	seed    int64
	workers int
	logger  zerolog.Logger
}

// WithSeed fixes the generator seed. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *genOptions) { o.seed = seed }
}

// WithWorkers bounds the number of goroutines filling rows.
// 0 selects runtime.GOMAXPROCS(0). Panics on negative values.
func WithWorkers(k int) Option {
	if k < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *genOptions) { o.workers = k }
}

// WithLogger attaches a zerolog logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(o *genOptions) { o.logger = l }
}

// Generate builds an n×(n+1) system whose entries are uniform integers in
// [0, r), stored as float64.
//
// Implementation:
//   - Stage 1: validate n and r; allocate the matrix.
//   - Stage 2: fan rows out over an errgroup bounded to the worker count;
//     row i always draws from stream i, so output is schedule-independent.
//   - Stage 3: stop early when ctx is cancelled.
//
// Errors:
//   - matrix.ErrInvalidDimensions (n <= 0), ErrInvalidRange (r <= 0),
//     ctx.Err() on cancellation.
func Generate(ctx context.Context, n, r int, opts ...Option) (*matrix.Augmented, error) {
	o := genOptions{logger: zerolog.Nop()}
	for _, set := range opts {
		set(&o)
	}
	if r <= 0 {
		return nil, ioErrorf(opGenerate, ErrInvalidRange)
	}
	m, err := matrix.NewAugmented(n)
	if err != nil {
		return nil, ioErrorf(opGenerate, err)
	}
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rowRNG(o.seed, i)
			row := m.Row(i)
			for j := range row {
				row[j] = float64(rng.Intn(r))
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, ioErrorf(opGenerate, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, ioErrorf(opGenerate, err)
	}
	o.logger.Debug().Int("n", n).Int("range", r).Int64("seed", normalizeSeed(o.seed)).Msg("matrix generated")

	return m, nil
}
