// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/gauss/matrix"
	"github.com/katalvlaran/gauss/workerpool"
	"github.com/rs/zerolog"
)

// Parallel reduces with the elimination below each pivot fanned out over a
// fixed-size worker pool.
//
// Concurrency:
//   - The pivot loop, pivot search and row normalization run on the caller.
//   - For pivot i, rows i+1..n-1 are partitioned among the workers; each
//     row is written by exactly one worker and the pivot row is only read.
//   - The fan-out returns only after every row is done, so pivot i+1 sees
//     all writes of step i. No locks are involved.
//
// A Parallel owns its pool: call Close when done. Reduce must not be called
// concurrently on the same Parallel.
type Parallel struct {
	pool      *workerpool.Pool
	cursor    workerpool.Cursor // Dynamic only; reset per pivot
	schedule  Schedule
	batchSize int
	log       zerolog.Logger
}

// NewParallel builds a parallel reducer.
//
// Options:
//   - WithWorkers(k): pool size; 0 ⇒ runtime.GOMAXPROCS(0).
//   - WithSchedule / WithBatchSize: row partitioning policy.
//   - WithLogger.
func NewParallel(opts ...Option) *Parallel {
	o := gatherOptions(opts...)
	p := &Parallel{
		pool:      workerpool.New(o.workers),
		schedule:  o.schedule,
		batchSize: o.batchSize,
		log:       o.logger,
	}
	p.log.Debug().
		Int("workers", p.pool.Workers()).
		Stringer("schedule", p.schedule).
		Msg("parallel reducer ready")

	return p
}

// Workers returns the pool size.
func (p *Parallel) Workers() int { return p.pool.Workers() }

// Name identifies the reducer in reports.
func (p *Parallel) Name() string {
	return fmt.Sprintf("multi-thread(%d)", p.pool.Workers())
}

// Close releases the worker goroutines. Reduce still works afterwards but
// runs inline.
func (p *Parallel) Close() { p.pool.Close() }

// Reduce mutates m into row-echelon form; same contract as Sequential.Reduce.
func (p *Parallel) Reduce(m *matrix.Augmented) Stats {
	n := m.N()

	return echelon(m, p.log, func(pivot []float64, i int) {
		first := i + 1
		if p.pool.Workers() == 1 || n-first < 2 {
			eliminateRange(m, pivot, i, first, n)
			return
		}
		switch p.schedule {
		case Dynamic:
			p.cursor.Reset(first, n, p.batchSize)
			p.pool.Broadcast(func(_, _ int) {
				for {
					lo, hi, ok := p.cursor.Claim()
					if !ok {
						return
					}
					eliminateRange(m, pivot, i, lo, hi)
				}
			})
		default:
			p.pool.Broadcast(func(w, k int) {
				lo, hi := workerpool.Span(first, n, w, k)
				eliminateRange(m, pivot, i, lo, hi)
			})
		}
	})
}
