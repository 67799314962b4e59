// SPDX-License-Identifier: MIT

// Package workerpool runs one task on every worker of a fixed set of
// long-lived goroutines and waits for all of them.
//
// The shape fits step-wise algorithms such as row elimination: for each step
// the caller broadcasts a closure, every worker runs it once with its own
// worker index, and Broadcast returns only when all workers are done. The
// return is the barrier between steps, and writes made during one step are
// visible to the caller and to the next step.
//
// How a worker finds its share of the step is up to the closure:
//   - Span gives worker w a fixed contiguous slice of a range (static).
//   - Cursor lets workers claim batches from a shared counter (dynamic).
//
// Usage:
//
//	pool := workerpool.New(4)
//	defer pool.Close()
//
//	for step := 0; step < steps; step++ {
//	    pool.Broadcast(func(w, k int) {
//	        lo, hi := workerpool.Span(step+1, n, w, k)
//	        process(step, lo, hi)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Task is run once per worker; w is the worker index in [0, k).
type Task func(w, k int)

type job struct {
	task Task
	done *sync.WaitGroup
}

// Pool owns k worker goroutines, each fed through its own channel.
//
// Broadcast may be called from several goroutines; it must not race with
// Close.
type Pool struct {
	inbox     []chan job
	exited    sync.WaitGroup
	closeOnce sync.Once
	closed    atomic.Bool
}

// New starts a pool with k workers. k <= 0 selects runtime.GOMAXPROCS(0).
func New(k int) *Pool {
	if k <= 0 {
		k = runtime.GOMAXPROCS(0)
	}
	p := &Pool{inbox: make([]chan job, k)}
	p.exited.Add(k)
	for w := range p.inbox {
		p.inbox[w] = make(chan job)
		go p.serve(w, p.inbox[w])
	}

	return p
}

func (p *Pool) serve(w int, in <-chan job) {
	defer p.exited.Done()
	k := len(p.inbox)
	for j := range in {
		j.task(w, k)
		j.done.Done()
	}
}

// Workers returns k.
func (p *Pool) Workers() int { return len(p.inbox) }

// Broadcast runs t on every worker and blocks until all have returned.
// After Close, t runs on the caller for w = 0..k-1 in order.
func (p *Pool) Broadcast(t Task) {
	k := len(p.inbox)
	if p.closed.Load() {
		for w := 0; w < k; w++ {
			t(w, k)
		}
		return
	}

	var done sync.WaitGroup
	done.Add(k)
	for _, in := range p.inbox {
		in <- job{task: t, done: &done}
	}
	done.Wait()
}

// Close stops the workers and waits for them to exit. Idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		for _, in := range p.inbox {
			close(in)
		}
		p.exited.Wait()
	})
}
