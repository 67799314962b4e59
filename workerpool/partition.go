// SPDX-License-Identifier: MIT

package workerpool

import "sync/atomic"

// Span returns worker w's share [start, end) of the range [lo, hi) split into
// k contiguous parts. Part sizes differ by at most one; the first
// (hi-lo) mod k parts get the extra index. Empty when w has nothing to do.
//
// Complexity: O(1).
func Span(lo, hi, w, k int) (start, end int) {
	n := hi - lo
	if n <= 0 || k <= 0 || w < 0 || w >= k {
		return lo, lo
	}
	q, r := n/k, n%k
	start = lo + w*q + min(w, r)
	end = start + q
	if w < r {
		end++
	}

	return start, end
}

// Cursor hands out consecutive batches of a range to concurrent claimers.
// Reset before each use; a Cursor must not be reset while being claimed from.
type Cursor struct {
	next  atomic.Int64
	hi    int
	batch int
}

// Reset prepares c to hand out [lo, hi) in batches of size batch (min 1).
func (c *Cursor) Reset(lo, hi, batch int) {
	if batch < 1 {
		batch = 1
	}
	c.hi, c.batch = hi, batch
	c.next.Store(int64(lo))
}

// Claim returns the next unclaimed batch, or ok == false once the range is
// exhausted. Every index is returned to exactly one caller.
func (c *Cursor) Claim() (start, end int, ok bool) {
	start = int(c.next.Add(int64(c.batch))) - c.batch
	if start >= c.hi {
		return 0, 0, false
	}

	return start, min(start+c.batch, c.hi), true
}
