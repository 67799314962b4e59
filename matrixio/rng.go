// SPDX-License-Identifier: MIT

// RNG utilities for matrix generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms and worker counts.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every row gets its own stream via
//     rowRNG, so rows can be filled concurrently.

package matrixio

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultRNGSeed policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring rows get uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// rowRNG returns the independent stream for row i under seed.
func rowRNG(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(i))))
}
