// Package randutil provides the random source abstraction used by quiz generation.
package randutil

import "math/rand/v2"

// Rand is the subset of *rand.Rand the quiz engine draws from.
// An implementation is not required to be safe for concurrent use; callers
// obtain one per request from a Factory.
type Rand interface {
	IntN(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// Factory returns a fresh, independent Rand.
type Factory func() Rand

// NewPCG returns a Factory producing PCG generators seeded from the
// runtime's concurrency-safe global source.
func NewPCG() Factory {
	return func() Rand {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// Seeded returns a Factory whose generators all start from the same seed.
// Two generators from it produce identical sequences.
func Seeded(seed1, seed2 uint64) Factory {
	return func() Rand {
		return rand.New(rand.NewPCG(seed1, seed2))
	}
}

// Sample draws min(k, len(items)) elements uniformly without replacement.
// The input slice is not modified.
func Sample[T any](r Rand, items []T, k int) []T {
	k = min(k, len(items))
	if k <= 0 {
		return nil
	}
	out := make([]T, 0, k)
	for _, ix := range r.Perm(len(items))[:k] {
		out = append(out, items[ix])
	}
	return out
}

// Shuffle permutes items in place.
func Shuffle[T any](r Rand, items []T) {
	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
