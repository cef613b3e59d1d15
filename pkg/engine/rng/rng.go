// Package rng provides the seedable random source threaded through level generation.
package rng

import (
	"math/rand"
	"time"
)

// Source is the random stream consumed by the generators. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Rand is a seeded Source that remembers its seed for replay
type Rand struct {
	*rand.Rand
	seed int64
}

// New creates a Source from seed. A seed of 0 means a seed is derived from the clock;
// Seed reports the value actually used.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		Rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed
func (r *Rand) Seed() int64 {
	return r.seed
}

// Range returns a value in [lo, hi). An empty range returns lo.
func Range(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo)
}

// Chance returns true with probability p
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
