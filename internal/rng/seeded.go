package rng

import (
	"math/rand"
	"time"
)

// Seeded is a reproducible generator backed by math/rand
// It is not safe for concurrent use; each table owns its own instance.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator for the seed
// A seed of 0 seeds from the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Seed returns the seed in use
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0)
func (s *Seeded) Float64() float64 {
	return s.rng.Float64()
}

// New returns a generator for the seed, using crypto/rand when the seed is 0
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
