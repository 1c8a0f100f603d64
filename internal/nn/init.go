package nn

import (
	"math/rand"
	"time"
)

// weightBound is the half-width of the uniform range new weights are drawn from.
const weightBound = 1.0

// Uniform draws a weight from U[-bound, bound) using rng.
func Uniform(rng *rand.Rand, bound float64) float64 {
	return (rng.Float64()*2.0 - 1.0) * bound
}

// NewRand returns a generator seeded with seed.
//
// Networks built from generators with the same seed start from identical weights.
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Weight initialization is not security-critical.
	return rand.New(rand.NewSource(seed))
}

// defaultRand is used when the caller does not supply a generator.
func defaultRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}
