package knapsack

import "math/rand/v2"

// Rand is the source of uniform randomness used by the engine.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n), panics if n <= 0
}

// NewRand returns a PCG-backed generator for the given seed.
// A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
