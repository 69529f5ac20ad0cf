package falling

import "math/rand/v2"

// Source is the randomness capability consumed by particle spawning.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a deterministic PCG-backed Source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newRandomSource returns a Source seeded from the runtime's generator.
func newRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomFloat returns lo unchanged when lo == hi and never consults src in
// that case. Otherwise it returns a uniformly distributed value in [lo, hi).
func RandomFloat(src Source, lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

// RandomIndex returns a uniformly distributed integer in [lo, hi).
// hi must be greater than lo.
func RandomIndex(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}
