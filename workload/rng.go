package workload

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// mirroring tsp/rng.go's policy.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed==0 maps to
// defaultRNGSeed, otherwise the seed is used verbatim. Never reaches for
// the global math/rand generator, so two calls with the same seed always
// produce the same stream regardless of what else has run in the process.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
