package stocksim

import "math/rand/v2"

// NewSource returns the source of randomness used by simulations.
// A zero seed returns a randomly seeded source, any other seed a reproducible one.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.NewPCG(seed, seed)
}
