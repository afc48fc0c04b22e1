// Package dice wraps a random source behind the small set of draws the
// simulation needs: movement impulses, spawn type selection and color
// cycling. Injecting the source keeps behavior deterministic in tests.
package dice

import "math/rand"

// Roller draws random values from a configurable source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// IntN returns a uniform int in [0, n).
func (r *Roller) IntN(n int) int {
	return r.rng.Intn(n)
}

// Between returns a uniform int in [lo, hi] inclusive.
func (r *Roller) Between(lo, hi int) int {
	return lo + r.rng.Intn(hi-lo+1)
}

// Float returns a uniform float64 in [lo, hi).
func (r *Roller) Float(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// Coin reports true with probability 1/2.
func (r *Roller) Coin() bool {
	return r.rng.Intn(2) == 0
}

// Sign returns +1 or -1 with equal probability.
func (r *Roller) Sign() float64 {
	if r.Coin() {
		return 1
	}
	return -1
}
