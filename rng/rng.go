// Package rng declares the one interface the solver needs from an injected
// random source, and a single adapter over the standard library's
// math/rand/v2. The RNG is an external collaborator: the core never ships
// a "real" generator of its own, only the seam it plugs into.
package rng

import "math/rand/v2"

// Source is any uniform source of 64-bit integers. The solver only draws
// from it through Choose (to pick a set bit of a cell's domain and, under
// random tie-breaking, a cell), so this is the entire contract it needs.
type Source interface {
	Uint64() uint64
}

// Std adapts math/rand/v2's *rand.Rand to Source. It is the one concrete
// implementation this module bundles, offered for convenience and tests;
// production callers are expected to inject their own seeded source.
type Std struct {
	r *rand.Rand
}

// NewStd returns a Std seeded deterministically from seed, so that two
// Solve calls with the same seed and tie-break policy produce identical
// solutions.
func NewStd(seed uint64) *Std {
	return &Std{r: rand.New(rand.NewPCG(seed, seed))}
}

// Uint64 implements Source.
func (s *Std) Uint64() uint64 { return s.r.Uint64() }

// Choose picks a uniformly random index in [0, n) using src. It is used by
// the solver to select a set bit from a cell's domain without needing src
// to know anything about bitsets.
func Choose(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(src.Uint64() % uint64(n))
}
