// Package random isolates every random decision the simulation makes behind a
// small interface so tests can substitute scripted sequences.
package random

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

import "time"

// Source supplies random numbers to the simulation.
type Source interface {
	// IntRange returns a uniformly distributed int in [lo, hi].
	IntRange(lo, hi int) int
	// FloatRange returns a uniformly distributed float64 in [lo, hi).
	FloatRange(lo, hi float64) float64
}

// LCG is a deterministic pseudo-random number generator.
// Uses a 64-bit Linear Congruential Generator.
type LCG struct {
	state uint64
}

// NewLCG creates a new generator with the given seed.
// A zero seed is replaced with one derived from the wall clock.
func NewLCG(seed int64) *LCG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// Next generates the next random uint64.
func (r *LCG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State exposes the internal state for snapshots.
func (r *LCG) State() uint64 {
	return r.state
}

// Intn returns a random int in [0, n).
func (r *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than the low ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// IntRange returns a random int in [lo, hi].
func (r *LCG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatRange returns a random float64 in [lo, hi).
func (r *LCG) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
