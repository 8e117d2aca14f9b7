package breakout

import (
	"fmt"
	"math"
)

const unitTolerance = 1e-6

// assertf panics with a formatted message when cond is false in debug builds.
// In regular builds it compiles down to nothing.
func assertf(cond bool, format string, args ...any) {
	if debugAsserts && !cond {
		panic(fmt.Sprintf("breakout: "+format, args...))
	}
}

// checkInvariants verifies the round after a tick.
func (r *Round) checkInvariants() {
	if !debugAsserts {
		return
	}
	assertf(r.Lives >= 0, "lives went negative: %d", r.Lives)
	assertf(r.Score >= r.lastScore, "score decreased: %d -> %d", r.lastScore, r.Score)
	r.lastScore = r.Score
	for i, b := range r.Balls {
		l := b.Vel.Len()
		assertf(math.Abs(l-1) < unitTolerance, "ball %d heading has length %v", i, l)
	}
}
