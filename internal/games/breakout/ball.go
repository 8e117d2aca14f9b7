package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/random"
)

// Ball is a moving circle. Vel is a unit heading; Speed scales it to pixels
// per second.
type Ball struct {
	Pos    core.Vec2 // Centre
	Vel    core.Vec2 // Unit length
	Radius float64
	Speed  float64
}

// NewBall creates a ball at pos heading downward with a random horizontal lean.
func NewBall(pos core.Vec2, radius, speed float64, rng random.Source) Ball {
	return Ball{
		Pos:    pos,
		Vel:    core.V(rng.FloatRange(-1, 1), 1).Normalize(),
		Radius: radius,
		Speed:  speed,
	}
}

// Update integrates the position and bounces off the left, right and top
// walls. Leaving through the bottom is handled by the round.
func (b *Ball) Update(dt, worldW float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(b.Speed * dt))

	if b.Pos.X-b.Radius < 0 {
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.X+b.Radius > worldW {
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
}

// Hitbox returns the square used for collision tests. Its origin is the
// top-left of the bounding circle and its side is scale radii, so it is
// not centred on the ball.
func (b *Ball) Hitbox(scale float64) core.Rect {
	side := b.Radius * scale
	return core.NewRect(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, side, side)
}
