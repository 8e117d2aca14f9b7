package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Resolver pushes balls out of rectangles and reflects them.
type Resolver struct {
	HitboxScale    float64 // Square side in radii
	SteepThreshold float64 // Downward heading above which the ball is deflected
	Deflect        float64 // Radians
}

// NewResolver builds a resolver from the ball settings.
func NewResolver(cfg config.BallConfig) Resolver {
	return Resolver{
		HitboxScale:    cfg.HitboxScale,
		SteepThreshold: cfg.SteepThreshold,
		Deflect:        core.Radians(cfg.DeflectDegrees),
	}
}

var defaultResolver = NewResolver(config.DefaultBreakoutConfig().Ball)

// Resolve resolves ball against obj with the default ball settings.
func Resolve(ball *Ball, obj core.Rect) bool {
	return defaultResolver.Resolve(ball, obj)
}

// Resolve reports whether the ball's hitbox overlaps obj. On overlap the ball
// is moved out along the axis of least penetration and its heading is turned
// away from obj. Without overlap the ball is left untouched.
func (rs Resolver) Resolve(ball *Ball, obj core.Rect) bool {
	overlap, ok := ball.Hitbox(rs.HitboxScale).Intersection(obj)
	if !ok {
		return false
	}

	centre := obj.Center()
	s := centre.Sub(ball.Pos).Signum()

	// Steep falls are nudged away from the object's centre line.
	if ball.Vel.Y > rs.SteepThreshold {
		if ball.Pos.X < centre.X {
			ball.Vel = core.Rotate(ball.Vel, rs.Deflect)
		} else {
			ball.Vel = core.Rotate(ball.Vel, -rs.Deflect)
		}
	}

	if overlap.W > overlap.H {
		ball.Pos.Y -= s.Y * overlap.H
		if s.Y > 0 {
			ball.Vel.Y = -math.Abs(ball.Vel.Y)
		} else {
			ball.Vel.Y = math.Abs(ball.Vel.Y)
		}
	} else {
		ball.Pos.X -= s.X * overlap.W
		if s.X < 0 {
			ball.Vel.X = math.Abs(ball.Vel.X)
		} else {
			ball.Vel.X = -math.Abs(ball.Vel.X)
		}
	}

	return true
}
