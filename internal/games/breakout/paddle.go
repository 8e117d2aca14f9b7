package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Paddle is the player-controlled rectangle near the bottom of the world.
type Paddle struct {
	Rect  core.Rect
	Speed float64 // Pixels per second
}

// NewPaddle creates a paddle centred horizontally in a world of the given size.
func NewPaddle(world core.Vec2, cfg config.PaddleConfig) Paddle {
	w := world.X * cfg.WidthRatio
	h := world.Y * cfg.HeightRatio
	return Paddle{
		Rect:  core.NewRect(world.X*0.5-w*0.5, world.Y-cfg.BottomOffset, w, h),
		Speed: world.X * cfg.SpeedRatio,
	}
}

// Frozen reports whether the paddle ignores input at time now (ms).
func Frozen(now, frozenUntil float64) bool {
	return now < frozenUntil
}

// Update moves the paddle by the horizontal intent and keeps it inside
// [0, worldW-width]. While frozen it does not move at all.
func (p *Paddle) Update(dt float64, in core.InputFrame, now, frozenUntil, worldW float64) {
	if Frozen(now, frozenUntil) {
		return
	}

	p.Rect.X += in.Horizontal() * p.Speed * dt
	p.Rect.X = core.ClampF(p.Rect.X, 0, worldW-p.Rect.W)
}
