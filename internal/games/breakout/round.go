package breakout

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/random"
)

// Outcome is what a single tick meant for the round.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Keep playing
	OutcomeLifeLost                // Balls ran out, lives remain
	OutcomeDied                    // No lives left
	OutcomeCleared                 // Board is empty
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLifeLost:
		return "life_lost"
	case OutcomeDied:
		return "died"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Round owns everything that lives between two resets: score, lives,
// the paddle, balls and blocks.
type Round struct {
	World       core.Vec2
	Score       int
	Lives       int
	FreezeUntil float64 // Wall clock in ms
	Ticks       int
	Paddle      Paddle
	Balls       []Ball
	Blocks      []Block

	cfg        config.BreakoutConfig
	resolver   Resolver
	difficulty *config.DifficultyManager
	rng        random.Source
	log        *log.Logger
	lastScore  int
}

// NewRound rolls a fresh round: lives, board and one ball per life.
func NewRound(cfg config.BreakoutConfig, rng random.Source, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	world := core.V(cfg.World.Width, cfg.World.Height)
	r := &Round{
		World:      world,
		Paddle:     NewPaddle(world, cfg.Paddle),
		cfg:        cfg,
		resolver:   NewResolver(cfg.Ball),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		log:        logger,
	}

	r.Lives = rng.IntRange(cfg.Gameplay.MinLives, cfg.Gameplay.MaxLives)
	r.Blocks = BuildBoard(world, cfg.Blocks, rng)
	r.Balls = r.launchBalls(r.Lives)
	return r
}

// Frozen reports whether the paddle is frozen at time now (ms).
func (r *Round) Frozen(now float64) bool {
	return Frozen(now, r.FreezeUntil)
}

// Tick advances the round by dt seconds. now is the wall clock in ms.
func (r *Round) Tick(dt float64, in core.InputFrame, now float64) Outcome {
	r.Ticks++
	r.Paddle.Update(dt, in, now, r.FreezeUntil, r.World.X)

	started := len(r.Balls)
	var queued []Ball

	// Filter in place: each ball is read once and written at or before its
	// own index.
	kept := r.Balls[:0]
	for i := range r.Balls {
		ball := r.Balls[i]
		ball.Update(dt, r.World.X)
		r.resolver.Resolve(&ball, r.Paddle.Rect)

		for j := 0; j < len(r.Blocks); {
			if !r.resolver.Resolve(&ball, r.Blocks[j].Rect) {
				j++
				continue
			}
			r.Blocks[j].Lives--
			if r.Blocks[j].Lives > 0 {
				j++
				continue
			}
			queued = r.destroy(r.Blocks[j], now, queued)
			// The next block slides into j, so j is not advanced.
			r.Blocks = slices.Delete(r.Blocks, j, j+1)
		}

		if ball.Pos.Y > r.dropLine() {
			continue
		}
		kept = append(kept, ball)
	}
	r.Balls = kept
	dropped := started - len(r.Balls)

	if len(r.Blocks) == 0 {
		r.Balls = append(r.Balls, queued...)
		r.checkInvariants()
		return OutcomeCleared
	}

	lifeLost := dropped > 0 && len(queued) == 0 && (started == 1 || len(r.Balls) == 0)
	if lifeLost {
		r.loseLife()
	}
	r.Balls = append(r.Balls, queued...)
	r.checkInvariants()

	switch {
	case r.Lives <= 0:
		return OutcomeDied
	case lifeLost:
		return OutcomeLifeLost
	default:
		return OutcomeNone
	}
}

// destroy scores a depleted block and applies its effect.
func (r *Round) destroy(b Block, now float64, queued []Ball) []Ball {
	r.Score += b.Score
	r.log.Debug("block destroyed", "kind", b.Kind, "points", b.Score, "score", r.Score, "left", len(r.Blocks)-1)

	switch b.Kind {
	case KindRegular:
	case KindSpawnBall:
		queued = append(queued, r.newBall(b.Rect.Pos()))
		r.log.Debug("ball spawned", "x", b.Rect.X, "y", b.Rect.Y)
	case KindFreezePaddle:
		queued = append(queued, r.newBall(b.Rect.Pos()))
		r.FreezeUntil = now + r.cfg.Gameplay.FreezeMillis
		r.log.Debug("paddle frozen", "until", r.FreezeUntil)
	}
	return queued
}

// loseLife takes a life, recentres the paddle and, if any lives are left,
// launches one ball per remaining life.
func (r *Round) loseLife() {
	r.Lives--
	r.Paddle = NewPaddle(r.World, r.cfg.Paddle)
	r.Balls = r.Balls[:0]
	if r.Lives > 0 {
		r.Balls = r.launchBalls(r.Lives)
	}
	r.log.Debug("life lost", "lives", r.Lives, "score", r.Score)
}

// launchBalls creates n balls at the launch point.
func (r *Round) launchBalls(n int) []Ball {
	at := core.V(r.World.X*r.cfg.Ball.LaunchX, r.World.Y*r.cfg.Ball.LaunchY)
	balls := make([]Ball, 0, n)
	for range n {
		balls = append(balls, r.newBall(at))
	}
	return balls
}

func (r *Round) newBall(at core.Vec2) Ball {
	radius := (r.World.X + r.World.Y) * r.cfg.Ball.RadiusRatio
	speed := r.difficulty.Speed(r.World.Y*r.cfg.Ball.SpeedRatio, r.Score, r.Ticks)
	return NewBall(at, radius, speed, r.rng)
}

// dropLine is the height below which a ball is lost.
func (r *Round) dropLine() float64 {
	return r.World.Y - r.Paddle.Rect.H*r.cfg.Paddle.DropMargin
}
