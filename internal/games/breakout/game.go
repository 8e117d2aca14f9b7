// Package breakout implements a brick breaker: a paddle deflects balls into
// a grid of blocks until the grid is cleared or the lives run out.
package breakout

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/random"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// Mode is the top-level game state.
type Mode int

const (
	ModeMenu     Mode = iota // Title prompt, waiting for start
	ModePlaying              // Simulation running
	ModeLostLife             // Paused after a lost life
	ModeDied                 // No lives left
	ModeWin                  // Board cleared
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeLostLife:
		return "lost_life"
	case ModeDied:
		return "died"
	case ModeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Option customises a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.BreakoutConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger. Without it logs are discarded.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.baseLog = l
		}
	}
}

// WithSource fixes the random source instead of seeding one on Reset.
func WithSource(src random.Source) Option {
	return func(g *Game) { g.src = src }
}

// Game drives rounds through the mode state machine.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	baseLog *log.Logger
	log     *log.Logger

	src random.Source // Injected source, nil when seeded on Reset
	lcg *random.LCG   // Seeded source, nil when injected
	rng random.Source

	round   *Round
	roundID uuid.UUID
	mode    Mode
	now     float64 // Last wall clock seen, ms
	ticks   uint64
}

// New creates a game with default configuration. Call Reset before Step.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultBreakoutConfig(),
		runtime: core.DefaultConfig(),
		baseLog: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.baseLog
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Reset seeds the random source and starts a new round at the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.src != nil {
		g.rng = g.src
	} else {
		g.lcg = random.NewLCG(runtime.Seed)
		g.rng = g.lcg
	}
	g.ticks = 0
	g.newRound()
	g.mode = ModeMenu
}

// newRound replaces the round and gives it a fresh id for logging.
func (g *Game) newRound() {
	g.roundID = uuid.New()
	g.log = g.baseLog.With("round", g.roundID.String())
	g.round = NewRound(g.cfg, g.rng, g.log)
	g.log.Info("round started", "lives", g.round.Lives, "blocks", len(g.round.Blocks))
}

// Step advances the state machine by one frame.
// A game that was never reset starts from its default runtime config.
func (g *Game) Step(in core.InputFrame, ft core.FrameTime) core.StepResult {
	if g.round == nil {
		g.Reset(g.runtime)
	}
	g.now = ft.Now

	switch g.mode {
	case ModeMenu:
		if in.Has(core.ActionStart) {
			g.setMode(ModePlaying)
		}

	case ModePlaying:
		g.ticks++
		dt := core.ClampF(ft.Delta, 0, g.cfg.Timing.MaxFrameTime)
		switch g.round.Tick(dt, in, ft.Now) {
		case OutcomeCleared:
			g.setMode(ModeWin)
		case OutcomeDied:
			g.setMode(ModeDied)
		case OutcomeLifeLost:
			g.setMode(ModeLostLife)
		case OutcomeNone:
		}

	case ModeLostLife:
		if in.Has(core.ActionContinue) {
			g.setMode(ModePlaying)
		}

	case ModeDied, ModeWin:
		if in.Has(core.ActionReset) {
			g.newRound()
			g.setMode(ModeMenu)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) setMode(m Mode) {
	if m == g.mode {
		return
	}
	g.log.Info("mode changed", "from", g.mode, "to", m, "score", g.round.Score, "lives", g.round.Lives)
	g.mode = m
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Round exposes the running round.
func (g *Game) Round() *Round {
	return g.round
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{Mode: g.mode.String()}
	}
	return core.GameState{
		Score:    g.round.Score,
		Lives:    g.round.Lives,
		Mode:     g.mode.String(),
		Frozen:   g.mode == ModePlaying && g.round.Frozen(g.now),
		GameOver: g.mode == ModeDied || g.mode == ModeWin,
	}
}

func init() {
	registry.Register(registry.GameInfo{ID: "breakout", Title: "Breakout"}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadWithPreset(opts.ConfigPath, opts.Difficulty)
		if err != nil {
			return nil, err
		}
		return New(WithConfig(cfg), WithLogger(opts.Logger)), nil
	})
}
