// Package gui runs a game in a desktop window using ebiten. The window's
// logical size is the game world, so no scaling happens in the game.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

// Background is the playfield color.
var Background = color.RGBA{R: 76, G: 63, B: 47, A: 255}

var paddleColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// SceneGame is a game that can describe its frame as shapes.
type SceneGame interface {
	registry.Game
	Scene() breakout.Scene
}

// Driver adapts a game to ebiten.Game.
type Driver struct {
	game SceneGame
	cfg  core.RuntimeConfig
	log  *log.Logger
	last time.Time
}

// NewDriver wraps game. Reset is called once here.
func NewDriver(game SceneGame, cfg core.RuntimeConfig, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	game.Reset(cfg)
	return &Driver{game: game, cfg: cfg, log: logger}
}

// Update samples the keyboard and advances the game by one frame.
func (d *Driver) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1 / float64(ebiten.TPS())
	if !d.last.IsZero() {
		dt = now.Sub(d.last).Seconds()
	}
	d.last = now

	in := Intents(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	d.game.Step(in, core.FrameTime{
		Delta: dt,
		Now:   float64(now.UnixNano()) / float64(time.Millisecond),
	})
	return nil
}

// Intents builds an input frame from key state queries. Movement uses
// held keys, mode changes use fresh presses.
func Intents(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	if pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft) {
		in.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight) {
		in.Set(core.ActionRight)
	}
	if justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyEnter) {
		in.Set(core.ActionStart)
		in.Set(core.ActionContinue)
		in.Set(core.ActionReset)
	}
	if justPressed(ebiten.KeyR) {
		in.Set(core.ActionReset)
	}
	return in
}

// Draw renders the current scene.
func (d *Driver) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	s := d.game.Scene()

	for _, b := range s.Blocks {
		fillRect(screen, b.Rect, b.Color.ToRGBA())
	}
	fillRect(screen, s.Paddle, paddleColor)
	for _, b := range s.Balls {
		vector.DrawFilledCircle(screen, float32(b.Center.X), float32(b.Center.Y), float32(b.Radius), color.White, true)
	}

	if s.ShowHUD {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("lives: %d", s.Lives), 30, 30)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score: %d", s.Score), int(s.World.X/2)-30, 30)
	}
	if s.Prompt != "" {
		// The debug font is 6 px per glyph.
		x := int(s.World.X/2) - len(s.Prompt)*3
		ebitenutil.DebugPrintAt(screen, s.Prompt, x, int(s.World.Y*0.6))
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Layout fixes the logical screen to the world size.
func (d *Driver) Layout(_, _ int) (int, int) {
	s := d.game.Scene()
	return int(s.World.X), int(s.World.Y)
}

// Run opens a window and plays game until it is closed.
func Run(game SceneGame, cfg core.RuntimeConfig, logger *log.Logger) error {
	d := NewDriver(game, cfg, logger)
	s := game.Scene()

	ebiten.SetWindowSize(int(s.World.X), int(s.World.Y))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	d.log.Debug("window driver started", "game", game.ID(), "tps", ebiten.TPS())
	if err := ebiten.RunGame(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
