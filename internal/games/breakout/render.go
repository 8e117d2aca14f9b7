package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Visual characters for terminal rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Block glyphs by remaining lives
var blockGlyphs = map[int]rune{3: '█', 2: '▓', 1: '▒'}

// Render draws the scene into a terminal cell grid, scaling the world to
// the screen size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Scene()
	if s.World.X <= 0 || s.World.Y <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / s.World.X
	sy := float64(dst.Height()) / s.World.Y

	for _, b := range s.Blocks {
		glyph, ok := blockGlyphs[b.Lives]
		if !ok {
			glyph = '░'
		}
		x, y, w, h := cellSpan(b.Rect, sx, sy)
		// Leave the last column empty so neighbours stay apart.
		if w > 1 {
			w--
		}
		dst.FillRect(x, y, w, h, glyph, b.Color)
	}

	paddleColor := core.ColorBrightWhite
	if s.Frozen {
		paddleColor = core.ColorBrightCyan
	}
	x, y, w, h := cellSpan(s.Paddle, sx, sy)
	dst.FillRect(x, y, w, h, PaddleChar, paddleColor)

	for _, b := range s.Balls {
		dst.SetColor(int(b.Center.X*sx), int(b.Center.Y*sy), BallChar, core.ColorWhite)
	}

	if s.ShowHUD {
		dst.DrawTextColor(1, 0, fmt.Sprintf("lives: %d", s.Lives), core.ColorBrightWhite)
		dst.DrawTextCentered(0, fmt.Sprintf("score: %d", s.Score), core.ColorBrightWhite)
	}

	if s.Prompt != "" {
		c := core.ColorBrightWhite
		if s.Prompt == PromptFrozen {
			c = core.ColorBrightBlue
		}
		dst.DrawTextCentered(int(float64(dst.Height())*0.6), s.Prompt, c)
	}
}

// cellSpan converts a world rectangle to a cell rectangle at least one
// cell in each direction.
func cellSpan(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(math.Floor(r.X * sx))
	y = int(math.Floor(r.Y * sy))
	w = max(1, int(math.Floor(r.Right()*sx))-x)
	h = max(1, int(math.Floor(r.Bottom()*sy))-y)
	return x, y, w, h
}
