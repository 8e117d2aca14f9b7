package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Prompts shown over the playfield.
const (
	PromptStart    = "press space to start"
	PromptContinue = "press space to continue"
	PromptFrozen   = "Frozen"
)

// Circle is a drawable ball.
type Circle struct {
	Center core.Vec2
	Radius float64
}

// BlockView is a drawable block.
type BlockView struct {
	Rect  core.Rect
	Kind  BlockKind
	Lives int
	Color core.Color
}

// Scene is a copy of everything a frame driver needs to draw one frame.
// It shares no memory with the game.
type Scene struct {
	World   core.Vec2
	Paddle  core.Rect
	Balls   []Circle
	Blocks  []BlockView
	Score   int
	Lives   int
	Mode    Mode
	Frozen  bool
	ShowHUD bool
	Prompt  string
}

// Scene snapshots the current frame.
func (g *Game) Scene() Scene {
	if g.round == nil {
		return Scene{Mode: g.mode}
	}
	r := g.round

	s := Scene{
		World:   r.World,
		Paddle:  r.Paddle.Rect,
		Balls:   make([]Circle, len(r.Balls)),
		Blocks:  make([]BlockView, len(r.Blocks)),
		Score:   r.Score,
		Lives:   r.Lives,
		Mode:    g.mode,
		Frozen:  g.mode == ModePlaying && r.Frozen(g.now),
		ShowHUD: g.mode == ModePlaying || g.mode == ModeLostLife,
	}
	for i, b := range r.Balls {
		s.Balls[i] = Circle{Center: b.Pos, Radius: b.Radius}
	}
	for i, b := range r.Blocks {
		s.Blocks[i] = BlockView{Rect: b.Rect, Kind: b.Kind, Lives: b.Lives, Color: b.Color()}
	}
	s.Prompt = prompt(g.mode, r.Score, s.Frozen)
	return s
}

func prompt(m Mode, score int, frozen bool) string {
	switch m {
	case ModeMenu:
		return PromptStart
	case ModeLostLife:
		return PromptContinue
	case ModeDied:
		return fmt.Sprintf("you died! %d score", score)
	case ModeWin:
		return fmt.Sprintf("you win! %d score", score)
	case ModePlaying:
		if frozen {
			return PromptFrozen
		}
	}
	return ""
}
