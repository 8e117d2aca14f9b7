package breakout

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/random"
)

// BlockKind decides what happens when a block is destroyed.
type BlockKind int

const (
	KindRegular      BlockKind = iota // Score only
	KindSpawnBall                     // Releases an extra ball
	KindFreezePaddle                  // Releases an extra ball and freezes the paddle
)

// String returns the kind name used in logs.
func (k BlockKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindSpawnBall:
		return "spawn_ball"
	case KindFreezePaddle:
		return "freeze_paddle"
	default:
		return "unknown"
	}
}

// Block is a destructible brick.
type Block struct {
	Rect  core.Rect
	Lives int
	Score int // Initial lives, awarded on destruction
	Kind  BlockKind
}

// NewBlock rolls lives and kind for a block occupying rect.
func NewBlock(rect core.Rect, rng random.Source, cfg config.BlocksConfig) Block {
	lives := rng.IntRange(cfg.MinLives, cfg.MaxLives)
	return Block{
		Rect:  rect,
		Lives: lives,
		Score: lives,
		Kind:  RollKind(rng),
	}
}

// RollKind draws a block kind: a d10 showing 2 gives a spawner, a d10
// showing 3 followed by a d3 showing 2 gives a freezer.
func RollKind(rng random.Source) BlockKind {
	switch rng.IntRange(1, 10) {
	case 2:
		return KindSpawnBall
	case 3:
		if rng.IntRange(1, 3) == 2 {
			return KindFreezePaddle
		}
		return KindRegular
	default:
		return KindRegular
	}
}

// Color maps kind and remaining lives to a palette entry.
func (b Block) Color() core.Color {
	switch b.Kind {
	case KindRegular:
		switch b.Lives {
		case 3:
			return core.ColorBrightGreen
		case 2:
			return core.ColorBrightYellow
		case 1:
			return core.ColorBrightRed
		}
	case KindSpawnBall:
		switch b.Lives {
		case 3:
			return core.ColorGreen
		case 2:
			return core.ColorOrange
		case 1:
			return core.ColorRed
		}
	case KindFreezePaddle:
		switch b.Lives {
		case 3:
			return core.ColorBlue
		case 2:
			return core.ColorBrightBlue
		case 1:
			return core.ColorBrightCyan
		}
	}
	return core.ColorGray
}

// BuildBoard lays out a centred grid of blocks for a world of the given size.
func BuildBoard(world core.Vec2, cfg config.BlocksConfig, rng random.Source) []Block {
	bw := world.X * cfg.WidthRatio
	bh := world.Y * cfg.HeightRatio
	pad := bw * cfg.PaddingRatio
	cellW, cellH := bw+pad, bh+pad

	cols := int(world.X / cellW * cfg.ColumnsFill)
	rows := int(world.Y / cellH * cfg.RowsFill)
	if cols <= 0 || rows <= 0 {
		return nil
	}

	startX := (world.X - cellW*float64(cols)) * 0.5
	blocks := make([]Block, 0, cols*rows)
	for i := range cols * rows {
		x := startX + float64(i%cols)*cellW
		y := cfg.Top + float64(i/cols)*cellH
		blocks = append(blocks, NewBlock(core.NewRect(x, y, bw, bh), rng, cfg))
	}
	return blocks
}
