package breakout

import "math"

// Snapshot flattens the game state to primitives for comparisons.
// Floats are stored as their IEEE bit patterns.
type Snapshot struct {
	Tick        uint64
	Mode        int
	Score       int
	Lives       int
	FreezeUntil uint64
	Paddle      [4]uint64 // X, Y, W, H

	// Each ball is 4 values: X, Y, VX, VY
	BallCount int
	BallData  []uint64

	// Each block is 3 values: X, Lives, Kind
	BlockCount int
	BlockData  []uint64

	RNGState uint64 // Zero when the source is injected
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	if r == nil {
		return Snapshot{Mode: int(g.mode)}
	}

	balls := make([]uint64, 0, len(r.Balls)*4)
	for _, b := range r.Balls {
		balls = append(balls,
			math.Float64bits(b.Pos.X), math.Float64bits(b.Pos.Y),
			math.Float64bits(b.Vel.X), math.Float64bits(b.Vel.Y))
	}

	blocks := make([]uint64, 0, len(r.Blocks)*3)
	for _, b := range r.Blocks {
		blocks = append(blocks, math.Float64bits(b.Rect.X), uint64(b.Lives), uint64(b.Kind)) //#nosec G115 -- small non-negative values
	}

	var rngState uint64
	if g.lcg != nil {
		rngState = g.lcg.State()
	}

	return Snapshot{
		Tick:        g.ticks,
		Mode:        int(g.mode),
		Score:       r.Score,
		Lives:       r.Lives,
		FreezeUntil: math.Float64bits(r.FreezeUntil),
		Paddle: [4]uint64{
			math.Float64bits(r.Paddle.Rect.X), math.Float64bits(r.Paddle.Rect.Y),
			math.Float64bits(r.Paddle.Rect.W), math.Float64bits(r.Paddle.Rect.H),
		},
		BallCount:  len(r.Balls),
		BallData:   balls,
		BlockCount: len(r.Blocks),
		BlockData:  blocks,
		RNGState:   rngState,
	}
}

// Hash returns a simple hash of the snapshot for quick comparison.
func (snap Snapshot) Hash() uint64 {
	h := uint64(17)
	h = h*31 + snap.Tick
	h = h*31 + uint64(snap.Mode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + snap.FreezeUntil
	for _, v := range snap.Paddle {
		h = h*31 + v
	}
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	for _, v := range snap.BallData {
		h = h*31 + v
	}
	h = h*31 + uint64(snap.BlockCount) //#nosec G115 -- hash computation
	for _, v := range snap.BlockData {
		h = h*31 + v
	}
	h = h*31 + snap.RNGState
	return h
}
