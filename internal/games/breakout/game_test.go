package breakout

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

const frame = 1.0 / 60

// frameAt returns the frame time for tick n of a 60 fps run.
func frameAt(n int) core.FrameTime {
	return core.FrameTime{Delta: frame, Now: float64(n) * 1000 * frame}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime)
	return g
}

func TestGameStartsInMenu(t *testing.T) {
	g := newTestGame(t)

	if g.Mode() != ModeMenu {
		t.Fatalf("got mode %v, expected menu", g.Mode())
	}

	// Held movement keys do not start the game
	g.Step(core.FrameOf(core.ActionLeft, core.ActionContinue), frameAt(1))
	if g.Mode() != ModeMenu {
		t.Errorf("got mode %v, expected menu without a start intent", g.Mode())
	}

	balls := len(g.Round().Balls)
	res := g.Step(core.FrameOf(core.ActionStart), frameAt(2))
	if g.Mode() != ModePlaying || res.State.Mode != "playing" {
		t.Errorf("got mode %v, expected playing", g.Mode())
	}
	if len(g.Round().Balls) != balls || g.Snapshot().Tick != 0 {
		t.Error("the start frame should not advance the simulation")
	}
}

func TestGameStepWithoutReset(t *testing.T) {
	g := New()

	g.Step(core.FrameOf(core.ActionStart), frameAt(1))
	if g.Round() == nil {
		t.Fatal("expected a round after the first step")
	}
	if g.Mode() != ModePlaying {
		t.Errorf("got mode %v, expected playing", g.Mode())
	}
}

func TestGameScoreNeverDecreases(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New()
		rt := testRuntime
		rt.Seed = seed
		g.Reset(rt)

		last := 0
		for i := range 3000 {
			in := core.FrameOf(core.ActionStart, core.ActionContinue)
			if (i/30+int(seed))%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			res := g.Step(in, frameAt(i))
			if res.State.Score < last {
				t.Fatalf("seed %d tick %d: got score %d, expected at least %d", seed, i, res.State.Score, last)
			}
			last = res.State.Score
		}
	}
}

func TestGameLostLifeAndContinue(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionStart), frameAt(1))

	r := g.Round()
	lives := r.Lives
	r.Balls = []Ball{fallingBall()}
	r.Blocks = []Block{farBlock()}

	g.Step(core.NewInputFrame(), frameAt(2))
	if g.Mode() != ModeLostLife {
		t.Fatalf("got mode %v, expected lost_life", g.Mode())
	}
	if g.State().Lives != lives-1 {
		t.Errorf("got %d lives, expected %d", g.State().Lives, lives-1)
	}

	// The round is paused until continue
	snap := g.Snapshot()
	g.Step(core.FrameOf(core.ActionStart, core.ActionReset), frameAt(3))
	if g.Mode() != ModeLostLife || g.Snapshot().Hash() != snap.Hash() {
		t.Error("round should stay paused without a continue intent")
	}

	g.Step(core.FrameOf(core.ActionContinue), frameAt(4))
	if g.Mode() != ModePlaying {
		t.Errorf("got mode %v, expected playing", g.Mode())
	}
}

func TestGameDiedAndReset(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionStart), frameAt(1))

	r := g.Round()
	r.Lives = 1
	r.Score = 17
	r.Balls = []Ball{fallingBall()}
	r.Blocks = []Block{farBlock()}

	res := g.Step(core.NewInputFrame(), frameAt(2))
	if g.Mode() != ModeDied || !res.State.GameOver {
		t.Fatalf("got mode %v, expected died", g.Mode())
	}
	if got := g.Scene().Prompt; got != "you died! 17 score" {
		t.Errorf("got prompt %q, expected %q", got, "you died! 17 score")
	}

	g.Step(core.FrameOf(core.ActionContinue), frameAt(3))
	if g.Mode() != ModeDied {
		t.Error("continue should not leave the died screen")
	}

	g.Step(core.FrameOf(core.ActionReset), frameAt(4))
	if g.Mode() != ModeMenu {
		t.Fatalf("got mode %v, expected menu", g.Mode())
	}
	st := g.State()
	if st.Score != 0 || st.Lives < 4 || st.Lives > 6 || st.GameOver {
		t.Errorf("round not reinitialised: %+v", st)
	}
	if len(g.Round().Blocks) != 49 || len(g.Round().Balls) != st.Lives {
		t.Errorf("got %d blocks and %d balls, expected a full board and one ball per life",
			len(g.Round().Blocks), len(g.Round().Balls))
	}
}

func TestGameWin(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionStart), frameAt(1))

	r := g.Round()
	r.Blocks = []Block{{Rect: core.NewRect(60, 300, 100, 10), Lives: 1, Score: 1}}
	r.Balls = []Ball{{Pos: core.V(100, 290), Vel: core.V(0.6, 0.8), Radius: 28, Speed: 504}}

	g.Step(core.NewInputFrame(), frameAt(2))
	if g.Mode() != ModeWin {
		t.Fatalf("got mode %v, expected win", g.Mode())
	}
	if got := g.Scene().Prompt; got != "you win! 1 score" {
		t.Errorf("got prompt %q, expected %q", got, "you win! 1 score")
	}
}

func TestGameClampsDelta(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionStart), frameAt(1))

	r := g.Round()
	r.Blocks = []Block{farBlock()}
	r.Balls = []Ball{{Pos: core.V(200, 300), Vel: core.V(0, -1), Radius: 28, Speed: 504}}

	// A two second stall moves the ball by at most one max frame
	g.Step(core.NewInputFrame(), core.FrameTime{Delta: 2, Now: 2000})
	moved := 300 - r.Balls[0].Pos.Y
	maxMove := 504 * g.Config().Timing.MaxFrameTime
	if moved > maxMove+1e-9 {
		t.Errorf("ball moved %v, expected at most %v", moved, maxMove)
	}

	y := r.Balls[0].Pos.Y
	g.Step(core.NewInputFrame(), core.FrameTime{Delta: -1, Now: 2001})
	if r.Balls[0].Pos.Y != y {
		t.Error("negative delta should not move the ball")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		for i := range 600 {
			in := core.NewInputFrame()
			switch {
			case i == 5:
				in.Set(core.ActionStart)
			case i%40 < 20:
				in.Set(core.ActionLeft)
			default:
				in.Set(core.ActionRight)
			}
			// Press everything else every so often to walk through the modes
			if i%90 == 0 {
				in.Set(core.ActionContinue)
				in.Set(core.ActionReset)
			}
			g.Step(in, frameAt(i))
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestSnapshotHashChanges(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot().Hash()

	g.Step(core.FrameOf(core.ActionStart), frameAt(1))
	g.Step(core.NewInputFrame(), frameAt(2))

	if g.Snapshot().Hash() == before {
		t.Error("hash should change once balls move")
	}
}

func TestScenePrompts(t *testing.T) {
	g := newTestGame(t)

	s := g.Scene()
	if s.Prompt != PromptStart || s.ShowHUD {
		t.Errorf("menu scene: prompt %q hud %v", s.Prompt, s.ShowHUD)
	}

	g.Step(core.FrameOf(core.ActionStart), frameAt(1))
	g.Round().FreezeUntil = 10_000
	g.Step(core.NewInputFrame(), frameAt(2))

	s = g.Scene()
	if !s.Frozen || s.Prompt != PromptFrozen || !g.State().Frozen {
		t.Errorf("frozen scene: prompt %q frozen %v", s.Prompt, s.Frozen)
	}
	if !s.ShowHUD {
		t.Error("HUD should be visible while playing")
	}

	// Scenes are copies
	s.Blocks[0].Lives = 99
	if g.Round().Blocks[0].Lives == 99 {
		t.Error("Scene shares block memory with the round")
	}
}

func TestRenderHUDAndPrompt(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), PromptStart) {
		t.Errorf("menu render missing %q:\n%s", PromptStart, scr.String())
	}

	g.Step(core.FrameOf(core.ActionStart), frameAt(1))
	g.Render(scr)

	top := scr.Row(0)
	if !strings.Contains(top, "score: 0") || !strings.Contains(top, "lives: ") {
		t.Errorf("HUD row = %q", top)
	}
	if !strings.Contains(scr.String(), string(PaddleChar)) {
		t.Error("paddle not rendered")
	}
	if !strings.Contains(scr.String(), "█") && !strings.Contains(scr.String(), "▓") && !strings.Contains(scr.String(), "▒") {
		t.Error("blocks not rendered")
	}
}

func TestRenderScalesToScreen(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionStart), frameAt(1))

	r := g.Round()
	r.Blocks = []Block{{Rect: core.NewRect(0, 300, 400, 30), Lives: 3, Score: 3}}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// 0..400 of 800 px maps to columns 0..39, last column left as a gap
	cell := scr.GetCell(0, 12)
	if cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("got cell %+v at (0,12), expected a bright green block", cell)
	}
	if scr.Get(38, 12) != '█' || scr.Get(39, 12) == '█' {
		t.Errorf("block should end at column 38, row = %q", scr.Row(12))
	}
}

func TestGameLogsModeChanges(t *testing.T) {
	var buf bytes.Buffer
	g := New(WithLogger(log.New(&buf)))
	g.Reset(testRuntime)
	g.Step(core.FrameOf(core.ActionStart), frameAt(1))

	out := buf.String()
	if !strings.Contains(out, "round started") || !strings.Contains(out, "mode changed") {
		t.Errorf("missing log lines:\n%s", out)
	}
	if !strings.Contains(out, "round=") {
		t.Errorf("log lines should carry the round id:\n%s", out)
	}
}

func TestRegistryFactory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  min_lives: 2\n  max_lives: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, err := registry.Create("breakout", registry.Options{ConfigPath: path, Difficulty: "fixed"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	g.Reset(testRuntime)
	if g.State().Lives != 2 {
		t.Errorf("got %d lives, expected 2 from the config file", g.State().Lives)
	}

	if _, err := registry.Create("breakout", registry.Options{Difficulty: "nightmare"}); err == nil {
		t.Error("unknown difficulty should fail")
	}
}
